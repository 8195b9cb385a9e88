package notify

import (
	"strconv"
	"time"
)

// Topic names form the address space of the fan-out channel.
const (
	TopicAdminRoom = "admin-room"
)

func TopicDonor(donorID int) string    { return "donor-" + strconv.Itoa(donorID) }
func TopicUser(userID int) string      { return "user-" + strconv.Itoa(userID) }
func TopicBloodGroup(bg string) string { return "donors-" + bg }
func TopicCity(city string) string     { return "donors-" + city }

type NotificationType string

const (
	TypeNewRequest    NotificationType = "new_request"
	TypeDonorResponse NotificationType = "donor_response"
	TypeDonorSelected NotificationType = "donor_selected"
	TypeStatusChange  NotificationType = "status_change"
)

// Notification is the payload delivered to subscribers. Delivery is
// best-effort: the persisted state change is the source of truth.
type Notification struct {
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	RequestID int              `json:"request_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
