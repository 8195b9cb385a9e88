package domain

import "time"

type Role string

const (
	RoleDonor     Role = "donor"
	RoleRecipient Role = "recipient"
	RoleAdmin     Role = "admin"
)

type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

type RequestStatus string

const (
	RequestActive             RequestStatus = "active"
	RequestPartiallyFulfilled RequestStatus = "partially_fulfilled"
	RequestFulfilled          RequestStatus = "fulfilled"
	RequestExpired            RequestStatus = "expired"
	RequestCancelled          RequestStatus = "cancelled"
)

type ResponseType string

const (
	ResponseInterested ResponseType = "interested"
	ResponseConfirmed  ResponseType = "confirmed"
	ResponseCompleted  ResponseType = "completed"
	ResponseCancelled  ResponseType = "cancelled"
)

type DonationStatus string

const (
	DonationScheduled  DonationStatus = "scheduled"
	DonationInProgress DonationStatus = "in_progress"
	DonationCompleted  DonationStatus = "completed"
	DonationCancelled  DonationStatus = "cancelled"
	DonationRejected   DonationStatus = "rejected"
)

type DonationType string

const (
	DonationWholeBlood DonationType = "whole_blood"
	DonationPlasma     DonationType = "plasma"
	DonationPlatelets  DonationType = "platelets"
)

// RequestTTL is the absolute lifetime of an emergency request: past
// creation + RequestTTL the request is expired regardless of its deadline.
const RequestTTL = 30 * 24 * time.Hour

type User struct {
	ID               int          `db:"id"`
	Login            string       `db:"login"`
	PasswordHash     string       `db:"password_hash"`
	Role             Role         `db:"role"`
	FullName         string       `db:"full_name"`
	BloodGroup       string       `db:"blood_group"`
	DateOfBirth      *time.Time   `db:"date_of_birth"`
	City             string       `db:"city"`
	Area             string       `db:"area"`
	Phone            string       `db:"phone"`
	Available        bool         `db:"available"`
	Approved         bool         `db:"approved"`
	LastDonationDate *time.Time   `db:"last_donation_date"`
	LastDonationType DonationType `db:"last_donation_type"`
	TotalDonations   int          `db:"total_donations"`
	TotalUnits       int          `db:"total_units"`
	CreatedAt        time.Time    `db:"created_at"`
}

type EmergencyRequest struct {
	ID              int           `db:"id"`
	RecipientID     int           `db:"recipient_id"`
	PatientName     string        `db:"patient_name"`
	BloodGroup      string        `db:"blood_group"`
	Urgency         Urgency       `db:"urgency"`
	UnitsRequired   int           `db:"units_required"`
	UnitsFulfilled  int           `db:"units_fulfilled"`
	RequiredBy      time.Time     `db:"required_by"`
	HospitalName    string        `db:"hospital_name"`
	HospitalAddress string        `db:"hospital_address"`
	HospitalCity    string        `db:"hospital_city"`
	Status          RequestStatus `db:"status"`
	PriorityScore   int           `db:"priority_score"`
	SelectedDonorID *int          `db:"selected_donor_id"`
	ExpiresAt       time.Time     `db:"expires_at"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

// IsExpired reports whether the request is past its deadline or its
// absolute expiration. Derived at read time; Status stays authoritative.
func (r *EmergencyRequest) IsExpired(now time.Time) bool {
	return now.After(r.RequiredBy) || now.After(r.ExpiresAt)
}

// IsFulfilled reports whether enough units have been donated.
func (r *EmergencyRequest) IsFulfilled() bool {
	return r.UnitsFulfilled >= r.UnitsRequired
}

// IsOpen reports whether the request still accepts donor responses.
func (r *EmergencyRequest) IsOpen() bool {
	return r.Status == RequestActive || r.Status == RequestPartiallyFulfilled
}

type DonorResponse struct {
	RequestID        int          `db:"request_id"`
	DonorID          int          `db:"donor_id"`
	ResponseType     ResponseType `db:"response_type"`
	Notes            string       `db:"notes"`
	ScheduledTime    *time.Time   `db:"scheduled_time"`
	VerificationCode string       `db:"verification_code"`
	RespondedAt      time.Time    `db:"responded_at"`
}

type DonationRecord struct {
	ID               int            `db:"id"`
	DonorID          int            `db:"donor_id"`
	RecipientID      *int           `db:"recipient_id"`
	RequestID        *int           `db:"request_id"`
	DonationType     DonationType   `db:"donation_type"`
	Units            int            `db:"units"`
	VolumeML         int            `db:"volume_ml"`
	BloodGroup       string         `db:"blood_group"`
	Status           DonationStatus `db:"status"`
	ScheduledDate    time.Time      `db:"scheduled_date"`
	ActualDate       *time.Time     `db:"actual_date"`
	CompletionTime   *time.Time     `db:"completion_time"`
	VerificationCode string         `db:"verification_code"`
	CreatedAt        time.Time      `db:"created_at"`
}

// DonorStats aggregates a donor's donation history.
type DonorStats struct {
	TotalDonations     int `db:"total_donations"`
	CompletedDonations int `db:"completed_donations"`
	TotalUnits         int `db:"total_units"`
	TotalRewardPoints  int
}

var bloodGroups = map[string]struct{}{
	"A+": {}, "A-": {}, "B+": {}, "B-": {},
	"AB+": {}, "AB-": {}, "O+": {}, "O-": {},
}

func IsValidBloodGroup(bg string) bool {
	_, ok := bloodGroups[bg]
	return ok
}

var rareBloodGroups = map[string]struct{}{
	"AB-": {}, "AB+": {}, "B-": {}, "A-": {}, "O-": {},
}

// IsRareBloodGroup reports whether bg is one of the scarce groups that
// earn a scoring and reward bonus.
func IsRareBloodGroup(bg string) bool {
	_, ok := rareBloodGroups[bg]
	return ok
}

func IsValidUrgency(u Urgency) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

func IsValidDonationType(t DonationType) bool {
	switch t {
	case DonationWholeBlood, DonationPlasma, DonationPlatelets:
		return true
	}
	return false
}

func IsValidResponseType(t ResponseType) bool {
	switch t {
	case ResponseInterested, ResponseConfirmed, ResponseCompleted, ResponseCancelled:
		return true
	}
	return false
}
