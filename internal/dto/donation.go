package dto

import "time"

type ScheduleDonationRequestDTO struct {
	DonationType  string    `json:"donation_type" validate:"required,oneof=whole_blood plasma platelets"`
	Units         int       `json:"units" validate:"required,min=1"`
	VolumeML      int       `json:"volume_ml" example:"450"`
	ScheduledDate time.Time `json:"scheduled_date"`
}

type DonationResponseDTO struct {
	ID               int        `json:"id"`
	DonorID          int        `json:"donor_id"`
	RequestID        *int       `json:"request_id,omitempty"`
	DonationType     string     `json:"donation_type" example:"whole_blood"`
	Units            int        `json:"units"`
	VolumeML         int        `json:"volume_ml"`
	BloodGroup       string     `json:"blood_group" example:"O-"`
	Status           string     `json:"status" example:"scheduled"`
	ScheduledDate    time.Time  `json:"scheduled_date"`
	ActualDate       *time.Time `json:"actual_date,omitempty"`
	CompletionTime   *time.Time `json:"completion_time,omitempty"`
	VerificationCode string     `json:"verification_code,omitempty"`
	RewardPoints     int        `json:"reward_points"`
	CreatedAt        time.Time  `json:"created_at"`
}

type UpdateDonationStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=in_progress completed cancelled rejected"`
}
