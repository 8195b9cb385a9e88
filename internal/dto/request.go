package dto

import "time"

type CreateRequestDTO struct {
	PatientName     string    `json:"patient_name" validate:"required"`
	BloodGroup      string    `json:"blood_group" validate:"required" example:"O-"`
	Urgency         string    `json:"urgency" validate:"required,oneof=critical high medium low"`
	UnitsRequired   int       `json:"units_required" validate:"required,min=1" example:"4"`
	RequiredBy      time.Time `json:"required_by" example:"2026-09-01T12:00:00Z"`
	HospitalName    string    `json:"hospital_name"`
	HospitalAddress string    `json:"hospital_address,omitempty"`
	HospitalCity    string    `json:"hospital_city" validate:"required"`
	Notes           string    `json:"notes,omitempty"`
}

type RequestResponseDTO struct {
	ID             int       `json:"id" example:"17"`
	RecipientID    int       `json:"recipient_id"`
	PatientName    string    `json:"patient_name"`
	BloodGroup     string    `json:"blood_group" example:"O-"`
	Urgency        string    `json:"urgency" example:"critical"`
	UnitsRequired  int       `json:"units_required"`
	UnitsFulfilled int       `json:"units_fulfilled"`
	RequiredBy     time.Time `json:"required_by"`
	HospitalName   string    `json:"hospital_name"`
	HospitalCity   string    `json:"hospital_city"`
	Status         string    `json:"status" example:"active"`
	PriorityScore  int       `json:"priority_score" example:"90"`
	SelectedDonor  *int      `json:"selected_donor_id,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
}

type RespondRequestDTO struct {
	ResponseType  string     `json:"response_type" validate:"required,oneof=interested confirmed completed cancelled"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

type DonorResponseDTO struct {
	RequestID        int        `json:"request_id"`
	DonorID          int        `json:"donor_id"`
	ResponseType     string     `json:"response_type" example:"confirmed"`
	ScheduledTime    *time.Time `json:"scheduled_time,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	VerificationCode string     `json:"verification_code,omitempty"`
	RespondedAt      time.Time  `json:"responded_at"`
}

type SelectDonorRequestDTO struct {
	DonorID int `json:"donor_id" validate:"required"`
}

type UpdateUrgencyRequestDTO struct {
	Urgency string `json:"urgency" validate:"required,oneof=critical high medium low"`
}

type OverrideStatusRequestDTO struct {
	Status string `json:"status" validate:"required"`
}
