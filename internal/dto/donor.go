package dto

import "time"

type AvailabilityRequestDTO struct {
	Available bool `json:"available"`
}

type EligibilityResponseDTO struct {
	Eligible         bool       `json:"eligible"`
	NextEligibleDate *time.Time `json:"next_eligible_date,omitempty"`
}

type DonorStatsResponseDTO struct {
	TotalDonations     int `json:"total_donations" example:"6"`
	CompletedDonations int `json:"completed_donations" example:"5"`
	TotalUnits         int `json:"total_units" example:"5"`
	TotalRewardPoints  int `json:"total_reward_points" example:"210"`
}
