package domain

// RewardPoints computes the points earned by a donation. Points are derived
// from the record itself and never stored, so they can be recomputed at any
// time from the donation's attributes.
func RewardPoints(rec *DonationRecord) int {
	points := rec.Units * 10
	if rec.RequestID != nil {
		points += 20
	}
	if IsRareBloodGroup(rec.BloodGroup) {
		points += 15
	}
	if rec.DonationType == DonationPlasma {
		points += 5
	}
	return points
}
