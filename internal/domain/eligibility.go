package domain

import "time"

// Minimum whole days between donations, by the type of the donor's last
// donation. Donors with no recorded donation type get the whole-blood gap.
const (
	WholeBloodGapDays = 56
	PlasmaGapDays     = 14
	PlateletsGapDays  = 7
)

func donationGapDays(t DonationType) int {
	switch t {
	case DonationPlasma:
		return PlasmaGapDays
	case DonationPlatelets:
		return PlateletsGapDays
	default:
		return WholeBloodGapDays
	}
}

// CanDonate reports whether the user may donate at the given moment.
// A user qualifies when they are a donor, marked available, and either have
// never donated or their last donation is at least the required gap in the
// past. Pure; never fails.
func CanDonate(u *User, now time.Time) bool {
	if u.Role != RoleDonor || !u.Available {
		return false
	}
	if u.LastDonationDate == nil {
		return true
	}
	days := int(now.Sub(*u.LastDonationDate).Hours() / 24)
	return days >= donationGapDays(u.LastDonationType)
}

// NextEligibleDate returns the first day the donor may donate again, or nil
// when the donor has no recorded last donation.
func NextEligibleDate(u *User) *time.Time {
	if u.LastDonationDate == nil {
		return nil
	}
	next := u.LastDonationDate.AddDate(0, 0, donationGapDays(u.LastDonationType))
	return &next
}
