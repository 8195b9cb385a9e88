package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func daysAgo(now time.Time, days int) *time.Time {
	d := now.AddDate(0, 0, -days)
	return &d
}

func TestCanDonate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		user     *User
		expected bool
	}{
		{
			name:     "Donor with no donation history is eligible",
			user:     &User{Role: RoleDonor, Available: true},
			expected: true,
		},
		{
			name:     "Donor who donated 40 days ago is not eligible",
			user:     &User{Role: RoleDonor, Available: true, LastDonationDate: daysAgo(now, 40), LastDonationType: DonationWholeBlood},
			expected: false,
		},
		{
			name:     "Donor who donated 60 days ago is eligible",
			user:     &User{Role: RoleDonor, Available: true, LastDonationDate: daysAgo(now, 60), LastDonationType: DonationWholeBlood},
			expected: true,
		},
		{
			name:     "Donor who donated exactly 56 days ago is eligible",
			user:     &User{Role: RoleDonor, Available: true, LastDonationDate: daysAgo(now, 56), LastDonationType: DonationWholeBlood},
			expected: true,
		},
		{
			name:     "Donor who donated 55 days ago is not eligible",
			user:     &User{Role: RoleDonor, Available: true, LastDonationDate: daysAgo(now, 55), LastDonationType: DonationWholeBlood},
			expected: false,
		},
		{
			name:     "Unavailable donor is not eligible",
			user:     &User{Role: RoleDonor, Available: false},
			expected: false,
		},
		{
			name:     "Recipient is not eligible",
			user:     &User{Role: RoleRecipient, Available: true},
			expected: false,
		},
		{
			name:     "Plasma donor is eligible after 14 days",
			user:     &User{Role: RoleDonor, Available: true, LastDonationDate: daysAgo(now, 15), LastDonationType: DonationPlasma},
			expected: true,
		},
		{
			name:     "Plasma donor is not eligible after 10 days",
			user:     &User{Role: RoleDonor, Available: true, LastDonationDate: daysAgo(now, 10), LastDonationType: DonationPlasma},
			expected: false,
		},
		{
			name:     "Platelets donor is eligible after 7 days",
			user:     &User{Role: RoleDonor, Available: true, LastDonationDate: daysAgo(now, 8), LastDonationType: DonationPlatelets},
			expected: true,
		},
		{
			name:     "Unknown donation type uses the whole-blood gap",
			user:     &User{Role: RoleDonor, Available: true, LastDonationDate: daysAgo(now, 30)},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanDonate(tt.user, now))
		})
	}
}

func TestNextEligibleDate(t *testing.T) {
	now := time.Now()

	t.Run("No donation history", func(t *testing.T) {
		assert.Nil(t, NextEligibleDate(&User{Role: RoleDonor}))
	})

	t.Run("Whole blood gap", func(t *testing.T) {
		last := now.AddDate(0, 0, -10)
		u := &User{Role: RoleDonor, LastDonationDate: &last, LastDonationType: DonationWholeBlood}
		next := NextEligibleDate(u)
		assert.NotNil(t, next)
		assert.Equal(t, last.AddDate(0, 0, 56), *next)
	})

	t.Run("Plasma gap", func(t *testing.T) {
		last := now.AddDate(0, 0, -3)
		u := &User{Role: RoleDonor, LastDonationDate: &last, LastDonationType: DonationPlasma}
		next := NextEligibleDate(u)
		assert.NotNil(t, next)
		assert.Equal(t, last.AddDate(0, 0, 14), *next)
	})
}
