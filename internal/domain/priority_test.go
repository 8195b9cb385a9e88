package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScorePriority(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		urgency    Urgency
		requiredBy time.Time
		units      int
		bloodGroup string
		expected   int
	}{
		{
			name:       "Critical request due in 4 hours for 6 units of O- hits the cap",
			urgency:    UrgencyCritical,
			requiredBy: now.Add(4 * time.Hour),
			units:      6,
			bloodGroup: "O-",
			expected:   100,
		},
		{
			name:       "Low urgency far deadline common group single unit",
			urgency:    UrgencyLow,
			requiredBy: now.Add(200 * time.Hour),
			units:      1,
			bloodGroup: "O+",
			expected:   10,
		},
		{
			name:       "Medium urgency within a day",
			urgency:    UrgencyMedium,
			requiredBy: now.Add(12 * time.Hour),
			units:      1,
			bloodGroup: "A+",
			expected:   40,
		},
		{
			name:       "High urgency within 72 hours with 3 units",
			urgency:    UrgencyHigh,
			requiredBy: now.Add(48 * time.Hour),
			units:      3,
			bloodGroup: "B+",
			expected:   50,
		},
		{
			name:       "Rarity bonus applies for AB-",
			urgency:    UrgencyLow,
			requiredBy: now.Add(200 * time.Hour),
			units:      1,
			bloodGroup: "AB-",
			expected:   20,
		},
		{
			name:       "Volume bonus for 5 units",
			urgency:    UrgencyLow,
			requiredBy: now.Add(200 * time.Hour),
			units:      5,
			bloodGroup: "A+",
			expected:   30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScorePriority(tt.urgency, tt.requiredBy, tt.units, tt.bloodGroup, now)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// The score never decreases as urgency escalates, all else fixed, and stays
// within bounds for every input combination.
func TestScorePriorityMonotonicInUrgency(t *testing.T) {
	now := time.Now()
	urgencies := []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}
	deadlines := []time.Duration{2 * time.Hour, 10 * time.Hour, 50 * time.Hour, 100 * time.Hour}
	units := []int{1, 3, 5, 8}
	groups := []string{"O+", "O-", "AB-", "A+"}

	for _, d := range deadlines {
		for _, u := range units {
			for _, bg := range groups {
				prev := -1
				for _, urg := range urgencies {
					score := ScorePriority(urg, now.Add(d), u, bg, now)
					assert.GreaterOrEqual(t, score, prev)
					assert.GreaterOrEqual(t, score, 0)
					assert.LessOrEqual(t, score, MaxPriorityScore)
					prev = score
				}
			}
		}
	}
}

func TestRewardPoints(t *testing.T) {
	requestID := 7

	tests := []struct {
		name     string
		rec      *DonationRecord
		expected int
	}{
		{
			name:     "Plain donation",
			rec:      &DonationRecord{Units: 1, BloodGroup: "O+", DonationType: DonationWholeBlood},
			expected: 10,
		},
		{
			name:     "Emergency sourced rare plasma donation",
			rec:      &DonationRecord{Units: 2, BloodGroup: "AB-", DonationType: DonationPlasma, RequestID: &requestID},
			expected: 60,
		},
		{
			name:     "Rare group without request",
			rec:      &DonationRecord{Units: 3, BloodGroup: "O-", DonationType: DonationWholeBlood},
			expected: 45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RewardPoints(tt.rec))
		})
	}
}
