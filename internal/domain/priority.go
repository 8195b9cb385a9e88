package domain

import "time"

// MaxPriorityScore caps the urgency ranking of an emergency request.
const MaxPriorityScore = 100

var urgencyBase = map[Urgency]int{
	UrgencyCritical: 40,
	UrgencyHigh:     30,
	UrgencyMedium:   20,
	UrgencyLow:      10,
}

// ScorePriority computes the priority score of an emergency request from
// its urgency, deadline, volume and blood-group rarity, clamped to
// [0, MaxPriorityScore]. Recomputed only at creation and on urgency change,
// so edits to unrelated fields never move the score.
func ScorePriority(urgency Urgency, requiredBy time.Time, unitsRequired int, bloodGroup string, now time.Time) int {
	score := urgencyBase[urgency]

	hoursLeft := requiredBy.Sub(now).Hours()
	switch {
	case hoursLeft <= 6:
		score += 30
	case hoursLeft <= 24:
		score += 20
	case hoursLeft <= 72:
		score += 10
	}

	switch {
	case unitsRequired >= 5:
		score += 20
	case unitsRequired >= 3:
		score += 10
	}

	if IsRareBloodGroup(bloodGroup) {
		score += 10
	}

	if score > MaxPriorityScore {
		score = MaxPriorityScore
	}
	if score < 0 {
		score = 0
	}
	return score
}
