package pos

import "time"

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// PriorityFor classifies an order's age. Boundaries are strictly greater:
// an order at exactly 10 or 20 minutes stays in the lower band.
func PriorityFor(createdAt, now time.Time) Priority {
	elapsed := now.Sub(createdAt)
	switch {
	case elapsed > 20*time.Minute:
		return PriorityHigh
	case elapsed > 10*time.Minute:
		return PriorityMedium
	default:
		return PriorityNormal
	}
}

var priorityRank = map[Priority]int{
	PriorityHigh:   2,
	PriorityMedium: 1,
	PriorityNormal: 0,
}

// Rank orders priorities for sorting, higher first.
func (p Priority) Rank() int { return priorityRank[p] }
