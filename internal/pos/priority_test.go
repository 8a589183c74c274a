package pos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriorityFor(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		age  time.Duration
		want Priority
	}{
		{0, PriorityNormal},
		{5 * time.Minute, PriorityNormal},
		{10 * time.Minute, PriorityNormal}, // boundary stays in the lower band
		{10*time.Minute + time.Second, PriorityMedium},
		{15 * time.Minute, PriorityMedium},
		{20 * time.Minute, PriorityMedium}, // boundary stays in the lower band
		{20*time.Minute + time.Second, PriorityHigh},
		{21 * time.Minute, PriorityHigh},
		{3 * time.Hour, PriorityHigh},
	}
	for _, c := range cases {
		got := PriorityFor(now.Add(-c.age), now)
		assert.Equal(t, c.want, got, "age %s", c.age)
	}
}

func TestPriorityRank(t *testing.T) {
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityNormal.Rank())
}
