package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusInProgress},
		{StatusInProgress, StatusServed},
		{StatusServed, StatusPaid},
	}
	for _, c := range allowed {
		assert.True(t, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestNoSkipNoRegress(t *testing.T) {
	denied := []struct{ from, to Status }{
		{StatusPending, StatusServed},  // skipping in_progress
		{StatusPending, StatusPaid},    // skipping everything
		{StatusInProgress, StatusPaid}, // skipping served
		{StatusInProgress, StatusPending},
		{StatusServed, StatusInProgress},
		{StatusPaid, StatusServed},
		{StatusPaid, StatusPending},
		{StatusPending, StatusPending}, // re-invoking is a rejection too
		{StatusServed, StatusServed},
	}
	for _, c := range denied {
		assert.False(t, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestAppendable(t *testing.T) {
	assert.True(t, StatusPending.Appendable())
	assert.True(t, StatusServed.Appendable())
	assert.False(t, StatusInProgress.Appendable())
	assert.False(t, StatusPaid.Appendable())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusPaid.Valid())
	assert.False(t, Status("cooking").Valid())
	assert.False(t, Status("").Valid())
}
