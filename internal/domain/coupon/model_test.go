package coupon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		dueDate time.Time
		expired bool
	}{
		{name: "due date in the past", dueDate: now.Add(-time.Minute), expired: true},
		{name: "due date equal to now is still redeemable", dueDate: now, expired: false},
		{name: "due date in the future", dueDate: now.Add(time.Minute), expired: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Coupon{DueDate: tc.dueDate}
			assert.Equal(t, tc.expired, c.IsExpired(now))
		})
	}
}
