package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestChargeableDays(t *testing.T) {
	tests := []struct {
		name   string
		rental time.Time
		ret    time.Time
		want   int64
	}{
		{"TwoDays", date(2026, 3, 1), date(2026, 3, 3), 2},
		{"SameDayBillsOne", date(2026, 3, 1), date(2026, 3, 1), 1},
		{"OneDay", date(2026, 3, 1), date(2026, 3, 2), 1},
		{"FullWeek", date(2026, 3, 1), date(2026, 3, 8), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChargeableDays(tt.rental, tt.ret))
		})
	}
}

func TestLateDays(t *testing.T) {
	assert.Equal(t, int64(0), LateDays(date(2026, 3, 3), date(2026, 3, 3)))
	assert.Equal(t, int64(0), LateDays(date(2026, 3, 3), date(2026, 3, 2)))
	assert.Equal(t, int64(2), LateDays(date(2026, 3, 3), date(2026, 3, 5)))
}

func TestCalculateLateFee(t *testing.T) {
	// Half the daily rate per late day.
	assert.Equal(t, int64(7500), CalculateLateFee(3, 5000))
	assert.Equal(t, int64(4000), CalculateLateFee(2, 4000))
	assert.Equal(t, int64(0), CalculateLateFee(0, 4000))
}
