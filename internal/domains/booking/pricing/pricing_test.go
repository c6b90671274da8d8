package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"grandresort/internal/domains/booking/pricing"
)

func date(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "three full nights",
			checkIn:  date(10),
			checkOut: date(13),
			want:     3,
		},
		{
			name:     "single night",
			checkIn:  date(10),
			checkOut: date(11),
			want:     1,
		},
		{
			name:     "partial day rounds up",
			checkIn:  date(10),
			checkOut: date(11).Add(6 * time.Hour),
			want:     2,
		},
		{
			name:     "same day is zero",
			checkIn:  date(10),
			checkOut: date(10),
			want:     0,
		},
		{
			name:     "inverted window is zero",
			checkIn:  date(13),
			checkOut: date(10),
			want:     0,
		},
		{
			name:     "missing check-in is zero",
			checkOut: date(10),
			want:     0,
		},
		{
			name:    "missing check-out is zero",
			checkIn: date(10),
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestForStay(t *testing.T) {
	rate := decimal.NewFromInt(2500)

	quote := pricing.ForStay(rate, date(10), date(13))

	assert.Equal(t, 3, quote.Nights)
	assert.True(t, quote.Subtotal.Equal(decimal.NewFromInt(7500)), "subtotal %s", quote.Subtotal)
	assert.True(t, quote.Tax.Equal(decimal.NewFromInt(900)), "tax %s", quote.Tax)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(8400)), "total %s", quote.Total)
}

func TestForStay_ZeroNights(t *testing.T) {
	rate := decimal.NewFromInt(2500)

	quote := pricing.ForStay(rate, date(13), date(10))

	assert.Equal(t, 0, quote.Nights)
	assert.True(t, quote.Subtotal.IsZero())
	assert.True(t, quote.Tax.IsZero())
	assert.True(t, quote.Total.IsZero())
}

func TestForNights_TaxRoundsHalfUp(t *testing.T) {
	// 1999 * 12% = 239.88, rounds to 240.
	quote := pricing.ForNights(decimal.NewFromInt(1999), 1)

	assert.True(t, quote.Tax.Equal(decimal.NewFromInt(240)), "tax %s", quote.Tax)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(2239)), "total %s", quote.Total)
}

func TestForStay_SameInputsSameQuote(t *testing.T) {
	rate := decimal.NewFromFloat(3250.50)

	first := pricing.ForStay(rate, date(1), date(5))
	second := pricing.ForStay(rate, date(1), date(5))

	assert.Equal(t, first.Nights, second.Nights)
	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.Tax.Equal(second.Tax))
	assert.True(t, first.Total.Equal(second.Total))
}
