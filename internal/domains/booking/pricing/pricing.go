package pricing

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// TaxRatePercent is the GST applied to every stay.
const TaxRatePercent = 12

var taxRate = decimal.NewFromInt(TaxRatePercent).Div(decimal.NewFromInt(100))

// Quote is the price breakdown for a stay. Every surface showing money for
// the same (rate, stay window) pair must be fed from the same Quote; a
// discrepancy between two display sites is a defect.
type Quote struct {
	Nights   int             `json:"nights"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Nights counts billable nights between check-in and check-out, rounding
// partial days up. A missing date or a check-out at or before check-in
// yields zero.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}

	diff := checkOut.Sub(checkIn)
	if diff <= 0 {
		return 0
	}

	return int(math.Ceil(float64(diff) / float64(24*time.Hour)))
}

// ForStay computes the price triple for a nightly rate over a stay window.
// Tax is rounded half-up to the nearest whole currency unit.
func ForStay(nightlyRate decimal.Decimal, checkIn, checkOut time.Time) Quote {
	return ForNights(nightlyRate, Nights(checkIn, checkOut))
}

// ForNights computes the price triple for a nightly rate over a night count.
func ForNights(nightlyRate decimal.Decimal, nights int) Quote {
	subtotal := nightlyRate.Mul(decimal.NewFromInt(int64(nights)))
	tax := subtotal.Mul(taxRate).Round(0)

	return Quote{
		Nights:   nights,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
