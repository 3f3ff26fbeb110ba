package finance

import (
	"math"
	"testing"
)

func TestMonthlyPayment_Amortized(t *testing.T) {
	// 267750 at 5.6% over 30 years, the worksheet regression loan.
	got := MonthlyPayment(267750, 0.056, 30)
	r := 0.056 / 12
	factor := math.Pow(1+r, 360)
	want := 267750 * (r * factor) / (factor - 1)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("payment = %v, want %v", got, want)
	}
	if got < 1500 || got > 1600 {
		t.Errorf("payment = %v, expected roughly $1537", got)
	}
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	got := MonthlyPayment(120000, 0, 10)
	if got != 1000 {
		t.Errorf("zero-rate payment = %v, want 1000", got)
	}
}

func TestMonthlyPayment_Degenerate(t *testing.T) {
	if got := MonthlyPayment(0, 0.056, 30); got != 0 {
		t.Errorf("zero principal payment = %v, want 0", got)
	}
	if got := MonthlyPayment(250000, 0.056, 0); got != 0 {
		t.Errorf("zero term payment = %v, want 0", got)
	}
}
