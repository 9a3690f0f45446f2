// Package annuity derives the implied financial terms of an ordinary
// annuity with zero future value, matching the spreadsheet RATE function.
package annuity

import (
	"errors"
	"math"
)

var ErrUnsolvable = errors.New("annuity: rate not solvable for given terms")

const (
	maxIterations = 100
	tolerance     = 1e-7
	initialGuess  = 0.01
	lowerBound    = -0.99
	upperBound    = 1.0
)

// ImpliedRate solves pv*(1+r)^n + pmt*((1+r)^n - 1)/r = 0 for r using
// Newton-Raphson and returns the periodic rate as a percentage (r*100).
// payment must be negative (cash outflow), presentValue positive.
// Callers treat ErrUnsolvable as "rate unknown", never as a blocking failure.
func ImpliedRate(installments int, payment, presentValue float64) (float64, error) {
	if installments <= 0 || payment >= 0 || presentValue <= 0 {
		return 0, ErrUnsolvable
	}

	n := float64(installments)
	rate := initialGuess
	for i := 0; i < maxIterations; i++ {
		pow := math.Pow(1+rate, n)
		powPrev := math.Pow(1+rate, n-1)

		f := presentValue*pow + payment*(pow-1)/rate
		df := presentValue*n*powPrev + payment*(n*rate*powPrev-(pow-1))/(rate*rate)
		if df == 0 {
			return 0, ErrUnsolvable
		}

		next := rate - f/df
		if next <= lowerBound || next >= upperBound {
			return 0, ErrUnsolvable
		}
		if math.Abs(next-rate) < tolerance {
			if next <= 0 || math.IsNaN(next) || math.IsInf(next, 0) {
				return 0, ErrUnsolvable
			}
			return next * 100, nil
		}
		rate = next
	}
	return 0, ErrUnsolvable
}

// EntryPercentage returns entry/credit as a percentage, 0 when credit is 0.
// Every write path recomputes it through here so the stored value cannot
// drift from the stored amounts.
func EntryPercentage(entryAmount, creditAmount float64) float64 {
	if creditAmount == 0 {
		return 0
	}
	return entryAmount / creditAmount * 100
}
