// Package money provides a monetary value object shared by the catalog,
// cart, and order contexts. Values are stored as rational numbers
// (math/big.Rat) to avoid floating-point precision issues in totals.
package money

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Money represents a monetary amount in the store currency.
type Money struct {
	rat *big.Rat
}

// New creates a Money from numerator and denominator.
// Example: New(349500, 100) represents 3495.00.
func New(numerator, denominator int64) (*Money, error) {
	if denominator <= 0 {
		return nil, fmt.Errorf("denominator must be positive, got %d", denominator)
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// Zero returns a zero-valued Money.
func Zero() *Money {
	return &Money{rat: new(big.Rat)}
}

// FromDecimalString parses a decimal string like "3495.00" into Money.
func FromDecimalString(s string) (*Money, error) {
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid decimal amount: %q", s)
	}
	return &Money{rat: rat}, nil
}

// FromRat creates a Money from a big.Rat. A nil rat yields zero.
func FromRat(rat *big.Rat) *Money {
	if rat == nil {
		return Zero()
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// Numerator returns the numerator of the normalized value.
// Returns an error when the value does not fit in an int64.
func (m *Money) Numerator() (int64, error) {
	if !m.rat.Num().IsInt64() {
		return 0, fmt.Errorf("numerator exceeds int64 range")
	}
	return m.rat.Num().Int64(), nil
}

// Denominator returns the denominator of the normalized value.
// Returns an error when the value does not fit in an int64.
func (m *Money) Denominator() (int64, error) {
	if !m.rat.Denom().IsInt64() {
		return 0, fmt.Errorf("denominator exceeds int64 range")
	}
	return m.rat.Denom().Int64(), nil
}

// IsSafeForStorage reports whether both numerator and denominator fit in int64 columns.
func (m *Money) IsSafeForStorage() bool {
	return m.rat.Num().IsInt64() && m.rat.Denom().IsInt64()
}

// Add returns the sum of two Money values.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract returns the difference of two Money values.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyByInt returns the value multiplied by an integer factor,
// e.g. a unit price times a quantity.
func (m *Money) MultiplyByInt(n int64) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, new(big.Rat).SetInt64(n))}
}

// IsZero reports whether the value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative reports whether the value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsPositive reports whether the value is positive.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// LessThan reports whether this value is less than another.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan reports whether this value is greater than another.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals reports whether two values are equal.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 representation (display only).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String formats the value with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy returns a deep copy.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}

// MarshalJSON encodes the amount as a two-decimal string, matching the wire
// format used throughout the API.
func (m *Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}
