package domain

import (
	"fmt"
	"math"
)

// TokenIDLength is the length of a token display id.
const TokenIDLength = 8

// Token is the single active amplitude pair of a session.
//
// A token is created from one random angle θ with A = cos θ and B = sin θ.
// It lives until a successful commit burns it or it is explicitly discarded.
// The ID is a display label drawn independently of (A, B).
type Token struct {
	// ID is the short display identifier.
	ID string `json:"id" yaml:"id"`

	// A is the first amplitude component.
	A float64 `json:"a" yaml:"a"`

	// B is the second amplitude component.
	B float64 `json:"b" yaml:"b"`
}

// NewToken derives a token from an angle in radians.
func NewToken(id string, theta float64) *Token {
	return &Token{
		ID: id,
		A:  math.Cos(theta),
		B:  math.Sin(theta),
	}
}

// Clone returns a copy of the token.
func (t *Token) Clone() *Token {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// IsUnit reports whether the token satisfies the unity invariant.
func (t *Token) IsUnit() bool {
	return IsUnit(t.A, t.B)
}

// Signature returns the fixed-precision "a|b" encoding of the token.
func (t *Token) Signature() string {
	return FormatSignature(t.A, t.B)
}

// FormatSignature encodes an amplitude pair with 4 decimal digits each.
func FormatSignature(a, b float64) string {
	return fmt.Sprintf("%.4f|%.4f", a, b)
}
