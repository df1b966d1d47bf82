package domain

import (
	"math"
	"testing"
)

func TestNewToken_UnityAcrossDegrees(t *testing.T) {
	for deg := 0; deg < 360; deg++ {
		theta := float64(deg) * math.Pi / 180
		tok := NewToken("abcdefgh", theta)
		if !tok.IsUnit() {
			t.Errorf("degree %d: a=%v b=%v not unit", deg, tok.A, tok.B)
		}
	}
}

func TestNewToken_BoundaryAngles(t *testing.T) {
	tests := []struct {
		deg     int
		wantSig string
	}{
		{0, "1.0000|0.0000"},
		{90, "0.0000|1.0000"},
		{180, "-1.0000|0.0000"},
		{270, "-0.0000|-1.0000"},
	}

	for _, tt := range tests {
		t.Run(tt.wantSig, func(t *testing.T) {
			tok := NewToken("id", float64(tt.deg)*math.Pi/180)
			if !IsUnit(tok.A, tok.B) {
				t.Fatalf("degree %d should satisfy unity", tt.deg)
			}
			if got := tok.Signature(); got != tt.wantSig {
				t.Errorf("Signature() = %q, want %q", got, tt.wantSig)
			}
		})
	}
}

func TestNewToken_ZeroAngle(t *testing.T) {
	tok := NewToken("id", 0)
	if tok.A != 1.0 || tok.B != 0.0 {
		t.Errorf("theta=0 gave a=%v b=%v, want 1, 0", tok.A, tok.B)
	}
}

func TestFormatSignature(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want string
	}{
		{"diagonal", 0.70710678, 0.70710678, "0.7071|0.7071"},
		{"unit a", 1.0, 0.0, "1.0000|0.0000"},
		{"rounding", 0.123456, -0.987654, "0.1235|-0.9877"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSignature(tt.a, tt.b); got != tt.want {
				t.Errorf("FormatSignature(%v, %v) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsUnit(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"exact", 1, 0, true},
		{"diagonal", math.Sqrt2 / 2, math.Sqrt2 / 2, true},
		{"within epsilon", 1 + 1e-12, 0, true},
		{"just outside epsilon", 1 + 1e-8, 0, false},
		{"zero vector", 0, 0, false},
		{"long vector", 0.8, 0.8, false},
		{"truncated diagonal", 0.70710678, 0.70710678, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUnit(tt.a, tt.b); got != tt.want {
				t.Errorf("IsUnit(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestToken_Clone(t *testing.T) {
	var nilTok *Token
	if nilTok.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}

	tok := NewToken("abc", 1)
	c := tok.Clone()
	c.A = 42
	if tok.A == 42 {
		t.Error("Clone should not share state with the original")
	}
}
