package entropy

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/yndnr/unityvault/internal/core/domain"
)

func TestCryptoSource_Uint32(t *testing.T) {
	src := NewCryptoSource()
	seen := make(map[uint32]bool)
	for i := 0; i < 50; i++ {
		v, err := src.Uint32()
		if err != nil {
			t.Fatalf("Uint32() error = %v", err)
		}
		seen[v] = true
	}
	if len(seen) < 2 {
		t.Error("crypto source returned a constant value")
	}
}

func TestCryptoSource_Unavailable(t *testing.T) {
	src := NewReaderSource(bytes.NewReader([]byte{1, 2}))

	_, err := src.Uint32()
	if !errors.Is(err, domain.ErrEntropyUnavailable) {
		t.Fatalf("Uint32() error = %v, want ErrEntropyUnavailable", err)
	}
}

func TestReaderSource_BigEndian(t *testing.T) {
	src := NewReaderSource(bytes.NewReader([]byte{0, 0, 1, 0x69}))

	v, err := src.Uint32()
	if err != nil {
		t.Fatalf("Uint32() error = %v", err)
	}
	if v != 361 {
		t.Errorf("Uint32() = %d, want 361", v)
	}
}

func TestAngleSource_NextDegrees(t *testing.T) {
	tests := []struct {
		raw  uint32
		want uint32
	}{
		{0, 0},
		{90, 90},
		{359, 359},
		{360, 0},
		{361, 1},
		{math.MaxUint32, math.MaxUint32 % 360},
	}

	for _, tt := range tests {
		a := NewAngleSource(NewFixedSource(tt.raw))
		got, err := a.NextDegrees()
		if err != nil {
			t.Fatalf("NextDegrees() error = %v", err)
		}
		if got != tt.want {
			t.Errorf("NextDegrees() for raw %d = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestAngleSource_NextAngleRange(t *testing.T) {
	a := NewAngleSource(NewCryptoSource())
	for i := 0; i < 1000; i++ {
		theta, err := a.NextAngle()
		if err != nil {
			t.Fatalf("NextAngle() error = %v", err)
		}
		if theta < 0 || theta >= 2*math.Pi {
			t.Fatalf("NextAngle() = %v outside [0, 2π)", theta)
		}
	}
}

func TestAngleSource_WrapsFailure(t *testing.T) {
	src := NewFixedSource(10)
	src.SetFail(true)

	_, err := NewAngleSource(src).NextAngle()
	if !errors.Is(err, domain.ErrEntropyUnavailable) {
		t.Errorf("NextAngle() error = %v, want ErrEntropyUnavailable", err)
	}
	if !errors.Is(err, ErrSourceDrained) {
		t.Errorf("NextAngle() error = %v should keep the cause", err)
	}
}

func TestFixedSource_Replay(t *testing.T) {
	src := NewFixedSource(1, 2)
	for _, want := range []uint32{1, 2, 2, 2} {
		got, _ := src.Uint32()
		if got != want {
			t.Errorf("Uint32() = %d, want %d", got, want)
		}
	}

	a := make([]byte, 3)
	b := make([]byte, 3)
	src.Read(a)
	src.Read(b)
	if bytes.Equal(a, b) {
		t.Error("consecutive reads should differ")
	}
}
