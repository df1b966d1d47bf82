package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"math"

	"github.com/yndnr/unityvault/internal/core/domain"
)

// DegreesPerTurn is the modulus applied to raw draws before conversion.
const DegreesPerTurn = 360

// Source is an injectable entropy capability.
type Source interface {
	io.Reader

	// Uint32 draws one unsigned 32-bit value.
	Uint32() (uint32, error)
}

// CryptoSource reads from a cryptographically secure reader.
type CryptoSource struct {
	r io.Reader
}

// NewCryptoSource returns a source backed by crypto/rand.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{r: rand.Reader}
}

// NewReaderSource wraps an arbitrary secure reader.
func NewReaderSource(r io.Reader) *CryptoSource {
	return &CryptoSource{r: r}
}

// Read fills p completely or fails with ErrEntropyUnavailable.
func (s *CryptoSource) Read(p []byte) (int, error) {
	n, err := io.ReadFull(s.r, p)
	if err != nil {
		return n, domain.ErrEntropyUnavailable.WithCause(err)
	}
	return n, nil
}

// Uint32 draws four bytes and decodes them big-endian.
func (s *CryptoSource) Uint32() (uint32, error) {
	var b [4]byte
	if _, err := s.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// AngleSource turns raw draws into whole-degree angles.
type AngleSource struct {
	src Source
}

// NewAngleSource creates an AngleSource over src.
func NewAngleSource(src Source) *AngleSource {
	return &AngleSource{src: src}
}

// NextDegrees returns a whole-degree angle in [0, 360).
func (a *AngleSource) NextDegrees() (uint32, error) {
	u, err := a.src.Uint32()
	if err != nil {
		if domain.IsDomainError(err, domain.ErrEntropyUnavailable.Code) {
			return 0, err
		}
		return 0, domain.ErrEntropyUnavailable.WithCause(err)
	}
	return u % DegreesPerTurn, nil
}

// NextAngle returns an angle in radians in [0, 2π).
func (a *AngleSource) NextAngle() (float64, error) {
	deg, err := a.NextDegrees()
	if err != nil {
		return 0, err
	}
	return DegreesToRadians(deg), nil
}

// DegreesToRadians converts whole degrees to radians.
func DegreesToRadians(deg uint32) float64 {
	return float64(deg) * (math.Pi / 180)
}
