package service

import (
	"github.com/yndnr/unityvault/internal/core/domain"
	"github.com/yndnr/unityvault/internal/core/entropy"
	"github.com/yndnr/unityvault/pkg/token"
)

// TokenFactory creates fresh tokens.
type TokenFactory interface {
	CreateToken() (*domain.Token, error)
}

// AngleTokenFactory derives tokens from an entropy source.
//
// The angle and the display id come from two separate draws; the id is
// never derived from (a, b).
type AngleTokenFactory struct {
	angles *entropy.AngleSource
	ids    entropy.Source
}

// NewTokenFactory creates a factory reading both draws from src.
func NewTokenFactory(src entropy.Source) *AngleTokenFactory {
	return &AngleTokenFactory{
		angles: entropy.NewAngleSource(src),
		ids:    src,
	}
}

// CreateToken draws an angle θ and returns (cos θ, sin θ) with a fresh id.
func (f *AngleTokenFactory) CreateToken() (*domain.Token, error) {
	theta, err := f.angles.NextAngle()
	if err != nil {
		return nil, err
	}

	id, err := token.DisplayID(f.ids)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrEntropyUnavailable.Code) {
			return nil, err
		}
		return nil, domain.ErrEntropyUnavailable.WithCause(err)
	}

	return domain.NewToken(id, theta), nil
}
