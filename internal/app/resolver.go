// Package app wires concrete infrastructure into use-case instances.
//
// The Resolver is built exactly once at startup and passed by reference into
// request-scoped handlers; it is read-only afterwards. Accessors construct a
// fresh, stateless use case per call over the shared repository.
package app

import (
	"github.com/rs/zerolog"

	"github.com/lavex/account-service/internal/core/domain"
	"github.com/lavex/account-service/internal/core/ports"
	"github.com/lavex/account-service/internal/core/service"
)

// Resolver exposes per-request use-case accessors plus the shared token
// verifier. A zero-value or nil Resolver fails every accessor with
// domain.ErrUninitialized, which marks a wiring bug rather than a runtime
// condition.
type Resolver struct {
	repo     ports.AccountRepository
	verifier ports.TokenVerifier
	log      zerolog.Logger
}

func NewResolver(repo ports.AccountRepository, verifier ports.TokenVerifier, log zerolog.Logger) *Resolver {
	return &Resolver{repo: repo, verifier: verifier, log: log}
}

func (r *Resolver) ready() error {
	if r == nil || r.repo == nil {
		return domain.ErrUninitialized
	}
	return nil
}

// Verifier returns the shared authentication verifier.
func (r *Resolver) Verifier() (ports.TokenVerifier, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if r.verifier == nil {
		return nil, domain.ErrUninitialized
	}
	return r.verifier, nil
}

func (r *Resolver) RegisterUseCase() (ports.RegisterUseCase, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	return service.NewRegisterUseCase(r.repo, r.log), nil
}

func (r *Resolver) LoginUseCase() (ports.LoginUseCase, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	return service.NewLoginUseCase(r.repo, r.log), nil
}

func (r *Resolver) RetrieveUserUseCase() (ports.RetrieveUserUseCase, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	return service.NewRetrieveUserUseCase(r.repo, r.log), nil
}

func (r *Resolver) UpdateAddressUseCase() (ports.UpdateAddressUseCase, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	return service.NewUpdateAddressUseCase(r.repo, r.log), nil
}

func (r *Resolver) UpdateCpfUseCase() (ports.UpdateCpfUseCase, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	return service.NewUpdateCpfUseCase(r.repo, r.log), nil
}
