package service

import (
	"context"

	"github.com/lavex/account-service/internal/core/domain"
)

// stubAccountRepo is an in-memory AccountRepository keyed by uid.
type stubAccountRepo struct {
	users       map[string]*domain.User
	registerErr error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAccountRepo) Register(_ context.Context, user *domain.User) error {
	if r.registerErr != nil {
		return r.registerErr
	}
	for _, existing := range r.users {
		if existing.Phone == user.Phone {
			return domain.ErrUserExists
		}
	}
	r.users[user.UID] = cloneUser(user)
	return nil
}

func (r *stubAccountRepo) FindByPhone(_ context.Context, phone string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) FindByUID(_ context.Context, uid string) (*domain.User, error) {
	u, ok := r.users[uid]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubAccountRepo) UpdateAddress(_ context.Context, uid string, address domain.Address) error {
	u, ok := r.users[uid]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Address = address
	return nil
}

func (r *stubAccountRepo) UpdateCpf(_ context.Context, uid, cpf string) error {
	u, ok := r.users[uid]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Cpf = cpf
	return nil
}
