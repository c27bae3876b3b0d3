package ports

import (
	"context"

	"github.com/lavex/account-service/internal/core/domain"
)

// AccountRepository defines persistence operations for user accounts. It is
// the sole mutator of persisted records; use cases never bypass it. Lookups
// return domain.ErrUserNotFound when no record matches.
type AccountRepository interface {
	Register(ctx context.Context, user *domain.User) error
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	FindByUID(ctx context.Context, uid string) (*domain.User, error)
	UpdateAddress(ctx context.Context, uid string, address domain.Address) error
	UpdateCpf(ctx context.Context, uid, cpf string) error
}
