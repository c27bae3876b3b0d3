package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lavex/account-service/internal/core/domain"
	"github.com/lavex/account-service/internal/core/ports"
)

// LoginUseCase authenticates a phone/secret pair against the stored bcrypt
// hash. An unknown phone surfaces as ErrUserNotFound, never as a credentials
// failure, so the two outcomes stay distinguishable at the HTTP layer.
type LoginUseCase struct {
	repo ports.AccountRepository
	log  zerolog.Logger
}

func NewLoginUseCase(repo ports.AccountRepository, log zerolog.Logger) *LoginUseCase {
	return &LoginUseCase{repo: repo, log: log}
}

func (uc *LoginUseCase) Execute(ctx context.Context, in ports.LoginInput) (ports.MessageOutput, error) {
	if in.Phone == "" || in.Password == "" {
		fields := map[string]string{}
		if in.Phone == "" {
			fields["phone"] = "phone is required"
		}
		if in.Password == "" {
			fields["hashed_password"] = "secret is required"
		}
		return ports.MessageOutput{}, &domain.ValidationError{Fields: fields}
	}

	user, err := uc.repo.FindByPhone(ctx, in.Phone)
	if err != nil {
		return ports.MessageOutput{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(in.Password)) != nil {
		uc.log.Info().Str("phone", in.Phone).Msg("login rejected: password mismatch")
		return ports.MessageOutput{}, domain.ErrInvalidCredentials
	}

	uc.log.Info().Str("uid", user.UID).Msg("login accepted")
	return ports.MessageOutput{Msg: "ok"}, nil
}
