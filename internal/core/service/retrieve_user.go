package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lavex/account-service/internal/core/domain"
	"github.com/lavex/account-service/internal/core/ports"
)

// RetrieveUserUseCase reads the full profile for a verified uid.
type RetrieveUserUseCase struct {
	repo ports.AccountRepository
	log  zerolog.Logger
}

func NewRetrieveUserUseCase(repo ports.AccountRepository, log zerolog.Logger) *RetrieveUserUseCase {
	return &RetrieveUserUseCase{repo: repo, log: log}
}

func (uc *RetrieveUserUseCase) Execute(ctx context.Context, in ports.RetrieveUserInput) (ports.UserProfile, error) {
	if in.UID == "" {
		return ports.UserProfile{}, domain.NewValidationError("uid", "uid is required")
	}

	user, err := uc.repo.FindByUID(ctx, in.UID)
	if err != nil {
		return ports.UserProfile{}, err
	}

	return ports.UserProfile{
		Msg:      "ok",
		UID:      user.UID,
		FullName: user.FullName,
		Cpf:      user.Cpf,
		Email:    user.Email,
		Phone:    user.Phone,
		Address: ports.AddressInput{
			City:       user.Address.City,
			Cep:        user.Address.Cep,
			StreetName: user.Address.StreetName,
			Number:     user.Address.Number,
			Complement: user.Address.Complement,
		},
	}, nil
}
