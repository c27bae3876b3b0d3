package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lavex/account-service/internal/core/domain"
	"github.com/lavex/account-service/internal/core/ports"
)

// UpdateAddressUseCase overwrites the stored address for a verified uid. All
// other account fields are left untouched.
type UpdateAddressUseCase struct {
	repo ports.AccountRepository
	log  zerolog.Logger
}

func NewUpdateAddressUseCase(repo ports.AccountRepository, log zerolog.Logger) *UpdateAddressUseCase {
	return &UpdateAddressUseCase{repo: repo, log: log}
}

func (uc *UpdateAddressUseCase) Execute(ctx context.Context, in ports.UpdateAddressInput) (ports.MessageOutput, error) {
	if in.UID == "" {
		return ports.MessageOutput{}, domain.NewValidationError("uid", "uid is required")
	}

	if err := uc.repo.UpdateAddress(ctx, in.UID, toAddress(in.Address)); err != nil {
		return ports.MessageOutput{}, err
	}

	uc.log.Info().Str("uid", in.UID).Msg("address updated")
	return ports.MessageOutput{Msg: "ok"}, nil
}
