package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lavex/account-service/internal/core/domain"
	"github.com/lavex/account-service/internal/core/ports"
)

// UpdateCpfUseCase overwrites the stored cpf for a verified uid.
type UpdateCpfUseCase struct {
	repo ports.AccountRepository
	log  zerolog.Logger
}

func NewUpdateCpfUseCase(repo ports.AccountRepository, log zerolog.Logger) *UpdateCpfUseCase {
	return &UpdateCpfUseCase{repo: repo, log: log}
}

func (uc *UpdateCpfUseCase) Execute(ctx context.Context, in ports.UpdateCpfInput) (ports.MessageOutput, error) {
	fields := map[string]string{}
	if in.UID == "" {
		fields["uid"] = "uid is required"
	}
	if !validCpf(in.Cpf) {
		fields["cpf"] = "cpf must be 11 digits"
	}
	if len(fields) > 0 {
		return ports.MessageOutput{}, &domain.ValidationError{Fields: fields}
	}

	if err := uc.repo.UpdateCpf(ctx, in.UID, in.Cpf); err != nil {
		return ports.MessageOutput{}, err
	}

	uc.log.Info().Str("uid", in.UID).Msg("cpf updated")
	return ports.MessageOutput{Msg: "ok"}, nil
}
