package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lavex/account-service/internal/core/domain"
	"github.com/lavex/account-service/internal/core/ports"
)

// RegisterUseCase creates a new account. The plaintext secret is hashed with
// bcrypt before the record ever reaches the repository.
type RegisterUseCase struct {
	repo ports.AccountRepository
	log  zerolog.Logger
}

func NewRegisterUseCase(repo ports.AccountRepository, log zerolog.Logger) *RegisterUseCase {
	return &RegisterUseCase{repo: repo, log: log}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, in ports.RegisterInput) (ports.MessageOutput, error) {
	if err := validateRegister(in); err != nil {
		return ports.MessageOutput{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return ports.MessageOutput{}, err
	}

	user := &domain.User{
		UID:            in.UID,
		FullName:       in.FullName,
		Cpf:            in.Cpf,
		Email:          in.Email,
		Phone:          in.Phone,
		HashedPassword: string(hash),
		Address:        toAddress(in.Address),
	}

	if err := uc.repo.Register(ctx, user); err != nil {
		return ports.MessageOutput{}, err
	}

	uc.log.Info().Str("uid", in.UID).Str("phone", in.Phone).Msg("account registered")
	return ports.MessageOutput{Msg: "ok"}, nil
}

func validateRegister(in ports.RegisterInput) error {
	fields := map[string]string{}
	if in.UID == "" {
		fields["uid"] = "uid is required"
	}
	if in.Phone == "" {
		fields["phone"] = "phone is required"
	}
	if in.Password == "" {
		fields["hashed_password"] = "secret is required"
	}
	if !validCpf(in.Cpf) {
		fields["cpf"] = "cpf must be 11 digits"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func toAddress(in ports.AddressInput) domain.Address {
	return domain.Address{
		City:       in.City,
		Cep:        in.Cep,
		StreetName: in.StreetName,
		Number:     in.Number,
		Complement: in.Complement,
	}
}

func validCpf(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
