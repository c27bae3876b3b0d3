package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lavex/account-service/internal/core/domain"
	"github.com/lavex/account-service/internal/core/ports"
)

func validRegisterInput() ports.RegisterInput {
	return ports.RegisterInput{
		UID:      "u1",
		FullName: "Vinicius Abade",
		Cpf:      "77777777777",
		Email:    "abade@lavex.com",
		Phone:    "+5541977777777",
		Password: "s3cret",
		Address: ports.AddressInput{
			City:       "Curitiba",
			Cep:        "77777777",
			StreetName: "Rua Beltrano do Ciclano",
			Number:     "777",
			Complement: "Apto 7",
		},
	}
}

func TestRegister_HashesSecret(t *testing.T) {
	repo := newStubAccountRepo()
	uc := NewRegisterUseCase(repo, zerolog.Nop())

	out, err := uc.Execute(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if out.Msg != "ok" {
		t.Fatalf("expected msg ok, got %q", out.Msg)
	}

	stored := repo.users["u1"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if stored.HashedPassword == "s3cret" {
		t.Fatalf("plaintext secret was persisted")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match secret: %v", err)
	}
	if stored.Address.City != "Curitiba" {
		t.Fatalf("unexpected address: %+v", stored.Address)
	}
}

func TestRegister_Validation(t *testing.T) {
	repo := newStubAccountRepo()
	uc := NewRegisterUseCase(repo, zerolog.Nop())

	in := validRegisterInput()
	in.UID = ""
	in.Cpf = "123"
	in.Password = ""

	_, err := uc.Execute(context.Background(), in)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"uid", "cpf", "hashed_password"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Fatalf("expected %s in field errors, got %v", field, ve.Fields)
		}
	}
	if len(repo.users) != 0 {
		t.Fatalf("invalid input must not be persisted")
	}
}

func TestRegister_DuplicatePhone(t *testing.T) {
	repo := newStubAccountRepo()
	uc := NewRegisterUseCase(repo, zerolog.Nop())

	if _, err := uc.Execute(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	dup := validRegisterInput()
	dup.UID = "u2"
	if _, err := uc.Execute(context.Background(), dup); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}
