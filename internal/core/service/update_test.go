package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lavex/account-service/internal/core/domain"
	"github.com/lavex/account-service/internal/core/ports"
)

func TestRetrieveUser_ReadAfterWrite(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(t, repo)
	uc := NewRetrieveUserUseCase(repo, zerolog.Nop())

	profile, err := uc.Execute(context.Background(), ports.RetrieveUserInput{UID: "u1"})
	if err != nil {
		t.Fatalf("retrieve failed: %v", err)
	}
	if profile.Cpf != "77777777777" || profile.Phone != "+5541977777777" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.Address.City != "Curitiba" {
		t.Fatalf("unexpected address: %+v", profile.Address)
	}
}

func TestRetrieveUser_NotFound(t *testing.T) {
	repo := newStubAccountRepo()
	uc := NewRetrieveUserUseCase(repo, zerolog.Nop())

	if _, err := uc.Execute(context.Background(), ports.RetrieveUserInput{UID: "ghost"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateAddress_OverwritesOnlyAddress(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(t, repo)
	uc := NewUpdateAddressUseCase(repo, zerolog.Nop())

	out, err := uc.Execute(context.Background(), ports.UpdateAddressInput{
		UID: "u1",
		Address: ports.AddressInput{
			City:       "Sao Paulo",
			Cep:        "01310100",
			StreetName: "Avenida Paulista",
			Number:     "1000",
		},
	})
	if err != nil {
		t.Fatalf("update address failed: %v", err)
	}
	if out.Msg != "ok" {
		t.Fatalf("expected msg ok, got %q", out.Msg)
	}

	stored := repo.users["u1"]
	if stored.Address.City != "Sao Paulo" || stored.Address.Cep != "01310100" {
		t.Fatalf("address not overwritten: %+v", stored.Address)
	}
	if stored.Cpf != "77777777777" || stored.Phone != "+5541977777777" || stored.Email != "abade@lavex.com" {
		t.Fatalf("non-address fields changed: %+v", stored)
	}
}

func TestUpdateAddress_NotFound(t *testing.T) {
	repo := newStubAccountRepo()
	uc := NewUpdateAddressUseCase(repo, zerolog.Nop())

	_, err := uc.Execute(context.Background(), ports.UpdateAddressInput{UID: "ghost"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateCpf_Overwrites(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(t, repo)
	uc := NewUpdateCpfUseCase(repo, zerolog.Nop())

	if _, err := uc.Execute(context.Background(), ports.UpdateCpfInput{UID: "u1", Cpf: "11111111111"}); err != nil {
		t.Fatalf("update cpf failed: %v", err)
	}
	if repo.users["u1"].Cpf != "11111111111" {
		t.Fatalf("cpf not overwritten: %q", repo.users["u1"].Cpf)
	}
	if repo.users["u1"].Address.City != "Curitiba" {
		t.Fatalf("address changed by cpf update")
	}
}

func TestUpdateCpf_Validation(t *testing.T) {
	repo := newStubAccountRepo()
	uc := NewUpdateCpfUseCase(repo, zerolog.Nop())

	_, err := uc.Execute(context.Background(), ports.UpdateCpfInput{UID: "u1", Cpf: "7a7"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["cpf"]; !ok {
		t.Fatalf("expected cpf field error, got %v", ve.Fields)
	}
}
