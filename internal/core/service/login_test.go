package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lavex/account-service/internal/core/domain"
	"github.com/lavex/account-service/internal/core/ports"
)

func seedAccount(t *testing.T, repo *stubAccountRepo) {
	t.Helper()
	uc := NewRegisterUseCase(repo, zerolog.Nop())
	if _, err := uc.Execute(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("seed register failed: %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(t, repo)
	uc := NewLoginUseCase(repo, zerolog.Nop())

	out, err := uc.Execute(context.Background(), ports.LoginInput{Phone: "+5541977777777", Password: "s3cret"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if out.Msg != "ok" {
		t.Fatalf("expected msg ok, got %q", out.Msg)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(t, repo)
	uc := NewLoginUseCase(repo, zerolog.Nop())

	_, err := uc.Execute(context.Background(), ports.LoginInput{Phone: "+5541977777777", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownPhone(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(t, repo)
	uc := NewLoginUseCase(repo, zerolog.Nop())

	// Unknown phone is a not-found outcome, never a credentials failure.
	_, err := uc.Execute(context.Background(), ports.LoginInput{Phone: "+5511900000000", Password: "s3cret"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown phone must not map to ErrInvalidCredentials")
	}
}

func TestLogin_Validation(t *testing.T) {
	repo := newStubAccountRepo()
	uc := NewLoginUseCase(repo, zerolog.Nop())

	_, err := uc.Execute(context.Background(), ports.LoginInput{})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected two field errors, got %v", ve.Fields)
	}
}
