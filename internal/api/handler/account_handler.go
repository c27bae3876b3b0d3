package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lavex/account-service/internal/api/metrics"
	"github.com/lavex/account-service/internal/api/middleware"
	"github.com/lavex/account-service/internal/core/domain"
	"github.com/lavex/account-service/internal/core/ports"
)

// UseCaseResolver hands out a fresh use-case instance per request; the
// dependency resolver satisfies it.
type UseCaseResolver interface {
	RegisterUseCase() (ports.RegisterUseCase, error)
	LoginUseCase() (ports.LoginUseCase, error)
	RetrieveUserUseCase() (ports.RetrieveUserUseCase, error)
	UpdateAddressUseCase() (ports.UpdateAddressUseCase, error)
	UpdateCpfUseCase() (ports.UpdateCpfUseCase, error)
}

// ReplayChecker guards registration retries carrying an Idempotency-Key.
type ReplayChecker interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

// AccountHandler translates HTTP requests into use-case invocations. Domain
// failures propagate as typed errors for the central error handler to map.
type AccountHandler struct {
	resolver UseCaseResolver
	dedup    ReplayChecker
	log      zerolog.Logger
}

func NewAccountHandler(resolver UseCaseResolver, dedup ReplayChecker, log zerolog.Logger) *AccountHandler {
	return &AccountHandler{resolver: resolver, dedup: dedup, log: log}
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string           false  "Idempotency key to absorb duplicate submissions"
// @Param        body             body      registerRequest  true   "Account details"
// @Success      201              {object}  messageResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Router       /register-account [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("body", "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// The verified token subject wins over a body-supplied uid; the body uid
	// only matters when the route runs without the bearer gate.
	uid := req.UID
	if verified, ok := c.Get(middleware.UIDKey).(string); ok && verified != "" {
		uid = verified
	}

	key := c.Request().Header.Get("Idempotency-Key")
	if key != "" && h.dedup != nil {
		seen, err := h.dedup.IsDuplicate(c.Request().Context(), key)
		if err != nil {
			h.log.Warn().Err(err).Msg("dedup check failed, processing anyway")
		} else if seen {
			metrics.RegisterDedupTotal.WithLabelValues("hit").Inc()
			h.log.Info().Str("idempotency_key", key).Msg("idempotent replay")
			return c.JSON(http.StatusCreated, messageResponse{Msg: "ok"})
		} else {
			metrics.RegisterDedupTotal.WithLabelValues("miss").Inc()
		}
	}

	uc, err := h.resolver.RegisterUseCase()
	if err != nil {
		return err
	}

	out, err := uc.Execute(c.Request().Context(), ports.RegisterInput{
		UID:      uid,
		FullName: req.FullName,
		Cpf:      req.Cpf,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.HashedPassword,
		Address: ports.AddressInput{
			City:       req.Address.City,
			Cep:        req.Address.Cep,
			StreetName: req.Address.StreetName,
			Number:     req.Address.Number,
			Complement: req.Address.Complement,
		},
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	if key != "" && h.dedup != nil {
		if err := h.dedup.Mark(c.Request().Context(), key); err != nil {
			h.log.Warn().Err(err).Str("idempotency_key", key).Msg("failed to set dedup key")
		}
	}

	return c.JSON(http.StatusCreated, messageResponse{Msg: out.Msg})
}

// Login authenticates a phone/secret pair.
//
// @Summary      Login
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("body", "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	uc, err := h.resolver.LoginUseCase()
	if err != nil {
		return err
	}

	out, err := uc.Execute(c.Request().Context(), ports.LoginInput{
		Phone:    req.Phone,
		Password: req.HashedPassword,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Msg: out.Msg})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// RetrieveUser returns the full profile of the authenticated caller.
//
// @Summary      Retrieve the caller's profile
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /retrieve-user [get]
func (h *AccountHandler) RetrieveUser(c echo.Context) error {
	uid, err := ctxUID(c)
	if err != nil {
		return err
	}

	uc, err := h.resolver.RetrieveUserUseCase()
	if err != nil {
		return err
	}

	profile, err := uc.Execute(c.Request().Context(), ports.RetrieveUserInput{UID: uid})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		Msg:      profile.Msg,
		UID:      profile.UID,
		FullName: profile.FullName,
		Cpf:      profile.Cpf,
		Email:    profile.Email,
		Phone:    profile.Phone,
		Address: addressResponse{
			City:       profile.Address.City,
			Cep:        profile.Address.Cep,
			StreetName: profile.Address.StreetName,
			Number:     profile.Address.Number,
			Complement: profile.Address.Complement,
		},
	})
}

// UpdateAddress overwrites the caller's stored address.
//
// @Summary      Update the caller's address
// @Tags         account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addressRequest  true  "Replacement address"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /update-address [patch]
func (h *AccountHandler) UpdateAddress(c echo.Context) error {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("body", "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	uid, err := ctxUID(c)
	if err != nil {
		return err
	}

	uc, err := h.resolver.UpdateAddressUseCase()
	if err != nil {
		return err
	}

	out, err := uc.Execute(c.Request().Context(), ports.UpdateAddressInput{
		UID: uid,
		Address: ports.AddressInput{
			City:       req.City,
			Cep:        req.Cep,
			StreetName: req.StreetName,
			Number:     req.Number,
			Complement: req.Complement,
		},
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Msg: out.Msg})
}

// UpdateCpf overwrites the caller's stored cpf.
//
// @Summary      Update the caller's cpf
// @Tags         account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateCpfRequest  true  "Replacement cpf"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /update-cpf [patch]
func (h *AccountHandler) UpdateCpf(c echo.Context) error {
	var req updateCpfRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("body", "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	uid, err := ctxUID(c)
	if err != nil {
		return err
	}

	uc, err := h.resolver.UpdateCpfUseCase()
	if err != nil {
		return err
	}

	out, err := uc.Execute(c.Request().Context(), ports.UpdateCpfInput{UID: uid, Cpf: req.Cpf})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Msg: out.Msg})
}
