package ports

import "context"

// AddressInput carries address fields into Register and UpdateAddress.
type AddressInput struct {
	City       string
	Cep        string
	StreetName string
	Number     string
	Complement string
}

// RegisterInput carries all data needed to create a new account. Password is
// the plaintext secret; the use case hashes it before anything is persisted.
type RegisterInput struct {
	UID      string
	FullName string
	Cpf      string
	Email    string
	Phone    string
	Password string
	Address  AddressInput
}

// LoginInput carries the login lookup key and the presented secret.
type LoginInput struct {
	Phone    string
	Password string
}

// RetrieveUserInput identifies the account to read by its verified uid.
type RetrieveUserInput struct {
	UID string
}

// UpdateAddressInput carries the caller's verified uid plus the replacement
// address.
type UpdateAddressInput struct {
	UID     string
	Address AddressInput
}

// UpdateCpfInput carries the caller's verified uid plus the replacement cpf.
type UpdateCpfInput struct {
	UID string
	Cpf string
}

// MessageOutput is the success acknowledgement returned by mutating use cases.
type MessageOutput struct {
	Msg string
}

// UserProfile is the full account view returned by RetrieveUser. The stored
// password hash is intentionally absent.
type UserProfile struct {
	Msg      string
	UID      string
	FullName string
	Cpf      string
	Email    string
	Phone    string
	Address  AddressInput
}

// Each use case is a single-method transformer from input to output,
// stateless apart from its injected AccountRepository.

type RegisterUseCase interface {
	Execute(ctx context.Context, in RegisterInput) (MessageOutput, error)
}

type LoginUseCase interface {
	Execute(ctx context.Context, in LoginInput) (MessageOutput, error)
}

type RetrieveUserUseCase interface {
	Execute(ctx context.Context, in RetrieveUserInput) (UserProfile, error)
}

type UpdateAddressUseCase interface {
	Execute(ctx context.Context, in UpdateAddressInput) (MessageOutput, error)
}

type UpdateCpfUseCase interface {
	Execute(ctx context.Context, in UpdateCpfInput) (MessageOutput, error)
}
