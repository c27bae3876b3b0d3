package handler

// addressRequest carries the embedded address fields on registration and
// address updates. Complement is the only optional field.
type addressRequest struct {
	City       string `json:"city" validate:"required"`
	Cep        string `json:"cep" validate:"required"`
	StreetName string `json:"street_name" validate:"required"`
	Number     string `json:"number" validate:"required"`
	Complement string `json:"complement"`
}

// registerRequest is the POST /register-account body. HashedPassword carries
// the plaintext secret despite the name; the wire field is kept for client
// compatibility and the secret is hashed before persistence. UID is only
// honoured when registration runs without the bearer gate; otherwise the
// verified token subject wins.
type registerRequest struct {
	UID            string         `json:"uid,omitempty"`
	FullName       string         `json:"full_name" validate:"required"`
	Cpf            string         `json:"cpf" validate:"required,len=11,numeric"`
	Email          string         `json:"email" validate:"required,email"`
	Phone          string         `json:"phone" validate:"required,e164"`
	HashedPassword string         `json:"hashed_password" validate:"required"`
	Address        addressRequest `json:"address"`
}

// loginRequest is the POST /login body.
type loginRequest struct {
	Phone          string `json:"phone" validate:"required"`
	HashedPassword string `json:"hashed_password" validate:"required"`
}

// updateCpfRequest is the PATCH /update-cpf body.
type updateCpfRequest struct {
	Cpf string `json:"cpf" validate:"required,len=11,numeric"`
}

// errorResponse mirrors the envelope rendered by the central error handler;
// referenced by the swagger annotations.
type errorResponse struct {
	Msg    string            `json:"msg"`
	Errors map[string]string `json:"errors,omitempty"`
}

// messageResponse acknowledges a successful mutation.
type messageResponse struct {
	Msg string `json:"msg"`
}

// profileResponse is the GET /retrieve-user body. The stored password hash is
// never rendered.
type profileResponse struct {
	Msg      string          `json:"msg"`
	UID      string          `json:"uid"`
	FullName string          `json:"full_name"`
	Cpf      string          `json:"cpf"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	Address  addressResponse `json:"address"`
}

type addressResponse struct {
	City       string `json:"city"`
	Cep        string `json:"cep"`
	StreetName string `json:"street_name"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
}
