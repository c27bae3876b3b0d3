package domain

// User models a registered account holder. Phone is the lookup key for login
// and is unique across the store; UID is the identity-provider subject the
// record is keyed by for authenticated reads and updates.
type User struct {
	UID            string  `json:"uid" bson:"uid"`
	FullName       string  `json:"full_name" bson:"full_name"`
	Cpf            string  `json:"cpf" bson:"cpf"`
	Email          string  `json:"email" bson:"email"`
	Phone          string  `json:"phone" bson:"phone"`
	HashedPassword string  `json:"-" bson:"hashed_password"`
	Address        Address `json:"address" bson:"address"`
}

// Address is always embedded in a User, never stored on its own.
type Address struct {
	City       string `json:"city" bson:"city"`
	Cep        string `json:"cep" bson:"cep"`
	StreetName string `json:"street_name" bson:"street_name"`
	Number     string `json:"number" bson:"number"`
	Complement string `json:"complement" bson:"complement"`
}
