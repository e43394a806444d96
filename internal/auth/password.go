package auth

import "golang.org/x/crypto/bcrypt"

//go:generate mockgen -source=password.go -destination=mock/password_mock.go -package=mock
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// dummyHash is compared against when the name is unknown, so a failed lookup costs
// the same as a wrong password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
