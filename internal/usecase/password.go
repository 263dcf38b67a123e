package usecase

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts bcrypt so credential flows stay testable
// without paying the hashing cost in unit tests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashed, password string) bool
}

type bcryptHasher struct{}

func (bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (bcryptHasher) Compare(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
