// password.go - Password hashing for stored user credentials

package credentials // Declares the package name

import ( // Import required packages
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// ErrPasswordTooLong is returned for passwords bcrypt would reject (over 72 bytes).
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// Hasher hashes plaintext passwords into the form kept in users.password.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher using the given bcrypt cost.
func NewHasher(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d outside [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Hasher{cost: cost}, nil
}

// Hash returns a 60-character bcrypt hash of password.
func (h *Hasher) Hash(password string) (string, error) {
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
