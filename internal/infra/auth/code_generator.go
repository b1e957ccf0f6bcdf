package auth

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"

	"employeesys/internal/domain/service"
)

// randomCodeGenerator produces numeric verification codes from crypto/rand.
type randomCodeGenerator struct{}

// NewCodeGenerator is the constructor for randomCodeGenerator.
func NewCodeGenerator() service.CodeGenerator {
	return &randomCodeGenerator{}
}

// NumericCode returns a string of exactly length decimal digits.
// Leading zeros are allowed; "0042" is a valid 4-digit code.
func (g *randomCodeGenerator) NumericCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.Errorf("invalid code length: %d", length)
	}

	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", errors.Wrap(err, "failed to read random digit")
		}
		digits[i] = byte('0' + n.Int64())
	}

	return string(digits), nil
}
