package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"employeesys/config"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	password := "my-secret-password-123"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_CheckInvalidHash(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(nil)

	assert.False(t, hasher.Check("any-password", "not-a-bcrypt-hash"))
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
		{name: "zero cost", cfg: &config.Config{Auth: &config.AuthConfig{}}, want: bcrypt.DefaultCost},
		{name: "cost above max", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, want: bcrypt.DefaultCost},
		{name: "valid cost", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}, want: 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			hasher, ok := NewBcryptHasher(tc.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tc.want, hasher.cost)
		})
	}
}
