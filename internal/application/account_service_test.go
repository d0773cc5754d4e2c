package application

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhub-dev/carhub-api/pkg/helpers"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newAccountService(users *fakeUserRepo) *AccountService {
	return NewAccountService(users, helpers.NewJWTManager("test-secret", 0), testLogger(), nil, false)
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:          "Alice Johnson",
		Email:         "alice@example.com",
		ContactNumber: "+12025550100",
		Password:      "secret123",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account and strips password", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := newAccountService(users)

		u, err := svc.Register(ctx, validRegisterInput())
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.Empty(t, u.Password)

		stored, err := users.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", stored.Password)
		assert.True(t, helpers.VerifyPassword(stored.Password, "secret123"))
	})

	t.Run("rejects short name", func(t *testing.T) {
		svc := newAccountService(newFakeUserRepo())
		in := validRegisterInput()
		in.Name = "Al"

		_, err := svc.Register(ctx, in)
		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "name")
	})

	t.Run("rejects short password without touching the store", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := newAccountService(users)
		in := validRegisterInput()
		in.Password = "abcd"

		_, err := svc.Register(ctx, in)
		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "didnt match minimum length", ve.Fields["password"])

		_, err = users.GetByEmail(ctx, in.Email)
		assert.Error(t, err)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		svc := newAccountService(newFakeUserRepo())
		in := validRegisterInput()
		in.Email = "not-an-email"

		_, err := svc.Register(ctx, in)
		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "email")
	})

	t.Run("reports every invalid field at once", func(t *testing.T) {
		svc := newAccountService(newFakeUserRepo())

		_, err := svc.Register(ctx, RegisterInput{Name: "x", Email: "nope", Password: "abc"})
		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Len(t, ve.Fields, 3)
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := newAccountService(users)

		_, err := svc.Register(ctx, validRegisterInput())
		require.NoError(t, err)

		_, err = svc.Register(ctx, validRegisterInput())
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := newAccountService(users)

	registered, err := svc.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	t.Run("issues token carrying the account id", func(t *testing.T) {
		token, err := svc.Authenticate(ctx, "alice@example.com", "secret123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.JWT.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, claims.UserID)
		// TTL of zero means no expiry claim on the token.
		assert.Nil(t, claims.ExpiresAt)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		_, errPwd := svc.Authenticate(ctx, "alice@example.com", "wrongpass")
		_, errEmail := svc.Authenticate(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, errPwd, ErrInvalidCredentials)
		assert.ErrorIs(t, errEmail, ErrInvalidCredentials)
	})
}

func TestJWTManagerWithTTL(t *testing.T) {
	m := helpers.NewJWTManager("test-secret", time.Hour)
	token, err := m.GenerateToken("user-1")
	require.NoError(t, err)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.NotNil(t, claims.ExpiresAt)
}
