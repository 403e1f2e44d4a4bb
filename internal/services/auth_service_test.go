package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userdash/dashboard-backend/internal/domain/entities"
	domainerrors "github.com/userdash/dashboard-backend/internal/domain/errors"
	"github.com/userdash/dashboard-backend/internal/domain/validation"
	"github.com/userdash/dashboard-backend/internal/services"
)

func validationMessages(t *testing.T, err error) []string {
	t.Helper()

	require.Error(t, err)
	verrs, ok := domainerrors.AsValidation(err)
	require.True(t, ok, "expected validation errors, got %v", err)
	return verrs.Messages
}

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv(t)
	registered := env.register(t, "Alice", "Martin", "alice@example.com")

	user, err := env.authSvc.Login(context.Background(), services.LoginInput{
		Email:    "alice@example.com",
		Password: "longpass1",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLoginMissingFields(t *testing.T) {
	env := newTestEnv(t)

	for _, input := range []services.LoginInput{
		{},
		{Email: "alice@example.com"},
		{Password: "longpass1"},
	} {
		_, err := env.authSvc.Login(context.Background(), input)
		assert.Equal(t, []string{validation.MsgAllFieldsNeeded}, validationMessages(t, err))
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Alice", "Martin", "alice@example.com")
	ctx := context.Background()

	_, unknownErr := env.authSvc.Login(ctx, services.LoginInput{
		Email:    "nobody@example.com",
		Password: "longpass1",
	})
	_, wrongPwdErr := env.authSvc.Login(ctx, services.LoginInput{
		Email:    "alice@example.com",
		Password: "wrongpass1",
	})

	// Unknown account and wrong password must read identically so the
	// login form cannot be used to enumerate accounts.
	assert.Equal(t,
		validationMessages(t, unknownErr),
		validationMessages(t, wrongPwdErr),
	)
	assert.Equal(t, []string{validation.MsgLoginInvalid}, validationMessages(t, unknownErr))
}

func TestLoginEmailIsCaseSensitive(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Alice", "Martin", "alice@example.com")

	_, err := env.authSvc.Login(context.Background(), services.LoginInput{
		Email:    "Alice@example.com",
		Password: "longpass1",
	})
	assert.Equal(t, []string{validation.MsgLoginInvalid}, validationMessages(t, err))
}

func TestLoginCorruptStoredHash(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// A record written without hashing, as if imported from a broken
	// migration.
	corrupt := &entities.User{
		FirstName:    "Eve",
		LastName:     "Broken",
		Email:        "eve@example.com",
		PasswordHash: "plaintext-password",
		Description:  entities.DefaultDescription,
		Level:        entities.LevelNormal,
	}
	require.NoError(t, env.users.Create(ctx, corrupt))

	_, err := env.authSvc.Login(ctx, services.LoginInput{
		Email:    "eve@example.com",
		Password: "plaintext-password",
	})
	assert.Equal(t, []string{validation.MsgAccountCorrupt}, validationMessages(t, err))
}

func TestLoginDoesNotMutate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	registered := env.register(t, "Alice", "Martin", "alice@example.com")

	before, err := env.users.FindByID(ctx, registered.ID)
	require.NoError(t, err)

	_, _ = env.authSvc.Login(ctx, services.LoginInput{Email: "alice@example.com", Password: "wrong"})
	_, err = env.authSvc.Login(ctx, services.LoginInput{Email: "alice@example.com", Password: "longpass1"})
	require.NoError(t, err)

	after, err := env.users.FindByID(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
