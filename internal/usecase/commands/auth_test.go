//go:build unit

package commands_test

import (
	"context"
	"testing"

	"ticketqueen/internal/pkg/errs"
	"ticketqueen/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("signup then login", func(t *testing.T) {
		h := newHarness(t)

		acc, err := h.auth.Signup(ctx, commands.SignupInput{Username: "alice", Email: "Alice@Example.com", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", acc.Email)

		got, err := h.auth.Login(ctx, commands.LoginInput{Email: "alice@example.com", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, acc.ID, got.ID)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.auth.Signup(ctx, commands.SignupInput{Username: "alice", Email: "alice@example.com", Password: "s3cret-pass"})
		require.NoError(t, err)

		_, err = h.auth.Signup(ctx, commands.SignupInput{Username: "alice2", Email: "ALICE@example.com", Password: "other-pass"})

		assert.True(t, errs.Is(err, commands.ErrEmailAlreadyRegistered), "got %v", err)
	})

	t.Run("invalid signup input", func(t *testing.T) {
		h := newHarness(t)
		cases := map[string]commands.SignupInput{
			"short username": {Username: "al", Email: "al@example.com", Password: "s3cret-pass"},
			"bad email":      {Username: "alice", Email: "not-an-email", Password: "s3cret-pass"},
			"short password": {Username: "alice", Email: "alice@example.com", Password: "short"},
		}
		for name, in := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := h.auth.Signup(ctx, in)
				assert.True(t, errs.Is(err, commands.ErrInvalidSignup), "got %v", err)
			})
		}
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.auth.Signup(ctx, commands.SignupInput{Username: "alice", Email: "alice@example.com", Password: "s3cret-pass"})
		require.NoError(t, err)

		_, err = h.auth.Login(ctx, commands.LoginInput{Email: "alice@example.com", Password: "wrong-pass"})
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials), "got %v", err)

		_, err = h.auth.Login(ctx, commands.LoginInput{Email: "bob@example.com", Password: "s3cret-pass"})
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials), "got %v", err)
	})
}
