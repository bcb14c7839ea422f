//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"ticketqueen/internal/handler/dto/response"
	"ticketqueen/tests/common/builder"
	"ticketqueen/tests/common/dbtest"
	"ticketqueen/tests/common/httptest"
	"ticketqueen/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL = "/api/signup"
	loginURL  = "/api/login"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestSignupAndLogin() {
	s.Run("Normal case: signed up user can log in", func() {
		t := s.T()
		ub := builder.NewUserBuilder().WithEmail("carol@example.com").WithUsername("carol")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, ub.BuildSignupRequestDTO())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var account response.AccountResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &account))
		require.Equal(t, "carol@example.com", account.Email)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, map[string]any{
			"email":    "carol@example.com",
			"password": ub.Password,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var loggedIn response.AccountResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loggedIn))
		require.Equal(t, account.ID, loggedIn.ID)
	})

	s.Run("Error case: second signup with the same email is 409", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "alice", "alice@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, builder.NewUserBuilder().BuildSignupRequestDTO())
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Email already registered")
	})

	s.Run("Error case: wrong password and unknown email are both 401", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "alice", "alice@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) { a.Password = "wrong-password" }).BuildDTO())
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) { a.Email = "nobody@example.com" }).BuildDTO())
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("Normal case: seeded user logs in with the fixture password", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "alice", "alice@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, builder.NewAuthBuilder().BuildDTO())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}
