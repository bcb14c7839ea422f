//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"ticketqueen/internal/handler/api"
	resdto "ticketqueen/internal/handler/dto/response"
	"ticketqueen/internal/pkg/errs"
	"ticketqueen/internal/usecase/commands"
	"ticketqueen/tests/common/builder"
	"ticketqueen/tests/common/httptest"
	"ticketqueen/tests/common/testutil"
	commandsmock "ticketqueen/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/api/signup", s.handler.Signup)
	s.router.POST("/api/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestSignup() {
	url := "/api/signup"
	ub := builder.NewUserBuilder()
	reqDTO := ub.BuildSignupRequestDTO()
	account := ub.BuildAccount()

	s.Run("success: 201 with the account", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), commands.SignupInput{
			Username: ub.Username,
			Email:    ub.Email,
			Password: ub.Password,
		}).Return(account, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqDTO)

		var body resdto.AccountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(account.ID, body.ID)
		s.Equal(account.Username, body.Username)
		s.Equal(account.Email, body.Email)
		s.NotContains(rec.Body.String(), "password")
	})

	s.Run("error: 400 when a field is missing", func() {
		for _, field := range []string{"username", "email", "password"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), reqDTO, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "invalid data", commandsError: errs.Mark(errors.New("email too long"), commands.ErrInvalidSignup), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid signup data"},
			{name: "email taken", commandsError: commands.ErrEmailAlreadyRegistered, expectedStatus: http.StatusConflict, expectedMsg: "Email already registered"},
			{name: "unexpected", commandsError: errors.New("db down"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqDTO)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/login"
	ab := builder.NewAuthBuilder()
	reqDTO := ab.BuildDTO()
	account := builder.NewUserBuilder().BuildAccount()

	s.Run("success: 200 with the account", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), commands.LoginInput{
			Email:    ab.Email,
			Password: ab.Password,
		}).Return(account, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqDTO)

		var body resdto.AccountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(account.ID, body.ID)
	})

	s.Run("error: 400 for missing password", func() {
		body := testutil.DtoMap(s.T(), reqDTO, testutil.Field("password", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 for wrong credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqDTO)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqDTO)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
