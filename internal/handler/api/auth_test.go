//go:build unit

package api_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"rental-market/internal/handler/api"
	resdto "rental-market/internal/handler/dto/response"
	"rental-market/internal/infra/state"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/jwt"
	"rental-market/internal/usecase"
	"rental-market/internal/usecase/queries"
	"rental-market/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// The auth stack has no external collaborators, so the suite runs against
// the real use case over an in-memory user store.
type AuthHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	users      *state.UserStore
	jwtService *jwt.Service
	handler    *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.users = state.NewUserStore()
	s.jwtService = jwt.NewService("test-secret", time.Hour)
	authUseCase := usecase.NewAuthUseCase(s.users, s.jwtService, clock.NewRealClock())
	s.handler = api.NewAuthHandler(authUseCase)

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Stand-in for the auth middleware
		if raw := c.GetHeader("X-Actor-ID"); raw != "" {
			id, err := uuid.Parse(raw)
			s.Require().NoError(err)
			c.Set("actor_id", id)
		}
		s.handler.Me(c)
	})
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) register(email string) *resdto.RegisterResponse {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register",
		map[string]any{"email": email, "password": "password123"}, "")

	var response resdto.RegisterResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	return &response
}

func (s *AuthHandlerTestSuite) TestRegister() {
	s.Run("success: returns 201 Created with the account", func() {
		response := s.register("alice@example.com")

		s.Equal("alice@example.com", response.User.Email)
		s.NotEqual(uuid.Nil, response.User.ID)
	})

	s.Run("error: 409 on duplicate email", func() {
		s.register("bob@example.com")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register",
			map[string]any{"email": "bob@example.com", "password": "password123"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})

	s.Run("error: 400 on malformed email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register",
			map[string]any{"email": "not-an-email", "password": "password123"}, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 on short password", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register",
			map[string]any{"email": "carol@example.com", "password": "short"}, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.register("alice@example.com")

	s.Run("success: returns a verifiable token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
			map[string]any{"email": "alice@example.com", "password": "password123"}, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotEmpty(response.AccessToken)

		claims, err := s.jwtService.ValidateToken(response.AccessToken)
		s.Require().NoError(err)
		s.Equal(response.User.ID, claims.AccountID)
	})

	s.Run("error: 401 on wrong password", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
			map[string]any{"email": "alice@example.com", "password": "wrongpassword"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 401 on unknown email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
			map[string]any{"email": "nobody@example.com", "password": "password123"}, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	registered := s.register("alice@example.com")

	s.Run("error: 401 without an actor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("success: returns the current account", func() {
		rec := s.performWithActor(http.MethodGet, "/auth/me", registered.User.ID)

		var view queries.UserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Equal("alice@example.com", view.Email)
	})

	s.Run("error: 404 for an unknown actor", func() {
		rec := s.performWithActor(http.MethodGet, "/auth/me", uuid.New())
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) performWithActor(method, path string, actorID uuid.UUID) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(method, path, nil)
	req.Header.Set("X-Actor-ID", actorID.String())
	w := nethttptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)
}
