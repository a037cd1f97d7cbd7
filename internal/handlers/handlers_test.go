package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/imovia/api/internal/auth"
	"github.com/imovia/api/internal/logger"
	"github.com/imovia/api/internal/middleware"
	"github.com/imovia/api/internal/models"
	"github.com/imovia/api/internal/policy"
	"github.com/imovia/api/internal/services"
)

// Shared fixtures for handler tests: mocked services, a static user
// loader and a router builder with the production middleware chain.

// staticUserLoader resolves token subjects from an in-memory map.
type staticUserLoader struct {
	users map[string]*models.User
}

func (l *staticUserLoader) LoadUser(c *gin.Context, id string) (*models.User, error) {
	return l.users[id], nil
}

// testAuthEnv bundles the token issuer and loader used by authed routes.
type testAuthEnv struct {
	issuer *auth.TokenIssuer
	loader *staticUserLoader
}

func newTestAuthEnv(users ...*models.User) *testAuthEnv {
	byID := make(map[string]*models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return &testAuthEnv{
		issuer: auth.NewTokenIssuer("handler-test-secret", time.Hour),
		loader: &staticUserLoader{users: byID},
	}
}

// tokenFor issues a valid session token for the given user.
func (e *testAuthEnv) tokenFor(u *models.User) string {
	token, err := e.issuer.Issue(*u)
	if err != nil {
		panic(err)
	}
	return token
}

// newTestRouter creates a gin engine with the request-id and logging
// middleware attached, mirroring the production chain.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger.New("test")))
	return router
}

// MockPropertyService is a mock implementation of services.PropertyService for testing
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) Search(ctx context.Context, f models.Filter) ([]models.Property, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyService) Featured(ctx context.Context) ([]models.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) ListForActor(ctx context.Context, actor *models.User) ([]models.Property, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyService) Create(ctx context.Context, actor *models.User, input services.PropertyInput) (*models.Property, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) Update(ctx context.Context, actor *models.User, id string, input services.PropertyInput) (*models.Property, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) Delete(ctx context.Context, actor *models.User, id string) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockPropertyService) ToggleFeatured(ctx context.Context, actor *models.User, id string) (*models.Property, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

// MockUserService is a mock implementation of services.UserService for testing
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context, actor *models.User) ([]models.User, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, actor *models.User, id string) (*models.User, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, actor *models.User, input services.UserInput) (*models.User, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, actor *models.User, id string, input services.UserUpdateInput) (*models.User, error) {
	args := m.Called(ctx, actor, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, actor *models.User, id string) (services.DeleteResult, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(services.DeleteResult), args.Error(1)
}

func (m *MockUserService) FormCapabilities(ctx context.Context, actor *models.User, targetID string) (policy.FormCapabilities, error) {
	args := m.Called(ctx, actor, targetID)
	return args.Get(0).(policy.FormCapabilities), args.Error(1)
}

// MockAuthService is a mock implementation of services.AuthService for testing
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

// MockSettingsService is a mock implementation of services.SettingsService for testing
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context) (models.SiteSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.SiteSettings), args.Error(1)
}

func (m *MockSettingsService) Update(ctx context.Context, actor *models.User, settings models.SiteSettings) error {
	args := m.Called(ctx, actor, settings)
	return args.Error(0)
}

// MockDataService is a mock implementation of services.DataService for testing
type MockDataService struct {
	mock.Mock
}

func (m *MockDataService) Snapshot(ctx context.Context, actor *models.User) (services.DataSnapshot, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(services.DataSnapshot), args.Error(1)
}
