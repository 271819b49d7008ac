package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"makeupstudio/internal/config"
	"makeupstudio/internal/domain"
)

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) Create(ctx context.Context, p *domain.AdminProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id int64) (*domain.AdminProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminProfile), args.Error(1)
}

func (m *mockProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.AdminProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminProfile), args.Error(1)
}

func (m *mockProfileRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) GenerateToken(adminID int64, email string) (string, error) {
	args := m.Called(adminID, email)
	return args.String(0), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		AdminEmails:        []string{"artist@example.com"},
		RegistrationSecret: "let-me-in",
	}
}

func TestService_Login_Success(t *testing.T) {
	repo := new(mockProfileRepo)
	jwtSvc := new(mockTokenIssuer)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	repo.On("GetByEmail", mock.Anything, "artist@example.com").Return(&domain.AdminProfile{
		ID:           7,
		Email:        "artist@example.com",
		PasswordHash: string(hashed),
	}, nil)
	jwtSvc.On("GenerateToken", int64(7), "artist@example.com").Return("login-token", nil)

	service := NewService(repo, jwtSvc, testConfig())

	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "Artist@Example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "login-token", result.Token)
	assert.Empty(t, result.Profile.PasswordHash)
	repo.AssertExpectations(t)
}

func TestService_Login_WrongPassword(t *testing.T) {
	repo := new(mockProfileRepo)
	jwtSvc := new(mockTokenIssuer)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	repo.On("GetByEmail", mock.Anything, "artist@example.com").Return(&domain.AdminProfile{
		ID:           7,
		Email:        "artist@example.com",
		PasswordHash: string(hashed),
	}, nil)

	service := NewService(repo, jwtSvc, testConfig())

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "artist@example.com",
		Password: "nope",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	jwtSvc.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	repo := new(mockProfileRepo)
	jwtSvc := new(mockTokenIssuer)

	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo, jwtSvc, testConfig())

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_RemovedFromAllowList(t *testing.T) {
	repo := new(mockProfileRepo)
	jwtSvc := new(mockTokenIssuer)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	repo.On("GetByEmail", mock.Anything, "former@example.com").Return(&domain.AdminProfile{
		ID:           8,
		Email:        "former@example.com",
		PasswordHash: string(hashed),
	}, nil)

	service := NewService(repo, jwtSvc, testConfig())

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "former@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrNotAdmin)
	jwtSvc.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestService_Register_InvalidSecretTouchesNothing(t *testing.T) {
	repo := new(mockProfileRepo)
	jwtSvc := new(mockTokenIssuer)

	service := NewService(repo, jwtSvc, testConfig())

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "artist@example.com",
		Password: "password123",
		Secret:   "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidSecret)
	repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_Success(t *testing.T) {
	repo := new(mockProfileRepo)
	jwtSvc := new(mockTokenIssuer)

	repo.On("ExistsByEmail", mock.Anything, "artist@example.com").Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.AdminProfile) bool {
		return p.Email == "artist@example.com" && p.PasswordHash != "" && p.PasswordHash != "password123"
	})).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.AdminProfile).ID = 1
	})
	jwtSvc.On("GenerateToken", int64(1), "artist@example.com").Return("fresh-token", nil)

	service := NewService(repo, jwtSvc, testConfig())

	result, err := service.Register(context.Background(), RegisterRequest{
		Email:    "Artist@Example.com ",
		Password: "password123",
		Secret:   "let-me-in",
	})

	assert.NoError(t, err)
	assert.Equal(t, "fresh-token", result.Token)
	repo.AssertExpectations(t)
}

func TestService_Register_NotAllowListed(t *testing.T) {
	repo := new(mockProfileRepo)
	jwtSvc := new(mockTokenIssuer)

	service := NewService(repo, jwtSvc, testConfig())

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "stranger@example.com",
		Password: "password123",
		Secret:   "let-me-in",
	})

	assert.ErrorIs(t, err, ErrNotAdmin)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_Duplicate(t *testing.T) {
	repo := new(mockProfileRepo)
	jwtSvc := new(mockTokenIssuer)

	repo.On("ExistsByEmail", mock.Anything, "artist@example.com").Return(true, nil)

	service := NewService(repo, jwtSvc, testConfig())

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "artist@example.com",
		Password: "password123",
		Secret:   "let-me-in",
	})

	assert.ErrorIs(t, err, ErrDuplicateRegistration)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_VerifyAdmin_FailsClosed(t *testing.T) {
	repo := new(mockProfileRepo)
	jwtSvc := new(mockTokenIssuer)

	service := NewService(repo, jwtSvc, testConfig())

	// Valid session for an identity that is no longer allow-listed.
	err := service.VerifyAdmin(context.Background(), 7, "former@example.com")
	assert.ErrorIs(t, err, ErrNotAdmin)

	// Allow-listed identity whose profile row is gone.
	repo.On("GetByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)
	err = service.VerifyAdmin(context.Background(), 7, "artist@example.com")
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestService_VerifyAdmin_Success(t *testing.T) {
	repo := new(mockProfileRepo)
	jwtSvc := new(mockTokenIssuer)

	repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.AdminProfile{
		ID:    7,
		Email: "artist@example.com",
	}, nil)

	service := NewService(repo, jwtSvc, testConfig())

	assert.NoError(t, service.VerifyAdmin(context.Background(), 7, "artist@example.com"))
}

func TestService_OAuthRedirectURL(t *testing.T) {
	cfg := testConfig()
	cfg.OAuthAuthorizeURL = "https://auth.example.com/authorize"
	cfg.OAuthRedirectBase = "https://site.example.com"

	service := NewService(new(mockProfileRepo), new(mockTokenIssuer), cfg)

	u, err := service.OAuthRedirectURL("google", "/admin")
	assert.NoError(t, err)
	assert.Contains(t, u, "provider=google")
	assert.Contains(t, u, "redirect_to=https%3A%2F%2Fsite.example.com%2Fadmin")

	_, err = NewService(new(mockProfileRepo), new(mockTokenIssuer), testConfig()).OAuthRedirectURL("google", "")
	assert.ErrorIs(t, err, ErrOAuthUnavailable)
}
