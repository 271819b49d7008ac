package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"makeupstudio/internal/config"
	"makeupstudio/internal/domain"
)

// Service contains all business logic for admin authentication.
type Service struct {
	profiles ProfileRepository
	jwt      tokenIssuer
	cfg      *config.Config
}

type LoginResult struct {
	Profile *domain.AdminProfile
	Token   string
}

func NewService(profiles ProfileRepository, jwt tokenIssuer, cfg *config.Config) *Service {
	return &Service{
		profiles: profiles,
		jwt:      jwt,
		cfg:      cfg,
	}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// A session for a removed admin must never be minted, even if the row
	// still carries a valid password hash.
	if !s.cfg.IsAdminEmail(profile.Email) {
		return nil, ErrNotAdmin
	}

	token, err := s.jwt.GenerateToken(profile.ID, profile.Email)
	if err != nil {
		return nil, err
	}

	profile.PasswordHash = ""
	return &LoginResult{Profile: profile, Token: token}, nil
}

// Register creates an admin profile behind the shared-secret gate. The secret
// is checked before anything else touches the database.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	if s.cfg.RegistrationSecret == "" || req.Secret != s.cfg.RegistrationSecret {
		return nil, ErrInvalidSecret
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !s.cfg.IsAdminEmail(email) {
		return nil, ErrNotAdmin
	}

	exists, err := s.profiles.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateRegistration
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := &domain.AdminProfile{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRegistration
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(profile.ID, profile.Email)
	if err != nil {
		return nil, err
	}

	profile.PasswordHash = ""
	return &LoginResult{Profile: profile, Token: token}, nil
}

// VerifyAdmin is the per-request gate behind the admin router group. It fails
// closed: the identity must still be allow-listed AND its profile row must
// still exist.
func (s *Service) VerifyAdmin(ctx context.Context, adminID int64, email string) error {
	if !s.cfg.IsAdminEmail(email) {
		return ErrNotAdmin
	}

	profile, err := s.profiles.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotAdmin
		}
		return err
	}
	if !strings.EqualFold(profile.Email, email) {
		return ErrNotAdmin
	}
	return nil
}

func (s *Service) CurrentAdmin(ctx context.Context, adminID int64) (*domain.AdminProfile, error) {
	profile, err := s.profiles.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	profile.PasswordHash = ""
	return profile, nil
}

// OAuthRedirectURL builds the external provider's authorize URL. The provider
// handles the rest of the flow and lands the browser back on redirect_to.
func (s *Service) OAuthRedirectURL(provider, redirectTo string) (string, error) {
	if s.cfg.OAuthAuthorizeURL == "" {
		return "", ErrOAuthUnavailable
	}

	u, err := url.Parse(s.cfg.OAuthAuthorizeURL)
	if err != nil {
		return "", fmt.Errorf("parse authorize url: %w", err)
	}

	q := u.Query()
	q.Set("provider", provider)
	if redirectTo != "" {
		q.Set("redirect_to", s.cfg.OAuthRedirectBase+redirectTo)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
