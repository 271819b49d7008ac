package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAddr          = ":8080"
	defaultJWTTTL        = "24h"
	defaultStorageDriver = "local"
	defaultUploadsDir    = "./uploads"
	defaultStaticBase    = "/static/uploads"
)

// Config is the full runtime configuration, read from the environment.
// DATABASE_URL, JWT_SECRET, ADMIN_EMAILS and ADMIN_REGISTRATION_SECRET are
// required; everything else has a dev-friendly default or disables the
// corresponding integration when empty.
type Config struct {
	AppEnv string
	Addr   string

	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	// AdminEmails is the allow-list of identities permitted into the admin
	// area. PrimaryAdminEmail selects whose profile the public site shows.
	AdminEmails        []string
	PrimaryAdminEmail  string
	RegistrationSecret string

	// Storage: "local" writes under UploadsDir and serves from StaticURLBase,
	// "cloudinary" uses the managed bucket.
	StorageDriver       string
	UploadsDir          string
	StaticURLBase       string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// OAuthAuthorizeURL is the external provider's authorize endpoint; empty
	// disables the OAuth redirect surface.
	OAuthAuthorizeURL string
	OAuthRedirectBase string

	// ContactRelayURL, when set, receives contact submissions instead of the
	// contact_submissions table. ContactInbox gets the notification email.
	ContactRelayURL string
	ContactInbox    string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:              strings.ToLower(getenv("APP_ENV", "dev")),
		Addr:                getenv("ADDR", defaultAddr),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		PrimaryAdminEmail:   normalizeEmail(os.Getenv("PRIMARY_ADMIN_EMAIL")),
		RegistrationSecret:  os.Getenv("ADMIN_REGISTRATION_SECRET"),
		StorageDriver:       strings.ToLower(getenv("STORAGE_DRIVER", defaultStorageDriver)),
		UploadsDir:          getenv("UPLOADS_DIR", defaultUploadsDir),
		StaticURLBase:       getenv("STATIC_URL_BASE", defaultStaticBase),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		OAuthAuthorizeURL:   os.Getenv("OAUTH_AUTHORIZE_URL"),
		OAuthRedirectBase:   os.Getenv("OAUTH_REDIRECT_BASE"),
		ContactRelayURL:     os.Getenv("CONTACT_RELAY_URL"),
		ContactInbox:        normalizeEmail(os.Getenv("CONTACT_INBOX")),
		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPUser:            os.Getenv("SMTP_USER"),
		SMTPPass:            os.Getenv("SMTP_PASS"),
		TwilioAccountSID:    os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:     os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFrom:          os.Getenv("TWILIO_FROM"),
	}

	ttlStr := getenv("JWT_TTL", defaultJWTTTL)
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL %q: %w", ttlStr, err)
	}
	cfg.JWTTTL = ttl

	for _, e := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		if e = normalizeEmail(e); e != "" {
			cfg.AdminEmails = append(cfg.AdminEmails, e)
		}
	}
	if cfg.PrimaryAdminEmail == "" && len(cfg.AdminEmails) > 0 {
		cfg.PrimaryAdminEmail = cfg.AdminEmails[0]
	}

	if port := os.Getenv("SMTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", port, err)
		}
		cfg.SMTPPort = p
	}

	switch cfg.StorageDriver {
	case "local", "cloudinary":
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	return cfg, nil
}

// IsAdminEmail reports whether the identity is on the admin allow-list.
func (c *Config) IsAdminEmail(email string) bool {
	email = normalizeEmail(email)
	for _, e := range c.AdminEmails {
		if e == email {
			return true
		}
	}
	return false
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
