package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/security"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/site"
	"github.com/ShantiHimalaya/shanti-go/pkg/config"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// AuthService authenticates back-office users against the configured
// credentials and issues session tokens.
type AuthService struct {
	siteConfig *site.Config
	logger     *logging.ChanneledLogger
}

func NewAuthService(siteConfig *site.Config, logger *logging.ChanneledLogger) *AuthService {
	return &AuthService{siteConfig: siteConfig, logger: logger}
}

// Login validates the password against the admin credential first, then
// the editor credential, and returns a signed token with the matched role.
func (s *AuthService) Login(password string) (token, role string, err error) {
	if password == "" {
		return "", "", fmt.Errorf("password cannot be empty")
	}

	switch {
	case matchesCredential(password, s.siteConfig.AdminPassword):
		role = RoleAdmin
	case matchesCredential(password, s.siteConfig.EditorPassword):
		role = RoleEditor
	default:
		s.logger.Auth().Warn("Back-office login rejected")
		return "", "", fmt.Errorf("invalid credentials")
	}

	token, err = security.GenerateAdminToken(role, s.siteConfig.JWTSecret, config.AdminTokenTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate session token: %w", err)
	}

	s.logger.Auth().Info("Back-office login succeeded", "role", role)
	return token, role, nil
}

// matchesCredential accepts either a bcrypt hash or a plaintext value in
// configuration. Plaintext keeps local setups simple; production deploys
// store hashes.
func matchesCredential(password, configured string) bool {
	if configured == "" {
		return false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(configured), []byte(password)); err == nil {
		return true
	}
	return password == configured
}
