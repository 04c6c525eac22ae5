package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"iadev-dashboard/internal/adapters/persistence/repositories"
	"iadev-dashboard/internal/config"
	"iadev-dashboard/internal/core/domain"
	"iadev-dashboard/internal/pkg/jwt"
	"iadev-dashboard/internal/pkg/metrics"
	"iadev-dashboard/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService issues and validates session tokens
type AuthService struct {
	memberRepo repositories.MemberRepository
	cfg        *config.Config
	now        func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(memberRepo repositories.MemberRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		memberRepo: memberRepo,
		cfg:        cfg,
		now:        time.Now,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string
	Password string
}

// LoginResult represents an issued session
type LoginResult struct {
	Token       string
	IsMaster    bool
	Permissions domain.Capabilities
	ExpiresAt   time.Time
}

// Login authenticates the super-administrator or an administrator member.
// Unknown users and wrong passwords fail with the same error.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	username := strings.TrimSpace(input.Username)
	pass := strings.TrimSpace(input.Password)
	if username == "" || pass == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	// 1. Super-administrator, defined only by configuration
	if strings.EqualFold(username, s.cfg.Master.Username) {
		if subtle.ConstantTimeCompare([]byte(pass), []byte(s.cfg.Master.Password)) == 1 {
			result, err := s.issue(s.cfg.Master.Username, domain.Capabilities{}, true)
			if err != nil {
				return nil, err
			}
			metrics.LoginAttempts.WithLabelValues("master").Inc()
			log.Printf("✅ Master logged in")
			return result, nil
		}
	}

	// 2. Administrator member
	member, err := s.memberRepo.GetAdministratorByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.LoginAttempts.WithLabelValues("failed").Inc()
			return nil, domain.ErrAuthenticationFailed
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	if member.PasswordHash == nil || !password.Verify(pass, *member.PasswordHash) {
		metrics.LoginAttempts.WithLabelValues("failed").Inc()
		return nil, domain.ErrAuthenticationFailed
	}

	result, err := s.issue(strconv.FormatUint(uint64(member.ID), 10), member.Permissions, false)
	if err != nil {
		return nil, err
	}

	metrics.LoginAttempts.WithLabelValues("administrator").Inc()
	log.Printf("✅ Administrator logged in: member #%d", member.ID)
	return result, nil
}

// Authenticate validates a bearer token and rebuilds the caller context from
// its payload alone. The store is not consulted, so permission changes reach
// a session only when the holder logs in again.
func (s *AuthService) Authenticate(token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims, err := jwt.ParseSession(token, s.cfg.Session.Secret)
	if err != nil {
		return nil, domain.ErrSessionExpired
	}

	session := &domain.Session{
		CallerID:    claims.ID,
		IsMaster:    claims.ID == s.cfg.Master.Username,
		Permissions: claims.Permissions,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

// VerifyMasterPassword checks pass against the super-administrator password.
// Any authenticated session may ask, so an administrator can unlock a
// master-gated action by typing the master password.
func (s *AuthService) VerifyMasterPassword(session *domain.Session, pass string) error {
	if session == nil {
		return domain.ErrPermissionDenied
	}
	pass = strings.TrimSpace(pass)
	if pass == "" {
		return fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}
	if subtle.ConstantTimeCompare([]byte(pass), []byte(s.cfg.Master.Password)) != 1 {
		return domain.ErrAuthenticationFailed
	}
	return nil
}

// issue signs a token embedding a copy of perms
func (s *AuthService) issue(identity string, perms domain.Capabilities, isMaster bool) (*LoginResult, error) {
	token, expiresAt, err := jwt.IssueSession(identity, perms, s.cfg.Session.Secret, s.cfg.Session.TTL, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to sign session: %w", err)
	}
	return &LoginResult{
		Token:       token,
		IsMaster:    isMaster,
		Permissions: perms,
		ExpiresAt:   expiresAt,
	}, nil
}
