package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"weddingsite/internal/config"
	"weddingsite/internal/models"
	"weddingsite/internal/repository"
)

const sessionPrefix = "admin_"

// Session is an authenticated admin. Identity has the form admin_<id>_<unix time>.
type Session struct {
	Token     string    `json:"-"`
	Identity  string    `json:"identity"`
	AdminID   int64     `json:"adminId"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=100"`
}

type AuthService interface {
	Login(ctx context.Context, in LoginInput) (*Session, error)
	ParseSession(token string) (*Session, error)
	SetPassword(ctx context.Context, username, password string) (*models.Admin, error)
	Bootstrap(ctx context.Context, username, password string) error
}

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type authService struct {
	adminRepo repository.AdminRepository
	cfg       config.Session
	log       *zap.Logger
	now       func() time.Time
}

func NewAuthService(adminRepo repository.AdminRepository, cfg config.Session, log *zap.Logger) AuthService {
	return &authService{
		adminRepo: adminRepo,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

func (s *authService) Login(ctx context.Context, in LoginInput) (*Session, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.VerifyPassword(ctx, in.Username, in.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			s.log.Warn("admin login failed", zap.String("username", in.Username))
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	session, err := s.issue(admin)
	if err != nil {
		return nil, err
	}

	s.log.Info("admin logged in", zap.Int64("adminId", admin.ID))
	return session, nil
}

func (s *authService) issue(admin *models.Admin) (*Session, error) {
	if s.cfg.EncryptionKey == "" {
		return nil, errors.New("session signing key is not configured")
	}

	now := s.now()
	session := &Session{
		Identity:  fmt.Sprintf("%s%d_%d", sessionPrefix, admin.ID, now.Unix()),
		AdminID:   admin.ID,
		Username:  admin.Username,
		ExpiresAt: now.Add(s.cfg.TTL),
	}

	claims := sessionClaims{
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.Identity,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.EncryptionKey))
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}
	session.Token = tokenString

	return session, nil
}

// ParseSession verifies the signature and expiry of token and checks that its
// subject is an admin identity.
func (s *authService) ParseSession(tokenString string) (*Session, error) {
	if tokenString == "" || s.cfg.EncryptionKey == "" {
		return nil, ErrUnauthorized
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.EncryptionKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	if !strings.HasPrefix(claims.Subject, sessionPrefix) {
		return nil, ErrUnauthorized
	}

	parts := strings.Split(strings.TrimPrefix(claims.Subject, sessionPrefix), "_")
	if len(parts) != 2 {
		return nil, ErrUnauthorized
	}
	adminID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, ErrUnauthorized
	}

	session := &Session{
		Token:    tokenString,
		Identity: claims.Subject,
		AdminID:  adminID,
		Username: claims.Username,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	return session, nil
}

func (s *authService) SetPassword(ctx context.Context, username, password string) (*models.Admin, error) {
	in := struct {
		Username string `validate:"required,max=50"`
		Password string `validate:"required,min=8,max=72"`
	}{username, password}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.SetPassword(ctx, username, password)
	if err != nil {
		return nil, err
	}

	s.log.Info("admin password set", zap.String("username", username))
	return admin, nil
}

// Bootstrap creates the configured admin account when it does not exist yet.
// An existing account keeps its password.
func (s *authService) Bootstrap(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := s.adminRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	_, err = s.SetPassword(ctx, username, password)
	return err
}
