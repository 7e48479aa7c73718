package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sefazor/snapvault-backend/internal/models"
	"github.com/sefazor/snapvault-backend/internal/repository"
	"github.com/sefazor/snapvault-backend/pkg/bcrypt"
	"github.com/sefazor/snapvault-backend/pkg/email"
	jwtPkg "github.com/sefazor/snapvault-backend/pkg/jwt"
	"go.uber.org/zap"
)

const msgUserExists = "The user with this username already exists in the system."

type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *jwtPkg.Manager
	mailer   email.Sender
	logger   *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, tokens *jwtPkg.Manager, mailer email.Sender, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
		logger:   logger.Named("auth"),
	}
}

// Register creates a studio account, or a super admin when admin is set, and
// signs the new user in.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest, admin bool) (*models.TokenPair, error) {
	req.Email = strings.TrimSpace(req.Email)

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fail(ErrConflict, msgUserExists)
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          req.Email,
		HashedPassword: hashedPassword,
		FullName:       req.FullName,
		IsActive:       true,
		Role:           models.RoleStudio,
	}
	if admin {
		user.Role = models.RoleAdmin
		user.IsSuperuser = true
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fail(ErrConflict, msgUserExists)
		}
		return nil, err
	}

	s.logger.Info("registered user", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))

	fullName := ""
	if user.FullName != nil {
		fullName = *user.FullName
	}
	go func() {
		if err := s.mailer.SendWelcomeEmail(user.Email, fullName); err != nil {
			s.logger.Warn("welcome email failed", zap.Uint("user_id", user.ID), zap.Error(err))
		}
	}()

	return s.issuePair(user.ID)
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fail(ErrInvalidCredentials, "Incorrect email or password")
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(user.HashedPassword, req.Password); err != nil {
		return nil, fail(ErrInvalidCredentials, "Incorrect email or password")
	}
	if !user.IsActive {
		return nil, fail(ErrInactiveUser, "Inactive user")
	}

	return s.issuePair(user.ID)
}

// Refresh exchanges a refresh token for a new access token. The refresh
// token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.VerifyType(refreshToken, jwtPkg.TypeRefresh)
	switch {
	case errors.Is(err, jwtPkg.ErrWrongTokenType):
		return "", fail(ErrInvalidToken, "Invalid token type")
	case err != nil:
		return "", fail(ErrInvalidToken, "Could not validate credentials")
	}

	userID, err := claims.UserID()
	if err != nil {
		return "", fail(ErrInvalidToken, "Could not validate credentials")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", notFound(err, "User not found")
	}

	token, err := s.tokens.IssueAccessToken(user.ID, s.tokens.AccessTTL())
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}
	return token, nil
}

// Authenticate resolves the user id carried by an access token.
func (s *AuthService) Authenticate(accessToken string) (uint, error) {
	claims, err := s.tokens.VerifyType(accessToken, jwtPkg.TypeAccess)
	if err != nil {
		return 0, fail(ErrInvalidToken, "Could not validate credentials")
	}
	userID, err := claims.UserID()
	if err != nil {
		return 0, fail(ErrInvalidToken, "Could not validate credentials")
	}
	return userID, nil
}

func (s *AuthService) RefreshTTLSeconds() int {
	return int(s.tokens.RefreshTTL().Seconds())
}

func (s *AuthService) issuePair(userID uint) (*models.TokenPair, error) {
	access, err := s.tokens.IssueAccessToken(userID, s.tokens.AccessTTL())
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefreshToken(userID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
