package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/seojacky/account-teacher/config"
	"github.com/seojacky/account-teacher/internal/dto"
	"github.com/seojacky/account-teacher/internal/model"
	"github.com/seojacky/account-teacher/internal/repository"
	apperrors "github.com/seojacky/account-teacher/pkg/errors"
	"github.com/seojacky/account-teacher/pkg/jwt"
)

// ErrUnauthenticated is the kind of login failures.
var ErrUnauthenticated = errors.New("unauthenticated")

var (
	ErrInvalidCredentials = apperrors.New(ErrUnauthenticated, "невірний табельний номер або пароль")
	ErrAccountDisabled    = apperrors.New(ErrUnauthenticated, "обліковий запис деактивовано")
)

// AuthService authenticates users and issues access tokens carrying the principal.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Logout revokes the token identified by jti until expiresAt.
	Logout(ctx context.Context, userID int64, jti string, expiresAt time.Time) error
	Me(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

type authService struct {
	cfg     *config.Config
	repo    *repository.Repository
	jwtMgr  *jwt.Manager
	revoker TokenRevoker
	logger  *zap.Logger
}

// NewAuthService creates an AuthService. revoker may be nil.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	revoker TokenRevoker,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:     cfg,
		repo:    repo,
		jwtMgr:  jwtMgr,
		revoker: revoker,
		logger:  logger,
	}
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. look up the user
	user, err := s.repo.User.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if isNotFound(err) {
			s.audit(ctx, nil, model.ActionLoginFailed, "Невдала спроба входу: "+req.EmployeeID)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to load user for login", zap.Error(err))
		return nil, storeError(err)
	}

	// 2. verify the password (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.audit(ctx, &user.ID, model.ActionLoginFailed, "Невірний пароль")
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	// 3. issue the token
	p := user.Principal()
	token, err := s.jwtMgr.GenerateAccessToken(p.ID, string(p.Role), p.FacultyID, p.DepartmentID)
	if err != nil {
		s.logger.Error("failed to sign access token", zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.repo.User.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn("failed to update last login", zap.Int64("user_id", user.ID), zap.Error(err))
	} else {
		user.LastLogin = &now
	}
	s.audit(ctx, &user.ID, model.ActionLogin, "Успішний вхід у систему")

	return &dto.TokenResponse{
		AccessToken: token,
		ExpiresIn:   int(s.jwtMgr.AccessTokenTTL().Seconds()),
		User:        toUserResponse(user),
	}, nil
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, userID int64, jti string, expiresAt time.Time) error {
	if s.revoker != nil && jti != "" {
		if err := s.revoker.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
			s.logger.Error("failed to revoke token", zap.Int64("user_id", userID), zap.Error(err))
			return apperrors.Unavailable("не вдалося завершити сесію", err)
		}
	}
	s.audit(ctx, &userID, model.ActionLogout, "Вихід із системи")
	return nil
}

// ────────────────────── Me ──────────────────────

func (s *authService) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, storeError(err)
	}
	if !user.IsActive {
		return nil, ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// audit writes a best-effort audit entry; failures are logged, not returned.
func (s *authService) audit(ctx context.Context, userID *int64, action, description string) {
	info := clientInfoFrom(ctx)
	err := s.repo.AuditLog.Create(ctx, &model.AuditLog{
		UserID:      userID,
		Action:      action,
		Description: description,
		IPAddress:   info.IP,
		UserAgent:   info.UserAgent,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("failed to write audit entry", zap.String("action", action), zap.Error(err))
	}
}

func toUserResponse(user *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:             user.ID,
		EmployeeID:     user.EmployeeID,
		FullName:       user.FullName,
		Email:          deref(user.Email),
		Position:       user.PositionOrEmpty(),
		Role:           string(user.RoleName()),
		FacultyID:      user.FacultyID,
		FacultyName:    user.FacultyShortName(),
		DepartmentID:   user.DepartmentID,
		DepartmentName: user.DepartmentShortName(),
	}
	if user.Role != nil {
		resp.RoleDisplay = user.Role.DisplayName
	}
	if user.LastLogin != nil {
		resp.LastLogin = user.LastLogin.Format(time.RFC3339)
	}
	return resp
}
