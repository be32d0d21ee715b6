package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"
)

// ClientInfo is recorded on the refresh session for auditing.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest, client ClientInfo) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.AuthResponse, error)
	Refresh(ctx context.Context, req *request.RefreshTokenRequest, client ClientInfo) (*response.TokenPairResponse, error)
	Logout(ctx context.Context, req *request.RefreshTokenRequest) error
	Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
}

type authService struct {
	repo   *repository.AuthRepository
	tokens *utils.TokenIssuer
	log    *zap.Logger
}

func NewAuthService(repo *repository.AuthRepository, tokens *utils.TokenIssuer, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest, client ClientInfo) (*response.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.TrimSpace(req.Username)
	if err := validate(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing == nil {
		existing, err = s.repo.User.FindByUsername(ctx, req.Username)
		if err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("register user: %w", err)
	}

	tokens, err := s.issueTokens(ctx, user, client)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered", zap.String("user_id", user.ID.String()))

	return &response.AuthResponse{User: response.UserToResponse(user), Tokens: *tokens}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, client ClientInfo) (*response.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Failed login attempt", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user, client)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.AuthResponse{User: response.UserToResponse(user), Tokens: *tokens}, nil
}

// Refresh rotates the refresh token: the presented session is revoked and a new pair issued.
func (s *authService) Refresh(ctx context.Context, req *request.RefreshTokenRequest, client ClientInfo) (*response.TokenPairResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	session, err := s.validRefreshSession(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	if err := s.repo.Session.Revoke(ctx, session.Token); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			// revoked concurrently by another refresh
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("revoke session: %w", err)
	}

	return s.issueTokens(ctx, user, client)
}

func (s *authService) Logout(ctx context.Context, req *request.RefreshTokenRequest) error {
	if err := validate(req); err != nil {
		return err
	}

	session, err := s.validRefreshSession(ctx, req.RefreshToken)
	if err != nil {
		return err
	}

	if err := s.repo.Session.Revoke(ctx, session.Token); err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("User logged out", zap.String("user_id", session.UserID.String()))
	return nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) validRefreshSession(ctx context.Context, raw string) (*entity.Session, error) {
	claims, err := s.tokens.Parse(raw, utils.TokenTypeRefresh)
	if err != nil {
		return nil, ErrInvalidToken
	}

	token, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	session, err := s.repo.Session.FindValidSession(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil || session.UserID.String() != claims.Subject {
		return nil, ErrInvalidToken
	}

	return session, nil
}

func (s *authService) issueTokens(ctx context.Context, user *entity.User, client ClientInfo) (*response.TokenPairResponse, error) {
	now := time.Now().UTC()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     user.ID,
		Token:      uuid.New(),
		UserAgent:  optional(client.UserAgent),
		IPAddress:  optional(client.IPAddress),
		ExpiresAt:  now.Add(s.tokens.RefreshTTL()),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	access, err := s.tokens.IssueAccess(user.ID, user.Email, user.Username)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefresh(user.ID, session.Token.String(), session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	return &response.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.tokens.AccessTTL().Seconds()),
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
