package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/utils"
)

func newTestAuthService() (AuthService, *utils.TokenIssuer, *fakeSessionRepo) {
	sessions := newFakeSessionRepo()
	repo := &repository.AuthRepository{User: newFakeUserRepo(), Session: sessions}
	tokens := utils.NewTokenIssuer(testConfig().JWT)
	return NewAuthService(repo, tokens, zap.NewNop()), tokens, sessions
}

var testClient = ClientInfo{UserAgent: "go-test", IPAddress: "127.0.0.1"}

func registerAda(t *testing.T, srv AuthService) string {
	t.Helper()
	resp, err := srv.Register(context.Background(), &request.RegisterRequest{
		Username: "ada",
		Email:    "Ada@Example.com",
		Password: "correct-horse",
	}, testClient)
	require.NoError(t, err)
	return resp.Tokens.RefreshToken
}

func TestAuthService_Register(t *testing.T) {
	srv, tokens, sessions := newTestAuthService()

	resp, err := srv.Register(context.Background(), &request.RegisterRequest{
		Username: "ada",
		Email:    "Ada@Example.com",
		Password: "correct-horse",
	}, testClient)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, "Bearer", resp.Tokens.TokenType)
	assert.Equal(t, int64(900), resp.Tokens.ExpiresIn)

	claims, err := tokens.Parse(resp.Tokens.AccessToken, utils.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)

	refresh, err := tokens.Parse(resp.Tokens.RefreshToken, utils.TokenTypeRefresh)
	require.NoError(t, err)
	session, err := sessions.FindValidSession(context.Background(), uuid.MustParse(refresh.ID))
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "go-test", *session.UserAgent)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	srv, _, _ := newTestAuthService()
	registerAda(t, srv)

	_, err := srv.Register(context.Background(), &request.RegisterRequest{Username: "other", Email: "ada@example.com", Password: "12345678"}, testClient)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	_, err = srv.Register(context.Background(), &request.RegisterRequest{Username: "ada", Email: "new@example.com", Password: "12345678"}, testClient)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	_, err = srv.Register(context.Background(), &request.RegisterRequest{Username: "x", Email: "bad", Password: "short"}, testClient)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
}

func TestAuthService_Login(t *testing.T) {
	srv, _, _ := newTestAuthService()
	registerAda(t, srv)

	resp, err := srv.Login(context.Background(), &request.LoginRequest{Email: " ADA@example.com", Password: "correct-horse"}, testClient)
	require.NoError(t, err)
	assert.Equal(t, "ada", resp.User.Username)
	assert.NotEmpty(t, resp.Tokens.AccessToken)

	_, err = srv.Login(context.Background(), &request.LoginRequest{Email: "ada@example.com", Password: "wrong-horse"}, testClient)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = srv.Login(context.Background(), &request.LoginRequest{Email: "ghost@example.com", Password: "whatever"}, testClient)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RefreshRotates(t *testing.T) {
	srv, _, _ := newTestAuthService()
	ctx := context.Background()
	first := registerAda(t, srv)

	pair, err := srv.Refresh(ctx, &request.RefreshTokenRequest{RefreshToken: first}, testClient)
	require.NoError(t, err)
	assert.NotEqual(t, first, pair.RefreshToken)

	_, err = srv.Refresh(ctx, &request.RefreshTokenRequest{RefreshToken: first}, testClient)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = srv.Refresh(ctx, &request.RefreshTokenRequest{RefreshToken: pair.AccessToken}, testClient)
	assert.ErrorIs(t, err, ErrInvalidToken, "access tokens cannot refresh")

	_, err = srv.Refresh(ctx, &request.RefreshTokenRequest{RefreshToken: pair.RefreshToken}, testClient)
	assert.NoError(t, err)
}

func TestAuthService_LogoutAndMe(t *testing.T) {
	srv, tokens, _ := newTestAuthService()
	ctx := context.Background()
	refresh := registerAda(t, srv)

	claims, err := tokens.Parse(refresh, utils.TokenTypeRefresh)
	require.NoError(t, err)
	userID, err := claims.UserID()
	require.NoError(t, err)

	me, err := srv.Me(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "ada", me.Username)

	require.NoError(t, srv.Logout(ctx, &request.RefreshTokenRequest{RefreshToken: refresh}))

	_, err = srv.Refresh(ctx, &request.RefreshTokenRequest{RefreshToken: refresh}, testClient)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = srv.Me(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidToken)
}
