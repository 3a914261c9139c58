package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-crm/internal/auth"
	autherrors "go-crm/internal/auth/errors"
	authmock "go-crm/internal/auth/mock"
	"go-crm/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newService(t *testing.T) (*authmock.MockRepository, auth.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := authmock.NewMockRepository(ctrl)
	svc := auth.NewService(repo, auth.TokenConfig{
		Secret:     testSecret,
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
	return repo, svc
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) { return []byte(testSecret), nil })
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	password := "password123"
	pw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	mockUser := &user.User{
		ID:       uuid.New(),
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: string(pw),
		Role:     user.RoleAdmin,
		IsActive: true,
	}

	t.Run("issues access and refresh tokens with role", func(t *testing.T) {
		repo, svc := newService(t)
		repo.EXPECT().GetByEmail(gomock.Any(), mockUser.Email).Return(mockUser, nil)

		access, refresh, resp, err := svc.Login(ctx, mockUser.Email, password)

		require.NoError(t, err)
		assert.Equal(t, mockUser.Email, resp.Email)
		assert.Equal(t, user.RoleAdmin, resp.Role)

		claims := parseClaims(t, access)
		assert.Equal(t, mockUser.ID.String(), claims["user_id"])
		assert.Equal(t, user.RoleAdmin, claims["role"])
		assert.Equal(t, "access", claims["typ"])
		assert.Equal(t, "refresh", parseClaims(t, refresh)["typ"])
	})

	t.Run("wrong password", func(t *testing.T) {
		repo, svc := newService(t)
		repo.EXPECT().GetByEmail(gomock.Any(), mockUser.Email).Return(mockUser, nil)

		_, _, _, err := svc.Login(ctx, mockUser.Email, "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo, svc := newService(t)
		repo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, _, _, err := svc.Login(ctx, "ghost@example.com", password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		repo, svc := newService(t)
		inactive := *mockUser
		inactive.IsActive = false
		repo.EXPECT().GetByEmail(gomock.Any(), mockUser.Email).Return(&inactive, nil)

		_, _, _, err := svc.Login(ctx, mockUser.Email, password)
		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func TestService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	u := &user.User{ID: uuid.New(), Email: "tl@example.com", Role: user.RoleTeamLeader, IsActive: true}

	t.Run("rotates tokens", func(t *testing.T) {
		repo, svc := newService(t)
		repo.EXPECT().GetByEmail(gomock.Any(), u.Email).Return(&user.User{
			ID:       u.ID,
			Email:    u.Email,
			Role:     u.Role,
			IsActive: true,
			Password: mustHash(t, "pw"),
		}, nil)
		_, refresh, _, err := svc.Login(ctx, u.Email, "pw")
		require.NoError(t, err)

		repo.EXPECT().GetByID(gomock.Any(), u.ID).Return(u, nil)
		access, _, resp, err := svc.RefreshToken(ctx, refresh)

		require.NoError(t, err)
		assert.Equal(t, user.RoleTeamLeader, resp.Role)
		assert.Equal(t, "access", parseClaims(t, access)["typ"])
	})

	t.Run("access token is not accepted", func(t *testing.T) {
		_, svc := newService(t)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": u.ID.String(),
			"role":    u.Role,
			"typ":     "access",
			"exp":     time.Now().Add(time.Minute).Unix(),
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, _, _, err = svc.RefreshToken(ctx, signed)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, svc := newService(t)
		_, _, _, err := svc.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func mustHash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults role to employee", func(t *testing.T) {
		repo, svc := newService(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.Equal(t, user.RoleEmployee, u.Role)
			assert.Equal(t, "new@example.com", u.Email)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")))
			return nil
		})

		resp, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "New",
			Email:    "New@Example.com",
			Password: "secret1",
		})

		require.NoError(t, err)
		assert.Equal(t, user.RoleEmployee, resp.Role)
	})

	t.Run("client requires business account", func(t *testing.T) {
		_, svc := newService(t)
		_, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "Client",
			Email:    "client@example.com",
			Password: "secret1",
			Role:     user.RoleClient,
		})
		assert.ErrorIs(t, err, autherrors.ErrBusinessAccountRequired)
	})

	t.Run("unknown team", func(t *testing.T) {
		repo, svc := newService(t)
		teamID := uuid.New()
		repo.EXPECT().TeamExists(gomock.Any(), teamID).Return(false, nil)

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "Member",
			Email:    "member@example.com",
			Password: "secret1",
			TeamID:   teamID.String(),
		})
		assert.Error(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, svc := newService(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"})

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "Dup",
			Email:    "dup@example.com",
			Password: "secret1",
		})
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, svc := newService(t)
		_, err := svc.Register(ctx, auth.RegisterRequest{Name: "X", Email: "x@example.com", Password: "secret1", Role: "Owner"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidRole)
	})

	t.Run("persist error surfaces", func(t *testing.T) {
		repo, svc := newService(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := svc.Register(ctx, auth.RegisterRequest{Name: "X", Email: "x@example.com", Password: "secret1"})
		assert.EqualError(t, err, "db down")
	})
}
