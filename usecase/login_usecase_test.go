package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/domain/mocks"
	"github.com/harmonia-app/harmonia/usecase"
)

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{
		ID:       primitive.NewObjectID(),
		Name:     "Listener",
		Email:    "listener@example.com",
		Password: string(hash),
	}

	t.Run("success", func(t *testing.T) {
		mockUserRepository := &mocks.UserRepository{}
		mockUserRepository.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

		uc := usecase.NewLoginUsecase(mockUserRepository, 2*time.Second, testTokens)
		tokens, err := uc.Login(context.Background(), &domain.LoginRequest{
			Email:    user.Email,
			Password: "correct-password",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUserRepository := &mocks.UserRepository{}
		mockUserRepository.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

		uc := usecase.NewLoginUsecase(mockUserRepository, 2*time.Second, testTokens)
		_, err := uc.Login(context.Background(), &domain.LoginRequest{
			Email:    user.Email,
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockUserRepository := &mocks.UserRepository{}
		mockUserRepository.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

		uc := usecase.NewLoginUsecase(mockUserRepository, 2*time.Second, testTokens)
		_, err := uc.Login(context.Background(), &domain.LoginRequest{
			Email:    "nobody@example.com",
			Password: "correct-password",
		})

		// The same opaque error for both failure modes.
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
