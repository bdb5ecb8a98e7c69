package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/domain/mocks"
	"github.com/harmonia-app/harmonia/internal/tokenutil"
	"github.com/harmonia-app/harmonia/usecase"
)

func TestRefreshToken(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Name: "Listener"}

	t.Run("success", func(t *testing.T) {
		refreshToken, err := tokenutil.CreateRefreshToken(user, testTokens.RefreshSecret, testTokens.RefreshExpiry)
		require.NoError(t, err)

		mockUserRepository := &mocks.UserRepository{}
		mockUserRepository.On("GetByID", mock.Anything, user.ID).Return(user, nil)

		uc := usecase.NewRefreshTokenUsecase(mockUserRepository, 2*time.Second, testTokens)
		tokens, err := uc.Refresh(context.Background(), refreshToken)

		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		uc := usecase.NewRefreshTokenUsecase(&mocks.UserRepository{}, 2*time.Second, testTokens)
		_, err := uc.Refresh(context.Background(), "not-a-jwt")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("user no longer exists", func(t *testing.T) {
		refreshToken, err := tokenutil.CreateRefreshToken(user, testTokens.RefreshSecret, testTokens.RefreshExpiry)
		require.NoError(t, err)

		mockUserRepository := &mocks.UserRepository{}
		mockUserRepository.On("GetByID", mock.Anything, user.ID).Return(nil, domain.ErrNotFound)

		uc := usecase.NewRefreshTokenUsecase(mockUserRepository, 2*time.Second, testTokens)
		_, err = uc.Refresh(context.Background(), refreshToken)

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
