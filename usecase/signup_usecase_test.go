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

var testTokens = usecase.TokenConfig{
	AccessSecret:  "access-secret",
	RefreshSecret: "refresh-secret",
	AccessExpiry:  2,
	RefreshExpiry: 168,
}

func TestSignup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockUserRepository := &mocks.UserRepository{}

		mockUserRepository.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		mockUserRepository.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				user := args.Get(1).(*domain.User)
				user.ID = primitive.NewObjectID()
			}).Return(nil)

		uc := usecase.NewSignupUsecase(mockUserRepository, 2*time.Second, testTokens)
		tokens, err := uc.Signup(context.Background(), &domain.SignupRequest{
			Name:     "New User",
			Email:    "new@example.com",
			Password: "longenoughpassword",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)

		created := mockUserRepository.Calls[1].Arguments.Get(1).(*domain.User)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("longenoughpassword")))
		assert.NotNil(t, created.LikedSongs)
		assert.NotNil(t, created.FollowedPlaylists)
		mockUserRepository.AssertExpectations(t)
	})

	t.Run("email already taken", func(t *testing.T) {
		mockUserRepository := &mocks.UserRepository{}

		mockUserRepository.On("GetByEmail", mock.Anything, "taken@example.com").
			Return(&domain.User{Email: "taken@example.com"}, nil)

		uc := usecase.NewSignupUsecase(mockUserRepository, 2*time.Second, testTokens)
		_, err := uc.Signup(context.Background(), &domain.SignupRequest{
			Name:     "New User",
			Email:    "taken@example.com",
			Password: "longenoughpassword",
		})

		assert.ErrorIs(t, err, domain.ErrConflict)
		mockUserRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
