package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/internal/tokenutil"
)

type signupUsecase struct {
	userRepository domain.UserRepository
	timeout        time.Duration
	tokens         TokenConfig
}

// TokenConfig carries the signing material usecases need to mint token
// pairs. Populated from the environment at bootstrap.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  int
	RefreshExpiry int
}

func NewSignupUsecase(userRepository domain.UserRepository, timeout time.Duration, tokens TokenConfig) domain.SignupUsecase {
	return &signupUsecase{
		userRepository: userRepository,
		timeout:        timeout,
		tokens:         tokens,
	}
}

func (uc *signupUsecase) Signup(ctx context.Context, req *domain.SignupRequest) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	existing, err := uc.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user with this email", domain.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:              req.Name,
		Email:             req.Email,
		Password:          string(hash),
		LikedSongs:        []primitive.ObjectID{},
		LikedAlbums:       []primitive.ObjectID{},
		FollowedArtists:   []primitive.ObjectID{},
		FollowedPlaylists: []primitive.ObjectID{},
	}
	if err := uc.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}

	return tokenPair(user, uc.tokens)
}

func tokenPair(user *domain.User, cfg TokenConfig) (*domain.AuthResponse, error) {
	accessToken, err := tokenutil.CreateAccessToken(user, cfg.AccessSecret, cfg.AccessExpiry)
	if err != nil {
		return nil, err
	}
	refreshToken, err := tokenutil.CreateRefreshToken(user, cfg.RefreshSecret, cfg.RefreshExpiry)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
