package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/internal/tokenutil"
)

type refreshTokenUsecase struct {
	userRepository domain.UserRepository
	timeout        time.Duration
	tokens         TokenConfig
}

func NewRefreshTokenUsecase(userRepository domain.UserRepository, timeout time.Duration, tokens TokenConfig) domain.RefreshTokenUsecase {
	return &refreshTokenUsecase{
		userRepository: userRepository,
		timeout:        timeout,
		tokens:         tokens,
	}
}

func (uc *refreshTokenUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	idHex, err := tokenutil.ExtractIDFromToken(refreshToken, uc.tokens.RefreshSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", domain.ErrValidation)
	}
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", domain.ErrValidation)
	}

	user, err := uc.userRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", domain.ErrValidation)
		}
		return nil, err
	}

	return tokenPair(user, uc.tokens)
}
