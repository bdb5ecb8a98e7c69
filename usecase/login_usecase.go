package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/harmonia-app/harmonia/domain"
)

type loginUsecase struct {
	userRepository domain.UserRepository
	timeout        time.Duration
	tokens         TokenConfig
}

func NewLoginUsecase(userRepository domain.UserRepository, timeout time.Duration, tokens TokenConfig) domain.LoginUsecase {
	return &loginUsecase{
		userRepository: userRepository,
		timeout:        timeout,
		tokens:         tokens,
	}
}

func (uc *loginUsecase) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	user, err := uc.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return tokenPair(user, uc.tokens)
}
