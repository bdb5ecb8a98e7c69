package domain

import (
	"context"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=10"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type SignupUsecase interface {
	Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error)
}

type LoginUsecase interface {
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
}

type RefreshTokenUsecase interface {
	Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error)
}
