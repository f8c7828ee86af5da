package usecase

import (
	"context"
	"errors"

	"synerh/internal/domain/profile"
	"synerh/internal/pkg/jwt"
	ucauth "synerh/internal/usecase/auth"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (profile.Profile, string, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (profile.Profile, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
}

func NewAuthUsecase(authSvc *ucauth.Service, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: authSvc, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (profile.Profile, string, string, error) {
	prof, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return profile.Profile{}, "", "", err
	}
	return u.withTokens(prof)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (profile.Profile, string, string, error) {
	prof, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return profile.Profile{}, "", "", err
	}
	return u.withTokens(prof)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	_ = ctx
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}

	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	access, err := u.jwt.GenerateAccessToken(claims.UserID, claims.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	newRefresh, err := u.jwt.GenerateRefreshToken(claims.UserID)
	if err != nil {
		return "", "", ErrInternal
	}

	return access, newRefresh, nil
}

func (u *Auth) withTokens(prof profile.Profile) (profile.Profile, string, string, error) {
	access, err := u.jwt.GenerateAccessToken(prof.ID, prof.Email)
	if err != nil {
		return profile.Profile{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(prof.ID)
	if err != nil {
		return profile.Profile{}, "", "", ErrInternal
	}
	return prof, access, refresh, nil
}
