package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *Service) SignUp(ctx context.Context, req model.SignUpRequest) (model.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return model.User{}, errors.Wrap(errs.ErrValidation, "username and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return model.User{}, errors.Wrap(errs.ErrValidation, err.Error())
	}
	return s.users.CreateUser(ctx, model.User{
		Username:     username,
		PasswordHash: string(hash),
	})
}

func (s *Service) SignIn(ctx context.Context, req model.SignInRequest) (model.AuthResponse, error) {
	user, err := s.users.GetUserByName(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.log.Debug("password mismatch", zap.String("username", user.Username))
		return model.AuthResponse{}, errs.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}
