package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nmatviiv/pollster/internal/dto"
	"github.com/nmatviiv/pollster/internal/model"
	"github.com/nmatviiv/pollster/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and profile lookup.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterDTO) (*dto.UserResponseDTO, error)
	Login(ctx context.Context, req dto.LoginDTO) (*dto.TokenDTO, error)
	GetProfile(ctx context.Context, userID uint) (*dto.UserResponseDTO, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterDTO) (*dto.UserResponseDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, model.ErrEmailTaken
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, model.ErrUsernameTaken
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("error checking username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:          email,
		Username:       username,
		HashedPassword: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to create user")
		return nil, fmt.Errorf("error registering user: %w", err)
	}

	log.Info().Uint("userID", user.ID).Str("username", username).Msg("User registered")
	return userToDTO(user), nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginDTO) (*dto.TokenDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)) != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to issue token")
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &dto.TokenDTO{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uint) (*dto.UserResponseDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return userToDTO(user), nil
}

func userToDTO(user *model.User) *dto.UserResponseDTO {
	return &dto.UserResponseDTO{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}
