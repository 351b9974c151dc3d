package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/repository"
	"github.com/rs/zerolog/log"
)

type UserService interface {
	CreateUser(ctx context.Context, req dto.UserCreateDTO) (*dto.UserResponseDTO, error)
	GetUser(ctx context.Context, userID uint) (*dto.UserResponseDTO, error)
	GetMessages(ctx context.Context, userID uint) ([]dto.MessageResponseDTO, error)
}

type userService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
}

func NewUserService(userRepo repository.UserRepository, messageRepo repository.MessageRepository) UserService {
	return &userService{userRepo: userRepo, messageRepo: messageRepo}
}

func (s *userService) CreateUser(ctx context.Context, req dto.UserCreateDTO) (*dto.UserResponseDTO, error) {
	user := model.User{Email: req.Email, FirstName: req.FirstName, LastName: req.LastName}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByEmail(ctx, user.Email); err == nil {
		verr := &model.ValidationError{}
		verr.Add("email", "has already been taken")
		return nil, verr
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user %s: %w", user.Email, err)
	}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("Failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	log.Info().Uint("userID", user.ID).Msg("User created")
	return toUserDTO(&user)
}

func (s *userService) GetUser(ctx context.Context, userID uint) (*dto.UserResponseDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserDTO(user)
}

func (s *userService) GetMessages(ctx context.Context, userID uint) ([]dto.MessageResponseDTO, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	messages, err := s.messageRepo.FindByRecipient(ctx, userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to get messages from repository")
		return nil, fmt.Errorf("error fetching messages: %w", err)
	}

	resp := make([]dto.MessageResponseDTO, 0, len(messages))
	for i := range messages {
		var m dto.MessageResponseDTO
		if err := copier.Copy(&m, &messages[i]); err != nil {
			return nil, fmt.Errorf("error preparing messages response: %w", err)
		}
		if messages[i].Sender != nil {
			m.SenderEmail = messages[i].Sender.Email
		}
		resp = append(resp, m)
	}
	return resp, nil
}
