package service

import (
	"context"

	"github.com/DwayneDumaguing/jamsody-next/internal/dto"
	"github.com/DwayneDumaguing/jamsody-next/internal/model"
	"github.com/DwayneDumaguing/jamsody-next/internal/repository"
	"go.uber.org/zap"
)

type Profile interface {
	GetPage(ctx context.Context, username string) (*dto.ProfilePage, error)
}

type Event interface {
	GetByCode(ctx context.Context, code string) (*model.PublicEvent, error)
}

type Service struct {
	Profile
	Event
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	return &Service{
		Profile: newProfileService(logger, repo),
		Event:   newEventService(logger, repo),
	}
}
