package service

import (
	"context"

	"github.com/DwayneDumaguing/jamsody-next/internal/model"
	"github.com/DwayneDumaguing/jamsody-next/internal/repository"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type eventService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newEventService(logger *zap.Logger, repo *repository.Repository) Event {
	return &eventService{
		logger: logger,
		repo:   repo,
	}
}

func (s *eventService) GetByCode(ctx context.Context, code string) (*model.PublicEvent, error) {
	event, err := s.repo.Postgres.Event.FindByCode(ctx, code)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrEventNotFound
		}

		s.logger.Sugar().Errorf("failed to find event(%s) in postgres: %s", code, err.Error())
		return nil, ErrInternal
	}

	// Draft, private, and cancelled events are indistinguishable from missing
	// ones to an anonymous visitor.
	if !event.IsPubliclyViewable() {
		return nil, ErrEventNotFound
	}

	return event, nil
}
