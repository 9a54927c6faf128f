package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DwayneDumaguing/jamsody-next/internal/model"
	"github.com/DwayneDumaguing/jamsody-next/internal/repository"
	"github.com/DwayneDumaguing/jamsody-next/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockEventRepo struct {
	event *model.PublicEvent
	err   error
}

func (m *mockEventRepo) FindByCode(ctx context.Context, code string) (*model.PublicEvent, error) {
	return m.event, m.err
}

func newEventTestService(m *mockEventRepo) Event {
	repo := &repository.Repository{
		Postgres: &postgres.PostgresRepository{Event: m},
	}
	return newEventService(zap.NewNop(), repo)
}

func publishedEvent() *model.PublicEvent {
	return &model.PublicEvent{
		ID:        uuid.New(),
		EventCode: strPtr("JAM123"),
		Title:     "Rooftop Jam",
		Publication: model.Publication{
			PublishState: strPtr("published"),
			Visibility:   strPtr("public"),
		},
		Date: "2026-06-20",
	}
}

func TestEventService_GetByCode(t *testing.T) {
	s := newEventTestService(&mockEventRepo{event: publishedEvent()})

	event, err := s.GetByCode(context.Background(), "JAM123")
	require.NoError(t, err)
	assert.Equal(t, "Rooftop Jam", event.Title)
}

func TestEventService_GetByCode_NotFound(t *testing.T) {
	s := newEventTestService(&mockEventRepo{err: pgx.ErrNoRows})

	event, err := s.GetByCode(context.Background(), "NOPE")
	assert.Nil(t, event)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventService_GetByCode_LookupError(t *testing.T) {
	s := newEventTestService(&mockEventRepo{err: errors.New("connection refused")})

	event, err := s.GetByCode(context.Background(), "JAM123")
	assert.Nil(t, event)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestEventService_GetByCode_HidesNonPublicEvents(t *testing.T) {
	t.Run("draft", func(t *testing.T) {
		e := publishedEvent()
		e.PublishState = strPtr("draft")
		s := newEventTestService(&mockEventRepo{event: e})

		_, err := s.GetByCode(context.Background(), "JAM123")
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("private", func(t *testing.T) {
		e := publishedEvent()
		e.Visibility = strPtr("private")
		s := newEventTestService(&mockEventRepo{event: e})

		_, err := s.GetByCode(context.Background(), "JAM123")
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("cancelled even when published and public", func(t *testing.T) {
		e := publishedEvent()
		e.Status = strPtr("cancelled")
		s := newEventTestService(&mockEventRepo{event: e})

		_, err := s.GetByCode(context.Background(), "JAM123")
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}
