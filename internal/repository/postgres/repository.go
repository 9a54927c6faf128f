package postgres

import (
	"context"

	"github.com/DwayneDumaguing/jamsody-next/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Profile interface {
	FindByUsername(ctx context.Context, username string) (*model.PublicProfile, error)
	FindPublicMedia(ctx context.Context, userID uuid.UUID) ([]*model.MediaItem, error)
	FindPromptAnswersJoined(ctx context.Context, userID uuid.UUID) ([]*model.PromptAnswer, error)
	FindPromptAnswerRows(ctx context.Context, userID uuid.UUID) ([]*model.PromptAnswerRow, error)
	FindPromptCatalog(ctx context.Context) ([]*model.CatalogPrompt, error)
	FindGenreIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	FindGenreNames(ctx context.Context, ids []uuid.UUID) ([]string, error)
	FindInstrumentIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	FindInstrumentNames(ctx context.Context, ids []uuid.UUID) ([]string, error)
}

type Event interface {
	FindByCode(ctx context.Context, code string) (*model.PublicEvent, error)
}

type PostgresRepository struct {
	Profile
	Event
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Profile: newProfileRepo(db),
		Event:   newEventRepo(db),
	}
}
