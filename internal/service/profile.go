package service

import (
	"context"
	"strings"

	"github.com/DwayneDumaguing/jamsody-next/internal/dto"
	"github.com/DwayneDumaguing/jamsody-next/internal/model"
	"github.com/DwayneDumaguing/jamsody-next/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type profileService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newProfileService(logger *zap.Logger, repo *repository.Repository) Profile {
	return &profileService{
		logger: logger,
		repo:   repo,
	}
}

// GetPage aggregates everything the public profile page needs. Only the
// profile lookup itself is fatal; the four supplementary lookups run
// concurrently and each degrades to an empty collection on failure.
func (s *profileService) GetPage(ctx context.Context, username string) (*dto.ProfilePage, error) {
	profile, err := s.repo.Postgres.Profile.FindByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrProfileNotFound
		}

		s.logger.Sugar().Errorf("failed to find profile(%s) in postgres: %s", username, err.Error())
		return nil, ErrInternal
	}

	var (
		media       []*model.MediaItem
		prompts     []*model.PromptAnswer
		genres      []string
		instruments []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		media = s.loadMedia(gctx, profile.ID)
		return nil
	})
	g.Go(func() error {
		prompts = s.loadPrompts(gctx, profile.ID)
		return nil
	})
	g.Go(func() error {
		genres = s.loadTags(gctx, profile.ID, "genre", s.repo.Postgres.Profile.FindGenreIDs, s.repo.Postgres.Profile.FindGenreNames)
		return nil
	})
	g.Go(func() error {
		instruments = s.loadTags(gctx, profile.ID, "instrument", s.repo.Postgres.Profile.FindInstrumentIDs, s.repo.Postgres.Profile.FindInstrumentNames)
		return nil
	})
	_ = g.Wait()

	return &dto.ProfilePage{
		Profile:     profile,
		Feed:        model.BuildFeed(media, prompts),
		Genres:      genres,
		Instruments: instruments,
	}, nil
}

func (s *profileService) loadMedia(ctx context.Context, userID uuid.UUID) []*model.MediaItem {
	items, err := s.repo.Postgres.Profile.FindPublicMedia(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find media for user(%s) in postgres: %s", userID.String(), err.Error())
		return nil
	}

	feedItems := make([]*model.MediaItem, 0, len(items))
	for _, item := range items {
		if item.IsAvatarSlot() {
			continue
		}

		feedItems = append(feedItems, item)
	}

	return feedItems
}

// loadPrompts resolves prompt question/answer pairs with a two-stage
// strategy: the joined query is used when its result is complete, otherwise
// the raw rows are fetched and question text is resolved locally from the
// catalog. The prompt join is not stable across schema revisions, so the page
// must self-heal instead of failing.
func (s *profileService) loadPrompts(ctx context.Context, userID uuid.UUID) []*model.PromptAnswer {
	joined, err := s.repo.Postgres.Profile.FindPromptAnswersJoined(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find joined prompts for user(%s) in postgres: %s", userID.String(), err.Error())
	}
	if err == nil && promptsComplete(joined) {
		return filterPrompts(joined)
	}

	answerRows, err := s.repo.Postgres.Profile.FindPromptAnswerRows(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find prompt answer rows for user(%s) in postgres: %s", userID.String(), err.Error())
		return nil
	}
	if len(answerRows) == 0 {
		return nil
	}

	catalog, err := s.repo.Postgres.Profile.FindPromptCatalog(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find prompt catalog in postgres: %s", err.Error())
		return nil
	}

	textByID := make(map[uuid.UUID]string, len(catalog))
	for _, p := range catalog {
		textByID[p.ID] = p.Text
	}

	prompts := make([]*model.PromptAnswer, 0, len(answerRows))
	for _, row := range answerRows {
		prompts = append(prompts, &model.PromptAnswer{
			Question: textByID[row.PromptID],
			Answer:   row.Answer,
		})
	}

	return filterPrompts(prompts)
}

// loadTags performs the two-hop tag resolution: link ids first, then catalog
// names. An empty first hop short-circuits without touching the catalog.
func (s *profileService) loadTags(
	ctx context.Context,
	userID uuid.UUID,
	kind string,
	findIDs func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error),
	findNames func(ctx context.Context, ids []uuid.UUID) ([]string, error),
) []string {
	ids, err := findIDs(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find %s links for user(%s) in postgres: %s", kind, userID.String(), err.Error())
		return nil
	}
	if len(ids) == 0 {
		return nil
	}

	names, err := findNames(ctx, ids)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find %s names in postgres: %s", kind, err.Error())
		return nil
	}

	return names
}

// promptsComplete reports whether the joined prompt result can be trusted: it
// must be non-empty and every row must carry its question text.
func promptsComplete(prompts []*model.PromptAnswer) bool {
	if len(prompts) == 0 {
		return false
	}

	for _, p := range prompts {
		if strings.TrimSpace(p.Question) == "" {
			return false
		}
	}

	return true
}

// filterPrompts keeps only pairs where both sides are non-empty after
// trimming.
func filterPrompts(prompts []*model.PromptAnswer) []*model.PromptAnswer {
	kept := make([]*model.PromptAnswer, 0, len(prompts))
	for _, p := range prompts {
		question := strings.TrimSpace(p.Question)
		answer := strings.TrimSpace(p.Answer)
		if question == "" || answer == "" {
			continue
		}

		kept = append(kept, &model.PromptAnswer{
			Question: question,
			Answer:   answer,
		})
	}

	return kept
}
