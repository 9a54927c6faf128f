package postgres

import (
	"context"
	"strings"

	"github.com/DwayneDumaguing/jamsody-next/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func newProfileRepo(db *pgxpool.Pool) Profile {
	return &profileRepo{
		db: db,
	}
}

func (r *profileRepo) FindByUsername(ctx context.Context, username string) (*model.PublicProfile, error) {
	var p model.PublicProfile
	if err := r.db.QueryRow(ctx, `
	SELECT
	p.id, p.username, p.first_name, p.last_name, p.avatar_url, p.bio, p.profile_bio, p.location,
	p.instagram_handle, p.youtube_handle, p.spotify_handle, p.apple_music_handle, p.booking_permission
	FROM public_profiles p
	WHERE p.username ILIKE $1
	`, strings.ToLower(strings.TrimSpace(username))).Scan(
		&p.ID,
		&p.Username,
		&p.FirstName,
		&p.LastName,
		&p.AvatarURL,
		&p.Bio,
		&p.ProfileBio,
		&p.Location,
		&p.InstagramHandle,
		&p.YoutubeHandle,
		&p.SpotifyHandle,
		&p.AppleMusicHandle,
		&p.BookingPermission,
	); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *profileRepo) FindPublicMedia(ctx context.Context, userID uuid.UUID) ([]*model.MediaItem, error) {
	rows, err := r.db.Query(
		ctx,
		`
		SELECT
		m.id, m.media_type, m.storage_path, m.caption, m.order_index, m.duration_seconds, m.is_public, m.thumbnail_path, m.thumbnail_url
		FROM user_media m
		WHERE m.user_id = $1 AND m.is_public = TRUE
		ORDER BY m.order_index ASC
		`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*model.MediaItem
	for rows.Next() {
		var m model.MediaItem
		if err := rows.Scan(
			&m.ID,
			&m.MediaType,
			&m.StoragePath,
			&m.Caption,
			&m.OrderIndex,
			&m.DurationSeconds,
			&m.IsPublic,
			&m.ThumbnailPath,
			&m.ThumbnailURL,
		); err != nil {
			return nil, err
		}

		items = append(items, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *profileRepo) FindPromptAnswersJoined(ctx context.Context, userID uuid.UUID) ([]*model.PromptAnswer, error) {
	rows, err := r.db.Query(
		ctx,
		`
		SELECT up.answer, p.prompt_text
		FROM user_prompts up
		LEFT JOIN prompts p ON p.id = up.prompt_id
		WHERE up.user_id = $1
		`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prompts []*model.PromptAnswer
	for rows.Next() {
		var (
			answer   *string
			question *string
		)
		if err := rows.Scan(&answer, &question); err != nil {
			return nil, err
		}

		prompts = append(prompts, &model.PromptAnswer{
			Question: stringOrEmpty(question),
			Answer:   stringOrEmpty(answer),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return prompts, nil
}

func (r *profileRepo) FindPromptAnswerRows(ctx context.Context, userID uuid.UUID) ([]*model.PromptAnswerRow, error) {
	rows, err := r.db.Query(ctx, "SELECT up.prompt_id, up.answer FROM user_prompts up WHERE up.user_id = $1", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*model.PromptAnswerRow
	for rows.Next() {
		var (
			promptID uuid.UUID
			answer   *string
		)
		if err := rows.Scan(&promptID, &answer); err != nil {
			return nil, err
		}

		result = append(result, &model.PromptAnswerRow{
			PromptID: promptID,
			Answer:   stringOrEmpty(answer),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *profileRepo) FindPromptCatalog(ctx context.Context) ([]*model.CatalogPrompt, error) {
	rows, err := r.db.Query(ctx, "SELECT p.id, p.prompt_text FROM prompts p")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var catalog []*model.CatalogPrompt
	for rows.Next() {
		var p model.CatalogPrompt
		if err := rows.Scan(&p.ID, &p.Text); err != nil {
			return nil, err
		}

		catalog = append(catalog, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return catalog, nil
}

func (r *profileRepo) FindGenreIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.findLinkedIDs(ctx, "SELECT ug.genre_id FROM user_genres ug WHERE ug.user_id = $1", userID)
}

func (r *profileRepo) FindGenreNames(ctx context.Context, ids []uuid.UUID) ([]string, error) {
	return r.findTagNames(ctx, "SELECT g.name FROM genres g WHERE g.id = ANY($1)", ids)
}

func (r *profileRepo) FindInstrumentIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.findLinkedIDs(ctx, "SELECT ui.instrument_id FROM user_instruments ui WHERE ui.user_id = $1", userID)
}

func (r *profileRepo) FindInstrumentNames(ctx context.Context, ids []uuid.UUID) ([]string, error) {
	return r.findTagNames(ctx, "SELECT i.name FROM instruments i WHERE i.id = ANY($1)", ids)
}

func (r *profileRepo) findLinkedIDs(ctx context.Context, query string, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *profileRepo) findTagNames(ctx context.Context, query string, ids []uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}

		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
