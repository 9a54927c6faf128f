package postgres

import (
	"context"
	"strings"

	"github.com/DwayneDumaguing/jamsody-next/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type eventRepo struct {
	db *pgxpool.Pool
}

func newEventRepo(db *pgxpool.Pool) Event {
	return &eventRepo{
		db: db,
	}
}

// FindByCode loads an event with its host profile. Date and time columns are
// selected as text so malformed values reach the formatter as raw strings
// instead of failing the scan.
func (r *eventRepo) FindByCode(ctx context.Context, code string) (*model.PublicEvent, error) {
	var (
		e             model.PublicEvent
		hostUsername  *string
		hostFirstName *string
		hostLastName  *string
		hostAvatarURL *string
	)
	if err := r.db.QueryRow(
		ctx,
		`
		SELECT
		e.id, e.event_code, e.title, e.description, e.event_type,
		e.publish_state, e.visibility, e.status,
		COALESCE(e.date::text, ''), e.start_time::text, e.end_time::text,
		e.is_online, e.meeting_link, e.location_name, e.location_address,
		e.cover_image_url, e.is_free, e.price::text, e.capacity,
		h.username, h.first_name, h.last_name, h.avatar_url
		FROM events e
		LEFT JOIN public_profiles h ON h.id = e.host_id
		WHERE e.event_code = $1
		`,
		strings.TrimSpace(code),
	).Scan(
		&e.ID,
		&e.EventCode,
		&e.Title,
		&e.Description,
		&e.EventType,
		&e.PublishState,
		&e.Visibility,
		&e.Status,
		&e.Date,
		&e.StartTime,
		&e.EndTime,
		&e.IsOnline,
		&e.MeetingLink,
		&e.LocationName,
		&e.LocationAddress,
		&e.CoverImageURL,
		&e.IsFree,
		&e.Price,
		&e.Capacity,
		&hostUsername,
		&hostFirstName,
		&hostLastName,
		&hostAvatarURL,
	); err != nil {
		return nil, err
	}

	if hostUsername != nil || hostFirstName != nil || hostLastName != nil || hostAvatarURL != nil {
		e.Host = &model.EventHost{
			Username:  hostUsername,
			FirstName: hostFirstName,
			LastName:  hostLastName,
			AvatarURL: hostAvatarURL,
		}
	}

	return &e, nil
}
