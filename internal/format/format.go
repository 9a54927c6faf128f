package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DwayneDumaguing/jamsody-next/internal/model"
)

const FallbackDisplayName = "Unnamed Musician"

const (
	dateLayout  = "2006-01-02"
	dayFormat   = "Mon, Jan 2, 2006"
	clockFormat = "3:04 PM"
)

// DisplayName returns the trimmed "first last" name, or the fallback when
// both parts are blank.
func DisplayName(p *model.PublicProfile) string {
	fn := trimmed(p.FirstName)
	ln := trimmed(p.LastName)
	if fn == "" && ln == "" {
		return FallbackDisplayName
	}
	return strings.TrimSpace(fn + " " + ln)
}

// TitleName is the header variant of DisplayName: when the name fell back and
// a username exists, the handle is shown instead.
func TitleName(p *model.PublicProfile) string {
	name := DisplayName(p)
	username := strings.TrimSpace(p.Username)
	if name == FallbackDisplayName && username != "" {
		return "@" + TrimAt(username)
	}
	return name
}

// HostName derives the display name of an event host: full name, else the
// @handle, else "Host".
func HostName(h *model.EventHost) string {
	if h != nil {
		full := strings.TrimSpace(trimmed(h.FirstName) + " " + trimmed(h.LastName))
		if full != "" {
			return full
		}
		if username := trimmed(h.Username); username != "" {
			return "@" + TrimAt(username)
		}
	}
	return "Host"
}

// TrimAt strips a single leading "@" from a handle.
func TrimAt(handle string) string {
	return strings.TrimPrefix(handle, "@")
}

// EventDateTime renders the event's date and time range for humans. An
// unparseable date degrades to the raw string; a missing start or end time
// drops the time portion. It never fails.
func EventDateTime(e *model.PublicEvent) string {
	day := e.Date
	if d, err := time.Parse(dateLayout, strings.TrimSpace(e.Date)); err == nil {
		day = d.Format(dayFormat)
	}

	st := clockTime(e.StartTime)
	et := clockTime(e.EndTime)
	if st == "" || et == "" {
		return day
	}

	return fmt.Sprintf("%s • %s – %s", day, st, et)
}

// clockTime formats an "HH:mm" or "HH:mm:ss" string; malformed components
// count as zero rather than erroring.
func clockTime(t *string) string {
	raw := trimmed(t)
	if raw == "" {
		return ""
	}

	parts := strings.Split(raw, ":")
	hh, _ := strconv.Atoi(parts[0])
	mm := 0
	if len(parts) > 1 {
		mm, _ = strconv.Atoi(parts[1])
	}

	return time.Date(2020, time.January, 1, hh, mm, 0, 0, time.UTC).Format(clockFormat)
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
