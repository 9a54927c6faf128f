package format

import (
	"testing"

	"github.com/DwayneDumaguing/jamsody-next/internal/model"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestDisplayName(t *testing.T) {
	for _, tc := range []struct {
		name    string
		profile *model.PublicProfile
		want    string
	}{
		{"first and last", &model.PublicProfile{FirstName: strPtr("Mara"), LastName: strPtr("Santos")}, "Mara Santos"},
		{"first only", &model.PublicProfile{FirstName: strPtr("Mara")}, "Mara"},
		{"last only", &model.PublicProfile{LastName: strPtr("Santos")}, "Santos"},
		{"whitespace trimmed", &model.PublicProfile{FirstName: strPtr("  Mara "), LastName: strPtr(" Santos ")}, "Mara Santos"},
		{"both blank falls back", &model.PublicProfile{FirstName: strPtr("  "), LastName: strPtr("")}, FallbackDisplayName},
		{"nil fields fall back", &model.PublicProfile{}, FallbackDisplayName},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DisplayName(tc.profile))
		})
	}
}

func TestTitleName(t *testing.T) {
	t.Run("uses display name when present", func(t *testing.T) {
		p := &model.PublicProfile{FirstName: strPtr("Mara"), Username: "mara"}
		assert.Equal(t, "Mara", TitleName(p))
	})

	t.Run("falls back to handle when name is blank", func(t *testing.T) {
		p := &model.PublicProfile{Username: "mara"}
		assert.Equal(t, "@mara", TitleName(p))
	})

	t.Run("does not double the at sign", func(t *testing.T) {
		p := &model.PublicProfile{Username: "@mara"}
		assert.Equal(t, "@mara", TitleName(p))
	})

	t.Run("no name and no username keeps the fallback", func(t *testing.T) {
		p := &model.PublicProfile{Username: "  "}
		assert.Equal(t, FallbackDisplayName, TitleName(p))
	})
}

func TestHostName(t *testing.T) {
	assert.Equal(t, "Rio Cruz", HostName(&model.EventHost{FirstName: strPtr("Rio"), LastName: strPtr("Cruz")}))
	assert.Equal(t, "@rio", HostName(&model.EventHost{Username: strPtr("rio")}))
	assert.Equal(t, "@rio", HostName(&model.EventHost{Username: strPtr("@rio")}))
	assert.Equal(t, "Host", HostName(&model.EventHost{}))
	assert.Equal(t, "Host", HostName(nil))
}

func TestEventDateTime(t *testing.T) {
	t.Run("date with start and end", func(t *testing.T) {
		e := &model.PublicEvent{Date: "2020-01-01", StartTime: strPtr("19:00"), EndTime: strPtr("21:30")}
		assert.Equal(t, "Wed, Jan 1, 2020 • 7:00 PM – 9:30 PM", EventDateTime(e))
	})

	t.Run("seconds are tolerated", func(t *testing.T) {
		e := &model.PublicEvent{Date: "2020-01-01", StartTime: strPtr("09:15:00"), EndTime: strPtr("10:45:00")}
		assert.Equal(t, "Wed, Jan 1, 2020 • 9:15 AM – 10:45 AM", EventDateTime(e))
	})

	t.Run("missing end time drops the time portion", func(t *testing.T) {
		e := &model.PublicEvent{Date: "2020-01-01", StartTime: strPtr("19:00")}
		assert.Equal(t, "Wed, Jan 1, 2020", EventDateTime(e))
	})

	t.Run("missing start time drops the time portion", func(t *testing.T) {
		e := &model.PublicEvent{Date: "2020-01-01", EndTime: strPtr("21:30")}
		assert.Equal(t, "Wed, Jan 1, 2020", EventDateTime(e))
	})

	t.Run("unparseable date passes through raw", func(t *testing.T) {
		e := &model.PublicEvent{Date: "soon"}
		assert.Equal(t, "soon", EventDateTime(e))
	})

	t.Run("unparseable date keeps valid times", func(t *testing.T) {
		e := &model.PublicEvent{Date: "soon", StartTime: strPtr("19:00"), EndTime: strPtr("20:00")}
		assert.Equal(t, "soon • 7:00 PM – 8:00 PM", EventDateTime(e))
	})

	t.Run("malformed time components count as zero", func(t *testing.T) {
		e := &model.PublicEvent{Date: "2020-01-01", StartTime: strPtr("xx:yy"), EndTime: strPtr("21:00")}
		assert.Equal(t, "Wed, Jan 1, 2020 • 12:00 AM – 9:00 PM", EventDateTime(e))
	})
}
