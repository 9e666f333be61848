package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haze-32/tjk/internal/calendar"
	"github.com/Haze-32/tjk/internal/config"
)

func day(month time.Month, d int) calendar.Date {
	return calendar.NewDate(2025, month, d)
}

func TestGetHomeDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(homeEnv, dir)

	got, err := getHomeDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestLoadCalendarDefaults(t *testing.T) {
	cfg, engine, err := loadCalendar(t.TempDir(), calendarOverrides{})

	require.NoError(t, err)
	assert.Equal(t, config.DefaultTitle, cfg.Title)
	assert.Equal(t, calendar.DefaultStart, engine.Start())
	assert.Equal(t, calendar.DefaultEnd, engine.End())
	assert.True(t, engine.IsLocked(day(time.April, 15)))
	assert.Equal(t, calendar.WeekRolling, engine.WeekMode())
}

func TestLoadCalendarOverrides(t *testing.T) {
	homeDir := t.TempDir()
	require.NoError(t, config.Write(homeDir, &config.Config{
		Title:    "Reading",
		Start:    "2025-01-06",
		End:      "2025-01-31",
		Locks:    []string{"2025-01-10"},
		WeekMode: "calendar",
	}))

	o := calendarOverrides{
		end:      "2025-01-17",
		weekMode: "rolling",
		locks:    []string{"2025-01-08"},
		locksSet: true,
	}
	cfg, engine, err := loadCalendar(homeDir, o)

	require.NoError(t, err)
	assert.Equal(t, "Reading", cfg.Title)
	assert.Equal(t, calendar.NewDate(2025, time.January, 6), engine.Start())
	assert.Equal(t, calendar.NewDate(2025, time.January, 17), engine.End())
	assert.Equal(t, calendar.WeekRolling, engine.WeekMode())
	assert.True(t, engine.IsLocked(calendar.NewDate(2025, time.January, 8)))
	assert.False(t, engine.IsLocked(calendar.NewDate(2025, time.January, 10)))
}

func TestLoadCalendarEmptyLockFlagClearsLocks(t *testing.T) {
	_, engine, err := loadCalendar(t.TempDir(), calendarOverrides{locksSet: true})

	require.NoError(t, err)
	assert.Equal(t, 0, engine.Locks().Len())
}

func TestLoadCalendarInvalid(t *testing.T) {
	tests := []struct {
		name string
		o    calendarOverrides
		want string
	}{
		{"start", calendarOverrides{start: "someday"}, "start"},
		{"end", calendarOverrides{end: "2025-13-40"}, "end"},
		{"week mode", calendarOverrides{weekMode: "fortnight"}, "week mode"},
		{"lock", calendarOverrides{locks: []string{"nope"}, locksSet: true}, "lock date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := loadCalendar(t.TempDir(), tt.o)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid calendar")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
