package viewmodel

import (
	"testing"

	"satori_dojo/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{"evening", "18:30", 1110},
		{"midnight", "00:00", 0},
		{"morning", "09:05", 545},
		{"garbage", "abc", 0},
		{"missing minutes", "18", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTime(tt.value))
		})
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 75, Duration("18:00", "19:15"))
	assert.Equal(t, 0, Duration("19:00", "18:00"), "reversed times must not go negative")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{75, "1ч 15м"},
		{45, "45м"},
		{60, "1ч"},
		{0, "0м"},
		{135, "2ч 15м"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDuration(tt.minutes))
	}
}

func TestSortByStartTime(t *testing.T) {
	entries := []models.ScheduleEntry{
		{ID: "late", StartTime: "19:00"},
		{ID: "early", StartTime: "08:30"},
		{ID: "noon", StartTime: "12:00"},
	}

	SortByStartTime(entries)

	assert.Equal(t, "early", entries[0].ID)
	assert.Equal(t, "noon", entries[1].ID)
	assert.Equal(t, "late", entries[2].ID)
}
