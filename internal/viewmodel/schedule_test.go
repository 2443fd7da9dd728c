package viewmodel

import (
	"testing"

	"satori_dojo/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSchedule(t *testing.T) {
	entries := []models.ScheduleEntry{
		{
			ID:        "wed",
			Day:       "Среда",
			StartTime: "19:00",
			EndTime:   "20:30",
		},
		{
			ID:        "mon-late",
			Day:       "Понедельник",
			StartTime: "19:00",
			EndTime:   "20:15",
			Expand: models.ScheduleExpand{
				Location: &models.Location{Name: "Главный зал"},
				Coaches:  []models.Trainer{{Name: "Сергей Волков"}},
				Level:    &models.TrainingLevel{Name: "Взрослые", Slug: "adults"},
			},
		},
		{
			ID:        "mon-early",
			Day:       "Понедельник",
			StartTime: "17:00",
			EndTime:   "18:00",
		},
	}

	days := BuildSchedule(entries, nil)

	require.Len(t, days, 2, "days without entries are omitted")
	assert.Equal(t, "Понедельник", days[0].Day)
	assert.Equal(t, "Среда", days[1].Day)

	monday := days[0].Entries
	require.Len(t, monday, 2)
	assert.Equal(t, "mon-early", monday[0].ID, "entries sorted by start time")
	assert.Equal(t, "mon-late", monday[1].ID)

	late := monday[1]
	assert.Equal(t, "19:00 – 20:15", late.TimeRange)
	assert.Equal(t, "1ч 15м", late.Duration)
	assert.Equal(t, "Главный зал", late.Location)
	assert.Equal(t, "Взрослые", late.Level)
	assert.Equal(t, "Сергей Волков", late.Coaches)
	assert.False(t, late.HasMultipleCoaches)

	early := monday[0]
	assert.Equal(t, UnknownLocation, early.Location)
	assert.Equal(t, UnassignedCoach, early.Coaches)
}

func TestBuildNewsView(t *testing.T) {
	news := models.News{
		ID:      "n1",
		Title:   "Открытие нового зала",
		Slug:    "new-hall",
		Excerpt: "<p>Коротко</p>",
		Content: "<script>alert(1)</script><p>Подробности</p>",
		ReactionCounts: map[string]int{
			"fire": 3,
			"clap": -2,
		},
		Expand: models.NewsExpand{
			Category: &models.NewsCategory{Name: "Анонсы", Slug: "announce"},
			Author:   &models.NewsAuthor{Name: "Админ"},
			Reactions: []models.ReactionType{
				{Name: "fire", Emoji: "🔥"},
				{Name: "clap", Emoji: "👏"},
			},
		},
	}

	view := BuildNewsView(news, nil, true)

	assert.Equal(t, "Коротко", view.Excerpt)
	assert.Equal(t, "<p>Подробности</p>", view.Content)
	assert.Equal(t, "Анонсы", view.Category)
	assert.Equal(t, "Админ", view.Author)

	require.Len(t, view.Reactions, 2)
	assert.Equal(t, 3, view.Reactions[0].Count)
	assert.Equal(t, 0, view.Reactions[1].Count, "negative counts clamp to zero")
}

func TestBuildNewsList_NoContent(t *testing.T) {
	views := BuildNewsList([]models.News{{ID: "n1", Content: "<p>x</p>"}}, nil)

	require.Len(t, views, 1)
	assert.Empty(t, views[0].Content)
}
