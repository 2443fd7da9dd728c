package viewmodel

import (
	"testing"

	"satori_dojo/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestCoachesNames(t *testing.T) {
	tests := []struct {
		name          string
		entry         models.ScheduleEntry
		expected      string
		multipleCoach bool
	}{
		{
			name:          "no expanded coaches",
			entry:         models.ScheduleEntry{Coaches: []string{"c1"}},
			expected:      UnassignedCoach,
			multipleCoach: false,
		},
		{
			name: "single coach",
			entry: models.ScheduleEntry{Expand: models.ScheduleExpand{
				Coaches: []models.Trainer{{Name: "Сергей Волков"}},
			}},
			expected:      "Сергей Волков",
			multipleCoach: false,
		},
		{
			name: "two coaches joined",
			entry: models.ScheduleEntry{Expand: models.ScheduleExpand{
				Coaches: []models.Trainer{{Name: "Сергей Волков"}, {Name: "Анна Орлова"}},
			}},
			expected:      "Сергей Волков, Анна Орлова",
			multipleCoach: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CoachesNames(tt.entry))
			assert.Equal(t, tt.multipleCoach, HasMultipleCoaches(tt.entry))
		})
	}
}

func TestLocationName(t *testing.T) {
	withLocation := models.ScheduleEntry{Expand: models.ScheduleExpand{
		Location: &models.Location{Name: "Зал на Ленина"},
	}}

	assert.Equal(t, "Зал на Ленина", LocationName(withLocation))
	assert.Equal(t, UnknownLocation, LocationName(models.ScheduleEntry{Location: "loc1"}))
}

func TestLevelName(t *testing.T) {
	withLevel := models.ScheduleEntry{Expand: models.ScheduleExpand{
		Level: &models.TrainingLevel{Name: "Продвинутые"},
	}}

	assert.Equal(t, "Продвинутые", LevelName(withLevel))
	assert.Equal(t, UnknownLevel, LevelName(models.ScheduleEntry{}))
}

func TestNewsNames(t *testing.T) {
	news := models.News{Expand: models.NewsExpand{
		Category: &models.NewsCategory{Name: "Соревнования"},
		Author:   &models.NewsAuthor{Name: "Админ"},
	}}

	assert.Equal(t, "Соревнования", NewsCategoryName(news))
	assert.Equal(t, "Админ", NewsAuthorName(news))

	assert.Equal(t, UnknownCategory, NewsCategoryName(models.News{}))
	assert.Equal(t, UnknownAuthor, NewsAuthorName(models.News{}))
}
