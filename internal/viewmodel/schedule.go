package viewmodel

import (
	"satori_dojo/internal/domain/models"
)

// Дни недели в порядке отображения расписания
var weekdayOrder = []string{
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
	"Воскресенье",
}

// ScheduleEntryView — занятие с уже разрешёнными именами и стилями
type ScheduleEntryView struct {
	ID                 string      `json:"id"`
	TimeRange          string      `json:"time_range"`
	Duration           string      `json:"duration"`
	Location           string      `json:"location"`
	Level              string      `json:"level"`
	Coaches            string      `json:"coaches"`
	HasMultipleCoaches bool        `json:"has_multiple_coaches"`
	Styles             ThemeStyles `json:"styles"`
}

// DaySchedule — занятия одного дня недели
type DaySchedule struct {
	Day     string              `json:"day"`
	Entries []ScheduleEntryView `json:"entries"`
}

// BuildSchedule группирует занятия по дням недели в фиксированном порядке
// и строит view каждого занятия. Дни без занятий опускаются.
// Стиль занятия берётся из темы уровня подготовки.
func BuildSchedule(entries []models.ScheduleEntry, themes []models.ColorTheme) []DaySchedule {
	byDay := make(map[string][]models.ScheduleEntry, len(weekdayOrder))
	for _, entry := range entries {
		byDay[entry.Day] = append(byDay[entry.Day], entry)
	}

	days := make([]DaySchedule, 0, len(byDay))
	for _, day := range weekdayOrder {
		dayEntries, ok := byDay[day]
		if !ok {
			continue
		}

		SortByStartTime(dayEntries)

		views := make([]ScheduleEntryView, 0, len(dayEntries))
		for _, entry := range dayEntries {
			views = append(views, buildEntryView(entry, themes))
		}

		days = append(days, DaySchedule{Day: day, Entries: views})
	}

	return days
}

func buildEntryView(entry models.ScheduleEntry, themes []models.ColorTheme) ScheduleEntryView {
	var levelTheme *models.ColorTheme
	var levelSlug string
	levelName := LevelName(entry)

	if entry.Expand.Level != nil {
		levelTheme = entry.Expand.Level.Expand.ColorTheme
		levelSlug = entry.Expand.Level.Slug
	}

	return ScheduleEntryView{
		ID:                 entry.ID,
		TimeRange:          FormatTimeRange(entry.StartTime, entry.EndTime),
		Duration:           FormatDuration(Duration(entry.StartTime, entry.EndTime)),
		Location:           LocationName(entry),
		Level:              levelName,
		Coaches:            CoachesNames(entry),
		HasMultipleCoaches: HasMultipleCoaches(entry),
		Styles:             ResolveThemeStyles(levelTheme, levelSlug, themes, levelName),
	}
}
