package viewmodel

import (
	"strings"

	"satori_dojo/internal/domain/models"
)

// Строки-заглушки, когда бекенд не раскрыл связь
const (
	UnknownLocation = "Неизвестная локация"
	UnknownLevel    = "Уровень не указан"
	UnassignedCoach = "Тренер не назначен"
	UnknownCategory = "Без категории"
	UnknownAuthor   = "Автор не указан"
)

// LocationName возвращает название зала занятия либо заглушку,
// если связь не была раскрыта бекендом.
func LocationName(entry models.ScheduleEntry) string {
	if entry.Expand.Location != nil {
		return entry.Expand.Location.Name
	}
	return UnknownLocation
}

// LevelName возвращает название уровня подготовки либо заглушку
func LevelName(entry models.ScheduleEntry) string {
	if entry.Expand.Level != nil {
		return entry.Expand.Level.Name
	}
	return UnknownLevel
}

// CoachesNames возвращает имена тренеров занятия через ", "
// либо заглушку, если тренеры не назначены.
func CoachesNames(entry models.ScheduleEntry) string {
	if len(entry.Expand.Coaches) == 0 {
		return UnassignedCoach
	}

	names := make([]string, 0, len(entry.Expand.Coaches))
	for _, coach := range entry.Expand.Coaches {
		names = append(names, coach.Name)
	}
	return strings.Join(names, ", ")
}

// HasMultipleCoaches сообщает, ведут ли занятие несколько тренеров
func HasMultipleCoaches(entry models.ScheduleEntry) bool {
	return len(entry.Expand.Coaches) > 1
}

// NewsCategoryName возвращает название категории новости либо заглушку
func NewsCategoryName(news models.News) string {
	if news.Expand.Category != nil {
		return news.Expand.Category.Name
	}
	return UnknownCategory
}

// NewsAuthorName возвращает имя автора новости либо заглушку
func NewsAuthorName(news models.News) string {
	if news.Expand.Author != nil {
		return news.Expand.Author.Name
	}
	return UnknownAuthor
}
