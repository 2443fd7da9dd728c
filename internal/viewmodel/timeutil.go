package viewmodel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"satori_dojo/internal/domain/models"
)

// ParseTime переводит строку "HH:MM" в минуты от полуночи.
// Некорректный формат даёт 0: расписание отображается, а не валидируется.
func ParseTime(value string) int {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}

	return hours*60 + minutes
}

// Duration возвращает длительность занятия в минутах.
// Отрицательная разница (перепутанные времена) обнуляется.
func Duration(start, end string) int {
	d := ParseTime(end) - ParseTime(start)
	if d < 0 {
		return 0
	}
	return d
}

// FormatDuration форматирует минуты как "1ч 15м": часы и минуты
// выводятся только когда ненулевые.
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0м"
	}

	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dч %dм", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dч", hours)
	default:
		return fmt.Sprintf("%dм", mins)
	}
}

// FormatTimeRange возвращает диапазон "18:00 – 19:15"
func FormatTimeRange(start, end string) string {
	return start + " – " + end
}

// SortByStartTime стабильно сортирует занятия по возрастанию времени начала
func SortByStartTime(entries []models.ScheduleEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return ParseTime(entries[i].StartTime) < ParseTime(entries[j].StartTime)
	})
}
