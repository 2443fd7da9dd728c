package models

// ScheduleEntry представляет занятие в расписании.
// Время хранится строками "HH:MM"; инвариант start < end не проверяется
// на этом уровне и важен только для отображения.
type ScheduleEntry struct {
	ID        string   `json:"id"`
	Day       string   `json:"day"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Location  string   `json:"location"`
	Coaches   []string `json:"coaches,omitempty"`
	Level     string   `json:"level"`
	IsActive  bool     `json:"is_active"`
	SortOrder int      `json:"sort_order"`

	Expand ScheduleExpand `json:"expand,omitempty"`
}

// ScheduleExpand содержит связи, раскрытые бекендом через параметр expand.
// Слой данных их никогда не вычисляет сам, только читает.
type ScheduleExpand struct {
	Location *Location      `json:"location,omitempty"`
	Coaches  []Trainer      `json:"coaches,omitempty"`
	Level    *TrainingLevel `json:"level,omitempty"`
}
