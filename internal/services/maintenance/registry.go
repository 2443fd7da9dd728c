package maintenance

import (
	"context"
	"sync"
)

// Status — снимок состояния секции для отдачи наружу
type Status struct {
	Section     string `json:"section"`
	Unavailable bool   `json:"unavailable"`
	RetryCount  int    `json:"retry_count"`
	CanRetry    bool   `json:"can_retry"`
}

type section struct {
	tracker *Tracker
	load    LoadFunc
}

// Registry связывает секции сайта с их трекерами и загрузчиками
type Registry struct {
	mu       sync.RWMutex
	sections map[string]section
}

func NewRegistry() *Registry {
	return &Registry{
		sections: make(map[string]section),
	}
}

func (r *Registry) Register(name string, tracker *Tracker, load LoadFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sections[name] = section{tracker: tracker, load: load}
}

// MarkUnavailable переводит секцию в режим обслуживания; false — секция
// не зарегистрирована. Вызывается слоем контента при сбое загрузки.
func (r *Registry) MarkUnavailable(name string) bool {
	r.mu.RLock()
	s, ok := r.sections[name]
	r.mu.RUnlock()

	if !ok {
		return false
	}

	s.tracker.ShowMaintenance()
	return true
}

// Status возвращает состояние секции; false — секция не зарегистрирована
func (r *Registry) Status(name string) (Status, bool) {
	r.mu.RLock()
	s, ok := r.sections[name]
	r.mu.RUnlock()

	if !ok {
		return Status{}, false
	}

	return Status{
		Section:     name,
		Unavailable: s.tracker.Unavailable(),
		RetryCount:  s.tracker.RetryCount(),
		CanRetry:    s.tracker.CanRetry(),
	}, true
}

// Retry выполняет одну попытку восстановления секции; false — секция
// не зарегистрирована или попытки исчерпаны.
func (r *Registry) Retry(ctx context.Context, name string) (Status, bool) {
	r.mu.RLock()
	s, ok := r.sections[name]
	r.mu.RUnlock()

	if !ok {
		return Status{}, false
	}

	s.tracker.Retry(ctx, s.load)

	return Status{
		Section:     name,
		Unavailable: s.tracker.Unavailable(),
		RetryCount:  s.tracker.RetryCount(),
		CanRetry:    s.tracker.CanRetry(),
	}, true
}
