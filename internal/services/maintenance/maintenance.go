package maintenance

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"satori_dojo/internal/lib/logger/sl"
)

// LoadFunc перезагружает содержимое секции; true означает, что контент
// появился и заглушку можно убрать.
type LoadFunc func(ctx context.Context) (bool, error)

// Tracker — состояние "секция недоступна" с ограниченным числом ручных
// повторов. Состояния: ok (контент показан) и unavailable (заглушка
// обслуживания), плюс счётчик выполненных повторов.
type Tracker struct {
	log        *slog.Logger
	section    string
	maxRetries int
	delay      time.Duration

	mu          sync.Mutex
	unavailable bool
	retryCount  int
}

func NewTracker(log *slog.Logger, section string, maxRetries int, delay time.Duration) *Tracker {
	return &Tracker{
		log:        log,
		section:    section,
		maxRetries: maxRetries,
		delay:      delay,
	}
}

// ShowMaintenance переводит секцию в состояние "недоступна"
func (t *Tracker) ShowMaintenance() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.unavailable = true
}

// HideMaintenance возвращает секцию в рабочее состояние и сбрасывает
// счётчик повторов.
func (t *Tracker) HideMaintenance() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.unavailable = false
	t.retryCount = 0
}

// Unavailable сообщает, показана ли заглушка обслуживания
func (t *Tracker) Unavailable() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unavailable
}

// CanRetry сообщает, остались ли попытки повтора
func (t *Tracker) CanRetry() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.retryCount < t.maxRetries
}

// RetryCount возвращает число выполненных повторов
func (t *Tracker) RetryCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.retryCount
}

// Retry выполняет одну попытку перезагрузки: ждёт настроенную задержку,
// вызывает загрузчик и при успехе убирает заглушку. После исчерпания
// maxRetries вызов ничего не делает. Ошибки загрузчика логируются,
// секция остаётся недоступной.
func (t *Tracker) Retry(ctx context.Context, load LoadFunc) bool {
	const op = "maintenance.Tracker.Retry"

	t.mu.Lock()
	if t.retryCount >= t.maxRetries {
		t.mu.Unlock()
		return false
	}
	t.retryCount++
	attempt := t.retryCount
	t.mu.Unlock()

	log := t.log.With(
		slog.String("op", op),
		slog.String("section", t.section),
		slog.Int("attempt", attempt),
	)

	select {
	case <-time.After(t.delay):
	case <-ctx.Done():
		log.Warn("retry cancelled", sl.Err(ctx.Err()))
		return false
	}

	ok, err := load(ctx)
	if err != nil {
		log.Error("section reload failed", sl.Err(err))
		return false
	}

	if ok {
		t.HideMaintenance()
		log.Info("section recovered")
		return true
	}

	return false
}
