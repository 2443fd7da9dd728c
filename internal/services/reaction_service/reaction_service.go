package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"satori_dojo/internal/lib/logger/sl"
	"satori_dojo/internal/lib/optimistic"
	"satori_dojo/internal/repository"
)

// ErrReactionInFlight возвращается при повторном переключении той же пары
// (новость, реакция), пока предыдущий запрос не завершился.
var ErrReactionInFlight = errors.New("reaction update already in flight")

// ReactionService переключает счётчики реакций на новостях.
// Обновление оптимистичное: локальный снимок меняется сразу, затем
// выполняется чтение-изменение-запись на бекенде; при сбое записи
// локальное состояние откатывается. Обновление неатомарно — при
// одновременных реакциях разных посетителей побеждает последний
// пишущий, это принятое ограничение, а не гарантия.
type ReactionService struct {
	log  *slog.Logger
	repo repository.NewsRepository

	mu       sync.Mutex
	inflight map[string]struct{}
	counts   map[string]map[string]int
}

func NewReactionService(log *slog.Logger, repo repository.NewsRepository) *ReactionService {
	return &ReactionService{
		log:      log,
		repo:     repo,
		inflight: make(map[string]struct{}),
		counts:   make(map[string]map[string]int),
	}
}

// Toggle применяет переключение реакции: activate=true увеличивает счётчик
// на 1, activate=false уменьшает с полом в 0. Возвращает снимок счётчиков
// новости после фиксации.
func (s *ReactionService) Toggle(ctx context.Context, newsID, reaction string, activate bool) (map[string]int, error) {
	const op = "reaction_service.Toggle"

	log := s.log.With(
		slog.String("op", op),
		slog.String("news_id", newsID),
		slog.String("reaction", reaction),
	)

	key := newsID + "/" + reaction
	if !s.acquire(key) {
		log.Warn("duplicate toggle suppressed")
		return nil, ErrReactionInFlight
	}
	defer s.release(key)

	delta := 1
	if !activate {
		delta = -1
	}

	var prev int
	var hadPrev bool

	cmd := optimistic.Command{
		Apply: func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			local := s.counts[newsID]
			if local == nil {
				local = make(map[string]int)
				s.counts[newsID] = local
			}
			prev, hadPrev = local[reaction], true
			local[reaction] = clampCount(prev + delta)
		},
		Commit: func(ctx context.Context) error {
			news, err := s.repo.GetNewsByID(ctx, newsID)
			if err != nil {
				return fmt.Errorf("read current counts: %w", err)
			}

			counts := make(map[string]int, len(news.ReactionCounts)+1)
			for name, count := range news.ReactionCounts {
				counts[name] = count
			}
			counts[reaction] = clampCount(counts[reaction] + delta)

			if err := s.repo.UpdateReactionCounts(ctx, newsID, counts); err != nil {
				return fmt.Errorf("write counts: %w", err)
			}

			s.mu.Lock()
			s.counts[newsID] = counts
			s.mu.Unlock()
			return nil
		},
		Compensate: func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			if hadPrev {
				s.counts[newsID][reaction] = prev
			}
		},
	}

	if err := optimistic.Run(ctx, cmd); err != nil {
		log.Error("reaction update failed, rolled back", sl.Err(err))
		return nil, err
	}

	return s.snapshot(newsID), nil
}

// Counts возвращает копию локального снимка счётчиков новости
func (s *ReactionService) Counts(newsID string) map[string]int {
	return s.snapshot(newsID)
}

func (s *ReactionService) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inflight[key]; busy {
		return false
	}
	s.inflight[key] = struct{}{}
	return true
}

func (s *ReactionService) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, key)
}

func (s *ReactionService) snapshot(newsID string) map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	local := s.counts[newsID]
	out := make(map[string]int, len(local))
	for name, count := range local {
		out[name] = count
	}
	return out
}

func clampCount(count int) int {
	if count < 0 {
		return 0
	}
	return count
}
