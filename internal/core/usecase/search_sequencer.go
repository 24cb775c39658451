package usecase

import (
	"context"
	"sync"
)

type searchTicket struct {
	seq    uint64
	cancel context.CancelFunc
}

// searchSequencer хранит последний запущенный поиск для каждого ключа клиента.
// Новый поиск отменяет предыдущий, а его ответ считается устаревшим.
type searchSequencer struct {
	mu     sync.Mutex
	seq    uint64
	latest map[string]searchTicket
}

func newSearchSequencer() *searchSequencer {
	return &searchSequencer{latest: make(map[string]searchTicket)}
}

func (s *searchSequencer) begin(parent context.Context, key string) (context.Context, uint64, func()) {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	s.seq++
	seq := s.seq
	if prev, ok := s.latest[key]; ok {
		prev.cancel()
	}
	s.latest[key] = searchTicket{seq: seq, cancel: cancel}
	s.mu.Unlock()

	done := func() {
		s.mu.Lock()
		if cur, ok := s.latest[key]; ok && cur.seq == seq {
			delete(s.latest, key)
		}
		s.mu.Unlock()
		cancel()
	}
	return ctx, seq, done
}

func (s *searchSequencer) isCurrent(key string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.latest[key]
	return ok && cur.seq == seq
}
