package usecase

import (
	"sort"
	"sync"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
)

// LeadBoard - локальное состояние таблицы лидов по сессиям. Оптимистичные
// изменения статуса применяются здесь и откатываются при ошибке API.
// Доски, к которым не обращались дольше idleTTL, удаляются при следующей записи.
type LeadBoard struct {
	mu        sync.Mutex
	boards    map[string]map[int64]domain.Lead
	lastSeen  map[string]time.Time
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// sweepInterval - не чаще одного обхода досок за этот период.
const sweepInterval = time.Minute

// NewLeadBoard - idleTTL <= 0 отключает вытеснение по времени.
func NewLeadBoard(idleTTL time.Duration) *LeadBoard {
	return &LeadBoard{
		boards:   make(map[string]map[int64]domain.Lead),
		lastSeen: make(map[string]time.Time),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// touchLocked отмечает обращение к доске и вытесняет простаивающие. Вызывается под mu.
func (b *LeadBoard) touchLocked(sessionID string) {
	now := b.now()
	b.lastSeen[sessionID] = now
	if b.idleTTL <= 0 || now.Sub(b.lastSweep) < sweepInterval {
		return
	}
	b.lastSweep = now
	for id, seen := range b.lastSeen {
		if now.Sub(seen) > b.idleTTL {
			delete(b.boards, id)
			delete(b.lastSeen, id)
		}
	}
}

// Replace заменяет список лидов сессии и возвращает лиды, у которых изменился статус.
func (b *LeadBoard) Replace(sessionID string, leads []domain.Lead) []domain.Lead {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.touchLocked(sessionID)
	previous := b.boards[sessionID]
	next := make(map[int64]domain.Lead, len(leads))
	var changed []domain.Lead
	for _, lead := range leads {
		next[lead.ID] = lead
		if old, ok := previous[lead.ID]; ok && old.Status != lead.Status {
			changed = append(changed, lead)
		}
	}
	b.boards[sessionID] = next
	return changed
}

func (b *LeadBoard) Get(sessionID string, leadID int64) (domain.Lead, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	lead, ok := b.boards[sessionID][leadID]
	return lead, ok
}

// Has сообщает, загружался ли список лидов для сессии.
func (b *LeadBoard) Has(sessionID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, ok := b.boards[sessionID]
	return ok
}

func (b *LeadBoard) Put(sessionID string, lead domain.Lead) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.touchLocked(sessionID)
	board, ok := b.boards[sessionID]
	if !ok {
		board = make(map[int64]domain.Lead)
		b.boards[sessionID] = board
	}
	board[lead.ID] = lead
}

// List - лиды сессии, новые сверху.
func (b *LeadBoard) List(sessionID string) []domain.Lead {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]domain.Lead, 0, len(b.boards[sessionID]))
	for _, lead := range b.boards[sessionID] {
		out = append(out, lead)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Transition атомарно применяет переход и возвращает снимок до изменения.
func (b *LeadBoard) Transition(sessionID string, leadID int64, proposed domain.LeadStatus) (before, after domain.Lead, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	lead, ok := b.boards[sessionID][leadID]
	if !ok {
		return domain.Lead{}, domain.Lead{}, domain.ErrLeadNotFound
	}
	before = lead
	if err := lead.ApplyTransition(proposed); err != nil {
		return before, before, err
	}
	b.boards[sessionID][leadID] = lead
	return before, lead, nil
}

// RevertIf возвращает снимок, только если статус не менялся после оптимистичного
// применения expected. Более поздний переход не затирается.
func (b *LeadBoard) RevertIf(sessionID string, snapshot domain.Lead, expected domain.LeadStatus) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	current, ok := b.boards[sessionID][snapshot.ID]
	if !ok || current.Status != expected {
		return false
	}
	b.boards[sessionID][snapshot.ID] = snapshot
	return true
}

// Forget удаляет доску закрытой или истекшей сессии.
func (b *LeadBoard) Forget(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.boards, sessionID)
	delete(b.lastSeen, sessionID)
}

// Len - количество досок в памяти.
func (b *LeadBoard) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.boards)
}
