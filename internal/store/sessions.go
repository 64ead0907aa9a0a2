package store

import (
	"context"
	"fmt"

	"github.com/Mriskiali/motion-fits/internal/models"
)

// Sessions returns a copy of the persisted session history.
func (s *Store) Sessions() []models.WorkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.WorkoutSession{}, s.sessions...)
}

// AppendSession appends a finished session to the history. The write is
// durable before the in-memory list is updated: on storage failure the
// history is unchanged and the error is returned to the caller.
func (s *Store) AppendSession(ctx context.Context, sess models.WorkoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := append(append([]models.WorkoutSession{}, s.sessions...), sess)
	if err := s.persist(ctx, keySessions, updated); err != nil {
		return fmt.Errorf("saving session %s: %w", sess.ID, err)
	}
	s.sessions = updated
	s.log.Info("workout session saved", "session", sess.ID, "completion", sess.CompletionPercent)
	return nil
}

// ClearSessions deletes the whole session history.
func (s *Store) ClearSessions(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Remove(ctx, keySessions); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	s.sessions = nil
	return nil
}
