package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// SessionID identifies one playback session.
type SessionID string

// NewSessionID returns a random session identifier.
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// ShortID returns the first eight characters, enough for log lines.
func (id SessionID) ShortID() string {
	s := string(id)
	if len(s) < 8 {
		return s
	}
	return s[:8]
}

// Session captures metadata about a playback session.
type Session struct {
	ID        SessionID
	Backend   string
	StartedAt time.Time
	EndedAt   *time.Time
}

func (s *Session) IsActive() bool {
	return s != nil && s.EndedAt == nil
}

func (s *Session) End(endedAt time.Time) {
	endedAt = endedAt.UTC()
	s.EndedAt = &endedAt
}

func (s *Session) Validate() error {
	if s == nil {
		return ErrInvalidSession
	}
	if s.ID == "" {
		return ErrInvalidSession
	}
	if _, err := uuid.Parse(string(s.ID)); err != nil {
		return ErrInvalidSession
	}
	if s.StartedAt.IsZero() {
		return ErrInvalidSession
	}
	return nil
}

var ErrInvalidSession = errors.New("invalid session")
