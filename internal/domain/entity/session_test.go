package entity_test

import (
	"testing"
	"time"

	"github.com/bnema/gstsink/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionID_ShortID(t *testing.T) {
	id := entity.SessionID("0b4f8a2e-6c1d-4c55-9f0e-1d2c3b4a5f60")
	assert.Equal(t, "0b4f8a2e", id.ShortID())

	assert.Equal(t, "abc", entity.SessionID("abc").ShortID())
}

func TestNewSessionID_Unique(t *testing.T) {
	a := entity.NewSessionID()
	b := entity.NewSessionID()
	assert.NotEqual(t, a, b)
}

func TestSession_Validate(t *testing.T) {
	now := time.Now()

	valid := &entity.Session{ID: entity.NewSessionID(), Backend: "nexus", StartedAt: now}
	require.NoError(t, valid.Validate())

	missingID := &entity.Session{StartedAt: now}
	require.ErrorIs(t, missingID.Validate(), entity.ErrInvalidSession)

	badID := &entity.Session{ID: "not-a-uuid", StartedAt: now}
	require.ErrorIs(t, badID.Validate(), entity.ErrInvalidSession)

	missingStarted := &entity.Session{ID: entity.NewSessionID()}
	require.ErrorIs(t, missingStarted.Validate(), entity.ErrInvalidSession)
}

func TestSession_End(t *testing.T) {
	s := &entity.Session{ID: entity.NewSessionID(), StartedAt: time.Now()}
	assert.True(t, s.IsActive())

	endedAt := time.Date(2025, 12, 22, 0, 0, 0, 0, time.FixedZone("X", 3600))
	s.End(endedAt)
	assert.False(t, s.IsActive())
	if assert.NotNil(t, s.EndedAt) {
		assert.True(t, s.EndedAt.Equal(endedAt.UTC()))
	}
}
