package session

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNoSession is returned when a token does not resolve to a player.
var ErrNoSession = errors.New("no resolvable session")

// Resolver turns a bearer token into the acting player's id. Session issuance
// itself lives in the auth service; this engine only ever reads.
type Resolver interface {
	Resolve(token string) (string, error)
}

type store struct {
	db *sql.DB
}

// New creates a Resolver backed by the sessions table.
func New(db *sql.DB) Resolver {
	return &store{db: db}
}

func (s *store) Resolve(token string) (string, error) {
	if token == "" {
		return "", ErrNoSession
	}
	var playerID string
	err := s.db.QueryRow("SELECT player_id FROM sessions WHERE token = ?", token).Scan(&playerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}
	return playerID, nil
}

// MockResolver is a mock implementation of the Resolver interface for testing.
type MockResolver struct {
	// Players maps token to player id.
	Players map[string]string
}

// NewMock creates a new mock instance.
func NewMock() *MockResolver {
	return &MockResolver{Players: map[string]string{}}
}

func (m *MockResolver) Resolve(token string) (string, error) {
	if playerID, ok := m.Players[token]; ok {
		return playerID, nil
	}
	return "", ErrNoSession
}
