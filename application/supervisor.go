package application

import (
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luca-patrignani/war/game"
)

// GameInfo describes a game in flight.
type GameInfo struct {
	ID      uuid.UUID
	P1      string
	P2      string
	Started time.Time
}

// Stats counts games by lifecycle state.
type Stats struct {
	Active    int
	Completed int
	Killed    int
}

// Supervisor is the registry of the games dispatched by a Server.
type Supervisor struct {
	mu        sync.Mutex
	active    map[uuid.UUID]GameInfo
	completed int
	killed    int
}

func NewSupervisor() *Supervisor {
	return &Supervisor{
		active: make(map[uuid.UUID]GameInfo),
	}
}

// Start registers pair as active.
func (s *Supervisor) Start(pair game.Pair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[pair.ID] = GameInfo{
		ID:      pair.ID,
		P1:      remote(pair.P1),
		P2:      remote(pair.P2),
		Started: time.Now(),
	}
}

// Finish records the end of a game and returns its info and the updated
// counters. Results for unknown games are ignored.
func (s *Supervisor) Finish(res game.Result) (GameInfo, Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	info, ok := s.active[res.ID]
	if ok {
		delete(s.active, res.ID)
		switch res.State {
		case game.Completed:
			s.completed++
		default:
			s.killed++
		}
	}
	return info, s.statsLocked()
}

// Active returns the games in flight.
func (s *Supervisor) Active() []GameInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	games := make([]GameInfo, 0, len(s.active))
	for _, info := range s.active {
		games = append(games, info)
	}
	return games
}

func (s *Supervisor) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statsLocked()
}

func (s *Supervisor) statsLocked() Stats {
	return Stats{
		Active:    len(s.active),
		Completed: s.completed,
		Killed:    s.killed,
	}
}

func remote(c net.Conn) string {
	if c == nil || c.RemoteAddr() == nil {
		return ""
	}
	return c.RemoteAddr().String()
}
