package application

import (
	"errors"
	"net"
	"sync"

	"github.com/luca-patrignani/war/game"
)

// Matchmaker pairs connections in arrival order.
type Matchmaker struct {
	mu      sync.Mutex
	waiting []net.Conn
	closed  bool
}

func NewMatchmaker() *Matchmaker {
	return &Matchmaker{}
}

// Offer queues conn if nobody is waiting and reports false. Otherwise it
// removes the longest-waiting connection and returns it paired with conn as
// player 1. After Close, Offer closes conn and reports false.
func (m *Matchmaker) Offer(conn net.Conn) (game.Pair, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		_ = conn.Close()
		return game.Pair{}, false
	}
	if len(m.waiting) == 0 {
		m.waiting = append(m.waiting, conn)
		return game.Pair{}, false
	}
	opponent := m.waiting[0]
	m.waiting[0] = nil
	m.waiting = m.waiting[1:]
	return game.NewPair(opponent, conn), true
}

// Len returns the number of waiting connections.
func (m *Matchmaker) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.waiting)
}

// Close closes every waiting connection and rejects later offers.
func (m *Matchmaker) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	var errs []error
	for _, conn := range m.waiting {
		errs = append(errs, conn.Close())
	}
	m.waiting = nil
	return errors.Join(errs...)
}
