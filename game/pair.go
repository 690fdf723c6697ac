package game

import (
	"net"

	"github.com/google/uuid"
)

// Pair is two connections matched for one game. P1 is the connection that
// waited longer.
type Pair struct {
	ID uuid.UUID
	P1 net.Conn
	P2 net.Conn
}

// NewPair returns a Pair with a fresh game id.
func NewPair(p1, p2 net.Conn) Pair {
	return Pair{
		ID: uuid.New(),
		P1: p1,
		P2: p2,
	}
}

func (p Pair) conns() [2]net.Conn {
	return [2]net.Conn{p.P1, p.P2}
}
