package game

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/war/domain/war"
)

// ErrFraming is returned when a connection ends in the middle of a frame.
var ErrFraming = errors.New("incomplete frame")

// ViolationKind classifies a ProtocolViolation.
type ViolationKind uint8

const (
	WrongOpcode ViolationKind = iota
	ForeignCard
	ReplayedCard
)

func (k ViolationKind) String() string {
	switch k {
	case WrongOpcode:
		return "wrong opcode"
	case ForeignCard:
		return "card not in hand"
	case ReplayedCard:
		return "card already played"
	default:
		return fmt.Sprintf("ViolationKind(%d)", uint8(k))
	}
}

// ProtocolViolation reports a well-formed frame that breaks the game rules.
type ProtocolViolation struct {
	Player int
	Kind   ViolationKind
	// Value is the offending opcode or card byte.
	Value byte
}

func (e *ProtocolViolation) Error() string {
	switch e.Kind {
	case WrongOpcode:
		return fmt.Sprintf("player %d: %s %s", e.Player, e.Kind, war.Command(e.Value))
	default:
		return fmt.Sprintf("player %d: %s %d", e.Player, e.Kind, e.Value)
	}
}

// TransportError wraps an I/O failure on a player's connection.
type TransportError struct {
	Player int
	Op     string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("player %d: %s: %v", e.Player, e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
