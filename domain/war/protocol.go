package war

import (
	"errors"
	"fmt"
)

// Command is the opcode carried in the first byte of every frame.
type Command uint8

const (
	WantGame Command = iota
	GameStart
	PlayCard
	PlayResult
)

func (c Command) String() string {
	switch c {
	case WantGame:
		return "WANTGAME"
	case GameStart:
		return "GAMESTART"
	case PlayCard:
		return "PLAYCARD"
	case PlayResult:
		return "PLAYRESULT"
	default:
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
}

// Valid reports whether c is a known opcode.
func (c Command) Valid() bool {
	return c <= PlayResult
}

// Outcome is the result of a round relative to the player receiving it.
type Outcome uint8

const (
	Win Outcome = iota
	Draw
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "WIN"
	case Draw:
		return "DRAW"
	case Lose:
		return "LOSE"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Valid reports whether o is a known outcome.
func (o Outcome) Valid() bool {
	return o <= Lose
}

// Score is the contribution of o to a running score: +1, 0 or -1.
func (o Outcome) Score() int {
	switch o {
	case Win:
		return 1
	case Lose:
		return -1
	default:
		return 0
	}
}

// Outcomes returns the outcome for the player of a and for the player of b.
func Outcomes(a, b Card) (Outcome, Outcome) {
	switch Compare(a, b) {
	case 1:
		return Win, Lose
	case -1:
		return Lose, Win
	default:
		return Draw, Draw
	}
}

// Frame sizes in bytes.
const (
	WantGameSize   = 2
	GameStartSize  = 1 + HandSize
	PlayCardSize   = 2
	PlayResultSize = 2
)

var (
	ErrFrameSize = errors.New("unexpected frame size")
	ErrOpcode    = errors.New("unexpected opcode")
	ErrCard      = errors.New("card out of range")
	ErrOutcome   = errors.New("unknown outcome")
)

// WantGameFrame returns the opening frame a client sends to request a game.
func WantGameFrame() []byte {
	return []byte{byte(WantGame), 0}
}

// GameStartFrame returns the frame dealing h to its player.
func GameStartFrame(h Hand) []byte {
	return append([]byte{byte(GameStart)}, h.Bytes()...)
}

// PlayCardFrame returns the frame playing c.
func PlayCardFrame(c Card) []byte {
	return []byte{byte(PlayCard), byte(c)}
}

// PlayResultFrame returns the frame announcing o.
func PlayResultFrame(o Outcome) []byte {
	return []byte{byte(PlayResult), byte(o)}
}

// ParseWantGame checks an opening frame. The second byte is not inspected.
func ParseWantGame(b []byte) error {
	if len(b) != WantGameSize {
		return fmt.Errorf("%w: %d bytes, want %d", ErrFrameSize, len(b), WantGameSize)
	}
	if Command(b[0]) != WantGame {
		return fmt.Errorf("%w: %s, want %s", ErrOpcode, Command(b[0]), WantGame)
	}
	return nil
}

// ParseGameStart decodes a GAMESTART frame into the dealt hand.
func ParseGameStart(b []byte) (Hand, error) {
	var h Hand
	if len(b) != GameStartSize {
		return h, fmt.Errorf("%w: %d bytes, want %d", ErrFrameSize, len(b), GameStartSize)
	}
	if Command(b[0]) != GameStart {
		return h, fmt.Errorf("%w: %s, want %s", ErrOpcode, Command(b[0]), GameStart)
	}
	for i, v := range b[1:] {
		c := Card(v)
		if !c.Valid() {
			return h, fmt.Errorf("%w: %d", ErrCard, v)
		}
		h[i] = c
	}
	return h, nil
}

// ParsePlayCard decodes a PLAYCARD frame. Membership in a hand is not checked.
func ParsePlayCard(b []byte) (Card, error) {
	if len(b) != PlayCardSize {
		return 0, fmt.Errorf("%w: %d bytes, want %d", ErrFrameSize, len(b), PlayCardSize)
	}
	if Command(b[0]) != PlayCard {
		return 0, fmt.Errorf("%w: %s, want %s", ErrOpcode, Command(b[0]), PlayCard)
	}
	return Card(b[1]), nil
}

// ParsePlayResult decodes a PLAYRESULT frame.
func ParsePlayResult(b []byte) (Outcome, error) {
	if len(b) != PlayResultSize {
		return 0, fmt.Errorf("%w: %d bytes, want %d", ErrFrameSize, len(b), PlayResultSize)
	}
	if Command(b[0]) != PlayResult {
		return 0, fmt.Errorf("%w: %s, want %s", ErrOpcode, Command(b[0]), PlayResult)
	}
	o := Outcome(b[1])
	if !o.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrOutcome, b[1])
	}
	return o, nil
}
