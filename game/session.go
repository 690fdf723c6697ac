package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luca-patrignani/war/domain/war"
	"github.com/luca-patrignani/war/network"
)

// State is the lifecycle state of a Session.
type State uint8

const (
	Dealt State = iota
	Playing
	Completed
	Killed
)

func (s State) String() string {
	switch s {
	case Dealt:
		return "dealt"
	case Playing:
		return "playing"
	case Completed:
		return "completed"
	case Killed:
		return "killed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Dealer produces the hands of player 1 and player 2.
type Dealer interface {
	Deal() (war.Hand, war.Hand)
}

// Result describes how a Session ended.
type Result struct {
	ID    uuid.UUID
	State State
	// Rounds is the number of rounds that produced PLAYRESULT frames.
	Rounds int
	// Wins counts the rounds won by player 1 and player 2.
	Wins [2]int
	// Err is the failure that killed the game, nil when State is Completed.
	Err error
}

type player struct {
	conn   net.Conn
	hand   war.CardSet
	played war.CardSet
}

// Session plays one game of War over a Pair.
type Session struct {
	id           uuid.UUID
	dealer       Dealer
	players      [2]player
	roundTimeout time.Duration
	logger       *slog.Logger

	state     State
	round     int
	wins      [2]int
	closeOnce sync.Once
}

type option func(*Session)

// WithRoundTimeout bounds the I/O of every round, and of the deal, by d.
// Expiry kills the game. Zero disables the bound.
func WithRoundTimeout(d time.Duration) option {
	return func(s *Session) {
		s.roundTimeout = d
	}
}

// WithLogger sets the logger used by the session.
func WithLogger(l *slog.Logger) option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession prepares a session for pair. Nothing is sent until Run.
func NewSession(pair Pair, dealer Dealer, opts ...option) *Session {
	s := &Session{
		id:     pair.ID,
		dealer: dealer,
		logger: slog.Default(),
	}
	for i, conn := range pair.conns() {
		s.players[i].conn = conn
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("game", s.id.String())
	return s
}

// Run deals, plays the 26 rounds and closes both connections. Cancelling ctx
// kills the game.
func (s *Session) Run(ctx context.Context) Result {
	stop := context.AfterFunc(ctx, s.close)
	defer stop()

	err := s.play()
	if err != nil {
		if cause := context.Cause(ctx); cause != nil {
			err = errors.Join(cause, err)
		}
		s.kill(err)
	} else {
		s.state = Completed
		s.close()
		s.logger.Info("game completed", "p1_wins", s.wins[0], "p2_wins", s.wins[1])
	}
	return Result{
		ID:     s.id,
		State:  s.state,
		Rounds: s.round,
		Wins:   s.wins,
		Err:    err,
	}
}

func (s *Session) play() error {
	s.state = Dealt
	h1, h2 := s.dealer.Deal()
	s.players[0].hand = h1.Set()
	s.players[1].hand = h2.Set()
	s.logger.Debug("hands dealt")

	if err := s.setDeadline(); err != nil {
		return err
	}
	if err := s.send(0, war.GameStartFrame(h1)); err != nil {
		return err
	}
	if err := s.send(1, war.GameStartFrame(h2)); err != nil {
		return err
	}

	s.state = Playing
	for i := 1; i <= war.Rounds; i++ {
		if err := s.playRound(i); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) playRound(i int) error {
	if err := s.setDeadline(); err != nil {
		return err
	}
	c1, err := s.receiveCard(0)
	if err != nil {
		return err
	}
	c2, err := s.receiveCard(1)
	if err != nil {
		return err
	}

	o1, o2 := war.Outcomes(c1, c2)
	if err := s.send(0, war.PlayResultFrame(o1)); err != nil {
		return err
	}
	if err := s.send(1, war.PlayResultFrame(o2)); err != nil {
		return err
	}
	s.round = i
	switch o1 {
	case war.Win:
		s.wins[0]++
	case war.Lose:
		s.wins[1]++
	}
	s.logger.Debug("round played",
		"round", i,
		"p1_card", c1.String(),
		"p2_card", c2.String(),
		"p1_outcome", o1.String(),
	)
	return nil
}

// receiveCard reads and validates one PLAYCARD frame from player idx.
func (s *Session) receiveCard(idx int) (war.Card, error) {
	p := &s.players[idx]
	frame, err := network.ReadExactly(p.conn, war.PlayCardSize)
	if errors.Is(err, network.ErrShortRead) {
		return 0, fmt.Errorf("%w: player %d sent %d of %d bytes: %w", ErrFraming, idx+1, len(frame), war.PlayCardSize, err)
	}
	if err != nil {
		return 0, &TransportError{Player: idx + 1, Op: "read", Err: err}
	}
	if war.Command(frame[0]) != war.PlayCard {
		return 0, &ProtocolViolation{Player: idx + 1, Kind: WrongOpcode, Value: frame[0]}
	}
	card := war.Card(frame[1])
	if !p.hand.Has(card) {
		return 0, &ProtocolViolation{Player: idx + 1, Kind: ForeignCard, Value: frame[1]}
	}
	if !p.played.Add(card) {
		return 0, &ProtocolViolation{Player: idx + 1, Kind: ReplayedCard, Value: frame[1]}
	}
	return card, nil
}

func (s *Session) send(idx int, frame []byte) error {
	if _, err := s.players[idx].conn.Write(frame); err != nil {
		return &TransportError{Player: idx + 1, Op: "write", Err: err}
	}
	return nil
}

func (s *Session) setDeadline() error {
	if s.roundTimeout <= 0 {
		return nil
	}
	deadline := time.Now().Add(s.roundTimeout)
	for i := range s.players {
		if err := s.players[i].conn.SetDeadline(deadline); err != nil {
			return &TransportError{Player: i + 1, Op: "set deadline", Err: err}
		}
	}
	return nil
}

func (s *Session) kill(err error) {
	s.state = Killed
	s.close()
	s.logger.Error("killing game", "rounds_played", s.round, "error", err)
}

// close closes both connections once. Close errors are ignored.
func (s *Session) close() {
	s.closeOnce.Do(func() {
		for i := range s.players {
			_ = s.players[i].conn.Close()
		}
	})
}
