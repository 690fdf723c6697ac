package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/luca-patrignani/war/domain/deck"
	"github.com/luca-patrignani/war/domain/war"
	"github.com/luca-patrignani/war/game"
	"github.com/luca-patrignani/war/network"
)

const acceptRetryDelay = 10 * time.Millisecond

// Server accepts War clients, pairs them and runs their games.
type Server struct {
	addr             string
	dealer           game.Dealer
	matchmaker       *Matchmaker
	supervisor       *Supervisor
	games            *semaphore.Weighted
	roundTimeout     time.Duration
	handshakeTimeout time.Duration
	logger           *slog.Logger
}

type option func(*Server)

// WithDealer sets the dealer shared by all games.
func WithDealer(d game.Dealer) option {
	return func(s *Server) {
		s.dealer = d
	}
}

// WithRoundTimeout bounds every round of every game. Zero disables the bound.
func WithRoundTimeout(d time.Duration) option {
	return func(s *Server) {
		s.roundTimeout = d
	}
}

// WithHandshakeTimeout bounds the wait for the opening frame of a new
// connection. Zero disables the bound.
func WithHandshakeTimeout(d time.Duration) option {
	return func(s *Server) {
		s.handshakeTimeout = d
	}
}

// WithMaxGames caps the number of games played at the same time. Pairs formed
// beyond the cap wait for a free slot. Zero means no cap.
func WithMaxGames(n int64) option {
	return func(s *Server) {
		if n > 0 {
			s.games = semaphore.NewWeighted(n)
		}
	}
}

func WithLogger(l *slog.Logger) option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer returns a Server that will listen on addr (host:port).
func NewServer(addr string, opts ...option) *Server {
	s := &Server{
		addr:       addr,
		matchmaker: NewMatchmaker(),
		supervisor: NewSupervisor(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dealer == nil {
		s.dealer = deck.NewDealer()
	}
	return s
}

// Supervisor returns the registry of the server's games.
func (s *Server) Supervisor() *Supervisor {
	return s.supervisor
}

// Matchmaker returns the server's waiting queue.
func (s *Server) Matchmaker() *Matchmaker {
	return s.matchmaker
}

// ListenAndServe listens on the server address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := network.Listen(ctx, s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}

// Serve accepts connections on l until ctx is cancelled. On return the
// listener and the waiting connections are closed and every game started by
// Serve has ended.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(ctx, func() {
		_ = l.Close()
	})
	defer stop()

	var wg sync.WaitGroup
	defer func() {
		_ = s.matchmaker.Close()
		cancel()
		wg.Wait()
	}()

	s.logger.Info("war server started", "address", l.Addr().String())
	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.logger.Info("war server stopped", "address", l.Addr().String())
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return fmt.Errorf("accept: %w", err)
			}
			s.logger.Error("accept failed", "error", err)
			time.Sleep(acceptRetryDelay)
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handle(ctx, conn)
		}()
	}
}

// handle reads the opening frame of conn, offers it to the matchmaker and,
// if a pair is formed, plays the game.
func (s *Server) handle(ctx context.Context, conn net.Conn) {
	logger := s.logger.With("remote", conn.RemoteAddr().String())
	logger.Info("new connection")

	if s.handshakeTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(s.handshakeTimeout))
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	frame, err := network.ReadExactly(conn, war.WantGameSize)
	if !stop() {
		return
	}
	if err == nil {
		err = war.ParseWantGame(frame)
	}
	if err != nil {
		logger.Error("invalid opening frame", "error", err)
		_ = conn.Close()
		return
	}
	if s.handshakeTimeout > 0 {
		_ = conn.SetReadDeadline(time.Time{})
	}

	pair, ok := s.matchmaker.Offer(conn)
	if !ok {
		logger.Info("waiting for opponent")
		return
	}
	s.play(ctx, pair)
}

func (s *Server) play(ctx context.Context, pair game.Pair) {
	s.supervisor.Start(pair)
	logger := s.logger.With("game", pair.ID.String())
	logger.Info("game started", "p1", remote(pair.P1), "p2", remote(pair.P2))

	var res game.Result
	if err := s.acquire(ctx); err != nil {
		_ = pair.P1.Close()
		_ = pair.P2.Close()
		res = game.Result{ID: pair.ID, State: game.Killed, Err: err}
	} else {
		res = game.NewSession(pair, s.dealer,
			game.WithRoundTimeout(s.roundTimeout),
			game.WithLogger(s.logger),
		).Run(ctx)
		s.release()
	}

	info, stats := s.supervisor.Finish(res)
	logger.Info("game finished",
		"state", res.State.String(),
		"rounds", res.Rounds,
		"duration", time.Since(info.Started).Round(time.Millisecond).String(),
		"active", stats.Active,
		"completed", stats.Completed,
		"killed", stats.Killed,
	)
}

func (s *Server) acquire(ctx context.Context) error {
	if s.games == nil {
		return nil
	}
	return s.games.Acquire(ctx, 1)
}

func (s *Server) release() {
	if s.games != nil {
		s.games.Release(1)
	}
}
