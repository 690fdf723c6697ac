package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/luca-patrignani/war/domain/war"
	"github.com/luca-patrignani/war/network"
)

// DefaultLimit is the default number of games RunMany keeps in flight.
const DefaultLimit = 1000

// ErrIncomplete is returned when the server closes the stream mid-game.
var ErrIncomplete = errors.New("server closed the game early")

// Verdict summarises a finished game from the client's point of view.
type Verdict string

const (
	Won  Verdict = "won"
	Lost Verdict = "lost"
	Drew Verdict = "drew"
)

// Result is the outcome of one game.
type Result struct {
	Hand     war.Hand
	Outcomes []war.Outcome
	Score    int
}

// Verdict returns won, lost or drew according to the score.
func (r Result) Verdict() Verdict {
	switch {
	case r.Score > 0:
		return Won
	case r.Score < 0:
		return Lost
	default:
		return Drew
	}
}

// Summary aggregates the games of a RunMany call.
type Summary struct {
	Completed int
	Failed    int
	Won       int
	Lost      int
	Drew      int
	Elapsed   time.Duration
}

// Client plays War games against a server.
type Client struct {
	addr   string
	dialer net.Dialer
	logger *slog.Logger
}

type option func(*Client)

// WithDialTimeout bounds the time spent connecting to the server.
func WithDialTimeout(d time.Duration) option {
	return func(c *Client) {
		c.dialer.Timeout = d
	}
}

func WithLogger(l *slog.Logger) option {
	return func(c *Client) {
		c.logger = l
	}
}

// New returns a Client for the server at addr (host:port).
func New(addr string, opts ...option) *Client {
	c := &Client{
		addr:   addr,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Play runs one complete game.
func (c *Client) Play(ctx context.Context) (Result, error) {
	var res Result
	conn, err := c.dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return res, fmt.Errorf("connect to %s: %w", c.addr, err)
	}
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	if _, err := conn.Write(war.WantGameFrame()); err != nil {
		return res, fmt.Errorf("send %s: %w", war.WantGame, err)
	}
	frame, err := readFrame(conn, war.GameStartSize)
	if err != nil {
		return res, err
	}
	res.Hand, err = war.ParseGameStart(frame)
	if err != nil {
		return res, err
	}
	for _, card := range res.Hand {
		if _, err := conn.Write(war.PlayCardFrame(card)); err != nil {
			return res, fmt.Errorf("send %s %s: %w", war.PlayCard, card, err)
		}
		frame, err := readFrame(conn, war.PlayResultSize)
		if err != nil {
			return res, err
		}
		o, err := war.ParsePlayResult(frame)
		if err != nil {
			return res, err
		}
		res.Outcomes = append(res.Outcomes, o)
		res.Score += o.Score()
	}
	return res, nil
}

func readFrame(conn net.Conn, n int) ([]byte, error) {
	frame, err := network.ReadExactly(conn, n)
	if errors.Is(err, network.ErrShortRead) {
		return nil, fmt.Errorf("%w: got %d of %d bytes", ErrIncomplete, len(frame), n)
	}
	return frame, err
}

// RunMany plays count games concurrently, keeping at most limit in flight.
// A limit below 1 means DefaultLimit.
func (c *Client) RunMany(ctx context.Context, count, limit int) Summary {
	if limit < 1 {
		limit = DefaultLimit
	}
	start := time.Now()
	var (
		mu      sync.Mutex
		summary Summary
		g       errgroup.Group
	)
	g.SetLimit(limit)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			res, err := c.Play(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failed++
				c.logger.Error("game failed", "error", err)
				return nil
			}
			summary.Completed++
			switch res.Verdict() {
			case Won:
				summary.Won++
			case Lost:
				summary.Lost++
			default:
				summary.Drew++
			}
			c.logger.Debug("game complete", "verdict", string(res.Verdict()), "score", res.Score)
			return nil
		})
	}
	_ = g.Wait()
	summary.Elapsed = time.Since(start)
	c.logger.Info("clients finished", "completed", summary.Completed, "failed", summary.Failed)
	return summary
}
