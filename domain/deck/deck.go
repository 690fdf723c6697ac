// Package deck deals War hands.
package deck

import (
	"math/rand/v2"
	"sync"

	"github.com/luca-patrignani/war/domain/war"
	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Dealer shuffles the 52-card deck and splits it into two hands.
// A Dealer is safe for concurrent use.
type Dealer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

type option func(*Dealer)

// WithSource makes the dealer draw its permutations from src.
func WithSource(src rand.Source) option {
	return func(d *Dealer) {
		d.rng = rand.New(src)
	}
}

// NewDealer returns a Dealer. Without options it draws from the random
// stream of the Ed25519 suite.
func NewDealer(opts ...option) *Dealer {
	d := &Dealer{}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(NewStreamSource(suite.RandomStream()))
	}
	return d
}

// Deal returns the hands of player 1 and player 2. The hands are disjoint
// and together hold every card of the deck.
func (d *Dealer) Deal() (war.Hand, war.Hand) {
	var cards [war.DeckSize]war.Card
	for i := range cards {
		cards[i] = war.Card(i)
	}
	d.mu.Lock()
	d.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	d.mu.Unlock()

	var p1, p2 war.Hand
	copy(p1[:], cards[:war.HandSize])
	copy(p2[:], cards[war.HandSize:])
	return p1, p2
}
