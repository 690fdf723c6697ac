package war

import (
	"fmt"
	"math/bits"

	"github.com/paulhankin/poker"
)

const (
	// DeckSize is the number of cards in a War deck.
	DeckSize = 52
	// HandSize is the number of cards dealt to each player.
	HandSize = DeckSize / 2
	// Rounds is the number of rounds in a complete game.
	Rounds = HandSize

	ranksPerSuit = 13
)

// Card is a playing card in [0, 51].
type Card uint8

// Valid reports whether c belongs to the deck.
func (c Card) Valid() bool {
	return c < DeckSize
}

// Rank returns the value used to compare cards (0 = deuce, 12 = ace).
func (c Card) Rank() uint8 {
	return uint8(c) % ranksPerSuit
}

// Suit returns the suit of c (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return uint8(c) / ranksPerSuit
}

// String renders c with its face name and suit symbol.
func (c Card) String() string {
	if !c.Valid() {
		return fmt.Sprintf("card(%d)", uint8(c))
	}
	// poker ranks run 1..13 with the ace low, War ranks start at the deuce
	rank := c.Rank() + 2
	if rank > 13 {
		rank = 1
	}
	pc, err := poker.MakeCard(poker.Suit(c.Suit()), poker.Rank(rank))
	if err != nil {
		return fmt.Sprintf("card(%d)", uint8(c))
	}
	return fmt.Sprint(pc)
}

// Compare returns -1 if a ranks below b, 1 if above, 0 on equal ranks.
func Compare(a, b Card) int {
	ra, rb := a.Rank(), b.Rank()
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// Hand is the ordered sequence of cards dealt to one player.
type Hand [HandSize]Card

// Set returns the cards of h as a CardSet.
func (h Hand) Set() CardSet {
	return NewCardSet(h[:]...)
}

// Contains reports whether c was dealt in h.
func (h Hand) Contains(c Card) bool {
	for _, hc := range h {
		if hc == c {
			return true
		}
	}
	return false
}

// Bytes returns the wire representation of the hand.
func (h Hand) Bytes() []byte {
	b := make([]byte, HandSize)
	for i, c := range h {
		b[i] = byte(c)
	}
	return b
}

// CardSet is a set of cards, one bit per card.
type CardSet uint64

// NewCardSet returns the set holding cards. Invalid cards are ignored.
func NewCardSet(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s.Add(c)
	}
	return s
}

// Has reports whether c is in s.
func (s CardSet) Has(c Card) bool {
	return c.Valid() && s&(1<<c) != 0
}

// Add inserts c into s. It reports false if c is invalid or already present.
func (s *CardSet) Add(c Card) bool {
	if !c.Valid() || s.Has(c) {
		return false
	}
	*s |= 1 << c
	return true
}

// Len returns the number of cards in s.
func (s CardSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// FullDeck is the set of all 52 cards.
const FullDeck CardSet = 1<<DeckSize - 1
