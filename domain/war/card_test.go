package war

import "testing"

func TestRankIgnoresSuit(t *testing.T) {
	if Card(5).Rank() != 5 || Card(31).Rank() != 5 {
		t.Fatalf("expected rank 5 for cards 5 and 31, got %d and %d", Card(5).Rank(), Card(31).Rank())
	}
	if Card(5).Suit() == Card(31).Suit() {
		t.Fatal("cards 5 and 31 must be in different suits")
	}
	if Card(51).Rank() != 12 || Card(51).Suit() != 3 {
		t.Fatalf("expected card 51 to be rank 12 suit 3, got %d %d", Card(51).Rank(), Card(51).Suit())
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b Card
		want int
	}{
		{5, 31, 0},
		{12, 0, 1},
		{0, 12, -1},
		{13, 0, 0},
		{25, 38, 0},
		{14, 51, -1},
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Errorf("Compare(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCompareIsAntisymmetric(t *testing.T) {
	for a := Card(0); a < DeckSize; a++ {
		for b := Card(0); b < DeckSize; b++ {
			if Compare(a, b) != -Compare(b, a) {
				t.Fatalf("Compare(%d, %d) and Compare(%d, %d) are not opposite", a, b, b, a)
			}
		}
	}
}

func TestCardString(t *testing.T) {
	seen := make(map[string]Card)
	for c := Card(0); c < DeckSize; c++ {
		s := c.String()
		if s == "" {
			t.Fatalf("empty name for card %d", c)
		}
		if other, ok := seen[s]; ok {
			t.Fatalf("cards %d and %d share the name %q", other, c, s)
		}
		seen[s] = c
	}
	if Card(60).String() != "card(60)" {
		t.Fatalf("expected card(60), got %s", Card(60).String())
	}
}

func TestCardSet(t *testing.T) {
	var s CardSet
	if !s.Add(7) {
		t.Fatal("expected first add to succeed")
	}
	if s.Add(7) {
		t.Fatal("expected duplicate add to fail")
	}
	if s.Add(52) {
		t.Fatal("expected invalid card to be rejected")
	}
	if !s.Has(7) || s.Has(8) || s.Has(52) {
		t.Fatalf("unexpected membership in %b", s)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 card, got %d", s.Len())
	}
}

func TestFullDeck(t *testing.T) {
	if FullDeck.Len() != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, FullDeck.Len())
	}
	for c := Card(0); c < DeckSize; c++ {
		if !FullDeck.Has(c) {
			t.Fatalf("card %d missing from full deck", c)
		}
	}
}

func TestHandMembership(t *testing.T) {
	var h Hand
	for i := range h {
		h[i] = Card(2 * i)
	}
	if !h.Contains(50) || h.Contains(7) {
		t.Fatal("unexpected hand membership")
	}
	set := h.Set()
	if set.Len() != HandSize {
		t.Fatalf("expected %d cards in set, got %d", HandSize, set.Len())
	}
	if set.Has(7) {
		t.Fatal("card 7 was never dealt")
	}
}
