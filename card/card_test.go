package card

import "testing"

func TestParseRoundTrip(t *testing.T) {
	for _, c := range FullDeck() {
		parsed, err := Parse(c.String())
		if err != nil {
			t.Fatalf("Parse(%s) failed: %v", c.String(), err)
		}
		if parsed != c {
			t.Fatalf("round trip mismatch: %s parsed to %s", c.String(), parsed.String())
		}
	}
}

func TestParseTenAlias(t *testing.T) {
	a, err := Parse("10h")
	if err != nil {
		t.Fatalf("Parse(10h) failed: %v", err)
	}
	b, err := Parse("Th")
	if err != nil {
		t.Fatalf("Parse(Th) failed: %v", err)
	}
	if a != b || a != CardHeartT {
		t.Fatalf("expected 10h == Th == CardHeartT, got %v and %v", a, b)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, bad := range []string{"", "A", "Ax", "Zs", "11h"} {
		if _, err := Parse(bad); err == nil {
			t.Fatalf("Parse(%q) should fail", bad)
		}
	}
}

func TestFullDeckUnique(t *testing.T) {
	deck := FullDeck()
	if len(deck) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(deck))
	}
	seen := make(map[Card]bool)
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("duplicate card in deck: %s", c.String())
		}
		seen[c] = true
		if c.Rank() < 1 || c.Rank() > 13 {
			t.Fatalf("card %s has rank %d out of range", c.String(), c.Rank())
		}
	}
}

func TestRankValue(t *testing.T) {
	if v := CardSpadeA.RankValue(); v != 14 {
		t.Fatalf("ace should rank 14, got %d", v)
	}
	if v := CardClubK.RankValue(); v != 13 {
		t.Fatalf("king should rank 13, got %d", v)
	}
	if v := CardDiamond2.RankValue(); v != 2 {
		t.Fatalf("deuce should rank 2, got %d", v)
	}
}

func TestCardListPop(t *testing.T) {
	var list CardList
	list.Init(FullDeck())

	cards, ok := list.PopCards(2)
	if !ok || len(cards) != 2 {
		t.Fatalf("PopCards(2) failed")
	}
	if list.Count() != 50 {
		t.Fatalf("expected 50 remaining, got %d", list.Count())
	}

	if _, ok := list.PopCards(51); ok {
		t.Fatalf("PopCards past exhaustion should report !ok")
	}

	for list.Count() > 0 {
		if c := list.PopCard(); c == CardInvalid {
			t.Fatalf("PopCard returned invalid with %d cards left", list.Count())
		}
	}
	if c := list.PopCard(); c != CardInvalid {
		t.Fatalf("PopCard on empty list should return CardInvalid, got %s", c.String())
	}
}
