package holdem

import (
	"math/rand"
	"testing"

	"texas-lite/card"
)

func cards(t *testing.T, codes ...string) []card.Card {
	t.Helper()
	out := make([]card.Card, 0, len(codes))
	for _, code := range codes {
		out = append(out, card.MustParse(code))
	}
	return out
}

func kickersEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEvaluateRoyalFlush(t *testing.T) {
	r := Evaluate(cards(t, "As", "Ks"), cards(t, "Qs", "Js", "Ts", "2h", "3d"))
	if r.Category != HandRoyalFlush {
		t.Fatalf("expected royal flush, got %s", r.Name())
	}
	if !kickersEqual(r.Kickers, []int{14, 13, 12, 11, 10}) {
		t.Fatalf("royal flush kickers wrong: %v", r.Kickers)
	}
}

func TestEvaluateWheelStraightFlush(t *testing.T) {
	r := Evaluate(cards(t, "As", "2s"), cards(t, "3s", "4s", "5s", "Kh", "Qd"))
	if r.Category != HandStraightFlush {
		t.Fatalf("expected straight flush, got %s", r.Name())
	}
	if !kickersEqual(r.Kickers, []int{5, 4, 3, 2, 1}) {
		t.Fatalf("wheel kickers should be [5 4 3 2 1], got %v", r.Kickers)
	}
}

func TestRoyalOutkicksStraightFlushAtSameRank(t *testing.T) {
	royal := Evaluate(cards(t, "As", "Ks"), cards(t, "Qs", "Js", "Ts"))
	kingHigh := Evaluate(cards(t, "Ks", "Qs"), cards(t, "Js", "Ts", "9s"))
	if royal.CategoryRank() != kingHigh.CategoryRank() {
		t.Fatalf("royal flush must share the straight flush rank: %d vs %d",
			royal.CategoryRank(), kingHigh.CategoryRank())
	}
	if royal.Compare(kingHigh) != 1 {
		t.Fatalf("royal flush should beat a king-high straight flush on kickers")
	}
}

func TestWheelLosesToSixHighStraight(t *testing.T) {
	wheel := Evaluate(cards(t, "Ah", "2s"), cards(t, "3d", "4c", "5h", "Kd", "Qs"))
	six := Evaluate(cards(t, "6h", "2s"), cards(t, "3d", "4c", "5h", "Kd", "Qs"))
	if wheel.Category != HandStraight || six.Category != HandStraight {
		t.Fatalf("expected straights, got %s and %s", wheel.Name(), six.Name())
	}
	if six.Compare(wheel) != 1 {
		t.Fatalf("six-high straight should beat the wheel")
	}
}

func TestFullHouseBeatsFlush(t *testing.T) {
	full := Evaluate(cards(t, "Ah", "Ad"), cards(t, "As", "Kc", "Kd", "2h", "3s"))
	flush := Evaluate(cards(t, "Qh", "Jh"), cards(t, "9h", "5h", "2h", "Ks", "Kd"))
	if full.Category != HandFullHouse {
		t.Fatalf("expected full house, got %s", full.Name())
	}
	if flush.Category != HandFlush {
		t.Fatalf("expected flush, got %s", flush.Name())
	}
	if full.Compare(flush) != 1 {
		t.Fatalf("full house should beat flush")
	}
	if !kickersEqual(full.Kickers, []int{14, 13}) {
		t.Fatalf("full house kickers should be [trip pair], got %v", full.Kickers)
	}
}

func TestSuitNeverBreaksTies(t *testing.T) {
	community := cards(t, "Ah", "Kh", "Qc", "Jd", "9s")
	p1 := Evaluate(cards(t, "2c", "3c"), community)
	p2 := Evaluate(cards(t, "2d", "3d"), community)
	if p1.Compare(p2) != 0 {
		t.Fatalf("identical ranks in different suits must tie")
	}
}

func TestKickerListsPerCategory(t *testing.T) {
	quads := Evaluate(cards(t, "9h", "9d"), cards(t, "9s", "9c", "Ad", "2h", "3s"))
	if quads.Category != HandFourOfAKind || !kickersEqual(quads.Kickers, []int{9, 14}) {
		t.Fatalf("quads kickers wrong: %s %v", quads.Name(), quads.Kickers)
	}

	twoPair := Evaluate(cards(t, "Kh", "Kd"), cards(t, "7s", "7c", "Ad", "2h", "3s"))
	if twoPair.Category != HandTwoPair || !kickersEqual(twoPair.Kickers, []int{13, 7, 14}) {
		t.Fatalf("two pair kickers wrong: %s %v", twoPair.Name(), twoPair.Kickers)
	}

	pair := Evaluate(cards(t, "8h", "8d"), cards(t, "Ks", "Qc", "4d", "2h", "3s"))
	if pair.Category != HandOnePair || !kickersEqual(pair.Kickers, []int{8, 13, 12, 4}) {
		t.Fatalf("one pair kickers wrong: %s %v", pair.Name(), pair.Kickers)
	}

	trips := Evaluate(cards(t, "5h", "5d"), cards(t, "5s", "Ac", "Kd", "2h", "9s"))
	if trips.Category != HandThreeOfAKind || !kickersEqual(trips.Kickers, []int{5, 14, 13}) {
		t.Fatalf("trips kickers wrong: %s %v", trips.Name(), trips.Kickers)
	}
}

func TestEvaluateFewerThanFiveCards(t *testing.T) {
	r := Evaluate(cards(t, "Ah", "7d"), nil)
	if r.Category != HandHighCard {
		t.Fatalf("short evaluation should degrade to high card, got %s", r.Name())
	}
	if !kickersEqual(r.Kickers, []int{14, 7}) {
		t.Fatalf("short evaluation kickers wrong: %v", r.Kickers)
	}
	if len(r.BestFive) != 2 {
		t.Fatalf("short evaluation should keep the cards present, got %d", len(r.BestFive))
	}
}

func TestEvaluateMatchesExhaustiveSubsetScan(t *testing.T) {
	// Random seven-card deals, cross-checked against a separate
	// enumeration that drops two cards at a time.
	rng := rand.New(rand.NewSource(7))
	deck := card.FullDeck()

	for trial := 0; trial < 200; trial++ {
		rng.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
		seven := deck[:7]
		got := Evaluate(seven[:2], seven[2:])

		var best HandResult
		for i := 0; i < 7; i++ {
			for j := i + 1; j < 7; j++ {
				five := make([]card.Card, 0, 5)
				for k, c := range seven {
					if k != i && k != j {
						five = append(five, c)
					}
				}
				category, kickers := eval5(five)
				cand := HandResult{Category: category, BestFive: five, Kickers: kickers}
				if best.Category == 0 || cand.Compare(best) > 0 {
					best = cand
				}
			}
		}

		if got.Compare(best) != 0 || got.CategoryRank() != best.CategoryRank() {
			t.Fatalf("trial %d: Evaluate gave %s %v, subset scan found %s %v for %v",
				trial, got.Name(), got.Kickers, best.Name(), best.Kickers, card.CardList(seven).Strings())
		}

		// The reported best five must come from the deal and
		// re-evaluate to the same result.
		dealt := make(map[card.Card]bool, 7)
		for _, c := range seven {
			dealt[c] = true
		}
		for _, c := range got.BestFive {
			if !dealt[c] {
				t.Fatalf("trial %d: best five holds %s, not in the deal", trial, c.String())
			}
		}
		category, kickers := eval5(got.BestFive)
		re := HandResult{Category: category, Kickers: kickers}
		if re.Compare(got) != 0 || re.Category != got.Category {
			t.Fatalf("trial %d: best five re-evaluates to %s %v, reported %s %v",
				trial, re.Name(), re.Kickers, got.Name(), got.Kickers)
		}
	}
}

func TestEvaluatePicksBestFiveOfSeven(t *testing.T) {
	// Board pairs are a trap: the straight outranks two pair.
	r := Evaluate(cards(t, "6h", "7d"), cards(t, "8s", "9c", "Td", "6d", "9h"))
	if r.Category != HandStraight {
		t.Fatalf("expected straight from seven cards, got %s", r.Name())
	}
	if !kickersEqual(r.Kickers, []int{10, 9, 8, 7, 6}) {
		t.Fatalf("straight kickers wrong: %v", r.Kickers)
	}
	if len(r.BestFive) != 5 {
		t.Fatalf("best five should hold five cards, got %d", len(r.BestFive))
	}
}
