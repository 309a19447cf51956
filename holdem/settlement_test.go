package holdem

import (
	"testing"

	"texas-lite/card"
)

func holeCards(t *testing.T, p *Player, codes ...string) {
	t.Helper()
	p.holeCards = nil
	for _, code := range codes {
		p.holeCards.Add(card.MustParse(code))
	}
}

func TestDetermineWinnersUncontested(t *testing.T) {
	players := seatedPlayers(3)
	players[0].folded = true
	players[2].folded = true

	winners, err := DetermineWinners(players, nil, 150, 0)
	if err != nil {
		t.Fatalf("settlement failed: %v", err)
	}
	if len(winners) != 1 || winners[0].Player != players[1] || winners[0].Amount != 150 {
		t.Fatalf("uncontested pot should go whole to the last seat, got %+v", winners)
	}
	if winners[0].Hand.Category != 0 {
		t.Fatalf("uncontested settlement must not evaluate hands")
	}
}

func TestDetermineWinnersBestHandTakesAll(t *testing.T) {
	players := seatedPlayers(2)
	community := cards(t, "9s", "9c", "Ad", "2h", "3s")
	holeCards(t, players[0], "9h", "9d") // quads
	holeCards(t, players[1], "Ah", "Kd") // aces up

	winners, err := DetermineWinners(players, community, 200, 0)
	if err != nil {
		t.Fatalf("settlement failed: %v", err)
	}
	if len(winners) != 1 || winners[0].Player != players[0] || winners[0].Amount != 200 {
		t.Fatalf("quads should scoop, got %+v", winners)
	}
	if winners[0].Hand.Category != HandFourOfAKind {
		t.Fatalf("winner hand should be quads, got %s", winners[0].Hand.Name())
	}
}

func TestDetermineWinnersSplitWithRemainder(t *testing.T) {
	players := seatedPlayers(3)
	// Everyone plays the board; three-way chop.
	community := cards(t, "As", "Ks", "Qs", "Js", "Ts")
	holeCards(t, players[0], "2h", "3d")
	holeCards(t, players[1], "4h", "5d")
	holeCards(t, players[2], "6h", "7d")

	winners, err := DetermineWinners(players, community, 100, 0)
	if err != nil {
		t.Fatalf("settlement failed: %v", err)
	}
	if len(winners) != 3 {
		t.Fatalf("expected a three-way chop, got %d winners", len(winners))
	}

	var total int64
	amounts := map[string]int64{}
	for _, w := range winners {
		total += w.Amount
		amounts[w.Player.ID()] = w.Amount
	}
	if total != 100 {
		t.Fatalf("chip leak: distributed %d of 100", total)
	}
	// The odd chip lands on the first winner left of the dealer.
	if amounts["b"] != 34 || amounts["c"] != 33 || amounts["a"] != 33 {
		t.Fatalf("remainder misplaced: %v", amounts)
	}
}

func TestDetermineWinnersRemainderIsDeterministic(t *testing.T) {
	players := seatedPlayers(3)
	community := cards(t, "As", "Ks", "Qs", "Js", "Ts")
	holeCards(t, players[0], "2h", "3d")
	holeCards(t, players[1], "4h", "5d")
	holeCards(t, players[2], "6h", "7d")

	first, err := DetermineWinners(players, community, 101, 1)
	if err != nil {
		t.Fatalf("settlement failed: %v", err)
	}
	second, err := DetermineWinners(players, community, 101, 1)
	if err != nil {
		t.Fatalf("settlement failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("settlement is not repeatable")
	}
	for i := range first {
		if first[i].Player != second[i].Player || first[i].Amount != second[i].Amount {
			t.Fatalf("settlement is not repeatable: %+v vs %+v", first[i], second[i])
		}
	}
	// Dealer 1: seat c is first in line for the odd chip.
	if first[0].Player.ID() != "c" || first[0].Amount != 34 {
		t.Fatalf("odd chip should go to seat c, got %s %d", first[0].Player.ID(), first[0].Amount)
	}
}

func TestDetermineWinnersNoContenders(t *testing.T) {
	players := seatedPlayers(2)
	players[0].folded = true
	players[1].folded = true

	if _, err := DetermineWinners(players, nil, 100, 0); err == nil {
		t.Fatalf("settlement with no contenders must fail")
	}
}
