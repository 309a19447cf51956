package holdem

import "testing"

func testTable(betToMatch, lastRaise int64) *TableState {
	return &TableState{
		smallBlind:        10,
		bigBlind:          20,
		minBet:            20,
		currentBetToMatch: betToMatch,
		lastRaiseAmount:   lastRaise,
		phase:             PhaseFlop,
	}
}

func TestLegalActionsNoBetYet(t *testing.T) {
	p := &Player{id: "p", stack: 500}
	set := LegalActions(p, testTable(0, 0))

	if !set.Check || !set.Fold {
		t.Fatalf("check and fold should be legal with no bet out")
	}
	if set.CallAmount != -1 {
		t.Fatalf("no call should exist, got %d", set.CallAmount)
	}
	if set.Bet == nil || set.Bet.MinTotal != 20 || set.Bet.MaxTotal != 500 {
		t.Fatalf("bet range wrong: %+v", set.Bet)
	}
	if set.Raise != nil {
		t.Fatalf("raise should not exist before a bet")
	}
}

func TestLegalActionsFacingBet(t *testing.T) {
	p := &Player{id: "p", stack: 500}
	set := LegalActions(p, testTable(60, 40))

	if set.Check {
		t.Fatalf("check is illegal facing a bet")
	}
	if set.CallAmount != 60 {
		t.Fatalf("call should owe 60, got %d", set.CallAmount)
	}
	if set.Bet != nil {
		t.Fatalf("bet is illegal once a bet is out")
	}
	// Min raise: 60 to match plus the 40 last raise step.
	if set.Raise == nil || set.Raise.MinTotal != 100 || set.Raise.MaxTotal != 500 {
		t.Fatalf("raise range wrong: %+v", set.Raise)
	}
}

func TestLegalActionsIncompleteAllInRaise(t *testing.T) {
	p := &Player{id: "p", stack: 75, bet: 0}
	set := LegalActions(p, testTable(60, 40))

	if set.CallAmount != 60 {
		t.Fatalf("call should owe 60, got %d", set.CallAmount)
	}
	// 75 total beats the 60 to match but not the 100 full raise.
	if set.Raise == nil || set.Raise.MinTotal != 75 || set.Raise.MaxTotal != 75 {
		t.Fatalf("expected incomplete all-in raise at 75, got %+v", set.Raise)
	}
}

func TestLegalActionsAllInCallOnly(t *testing.T) {
	p := &Player{id: "p", stack: 40}
	set := LegalActions(p, testTable(60, 40))

	if set.CallAmount != 40 {
		t.Fatalf("all-in call should be capped at the stack, got %d", set.CallAmount)
	}
	if set.Raise != nil {
		t.Fatalf("no raise when the stack cannot exceed the match")
	}
}

func TestLegalActionsAllInPassThrough(t *testing.T) {
	p := &Player{id: "p", stack: 0, allIn: true}
	set := LegalActions(p, testTable(60, 40))

	if !set.Check || set.Fold || set.CallAmount != -1 || set.Bet != nil || set.Raise != nil {
		t.Fatalf("all-in seat should only check, got %+v", set)
	}
}

func TestLegalActionsBigBlindOption(t *testing.T) {
	tbl := testTable(20, 20)
	tbl.phase = PhasePreflop
	p := &Player{id: "bb", stack: 480, bet: 20}
	set := LegalActions(p, tbl)

	if !set.Check {
		t.Fatalf("big blind should have the option to check")
	}
	if set.Bet != nil {
		t.Fatalf("big blind cannot bet pre-flop, the blind is live")
	}
	if set.Raise == nil || set.Raise.MinTotal != 40 {
		t.Fatalf("big blind raise should start at 40, got %+v", set.Raise)
	}
}

func seatedPlayers(n int) []*Player {
	players := make([]*Player, n)
	for i := range players {
		players[i] = &Player{id: string(rune('a' + i)), stack: 1000}
	}
	return players
}

func orderIDs(order []*Player) string {
	s := ""
	for _, p := range order {
		s += p.id
	}
	return s
}

func TestBettingOrderPreflopThreeHanded(t *testing.T) {
	players := seatedPlayers(3)
	// Dealer 0, SB 1, BB 2: under the gun is the dealer itself.
	if got := orderIDs(BettingOrder(players, 0, PhasePreflop)); got != "abc" {
		t.Fatalf("preflop order wrong: %s", got)
	}
}

func TestBettingOrderPreflopFull(t *testing.T) {
	players := seatedPlayers(5)
	// Dealer 0: SB=b, BB=c, so d opens and the blinds close.
	if got := orderIDs(BettingOrder(players, 0, PhasePreflop)); got != "deabc" {
		t.Fatalf("preflop order wrong: %s", got)
	}
}

func TestBettingOrderPreflopHeadsUp(t *testing.T) {
	players := seatedPlayers(2)
	// Heads-up the dealer posts the small blind and opens.
	if got := orderIDs(BettingOrder(players, 1, PhasePreflop)); got != "ba" {
		t.Fatalf("heads-up preflop order wrong: %s", got)
	}
}

func TestBettingOrderPostflop(t *testing.T) {
	players := seatedPlayers(4)
	if got := orderIDs(BettingOrder(players, 1, PhaseFlop)); got != "cdab" {
		t.Fatalf("postflop order wrong: %s", got)
	}
}

func TestBettingOrderSkipsIneligible(t *testing.T) {
	players := seatedPlayers(4)
	players[2].folded = true
	players[3].allIn = true
	if got := orderIDs(BettingOrder(players, 0, PhaseFlop)); got != "ba" {
		t.Fatalf("order should skip folded and all-in seats, got %s", got)
	}
}
