package bot

import (
	"math/rand"

	"texas-lite/holdem"
)

// AggressiveBot bets wider, raises bigger, and bluffs one hand in five.
type AggressiveBot struct {
	rng *rand.Rand
}

func NewAggressiveBot(seed int64) *AggressiveBot {
	return &AggressiveBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *AggressiveBot) Kind() string { return KindAggressive }

func (b *AggressiveBot) RequestAction(view holdem.View) holdem.Action {
	legal := view.Legal
	strength := EstimateStrength(view)
	bluffing := b.rng.Float64() < 0.2

	if strength >= 0.6 || bluffing {
		if legal.Bet != nil {
			return holdem.Action{Type: holdem.ActionBet, Amount: betTotal(legal.Bet, 3*view.BigBlind)}
		}
		if legal.Raise != nil {
			want := view.ToCall + view.BetThisStreet + 2*view.BigBlind
			return holdem.Action{Type: holdem.ActionRaise, Amount: raiseTotal(legal.Raise, want)}
		}
		return passive(legal)
	}

	if strength >= 0.3 {
		return passive(legal)
	}

	if legal.Check {
		return holdem.Action{Type: holdem.ActionCheck}
	}
	return holdem.Action{Type: holdem.ActionFold}
}
