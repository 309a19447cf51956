package bot

import (
	"math/rand"

	"texas-lite/holdem"
)

// TightBot plays few hands and bets only when strong: below 0.4 it
// checks or folds, up to 0.7 it calls when the price is right, above
// that it bets or raises small.
type TightBot struct {
	rng *rand.Rand
}

func NewTightBot(seed int64) *TightBot {
	return &TightBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *TightBot) Kind() string { return KindTight }

func (b *TightBot) RequestAction(view holdem.View) holdem.Action {
	legal := view.Legal
	strength := EstimateStrength(view)

	if strength < 0.4 {
		if legal.Check {
			return holdem.Action{Type: holdem.ActionCheck}
		}
		return holdem.Action{Type: holdem.ActionFold}
	}

	if strength < 0.7 {
		if legal.CallAmount >= 0 && PotOdds(view) > strength {
			// Too expensive for a medium hand.
			return holdem.Action{Type: holdem.ActionFold}
		}
		return passive(legal)
	}

	if legal.Bet != nil {
		return holdem.Action{Type: holdem.ActionBet, Amount: betTotal(legal.Bet, 2*view.BigBlind)}
	}
	if legal.Raise != nil {
		return holdem.Action{Type: holdem.ActionRaise, Amount: legal.Raise.MinTotal}
	}
	return passive(legal)
}
