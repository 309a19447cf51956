package bot

import (
	"math/rand"

	"texas-lite/holdem"
)

// RandomBot 在合法操作里均匀乱选
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot(seed int64) *RandomBot {
	return &RandomBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) Kind() string { return KindRandom }

func (b *RandomBot) RequestAction(view holdem.View) holdem.Action {
	legal := view.Legal

	choices := make([]holdem.Action, 0, 5)
	if legal.Check {
		choices = append(choices, holdem.Action{Type: holdem.ActionCheck})
	}
	if legal.CallAmount >= 0 {
		choices = append(choices, holdem.Action{Type: holdem.ActionCall})
	}
	if legal.Bet != nil {
		total := legal.Bet.MinTotal
		if spread := legal.Bet.MaxTotal - legal.Bet.MinTotal; spread > 0 {
			total += b.rng.Int63n(spread + 1)
		}
		choices = append(choices, holdem.Action{Type: holdem.ActionBet, Amount: total})
	}
	if legal.Raise != nil {
		total := legal.Raise.MinTotal
		if spread := legal.Raise.MaxTotal - legal.Raise.MinTotal; spread > 0 {
			total += b.rng.Int63n(spread + 1)
		}
		choices = append(choices, holdem.Action{Type: holdem.ActionRaise, Amount: total})
	}
	if legal.Fold {
		choices = append(choices, holdem.Action{Type: holdem.ActionFold})
	}

	if len(choices) == 0 {
		return holdem.Action{Type: holdem.ActionFold}
	}
	return choices[b.rng.Intn(len(choices))]
}
