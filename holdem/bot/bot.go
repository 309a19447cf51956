// Package bot provides ready-made ActionProvider strategies. Each bot
// is deterministic for a given seed and never blocks the engine.
package bot

import (
	"fmt"

	"texas-lite/holdem"
)

const (
	KindRandom     = "random"
	KindTight      = "tight"
	KindAggressive = "aggressive"
)

// New maps a persisted variant tag back to a concrete bot.
func New(kind string, seed int64) (holdem.ActionProvider, error) {
	switch kind {
	case KindRandom:
		return NewRandomBot(seed), nil
	case KindTight:
		return NewTightBot(seed), nil
	case KindAggressive:
		return NewAggressiveBot(seed), nil
	}
	return nil, fmt.Errorf("unknown bot kind %q", kind)
}

// betTotal clamps a desired street total into the legal range.
func betTotal(r *holdem.BetRange, want int64) int64 {
	if want < r.MinTotal {
		return r.MinTotal
	}
	if want > r.MaxTotal {
		return r.MaxTotal
	}
	return want
}

func raiseTotal(r *holdem.RaiseRange, want int64) int64 {
	if want < r.MinTotal {
		return r.MinTotal
	}
	if want > r.MaxTotal {
		return r.MaxTotal
	}
	return want
}

// passive picks the cheapest way to stay in the hand.
func passive(legal holdem.ActionSet) holdem.Action {
	if legal.Check {
		return holdem.Action{Type: holdem.ActionCheck}
	}
	if legal.CallAmount >= 0 {
		return holdem.Action{Type: holdem.ActionCall}
	}
	return holdem.Action{Type: holdem.ActionFold}
}
