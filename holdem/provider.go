package holdem

import (
	"time"

	"texas-lite/card"
)

// View 座位视角的只读快照, 按值传递
// Providers decide from this alone; they never touch engine state.
type View struct {
	PlayerID       string
	HoleCards      []card.Card
	CommunityCards []card.Card
	Phase          Phase

	Stack         int64
	BetThisStreet int64
	PotTotal      int64
	ToCall        int64
	BigBlind      int64
	ActiveSeats   int

	Legal ActionSet
}

// ActionProvider supplies one action per turn. Kind is a stable
// variant tag ("random", "tight", "human", ...) persisted in
// snapshots so a restored game can rebuild its providers.
type ActionProvider interface {
	RequestAction(view View) Action
	Kind() string
}

type timeoutProvider struct {
	inner   ActionProvider
	timeout time.Duration
}

// WithTimeout wraps a provider with a decision deadline. On timeout
// the seat checks when free, otherwise folds. The late answer from the
// inner provider is discarded.
func WithTimeout(p ActionProvider, d time.Duration) ActionProvider {
	return &timeoutProvider{inner: p, timeout: d}
}

func (tp *timeoutProvider) Kind() string { return tp.inner.Kind() }

func (tp *timeoutProvider) RequestAction(view View) Action {
	done := make(chan Action, 1)
	go func() {
		done <- tp.inner.RequestAction(view)
	}()

	timer := time.NewTimer(tp.timeout)
	defer timer.Stop()

	select {
	case act := <-done:
		return act
	case <-timer.C:
		if view.Legal.Check {
			return Action{Type: ActionCheck}
		}
		return Action{Type: ActionFold}
	}
}
