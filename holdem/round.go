package holdem

import "log"

type streetResult int

const (
	streetClosed streetResult = iota
	streetFoldedOut
	streetAbandoned
)

// runStreet drives one betting street. The acting order is fixed up
// front; seats that fold or go all-in are skipped on later passes.
//
// needAction counts eligible seats still owed a turn. Every consumed
// turn decrements it; a bet or raise resets it to the number of OTHER
// eligible seats, reopening the action. The street closes at zero.
func (g *Game) runStreet() streetResult {
	order := BettingOrder(g.players, g.table.dealerButton, g.table.phase)
	if len(order) == 0 {
		return streetClosed
	}

	needAction := len(order)
	idx := 0
	for needAction > 0 {
		p := order[idx%len(order)]
		idx++
		if !p.eligible() {
			continue
		}

		legal := LegalActions(p, &g.table)
		act := p.provider.RequestAction(g.viewFor(p, legal))

		quit, reopened := g.applyAction(p, act, legal)
		if quit {
			return streetAbandoned
		}
		if reopened {
			needAction = g.otherEligible(p)
		} else {
			needAction--
		}

		if activeCount(g.players) <= 1 {
			return streetFoldedOut
		}
	}
	return streetClosed
}

// applyAction is the single validation gate for player actions. An
// action outside the legal set, or with an out-of-range amount, folds
// the seat and the round moves on.
func (g *Game) applyAction(p *Player, act Action, legal ActionSet) (quit, reopened bool) {
	if act.Type == ActionQuit {
		g.emit(Event{
			Type:     EventPlayerAction,
			Round:    g.round,
			Phase:    g.table.phase.String(),
			PlayerID: p.id,
			Action:   ActionQuit.String(),
		})
		return true, false
	}

	ok := false
	var commit int64
	reopen := false

	switch act.Type {
	case ActionFold:
		ok = legal.Fold
	case ActionCheck:
		ok = legal.Check
	case ActionCall:
		ok = legal.CallAmount >= 0
		commit = legal.CallAmount
	case ActionBet:
		ok = legal.Bet != nil &&
			act.Amount >= legal.Bet.MinTotal && act.Amount <= legal.Bet.MaxTotal
		commit = act.Amount - p.bet
		reopen = true
	case ActionRaise:
		ok = legal.Raise != nil &&
			act.Amount >= legal.Raise.MinTotal && act.Amount <= legal.Raise.MaxTotal
		commit = act.Amount - p.bet
		reopen = true
	}

	if !ok {
		g.forceFold(p, act)
		return false, false
	}

	if act.Type == ActionFold {
		p.fold()
		g.emitAction(p, ActionFold, 0, false)
		return false, false
	}

	if commit > 0 {
		actual := p.placeBet(commit)
		g.table.currentRoundPot += actual
	}
	if reopen {
		total := p.bet
		increment := total - g.table.currentBetToMatch
		fullStep := g.table.bigBlind
		if g.table.lastRaiseAmount > fullStep {
			fullStep = g.table.lastRaiseAmount
		}
		// An incomplete all-in raise reopens calling but leaves the
		// raise step untouched.
		if increment >= fullStep {
			g.table.lastRaiseAmount = increment
		}
		g.table.currentBetToMatch = total
		g.table.lastRaiser = p.id
	}

	amount := int64(0)
	switch act.Type {
	case ActionCall:
		amount = commit
	case ActionBet, ActionRaise:
		amount = p.bet
	}
	g.emitAction(p, act.Type, amount, false)
	return false, reopen
}

func (g *Game) forceFold(p *Player, attempted Action) {
	log.Printf("[Game] %s: illegal %s(%d) from %s, folding seat",
		g.cfg.GameID, attempted.Type, attempted.Amount, p.id)
	p.fold()
	g.emitAction(p, ActionFold, 0, true)
}

func (g *Game) emitAction(p *Player, t ActionType, amount int64, forced bool) {
	g.emit(Event{
		Type:     EventPlayerAction,
		Round:    g.round,
		Phase:    g.table.phase.String(),
		PlayerID: p.id,
		Action:   t.String(),
		Amount:   amount,
		Forced:   forced,
		Pot:      g.table.PotTotal(),
	})
}

func (g *Game) otherEligible(p *Player) int {
	count := 0
	for _, q := range g.players {
		if q != p && q.eligible() {
			count++
		}
	}
	return count
}
