package holdem

// BetRange / RaiseRange bound the seat's TOTAL street commitment.
type BetRange struct {
	MinTotal int64
	MaxTotal int64
}

type RaiseRange struct {
	MinTotal int64
	MaxTotal int64
}

// ActionSet 当前座位的合法操作集合
//
// CallAmount is the chips still owed to match (-1 when no call exists).
// MinTotal == MaxTotal on Raise marks an incomplete all-in raise: the
// seat cannot reach a full raise but may still push its stack.
type ActionSet struct {
	Fold       bool
	Check      bool
	CallAmount int64
	Bet        *BetRange
	Raise      *RaiseRange
}

// LegalActions computes what p may do against the current table state.
// Every action a provider returns is checked against this set in one
// place; anything outside it becomes a forced fold.
func LegalActions(p *Player, t *TableState) ActionSet {
	// 全下或没有筹码: 只能过牌 (pass-through)
	if p.allIn || p.stack <= 0 {
		return ActionSet{Check: true, CallAmount: -1}
	}

	set := ActionSet{Fold: true, CallAmount: -1}
	toMatch := t.currentBetToMatch - p.bet
	maxTotal := p.bet + p.stack

	if toMatch <= 0 {
		set.Check = true
		if t.currentBetToMatch == 0 {
			// No bet yet this street.
			minTotal := t.bigBlind
			if t.minBet > minTotal {
				minTotal = t.minBet
			}
			if minTotal > maxTotal {
				minTotal = maxTotal
			}
			set.Bet = &BetRange{MinTotal: minTotal, MaxTotal: maxTotal}
			return set
		}
		// Big blind option: matched but may still raise.
	} else {
		call := toMatch
		if call > p.stack {
			call = p.stack
		}
		set.CallAmount = call
	}

	if maxTotal <= t.currentBetToMatch {
		return set
	}
	increment := t.bigBlind
	if t.lastRaiseAmount > increment {
		increment = t.lastRaiseAmount
	}
	fullMin := t.currentBetToMatch + increment
	if maxTotal >= fullMin {
		set.Raise = &RaiseRange{MinTotal: fullMin, MaxTotal: maxTotal}
	} else {
		// 不足额全下加注
		set.Raise = &RaiseRange{MinTotal: maxTotal, MaxTotal: maxTotal}
	}
	return set
}

// BettingOrder fixes the acting order for one street. Eligible means
// not folded and not all-in. Pre-flop action starts three active seats
// past the dealer (the dealer itself heads-up); post-flop at the first
// active seat left of the dealer. The order is computed once per
// street and never recomputed mid-street.
//
// Positions are counted over active (non-folded) seats so that busted
// seats kept in the roster do not shift the blinds or the opener.
func BettingOrder(players []*Player, dealerIdx int, phase Phase) []*Player {
	n := len(players)
	if n == 0 {
		return nil
	}

	// Active ring starting left of the dealer: [SB, BB, UTG, ..., D].
	ring := make([]*Player, 0, n)
	for i := 1; i <= n; i++ {
		p := players[(dealerIdx+i)%n]
		if !p.folded {
			ring = append(ring, p)
		}
	}

	shift := 0
	if phase == PhasePreflop {
		if len(ring) >= 3 {
			shift = 2 // open past the blinds
		} else {
			shift = len(ring) - 1 // heads-up: dealer posts SB and opens
		}
	}
	if shift > 0 && shift < len(ring) {
		ring = append(ring[shift:], ring[:shift]...)
	}

	order := make([]*Player, 0, len(ring))
	for _, p := range ring {
		if p.eligible() {
			order = append(order, p)
		}
	}
	return order
}

func activeCount(players []*Player) int {
	count := 0
	for _, p := range players {
		if !p.folded {
			count++
		}
	}
	return count
}
