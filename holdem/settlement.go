package holdem

import "texas-lite/card"

// Winner 结算结果的一份
type Winner struct {
	Player *Player
	Amount int64
	Hand   HandResult
}

// DetermineWinners settles one undifferentiated pot among the
// non-folded seats. It is pure: it reads hands and positions, returns
// shares, and moves no chips. Identical input yields identical output.
//
// Remainder chips after an even split are handed out one at a time in
// seat order starting left of the dealer.
func DetermineWinners(players []*Player, community []card.Card, potTotal int64, dealerIdx int) ([]Winner, error) {
	contenders := make([]int, 0, len(players))
	for i, p := range players {
		if !p.folded {
			contenders = append(contenders, i)
		}
	}
	if len(contenders) == 0 {
		return nil, &InvalidStateError{Op: "DetermineWinners", Detail: "no contenders for the pot"}
	}

	// Uncontested: everyone else folded, no showdown, no evaluation.
	if len(contenders) == 1 {
		p := players[contenders[0]]
		return []Winner{{Player: p, Amount: potTotal}}, nil
	}

	hands := make(map[int]HandResult, len(contenders))
	bestIdx := -1
	for _, i := range contenders {
		hands[i] = Evaluate(players[i].holeCards, community)
		if bestIdx < 0 || hands[i].Compare(hands[bestIdx]) > 0 {
			bestIdx = i
		}
	}

	winnerSet := make(map[int]bool)
	for _, i := range contenders {
		if hands[i].Compare(hands[bestIdx]) == 0 {
			winnerSet[i] = true
		}
	}

	// Seat order left of the dealer fixes who receives odd chips.
	ordered := make([]int, 0, len(winnerSet))
	n := len(players)
	for i := 1; i <= n; i++ {
		idx := (dealerIdx + i) % n
		if winnerSet[idx] {
			ordered = append(ordered, idx)
		}
	}

	share := potTotal / int64(len(ordered))
	remainder := potTotal % int64(len(ordered))

	winners := make([]Winner, 0, len(ordered))
	for _, idx := range ordered {
		amount := share
		if remainder > 0 {
			amount++
			remainder--
		}
		winners = append(winners, Winner{Player: players[idx], Amount: amount, Hand: hands[idx]})
	}
	return winners, nil
}
