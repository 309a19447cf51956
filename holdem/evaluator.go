package holdem

import (
	"sort"

	"texas-lite/card"
)

// HandResult 牌力评估结果
//
// Kickers carries every rank that participates in comparison, highest
// significance first. Two results with equal CategoryRank compare by
// kickers element-wise; suits never break ties.
type HandResult struct {
	Category byte
	BestFive []card.Card
	Kickers  []int
}

func (h HandResult) Name() string {
	return HandName(h.Category)
}

// CategoryRank 用于比较的牌型等级
// 皇家同花顺名字独立, 等级与同花顺相同
func (h HandResult) CategoryRank() int {
	if h.Category == HandRoyalFlush {
		return int(HandStraightFlush)
	}
	return int(h.Category)
}

// Compare returns -1/0/+1. Kicker lists of the same category always
// have the same length; exhaustion means a tie.
func (h HandResult) Compare(other HandResult) int {
	hr, or := h.CategoryRank(), other.CategoryRank()
	if hr != or {
		if hr > or {
			return 1
		}
		return -1
	}
	n := len(h.Kickers)
	if len(other.Kickers) < n {
		n = len(other.Kickers)
	}
	for i := 0; i < n; i++ {
		if h.Kickers[i] != other.Kickers[i] {
			if h.Kickers[i] > other.Kickers[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Evaluate 评估 hole+community 的最佳五张组合
//
// Fewer than 5 total cards degrades to a high-card ranking of whatever
// is present; that path feeds strength estimates, never a showdown.
func Evaluate(hole, community []card.Card) HandResult {
	all := make([]card.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)

	if len(all) < 5 {
		sorted := append([]card.Card(nil), all...)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].RankValue() > sorted[j].RankValue()
		})
		kickers := make([]int, len(sorted))
		for i, c := range sorted {
			kickers[i] = c.RankValue()
		}
		return HandResult{Category: HandHighCard, BestFive: sorted, Kickers: kickers}
	}

	var best HandResult
	n := len(all)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						five := []card.Card{all[a], all[b], all[c], all[d], all[e]}
						category, kickers := eval5(five)
						cand := HandResult{Category: category, BestFive: five, Kickers: kickers}
						if best.Category == 0 || cand.Compare(best) > 0 {
							best = cand
						}
					}
				}
			}
		}
	}

	sort.Slice(best.BestFive, func(i, j int) bool {
		return best.BestFive[i].RankValue() > best.BestFive[j].RankValue()
	})
	return best
}

// eval5 ranks exactly five cards.
func eval5(five []card.Card) (byte, []int) {
	values := make([]int, 5)
	suited := true
	for i, c := range five {
		values[i] = c.RankValue()
		if c.Suit() != five[0].Suit() {
			suited = false
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	// A-2-3-4-5 ranks as a five-high straight.
	wheel := values[0] == 14 && values[1] == 5 && values[2] == 4 &&
		values[3] == 3 && values[4] == 2
	straight := wheel
	if !straight {
		straight = true
		for i := 0; i < 4; i++ {
			if values[i] != values[i+1]+1 {
				straight = false
				break
			}
		}
	}
	straightKickers := func() []int {
		if wheel {
			return []int{5, 4, 3, 2, 1}
		}
		return append([]int(nil), values...)
	}

	if straight && suited {
		if values[0] == 14 && !wheel {
			return HandRoyalFlush, straightKickers()
		}
		return HandStraightFlush, straightKickers()
	}

	counts := make(map[int]int, 5)
	for _, v := range values {
		counts[v]++
	}
	type group struct{ value, count int }
	groups := make([]group, 0, len(counts))
	for v, c := range counts {
		groups = append(groups, group{v, c})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].value > groups[j].value
	})

	switch {
	case groups[0].count == 4:
		return HandFourOfAKind, []int{groups[0].value, groups[1].value}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandFullHouse, []int{groups[0].value, groups[1].value}
	case suited:
		return HandFlush, append([]int(nil), values...)
	case straight:
		return HandStraight, straightKickers()
	case groups[0].count == 3:
		return HandThreeOfAKind, []int{groups[0].value, groups[1].value, groups[2].value}
	case groups[0].count == 2 && groups[1].count == 2:
		return HandTwoPair, []int{groups[0].value, groups[1].value, groups[2].value}
	case groups[0].count == 2:
		return HandOnePair, []int{groups[0].value, groups[1].value, groups[2].value, groups[3].value}
	default:
		return HandHighCard, append([]int(nil), values...)
	}
}
