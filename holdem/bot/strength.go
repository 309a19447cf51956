package bot

import "texas-lite/holdem"

// EstimateStrength maps a seat's view to [0,1]. Pre-flop it is a
// cheap hole-card heuristic; post-flop it rides the real evaluator.
func EstimateStrength(view holdem.View) float64 {
	if len(view.HoleCards) < 2 {
		return 0
	}
	if len(view.CommunityCards) == 0 {
		return preflopStrength(view)
	}

	result := holdem.Evaluate(view.HoleCards, view.CommunityCards)
	// CategoryRank spans 1 (high card) to 9 (straight flush).
	strength := 0.1 + 0.8*float64(result.CategoryRank()-1)/8
	if len(result.Kickers) > 0 {
		strength += 0.05 * float64(result.Kickers[0]) / 14
	}
	return clamp01(strength)
}

func preflopStrength(view holdem.View) float64 {
	a, b := view.HoleCards[0], view.HoleCards[1]
	strength := float64(a.RankValue()+b.RankValue()) / 28

	if a.Rank() == b.Rank() {
		strength += 0.25
	}
	if a.Suit() == b.Suit() {
		strength += 0.05
	}
	gap := a.RankValue() - b.RankValue()
	if gap < 0 {
		gap = -gap
	}
	if gap == 1 {
		strength += 0.05
	}
	return clamp01(strength)
}

// PotOdds 跟注价格占跟注后彩池的比例
func PotOdds(view holdem.View) float64 {
	if view.ToCall <= 0 {
		return 0
	}
	return float64(view.ToCall) / float64(view.PotTotal+view.ToCall)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
