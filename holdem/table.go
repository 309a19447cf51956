package holdem

import "texas-lite/card"

// TableState 牌桌公共状态
type TableState struct {
	communityCards card.CardList

	potSize           int64 // settled streets
	currentRoundPot   int64 // chips committed this street
	currentBetToMatch int64 // street total a seat must reach to stay in
	lastRaiseAmount   int64 // size of the last full bet/raise increment
	lastRaiser        string
	minBet            int64

	smallBlind   int64
	bigBlind     int64
	dealerButton int
	phase        Phase
}

func (t *TableState) CommunityCards() card.CardList { return t.communityCards }
func (t *TableState) PotSize() int64                { return t.potSize }
func (t *TableState) CurrentRoundPot() int64        { return t.currentRoundPot }
func (t *TableState) CurrentBetToMatch() int64      { return t.currentBetToMatch }
func (t *TableState) LastRaiseAmount() int64        { return t.lastRaiseAmount }
func (t *TableState) LastRaiser() string            { return t.lastRaiser }
func (t *TableState) MinBet() int64                 { return t.minBet }
func (t *TableState) DealerButton() int             { return t.dealerButton }
func (t *TableState) Phase() Phase                  { return t.phase }
func (t *TableState) SmallBlind() int64             { return t.smallBlind }
func (t *TableState) BigBlind() int64               { return t.bigBlind }

// PotTotal 当前总彩池 (已结算街 + 本街)
func (t *TableState) PotTotal() int64 {
	return t.potSize + t.currentRoundPot
}

// closeStreet folds the street's chips into the pot and clears the
// per-street betting state. Per-seat bets are cleared by the caller.
func (t *TableState) closeStreet() {
	t.potSize += t.currentRoundPot
	t.currentRoundPot = 0
	t.currentBetToMatch = 0
	t.lastRaiseAmount = 0
	t.lastRaiser = ""
}

func (t *TableState) resetForNewHand(dealerIdx int) {
	t.communityCards = nil
	t.potSize = 0
	t.currentRoundPot = 0
	t.currentBetToMatch = 0
	t.lastRaiseAmount = 0
	t.lastRaiser = ""
	t.minBet = t.bigBlind
	t.dealerButton = dealerIdx
	t.phase = PhasePreflop
}
