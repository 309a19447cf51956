package holdem

// Phase 游戏阶段
type Phase byte

const (
	PhaseNone Phase = iota
	PhasePreflop
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseShowdown
	PhaseRoundEnd
)

var phaseNames = map[Phase]string{
	PhaseNone:     "none",
	PhasePreflop:  "preflop",
	PhaseFlop:     "flop",
	PhaseTurn:     "turn",
	PhaseRiver:    "river",
	PhaseShowdown: "showdown",
	PhaseRoundEnd: "round_end",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

func phaseFromName(name string) Phase {
	for p, n := range phaseNames {
		if n == name {
			return p
		}
	}
	return PhaseNone
}

// ActionType 玩家操作类型
type ActionType byte

const (
	ActionNone ActionType = iota
	ActionCheck
	ActionBet
	ActionCall
	ActionRaise
	ActionFold
	ActionQuit
)

var actionNames = map[ActionType]string{
	ActionNone:  "none",
	ActionCheck: "check",
	ActionBet:   "bet",
	ActionCall:  "call",
	ActionRaise: "raise",
	ActionFold:  "fold",
	ActionQuit:  "quit",
}

func (a ActionType) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Action is what a provider hands back for its turn.
// For bet/raise, Amount is the seat's TOTAL commitment on the street,
// not the increment. Call/check/fold amounts are engine-computed.
type Action struct {
	Type   ActionType
	Amount int64
}

// 牌型
const (
	HandHighCard byte = iota + 1
	HandOnePair
	HandTwoPair
	HandThreeOfAKind
	HandStraight
	HandFlush
	HandFullHouse
	HandFourOfAKind
	HandStraightFlush
	HandRoyalFlush
)

var handNames = map[byte]string{
	HandHighCard:      "HIGH_CARD",
	HandOnePair:       "ONE_PAIR",
	HandTwoPair:       "TWO_PAIR",
	HandThreeOfAKind:  "THREE_OF_A_KIND",
	HandStraight:      "STRAIGHT",
	HandFlush:         "FLUSH",
	HandFullHouse:     "FULL_HOUSE",
	HandFourOfAKind:   "FOUR_OF_A_KIND",
	HandStraightFlush: "STRAIGHT_FLUSH",
	HandRoyalFlush:    "ROYAL_FLUSH",
}

// HandName returns the display name of a hand category.
func HandName(category byte) string {
	if name, ok := handNames[category]; ok {
		return name
	}
	return "UNKNOWN"
}
