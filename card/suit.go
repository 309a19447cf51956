package card

type Suit byte

const (
	Spade Suit = iota // ♠️
	Heart             // ♥️
	Club              // ♣️
	Diamond           // ♦️
)

func (s Suit) String() string {
	switch s {
	case Diamond:
		return "♦️"
	case Club:
		return "♣️"
	case Heart:
		return "♥️"
	case Spade:
		return "♠️"
	}
	return "?"
}

// Letter 花色短写，用于 "As"/"Td" 这类字符串编码
func (s Suit) Letter() string {
	switch s {
	case Spade:
		return "s"
	case Heart:
		return "h"
	case Club:
		return "c"
	case Diamond:
		return "d"
	}
	return "?"
}
