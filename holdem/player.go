package holdem

import "texas-lite/card"

// Player 一个座位上的玩家
//
// Fields are package-private; the engine is the only writer. External
// callers read through accessors or a Snapshot.
type Player struct {
	id        string
	stack     int64
	bet       int64 // committed this street
	folded    bool
	allIn     bool
	holeCards card.CardList
	provider  ActionProvider
}

func (p *Player) ID() string               { return p.id }
func (p *Player) Stack() int64             { return p.stack }
func (p *Player) Bet() int64               { return p.bet }
func (p *Player) Folded() bool             { return p.folded }
func (p *Player) AllIn() bool              { return p.allIn }
func (p *Player) HoleCards() card.CardList { return p.holeCards }
func (p *Player) Provider() ActionProvider { return p.provider }

// placeBet commits up to amount chips and returns what was actually
// committed. Betting the whole stack marks the seat all-in.
func (p *Player) placeBet(amount int64) int64 {
	if amount >= p.stack {
		amount = p.stack
		p.allIn = true
	}
	p.stack -= amount
	p.bet += amount
	return amount
}

func (p *Player) fold() {
	p.folded = true
	p.holeCards = nil
}

// eligible 本街还能行动 (未弃牌, 未全下)
func (p *Player) eligible() bool {
	return !p.folded && !p.allIn
}

func (p *Player) resetForNewHand() {
	p.bet = 0
	p.allIn = false
	p.holeCards = nil
	// Busted seats sit out; they keep their spot so the button math
	// and snapshots stay stable.
	p.folded = p.stack <= 0
}
