package holdem

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"texas-lite/card"
)

// Seat 建桌参数: 一个玩家与它的决策来源
// Stack == 0 means the configured starting stack.
type Seat struct {
	ID       string
	Provider ActionProvider
	Stack    int64
}

// StateStore 每手结束后的自动存档目标
type StateStore interface {
	Save(ctx context.Context, gameID string, snap *Snapshot) error
}

type Option func(*Game)

func WithSink(s EventSink) Option {
	return func(g *Game) { g.sink = s }
}

func WithStore(st StateStore) Option {
	return func(g *Game) { g.store = st }
}

// Game owns the table, roster, deck and rng for one cash game.
// Strictly single-threaded: exactly one seat awaits action at a time.
type Game struct {
	cfg     Config
	table   TableState
	players []*Player
	deck    card.CardList
	rng     *rand.Rand

	sink  EventSink
	store StateStore

	seq       int64
	round     int
	abandoned bool
}

// NewGame validates config and roster before any chips move.
func NewGame(cfg Config, seats []Seat, opts ...Option) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(seats) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	if len(seats) > maxSeats {
		return nil, ErrTooManyPlayers
	}

	seen := make(map[string]bool, len(seats))
	players := make([]*Player, 0, len(seats))
	for _, s := range seats {
		if s.ID == "" {
			return nil, fmt.Errorf("empty player id")
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayerID, s.ID)
		}
		seen[s.ID] = true
		stack := s.Stack
		if stack == 0 {
			stack = cfg.StartingStack
		}
		players = append(players, &Player{id: s.ID, stack: stack, provider: s.Provider})
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:     cfg,
		players: players,
		rng:     rand.New(rand.NewSource(seed)),
		sink:    NopSink{},
	}
	g.table.smallBlind = cfg.SmallBlind
	g.table.bigBlind = cfg.BigBlind
	g.table.minBet = cfg.BigBlind
	g.table.dealerButton = -1 // first hand advances to the first funded seat
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Game) Config() Config     { return g.cfg }
func (g *Game) Table() *TableState { return &g.table }
func (g *Game) Players() []*Player { return g.players }
func (g *Game) Round() int         { return g.round }
func (g *Game) Abandoned() bool    { return g.abandoned }

// FundedCount 还有筹码的座位数
func (g *Game) FundedCount() int {
	count := 0
	for _, p := range g.players {
		if p.stack > 0 {
			count++
		}
	}
	return count
}

// Run loops hands until one stack holds all the chips, the game is
// abandoned, or the context is cancelled. Snapshots are autosaved
// through the optional store after every hand.
func (g *Game) Run(ctx context.Context) error {
	g.emit(Event{Type: EventGameStart, Round: g.round})
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if g.abandoned || g.FundedCount() < 2 {
			break
		}
		if err := g.PlayHand(); err != nil {
			return err
		}
		if g.store != nil {
			if err := g.store.Save(ctx, g.cfg.GameID, g.Snapshot()); err != nil {
				log.Printf("[Game] %s: snapshot save failed: %v", g.cfg.GameID, err)
			}
		}
	}

	end := Event{Type: EventGameEnd, Round: g.round}
	if !g.abandoned {
		for _, p := range g.players {
			if p.stack > 0 {
				end.Winner = p.id
				break
			}
		}
	}
	g.emit(end)
	return nil
}

// PlayHand runs one complete hand: blinds, hole cards, four betting
// streets, then settlement. Only a dead deck is fatal.
func (g *Game) PlayHand() error {
	if g.abandoned {
		return ErrGameOver
	}
	if g.FundedCount() < 2 {
		return ErrGameOver
	}

	g.round++
	dealer := g.nextFundedSeat(g.table.dealerButton)
	for _, p := range g.players {
		p.resetForNewHand()
	}
	g.table.resetForNewHand(dealer)

	g.deck.Init(card.FullDeck())
	g.rng.Shuffle(g.deck.Count(), func(i, j int) {
		g.deck[i], g.deck[j] = g.deck[j], g.deck[i]
	})

	g.emit(Event{Type: EventRoundStart, Round: g.round})
	g.postBlinds()
	if err := g.dealHoleCards(); err != nil {
		return err
	}

	streets := []struct {
		phase Phase
		deal  int
	}{
		{PhasePreflop, 0},
		{PhaseFlop, 3},
		{PhaseTurn, 1},
		{PhaseRiver, 1},
	}

	for _, street := range streets {
		if street.phase != PhasePreflop {
			g.finishStreet()
			g.table.phase = street.phase
			if err := g.dealCommunity(street.deal); err != nil {
				return err
			}
		}
		g.emit(Event{Type: EventPhaseStart, Round: g.round, Phase: street.phase.String()})

		// All-in fast-forward: with at most one seat able to bet and
		// nothing left for it to match, the rest of the board runs
		// out without betting. A seat still owing a call (say the big
		// blind went all-in over its posted small blind) keeps its
		// fold-or-call turn.
		if g.eligibleCount() <= 1 && !g.outstandingBet() {
			continue
		}

		switch g.runStreet() {
		case streetAbandoned:
			g.abandoned = true
			g.emit(Event{Type: EventRoundAbandoned, Round: g.round, Phase: street.phase.String()})
			return nil
		case streetFoldedOut:
			return g.settle()
		}
	}

	g.finishStreet()
	g.table.phase = PhaseShowdown
	g.emit(Event{Type: EventPhaseStart, Round: g.round, Phase: PhaseShowdown.String()})
	return g.settle()
}

func (g *Game) postBlinds() {
	sbIdx, bbIdx := g.selectBlinds()
	g.postBlind(sbIdx, g.table.smallBlind, "small_blind")
	g.postBlind(bbIdx, g.table.bigBlind, "big_blind")
	g.table.currentBetToMatch = g.table.bigBlind
	g.table.lastRaiseAmount = g.table.bigBlind
	g.table.lastRaiser = g.players[bbIdx].id
}

func (g *Game) postBlind(idx int, amount int64, name string) {
	p := g.players[idx]
	actual := p.placeBet(amount)
	g.table.currentRoundPot += actual
	g.emit(Event{
		Type:     EventPlayerAction,
		Round:    g.round,
		Phase:    g.table.phase.String(),
		PlayerID: p.id,
		Action:   name,
		Amount:   actual,
		Pot:      g.table.PotTotal(),
	})
}

// selectBlinds walks active seats left of the dealer. Heads-up the
// dealer posts the small blind.
func (g *Game) selectBlinds() (sbIdx, bbIdx int) {
	if activeCount(g.players) == 2 {
		sbIdx = g.table.dealerButton
		bbIdx = g.nextActiveSeat(sbIdx)
		return sbIdx, bbIdx
	}
	sbIdx = g.nextActiveSeat(g.table.dealerButton)
	bbIdx = g.nextActiveSeat(sbIdx)
	return sbIdx, bbIdx
}

func (g *Game) dealHoleCards() error {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		p := g.players[(g.table.dealerButton+i)%n]
		if p.folded {
			continue
		}
		cards, ok := g.deck.PopCards(2)
		if !ok {
			return ErrDeckExhausted
		}
		p.holeCards.Init(cards)
		g.emit(Event{
			Type:     EventHoleCards,
			Round:    g.round,
			PlayerID: p.id,
			Cards:    p.holeCards.Strings(),
		})
	}
	return nil
}

// dealCommunity burns one card, then deals n to the board.
func (g *Game) dealCommunity(n int) error {
	if g.deck.Count() > n {
		g.deck.PopCard()
	}
	cards, ok := g.deck.PopCards(n)
	if !ok {
		return ErrDeckExhausted
	}
	g.table.communityCards.Add(cards...)
	g.emit(Event{
		Type:  EventCommunityCards,
		Round: g.round,
		Phase: g.table.phase.String(),
		Cards: card.CardList(cards).Strings(),
	})
	return nil
}

// finishStreet folds street chips into the pot and clears per-seat bets.
func (g *Game) finishStreet() {
	g.table.closeStreet()
	for _, p := range g.players {
		p.bet = 0
	}
}

func (g *Game) settle() error {
	g.finishStreet()
	winners, err := DetermineWinners(g.players, g.table.communityCards, g.table.potSize, g.table.dealerButton)
	if err != nil {
		return err
	}
	for _, w := range winners {
		w.Player.stack += w.Amount
		e := Event{
			Type:     EventPotDistributed,
			Round:    g.round,
			PlayerID: w.Player.ID(),
			Amount:   w.Amount,
			Pot:      g.table.potSize,
		}
		if w.Hand.Category != 0 {
			e.Hand = w.Hand.Name()
			e.Cards = card.CardList(w.Hand.BestFive).Strings()
		}
		g.emit(e)
	}
	g.table.potSize = 0
	g.table.phase = PhaseRoundEnd
	g.emit(Event{Type: EventRoundEnd, Round: g.round})
	return nil
}

func (g *Game) viewFor(p *Player, legal ActionSet) View {
	toCall := legal.CallAmount
	if toCall < 0 {
		toCall = 0
	}
	return View{
		PlayerID:       p.id,
		HoleCards:      append([]card.Card(nil), p.holeCards...),
		CommunityCards: append([]card.Card(nil), g.table.communityCards...),
		Phase:          g.table.phase,
		Stack:          p.stack,
		BetThisStreet:  p.bet,
		PotTotal:       g.table.PotTotal(),
		ToCall:         toCall,
		BigBlind:       g.table.bigBlind,
		ActiveSeats:    activeCount(g.players),
		Legal:          legal,
	}
}

func (g *Game) emit(e Event) {
	g.seq++
	e.Seq = g.seq
	g.sink.Emit(e)
}

func (g *Game) eligibleCount() int {
	count := 0
	for _, p := range g.players {
		if p.eligible() {
			count++
		}
	}
	return count
}

// outstandingBet reports whether any eligible seat still owes chips
// against the current street bet.
func (g *Game) outstandingBet() bool {
	for _, p := range g.players {
		if p.eligible() && p.bet < g.table.currentBetToMatch {
			return true
		}
	}
	return false
}

func (g *Game) nextFundedSeat(from int) int {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		idx := ((from + i) % n + n) % n
		if g.players[idx].stack > 0 {
			return idx
		}
	}
	return 0
}

func (g *Game) nextActiveSeat(from int) int {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if !g.players[idx].folded {
			return idx
		}
	}
	return from
}
