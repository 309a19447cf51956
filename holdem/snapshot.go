package holdem

import (
	"fmt"

	"texas-lite/card"
)

// PlayerSnapshot 单个座位的持久化形态
type PlayerSnapshot struct {
	ID        string   `json:"id"`
	Provider  string   `json:"provider"`
	Stack     int64    `json:"stack"`
	Bet       int64    `json:"bet"`
	Folded    bool     `json:"folded"`
	AllIn     bool     `json:"all_in"`
	HoleCards []string `json:"hole_cards,omitempty"`
}

// Snapshot captures everything needed to resume a game between hands.
// Cards travel as their short string codes so the JSON stays readable.
type Snapshot struct {
	GameID        string `json:"game_id"`
	Round         int    `json:"round"`
	Phase         string `json:"phase"`
	Abandoned     bool   `json:"abandoned"`
	SmallBlind    int64  `json:"small_blind"`
	BigBlind      int64  `json:"big_blind"`
	StartingStack int64  `json:"starting_stack"`
	Seed          int64  `json:"seed,omitempty"`

	DealerButton      int      `json:"dealer_button"`
	CommunityCards    []string `json:"community_cards,omitempty"`
	PotSize           int64    `json:"pot_size"`
	CurrentRoundPot   int64    `json:"current_round_pot"`
	CurrentBetToMatch int64    `json:"current_bet_to_match"`
	LastRaiseAmount   int64    `json:"last_raise_amount"`
	LastRaiser        string   `json:"last_raiser,omitempty"`
	MinBet            int64    `json:"min_bet"`

	Players []PlayerSnapshot `json:"players"`
}

func (g *Game) Snapshot() *Snapshot {
	snap := &Snapshot{
		GameID:            g.cfg.GameID,
		Round:             g.round,
		Phase:             g.table.phase.String(),
		Abandoned:         g.abandoned,
		SmallBlind:        g.cfg.SmallBlind,
		BigBlind:          g.cfg.BigBlind,
		StartingStack:     g.cfg.StartingStack,
		Seed:              g.cfg.Seed,
		DealerButton:      g.table.dealerButton,
		CommunityCards:    g.table.communityCards.Strings(),
		PotSize:           g.table.potSize,
		CurrentRoundPot:   g.table.currentRoundPot,
		CurrentBetToMatch: g.table.currentBetToMatch,
		LastRaiseAmount:   g.table.lastRaiseAmount,
		LastRaiser:        g.table.lastRaiser,
		MinBet:            g.table.minBet,
	}
	for _, p := range g.players {
		snap.Players = append(snap.Players, PlayerSnapshot{
			ID:        p.id,
			Provider:  providerKind(p.provider),
			Stack:     p.stack,
			Bet:       p.bet,
			Folded:    p.folded,
			AllIn:     p.allIn,
			HoleCards: p.holeCards.Strings(),
		})
	}
	return snap
}

func providerKind(p ActionProvider) string {
	if p == nil {
		return ""
	}
	return p.Kind()
}

// ProviderFactory rebuilds a seat's decision source from its persisted
// variant tag.
type ProviderFactory func(playerID, kind string) (ActionProvider, error)

// Restore rebuilds a Game from a snapshot taken between hands.
func Restore(snap *Snapshot, factory ProviderFactory, opts ...Option) (*Game, error) {
	cfg := Config{
		GameID:        snap.GameID,
		SmallBlind:    snap.SmallBlind,
		BigBlind:      snap.BigBlind,
		StartingStack: snap.StartingStack,
		Seed:          snap.Seed,
	}

	seats := make([]Seat, 0, len(snap.Players))
	for _, ps := range snap.Players {
		provider, err := factory(ps.ID, ps.Provider)
		if err != nil {
			return nil, fmt.Errorf("restore provider for %s: %w", ps.ID, err)
		}
		seats = append(seats, Seat{ID: ps.ID, Provider: provider, Stack: ps.Stack})
	}

	g, err := NewGame(cfg, seats, opts...)
	if err != nil {
		return nil, err
	}

	// Busted seats carry Stack == 0, which NewGame reads as "use the
	// default"; overwrite from the snapshot and restore hand state.
	for i, ps := range snap.Players {
		p := g.players[i]
		p.stack = ps.Stack
		p.bet = ps.Bet
		p.folded = ps.Folded
		p.allIn = ps.AllIn
		p.holeCards = nil
		for _, s := range ps.HoleCards {
			c, err := card.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("restore hole card %q: %w", s, err)
			}
			p.holeCards.Add(c)
		}
	}

	community := make([]card.Card, 0, len(snap.CommunityCards))
	for _, s := range snap.CommunityCards {
		c, err := card.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("restore community card %q: %w", s, err)
		}
		community = append(community, c)
	}

	g.round = snap.Round
	g.abandoned = snap.Abandoned
	g.table.phase = phaseFromName(snap.Phase)
	g.table.dealerButton = snap.DealerButton
	g.table.communityCards.Init(community)
	g.table.potSize = snap.PotSize
	g.table.currentRoundPot = snap.CurrentRoundPot
	g.table.currentBetToMatch = snap.CurrentBetToMatch
	g.table.lastRaiseAmount = snap.LastRaiseAmount
	g.table.lastRaiser = snap.LastRaiser
	g.table.minBet = snap.MinBet
	return g, nil
}
