// Package table runs one game per Table and bridges remote humans to
// the engine. The engine stays single-threaded inside Run; the table
// only feeds it providers and fans events out.
package table

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"texas-lite/holdem"
	"texas-lite/holdem/bot"
	"texas-lite/store"
)

const actionTimeout = 30 * time.Second

var (
	ErrAlreadyStarted = errors.New("table already started")
	ErrNotStarted     = errors.New("table not started")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrUnknownPlayer  = errors.New("unknown player")
	ErrTableFull      = errors.New("table full")
)

// Broadcast delivers one engine event. Target is a player id for
// private events (hole cards), empty for table-wide ones.
type Broadcast func(target string, e holdem.Event)

type Table struct {
	ID string

	cfg       holdem.Config
	st        store.Store
	broadcast Broadcast

	mu      sync.Mutex
	seats   []holdem.Seat
	snap    *holdem.Snapshot
	humans  map[string]*humanProvider
	started bool
	cancel  context.CancelFunc
}

func New(cfg holdem.Config, st store.Store, b Broadcast) *Table {
	if cfg.GameID == "" {
		cfg.GameID = uuid.NewString()
	}
	if b == nil {
		b = func(string, holdem.Event) {}
	}
	return &Table{
		ID:        cfg.GameID,
		cfg:       cfg,
		st:        st,
		broadcast: b,
		humans:    make(map[string]*humanProvider),
	}
}

// NewFromSnapshot prepares a table that resumes a persisted game.
// The roster is fixed by the snapshot; humans reattach through
// JoinHuman before Start, bot seats are rebuilt from their kind tags.
func NewFromSnapshot(snap *holdem.Snapshot, st store.Store, b Broadcast) *Table {
	if b == nil {
		b = func(string, holdem.Event) {}
	}
	return &Table{
		ID: snap.GameID,
		cfg: holdem.Config{
			GameID:        snap.GameID,
			SmallBlind:    snap.SmallBlind,
			BigBlind:      snap.BigBlind,
			StartingStack: snap.StartingStack,
			Seed:          snap.Seed,
		},
		st:        st,
		broadcast: b,
		snap:      snap,
		humans:    make(map[string]*humanProvider),
	}
}

// JoinHuman seats a remote player behind a channel-backed provider
// with a decision deadline. On a resumed table only the snapshot's
// human seats may rejoin; a second join for the same id is a no-op so
// a dropped client can reconnect.
func (t *Table) JoinHuman(playerID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return ErrAlreadyStarted
	}
	if t.snap != nil {
		for _, ps := range t.snap.Players {
			if ps.ID != playerID {
				continue
			}
			if ps.Provider != "human" {
				return fmt.Errorf("%w: %s is not a human seat", ErrUnknownPlayer, playerID)
			}
			if _, ok := t.humans[playerID]; !ok {
				t.humans[playerID] = t.newHumanProvider(playerID)
			}
			return nil
		}
		return fmt.Errorf("%w: %s not in resumed game", ErrUnknownPlayer, playerID)
	}
	if len(t.seats) >= 9 {
		return ErrTableFull
	}
	if _, ok := t.humans[playerID]; ok {
		return fmt.Errorf("%w: %s already seated", holdem.ErrDuplicatePlayerID, playerID)
	}

	h := t.newHumanProvider(playerID)
	t.humans[playerID] = h
	t.seats = append(t.seats, holdem.Seat{
		ID:       playerID,
		Provider: holdem.WithTimeout(h, actionTimeout),
	})
	return nil
}

func (t *Table) newHumanProvider(playerID string) *humanProvider {
	return &humanProvider{
		prompt: func(view holdem.View) {
			t.broadcast(playerID, promptEvent(view))
		},
	}
}

// JoinBot seats a bot and returns its generated player id.
func (t *Table) JoinBot(kind string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return "", ErrAlreadyStarted
	}
	if t.snap != nil {
		return "", fmt.Errorf("resumed game has a fixed roster")
	}
	if len(t.seats) >= 9 {
		return "", ErrTableFull
	}

	b, err := bot.New(kind, time.Now().UnixNano())
	if err != nil {
		return "", err
	}
	playerID := fmt.Sprintf("%s-%s", kind, uuid.NewString()[:8])
	t.seats = append(t.seats, holdem.Seat{ID: playerID, Provider: b})
	return playerID, nil
}

// Start spins up the game loop. Hole-card events are routed only to
// their owner; everything else goes table-wide.
func (t *Table) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return ErrAlreadyStarted
	}
	if t.snap == nil && len(t.seats) < 2 {
		return holdem.ErrNotEnoughPlayers
	}

	sink := holdem.SinkFunc(func(e holdem.Event) {
		target := ""
		if e.Type == holdem.EventHoleCards {
			target = e.PlayerID
		}
		t.broadcast(target, e)
	})

	opts := []holdem.Option{holdem.WithSink(sink)}
	if t.st != nil {
		opts = append(opts, holdem.WithStore(t.st))
	}
	var g *holdem.Game
	var err error
	if t.snap != nil {
		g, err = holdem.Restore(t.snap, t.restoreProvider, opts...)
	} else {
		g, err = holdem.NewGame(t.cfg, t.seats, opts...)
	}
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.started = true

	go func() {
		defer cancel()
		if err := g.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("[Table] %s: game stopped: %v", t.ID, err)
		}
	}()
	return nil
}

// restoreProvider maps persisted seat tags back to decision sources.
// A human who has not reattached yet still gets a provider; unanswered
// prompts run into the action timeout and fold. Called under t.mu.
func (t *Table) restoreProvider(playerID, kind string) (holdem.ActionProvider, error) {
	if kind == "human" {
		h, ok := t.humans[playerID]
		if !ok {
			h = t.newHumanProvider(playerID)
			t.humans[playerID] = h
		}
		return holdem.WithTimeout(h, actionTimeout), nil
	}
	return bot.New(kind, time.Now().UnixNano())
}

// SubmitAction routes a human's answer to its pending turn.
func (t *Table) SubmitAction(playerID string, act holdem.Action) error {
	t.mu.Lock()
	h, ok := t.humans[playerID]
	started := t.started
	t.mu.Unlock()
	if !ok {
		return ErrUnknownPlayer
	}
	if !started {
		return ErrNotStarted
	}
	return h.submit(act)
}

func (t *Table) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// promptEvent reuses the event envelope for turn prompts so the wire
// format stays uniform for clients.
func promptEvent(view holdem.View) holdem.Event {
	e := holdem.Event{
		Type:     "action_request",
		Phase:    view.Phase.String(),
		PlayerID: view.PlayerID,
		Amount:   view.ToCall,
		Pot:      view.PotTotal,
	}
	for _, c := range view.CommunityCards {
		e.Cards = append(e.Cards, c.String())
	}
	return e
}

// humanProvider swaps in a fresh answer channel per turn, so a reply
// to an expired turn can never be applied to the current one.
type humanProvider struct {
	mu     sync.Mutex
	prompt func(view holdem.View)
	turn   chan holdem.Action
}

func (h *humanProvider) Kind() string { return "human" }

func (h *humanProvider) RequestAction(view holdem.View) holdem.Action {
	ch := make(chan holdem.Action, 1)
	h.mu.Lock()
	h.turn = ch
	h.mu.Unlock()

	h.prompt(view)
	return <-ch
}

func (h *humanProvider) submit(act holdem.Action) error {
	h.mu.Lock()
	ch := h.turn
	h.turn = nil
	h.mu.Unlock()
	if ch == nil {
		return ErrNotYourTurn
	}
	ch <- act
	return nil
}
