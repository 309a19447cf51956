package holdem

type EventType string

const (
	EventGameStart      EventType = "game_start"
	EventRoundStart     EventType = "round_start"
	EventPhaseStart     EventType = "phase_start"
	EventHoleCards      EventType = "hole_cards_dealt"
	EventPlayerAction   EventType = "player_action"
	EventCommunityCards EventType = "community_cards_dealt"
	EventPotDistributed EventType = "pot_distributed"
	EventRoundEnd       EventType = "round_end"
	EventRoundAbandoned EventType = "round_abandoned"
	EventGameEnd        EventType = "game_end"
)

// Event 引擎对外广播的结构化事件
// Seq is assigned by the engine and strictly increasing per game.
type Event struct {
	Seq      int64     `json:"seq"`
	Type     EventType `json:"type"`
	Round    int       `json:"round,omitempty"`
	Phase    string    `json:"phase,omitempty"`
	PlayerID string    `json:"player_id,omitempty"`
	Action   string    `json:"action,omitempty"`
	Amount   int64     `json:"amount,omitempty"`
	Forced   bool      `json:"forced,omitempty"`
	Cards    []string  `json:"cards,omitempty"`
	Pot      int64     `json:"pot,omitempty"`
	Hand     string    `json:"hand,omitempty"`
	Winner   string    `json:"winner,omitempty"`
}

type EventSink interface {
	Emit(e Event)
}

// SinkFunc adapts a function to an EventSink.
type SinkFunc func(e Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// NopSink 丢弃所有事件
type NopSink struct{}

func (NopSink) Emit(Event) {}
