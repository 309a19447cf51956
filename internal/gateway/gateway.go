// Package gateway speaks JSON over WebSocket to table clients.
package gateway

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"texas-lite/holdem"
	"texas-lite/internal/table"
	"texas-lite/store"
)

type clientMessage struct {
	Type     string `json:"type"` // join | add_bot | start | act
	GameID   string `json:"game_id,omitempty"`
	PlayerID string `json:"player_id,omitempty"`
	Action   string `json:"action,omitempty"`
	Amount   int64  `json:"amount,omitempty"`
	BotKind  string `json:"bot_kind,omitempty"`
}

type serverMessage struct {
	Type     string        `json:"type"` // joined | bot_added | event | error
	GameID   string        `json:"game_id,omitempty"`
	PlayerID string        `json:"player_id,omitempty"`
	Event    *holdem.Event `json:"event,omitempty"`
	Error    string        `json:"error,omitempty"`
}

var actionTypes = map[string]holdem.ActionType{
	"check": holdem.ActionCheck,
	"bet":   holdem.ActionBet,
	"call":  holdem.ActionCall,
	"raise": holdem.ActionRaise,
	"fold":  holdem.ActionFold,
	"quit":  holdem.ActionQuit,
}

type Gateway struct {
	cfg      holdem.Config
	st       store.Store
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*session
}

func New(cfg holdem.Config, st store.Store) *Gateway {
	return &Gateway{
		cfg: cfg,
		st:  st,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		sessions: make(map[string]*session),
	}
}

// session is one table plus the sockets watching it.
type session struct {
	table *table.Table

	mu    sync.Mutex
	conns map[string]*websocket.Conn
}

func (s *session) deliver(target string, e holdem.Event) {
	msg := serverMessage{Type: "event", GameID: s.table.ID, Event: &e}
	s.mu.Lock()
	defer s.mu.Unlock()
	for playerID, conn := range s.conns {
		if target != "" && target != playerID {
			continue
		}
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("[Gateway] write to %s failed: %v", playerID, err)
		}
	}
}

func (s *session) attach(playerID string, conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[playerID] = conn
}

// send serializes handler-side writes against deliver; the websocket
// allows only one concurrent writer per connection.
func (s *session) send(conn *websocket.Conn, msg serverMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[Gateway] write failed: %v", err)
	}
}

func (s *session) detach(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, playerID)
}

// findOrCreate returns the live session for gameID, resumes one from
// a stored snapshot, or opens a fresh table.
func (gw *Gateway) findOrCreate(gameID string) *session {
	gw.mu.Lock()
	defer gw.mu.Unlock()
	if gameID != "" {
		if s, ok := gw.sessions[gameID]; ok {
			return s
		}
		if gw.st != nil {
			snap, err := gw.st.Load(context.Background(), gameID)
			switch {
			case err == nil:
				s := &session{conns: make(map[string]*websocket.Conn)}
				s.table = table.NewFromSnapshot(snap, gw.st, s.deliver)
				gw.sessions[s.table.ID] = s
				log.Printf("[Gateway] resumed game %s at round %d", gameID, snap.Round)
				return s
			case !errors.Is(err, store.ErrNotFound):
				log.Printf("[Gateway] load %s failed: %v", gameID, err)
			}
		}
	}
	cfg := gw.cfg
	cfg.GameID = gameID
	s := &session{conns: make(map[string]*websocket.Conn)}
	s.table = table.New(cfg, gw.st, s.deliver)
	gw.sessions[s.table.ID] = s
	return s
}

// HandleWS upgrades the connection and serves its message loop. The
// first message must be a join.
func (gw *Gateway) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := gw.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Gateway] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var sess *session
	var playerID string
	defer func() {
		if sess != nil {
			sess.detach(playerID)
		}
	}()

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[Gateway] read failed: %v", err)
			}
			return
		}

		switch msg.Type {
		case "join":
			if sess != nil {
				writeError(conn, "already joined")
				continue
			}
			if msg.PlayerID == "" {
				writeError(conn, "player_id required")
				continue
			}
			s := gw.findOrCreate(msg.GameID)
			if err := s.table.JoinHuman(msg.PlayerID); err != nil {
				writeError(conn, err.Error())
				continue
			}
			sess, playerID = s, msg.PlayerID
			sess.attach(playerID, conn)
			sess.send(conn, serverMessage{Type: "joined", GameID: s.table.ID, PlayerID: playerID})

		case "add_bot":
			if sess == nil {
				writeError(conn, "join first")
				continue
			}
			kind := msg.BotKind
			if kind == "" {
				kind = "random"
			}
			botID, err := sess.table.JoinBot(kind)
			if err != nil {
				sess.send(conn, serverMessage{Type: "error", Error: err.Error()})
				continue
			}
			sess.send(conn, serverMessage{Type: "bot_added", GameID: sess.table.ID, PlayerID: botID})

		case "start":
			if sess == nil {
				writeError(conn, "join first")
				continue
			}
			if err := sess.table.Start(context.Background()); err != nil {
				sess.send(conn, serverMessage{Type: "error", Error: err.Error()})
			}

		case "act":
			if sess == nil {
				writeError(conn, "join first")
				continue
			}
			actionType, ok := actionTypes[msg.Action]
			if !ok {
				sess.send(conn, serverMessage{Type: "error", Error: "unknown action " + msg.Action})
				continue
			}
			act := holdem.Action{Type: actionType, Amount: msg.Amount}
			if err := sess.table.SubmitAction(playerID, act); err != nil {
				sess.send(conn, serverMessage{Type: "error", Error: err.Error()})
			}

		default:
			if sess != nil {
				sess.send(conn, serverMessage{Type: "error", Error: "unknown message type " + msg.Type})
			} else {
				writeError(conn, "unknown message type "+msg.Type)
			}
		}
	}
}

func writeError(conn *websocket.Conn, detail string) {
	msg := serverMessage{Type: "error", Error: detail}
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[Gateway] write error failed: %v", err)
	}
}
