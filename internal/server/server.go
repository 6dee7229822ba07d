// Package server runs the headless table simulation and exposes it over
// websockets: clients send press/release commands and receive table state
// snapshots and throw outcomes.
package server

import (
	"context"
	"log"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"dicetable/internal/dice"
	"dicetable/internal/history"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	tickRate       = 60               // physics steps per second
	fixedStep      = 1.0 / tickRate   // seconds
	snapshotEvery  = 3                // broadcast every Nth tick (20 Hz)
	commandBacklog = 16
)

// Remote players all throw from the same fixed vantage at the west rail.
var throwEye = rl.Vector3{X: -3.5, Y: 1.7, Z: 0}

type Server struct {
	table *dice.Table
	hist  *history.Store // nil disables persistence

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}

	commands chan CommandMessage
}

func New(table *dice.Table, hist *history.Store) *Server {
	s := &Server{
		table: table,
		hist:  hist,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients:  make(map[*client]struct{}),
		commands: make(chan CommandMessage, commandBacklog),
	}

	table.Completed.AddListener(s.onCompleted)
	return s
}

// HandleWS upgrades an HTTP request and serves the client until it
// disconnects.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: upgrade failed: %v", err)
		return
	}

	c := &client{conn: conn}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	log.Printf("server: client connected (%d total)", s.clientCount())

	go s.readLoop(c)
}

func (s *Server) readLoop(c *client) {
	defer func() {
		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
		c.close()
		log.Printf("server: client disconnected (%d total)", s.clientCount())
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		msg, err := ParseCommand(data)
		if err != nil {
			log.Printf("server: %v", err)
			continue
		}
		// Non-blocking: input past the backlog is dropped, not queued forever
		select {
		case s.commands <- msg:
		default:
		}
	}
}

func (s *Server) clientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Run drives the simulation at a fixed timestep until ctx is cancelled.
// All table access happens on this goroutine; websocket readers only feed
// the command channel.
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	tick := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		s.drainCommands()
		s.table.Step(fixedStep)

		tick++
		if tick%snapshotEvery == 0 {
			s.broadcast(s.snapshot())
		}
	}
}

func (s *Server) drainCommands() {
	for {
		select {
		case msg := <-s.commands:
			s.apply(msg)
		default:
			return
		}
	}
}

func (s *Server) apply(msg CommandMessage) {
	switch msg.Type {
	case MessageTypePress:
		if err := s.table.BeginCharge(); err != nil {
			log.Printf("server: charge rejected: %v", err)
		}
	case MessageTypeRelease:
		yawRad := float64(msg.Yaw) * math.Pi / 180
		forward := rl.Vector3{
			X: float32(math.Cos(yawRad)),
			Y: 0,
			Z: float32(math.Sin(yawRad)),
		}
		if err := s.table.Release(throwEye, forward); err != nil {
			log.Printf("server: release rejected: %v", err)
		}
	}
}

func (s *Server) snapshot() StateMessage {
	msg := StateMessage{
		Type:     MessageTypeState,
		Power:    s.table.Power(),
		Charging: s.table.Charging(),
		InFlight: s.table.InFlight(),
	}
	for _, d := range s.table.Dice() {
		pos := d.Body.Transform.Position
		rot := d.Body.Transform.Rotation
		msg.Dice = append(msg.Dice, DieState{
			Index:    d.Index,
			Position: Vec3{X: pos.X, Y: pos.Y, Z: pos.Z},
			Rotation: Vec3{X: rot.X, Y: rot.Y, Z: rot.Z},
			State:    s.table.SettleState(d.Index).String(),
		})
	}
	return msg
}

func (s *Server) onCompleted(o dice.Outcome) {
	log.Printf("server: throw completed: %d + %d (forced=%v)", o.Die0, o.Die1, o.Forced)
	s.broadcast(OutcomeMessage{
		Type:   MessageTypeOutcome,
		Die0:   o.Die0,
		Die1:   o.Die1,
		Forced: o.Forced,
	})

	if s.hist != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.hist.Record(ctx, o); err != nil {
			log.Printf("server: record roll: %v", err)
		}
	}
}

func (s *Server) broadcast(v any) {
	s.mu.Lock()
	targets := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		targets = append(targets, c)
	}
	s.mu.Unlock()

	for _, c := range targets {
		if err := c.writeJSON(v); err != nil {
			s.mu.Lock()
			delete(s.clients, c)
			s.mu.Unlock()
			c.close()
		}
	}
}
