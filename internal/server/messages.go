package server

import (
	"encoding/json"
	"fmt"
)

// Message types on the wire. Commands flow client -> server, state and
// outcome messages flow server -> client.
const (
	MessageTypePress   = "press"   // start charging
	MessageTypeRelease = "release" // release the throw
	MessageTypeState   = "state"
	MessageTypeOutcome = "outcome"
)

// CommandMessage is a remote player's input. Yaw orients the throw for
// release commands, in degrees around the vertical axis.
type CommandMessage struct {
	Type string  `json:"type"`
	Yaw  float32 `json:"yaw,omitempty"`
}

// Vec3 is a JSON-friendly vector.
type Vec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// DieState is one die's pose and settle classification.
type DieState struct {
	Index    int    `json:"index"`
	Position Vec3   `json:"position"`
	Rotation Vec3   `json:"rotation"`
	State    string `json:"state"`
}

// StateMessage is the periodic table snapshot sent to every client.
type StateMessage struct {
	Type     string     `json:"type"`
	Power    float32    `json:"power"`
	Charging bool       `json:"charging"`
	InFlight bool       `json:"inFlight"`
	Dice     []DieState `json:"dice,omitempty"`
}

// OutcomeMessage announces a completed throw.
type OutcomeMessage struct {
	Type   string `json:"type"`
	Die0   int    `json:"die0"`
	Die1   int    `json:"die1"`
	Forced bool   `json:"forced"`
}

// ParseCommand decodes a client message and validates its type.
func ParseCommand(data []byte) (CommandMessage, error) {
	var msg CommandMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return CommandMessage{}, fmt.Errorf("parse command: %w", err)
	}
	switch msg.Type {
	case MessageTypePress, MessageTypeRelease:
		return msg, nil
	default:
		return CommandMessage{}, fmt.Errorf("unknown command type %q", msg.Type)
	}
}
