package server

import (
	"encoding/json"
	"testing"
)

func TestParseCommandPress(t *testing.T) {
	msg, err := ParseCommand([]byte(`{"type":"press"}`))
	if err != nil {
		t.Fatalf("ParseCommand failed: %v", err)
	}
	if msg.Type != MessageTypePress {
		t.Errorf("Expected type press, got %q", msg.Type)
	}
}

func TestParseCommandReleaseWithYaw(t *testing.T) {
	msg, err := ParseCommand([]byte(`{"type":"release","yaw":45.5}`))
	if err != nil {
		t.Fatalf("ParseCommand failed: %v", err)
	}
	if msg.Type != MessageTypeRelease {
		t.Errorf("Expected type release, got %q", msg.Type)
	}
	if msg.Yaw != 45.5 {
		t.Errorf("Expected yaw 45.5, got %v", msg.Yaw)
	}
}

func TestParseCommandRejectsUnknownType(t *testing.T) {
	if _, err := ParseCommand([]byte(`{"type":"teleport"}`)); err == nil {
		t.Error("Unknown command type should be rejected")
	}
	if _, err := ParseCommand([]byte(`{}`)); err == nil {
		t.Error("Missing command type should be rejected")
	}
}

func TestParseCommandRejectsMalformedJSON(t *testing.T) {
	if _, err := ParseCommand([]byte(`{"type":`)); err == nil {
		t.Error("Malformed JSON should be rejected")
	}
}

func TestStateMessageRoundTrip(t *testing.T) {
	msg := StateMessage{
		Type:     MessageTypeState,
		Power:    0.5,
		Charging: true,
		Dice: []DieState{
			{Index: 0, Position: Vec3{X: 1, Y: 0.2, Z: -1}, State: "moving"},
		},
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var got StateMessage
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got.Power != 0.5 || !got.Charging || len(got.Dice) != 1 {
		t.Errorf("Round trip mangled the message: %+v", got)
	}
	if got.Dice[0].State != "moving" {
		t.Errorf("Expected die state moving, got %q", got.Dice[0].State)
	}
}
