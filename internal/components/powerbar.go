package components

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"dicetable/internal/engine"
)

// PowerBar displays the throw charge level as a fill bar.
type PowerBar struct {
	engine.BaseComponent

	// Current fill in [0,1]
	Value float32

	// ShowLabel appends the percentage as text on the right side
	ShowLabel bool
}

func NewPowerBar() *PowerBar {
	return &PowerBar{ShowLabel: true}
}

// SetPercent clamps and stores the fill level.
func (pb *PowerBar) SetPercent(percent float32) {
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}
	pb.Value = percent
}

// GetPercent returns the fill level in [0,1].
func (pb *PowerBar) GetPercent() float32 {
	return pb.Value
}

// Draw renders the bar into the given screen rectangle.
func (pb *PowerBar) Draw(rect rl.Rectangle) {
	label := ""
	if pb.ShowLabel {
		label = fmt.Sprintf("%3.0f%%", pb.Value*100)
	}
	gui.ProgressBar(rect, "", label, pb.Value, 0, 1)
}
