// Package game is the windowed raylib client: it renders the table, feeds
// player input into the charge/throw lifecycle, and shows the power meter
// and the roll result.
package game

import (
	"context"
	"fmt"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"dicetable/internal/components"
	"dicetable/internal/config"
	"dicetable/internal/dice"
	"dicetable/internal/engine"
	"dicetable/internal/history"
)

// physicsStep is the fixed simulation timestep. Frame time is accumulated
// and consumed in steps of this size so the simulation is independent of
// the render rate.
const physicsStep float32 = 1.0 / 120.0

type Game struct {
	cfg   config.Config
	table *dice.Table
	hist  *history.Store // nil disables persistence

	scene      *engine.Scene
	player     *engine.GameObject
	controller *components.ThrowController
	powerBar   *components.PowerBar

	accumulator float32
}

func New(cfg config.Config, hist *history.Store) *Game {
	g := &Game{
		cfg:   cfg,
		table: dice.NewTable(cfg.Table()),
		hist:  hist,
	}
	g.table.Completed.AddListener(g.onCompleted)
	return g
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "Dice Table")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()

	g.createScene()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}

	g.unloadRenderers()
}

func (g *Game) createScene() {
	g.scene = engine.NewScene("Table")

	g.player = engine.NewGameObject("Player")
	g.player.Transform.Position = rl.Vector3{X: -3.4, Y: 0, Z: 0}

	g.controller = components.NewThrowController()
	g.player.AddComponent(g.controller)
	g.player.AddComponent(components.NewCamera())
	g.powerBar = components.NewPowerBar()
	g.player.AddComponent(g.powerBar)
	g.scene.AddGameObject(g.player)

	for _, obj := range g.table.World().Statics() {
		g.scene.AddGameObject(obj)
	}

	felt := rl.NewColor(20, 20, 20, 255)
	for _, obj := range g.scene.FindByTag("table") {
		g.attachRenderer(obj, felt, false)
	}
	cushion := rl.NewColor(255, 83, 0, 255)
	for _, obj := range g.scene.FindByTag("wall") {
		g.attachRenderer(obj, cushion, false)
	}

	g.scene.Start()
}

func (g *Game) attachRenderer(obj *engine.GameObject, color rl.Color, wires bool) {
	col := engine.GetComponent[*components.BoxCollider](obj)
	if col == nil {
		return
	}
	r := components.NewCubeRenderer(col.Size, color)
	r.Wires = wires
	obj.AddComponent(r)
}

// attachDieRenderers gives freshly spawned dice a renderer. Dice are
// recycled every throw, so this runs each frame and only touches bodies
// that don't have one yet.
func (g *Game) attachDieRenderers() {
	for _, d := range g.table.Dice() {
		if engine.GetComponent[*components.CubeRenderer](d.Body) == nil {
			g.attachRenderer(d.Body, rl.RayWhite, true)
		}
	}
}

func (g *Game) eye() rl.Vector3 {
	eye := g.player.Transform.Position
	eye.Y += g.controller.GetEyeHeight()
	return eye
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()

	g.scene.Update(deltaTime)

	if rl.IsKeyPressed(rl.KeySpace) {
		if err := g.table.BeginCharge(); err != nil {
			log.Printf("game: charge rejected: %v", err)
		}
	}
	if rl.IsKeyReleased(rl.KeySpace) && g.table.Charging() {
		if err := g.table.Release(g.eye(), g.controller.Forward()); err != nil {
			log.Printf("game: release rejected: %v", err)
		}
	}

	// Fixed-timestep stepping
	g.accumulator += deltaTime
	for g.accumulator >= physicsStep {
		g.table.Step(physicsStep)
		g.accumulator -= physicsStep
	}

	g.attachDieRenderers()
}

func (g *Game) Draw() {
	cam := engine.GetComponent[*components.Camera](g.player)
	if cam == nil {
		return
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(cam.GetRaylibCamera())
	for _, obj := range g.scene.GameObjects {
		if r := engine.GetComponent[*components.CubeRenderer](obj); r != nil {
			r.Draw()
		}
	}
	for _, d := range g.table.Dice() {
		if r := engine.GetComponent[*components.CubeRenderer](d.Body); r != nil {
			r.Draw()
		}
	}
	rl.EndMode3D()

	g.drawHUD()
	rl.EndDrawing()
}

func (g *Game) drawHUD() {
	rl.DrawText("Hold SPACE to charge, release to throw", 10, 10, 20, rl.DarkGray)
	rl.DrawFPS(10, 35)

	screenH := float32(rl.GetScreenHeight())
	g.powerBar.SetPercent(g.table.Power())
	g.powerBar.Draw(rl.NewRectangle(20, screenH-40, 200, 20))

	switch {
	case g.table.InFlight():
		rl.DrawText("Rolling...", 20, int32(screenH)-70, 20, rl.Yellow)
	case g.table.LastOutcome() != nil:
		o := g.table.LastOutcome()
		text := fmt.Sprintf("Roll: %d + %d = %d", o.Die0, o.Die1, o.Die0+o.Die1)
		if o.Forced {
			text += " (forced)"
		}
		rl.DrawText(text, 20, int32(screenH)-70, 20, rl.Lime)
	}
}

func (g *Game) onCompleted(o dice.Outcome) {
	log.Printf("game: throw completed: %d + %d (forced=%v)", o.Die0, o.Die1, o.Forced)
	if g.hist == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := g.hist.Record(ctx, o); err != nil {
		log.Printf("game: record roll: %v", err)
	}
}

func (g *Game) unloadRenderers() {
	unload := func(obj *engine.GameObject) {
		if r := engine.GetComponent[*components.CubeRenderer](obj); r != nil {
			r.Unload()
		}
	}
	for _, obj := range g.scene.GameObjects {
		unload(obj)
	}
	for _, d := range g.table.Dice() {
		unload(d.Body)
	}
}
