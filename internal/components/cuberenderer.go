package components

import (
	"dicetable/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CubeRenderer draws a box model at the owning object's transform.
type CubeRenderer struct {
	engine.BaseComponent
	Model rl.Model
	Color rl.Color
	Wires bool
}

func NewCubeRenderer(size rl.Vector3, color rl.Color) *CubeRenderer {
	mesh := rl.GenMeshCube(size.X, size.Y, size.Z)
	return &CubeRenderer{
		Model: rl.LoadModelFromMesh(mesh),
		Color: color,
	}
}

func (c *CubeRenderer) Draw() {
	g := c.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	scale := g.Transform.Scale
	scaleMatrix := rl.MatrixScale(scale.X, scale.Y, scale.Z)
	rotMatrix := g.RotationMatrix()
	pos := g.Transform.Position
	transMatrix := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)

	// Combine: scale -> rotate -> translate
	c.Model.Transform = rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)

	rl.DrawModel(c.Model, rl.Vector3Zero(), 1.0, c.Color)
	if c.Wires {
		rl.DrawModelWires(c.Model, rl.Vector3Zero(), 1.0, rl.Black)
	}
}

func (c *CubeRenderer) Unload() {
	rl.UnloadModel(c.Model)
}
