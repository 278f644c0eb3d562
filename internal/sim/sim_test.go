package sim

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/buildregion/internal/config"
	"github.com/annel0/buildregion/internal/logging"
	"github.com/annel0/buildregion/internal/region"
	"github.com/annel0/buildregion/internal/vec"
	"github.com/annel0/buildregion/internal/world"
	"github.com/annel0/buildregion/internal/world/block"
)

func TestMain(m *testing.M) {
	logging.Configure(logging.Options{ConsoleLevel: logging.ERROR, DisableFile: true})
	os.Exit(m.Run())
}

func newSimulator(t *testing.T) (*Simulator, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{World: config.WorldConfig{Seed: 7, Radius: 4}}
	var out bytes.Buffer
	s, err := New(cfg, &out)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, &out
}

const scenario = `
name: basic
start: {x: 0.5, y: 100, z: 0.5}
steps:
  - op: set
    region: {type: cuboid, origin: {x: 0, y: 100, z: 0}, size: {x: 4, y: 4, z: 4}}
  - op: hold
    item: planks
  - op: place
    block: {x: 1, y: 100, z: 0}
    face: 1
    expect: allow
  - op: place
    block: {x: 10, y: 100, z: 0}
    face: 1
    expect: deny
  - op: mode
    mode: outside
  - op: place
    block: {x: 10, y: 100, z: 0}
    face: 1
    expect: allow
  - op: destroy
    block: {x: 1, y: 100, z: 0}
    expect: deny
  - op: look
    yaw: -45
  - op: set
    expect: error
  - op: look
    yaw: -90
  - op: expand
    axis: y
    amount: 1
    expect: ok
  - op: move
    pos: {x: 200, y: 100, z: 0}
  - op: shift
    axis: x
    amount: 1
    expect: error
`

func TestRun_Scenario(t *testing.T) {
	s, out := newSimulator(t)
	s.World.SetBlock(vec.Vec3{X: 1, Y: 100}, world.NewBlock(block.StoneBlockID))
	s.World.SetBlock(vec.Vec3{X: 10, Y: 100}, world.NewBlock(block.StoneBlockID))

	script, err := ParseScript([]byte(scenario))
	require.NoError(t, err)

	results, err := s.Run(context.Background(), script)
	require.NoError(t, err, out.String())
	require.Len(t, results, len(script.Steps))
	assert.Empty(t, Mismatches(results))

	assert.Equal(t, block.PlanksBlockID, s.World.GetBlock(vec.Vec3{X: 1, Y: 101}).ID)
	assert.Equal(t, block.PlanksBlockID, s.World.GetBlock(vec.Vec3{X: 10, Y: 101}).ID)
	assert.Equal(t, block.StoneBlockID, s.World.GetBlock(vec.Vec3{X: 1, Y: 100}).ID, "разрушение запрещено")
	assert.Nil(t, s.Controller.ActiveRegion(), "регион снят при удалении игрока")

	assert.Contains(t, out.String(), "misclick blocked by build region")
	assert.Contains(t, out.String(), "ambiguous direction")
	assert.Contains(t, out.String(), "because you are beyond 50 blocks away")

	require.NoError(t, s.Close())
	assert.Greater(t, s.Bus.Metrics().Published, uint64(0))
}

func TestRun_ExpectationMismatch(t *testing.T) {
	s, out := newSimulator(t)

	script, err := ParseScript([]byte(`
start: {x: 0, y: 100, z: 0}
steps:
  - op: clear
    expect: error
`))
	require.NoError(t, err)

	results, err := s.Run(context.Background(), script)
	assert.ErrorIs(t, err, ErrExpectation)
	require.Len(t, Mismatches(results), 1)
	assert.Equal(t, ExpectOK, results[0].Outcome)
	assert.Contains(t, out.String(), "❌")
}

func TestRun_SlabMergeAndConvert(t *testing.T) {
	s, _ := newSimulator(t)
	slab := vec.Vec3{X: 0, Y: 100, Z: 0}
	s.World.SetBlock(slab, world.Block{ID: block.StoneSlabBlockID})

	script, err := ParseScript([]byte(`
start: {x: 0, y: 101, z: 0}
steps:
  - op: convert
    type: sphere
  - op: hold
    item: stone_slab
  - op: place
    block: {x: 0, y: 100, z: 0}
    face: 1
    expect: allow
  - op: convert
    type: bogus
    expect: error
`))
	require.NoError(t, err)

	_, err = s.Run(context.Background(), script)
	require.NoError(t, err)

	assert.Equal(t, block.DoubleStoneSlabBlockID, s.World.GetBlock(slab).ID)
	sphere, ok := s.Controller.ActiveRegion().(*region.Sphere)
	require.True(t, ok)
	assert.True(t, sphere.IsTrueSphere())
}

func TestRun_PlaceWithoutCheckKeepsClickedBlock(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"без региона", `
start: {x: 3.5, y: 202, z: 3.5}
steps:
  - op: hold
    item: planks
  - op: place
    block: {x: 3, y: 200, z: 3}
    face: 1
    expect: allow
`},
		{"режим отображения", `
start: {x: 3.5, y: 202, z: 3.5}
steps:
  - op: set
    region: {type: cuboid, origin: {x: 50, y: 100, z: 50}, size: {x: 2, y: 2, z: 2}}
  - op: mode
    mode: display
  - op: hold
    item: planks
  - op: place
    block: {x: 3, y: 200, z: 3}
    face: 1
    expect: allow
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newSimulator(t)
			clicked := vec.Vec3{X: 3, Y: 200, Z: 3}
			s.World.SetBlock(clicked, world.NewBlock(block.StoneBlockID))

			script, err := ParseScript([]byte(tt.script))
			require.NoError(t, err)

			_, err = s.Run(context.Background(), script)
			require.NoError(t, err, out.String())

			assert.Equal(t, block.StoneBlockID, s.World.GetBlock(clicked).ID, "блок под курсором не затирается")
			assert.Equal(t, block.PlanksBlockID, s.World.GetBlock(vec.Vec3{X: 3, Y: 201, Z: 3}).ID)
		})
	}
}

func TestSurfaceSpawn(t *testing.T) {
	s, _ := newSimulator(t)
	spawn := s.SurfaceSpawn()

	below := vec.Vec3Float{X: spawn.X, Y: spawn.Y - 1, Z: spawn.Z}.Floor()
	assert.False(t, s.World.GetBlock(below).IsAir())
}

func TestParseScript_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"неизвестная операция", "steps: [{op: jump}]"},
		{"move без pos", "steps: [{op: move}]"},
		{"place без block", "steps: [{op: place}]"},
		{"expand без оси", "steps: [{op: expand, amount: 1}]"},
		{"неизвестное ожидание", "steps: [{op: look, expect: maybe}]"},
		{"неизвестный тип региона", "steps: [{op: set, region: {type: torus}}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}

	script, err := ParseScript([]byte("steps: [{op: ' LOOK ', yaw: 90}]"))
	require.NoError(t, err)
	assert.Equal(t, OpLook, script.Steps[0].Op)
}

func TestRegionShape_Build(t *testing.T) {
	shape := RegionShape{Type: region.TypeCylinder, Origin: vec.Vec3Float{Y: 64}, Size: vec.Vec3Float{X: 4, Y: 3, Z: 6}, Axis: "y"}
	r, err := shape.Build()
	require.NoError(t, err)
	c := r.(*region.Cylinder)
	assert.Equal(t, 3.0, c.Height())
	assert.Equal(t, 3.0, c.RadiusA(), "радиус вдоль z")
	assert.Equal(t, 2.0, c.RadiusB(), "радиус вдоль x")

	shape = RegionShape{Type: region.TypePlane, Origin: vec.Vec3Float{X: 3}, Side: -1}
	r, err = shape.Build()
	require.NoError(t, err)
	assert.Equal(t, -1, r.(*region.Plane).Side())

	_, err = (&RegionShape{Type: region.TypeNone}).Build()
	assert.Error(t, err)

	_, err = (&RegionShape{Type: region.TypeCuboid, Axis: "w"}).Build()
	assert.Error(t, err)
}

func TestLoadScript_Example(t *testing.T) {
	script, err := LoadScript("../../configs/scenario.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, script.Steps)
}
