package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/buildregion/internal/vec"
)

func TestFactory_DefaultPrototypeMovesToReference(t *testing.T) {
	f := NewFactory(Default(), false, vec.Vec3Float{X: 10.3, Y: 64, Z: -5.7})

	r, err := f.Convert(TypeSphere)
	require.NoError(t, err)
	s, ok := r.(*Sphere)
	require.True(t, ok)

	assert.Equal(t, vec.Vec3Float{X: 10, Y: 64, Z: -6}, s.Origin())
	assert.True(t, s.IsTrueSphere(), "тонкий квадрат должен стать настоящей сферой")
	assert.Equal(t, 3.0, s.Radius(AxisX))
	assert.Equal(t, AxisX, s.Axis())
}

func TestFactory_ThinSquareToCylinder(t *testing.T) {
	square := NewCuboid(vec.Vec3Float{X: 1, Y: 2, Z: 3}, vec.Vec3Float{X: 4, Y: 0.5, Z: 4}, AxisX)
	f := NewFactory(square, true, vec.Vec3Float{X: 1000})

	r, err := f.Convert(TypeCylinder)
	require.NoError(t, err)
	c := r.(*Cylinder)

	assert.Equal(t, AxisY, c.Axis(), "ось цилиндра - тонкая сторона квадрата")
	assert.Equal(t, 1.0, c.Height())
	assert.Equal(t, 4.0, c.RadiusA())
	assert.Equal(t, 4.0, c.RadiusB())
	assert.Equal(t, vec.Vec3Float{X: 1, Y: 2, Z: 3}, c.Origin(), "регион игрока не переносится в опорную точку")
}

func TestFactory_CubeIsNotThinSquare(t *testing.T) {
	cube := NewCuboid(vec.Zero3, vec.Vec3Float{X: 2, Y: 2, Z: 2}, AxisZ)
	f := NewFactory(cube, true, vec.Zero3)

	r, err := f.Convert(TypeCuboid)
	require.NoError(t, err)
	c := r.(*Cuboid)
	assert.Equal(t, cube.HalfExtents(), c.HalfExtents())
	assert.Equal(t, cube.Origin(), c.Origin())
	assert.Equal(t, AxisZ, c.Axis())
	assert.NotSame(t, cube, c, "результат - новая копия")
}

func TestFactory_CuboidToCylinderUsesPrototypeAxis(t *testing.T) {
	box := NewCuboid(vec.Zero3, vec.Vec3Float{X: 2, Y: 3, Z: 1}, AxisY)
	f := NewFactory(box, true, vec.Zero3)

	r, err := f.Convert(TypeCylinder)
	require.NoError(t, err)
	c := r.(*Cylinder)

	assert.Equal(t, AxisY, c.Axis())
	assert.Equal(t, 6.0, c.Height())
	assert.Equal(t, AxisZ, c.RadiusAxisA())
	assert.Equal(t, 1.0, c.RadiusA())
	assert.Equal(t, 2.0, c.RadiusB())
}

func TestFactory_ChainPreservesBoundingBox(t *testing.T) {
	box := NewCuboid(vec.Vec3Float{X: 5, Y: 5, Z: 5}, vec.Vec3Float{X: 1, Y: 2, Z: 3}, AxisX)
	f := NewFactory(box, true, vec.Zero3)

	r, err := f.Convert(TypeSphere)
	require.NoError(t, err)
	assert.Equal(t, vec.Vec3Float{X: 1, Y: 2, Z: 3}, r.(*Sphere).Radii())
	assert.Same(t, r, f.Region())

	r, err = f.Convert(TypeCuboid)
	require.NoError(t, err)
	assert.Equal(t, box.HalfExtents(), r.(*Cuboid).HalfExtents())
	assert.Equal(t, box.Origin(), r.Origin())
	assert.Same(t, box, f.Original())
}

func TestFactory_PlaneProjectsReference(t *testing.T) {
	plane := NewPlane(vec.Vec3Float{X: 5}, AxisX)
	f := NewFactory(plane, true, vec.Vec3Float{X: 100, Y: 64, Z: 20})

	r, err := f.Convert(TypeCuboid)
	require.NoError(t, err)
	c := r.(*Cuboid)

	assert.Equal(t, vec.Vec3Float{X: 5, Y: 64, Z: 20}, c.Origin(), "опорная точка проецируется на плоскость")
	assert.Equal(t, 1.0, c.Extent(AxisX), "квадрат тонкий вдоль оси плоскости")
	assert.Equal(t, 6.0, c.Extent(AxisY))
	assert.Equal(t, 6.0, c.Extent(AxisZ))
}

func TestFactory_HorizontalPlaneToSphere(t *testing.T) {
	plane := NewPlane(vec.Vec3Float{Y: 70}, AxisY)
	f := NewFactory(plane, true, vec.Vec3Float{X: -3, Y: 10, Z: 8})

	r, err := f.Convert(TypeSphere)
	require.NoError(t, err)
	s := r.(*Sphere)

	assert.Equal(t, AxisY, s.Axis())
	assert.True(t, s.IsTrueSphere())
	assert.Equal(t, 3.0, s.Radius(AxisY))
	assert.Equal(t, vec.Vec3Float{X: -3, Y: 70, Z: 8}, s.Origin())
}

func TestFactory_PlaneKeepsSide(t *testing.T) {
	plane := NewPlaneFacing(vec.Vec3Float{Z: -4}, AxisZ, -1)
	f := NewFactory(plane, true, vec.Zero3)

	r, err := f.Convert(TypePlane)
	require.NoError(t, err)
	p := r.(*Plane)
	assert.Equal(t, -1, p.Side())
	assert.Equal(t, AxisZ, p.Axis())
	assert.Equal(t, -4.0, p.Coord())
}

func TestFactory_NoneResetsChain(t *testing.T) {
	box := NewCuboid(vec.Zero3, vec.Vec3Float{X: 1, Y: 2, Z: 3}, AxisX)
	f := NewFactory(box, true, vec.Zero3)

	_, err := f.Convert(TypeSphere)
	require.NoError(t, err)

	r, err := f.Convert(TypeNone)
	require.NoError(t, err)
	assert.Nil(t, r)
	assert.Nil(t, f.Region())

	// После сброса прототипом снова служит original
	r, err = f.Convert(TypeCuboid)
	require.NoError(t, err)
	assert.Equal(t, box.HalfExtents(), r.(*Cuboid).HalfExtents())
}

func TestFactory_UnsupportedType(t *testing.T) {
	f := NewFactory(Default(), false, vec.Zero3)

	r, err := f.Convert(Type(99))
	assert.ErrorIs(t, err, ErrUnsupportedConversion)
	assert.Nil(t, r)
	assert.Nil(t, f.Region())
}

func TestFactory_NilOriginalPanics(t *testing.T) {
	assert.Panics(t, func() { NewFactory(nil, true, vec.Zero3) })
}
