package region

import (
	"fmt"
	"math"

	"github.com/annel0/buildregion/internal/vec"
)

// Cuboid - прямоугольный параллелепипед, заданный центром и половинами
// размеров. Центр и половины размеров кратны 0.5, половины размеров >= 0.5.
type Cuboid struct {
	base
	halfExtents vec.Vec3Float
}

// NewCuboid создаёт кубоид по центру и половинам размеров
func NewCuboid(origin, halfExtents vec.Vec3Float, axis Axis) *Cuboid {
	c := &Cuboid{base: newBase(origin, axis, snapHalf)}
	c.halfExtents = Half.ClampAtomVec(halfExtents)
	return c
}

// NewCuboidFromBounds создаёт кубоид по двум противоположным углам
func NewCuboidFromBounds(lower, upper vec.Vec3Float, axis Axis) *Cuboid {
	origin := lower.Add(upper).Mul(0.5)
	half := upper.Sub(lower).Mul(0.5)
	half = vec.Vec3Float{X: math.Abs(half.X), Y: math.Abs(half.Y), Z: math.Abs(half.Z)}
	return NewCuboid(origin, half, axis)
}

func (c *Cuboid) Type() Type {
	return TypeCuboid
}

// HalfExtents возвращает половины размеров
func (c *Cuboid) HalfExtents() vec.Vec3Float {
	return c.halfExtents
}

// Extent возвращает полный размер вдоль оси
func (c *Cuboid) Extent(axis Axis) float64 {
	mustAxis(axis)
	return axis.Get(c.halfExtents) * 2.0
}

// SetExtent задаёт полный размер вдоль оси
func (c *Cuboid) SetExtent(axis Axis, size float64) {
	mustAxis(axis)
	axis.Set(&c.halfExtents, Half.ClampAtom(size*0.5))
}

func (c *Cuboid) Units(axis Axis) Units {
	mustAxis(axis)
	return Half
}

func (c *Cuboid) IsInside(x, y, z float64) bool {
	return math.Abs(x-c.origin.X) <= c.halfExtents.X &&
		math.Abs(y-c.origin.Y) <= c.halfExtents.Y &&
		math.Abs(z-c.origin.Z) <= c.halfExtents.Z
}

func (c *Cuboid) Size() float64 {
	return c.Extent(AxisX) * c.Extent(AxisY) * c.Extent(AxisZ)
}

func (c *Cuboid) AABB() (lower, upper vec.Vec3Float, ok bool) {
	return c.origin.Sub(c.halfExtents), c.origin.Add(c.halfExtents), true
}

func (c *Cuboid) CopyUsing(origin vec.Vec3Float, axis Axis) Region {
	mustAxis(axis)
	half := c.halfExtents
	if axis != c.axis {
		half = swapAxes(half, c.axis, axis)
	}
	return NewCuboid(origin, half, axis)
}

func (c *Cuboid) Expand(axis Axis, amount float64) bool {
	mustAxis(axis)
	prev := axis.Get(c.halfExtents)
	axis.Set(&c.halfExtents, Half.ClampAtom(prev+amount))
	return axis.Get(c.halfExtents) != prev
}

func (c *Cuboid) CanAdjustAlongAxis(expand bool, axis Axis) bool {
	return axis.Valid()
}

func (c *Cuboid) String() string {
	return fmt.Sprintf("cuboid @ %s size %s×%s×%s",
		Half.FormatVec(c.origin),
		Half.Format(c.Extent(AxisX)),
		Half.Format(c.Extent(AxisY)),
		Half.Format(c.Extent(AxisZ)))
}
