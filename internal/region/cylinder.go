package region

import (
	"fmt"
	"math"
	"strings"

	"github.com/annel0/buildregion/internal/vec"
)

// Cylinder - эллиптический цилиндр вдоль оси Axis.
// Центр и радиусы кратны 0.5, радиусы >= 0.5. Высота целая и >= 1,
// компонента центра вдоль оси тоже целая.
//
// Вектор halfHeightAndRadii хранит половину высоты вдоль оси, радиус A вдоль
// Axis.Next() и радиус B вдоль Axis.Next().Next().
type Cylinder struct {
	base
	halfHeightAndRadii vec.Vec3Float
}

// NewCylinder создаёт цилиндр
func NewCylinder(origin vec.Vec3Float, axis Axis, height, radiusA, radiusB float64) *Cylinder {
	c := &Cylinder{base: newBase(origin, axis, snapAxisWhole)}
	c.SetHeight(height)
	c.SetRadiusA(radiusA)
	c.SetRadiusB(radiusB)
	return c
}

func (c *Cylinder) Type() Type {
	return TypeCylinder
}

// Height возвращает полную высоту
func (c *Cylinder) Height() float64 {
	return c.axis.Get(c.halfHeightAndRadii) * 2.0
}

// SetHeight задаёт полную высоту
func (c *Cylinder) SetHeight(height float64) {
	c.axis.Set(&c.halfHeightAndRadii, Half.ClampAtom(height*0.5))
}

// RadiusA возвращает радиус вдоль RadiusAxisA
func (c *Cylinder) RadiusA() float64 {
	return c.RadiusAxisA().Get(c.halfHeightAndRadii)
}

// SetRadiusA задаёт радиус вдоль RadiusAxisA
func (c *Cylinder) SetRadiusA(radius float64) {
	c.RadiusAxisA().Set(&c.halfHeightAndRadii, Half.ClampAtom(radius))
}

// RadiusB возвращает радиус вдоль RadiusAxisB
func (c *Cylinder) RadiusB() float64 {
	return c.RadiusAxisB().Get(c.halfHeightAndRadii)
}

// SetRadiusB задаёт радиус вдоль RadiusAxisB
func (c *Cylinder) SetRadiusB(radius float64) {
	c.RadiusAxisB().Set(&c.halfHeightAndRadii, Half.ClampAtom(radius))
}

func (c *Cylinder) RadiusAxisA() Axis {
	return c.axis.Next()
}

func (c *Cylinder) RadiusAxisB() Axis {
	return c.axis.Next().Next()
}

// HalfHeightAndRadii возвращает половину высоты и радиусы в мировых осях
func (c *Cylinder) HalfHeightAndRadii() vec.Vec3Float {
	return c.halfHeightAndRadii
}

func (c *Cylinder) Units(axis Axis) Units {
	mustAxis(axis)
	if axis == c.axis {
		return Whole
	}
	return Half
}

func (c *Cylinder) IsInside(x, y, z float64) bool {
	d := vec.Vec3Float{X: x, Y: y, Z: z}.Sub(c.origin)
	if math.Abs(c.axis.Get(d)) > c.axis.Get(c.halfHeightAndRadii) {
		return false
	}
	na := c.RadiusAxisA().Get(d) / c.RadiusA()
	nb := c.RadiusAxisB().Get(d) / c.RadiusB()
	return na*na+nb*nb <= 1.0
}

func (c *Cylinder) Size() float64 {
	return math.Pi * 2.0 * c.halfHeightAndRadii.X * c.halfHeightAndRadii.Y * c.halfHeightAndRadii.Z
}

func (c *Cylinder) AABB() (lower, upper vec.Vec3Float, ok bool) {
	return c.origin.Sub(c.halfHeightAndRadii), c.origin.Add(c.halfHeightAndRadii), true
}

// CopyUsing при смене оси переставляет радиусы так, что радиус вдоль оси,
// общей для старого и нового сечения, сохраняется.
func (c *Cylinder) CopyUsing(origin vec.Vec3Float, axis Axis) Region {
	mustAxis(axis)
	if axis == c.axis {
		return NewCylinder(origin, axis, c.Height(), c.RadiusA(), c.RadiusB())
	}
	return NewCylinder(origin, axis, c.Height(), c.RadiusB(), c.RadiusA())
}

// Expand вдоль собственной оси меняет высоту: amount делится пополам, так как
// хранится половина высоты. Центр остаётся на месте, обе грани сдвигаются
// симметрично.
func (c *Cylinder) Expand(axis Axis, amount float64) bool {
	mustAxis(axis)
	if axis == c.axis {
		amount *= 0.5
	}
	prev := axis.Get(c.halfHeightAndRadii)
	axis.Set(&c.halfHeightAndRadii, Half.ClampAtom(prev+amount))
	return axis.Get(c.halfHeightAndRadii) != prev
}

func (c *Cylinder) CanAdjustAlongAxis(expand bool, axis Axis) bool {
	return axis.Valid()
}

func (c *Cylinder) String() string {
	var b strings.Builder
	ra, rb := c.RadiusA(), c.RadiusB()
	if ra == rb {
		fmt.Fprintf(&b, "cylinder @ %s radius %s/%s=%s",
			Half.FormatVec(c.origin), c.RadiusAxisA(), c.RadiusAxisB(), Half.Format(ra))
	} else {
		fmt.Fprintf(&b, "elliptic cylinder @ %s radius %s=%s, %s=%s",
			Half.FormatVec(c.origin), c.RadiusAxisA(), Half.Format(ra), c.RadiusAxisB(), Half.Format(rb))
	}
	fmt.Fprintf(&b, " height %s=%s", c.axis, Whole.Format(c.Height()))
	return b.String()
}
