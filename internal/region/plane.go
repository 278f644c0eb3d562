package region

import (
	"fmt"
	"math"

	"github.com/annel0/buildregion/internal/vec"
)

// Plane - бесконечное деление пространства по координате начала вдоль оси.
// Внутри считается полупространство со стороны Side (вместе с самой плоскостью).
// Сторона фиксируется при создании.
type Plane struct {
	base
	side int
}

// NewPlane создаёт плоскость, внутренняя сторона которой - положительная
func NewPlane(origin vec.Vec3Float, axis Axis) *Plane {
	return NewPlaneFacing(origin, axis, 1)
}

// NewPlaneFacing создаёт плоскость с заданной внутренней стороной (+1 или -1)
func NewPlaneFacing(origin vec.Vec3Float, axis Axis, side int) *Plane {
	if side >= 0 {
		side = 1
	} else {
		side = -1
	}
	return &Plane{base: newBase(origin, axis, snapAxisWhole), side: side}
}

func (p *Plane) Type() Type {
	return TypePlane
}

// Side возвращает внутреннюю сторону плоскости: +1 или -1
func (p *Plane) Side() int {
	return p.side
}

// Coord возвращает координату плоскости вдоль её оси
func (p *Plane) Coord() float64 {
	return p.axis.Get(p.origin)
}

func (p *Plane) Units(axis Axis) Units {
	mustAxis(axis)
	if axis == p.axis {
		return Whole
	}
	return Half
}

func (p *Plane) IsInside(x, y, z float64) bool {
	d := p.axis.Get(vec.Vec3Float{X: x, Y: y, Z: z}) - p.Coord()
	return d*float64(p.side) >= 0
}

func (p *Plane) Size() float64 {
	return math.Inf(1)
}

func (p *Plane) AABB() (lower, upper vec.Vec3Float, ok bool) {
	return vec.Vec3Float{}, vec.Vec3Float{}, false
}

func (p *Plane) CopyUsing(origin vec.Vec3Float, axis Axis) Region {
	return NewPlaneFacing(origin, axis, p.side)
}

// Expand всегда возвращает false: у плоскости нет размеров
func (p *Plane) Expand(axis Axis, amount float64) bool {
	mustAxis(axis)
	return false
}

// CanAdjustAlongAxis: плоскость можно сдвигать вдоль любой оси, но не растягивать
func (p *Plane) CanAdjustAlongAxis(expand bool, axis Axis) bool {
	return axis.Valid() && !expand
}

func (p *Plane) String() string {
	side := "+"
	if p.side < 0 {
		side = "-"
	}
	return fmt.Sprintf("plane %s=%s (%s side)", p.axis, Whole.Format(p.Coord()), side)
}
