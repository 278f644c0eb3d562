package region

import (
	"fmt"
	"math"

	"github.com/annel0/buildregion/internal/vec"
)

// Sphere - эллипсоид с радиусами вдоль трёх осей мира.
// Центр и радиусы кратны 0.5, радиусы >= 0.5.
type Sphere struct {
	base
	radii vec.Vec3Float
}

// NewSphere создаёт сферу (эллипсоид)
func NewSphere(origin, radii vec.Vec3Float, axis Axis) *Sphere {
	s := &Sphere{base: newBase(origin, axis, snapHalf)}
	s.radii = Half.ClampAtomVec(radii)
	return s
}

func (s *Sphere) Type() Type {
	return TypeSphere
}

// Radii возвращает радиусы вдоль осей мира
func (s *Sphere) Radii() vec.Vec3Float {
	return s.radii
}

// Radius возвращает радиус вдоль оси
func (s *Sphere) Radius(axis Axis) float64 {
	mustAxis(axis)
	return axis.Get(s.radii)
}

// SetRadius задаёт радиус вдоль оси
func (s *Sphere) SetRadius(axis Axis, radius float64) {
	mustAxis(axis)
	axis.Set(&s.radii, Half.ClampAtom(radius))
}

// IsTrueSphere возвращает true, если все три радиуса равны
func (s *Sphere) IsTrueSphere() bool {
	return s.radii.X == s.radii.Y && s.radii.Y == s.radii.Z
}

func (s *Sphere) Units(axis Axis) Units {
	mustAxis(axis)
	return Half
}

func (s *Sphere) IsInside(x, y, z float64) bool {
	nx := (x - s.origin.X) / s.radii.X
	ny := (y - s.origin.Y) / s.radii.Y
	nz := (z - s.origin.Z) / s.radii.Z
	return nx*nx+ny*ny+nz*nz <= 1.0
}

func (s *Sphere) Size() float64 {
	return 4.0 / 3.0 * math.Pi * s.radii.X * s.radii.Y * s.radii.Z
}

func (s *Sphere) AABB() (lower, upper vec.Vec3Float, ok bool) {
	return s.origin.Sub(s.radii), s.origin.Add(s.radii), true
}

func (s *Sphere) CopyUsing(origin vec.Vec3Float, axis Axis) Region {
	mustAxis(axis)
	radii := s.radii
	if axis != s.axis {
		radii = swapAxes(radii, s.axis, axis)
	}
	return NewSphere(origin, radii, axis)
}

func (s *Sphere) Expand(axis Axis, amount float64) bool {
	mustAxis(axis)
	prev := axis.Get(s.radii)
	axis.Set(&s.radii, Half.ClampAtom(prev+amount))
	return axis.Get(s.radii) != prev
}

func (s *Sphere) CanAdjustAlongAxis(expand bool, axis Axis) bool {
	return axis.Valid()
}

func (s *Sphere) String() string {
	if s.IsTrueSphere() {
		return fmt.Sprintf("sphere @ %s radius %s", Half.FormatVec(s.origin), Half.Format(s.radii.X))
	}
	return fmt.Sprintf("ellipsoid @ %s radii x=%s, y=%s, z=%s",
		Half.FormatVec(s.origin), Half.Format(s.radii.X), Half.Format(s.radii.Y), Half.Format(s.radii.Z))
}
