package region

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/annel0/buildregion/internal/vec"
)

// ErrUnsupportedConversion возвращается фабрикой для неизвестного типа региона
var ErrUnsupportedConversion = errors.New("unsupported region conversion")

// Type определяет вид региона
type Type uint8

const (
	TypeNone Type = iota // Нет активного региона
	TypePlane
	TypeCuboid
	TypeCylinder
	TypeSphere
)

// String возвращает строковое представление типа региона
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypePlane:
		return "plane"
	case TypeCuboid:
		return "cuboid"
	case TypeCylinder:
		return "cylinder"
	case TypeSphere:
		return "sphere"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// ParseType разбирает имя типа региона
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return TypeNone, nil
	case "plane":
		return TypePlane, nil
	case "cuboid", "box":
		return TypeCuboid, nil
	case "cylinder":
		return TypeCylinder, nil
	case "sphere":
		return TypeSphere, nil
	}
	return TypeNone, fmt.Errorf("неизвестный тип региона %q", s)
}

// UnmarshalText позволяет задавать тип региона строкой в YAML
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Region - геометрическая область в мире.
// Набор реализаций закрыт: Plane, Cuboid, Cylinder, Sphere.
type Region interface {
	Type() Type

	// Origin возвращает копию начала координат региона
	Origin() vec.Vec3Float
	OriginCoord(axis Axis) float64
	SetOrigin(origin vec.Vec3Float)
	SetOriginCoord(axis Axis, value float64)
	ShiftOriginCoord(axis Axis, amount float64)

	// Axis - основная ось ориентации (используется не всеми формами)
	Axis() Axis

	// Units возвращает шаг квантования для перемещения/размера вдоль оси
	Units(axis Axis) Units

	// IsInside возвращает true, если точка (x,y,z) лежит внутри региона.
	// Граница считается внутренней.
	IsInside(x, y, z float64) bool

	// Size возвращает объём региона (+Inf для бесконечных)
	Size() float64

	// AABB возвращает ограничивающий параллелепипед.
	// ok == false, если регион бесконечен.
	AABB() (lower, upper vec.Vec3Float, ok bool)

	// CopyUsing делает глубокую копию с другим началом координат и осью
	CopyUsing(origin vec.Vec3Float, axis Axis) Region

	// Expand увеличивает (или уменьшает при amount < 0) размер вдоль оси.
	// Возвращает true, если сохранённое значение действительно изменилось.
	Expand(axis Axis, amount float64) bool

	// CanAdjustAlongAxis возвращает false только для осей, вдоль которых
	// регион бесконечен.
	CanAdjustAlongAxis(expand bool, axis Axis) bool

	String() string

	sealed()
}

// DefaultSize - полные размеры прототипа по умолчанию: тонкий квадрат 1x6x6
var DefaultSize = vec.Vec3Float{X: 1, Y: 6, Z: 6}

// Default возвращает прототип региона по умолчанию.
// Каждый вызов создаёт новый экземпляр, поэтому общий прототип нельзя испортить.
func Default() Region {
	return NewDefault(DefaultSize)
}

// NewDefault создаёт прототип - кубоид с началом в нуле и заданными полными размерами
func NewDefault(size vec.Vec3Float) Region {
	return NewCuboid(vec.Zero3, size.Mul(0.5), AxisX)
}

// IsInsideBlock проверяет координаты блока
func IsInsideBlock(r Region, p vec.Vec3) bool {
	return r.IsInside(float64(p.X), float64(p.Y), float64(p.Z))
}

// Distance возвращает расстояние от точки до региона (0, если точка внутри AABB).
// Для плоскости учитывается только удаление вдоль её оси.
func Distance(r Region, p vec.Vec3Float) float64 {
	lower, upper, ok := r.AABB()
	if !ok {
		return math.Abs(r.Axis().Get(p) - r.OriginCoord(r.Axis()))
	}
	var sum float64
	for _, a := range Axes {
		v := a.Get(p)
		var d float64
		if lo := a.Get(lower); v < lo {
			d = lo - v
		} else if hi := a.Get(upper); v > hi {
			d = v - hi
		}
		sum += d * d
	}
	return math.Sqrt(sum)
}

// base содержит общие для всех форм поля
type base struct {
	origin vec.Vec3Float
	axis   Axis
	// snap приводит начало координат к допустимым единицам формы
	snap func(origin *vec.Vec3Float, axis Axis)
}

func newBase(origin vec.Vec3Float, axis Axis, snap func(*vec.Vec3Float, Axis)) base {
	mustAxis(axis)
	b := base{origin: origin, axis: axis, snap: snap}
	b.snap(&b.origin, b.axis)
	return b
}

func (b *base) sealed() {}

func (b *base) Origin() vec.Vec3Float {
	return b.origin
}

func (b *base) Axis() Axis {
	return b.axis
}

func (b *base) OriginCoord(axis Axis) float64 {
	mustAxis(axis)
	return axis.Get(b.origin)
}

func (b *base) SetOrigin(origin vec.Vec3Float) {
	b.origin = origin
	b.snap(&b.origin, b.axis)
}

func (b *base) SetOriginCoord(axis Axis, value float64) {
	mustAxis(axis)
	axis.Set(&b.origin, value)
	b.snap(&b.origin, b.axis)
}

func (b *base) ShiftOriginCoord(axis Axis, amount float64) {
	b.SetOriginCoord(axis, b.OriginCoord(axis)+amount)
}

// snapHalf: все компоненты кратны 0.5
func snapHalf(origin *vec.Vec3Float, _ Axis) {
	*origin = Half.ClampVec(*origin)
}

// snapAxisWhole: компоненты кратны 0.5, а компонента вдоль оси - целая
func snapAxisWhole(origin *vec.Vec3Float, axis Axis) {
	*origin = Half.ClampVec(*origin)
	axis.Set(origin, Whole.Clamp(axis.Get(*origin)))
}

// swapAxes меняет местами компоненты вектора вдоль двух осей
func swapAxes(v vec.Vec3Float, a, b Axis) vec.Vec3Float {
	va, vb := a.Get(v), b.Get(v)
	a.Set(&v, vb)
	b.Set(&v, va)
	return v
}

func mustAxis(a Axis) {
	if !a.Valid() {
		panic(fmt.Sprintf("region: invalid axis %d", a))
	}
}
