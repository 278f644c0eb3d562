package region

import (
	"fmt"
	"math"
	"strconv"

	"github.com/annel0/buildregion/internal/vec"
)

// Units определяет шаг квантования координат: целые или половинные единицы
type Units struct {
	name string
	Atom float64
}

var (
	// Whole - координаты кратны 1.0
	Whole = Units{name: "whole", Atom: 1.0}
	// Half - координаты кратны 0.5
	Half = Units{name: "half", Atom: 0.5}
)

// exactIntegerLimit - начиная с 2^53 каждое float64 уже целое и кратно любому атому
const exactIntegerLimit = 1 << 53

// Clamp округляет значение вниз до ближайшего кратного атому.
// NaN становится нулём, бесконечности насыщаются до ±MaxFloat64.
func (u Units) Clamp(value float64) float64 {
	switch {
	case math.IsNaN(value):
		return 0
	case math.IsInf(value, 1):
		return math.MaxFloat64
	case math.IsInf(value, -1):
		return -math.MaxFloat64
	case math.Abs(value) >= exactIntegerLimit:
		return value
	}
	return math.Floor(value/u.Atom) * u.Atom
}

// ClampAtom работает как Clamp, но не опускается ниже одного атома.
// Используется для величин, которые обязаны быть строго положительными
// (радиусы, высоты).
func (u Units) ClampAtom(value float64) float64 {
	return math.Max(u.Atom, u.Clamp(value))
}

// ClampVec применяет Clamp к каждой компоненте вектора
func (u Units) ClampVec(v vec.Vec3Float) vec.Vec3Float {
	return vec.Vec3Float{X: u.Clamp(v.X), Y: u.Clamp(v.Y), Z: u.Clamp(v.Z)}
}

// ClampAtomVec применяет ClampAtom к каждой компоненте вектора
func (u Units) ClampAtomVec(v vec.Vec3Float) vec.Vec3Float {
	return vec.Vec3Float{X: u.ClampAtom(v.X), Y: u.ClampAtom(v.Y), Z: u.ClampAtom(v.Z)}
}

// IsQuantized проверяет, что значение кратно атому
func (u Units) IsQuantized(value float64) bool {
	return u.Clamp(value) == value
}

// Format форматирует значение: "3" для целых, "3.5" для половинных
func (u Units) Format(value float64) string {
	// +0 убирает отрицательный ноль из вывода
	return strconv.FormatFloat(u.Clamp(value)+0, 'f', -1, 64)
}

// FormatVec форматирует вектор в виде "(x, y, z)"
func (u Units) FormatVec(v vec.Vec3Float) string {
	return fmt.Sprintf("(%s, %s, %s)", u.Format(v.X), u.Format(v.Y), u.Format(v.Z))
}

func (u Units) String() string {
	return u.name
}
