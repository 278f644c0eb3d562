package region

import (
	"fmt"
	"strings"

	"github.com/annel0/buildregion/internal/vec"
)

// Axis определяет одну из трёх осей мира
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Axes перечисляет все оси в циклическом порядке
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// Next возвращает следующую ось в цикле X -> Y -> Z -> X.
// Используется, чтобы однозначно выбрать "две другие" оси.
func (a Axis) Next() Axis {
	switch a {
	case AxisX:
		return AxisY
	case AxisY:
		return AxisZ
	case AxisZ:
		return AxisX
	}
	panic(fmt.Sprintf("region: invalid axis %d", a))
}

// Valid проверяет, что значение является одной из трёх осей
func (a Axis) Valid() bool {
	return a <= AxisZ
}

// String возвращает строковое представление оси
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// ParseAxis разбирает имя оси ("x", "Y", ...)
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("неизвестная ось %q", s)
}

// Get возвращает компоненту вектора вдоль оси
func (a Axis) Get(v vec.Vec3Float) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	panic(fmt.Sprintf("region: invalid axis %d", a))
}

// Set устанавливает компоненту вектора вдоль оси
func (a Axis) Set(v *vec.Vec3Float, value float64) {
	switch a {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	case AxisZ:
		v.Z = value
	default:
		panic(fmt.Sprintf("region: invalid axis %d", a))
	}
}

// Add прибавляет amount к компоненте вектора вдоль оси и возвращает новое значение
func (a Axis) Add(v *vec.Vec3Float, amount float64) float64 {
	value := a.Get(*v) + amount
	a.Set(v, value)
	return value
}
