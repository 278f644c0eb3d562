package region

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/annel0/buildregion/internal/vec"
)

// Direction - одно из шести направлений: ось и знак (+1 или -1)
type Direction struct {
	Axis Axis
	Sign int
}

// Шесть канонических направлений
var (
	Down  = Direction{Axis: AxisY, Sign: -1}
	Up    = Direction{Axis: AxisY, Sign: 1}
	North = Direction{Axis: AxisZ, Sign: -1}
	South = Direction{Axis: AxisZ, Sign: 1}
	West  = Direction{Axis: AxisX, Sign: -1}
	East  = Direction{Axis: AxisX, Sign: 1}
)

// Порядок совпадает с идентификаторами граней, которые присылает движок:
// 0=низ, 1=верх, 2=север, 3=юг, 4=запад, 5=восток.
var faces = [6]Direction{Down, Up, North, South, West, East}

// ambiguityMargin - насколько (в градусах) взгляд должен отклониться от
// диагонали между двумя осями, чтобы направление считалось однозначным.
const ambiguityMargin = 5.0

// dominanceRatio: вторая по величине компонента взгляда должна быть меньше
// доминирующей, умноженной на это значение.
var dominanceRatio = math.Tan(mgl64.DegToRad(45.0 - ambiguityMargin))

// ValidFace проверяет идентификатор грани
func ValidFace(face int) bool {
	return face >= 0 && face < len(faces)
}

// FromFace возвращает направление по идентификатору грани 0..5.
// Значение вне диапазона - ошибка вызывающего кода.
func FromFace(face int) Direction {
	if !ValidFace(face) {
		panic(fmt.Sprintf("region: invalid face id %d", face))
	}
	return faces[face]
}

// Face возвращает идентификатор грани для направления
func (d Direction) Face() int {
	for i, f := range faces {
		if f == d {
			return i
		}
	}
	panic(fmt.Sprintf("region: invalid direction %+v", d))
}

// LookVector вычисляет единичный вектор взгляда по углам yaw/pitch (в градусах).
// yaw=0 смотрит на юг (+Z), yaw=-90 на восток (+X); pitch=90 смотрит вниз.
func LookVector(yaw, pitch float64) mgl64.Vec3 {
	yawRad := mgl64.DegToRad(yaw)
	pitchRad := mgl64.DegToRad(pitch)
	cosPitch := math.Cos(pitchRad)
	return mgl64.Vec3{
		-math.Sin(yawRad) * cosPitch,
		-math.Sin(pitchRad),
		math.Cos(yawRad) * cosPitch,
	}
}

// FromYawPitch определяет направление, в котором смотрит игрок.
// Возвращает false, если ни одна ось явно не доминирует (взгляд около
// диагонали 45°) - это ожидаемый исход, а не ошибка.
func FromYawPitch(yaw, pitch float64) (Direction, bool) {
	look := LookVector(yaw, pitch)

	best, second := -1, -1
	for i := 0; i < 3; i++ {
		switch {
		case best < 0 || mgl64.Abs(look[i]) > mgl64.Abs(look[best]):
			second = best
			best = i
		case second < 0 || mgl64.Abs(look[i]) > mgl64.Abs(look[second]):
			second = i
		}
	}

	largest := mgl64.Abs(look[best])
	if largest == 0 || mgl64.Abs(look[second]) >= largest*dominanceRatio {
		return Direction{}, false
	}

	sign := 1
	if look[best] < 0 {
		sign = -1
	}
	return Direction{Axis: Axes[best], Sign: sign}, true
}

// Neighbor возвращает соседний блок на расстоянии одной единицы в этом направлении
func (d Direction) Neighbor(p vec.Vec3) vec.Vec3 {
	switch d.Axis {
	case AxisX:
		p.X += d.Sign
	case AxisY:
		p.Y += d.Sign
	case AxisZ:
		p.Z += d.Sign
	default:
		panic(fmt.Sprintf("region: invalid axis %d", d.Axis))
	}
	return p
}

// Offset сдвигает точку на distance в этом направлении
func (d Direction) Offset(p vec.Vec3Float, distance float64) vec.Vec3Float {
	d.Axis.Add(&p, float64(d.Sign)*distance)
	return p
}

// Opposite возвращает противоположное направление
func (d Direction) Opposite() Direction {
	return Direction{Axis: d.Axis, Sign: -d.Sign}
}

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	}
	return fmt.Sprintf("%s%+d", d.Axis, d.Sign)
}
