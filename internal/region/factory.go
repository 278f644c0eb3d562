package region

import (
	"fmt"

	"github.com/annel0/buildregion/internal/vec"
)

// Factory преобразует регионы из одного типа в другой, сохраняя
// ограничивающий объём исходной формы.
//
// Первое преобразование берёт за основу original, каждое следующее -
// результат предыдущего. Так цепочка cuboid -> sphere -> cuboid не теряет
// размеры на промежуточных шагах.
type Factory struct {
	original    Region
	userDefined bool
	reference   vec.Vec3Float
	region      Region
}

// NewFactory создаёт фабрику.
// userDefined == false означает, что original - прототип по умолчанию, а не
// регион игрока. reference - опорная точка (обычно позиция игрока).
func NewFactory(original Region, userDefined bool, reference vec.Vec3Float) *Factory {
	if original == nil {
		panic("region: factory requires an original region")
	}
	return &Factory{
		original:    original,
		userDefined: userDefined,
		reference:   reference,
	}
}

// Original возвращает исходный регион
func (f *Factory) Original() Region {
	return f.original
}

// Region возвращает результат последнего преобразования (nil, если его нет)
func (f *Factory) Region() Region {
	return f.region
}

// Convert строит регион нужного типа. TypeNone сбрасывает результат и
// возвращает nil без ошибки.
func (f *Factory) Convert(regionType Type) (Region, error) {
	if regionType == TypeNone {
		f.region = nil
		return nil, nil
	}

	first := f.region == nil
	proto := f.region
	if first {
		proto = f.original
	}
	protoAxis := proto.Axis()

	// Приводим прототип к кубоиду в половинных единицах
	box := f.boundingBox(proto)
	if first && !f.userDefined {
		// Прототип по умолчанию ставим на опорную точку
		box.SetOrigin(f.reference)
	} else if first && proto.Type() == TypePlane {
		// Проецируем опорную точку на плоскость
		box.SetOriginCoord(protoAxis.Next(), protoAxis.Next().Get(f.reference))
		box.SetOriginCoord(protoAxis.Next().Next(), protoAxis.Next().Next().Get(f.reference))
	}
	origin := box.Origin()
	squareAxis, isSquare := thinSquareAxis(box)

	var result Region
	switch regionType {
	case TypePlane:
		axis := protoAxis
		if isSquare {
			axis = squareAxis
		}
		side := 1
		if plane, ok := proto.(*Plane); ok {
			side = plane.Side()
		}
		result = NewPlaneFacing(origin, axis, side)
	case TypeCuboid:
		result = box.CopyUsing(origin, protoAxis)
	case TypeCylinder:
		axis := protoAxis
		if isSquare {
			axis = squareAxis
		}
		result = NewCylinder(origin, axis,
			box.Extent(axis),
			box.Extent(axis.Next())/2.0,
			box.Extent(axis.Next().Next())/2.0)
	case TypeSphere:
		var radii vec.Vec3Float
		axis := protoAxis
		if !isSquare {
			axis.Set(&radii, box.Extent(axis)/2.0)
			axis.Next().Set(&radii, box.Extent(axis.Next())/2.0)
			axis.Next().Next().Set(&radii, box.Extent(axis.Next().Next())/2.0)
		} else {
			// Тонкий квадрат превращаем в настоящую сферу, а не в сплюснутый эллипсоид
			axis = squareAxis
			radius := box.Extent(axis.Next()) / 2.0
			radii = vec.Vec3Float{X: radius, Y: radius, Z: radius}
		}
		result = NewSphere(origin, radii, axis)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConversion, regionType)
	}

	f.region = result
	return result, nil
}

// boundingBox возвращает AABB прототипа в виде кубоида. Для бесконечных
// регионов строится синтетический тонкий квадрат размера DefaultSize,
// плоский вдоль оси прототипа.
func (f *Factory) boundingBox(proto Region) *Cuboid {
	if lower, upper, ok := proto.AABB(); ok {
		return NewCuboidFromBounds(lower, upper, proto.Axis())
	}
	return NewDefault(DefaultSize).CopyUsing(proto.Origin(), proto.Axis()).(*Cuboid)
}

// thinSquareAxis ищет вырожденный "тонкий квадрат": одна сторона равна одному
// блоку, две другие равны между собой. Сравнение точное - размеры уже
// квантованы. Куб вырожденным не считается.
func thinSquareAxis(box *Cuboid) (Axis, bool) {
	const thin = 1.0
	x, y, z := box.Extent(AxisX), box.Extent(AxisY), box.Extent(AxisZ)
	switch {
	case x == y && y == z:
		return 0, false
	case x == thin && y == z:
		return AxisX, true
	case y == thin && x == z:
		return AxisY, true
	case z == thin && x == y:
		return AxisZ, true
	}
	return 0, false
}
