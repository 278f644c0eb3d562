package sim

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/annel0/buildregion/internal/region"
	"github.com/annel0/buildregion/internal/vec"
)

// Операции сценария
const (
	OpLook    = "look"
	OpMove    = "move"
	OpSet     = "set"
	OpShift   = "shift"
	OpExpand  = "expand"
	OpAxis    = "axis"
	OpConvert = "convert"
	OpClear   = "clear"
	OpMode    = "mode"
	OpPlace   = "place"
	OpDestroy = "destroy"
	OpHold    = "hold"
)

// Ожидаемые исходы шага
const (
	ExpectAllow = "allow"
	ExpectDeny  = "deny"
	ExpectOK    = "ok"
	ExpectError = "error"
)

// Script - сценарий действий игрока
type Script struct {
	Name  string         `yaml:"name"`
	Start *vec.Vec3Float `yaml:"start"` // По умолчанию - над поверхностью в (0, 0)
	Steps []Step         `yaml:"steps"`
}

// Step - один шаг сценария. Набор используемых полей зависит от Op.
type Step struct {
	Op string `yaml:"op"`

	Yaw   float64 `yaml:"yaw"`
	Pitch float64 `yaml:"pitch"`

	Pos    *vec.Vec3Float `yaml:"pos"`    // move
	Block  *vec.Vec3      `yaml:"block"`  // place, destroy
	Face   int            `yaml:"face"`   // place
	Amount float64        `yaml:"amount"` // shift, expand
	Axis   string         `yaml:"axis"`   // shift, expand, axis
	Type   string         `yaml:"type"`   // convert
	Mode   string         `yaml:"mode"`   // mode; пусто - следующий по кругу
	Silent bool           `yaml:"silent"` // clear

	Item   string `yaml:"item"`   // hold
	Damage uint8  `yaml:"damage"` // hold

	Region *RegionShape `yaml:"region"` // set; без него регион ставится по взгляду

	Expect string `yaml:"expect"`
}

// RegionShape описывает регион явно
type RegionShape struct {
	Type   region.Type   `yaml:"type"`
	Origin vec.Vec3Float `yaml:"origin"`
	Size   vec.Vec3Float `yaml:"size"` // Полные размеры по осям мира
	Axis   string        `yaml:"axis"`
	Side   int           `yaml:"side"` // Для плоскости: +1 или -1
}

// Build строит регион по описанию
func (s *RegionShape) Build() (region.Region, error) {
	axis := region.AxisX
	if s.Axis != "" {
		a, err := region.ParseAxis(s.Axis)
		if err != nil {
			return nil, err
		}
		axis = a
	}
	half := s.Size.Mul(0.5)

	switch s.Type {
	case region.TypePlane:
		return region.NewPlaneFacing(s.Origin, axis, s.Side), nil
	case region.TypeCuboid:
		return region.NewCuboid(s.Origin, half, axis), nil
	case region.TypeCylinder:
		return region.NewCylinder(s.Origin, axis, axis.Get(s.Size), axis.Next().Get(half), axis.Next().Next().Get(half)), nil
	case region.TypeSphere:
		return region.NewSphere(s.Origin, half, axis), nil
	default:
		return nil, fmt.Errorf("регион типа %s нельзя задать явно", s.Type)
	}
}

// ParseScript разбирает YAML сценарий и проверяет операции
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("разбор сценария: %w", err)
	}
	for i := range script.Steps {
		step := &script.Steps[i]
		step.Op = strings.ToLower(strings.TrimSpace(step.Op))
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("шаг %d: %w", i+1, err)
		}
	}
	return &script, nil
}

// LoadScript читает сценарий из файла
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение сценария %s: %w", path, err)
	}
	return ParseScript(data)
}

func (s *Step) validate() error {
	switch s.Op {
	case OpLook, OpClear, OpMode, OpConvert, OpHold:
	case OpMove:
		if s.Pos == nil {
			return fmt.Errorf("%s: не задан pos", s.Op)
		}
	case OpPlace, OpDestroy:
		if s.Block == nil {
			return fmt.Errorf("%s: не задан block", s.Op)
		}
	case OpShift, OpExpand, OpAxis:
		if s.Op != OpShift && s.Axis == "" {
			return fmt.Errorf("%s: не задана ось", s.Op)
		}
	case OpSet:
		if s.Region != nil && s.Region.Type == region.TypeNone {
			return fmt.Errorf("%s: не задан тип региона", s.Op)
		}
	default:
		return fmt.Errorf("неизвестная операция %q", s.Op)
	}

	switch s.Expect {
	case "", ExpectAllow, ExpectDeny, ExpectOK, ExpectError:
	default:
		return fmt.Errorf("неизвестное ожидание %q", s.Expect)
	}
	return nil
}
