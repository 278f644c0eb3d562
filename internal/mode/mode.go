package mode

import (
	"fmt"
	"strings"
)

// Mode - политика, применяемая к результату проверки попадания в регион
type Mode uint8

const (
	// Inside разрешает строить только внутри региона
	Inside Mode = iota
	// Outside разрешает строить только снаружи региона
	Outside
	// Display только показывает регион и ничего не запрещает
	Display
)

// Default - режим при запуске
const Default = Inside

var names = [...]string{
	Inside:  "inside",
	Outside: "outside",
	Display: "display",
}

// Next возвращает следующий режим по кругу: inside -> outside -> display -> inside
func (m Mode) Next() Mode {
	if !m.Valid() {
		return Default
	}
	return (m + 1) % Mode(len(names))
}

// Valid проверяет, что значение - один из известных режимов
func (m Mode) Valid() bool {
	return int(m) < len(names)
}

// Permits решает, разрешено ли действие с учётом попадания точки в регион
func (m Mode) Permits(inside bool) bool {
	switch m {
	case Inside:
		return inside
	case Outside:
		return !inside
	default:
		return true
	}
}

// String возвращает имя режима
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
	return names[m]
}

// Parse разбирает имя режима без учёта регистра
func Parse(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == s {
			return Mode(i), nil
		}
	}
	return Default, fmt.Errorf("неизвестный режим %q", s)
}

// UnmarshalText позволяет задавать режим строкой в YAML
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText возвращает имя режима
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
