package click

import (
	"fmt"

	"github.com/annel0/buildregion/internal/vec"
	"github.com/annel0/buildregion/internal/world/block"
)

// Kind - вид действия игрока
type Kind uint8

const (
	// Destroy - левый клик, разрушение блока
	Destroy Kind = iota
	// Place - правый клик, установка блока или использование
	Place
)

func (k Kind) String() string {
	switch k {
	case Destroy:
		return "destroy"
	case Place:
		return "place"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Interaction описывает клик игрока по блоку
type Interaction struct {
	Kind Kind            `json:"kind"`
	Pos  vec.Vec3        `json:"pos"`  // Блок, по которому кликнули
	Face int             `json:"face"` // Грань блока 0..5
	Held block.ItemStack `json:"held"` // Предмет в руке
}

// Причины решения
const (
	ReasonNoRegion     = "no build region"
	ReasonDisplay      = "display mode"
	ReasonExcluded     = "excluded block"
	ReasonInteractive  = "interactive block"
	ReasonExcludedItem = "excluded held item"
	ReasonPermitted    = "permitted by build region"
	ReasonMisclick     = "misclick blocked by build region"
)

// Decision - результат проверки клика
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
	// Effective - клетка, которую действие реально изменит.
	// Для установки это соседняя клетка либо заменяемый блок,
	// для ломания и интерактивных блоков совпадает с Pos.
	Effective vec.Vec3 `json:"effective"`
	// Checked - решение принято проверкой попадания в регион
	Checked bool `json:"checked"`
}
