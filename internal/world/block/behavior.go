package block

// BlockBehavior определяет свойства блока, важные для строительства
type BlockBehavior interface {
	ID() BlockID
	Name() string
	// Replaceable - блок считается воздухом при установке поверх него
	// (снег, лоза, трава): новый блок встаёт на его место, а не рядом.
	Replaceable() bool
	// Solid - блок занимает клетку целиком
	Solid() bool
}

// basicBehavior - поведение, полностью описываемое набором флагов
type basicBehavior struct {
	id          BlockID
	name        string
	replaceable bool
	solid       bool
}

func (b *basicBehavior) ID() BlockID {
	return b.id
}

func (b *basicBehavior) Name() string {
	return b.name
}

func (b *basicBehavior) Replaceable() bool {
	return b.replaceable
}

func (b *basicBehavior) Solid() bool {
	return b.solid
}

// IsSolid возвращает true для блоков, занимающих клетку целиком
func IsSolid(id BlockID) bool {
	behavior, ok := Get(id)
	return ok && behavior.Solid()
}

// IsReplaceable возвращает true для заменяемых блоков.
// Незарегистрированные блоки заменяемыми не считаются.
func IsReplaceable(id BlockID) bool {
	behavior, ok := Get(id)
	return ok && behavior.Replaceable()
}
