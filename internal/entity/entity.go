package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// Entity представляет снимок живой сущности мира, переданный хостом.
// Модуль только читает сущность и не хранит ссылок на неё после вызова.
//
// Поля состояния имеют смысл лишь для видов с соответствующей возможностью:
// Tamed - для CapTameable, Saddled - для CapSteerable, Shooter - для
// CapProjectile. У прочих видов они игнорируются.
type Entity struct {
	ID       uint64           // Идентификатор сущности на сервере
	UniqueID uuid.UUID        // Постоянный UUID (ключ метаданных)
	Type     EntityType       // Вид сущности
	Tamed    bool             // Приручена ли сущность
	Saddled  bool             // Надето ли седло
	Shooter  ProjectileSource // Источник снаряда (сущность, блок или nil)
}

// NewEntity создаёт снимок сущности указанного вида со случайным UUID
func NewEntity(id uint64, entityType EntityType) *Entity {
	return &Entity{
		ID:       id,
		UniqueID: uuid.New(),
		Type:     entityType,
	}
}

// Capabilities возвращает набор возможностей сущности
func (e *Entity) Capabilities() Capability {
	if e == nil {
		return 0
	}
	return e.Type.Capabilities()
}

// Is проверяет наличие возможности у сущности. Для nil всегда false.
func (e *Entity) Is(c Capability) bool {
	return e.Capabilities().Has(c)
}

// String возвращает короткое описание сущности для логов
func (e *Entity) String() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s#%d", e.Type, e.ID)
}

// ProjectileSource - источник, выпустивший снаряд: сущность или блок.
// Интерфейс закрыт: реализуют его только *Entity и BlockSource.
type ProjectileSource interface {
	projectileSource()
}

func (*Entity) projectileSource() {}

// BlockSource - неживой источник снаряда (например, раздатчик)
type BlockSource struct {
	World   string
	X, Y, Z int
}

func (BlockSource) projectileSource() {}

// MetadataSource предоставляет произвольные строковые метки, навешенные на
// сущности другими системами сервера.
type MetadataSource interface {
	HasMetadata(id uuid.UUID, key string) bool
}
