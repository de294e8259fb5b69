package metadata

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Tags - снимок меток, навешенных на сущности другими системами сервера.
// Реализует entity.MetadataSource. Безопасен для параллельного чтения.
type Tags struct {
	mu   sync.RWMutex
	tags map[uuid.UUID]map[string]struct{}
}

// NewTags создаёт пустой набор меток
func NewTags() *Tags {
	return &Tags{
		tags: make(map[uuid.UUID]map[string]struct{}),
	}
}

// Add навешивает метки на сущность
func (t *Tags) Add(id uuid.UUID, keys ...string) {
	if len(keys) == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	set, exists := t.tags[id]
	if !exists {
		set = make(map[string]struct{}, len(keys))
		t.tags[id] = set
	}
	for _, key := range keys {
		set[key] = struct{}{}
	}
}

// HasMetadata проверяет наличие метки key у сущности id.
// Для nil-снимка всегда возвращает false.
func (t *Tags) HasMetadata(id uuid.UUID, key string) bool {
	if t == nil {
		return false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.tags[id][key]
	return ok
}

// Keys возвращает отсортированный список меток сущности
func (t *Tags) Keys(id uuid.UUID) []string {
	if t == nil {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	set := t.tags[id]
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len возвращает число сущностей, у которых есть хотя бы одна метка
func (t *Tags) Len() int {
	if t == nil {
		return 0
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.tags)
}
