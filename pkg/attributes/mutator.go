package attributes

import (
	"github.com/iancoleman/strcase"
)

// GetFunc presents a stored raw value. It fully replaces casting for its
// field.
type GetFunc func(raw any) any

// SetFunc stores input on its field's behalf. The default set path,
// including JSON cast-on-write, is skipped entirely; a SetFunc may write any
// number of keys into the store, or none.
type SetFunc func(store *Store, key string, input any)

// mutators holds the per-type get/set transform tables, keyed by attribute
// name in the configured case convention.
type mutators struct {
	getters map[string]GetFunc
	setters map[string]SetFunc
}

func newMutators(getters map[string]GetFunc, setters map[string]SetFunc, snake bool) *mutators {
	m := &mutators{
		getters: make(map[string]GetFunc, len(getters)),
		setters: make(map[string]SetFunc, len(setters)),
	}
	for name, fn := range getters {
		m.getters[attributeKey(name, snake)] = fn
	}
	for name, fn := range setters {
		m.setters[attributeKey(name, snake)] = fn
	}
	return m
}

// attributeKey normalizes a registration name to the attribute case
// convention, so a mutator registered as "FirstName" intercepts the wire
// field "first_name" or "firstName" depending on the flag.
func attributeKey(name string, snake bool) string {
	if snake {
		return strcase.ToSnake(name)
	}
	return strcase.ToLowerCamel(name)
}

func (m *mutators) HasGetter(key string) bool {
	_, ok := m.getters[key]
	return ok
}

func (m *mutators) HasSetter(key string) bool {
	_, ok := m.setters[key]
	return ok
}

func (m *mutators) ApplyGetter(key string, raw any) any {
	return m.getters[key](raw)
}

func (m *mutators) ApplySetter(store *Store, key string, input any) {
	m.setters[key](store, key, input)
}
