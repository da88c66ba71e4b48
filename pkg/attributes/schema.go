package attributes

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/torann/remote-model/pkg/dates"
)

// Definition declares one remote model type: its casts, date fields,
// visibility lists and mutator tables. Definitions are static; compile one
// Schema per type and share it.
type Definition struct {
	// Name is the type name the endpoint is derived from, e.g. "UserReview".
	Name string

	// Endpoint overrides the derived endpoint name.
	Endpoint string

	// PrimaryKey defaults to "id".
	PrimaryKey string

	// Casts maps field name to a type tag: int/integer, real/float/double,
	// string, bool/boolean, object, array/json, date/datetime, timestamp.
	// Tags are trimmed and case-insensitive; unknown tags leave values
	// untouched.
	Casts map[string]string

	// Dates lists fields normalized through the date pipeline on read and
	// rendered in the canonical format on serialization.
	Dates []string

	// Hidden and Visible drive serialization filtering. A non-empty Visible
	// wins outright and Hidden is ignored.
	Hidden  []string
	Visible []string

	// Appends lists computed fields attached during serialization only.
	// Every append needs a registered getter.
	Appends []string

	// HiddenForWrites lists fields excluded from outbound update payloads,
	// independent of Hidden.
	HiddenForWrites []string

	// Getters and Setters register per-field transforms. Registration names
	// are normalized to the attribute case convention, so "FirstName" binds
	// to "first_name" under SnakeAttributes and "firstName" otherwise.
	Getters map[string]GetFunc
	Setters map[string]SetFunc

	// SnakeAttributes selects snake_case attribute names; lowerCamel
	// otherwise.
	SnakeAttributes bool
}

// Schema is a compiled Definition: the per-type pipeline applying mutators,
// casts, date normalization and visibility. A getter always wins over a
// declared cast for the same field.
type Schema struct {
	def      Definition
	caster   *Caster
	muts     *mutators
	norm     *dates.Normalizer
	dateSet  map[string]struct{}
	writeSet map[string]struct{}
	appends  []string
	pk       string
}

// Compile validates def and binds it to a date normalizer.
func Compile(def Definition, norm *dates.Normalizer) (*Schema, error) {
	if norm == nil {
		norm = dates.New("")
	}
	if def.PrimaryKey == "" {
		def.PrimaryKey = "id"
	}

	s := &Schema{
		def:      def,
		caster:   newCaster(def.Casts, norm),
		muts:     newMutators(def.Getters, def.Setters, def.SnakeAttributes),
		norm:     norm,
		dateSet:  toSet(def.Dates),
		writeSet: toSet(def.HiddenForWrites),
		pk:       def.PrimaryKey,
	}

	for _, name := range def.Appends {
		key := attributeKey(name, def.SnakeAttributes)
		if !s.muts.HasGetter(key) {
			return nil, fmt.Errorf("appended field %q has no registered getter", name)
		}
		s.appends = append(s.appends, key)
	}

	return s, nil
}

// PrimaryKey returns the primary key field name.
func (s *Schema) PrimaryKey() string {
	return s.pk
}

// Dates returns the normalizer the schema serializes dates with.
func (s *Schema) Dates() *dates.Normalizer {
	return s.norm
}

// Caster exposes the compiled cast table.
func (s *Schema) Caster() *Caster {
	return s.caster
}

func (s *Schema) isDate(key string) bool {
	_, ok := s.dateSet[key]
	return ok
}

// Set runs the write path for one attribute. A registered setter intercepts
// first and owns the field outright. Without one, a non-string value bound
// for an array/json field is pre-encoded to its JSON wire text; everything
// else is stored raw. Casts never run on write.
func (s *Schema) Set(store *Store, key string, value any) error {
	if s.muts.HasSetter(key) {
		s.muts.ApplySetter(store, key, value)
		return nil
	}
	if value != nil && s.caster.jsonCast(key) {
		if _, isString := value.(string); !isString {
			encoded, err := json.Marshal(value)
			if err != nil {
				return err
			}
			store.Set(key, string(encoded))
			return nil
		}
	}
	store.Set(key, value)
	return nil
}

// Fill stores each entry through Set, so per-key interception applies.
func (s *Schema) Fill(store *Store, attrs map[string]any) error {
	for key, value := range attrs {
		if err := s.Set(store, key, value); err != nil {
			return err
		}
	}
	return nil
}

// Get runs the read path for one attribute: getter, else declared cast, else
// date normalization, else the raw value. Absent keys return nil. No
// visibility filtering applies here.
func (s *Schema) Get(store *Store, key string) (any, error) {
	raw, ok := store.Get(key)
	if !ok {
		return nil, nil
	}
	if s.muts.HasGetter(key) {
		return s.muts.ApplyGetter(key, raw), nil
	}
	if _, cast := s.caster.CastType(key); cast {
		return s.caster.Cast(key, raw)
	}
	if s.isDate(key) && raw != nil {
		return s.norm.Parse(raw)
	}
	return raw, nil
}

// Project produces the serialized attribute view: mutated, cast,
// date-rendered and filtered. The returned key slice preserves store order,
// with appends last.
func (s *Schema) Project(store *Store) (map[string]any, []string, error) {
	keys := VisibleKeys(store.Keys(), s.def.Hidden, s.def.Visible)
	out := make(map[string]any, len(keys)+len(s.appends))

	for _, key := range keys {
		raw, _ := store.Get(key)
		switch {
		case s.muts.HasGetter(key):
			out[key] = s.muts.ApplyGetter(key, raw)
		case s.isDate(key):
			if raw == nil {
				out[key] = nil
				break
			}
			t, err := s.norm.Parse(raw)
			if err != nil {
				return nil, nil, err
			}
			out[key] = s.norm.Serialize(t)
		default:
			v, err := s.caster.Cast(key, raw)
			if err != nil {
				return nil, nil, err
			}
			out[key] = v
		}
	}

	for _, key := range s.appends {
		if _, done := out[key]; done {
			continue
		}
		raw, _ := store.Get(key)
		out[key] = s.muts.ApplyGetter(key, raw)
		keys = append(keys, key)
	}

	return out, keys, nil
}

// ProjectJSON renders the projection as a JSON object preserving attribute
// order.
func (s *Schema) ProjectJSON(store *Store) ([]byte, error) {
	out, keys, err := s.Project(store)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(out[key])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WritePayload computes the outbound update body: the projection minus date
// fields, write-hidden fields and the primary key.
func (s *Schema) WritePayload(store *Store) (map[string]any, error) {
	out, keys, err := s.Project(store)
	if err != nil {
		return nil, err
	}

	payload := make(map[string]any, len(keys))
	for _, key := range keys {
		if key == s.pk || s.isDate(key) {
			continue
		}
		if _, hidden := s.writeSet[key]; hidden {
			continue
		}
		payload[key] = out[key]
	}
	return payload, nil
}
