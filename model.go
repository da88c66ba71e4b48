package remotemodel

import (
	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"

	"github.com/torann/remote-model/pkg/attributes"
	"github.com/torann/remote-model/pkg/client"
	"github.com/torann/remote-model/pkg/dates"
	"github.com/torann/remote-model/pkg/logger"
)

// Config wires a Type to its collaborators. It replaces any notion of
// process-wide state: two Types can run against different clients and date
// formats in the same process.
type Config struct {
	// Client performs the remote calls. Required.
	Client client.Transport

	// Dates controls date parsing and the canonical serialization format.
	// Defaults to dates.New("").
	Dates *dates.Normalizer

	// Logger receives debug logs from the lifecycle verbs. Defaults to
	// logger.Discard().
	Logger logger.Logger
}

// Type is the compiled handle for one remote resource type. Its endpoint is
// derived once: the explicit override, or the pluralized, snake-cased type
// name ("UserReview" -> "user_reviews").
type Type struct {
	cfg      Config
	schema   *attributes.Schema
	endpoint string
}

// NewType compiles def and binds it to cfg.
func NewType(def attributes.Definition, cfg Config) (*Type, error) {
	if def.Name == "" {
		return nil, ErrNoName
	}
	if cfg.Client == nil {
		return nil, ErrNoClient
	}
	if cfg.Dates == nil {
		cfg.Dates = dates.New("")
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}

	schema, err := attributes.Compile(def, cfg.Dates)
	if err != nil {
		return nil, err
	}

	endpoint := def.Endpoint
	if endpoint == "" {
		endpoint = strcase.ToSnake(inflection.Plural(def.Name))
	}

	return &Type{cfg: cfg, schema: schema, endpoint: endpoint}, nil
}

// Endpoint returns the remote collection name the type maps to.
func (t *Type) Endpoint() string {
	return t.endpoint
}

// Schema returns the compiled attribute schema.
func (t *Type) Schema() *attributes.Schema {
	return t.schema
}

// New builds an in-memory, unsaved entity. attrs go through the fill path,
// so setters and JSON cast-on-write apply.
func (t *Type) New(attrs map[string]any) (*Model, error) {
	m := &Model{typ: t, store: attributes.NewStore()}
	if err := m.Fill(attrs); err != nil {
		return nil, err
	}
	return m, nil
}

func (t *Type) hydrate(attrs map[string]any, payload *client.ErrorPayload) (*Model, error) {
	m := &Model{typ: t, store: attributes.NewStore(), exists: true, lastErr: payload}
	if err := m.Fill(attrs); err != nil {
		return nil, err
	}
	return m, nil
}

// Model is one remote resource instance. It is not safe for concurrent use;
// callers sharing a Model across goroutines must serialize access.
type Model struct {
	typ     *Type
	store   *attributes.Store
	exists  bool
	lastErr *client.ErrorPayload
}

// Exists reports whether the entity is known to be persisted remotely.
func (m *Model) Exists() bool {
	return m.exists
}

// LastError returns the error payload captured from the transport after the
// most recent call, or nil.
func (m *Model) LastError() *client.ErrorPayload {
	return m.lastErr
}

// Get reads one attribute through the read pipeline: registered getter, else
// declared cast, else date normalization, else the raw value. Absent keys
// return nil; use Has to tell them from stored nils. No visibility filtering
// applies.
func (m *Model) Get(name string) (any, error) {
	return m.typ.schema.Get(m.store, name)
}

// GetRaw reads the stored wire value, bypassing the pipeline.
func (m *Model) GetRaw(name string) (any, bool) {
	return m.store.Get(name)
}

// GetInto decodes an object-cast attribute into dest, a struct or map
// pointer.
func (m *Model) GetInto(name string, dest any) error {
	raw, _ := m.store.Get(name)
	return m.typ.schema.Caster().CastInto(name, raw, dest)
}

// Set writes one attribute through the write path: a registered setter owns
// the field outright, otherwise array/json fields are pre-encoded to their
// JSON wire text. Casts never run on write.
func (m *Model) Set(name string, value any) error {
	return m.typ.schema.Set(m.store, name, value)
}

// Fill stores each entry through Set.
func (m *Model) Fill(attrs map[string]any) error {
	return m.typ.schema.Fill(m.store, attrs)
}

// Has reports whether name is stored, even with a nil value.
func (m *Model) Has(name string) bool {
	return m.store.Has(name)
}

// Remove drops name from the attribute store.
func (m *Model) Remove(name string) {
	m.store.Remove(name)
}

// Attributes returns a copy of the raw attribute map.
func (m *Model) Attributes() map[string]any {
	return m.store.All()
}

// Keys returns the stored attribute names in insertion order.
func (m *Model) Keys() []string {
	return m.store.Keys()
}

// PrimaryKey returns the raw primary key value, or nil.
func (m *Model) PrimaryKey() any {
	v, _ := m.store.Get(m.typ.schema.PrimaryKey())
	return v
}

// ToMap produces the serialized view: mutated, cast, date-rendered, filtered
// by the hidden/visible rules, with appends attached.
func (m *Model) ToMap() (map[string]any, error) {
	out, _, err := m.typ.schema.Project(m.store)
	return out, err
}

// MarshalJSON renders the serialized view preserving attribute order.
func (m *Model) MarshalJSON() ([]byte, error) {
	return m.typ.schema.ProjectJSON(m.store)
}

// Replicate returns an independent, unsaved copy of the entity with the
// primary key dropped.
func (m *Model) Replicate() *Model {
	cp := &Model{typ: m.typ, store: m.store.Snapshot()}
	cp.store.Remove(m.typ.schema.PrimaryKey())
	return cp
}
