package remotemodel

import (
	"fmt"

	"github.com/torann/remote-model/pkg/attributes"
	"github.com/torann/remote-model/pkg/client"
)

// Find fetches one record by id. A nil model with a nil error means the
// record was not found; use FindOrFail for a hard error instead.
func (t *Type) Find(id any, params client.Params) (*Model, error) {
	res, err := t.cfg.Client.Find(t.endpoint, id, params)
	payload := t.cfg.Client.Errors()
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		t.cfg.Logger.Debug("record not found", "endpoint", t.endpoint, "id", id)
		return nil, nil
	}
	return t.hydrate(res, payload)
}

// FindOrFail fetches one record by id, returning ErrNotFound when the remote
// reports no record.
func (t *Type) FindOrFail(id any, params client.Params) (*Model, error) {
	m, err := t.Find(id, params)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: %s %v", ErrNotFound, t.endpoint, id)
	}
	return m, nil
}

// All fetches a page of records. params pass through to the transport
// untouched.
func (t *Type) All(params client.Params) (*Page, error) {
	res, err := t.cfg.Client.All(t.endpoint, params)
	payload := t.cfg.Client.Errors()
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	return t.hydratePage(res, payload)
}

// Create builds a new entity from attrs and persists it. Success is reported
// by the model: Exists() is true and the attribute store holds the server's
// response. On a falsy response the entity stays new and LastError carries
// the captured payload.
func (t *Type) Create(attrs map[string]any) (*Model, error) {
	m, err := t.New(attrs)
	if err != nil {
		return nil, err
	}
	if _, err := m.Save(); err != nil {
		return nil, err
	}
	return m, nil
}

// Call forwards a named action with positional parameters to the type's
// endpoint.
func (t *Type) Call(action string, params ...any) (any, error) {
	return t.cfg.Client.Call(t.endpoint, action, params...)
}

// Save persists the entity: the create path when it is new, the update path
// once it exists. The returned bool is the locally computed success of the
// call; transport failures surface as errors and are never masked by it.
func (m *Model) Save() (bool, error) {
	if m.exists {
		return m.update()
	}
	return m.create()
}

// Update fills attrs through the write path and saves.
func (m *Model) Update(attrs map[string]any) (bool, error) {
	if err := m.Fill(attrs); err != nil {
		return false, err
	}
	return m.Save()
}

// Delete destroys the remote record. An optional id binds the primary key
// and marks the entity as existing first, enabling delete-by-id without a
// prior fetch. Deleting a non-existing entity is a no-op returning false.
// Local attributes stay readable after a successful delete.
func (m *Model) Delete(id ...any) (bool, error) {
	if len(id) > 0 && !m.exists {
		m.store.Set(m.typ.schema.PrimaryKey(), id[0])
		m.exists = true
	}
	if !m.exists {
		return false, nil
	}

	res, err := m.typ.cfg.Client.Destroy(m.typ.endpoint, m.PrimaryKey())
	m.lastErr = m.typ.cfg.Client.Errors()
	if err != nil {
		return false, err
	}
	if len(res) == 0 {
		return false, nil
	}
	m.exists = false
	return true, nil
}

// create sends the raw stored attributes. A truthy response becomes the sole
// source of truth: the store is reset and refilled from it.
func (m *Model) create() (bool, error) {
	res, err := m.typ.cfg.Client.Create(m.typ.endpoint, m.store.All())
	m.lastErr = m.typ.cfg.Client.Errors()
	if err != nil {
		return false, err
	}
	if len(res) == 0 {
		return false, nil
	}

	m.store = attributes.NewStore()
	if err := m.Fill(res); err != nil {
		return false, err
	}
	m.exists = true
	m.typ.cfg.Logger.Debug("record created", "endpoint", m.typ.endpoint, "id", m.PrimaryKey())
	return true, nil
}

// update sends the write payload keyed by the primary key. A truthy response
// merges into the store; a falsy one without a transport error still counts
// as success, unlike create.
func (m *Model) update() (bool, error) {
	payload, err := m.typ.schema.WritePayload(m.store)
	if err != nil {
		return false, err
	}

	res, err := m.typ.cfg.Client.Update(m.typ.endpoint, m.PrimaryKey(), payload)
	m.lastErr = m.typ.cfg.Client.Errors()
	if err != nil {
		return false, err
	}
	if len(res) > 0 {
		if err := m.Fill(res); err != nil {
			return false, err
		}
	}
	m.typ.cfg.Logger.Debug("record updated", "endpoint", m.typ.endpoint, "id", m.PrimaryKey())
	return true, nil
}
