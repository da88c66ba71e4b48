package attributes_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torann/remote-model/pkg/attributes"
)

func TestSchemaSet(t *testing.T) {
	t.Run("json fields are pre-encoded on write", func(t *testing.T) {
		schema := compile(t, attributes.Definition{
			Name:  "User",
			Casts: map[string]string{"data": "json"},
		})
		store := attributes.NewStore()

		require.NoError(t, schema.Set(store, "data", map[string]any{"foo": "bar"}))

		raw, _ := store.Get("data")
		assert.Equal(t, `{"foo":"bar"}`, raw)

		out, _, err := schema.Project(store)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"foo": "bar"}, out["data"])
	})

	t.Run("string values for json fields are stored as-is", func(t *testing.T) {
		schema := compile(t, attributes.Definition{
			Name:  "User",
			Casts: map[string]string{"data": "json"},
		})
		store := attributes.NewStore()

		require.NoError(t, schema.Set(store, "data", `{"foo":"bar"}`))
		raw, _ := store.Get("data")
		assert.Equal(t, `{"foo":"bar"}`, raw)
	})

	t.Run("setters own the field and suppress cast-on-write", func(t *testing.T) {
		schema := compile(t, attributes.Definition{
			Name:  "User",
			Casts: map[string]string{"data": "json"},
			Setters: map[string]attributes.SetFunc{
				"data": func(store *attributes.Store, key string, input any) {
					store.Set(key, input)
				},
			},
		})
		store := attributes.NewStore()

		require.NoError(t, schema.Set(store, "data", map[string]any{"foo": "bar"}))
		raw, _ := store.Get("data")
		assert.Equal(t, map[string]any{"foo": "bar"}, raw)
	})

	t.Run("a setter may write several keys", func(t *testing.T) {
		schema := compile(t, attributes.Definition{
			Name: "User",
			Setters: map[string]attributes.SetFunc{
				"fullName": func(store *attributes.Store, key string, input any) {
					parts := strings.SplitN(input.(string), " ", 2)
					store.Set("firstName", parts[0])
					store.Set("lastName", parts[1])
				},
			},
		})
		store := attributes.NewStore()

		require.NoError(t, schema.Set(store, "fullName", "John Doe"))
		assert.False(t, store.Has("fullName"))
		assert.Equal(t, map[string]any{"firstName": "John", "lastName": "Doe"}, store.All())
	})
}

func TestSchemaGet(t *testing.T) {
	t.Run("getter wins over a declared cast", func(t *testing.T) {
		schema := compile(t, attributes.Definition{
			Name:  "User",
			Casts: map[string]string{"name": "int"}, // would fail on this value
			Getters: map[string]attributes.GetFunc{
				"name": func(raw any) any {
					return strings.ToUpper(raw.(string))
				},
			},
		})
		store := attributes.NewStore()
		store.Set("name", "john")

		v, err := schema.Get(store, "name")
		require.NoError(t, err)
		assert.Equal(t, "JOHN", v)

		out, _, err := schema.Project(store)
		require.NoError(t, err)
		assert.Equal(t, "JOHN", out["name"])
	})

	t.Run("date fields normalize on read", func(t *testing.T) {
		schema := compile(t, attributes.Definition{
			Name:  "User",
			Dates: []string{"createdAt"},
		})
		store := attributes.NewStore()
		store.Set("createdAt", "2015-03-05")

		v, err := schema.Get(store, "createdAt")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2015, 3, 5, 0, 0, 0, 0, time.UTC), v)
	})

	t.Run("absent keys read as nil", func(t *testing.T) {
		schema := compile(t, attributes.Definition{Name: "User"})
		v, err := schema.Get(attributes.NewStore(), "missing")
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestSchemaProject(t *testing.T) {
	t.Run("hidden fields drop out", func(t *testing.T) {
		schema := compile(t, attributes.Definition{
			Name:   "User",
			Hidden: []string{"password"},
		})
		store := attributes.NewStore()
		store.Set("name", "John")
		store.Set("password", "secret")

		out, keys, err := schema.Project(store)
		require.NoError(t, err)
		assert.Equal(t, []string{"name"}, keys)
		assert.Equal(t, map[string]any{"name": "John"}, out)
	})

	t.Run("date fields serialize canonically", func(t *testing.T) {
		schema := compile(t, attributes.Definition{
			Name:  "User",
			Dates: []string{"createdAt"},
		})
		store := attributes.NewStore()
		store.Set("createdAt", "2015-03-05")

		out, _, err := schema.Project(store)
		require.NoError(t, err)
		assert.Equal(t, "2015-03-05T00:00:00Z", out["createdAt"])
	})

	t.Run("appends evaluate at projection only", func(t *testing.T) {
		schema := compile(t, attributes.Definition{
			Name:    "User",
			Appends: []string{"displayName"},
			Getters: map[string]attributes.GetFunc{
				"displayName": func(raw any) any { return "Dr. John" },
			},
		})
		store := attributes.NewStore()
		store.Set("name", "John")

		out, keys, err := schema.Project(store)
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "displayName"}, keys)
		assert.Equal(t, "Dr. John", out["displayName"])
		assert.False(t, store.Has("displayName"))
	})

	t.Run("appends require a getter", func(t *testing.T) {
		_, err := attributes.Compile(attributes.Definition{
			Name:    "User",
			Appends: []string{"displayName"},
		}, nil)
		assert.Error(t, err)
	})

	t.Run("ordered json rendering", func(t *testing.T) {
		schema := compile(t, attributes.Definition{Name: "User"})
		store := attributes.NewStore()
		store.Set("name", "John")
		store.Set("age", 42)

		data, err := schema.ProjectJSON(store)
		require.NoError(t, err)
		assert.Equal(t, `{"name":"John","age":42}`, string(data))
	})
}

func TestSchemaWritePayload(t *testing.T) {
	schema := compile(t, attributes.Definition{
		Name:            "User",
		Dates:           []string{"createdAt"},
		HiddenForWrites: []string{"internalNote"},
	})
	store := attributes.NewStore()
	store.Set("id", 1)
	store.Set("name", "John")
	store.Set("createdAt", "2015-03-05")
	store.Set("internalNote", "keep")

	payload, err := schema.WritePayload(store)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "John"}, payload)
}

func TestSnakeAttributeRegistration(t *testing.T) {
	schema := compile(t, attributes.Definition{
		Name:            "User",
		SnakeAttributes: true,
		Getters: map[string]attributes.GetFunc{
			"FirstName": func(raw any) any { return strings.ToUpper(raw.(string)) },
		},
	})
	store := attributes.NewStore()
	store.Set("first_name", "john")

	v, err := schema.Get(store, "first_name")
	require.NoError(t, err)
	assert.Equal(t, "JOHN", v)
}

func TestCamelAttributeRegistration(t *testing.T) {
	schema := compile(t, attributes.Definition{
		Name: "User",
		Getters: map[string]attributes.GetFunc{
			"FirstName": func(raw any) any { return strings.ToUpper(raw.(string)) },
		},
	})
	store := attributes.NewStore()
	store.Set("firstName", "john")

	v, err := schema.Get(store, "firstName")
	require.NoError(t, err)
	assert.Equal(t, "JOHN", v)
}
