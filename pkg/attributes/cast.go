package attributes

import (
	"encoding/json"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"

	"github.com/torann/remote-model/pkg/dates"
)

// Caster applies declared per-field type coercions. Casting happens at read
// time only and never touches the stored raw value.
type Caster struct {
	casts map[string]string
	dates *dates.Normalizer
}

func newCaster(casts map[string]string, norm *dates.Normalizer) *Caster {
	normalized := make(map[string]string, len(casts))
	for k, tag := range casts {
		normalized[k] = strings.ToLower(strings.TrimSpace(tag))
	}
	return &Caster{casts: normalized, dates: norm}
}

// CastType returns the normalized cast tag declared for key.
func (c *Caster) CastType(key string) (string, bool) {
	tag, ok := c.casts[key]
	return tag, ok
}

// jsonCast reports whether key stores its value as encoded JSON text.
func (c *Caster) jsonCast(key string) bool {
	tag := c.casts[key]
	return tag == "array" || tag == "json"
}

// Cast coerces raw to the type declared for key. nil values and unknown tags
// pass through unchanged. Malformed JSON in an array/json/object field
// surfaces the decoder's error untranslated.
func (c *Caster) Cast(key string, raw any) (any, error) {
	tag, ok := c.casts[key]
	if !ok || raw == nil {
		return raw, nil
	}

	switch tag {
	case "int", "integer":
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, err
		}
		return int64(f), nil
	case "real", "float", "double":
		return cast.ToFloat64E(raw)
	case "string":
		return cast.ToStringE(raw)
	case "bool", "boolean":
		// Numbers first: non-zero is true. Anything cast.ToBool cannot
		// make sense of is false.
		if f, err := cast.ToFloat64E(raw); err == nil {
			return f != 0, nil
		}
		return cast.ToBool(raw), nil
	case "object":
		return c.decodeObject(raw)
	case "array", "json":
		return c.decodeJSON(raw)
	case "date", "datetime":
		return c.dates.Parse(raw)
	case "timestamp":
		return c.dates.Timestamp(raw)
	}
	return raw, nil
}

// CastInto decodes an object-cast field into dest, a caller-supplied struct
// or map pointer.
func (c *Caster) CastInto(key string, raw any, dest any) error {
	v, err := c.Cast(key, raw)
	if err != nil {
		return err
	}
	return mapstructure.Decode(v, dest)
}

func (c *Caster) decodeObject(raw any) (any, error) {
	if m, ok := raw.(map[string]any); ok {
		return m, nil
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return raw, nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Caster) decodeJSON(raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		// already structured
		return raw, nil
	}
	var out any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	return out, nil
}
