package maps

import (
	"strings"

	"github.com/spf13/cast"
)

// Params is a map where all keys are lower case.
type Params map[string]any

// Set overwrites values in p with values in pp for common or new keys.
// This is done recursively.
func (p Params) Set(pp Params) {
	for k, v := range pp {
		vv, found := p[k]
		if !found {
			p[k] = v
			continue
		}
		if vvv, ok := vv.(Params); ok {
			if pv, ok := v.(Params); ok {
				vvv.Set(pv)
				continue
			}
		}
		p[k] = v
	}
}

// Clone returns a copy of p. Nested Params are copied too, any other value
// (slices included) is shared with p.
func (p Params) Clone() Params {
	if p == nil {
		return Params{}
	}
	c := make(Params, len(p))
	for k, v := range p {
		if vv, ok := v.(Params); ok {
			c[k] = vv.Clone()
			continue
		}
		c[k] = v
	}
	return c
}

// IsSet reports whether key is set in p. The lookup is case insensitive.
func (p Params) IsSet(key string) bool {
	_, found := p[strings.ToLower(key)]
	return found
}

// Get does a lower case and nested search in this map.
// It will return nil if none found.
func (p Params) Get(indices ...string) any {
	v, _, _ := getNested(p, indices)
	return v
}

func getNested(m map[string]any, indices []string) (any, string, map[string]any) {
	if len(indices) == 0 {
		return nil, "", nil
	}

	first := indices[0]
	v, found := m[strings.ToLower(cast.ToString(first))]
	if !found {
		if len(indices) == 1 {
			return nil, first, m
		}
		return nil, "", nil
	}

	if len(indices) == 1 {
		return v, first, m
	}

	switch m2 := v.(type) {
	case Params:
		return getNested(m2, indices[1:])
	case map[string]any:
		return getNested(m2, indices[1:])
	default:
		return nil, "", nil
	}
}

// PrepareParams
// * makes all the keys in the given map lower cased and will do so
// * This will modify the map given.
// * Any nested map[interface{}]interface{}, map[string]interface{},map[string]string  will be converted to Params.
func PrepareParams(m Params) {
	for k, v := range m {
		var retyped bool
		lKey := strings.ToLower(k)
		switch vv := v.(type) {
		case map[any]any:
			var p Params = cast.ToStringMap(v)
			v = p
			PrepareParams(p)
			retyped = true
		case map[string]any:
			var p Params = vv
			v = p
			PrepareParams(p)
			retyped = true
		case map[string]string:
			p := make(Params)
			for k, v := range vv {
				p[k] = v
			}
			v = p
			PrepareParams(p)
			retyped = true
		case Params:
			PrepareParams(vv)
		}

		if retyped || k != lKey {
			delete(m, k)
			m[lKey] = v
		}
	}
}
