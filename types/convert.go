package types

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// ToStringSlicePreserveString is the same as ToStringSlicePreserveStringE,
// but it never fails.
func ToStringSlicePreserveString(v any) []string {
	vv, _ := ToStringSlicePreserveStringE(v)
	return vv
}

// ToStringSlicePreserveStringE converts v to a string slice.
// If v is a string, it will be wrapped in a string slice.
// Unlike cast.ToStringSliceE, a string is never split into fields and
// any element that is not a scalar is an error.
func ToStringSlicePreserveStringE(v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	if sds, ok := v.(string); ok {
		return []string{sds}, nil
	}
	if sds, ok := v.([]string); ok {
		return sds, nil
	}

	vv := reflect.ValueOf(v)

	switch vv.Kind() {
	case reflect.Slice, reflect.Array:
		result := make([]string, vv.Len())
		for i := 0; i < vv.Len(); i++ {
			el := vv.Index(i).Interface()
			if !IsScalar(el) {
				return nil, fmt.Errorf("element %d of type %T is not a scalar", i, el)
			}
			s, err := cast.ToStringE(el)
			if err != nil {
				return nil, err
			}
			result[i] = s
		}
		return result, nil
	default:
		if !IsScalar(v) {
			return nil, fmt.Errorf("failed to convert %T to a string slice", v)
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}
}
