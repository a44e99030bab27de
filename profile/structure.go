package profile

import (
	"encoding/json"
	"sort"

	"github.com/filespect/filespect/profile/jsonval"
)

const (
	// Bounds for object key and list element surveys.
	keySampleLimit     = 10
	elementSampleLimit = 10
	elementTypeWindow  = 100
	leadingSampleLimit = 5
)

// Structure surveys a JSON value that is not tabular. Objects yield a
// per-key type survey, lists of primitives a bounded type and element
// sample, and anything else a bare type tag.
func Structure(v interface{}) *StructureProfile {
	switch x := v.(type) {
	case jsonval.Object:
		return surveyObject(x)

	case []interface{}:
		return surveyList(x)
	}

	return &StructureProfile{
		Shape:     ShapeScalar,
		ValueType: TypeOf(v),
	}
}

func surveyObject(obj jsonval.Object) *StructureProfile {
	keys := make([]KeySummary, 0, len(obj))

	for _, m := range obj {
		ks := KeySummary{
			Name: m.Name,
			Type: TypeOf(m.Value),
		}

		switch val := m.Value.(type) {
		case []interface{}:
			n := len(val)
			ks.Length = &n

			// Sample only leading primitives, never nested composites.
			if n > 0 && !isComposite(val[0]) {
				ks.Sample = bounded(val, leadingSampleLimit)
			}

		case jsonval.Object:
			names := val.Keys()
			if len(names) > keySampleLimit {
				names = names[:keySampleLimit]
			}
			ks.Keys = names
		}

		keys = append(keys, ks)
	}

	return &StructureProfile{
		Shape: ShapeObject,
		Keys:  keys,
	}
}

func surveyList(list []interface{}) *StructureProfile {
	window := list
	if len(window) > elementTypeWindow {
		window = window[:elementTypeWindow]
	}

	seen := make(map[string]struct{})
	var types []string
	for _, v := range window {
		tag := TypeOf(v).String()
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		types = append(types, tag)
	}
	sort.Strings(types)

	return &StructureProfile{
		Shape:        ShapeList,
		Length:       len(list),
		ElementTypes: types,
		Sample:       bounded(list, elementSampleLimit),
	}
}

// TypeOf returns the runtime type tag of a decoded JSON value.
func TypeOf(v interface{}) ValueType {
	switch x := v.(type) {
	case nil:
		return NullType
	case bool:
		return BoolType
	case string:
		return StringType
	case json.Number:
		if _, err := x.Int64(); err == nil {
			return IntType
		}
		return FloatType
	case float64:
		return FloatType
	case []interface{}:
		return ArrayType
	case jsonval.Object:
		return ObjectType
	}

	return UnknownType
}

func isComposite(v interface{}) bool {
	switch v.(type) {
	case []interface{}, jsonval.Object:
		return true
	}
	return false
}

func bounded(list []interface{}, limit int) []interface{} {
	if len(list) > limit {
		list = list[:limit]
	}

	sample := make([]interface{}, len(list))
	copy(sample, list)
	return sample
}
