package evolution

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"customfields/internal/common"
)

// TransformFunc converts a saved value for its new field. Returning an
// error abandons the migration attempt.
type TransformFunc func(value any) (any, error)

// Names of the built-in transforms.
const (
	TransformIdentity = "identity"
	TransformFirst    = "first"
	TransformWrap     = "wrap"
	TransformJoin     = "join"
	TransformSplit    = "split"
	TransformToString = "to_string"
)

// ErrEmptyList is returned by First for an empty list.
var ErrEmptyList = errors.New("cannot take the first element of an empty list")

// TransformRegistry holds named transforms referenced by rule documents.
type TransformRegistry struct {
	transforms map[string]TransformFunc
}

// NewTransformRegistry creates a registry preloaded with the built-ins.
func NewTransformRegistry() *TransformRegistry {
	r := &TransformRegistry{transforms: make(map[string]TransformFunc)}

	r.Add(TransformIdentity, Identity)
	r.Add(TransformFirst, First)
	r.Add(TransformWrap, Wrap)
	r.Add(TransformJoin, Join)
	r.Add(TransformSplit, Split)
	r.Add(TransformToString, ToString)

	return r
}

// Add registers or replaces a transform.
func (r *TransformRegistry) Add(name string, fn TransformFunc) {
	r.transforms[name] = fn
}

// Get returns a transform by name, or nil if not found.
func (r *TransformRegistry) Get(name string) TransformFunc {
	return r.transforms[name]
}

// Has returns true if a transform with the given name exists.
func (r *TransformRegistry) Has(name string) bool {
	_, exists := r.transforms[name]
	return exists
}

// Names returns all transform names in sorted order.
func (r *TransformRegistry) Names() []string {
	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Identity returns the value unchanged.
func Identity(value any) (any, error) {
	return value, nil
}

// First unwraps a list into its first element. Scalars pass through.
func First(value any) (any, error) {
	items, ok := listOf(value)
	if !ok {
		return value, nil
	}

	first, ok := common.First(items)
	if !ok {
		return nil, ErrEmptyList
	}

	return first, nil
}

// Wrap turns a scalar into a one-element list. Lists pass through and nil
// becomes an empty list.
func Wrap(value any) (any, error) {
	if items, ok := listOf(value); ok {
		return items, nil
	}

	if value == nil {
		return []any{}, nil
	}

	return []any{value}, nil
}

// Join renders a list as a comma-separated string. Scalars are rendered
// with ToString.
func Join(value any) (any, error) {
	items, ok := listOf(value)
	if !ok {
		return ToString(value)
	}

	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}

	return strings.Join(parts, ", "), nil
}

// Split turns a comma-separated string into a list of trimmed, non-empty
// entries. Lists pass through.
func Split(value any) (any, error) {
	if items, ok := listOf(value); ok {
		return items, nil
	}

	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("cannot split %T", value)
	}

	var out []any

	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	if out == nil {
		out = []any{}
	}

	return out, nil
}

// ToString renders scalars as text. Lists are rejected.
func ToString(value any) (any, error) {
	if _, ok := listOf(value); ok {
		return nil, errors.New("cannot convert a list to text")
	}

	if value == nil {
		return "", nil
	}

	return fmt.Sprint(value), nil
}

// listOf returns the elements of slice-shaped values.
func listOf(value any) ([]any, bool) {
	switch x := value.(type) {
	case []any:
		return x, true
	case []string:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}

		return out, true
	case string, nil:
		return nil, false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}
