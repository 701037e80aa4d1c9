package guard

import "reflect"

// ArgumentBeingNil fails with KindNilArgument when value is nil.
// Pointers, slices, maps, channels, funcs and interfaces holding a nil
// value all count as nil; other types never do.
func ArgumentBeingNil[T any](value T, opts ...Option) (T, error) {
	if isNil(value) {
		return value, newFailure(KindNilArgument, opts)
	}
	return value, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
