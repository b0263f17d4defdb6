package lazy

import (
	"math"
	"reflect"
)

// Compare is the default equality rule for signals. Values are equal when they
// are identical under ==, or when both are NaN. Types that == cannot handle
// compare by reference: maps, pointers and channels by address, slices by
// backing array, length and capacity. Funcs are equal only when both are nil.
func Compare[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		bv, ok := any(b).(int)
		return ok && av == bv
	case string:
		bv, ok := any(b).(string)
		return ok && av == bv
	case bool:
		bv, ok := any(b).(bool)
		return ok && av == bv
	case float64:
		bv, ok := any(b).(float64)
		return ok && (av == bv || (math.IsNaN(av) && math.IsNaN(bv)))
	}
	return compareAny(any(a), any(b))
}

func compareAny(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(va.Float()) && math.IsNaN(vb.Float()) {
			return true
		}
	case reflect.Slice:
		return va.UnsafePointer() == vb.UnsafePointer() && va.Len() == vb.Len() && va.Cap() == vb.Cap()
	case reflect.Map:
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Func:
		return va.IsNil() && vb.IsNil()
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return false
}
