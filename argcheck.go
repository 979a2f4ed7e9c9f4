// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmdq

import "reflect"

// checkArg panics when T contains Go pointers. Packed argument bytes are
// invisible to the garbage collector, so a pointer stored there does not
// keep its target alive; such state must travel in a closure instead.
//
// The walk runs only in race-detector builds (RaceEnabled is a constant,
// so regular builds compile the call away entirely). A violation is a
// program bug, not an input condition, which is the same footing the
// race detector itself operates on.
func checkArg[T any]() {
	if !RaceEnabled {
		return
	}
	t := reflect.TypeFor[T]()
	if hasPointers(t) {
		panic("cmdq: argument type " + t.String() +
			" contains Go pointers; capture it in a closure via Enqueue instead")
	}
}

// hasPointers reports whether values of t embed Go pointers anywhere.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, strings, slices, maps, chans, funcs,
		// interfaces, unsafe.Pointer.
		return true
	}
}
