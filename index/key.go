package index

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"time"
)

// A Key provides its own serialized index key. Implementing it makes any
// type usable as a Mapping or Function index key.
type Key interface {
	IndexKey() []byte
}

var keyInterface = reflect.TypeOf((*Key)(nil)).Elem()

var timeType = reflect.TypeOf(time.Time{})

var unixSecondsOffset = time.Time{}.Unix()

// A keyFn serializes one key type to a byte sequence that sorts in the
// type's natural order.
type keyFn func(reflect.Value) []byte

func keyFnForType(t reflect.Type) keyFn {
	if t.Implements(keyInterface) {
		return func(v reflect.Value) []byte {
			return v.Interface().(Key).IndexKey()
		}
	}
	if t == timeType {
		return func(v reflect.Value) []byte {
			// Seconds (offset so that time.Time{} is all zeros) plus
			// nanoseconds, both big-endian, so the serialization sorts
			// chronologically.
			b := make([]byte, 12)
			t := v.Interface().(time.Time)
			binary.BigEndian.PutUint64(b[:8], uint64(t.Unix()-unixSecondsOffset))
			binary.BigEndian.PutUint32(b[8:], uint32(t.Nanosecond()))
			return b
		}
	}
	switch t.Kind() {
	case reflect.Bool:
		return func(v reflect.Value) []byte {
			if v.Bool() {
				return []byte{1}
			}
			return []byte{0}
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		offset := 8 - t.Size()
		return func(v reflect.Value) []byte {
			var b [8]byte
			binary.BigEndian.PutUint64(b[:], v.Uint())
			return b[offset:]
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		offset := 8 - t.Size()
		return func(v reflect.Value) []byte {
			var b [8]byte
			binary.BigEndian.PutUint64(b[:], uint64(v.Int()))
			// inverting the sign bit makes the serializations sort naturally
			b[offset] ^= 0x80
			return b[offset:]
		}
	case reflect.String:
		return func(v reflect.Value) []byte {
			return []byte(v.String() + "\x00")
		}
	default:
		return nil
	}
}

// keyFnFor returns the serializer for the keys of a concrete index domain.
// Panics on unsupported key types: which types a program indexes by is
// fixed at compile time, so this is a programming error, not a data error.
func keyFnFor[K comparable]() keyFn {
	t := reflect.TypeOf(*new(K))
	fn := keyFnForType(t)
	if fn == nil {
		panic(fmt.Errorf("type %s is not indexable", t))
	}
	return fn
}

// keyFor serializes a single key with a serializer obtained from keyFnFor.
func keyFor[K comparable](fn keyFn, key K) []byte {
	return fn(reflect.ValueOf(key))
}
