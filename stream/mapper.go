package stream

// Mapper is the optional transformation stage of a Stream.
// Map takes ownership of the element, and either returns it, returns a replacement,
// or drops it and reports false to suppress it.
// A Mapper may be stateful.
type Mapper[T any] interface {
	Map(T) (T, bool)
}

type MapperFunc[T any] func(T) (T, bool)

func (fn MapperFunc[T]) Map(v T) (T, bool) { return fn(v) }

// Filter returns a Mapper that keeps elements matching the predicate.
func Filter[T any](match func(T) bool) Mapper[T] {
	return MapperFunc[T](func(v T) (T, bool) {
		if match(v) {
			return v, true
		}
		var zero T
		return zero, false
	})
}

// Transform returns a Mapper that replaces each element with fn's result.
func Transform[T any](fn func(T) T) Mapper[T] {
	return MapperFunc[T](func(v T) (T, bool) {
		return fn(v), true
	})
}

// Chain composes mappers from left to right.
// The first Mapper that suppresses an element stops the chain for that element.
func Chain[T any](mappers ...Mapper[T]) Mapper[T] {
	return MapperFunc[T](func(v T) (T, bool) {
		for _, m := range mappers {
			var ok bool
			v, ok = m.Map(v)
			if !ok {
				var zero T
				return zero, false
			}
		}
		return v, true
	})
}
