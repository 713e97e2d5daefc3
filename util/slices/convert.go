package slices

// Partition splits values into the elements of type T and everything else,
// keeping the order of both.
func Partition[T any](values []any) ([]T, []any) {
	var (
		matched []T
		rest    []any
	)

	for _, v := range values {
		if t, ok := v.(T); ok {
			matched = append(matched, t)
		} else {
			rest = append(rest, v)
		}
	}

	return matched, rest
}
