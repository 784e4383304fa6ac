package pivotline

// Ordinal maps discrete keys to a cyclic range of values. Keys get indices in the order of the domain, unknown keys are appended to the domain when first seen.
type Ordinal[T any] struct {
	index  map[string]int
	domain []string
	values []T
}

// NewOrdinal returns an ordinal scale over domain with range values.
func NewOrdinal[T any](domain []string, values []T) *Ordinal[T] {
	o := &Ordinal[T]{
		index:  map[string]int{},
		values: values,
	}
	for _, key := range domain {
		o.add(key)
	}
	return o
}

func (o *Ordinal[T]) add(key string) int {
	if i, ok := o.index[key]; ok {
		return i
	}
	i := len(o.domain)
	o.index[key] = i
	o.domain = append(o.domain, key)
	return i
}

// Domain returns the keys in index order.
func (o *Ordinal[T]) Domain() []string {
	return o.domain
}

// Map returns the value of key. It returns the zero value if the range is empty.
func (o *Ordinal[T]) Map(key string) T {
	var zero T
	if len(o.values) == 0 {
		return zero
	}
	return o.values[o.add(key)%len(o.values)]
}
