package store

// Slice is the presentation state of one record kind: the fetched list, an
// independently loaded detail record, per-concern loading flags and the last
// normalized error message. It mirrors server state until the next fetch; no
// client-side identity or lifecycle exists beyond that.
type Slice[T any] struct {
	List          []T
	Detail        *T
	LoadingList   bool
	LoadingDetail bool
	Saving        bool
	Error         string
}

// clone returns a copy safe to hand to subscribers. The list backing array is
// shared; reducers always replace it wholesale, never mutate in place.
func (s Slice[T]) clone() Slice[T] {
	return s
}
