package store

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync"
)

// LoadToken orders list loads. Tokens are snowflake ids, so a later-issued
// load always carries a larger token.
type LoadToken int64

var (
	nodeOnce sync.Once
	node     *snowflake.Node
)

func nextToken() LoadToken {
	nodeOnce.Do(func() {
		var err error
		node, err = snowflake.NewNode(1)
		if err != nil {
			panic(err)
		}
	})

	return LoadToken(node.Generate().Int64())
}

// Container owns the Slice of one record kind. A single goroutine applies
// every state update, so concurrent actions serialize and the last applied
// fulfillment wins. There is no deduplication of in-flight loads: two racing
// loads produce two applications.
type Container[T any] struct {
	commands chan func(*containerState[T]) bool
	requests chan chan Slice[T]
	done     chan struct{}
	closed   sync.Once

	// staleGuard drops a list fulfillment carrying an older token than the
	// newest issued load. Off by default: the faithful contract is plain
	// last-write-wins.
	staleGuard bool

	subscribers *xsync.MapOf[string, chan Slice[T]]
}

type containerState[T any] struct {
	slice      Slice[T]
	latestLoad LoadToken
}

type Option func(*options)

type options struct {
	staleGuard bool
}

// WithStaleGuard enables dropping of out-of-order list fulfillments.
func WithStaleGuard() Option {
	return func(o *options) { o.staleGuard = true }
}

func NewContainer[T any](opts ...Option) *Container[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Container[T]{
		commands:    make(chan func(*containerState[T]) bool),
		requests:    make(chan chan Slice[T]),
		done:        make(chan struct{}),
		staleGuard:  o.staleGuard,
		subscribers: xsync.NewMapOf[chan Slice[T]](),
	}

	go c.run()
	return c
}

func (c *Container[T]) run() {
	state := containerState[T]{}
	for {
		select {
		case cmd := <-c.commands:
			if cmd(&state) {
				c.notify(state.slice)
			}

		case req := <-c.requests:
			req <- state.slice.clone()

		case <-c.done:
			return
		}
	}
}

func (c *Container[T]) notify(slice Slice[T]) {
	c.subscribers.Range(func(id string, ch chan Slice[T]) bool {
		// Never block the coordinator on a slow subscriber.
		select {
		case ch <- slice.clone():
		default:
		}
		return true
	})
}

func (c *Container[T]) apply(cmd func(*containerState[T]) bool) {
	select {
	case c.commands <- cmd:
	case <-c.done:
	}
}

// Snapshot returns the current slice state.
func (c *Container[T]) Snapshot() Slice[T] {
	req := make(chan Slice[T], 1)
	select {
	case c.requests <- req:
		return <-req
	case <-c.done:
		return Slice[T]{}
	}
}

// Subscribe registers a notification channel receiving the slice after every
// state change. Notifications may be dropped under pressure; subscribers can
// always Snapshot for the latest state.
func (c *Container[T]) Subscribe() (string, <-chan Slice[T]) {
	id := uuid.NewString()
	ch := make(chan Slice[T], 16)
	c.subscribers.Store(id, ch)
	return id, ch
}

func (c *Container[T]) Unsubscribe(id string) {
	c.subscribers.Delete(id)
}

func (c *Container[T]) Close() {
	c.closed.Do(func() { close(c.done) })
}

// ListPending marks a list load in flight and returns its ordering token.
func (c *Container[T]) ListPending() LoadToken {
	token := nextToken()
	c.apply(func(s *containerState[T]) bool {
		s.slice.LoadingList = true
		if token > s.latestLoad {
			s.latestLoad = token
		}
		return true
	})

	return token
}

// ListFulfilled replaces the whole list (never a merge) and clears the error.
func (c *Container[T]) ListFulfilled(token LoadToken, items []T) {
	c.apply(func(s *containerState[T]) bool {
		if c.staleGuard && token < s.latestLoad {
			return false
		}

		s.slice.List = items
		s.slice.LoadingList = false
		s.slice.Error = ""
		return true
	})
}

// ListRejected stores the normalized message and leaves the prior list alone.
func (c *Container[T]) ListRejected(token LoadToken, message string) {
	c.apply(func(s *containerState[T]) bool {
		s.slice.LoadingList = false
		s.slice.Error = message
		return true
	})
}

func (c *Container[T]) DetailPending() {
	c.apply(func(s *containerState[T]) bool {
		s.slice.LoadingDetail = true
		return true
	})
}

func (c *Container[T]) DetailFulfilled(item T) {
	c.apply(func(s *containerState[T]) bool {
		s.slice.Detail = &item
		s.slice.LoadingDetail = false
		s.slice.Error = ""
		return true
	})
}

func (c *Container[T]) DetailRejected(message string) {
	c.apply(func(s *containerState[T]) bool {
		s.slice.LoadingDetail = false
		s.slice.Error = message
		return true
	})
}

func (c *Container[T]) SavePending() {
	c.apply(func(s *containerState[T]) bool {
		s.slice.Saving = true
		return true
	})
}

func (c *Container[T]) SaveRejected(message string) {
	c.apply(func(s *containerState[T]) bool {
		s.slice.Saving = false
		s.slice.Error = message
		return true
	})
}

// CreateFulfilled appends locally. The list is NOT refetched; callers reload
// when a derived view depends on fresh data.
func (c *Container[T]) CreateFulfilled(item T) {
	c.apply(func(s *containerState[T]) bool {
		s.slice.List = append(s.slice.List[:len(s.slice.List):len(s.slice.List)], item)
		s.slice.Saving = false
		s.slice.Error = ""
		return true
	})
}

// UpdateFulfilled replaces the first record matching match. No append happens
// when nothing matches.
func (c *Container[T]) UpdateFulfilled(item T, match func(T) bool) {
	c.apply(func(s *containerState[T]) bool {
		list := make([]T, len(s.slice.List))
		copy(list, s.slice.List)
		for i := range list {
			if match(list[i]) {
				list[i] = item
				break
			}
		}

		s.slice.List = list
		if s.slice.Detail != nil && match(*s.slice.Detail) {
			s.slice.Detail = &item
		}

		s.slice.Saving = false
		s.slice.Error = ""
		return true
	})
}

// DeleteFulfilled filters out every record matching match.
func (c *Container[T]) DeleteFulfilled(match func(T) bool) {
	c.apply(func(s *containerState[T]) bool {
		list := make([]T, 0, len(s.slice.List))
		for _, item := range s.slice.List {
			if !match(item) {
				list = append(list, item)
			}
		}

		s.slice.List = list
		s.slice.Saving = false
		s.slice.Error = ""
		return true
	})
}
