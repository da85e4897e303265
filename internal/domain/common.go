package domain

import (
	"context"

	"github.com/unipoint-lab/appcore/internal/store"
	"github.com/unipoint-lab/appcore/pkg/errorx"
)

// The helpers below reproduce the lifecycle every remote operation follows:
// mark pending, call the service, apply fulfilled or rejected. Rejections
// always store a normalized message, never a raw transport error.

func loadList[T any](
	ctx context.Context,
	c *store.Container[T],
	fetch func(context.Context) ([]T, error),
	fallback string,
) error {
	token := c.ListPending()
	items, err := fetch(ctx)
	if err != nil {
		c.ListRejected(token, errorx.Message(err, fallback))
		return err
	}

	c.ListFulfilled(token, items)
	return nil
}

func loadDetail[T any](
	ctx context.Context,
	c *store.Container[T],
	fetch func(context.Context) (T, error),
	fallback string,
) error {
	c.DetailPending()
	item, err := fetch(ctx)
	if err != nil {
		c.DetailRejected(errorx.Message(err, fallback))
		return err
	}

	c.DetailFulfilled(item)
	return nil
}

func createItem[T any](
	ctx context.Context,
	c *store.Container[T],
	create func(context.Context) (T, error),
	fallback string,
) (T, error) {
	c.SavePending()
	item, err := create(ctx)
	if err != nil {
		c.SaveRejected(errorx.Message(err, fallback))
		return item, err
	}

	c.CreateFulfilled(item)
	return item, nil
}

func updateItem[T any](
	ctx context.Context,
	c *store.Container[T],
	update func(context.Context) (T, error),
	match func(T) bool,
	fallback string,
) (T, error) {
	c.SavePending()
	item, err := update(ctx)
	if err != nil {
		c.SaveRejected(errorx.Message(err, fallback))
		return item, err
	}

	c.UpdateFulfilled(item, match)
	return item, nil
}

func deleteItem[T any](
	ctx context.Context,
	c *store.Container[T],
	remove func(context.Context) error,
	match func(T) bool,
	fallback string,
) error {
	c.SavePending()
	if err := remove(ctx); err != nil {
		c.SaveRejected(errorx.Message(err, fallback))
		return err
	}

	c.DeleteFulfilled(match)
	return nil
}
