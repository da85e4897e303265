package domain

import (
	"context"
	"sync"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/service"
	"github.com/unipoint-lab/appcore/internal/store"
)

// Events binds the event slice to the event service. Mutations patch the list
// locally; callers reload when a derived view needs fresh data.
type Events struct {
	svc   service.EventService
	Store *store.Container[entity.Event]

	mu         sync.Mutex
	total      int
	totalPages int
}

func NewEvents(svc service.EventService, opts ...store.Option) *Events {
	return &Events{
		svc:   svc,
		Store: store.NewContainer[entity.Event](opts...),
	}
}

func (e *Events) Close() {
	e.Store.Close()
}

func (e *Events) LoadAll(ctx context.Context, filter model.ListEventsFilter) error {
	return loadList(ctx, e.Store, func(ctx context.Context) ([]entity.Event, error) {
		page, err := e.svc.GetList(ctx, filter)
		if err != nil {
			return nil, err
		}

		e.mu.Lock()
		e.total, e.totalPages = page.Total, page.TotalPages
		e.mu.Unlock()
		return page.Events, nil
	}, "Cannot load events")
}

func (e *Events) LoadDetail(ctx context.Context, id string) error {
	return loadDetail(ctx, e.Store, func(ctx context.Context) (entity.Event, error) {
		return e.svc.Get(ctx, id)
	}, "Cannot load event")
}

func (e *Events) Create(ctx context.Context, form model.UpsertEventForm) (entity.Event, error) {
	if err := model.Validate(form); err != nil {
		return entity.Event{}, err
	}

	return createItem(ctx, e.Store, func(ctx context.Context) (entity.Event, error) {
		return e.svc.Create(ctx, form)
	}, "Cannot create event")
}

func (e *Events) Update(ctx context.Context, id string, form model.UpsertEventForm) (entity.Event, error) {
	if err := model.Validate(form); err != nil {
		return entity.Event{}, err
	}

	return updateItem(ctx, e.Store, func(ctx context.Context) (entity.Event, error) {
		return e.svc.Update(ctx, id, form)
	}, func(ev entity.Event) bool { return ev.ID == id }, "Cannot update event")
}

func (e *Events) Delete(ctx context.Context, id string) error {
	return deleteItem(ctx, e.Store, func(ctx context.Context) error {
		return e.svc.Delete(ctx, id)
	}, func(ev entity.Event) bool { return ev.ID == id }, "Cannot delete event")
}

// Register signs the current student up. The slice is untouched; the event
// list reflects the registration only after the next load.
func (e *Events) Register(ctx context.Context, id string) error {
	return e.svc.Register(ctx, id)
}

func (e *Events) SubmitFeedback(ctx context.Context, id string, form model.FeedbackForm) error {
	if err := model.Validate(form); err != nil {
		return err
	}

	return e.svc.SubmitFeedback(ctx, id, form)
}

func (e *Events) Feedback(ctx context.Context, id string) ([]entity.EventFeedback, error) {
	return e.svc.GetFeedback(ctx, id)
}

func (e *Events) Attendees(ctx context.Context, id string, page int) (model.AttendeePage, error) {
	return e.svc.GetAttendees(ctx, id, page)
}

func (e *Events) PageInfo() (total, totalPages int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.total, e.totalPages
}
