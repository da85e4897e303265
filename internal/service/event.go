package service

import (
	"context"
	"strconv"

	"github.com/fatih/structs"
	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/pkg/api"
	"github.com/unipoint-lab/appcore/pkg/errorx"
	"github.com/unipoint-lab/appcore/pkg/xcontext"
)

type EventService interface {
	GetList(ctx context.Context, filter model.ListEventsFilter) (model.EventPage, error)
	Get(ctx context.Context, id string) (entity.Event, error)
	Create(ctx context.Context, form model.UpsertEventForm) (entity.Event, error)
	Update(ctx context.Context, id string, form model.UpsertEventForm) (entity.Event, error)
	Delete(ctx context.Context, id string) error
	Register(ctx context.Context, id string) error
	SubmitFeedback(ctx context.Context, id string, form model.FeedbackForm) error
	GetFeedback(ctx context.Context, id string) ([]entity.EventFeedback, error)
	CheckIn(ctx context.Context, eventID, phone string) (model.CheckInResult, error)
	GetAttendees(ctx context.Context, id string, page int) (model.AttendeePage, error)
}

type eventService struct {
	base
}

func NewEventService(gen api.Generator, tokens TokenSource) EventService {
	return &eventService{base{gen: gen, tokens: tokens}}
}

func (s *eventService) GetList(ctx context.Context, filter model.ListEventsFilter) (model.EventPage, error) {
	const fallback = "Cannot load events"

	opt, err := s.auth(ctx)
	if err != nil {
		return model.EventPage{}, err
	}

	query := api.Parameter{}
	if filter.Page > 0 {
		query["page"] = strconv.Itoa(filter.Page)
	}
	if filter.Search != "" {
		query["search"] = filter.Search
	}
	if filter.Status != nil {
		query["status"] = string(*filter.Status)
	}
	if filter.CategoryID != "" {
		query["categoryId"] = filter.CategoryID
	}

	resp, err := s.gen.New("/events").Query(query).GET(ctx, opt)
	if err != nil {
		return model.EventPage{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return model.EventPage{}, err
	}

	data, err := dataObject(resp)
	if err != nil {
		return model.EventPage{}, err
	}

	items, err := data.GetArray("items")
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot read event items: %v", err)
		return model.EventPage{}, errorx.New(errorx.BadResponse, fallback)
	}

	events, err := entity.DecodeList[entity.Event](items)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode events: %v", err)
		return model.EventPage{}, errorx.New(errorx.BadResponse, fallback)
	}

	total, totalPages := pageInfo(data)
	return model.EventPage{Events: events, Total: total, TotalPages: totalPages}, nil
}

func (s *eventService) Get(ctx context.Context, id string) (entity.Event, error) {
	const fallback = "Cannot load event"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.Event{}, err
	}

	resp, err := s.gen.New("/events/%s", id).GET(ctx, opt)
	if err != nil {
		return entity.Event{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.Event{}, err
	}

	return decodeEvent(ctx, resp, fallback)
}

func (s *eventService) Create(ctx context.Context, form model.UpsertEventForm) (entity.Event, error) {
	const fallback = "Cannot create event"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.Event{}, err
	}

	resp, err := s.gen.New("/events").Body(api.JSON(structs.Map(form))).POST(ctx, opt)
	if err != nil {
		return entity.Event{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.Event{}, err
	}

	return decodeEvent(ctx, resp, fallback)
}

func (s *eventService) Update(ctx context.Context, id string, form model.UpsertEventForm) (entity.Event, error) {
	const fallback = "Cannot update event"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.Event{}, err
	}

	resp, err := s.gen.New("/events/%s", id).Body(api.JSON(structs.Map(form))).PUT(ctx, opt)
	if err != nil {
		return entity.Event{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.Event{}, err
	}

	return decodeEvent(ctx, resp, fallback)
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	const fallback = "Cannot delete event"

	opt, err := s.auth(ctx)
	if err != nil {
		return err
	}

	resp, err := s.gen.New("/events/%s", id).DELETE(ctx, opt)
	if err != nil {
		return errorx.New(errorx.Unavailable, fallback)
	}

	return check(resp, fallback)
}

func (s *eventService) Register(ctx context.Context, id string) error {
	const fallback = "Cannot register for event"

	opt, err := s.auth(ctx)
	if err != nil {
		return err
	}

	resp, err := s.gen.New("/events/%s/register", id).POST(ctx, opt)
	if err != nil {
		return errorx.New(errorx.Unavailable, fallback)
	}

	return check(resp, fallback)
}

func (s *eventService) SubmitFeedback(ctx context.Context, id string, form model.FeedbackForm) error {
	const fallback = "Cannot submit feedback"

	opt, err := s.auth(ctx)
	if err != nil {
		return err
	}

	resp, err := s.gen.New("/events/%s/feedback", id).Body(api.JSON(structs.Map(form))).POST(ctx, opt)
	if err != nil {
		return errorx.New(errorx.Unavailable, fallback)
	}

	return check(resp, fallback)
}

func (s *eventService) GetFeedback(ctx context.Context, id string) ([]entity.EventFeedback, error) {
	const fallback = "Cannot load feedback"

	opt, err := s.auth(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.gen.New("/events/%s/feedback", id).GET(ctx, opt)
	if err != nil {
		return nil, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return nil, err
	}

	array, err := dataArray(resp)
	if err != nil {
		return nil, err
	}

	feedback, err := entity.DecodeList[entity.EventFeedback](array)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode feedback: %v", err)
		return nil, errorx.New(errorx.BadResponse, fallback)
	}

	return feedback, nil
}

func (s *eventService) CheckIn(ctx context.Context, eventID, phone string) (model.CheckInResult, error) {
	const fallback = "Cannot check in"

	opt, err := s.auth(ctx)
	if err != nil {
		return model.CheckInResult{}, err
	}

	body := api.JSON{"eventId": eventID, "phone": phone}
	resp, err := s.gen.New("/events/checkin").Body(body).POST(ctx, opt)
	if err != nil {
		return model.CheckInResult{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return model.CheckInResult{}, err
	}

	data, err := dataObject(resp)
	if err != nil {
		return model.CheckInResult{}, err
	}

	result, err := entity.Decode[model.CheckInResult](data)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode checkin result: %v", err)
		return model.CheckInResult{}, errorx.New(errorx.BadResponse, fallback)
	}

	return result, nil
}

func (s *eventService) GetAttendees(ctx context.Context, id string, page int) (model.AttendeePage, error) {
	const fallback = "Cannot load attendees"

	opt, err := s.auth(ctx)
	if err != nil {
		return model.AttendeePage{}, err
	}

	query := api.Parameter{}
	if page > 0 {
		query["page"] = strconv.Itoa(page)
	}

	resp, err := s.gen.New("/events/%s/attendees", id).Query(query).GET(ctx, opt)
	if err != nil {
		return model.AttendeePage{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return model.AttendeePage{}, err
	}

	data, err := dataObject(resp)
	if err != nil {
		return model.AttendeePage{}, err
	}

	items, err := data.GetArray("items")
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot read attendee items: %v", err)
		return model.AttendeePage{}, errorx.New(errorx.BadResponse, fallback)
	}

	attendees, err := entity.DecodeList[entity.EventAttendee](items)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode attendees: %v", err)
		return model.AttendeePage{}, errorx.New(errorx.BadResponse, fallback)
	}

	total, totalPages := pageInfo(data)
	return model.AttendeePage{Attendees: attendees, Total: total, TotalPages: totalPages}, nil
}

func decodeEvent(ctx context.Context, resp *api.Response, fallback string) (entity.Event, error) {
	data, err := dataObject(resp)
	if err != nil {
		return entity.Event{}, err
	}

	event, err := entity.Decode[entity.Event](data)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode event: %v", err)
		return entity.Event{}, errorx.New(errorx.BadResponse, fallback)
	}

	return event, nil
}
