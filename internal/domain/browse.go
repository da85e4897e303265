package domain

import (
	"context"
	"sync"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/service"
	"github.com/unipoint-lab/appcore/internal/store"
	"github.com/unipoint-lab/appcore/pkg/errorx"
	"github.com/unipoint-lab/appcore/pkg/xcontext"
	"golang.org/x/exp/slices"
)

// Browser drives the public event grid: free-text search, category filter and
// status filter, with per-category count badges computed from the population
// unfiltered by category, so selecting a category never collapses the badges
// to zero.
//
// The list endpoint cannot express "status ACTIVE or FINISHED" in one call,
// so with no status selected two requests run in parallel and the results
// merge client-side, first occurrence winning per id. Merged lists carry no
// stable server-side page semantics, therefore pagination only applies when a
// concrete status is selected.
type Browser struct {
	svc    service.EventService
	Events *store.Container[entity.Event]

	mu              sync.Mutex
	search          string
	categoryID      string
	status          *entity.EventStatus
	page            int
	totalPages      int
	countPopulation []entity.Event
	isFiltering     bool
}

func NewBrowser(svc service.EventService) *Browser {
	return &Browser{
		svc:    svc,
		Events: store.NewContainer[entity.Event](),
	}
}

func (b *Browser) Close() {
	b.Events.Close()
}

// SetSearch re-triggers the whole fetch sequence on every change. There is no
// debounce: each keystroke fires a fresh request pair.
func (b *Browser) SetSearch(ctx context.Context, search string) error {
	b.mu.Lock()
	b.search = search
	b.page = 1
	b.mu.Unlock()
	return b.Refresh(ctx)
}

func (b *Browser) SetCategory(ctx context.Context, categoryID string) error {
	b.mu.Lock()
	b.categoryID = categoryID
	b.page = 1
	b.mu.Unlock()
	return b.Refresh(ctx)
}

// SetStatus selects a concrete status, or all statuses when status is nil.
func (b *Browser) SetStatus(ctx context.Context, status *entity.EventStatus) error {
	b.mu.Lock()
	b.status = status
	b.page = 1
	b.mu.Unlock()
	return b.Refresh(ctx)
}

// SetPage is only meaningful while a concrete status is selected; pagination
// controls are hidden otherwise.
func (b *Browser) SetPage(ctx context.Context, page int) error {
	b.mu.Lock()
	b.page = page
	b.mu.Unlock()
	return b.Refresh(ctx)
}

// Refresh restarts the full dual-fetch-and-merge sequence from scratch. The
// display fetch and the category-agnostic count fetch run in parallel.
func (b *Browser) Refresh(ctx context.Context) error {
	b.mu.Lock()
	filter := model.ListEventsFilter{
		Page:       b.page,
		Search:     b.search,
		Status:     b.status,
		CategoryID: b.categoryID,
	}
	b.isFiltering = true
	b.mu.Unlock()

	token := b.Events.ListPending()

	type fetchResult struct {
		events     []entity.Event
		totalPages int
		err        error
	}

	displayCh := make(chan fetchResult, 1)
	countCh := make(chan fetchResult, 1)

	go func() {
		events, totalPages, err := b.fetch(ctx, filter)
		displayCh <- fetchResult{events: events, totalPages: totalPages, err: err}
	}()

	go func() {
		countFilter := filter
		countFilter.CategoryID = ""
		countFilter.Page = 0
		events, _, err := b.fetch(ctx, countFilter)
		countCh <- fetchResult{events: events, err: err}
	}()

	display := <-displayCh
	count := <-countCh

	b.mu.Lock()
	if count.err != nil {
		// Count badges keep their previous population on failure.
		xcontext.Logger(ctx).Warnf("Cannot refresh category counts: %v", count.err)
	} else {
		b.countPopulation = count.events
	}
	if display.err == nil {
		b.totalPages = display.totalPages
	}
	b.isFiltering = false
	b.mu.Unlock()

	if display.err != nil {
		b.Events.ListRejected(token, errorx.Message(display.err, "Cannot load events"))
		return display.err
	}

	b.Events.ListFulfilled(token, display.events)
	return nil
}

// fetch performs the display query for one filter. With no status selected it
// issues the ACTIVE and FINISHED requests in parallel and merges the results,
// because the backend cannot express the disjunction.
func (b *Browser) fetch(ctx context.Context, filter model.ListEventsFilter) ([]entity.Event, int, error) {
	if filter.Status != nil {
		page, err := b.svc.GetList(ctx, filter)
		if err != nil {
			return nil, 0, err
		}

		return page.Events, page.TotalPages, nil
	}

	// Pagination is meaningless for the merged list; neither branch sends a
	// page parameter.
	filter.Page = 0

	type branchResult struct {
		events []entity.Event
		err    error
	}

	activeCh := make(chan branchResult, 1)
	finishedCh := make(chan branchResult, 1)

	go func() {
		page, err := b.svc.GetList(ctx, filter.WithStatus(entity.EventActive))
		activeCh <- branchResult{events: page.Events, err: err}
	}()

	go func() {
		page, err := b.svc.GetList(ctx, filter.WithStatus(entity.EventFinished))
		finishedCh <- branchResult{events: page.Events, err: err}
	}()

	active := <-activeCh
	finished := <-finishedCh

	if active.err != nil {
		return nil, 0, active.err
	}
	if finished.err != nil {
		return nil, 0, finished.err
	}

	return mergeEvents(active.events, finished.events), 0, nil
}

// mergeEvents concatenates the ACTIVE branch before the FINISHED branch and
// drops later duplicates, so the first-encountered instance of an id wins.
func mergeEvents(active, finished []entity.Event) []entity.Event {
	merged := make([]entity.Event, 0, len(active)+len(finished))
	for _, ev := range append(append([]entity.Event{}, active...), finished...) {
		id := ev.ID
		exists := slices.IndexFunc(merged, func(e entity.Event) bool { return e.ID == id }) >= 0
		if !exists {
			merged = append(merged, ev)
		}
	}

	return merged
}

// CategoryCounts maps category id to the number of events in the population
// unfiltered by category.
func (b *Browser) CategoryCounts() map[string]int {
	b.mu.Lock()
	defer b.mu.Unlock()

	counts := make(map[string]int)
	for _, ev := range b.countPopulation {
		if id := ev.CategoryID(); id != "" {
			counts[id]++
		}
	}

	return counts
}

// Loading ORs the local filtering flag with the slice's own loading flag; the
// grid shows a skeleton while either holds.
func (b *Browser) Loading() bool {
	b.mu.Lock()
	filtering := b.isFiltering
	b.mu.Unlock()

	return filtering || b.Events.Snapshot().LoadingList
}

// PaginationVisible reports whether pagination controls render: only with a
// concrete status selected and more than one page.
func (b *Browser) PaginationVisible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.status != nil && b.totalPages > 1
}

// Filter returns the current filter selection.
func (b *Browser) Filter() model.ListEventsFilter {
	b.mu.Lock()
	defer b.mu.Unlock()

	return model.ListEventsFilter{
		Page:       b.page,
		Search:     b.search,
		Status:     b.status,
		CategoryID: b.categoryID,
	}
}
