package domain

import (
	"context"
	"sync"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/internal/service"
	"github.com/unipoint-lab/appcore/internal/store"
)

// Students binds the student slice for the admin roster. Students are never
// created or deleted here; accounts come from sign-up and are only toggled
// between ACTIVE and INACTIVE.
type Students struct {
	svc   service.StudentService
	Store *store.Container[entity.Student]

	mu         sync.Mutex
	total      int
	totalPages int
}

func NewStudents(svc service.StudentService, opts ...store.Option) *Students {
	return &Students{
		svc:   svc,
		Store: store.NewContainer[entity.Student](opts...),
	}
}

func (s *Students) Close() {
	s.Store.Close()
}

func (s *Students) LoadAll(ctx context.Context, filter model.ListStudentsFilter) error {
	return loadList(ctx, s.Store, func(ctx context.Context) ([]entity.Student, error) {
		page, err := s.svc.GetList(ctx, filter)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.total, s.totalPages = page.Total, page.TotalPages
		s.mu.Unlock()
		return page.Students, nil
	}, "Cannot load students")
}

func (s *Students) LoadDetail(ctx context.Context, id string) error {
	return loadDetail(ctx, s.Store, func(ctx context.Context) (entity.Student, error) {
		return s.svc.Get(ctx, id)
	}, "Cannot load student")
}

func (s *Students) SetStatus(ctx context.Context, id string, status entity.AccountStatus) (entity.Student, error) {
	return updateItem(ctx, s.Store, func(ctx context.Context) (entity.Student, error) {
		return s.svc.UpdateStatus(ctx, id, status)
	}, func(st entity.Student) bool { return st.ID == id }, "Cannot update student status")
}

func (s *Students) PageInfo() (total, totalPages int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total, s.totalPages
}
