package domain

import (
	"context"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/service"
)

// Profile exposes the signed-in user's own data.
type Profile struct {
	svc service.UserService
}

func NewProfile(svc service.UserService) *Profile {
	return &Profile{svc: svc}
}

func (p *Profile) Me(ctx context.Context) (entity.User, error) {
	return p.svc.Me(ctx)
}

// MyEvents lists the events the student registered for.
func (p *Profile) MyEvents(ctx context.Context) ([]entity.Event, error) {
	return p.svc.MyEvents(ctx)
}
