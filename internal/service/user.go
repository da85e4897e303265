package service

import (
	"context"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/pkg/api"
	"github.com/unipoint-lab/appcore/pkg/errorx"
	"github.com/unipoint-lab/appcore/pkg/xcontext"
)

type UserService interface {
	Me(ctx context.Context) (entity.User, error)
	MyEvents(ctx context.Context) ([]entity.Event, error)

	// CompleteProfile finishes onboarding with the normalized phone and an
	// optional avatar. It runs after the identity-provider attribute patch.
	CompleteProfile(ctx context.Context, phone, avatarURL string) (entity.User, error)
}

type userService struct {
	base
}

func NewUserService(gen api.Generator, tokens TokenSource) UserService {
	return &userService{base{gen: gen, tokens: tokens}}
}

func (s *userService) Me(ctx context.Context) (entity.User, error) {
	const fallback = "Cannot load profile"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.User{}, err
	}

	resp, err := s.gen.New("/me").GET(ctx, opt)
	if err != nil {
		return entity.User{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.User{}, err
	}

	return decodeUser(ctx, resp, fallback)
}

func (s *userService) MyEvents(ctx context.Context) ([]entity.Event, error) {
	const fallback = "Cannot load registered events"

	opt, err := s.auth(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.gen.New("/students/me/events").GET(ctx, opt)
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

	events, err := entity.DecodeList[entity.Event](array)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode registered events: %v", err)
		return nil, errorx.New(errorx.BadResponse, fallback)
	}

	return events, nil
}

func (s *userService) CompleteProfile(ctx context.Context, phone, avatarURL string) (entity.User, error) {
	const fallback = "Cannot complete profile"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.User{}, err
	}

	body := api.JSON{"phone": phone}
	if avatarURL != "" {
		body["avatarUrl"] = avatarURL
	}

	resp, err := s.gen.New("/students/me/complete-profile").Body(body).POST(ctx, opt)
	if err != nil {
		return entity.User{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.User{}, err
	}

	return decodeUser(ctx, resp, fallback)
}

func decodeUser(ctx context.Context, resp *api.Response, fallback string) (entity.User, error) {
	data, err := dataObject(resp)
	if err != nil {
		return entity.User{}, err
	}

	user, err := entity.Decode[entity.User](data)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode user: %v", err)
		return entity.User{}, errorx.New(errorx.BadResponse, fallback)
	}

	return user, nil
}
