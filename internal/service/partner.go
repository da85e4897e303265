package service

import (
	"context"

	"github.com/fatih/structs"
	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/pkg/api"
	"github.com/unipoint-lab/appcore/pkg/errorx"
	"github.com/unipoint-lab/appcore/pkg/xcontext"
)

type PartnerService interface {
	GetList(ctx context.Context) ([]entity.Partner, error)
	Create(ctx context.Context, form model.UpsertPartnerForm) (entity.Partner, error)
	Update(ctx context.Context, id string, form model.UpsertPartnerForm) (entity.Partner, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status entity.AccountStatus) (entity.Partner, error)
}

type partnerService struct {
	base
}

func NewPartnerService(gen api.Generator, tokens TokenSource) PartnerService {
	return &partnerService{base{gen: gen, tokens: tokens}}
}

func (s *partnerService) GetList(ctx context.Context) ([]entity.Partner, error) {
	const fallback = "Cannot load partners"

	opt, err := s.auth(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.gen.New("/partners").GET(ctx, opt)
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

	partners, err := entity.DecodeList[entity.Partner](array)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode partners: %v", err)
		return nil, errorx.New(errorx.BadResponse, fallback)
	}

	return partners, nil
}

func (s *partnerService) Create(ctx context.Context, form model.UpsertPartnerForm) (entity.Partner, error) {
	const fallback = "Cannot create partner"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.Partner{}, err
	}

	resp, err := s.gen.New("/partners").Body(api.JSON(structs.Map(form))).POST(ctx, opt)
	if err != nil {
		return entity.Partner{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.Partner{}, err
	}

	return decodePartner(ctx, resp, fallback)
}

func (s *partnerService) Update(ctx context.Context, id string, form model.UpsertPartnerForm) (entity.Partner, error) {
	const fallback = "Cannot update partner"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.Partner{}, err
	}

	resp, err := s.gen.New("/partners/%s", id).Body(api.JSON(structs.Map(form))).PUT(ctx, opt)
	if err != nil {
		return entity.Partner{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.Partner{}, err
	}

	return decodePartner(ctx, resp, fallback)
}

func (s *partnerService) Delete(ctx context.Context, id string) error {
	const fallback = "Cannot delete partner"

	opt, err := s.auth(ctx)
	if err != nil {
		return err
	}

	resp, err := s.gen.New("/partners/%s", id).DELETE(ctx, opt)
	if err != nil {
		return errorx.New(errorx.Unavailable, fallback)
	}

	return check(resp, fallback)
}

func (s *partnerService) UpdateStatus(ctx context.Context, id string, status entity.AccountStatus) (entity.Partner, error) {
	const fallback = "Cannot update partner status"

	opt, err := s.auth(ctx)
	if err != nil {
		return entity.Partner{}, err
	}

	body := api.JSON{"status": string(status)}
	resp, err := s.gen.New("/partners/%s/status", id).Body(body).PATCH(ctx, opt)
	if err != nil {
		return entity.Partner{}, errorx.New(errorx.Unavailable, fallback)
	}

	if err := check(resp, fallback); err != nil {
		return entity.Partner{}, err
	}

	return decodePartner(ctx, resp, fallback)
}

func decodePartner(ctx context.Context, resp *api.Response, fallback string) (entity.Partner, error) {
	data, err := dataObject(resp)
	if err != nil {
		return entity.Partner{}, err
	}

	partner, err := entity.Decode[entity.Partner](data)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode partner: %v", err)
		return entity.Partner{}, errorx.New(errorx.BadResponse, fallback)
	}

	return partner, nil
}
