package main

import (
	"context"
	"net/http"

	"github.com/unipoint-lab/appcore/config"
	"github.com/unipoint-lab/appcore/internal/domain"
	"github.com/unipoint-lab/appcore/internal/service"
	"github.com/unipoint-lab/appcore/pkg/api"
	"github.com/unipoint-lab/appcore/pkg/authenticator"
	"github.com/unipoint-lab/appcore/pkg/logger"
	"github.com/unipoint-lab/appcore/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs config.Configs
	auth    authenticator.Authenticator

	eventSvc      service.EventService
	productSvc    service.ProductService
	invoiceSvc    service.InvoiceService
	walletSvc     service.WalletService
	studentSvc    service.StudentService
	universitySvc service.UniversityService
	partnerSvc    service.PartnerService
	categorySvc   service.EventCategoryService
	userSvc       service.UserService

	browser    *domain.Browser
	redeemFlow *domain.RedeemFlow
	onboarding *domain.Onboarding
	checkIn    *domain.CheckIn
	wallet     *domain.WalletViewer
	events     *domain.Events
	products   *domain.Products
	partners   *domain.Partners
	unis       *domain.Universities
	students   *domain.Students
	invoices   *domain.Invoices
	profile    *domain.Profile
}

func (s *srv) loadConfig(path string) error {
	configs, err := config.Load(path)
	if err != nil {
		return err
	}

	s.configs = configs
	return nil
}

func (s *srv) loadContext() {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, s.configs)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(s.configs.Log.Level))
	ctx = xcontext.WithHTTPClient(ctx, &http.Client{Timeout: s.configs.API.Timeout()})
	s.ctx = ctx
}

func (s *srv) loadAuthenticator() error {
	auth, err := authenticator.NewOIDC(s.ctx, s.configs.Auth)
	if err != nil {
		return err
	}

	s.auth = auth
	return nil
}

func (s *srv) loadServices() {
	gen := api.NewGenerator(s.configs.API.BaseURL)

	s.eventSvc = service.NewEventService(gen, s.auth)
	s.productSvc = service.NewProductService(gen, s.auth)
	s.invoiceSvc = service.NewInvoiceService(gen, s.auth)
	s.walletSvc = service.NewWalletService(gen, s.auth)
	s.studentSvc = service.NewStudentService(gen, s.auth)
	s.universitySvc = service.NewUniversityService(gen, s.auth)
	s.partnerSvc = service.NewPartnerService(gen, s.auth)
	s.categorySvc = service.NewEventCategoryService(gen, s.auth)
	s.userSvc = service.NewUserService(gen, s.auth)
}

func (s *srv) loadDomains() {
	s.browser = domain.NewBrowser(s.eventSvc)
	s.redeemFlow = domain.NewRedeemFlow(s.productSvc, s.invoiceSvc)
	s.onboarding = domain.NewOnboarding(s.auth, s.userSvc)
	s.checkIn = domain.NewCheckIn(s.eventSvc)
	s.wallet = domain.NewWalletViewer(s.walletSvc)
	s.events = domain.NewEvents(s.eventSvc)
	s.products = domain.NewProducts(s.productSvc)
	s.partners = domain.NewPartners(s.partnerSvc)
	s.unis = domain.NewUniversities(s.universitySvc)
	s.students = domain.NewStudents(s.studentSvc)
	s.invoices = domain.NewInvoices(s.invoiceSvc)
	s.profile = domain.NewProfile(s.userSvc)
}
