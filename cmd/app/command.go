package main

import (
	"github.com/urfave/cli/v2"
)

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "unipoint"
	app.Usage = "Student engagement platform client"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path of the config file",
			Value: "config.toml",
		},
	}
	app.Before = func(c *cli.Context) error {
		if err := s.loadConfig(c.String("config")); err != nil {
			return err
		}

		s.loadContext()
		if err := s.loadAuthenticator(); err != nil {
			return err
		}

		s.loadServices()
		s.loadDomains()
		return nil
	}

	app.Commands = []*cli.Command{
		{
			Action:   s.login,
			Name:     "login",
			Usage:    "Sign in through the identity provider",
			Category: "Account",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "code", Usage: "Authorization code from the redirect"},
			},
		},
		{
			Action:   s.browseEvents,
			Name:     "events",
			Usage:    "Browse events with search, category and status filters",
			Category: "Events",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "search"},
				&cli.StringFlag{Name: "category"},
				&cli.StringFlag{Name: "status", Usage: "ACTIVE or FINISHED; omit for all"},
				&cli.IntFlag{Name: "page", Value: 1},
			},
		},
		{
			Action:   s.registerEvent,
			Name:     "register",
			Usage:    "Register for an event",
			Category: "Events",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "event", Required: true},
			},
		},
		{
			Action:   s.listGifts,
			Name:     "gifts",
			Usage:    "List redeemable products with affordability",
			Category: "Redemption",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "type", Usage: "VOUCHER, GIFT, MERCH or SERVICE"},
			},
		},
		{
			Action:   s.redeem,
			Name:     "redeem",
			Usage:    "Redeem points for a product",
			Category: "Redemption",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "product", Required: true},
				&cli.IntFlag{Name: "quantity", Value: 1},
			},
		},
		{
			Action:   s.checkin,
			Name:     "checkin",
			Usage:    "Check a student in to an event by phone number",
			Category: "Events",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "event", Required: true},
				&cli.StringFlag{Name: "phone", Required: true},
			},
		},
		{
			Action:   s.showWallet,
			Name:     "wallet",
			Usage:    "Show wallet balance and transaction history",
			Category: "Wallet",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Required: true},
			},
		},
		{
			Name:     "profile",
			Usage:    "Profile operations",
			Category: "Account",
			Subcommands: []*cli.Command{
				{
					Action: s.showProfile,
					Name:   "show",
					Usage:  "Show the signed-in user and registered events",
				},
				{
					Action: s.completeProfile,
					Name:   "complete",
					Usage:  "Complete onboarding",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "type", Required: true, Usage: "STUDENT or PARTNER"},
						&cli.StringFlag{Name: "university"},
						&cli.StringFlag{Name: "phone", Required: true},
						&cli.StringFlag{Name: "avatar"},
					},
				},
			},
		},
		{
			Name:     "admin",
			Usage:    "Administrative operations",
			Category: "Admin",
			Subcommands: []*cli.Command{
				s.adminStudentCommands(),
				s.adminPartnerCommands(),
				s.adminUniversityCommands(),
				s.adminRedemptionCommands(),
			},
		},
	}

	s.app = app
}
