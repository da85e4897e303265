package main

import (
	"fmt"

	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/urfave/cli/v2"
)

func (s *srv) login(c *cli.Context) error {
	code := c.String("code")
	if code == "" {
		url, err := s.auth.AuthCodeURL("cli")
		if err != nil {
			return err
		}

		fmt.Println("Open this URL, sign in, then run login again with --code:")
		fmt.Println(url)
		return nil
	}

	if err := s.auth.Exchange(s.ctx, code); err != nil {
		return err
	}

	fmt.Println("Signed in.")
	return nil
}

func (s *srv) showProfile(c *cli.Context) error {
	me, err := s.profile.Me(s.ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s>\n", me.FullName, me.Email)
	fmt.Printf("Type: %s  Points: %d\n", me.UserType, me.Points)

	events, err := s.profile.MyEvents(s.ctx)
	if err != nil {
		return err
	}

	if len(events) > 0 {
		fmt.Println("\nRegistered events:")
		for _, ev := range events {
			fmt.Printf("  %s  %s\n", ev.ID, ev.Title)
		}
	}

	return nil
}

func (s *srv) completeProfile(c *cli.Context) error {
	form := model.OnboardingForm{
		UserType:     c.String("type"),
		UniversityID: c.String("university"),
		Phone:        c.String("phone"),
		AvatarURL:    c.String("avatar"),
	}

	result, err := s.onboarding.Complete(s.ctx, form)
	if err != nil {
		return err
	}

	fmt.Printf("Profile completed for %s.\n", result.User.Email)
	if result.ReloginURL != "" {
		fmt.Println("Session refresh failed; sign in again at:")
		fmt.Println(result.ReloginURL)
	}

	return nil
}
