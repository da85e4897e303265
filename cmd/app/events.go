package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/pkg/enum"
	"github.com/urfave/cli/v2"
)

func (s *srv) browseEvents(c *cli.Context) error {
	if raw := c.String("status"); raw != "" {
		status, err := enum.ToEnum[entity.EventStatus](raw)
		if err != nil {
			return err
		}

		if err := s.browser.SetStatus(s.ctx, &status); err != nil {
			return err
		}
	}

	if category := c.String("category"); category != "" {
		if err := s.browser.SetCategory(s.ctx, category); err != nil {
			return err
		}
	}

	if search := c.String("search"); search != "" {
		if err := s.browser.SetSearch(s.ctx, search); err != nil {
			return err
		}
	}

	if err := s.browser.SetPage(s.ctx, c.Int("page")); err != nil {
		return err
	}

	snapshot := s.browser.Events.Snapshot()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tCATEGORY\tREGISTERED")
	for _, ev := range snapshot.List {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			ev.ID, ev.Title, ev.Status, ev.CategoryID(), ev.RegisteredCount)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	counts := s.browser.CategoryCounts()
	if len(counts) > 0 {
		fmt.Println()
		for id, count := range counts {
			fmt.Printf("category %s: %d\n", id, count)
		}
	}

	if s.browser.PaginationVisible() {
		fmt.Printf("\npage %d\n", s.browser.Filter().Page)
	}

	return nil
}

func (s *srv) registerEvent(c *cli.Context) error {
	if err := s.events.Register(s.ctx, c.String("event")); err != nil {
		return err
	}

	fmt.Println("Registered.")
	return nil
}

func (s *srv) checkin(c *cli.Context) error {
	result, err := s.checkIn.Record(s.ctx, c.String("event"), c.String("phone"))
	if err != nil {
		return err
	}

	fmt.Printf("Checked in student %s, awarded %d points.\n",
		result.StudentID, result.AwardedPoints)
	return nil
}
