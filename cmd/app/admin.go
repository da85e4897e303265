package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/unipoint-lab/appcore/internal/entity"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/unipoint-lab/appcore/pkg/enum"
	"github.com/urfave/cli/v2"
)

func (s *srv) adminStudentCommands() *cli.Command {
	return &cli.Command{
		Name:  "students",
		Usage: "Student roster",
		Subcommands: []*cli.Command{
			{
				Action: s.listStudents,
				Name:   "list",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "search"},
					&cli.StringFlag{Name: "university"},
					&cli.IntFlag{Name: "page", Value: 1},
				},
			},
			{
				Action: s.setStudentStatus,
				Name:   "set-status",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
					&cli.StringFlag{Name: "status", Required: true, Usage: "ACTIVE or INACTIVE"},
				},
			},
		},
	}
}

func (s *srv) adminPartnerCommands() *cli.Command {
	return &cli.Command{
		Name:  "partners",
		Usage: "Partner management",
		Subcommands: []*cli.Command{
			{
				Action: s.listPartners,
				Name:   "list",
			},
			{
				Action: s.createPartner,
				Name:   "create",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email"},
				},
			},
			{
				Action: s.deletePartner,
				Name:   "delete",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
				},
			},
		},
	}
}

func (s *srv) adminUniversityCommands() *cli.Command {
	return &cli.Command{
		Name:  "universities",
		Usage: "University management",
		Subcommands: []*cli.Command{
			{
				Action: s.listUniversities,
				Name:   "list",
			},
			{
				Action: s.createUniversity,
				Name:   "create",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "short-name"},
					&cli.StringFlag{Name: "city"},
				},
			},
			{
				Action: s.deleteUniversity,
				Name:   "delete",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
				},
			},
		},
	}
}

func (s *srv) adminRedemptionCommands() *cli.Command {
	return &cli.Command{
		Name:  "redemptions",
		Usage: "Redemption fulfillment",
		Subcommands: []*cli.Command{
			{
				Action: s.listRedemptions,
				Name:   "list",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status"},
					&cli.IntFlag{Name: "page", Value: 1},
				},
			},
			{
				Action: s.confirmDelivery,
				Name:   "deliver",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
				},
			},
			{
				Action: s.cancelInvoice,
				Name:   "cancel",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
				},
			},
		},
	}
}

func (s *srv) listStudents(c *cli.Context) error {
	filter := model.ListStudentsFilter{
		Page:         c.Int("page"),
		Search:       c.String("search"),
		UniversityID: c.String("university"),
	}
	if err := s.students.LoadAll(s.ctx, filter); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSTATUS\tPOINTS")
	for _, st := range s.students.Store.Snapshot().List {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			st.ID, st.FullName, st.Email, st.Status, st.Points)
	}

	return w.Flush()
}

func (s *srv) setStudentStatus(c *cli.Context) error {
	status, err := enum.ToEnum[entity.AccountStatus](c.String("status"))
	if err != nil {
		return err
	}

	student, err := s.students.SetStatus(s.ctx, c.String("id"), status)
	if err != nil {
		return err
	}

	fmt.Printf("Student %s is now %s.\n", student.ID, student.Status)
	return nil
}

func (s *srv) listPartners(c *cli.Context) error {
	if err := s.partners.LoadAll(s.ctx); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSTATUS")
	for _, p := range s.partners.Store.Snapshot().List {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.ContactEmail, p.Status)
	}

	return w.Flush()
}

func (s *srv) createPartner(c *cli.Context) error {
	form := model.UpsertPartnerForm{
		Name:         c.String("name"),
		ContactEmail: c.String("email"),
	}

	partner, err := s.partners.Create(s.ctx, form)
	if err != nil {
		return err
	}

	fmt.Printf("Created partner %s.\n", partner.ID)
	return nil
}

func (s *srv) deletePartner(c *cli.Context) error {
	return s.partners.Delete(s.ctx, c.String("id"))
}

func (s *srv) listUniversities(c *cli.Context) error {
	if err := s.unis.LoadAll(s.ctx); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCITY\tSTATUS")
	for _, u := range s.unis.Store.Snapshot().List {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.City, u.Status)
	}

	return w.Flush()
}

func (s *srv) createUniversity(c *cli.Context) error {
	form := model.UpsertUniversityForm{
		Name:      c.String("name"),
		ShortName: c.String("short-name"),
		City:      c.String("city"),
	}

	uni, err := s.unis.Create(s.ctx, form)
	if err != nil {
		return err
	}

	fmt.Printf("Created university %s.\n", uni.ID)
	return nil
}

func (s *srv) deleteUniversity(c *cli.Context) error {
	return s.unis.Delete(s.ctx, c.String("id"))
}

func (s *srv) listRedemptions(c *cli.Context) error {
	filter := model.ListInvoicesFilter{
		Page:   c.Int("page"),
		Status: c.String("status"),
	}
	if err := s.invoices.LoadRedemptions(s.ctx, filter); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTUDENT\tSTATUS\tQTY\tCOST")
	for _, inv := range s.invoices.Store.Snapshot().List {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			inv.InvoiceID, inv.StudentID, inv.Status, inv.Quantity, inv.TotalCost)
	}

	return w.Flush()
}

func (s *srv) confirmDelivery(c *cli.Context) error {
	invoice, err := s.invoices.ConfirmDelivery(s.ctx, c.String("id"))
	if err != nil {
		return err
	}

	fmt.Printf("Invoice %s delivered.\n", invoice.InvoiceID)
	return nil
}

func (s *srv) cancelInvoice(c *cli.Context) error {
	invoice, err := s.invoices.Cancel(s.ctx, c.String("id"))
	if err != nil {
		return err
	}

	fmt.Printf("Invoice %s cancelled.\n", invoice.InvoiceID)
	return nil
}
