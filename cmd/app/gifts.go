package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/unipoint-lab/appcore/internal/domain"
	"github.com/unipoint-lab/appcore/internal/model"
	"github.com/urfave/cli/v2"
)

func (s *srv) listGifts(c *cli.Context) error {
	me, err := s.profile.Me(s.ctx)
	if err != nil {
		return err
	}

	filter := model.ListProductsFilter{Type: c.String("type"), OnlyLive: true}
	if err := s.redeemFlow.LoadProducts(s.ctx, filter); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOST\tSTOCK\tAFFORDABLE")
	for _, product := range s.redeemFlow.Products.Snapshot().List {
		canRedeem, needMore := domain.Affordability(product, me.Points)
		afford := "yes"
		if !canRedeem {
			afford = "out of stock"
			if needMore > 0 {
				afford = fmt.Sprintf("need %d more", needMore)
			}
		}

		fmt.Fprintf(w, "%s\t%s\t%d %s\t%d\t%s\n",
			product.ID, product.Title, product.UnitCost, product.Currency,
			product.TotalStock, afford)
	}

	return w.Flush()
}

func (s *srv) redeem(c *cli.Context) error {
	me, err := s.profile.Me(s.ctx)
	if err != nil {
		return err
	}

	product, err := s.productSvc.Get(s.ctx, c.String("product"))
	if err != nil {
		return err
	}

	s.redeemFlow.Select(product)
	quantity := s.redeemFlow.SetQuantity(c.Int("quantity"))

	invoice, err := s.redeemFlow.Confirm(s.ctx, me.Points)
	if err != nil {
		return err
	}

	fmt.Printf("Redeemed %dx %s for %d %s (invoice %s).\n",
		quantity, invoice.Product.Title, invoice.TotalCost,
		invoice.Product.Currency, invoice.InvoiceID)
	return nil
}
