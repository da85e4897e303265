package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
)

func (s *srv) showWallet(c *cli.Context) error {
	if err := s.wallet.Load(s.ctx, c.String("id")); err != nil {
		return err
	}

	wallet := s.wallet.Wallet()
	fmt.Printf("Balance: %d\n\n", wallet.Balance)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tAMOUNT\tNOTE")
	for _, txn := range s.wallet.Transactions() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", txn.ID, txn.TxnType, txn.Amount, txn.Note)
	}

	return w.Flush()
}
