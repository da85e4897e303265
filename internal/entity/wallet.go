package entity

import (
	"time"

	"github.com/unipoint-lab/appcore/pkg/enum"
)

type TxnType string

var (
	TxnEarn     = enum.New(TxnType("EARN"))
	TxnTransfer = enum.New(TxnType("TRANSFER"))
	TxnRedeem   = enum.New(TxnType("REDEEM"))
	TxnRollback = enum.New(TxnType("ROLLBACK"))
)

// Wallet is read-only display state. Transfer, redeem and rollback are
// fire-and-forget calls; the balance only changes on the next fetch.
type Wallet struct {
	ID      string `mapstructure:"id" structs:"id"`
	OwnerID string `mapstructure:"ownerId" structs:"ownerId"`
	Balance int64  `mapstructure:"balance" structs:"balance"`
}

type WalletTransaction struct {
	ID        string    `mapstructure:"id" structs:"id"`
	WalletID  string    `mapstructure:"walletId" structs:"walletId"`
	TxnType   TxnType   `mapstructure:"txnType" structs:"txnType"`
	Amount    int64     `mapstructure:"amount" structs:"amount"`
	Note      string    `mapstructure:"note" structs:"note"`
	CreatedAt time.Time `mapstructure:"createdAt" structs:"-"`
}
