package model

type TransferForm struct {
	ToWalletID string `structs:"toWalletId" validate:"required"`
	Amount     int64  `structs:"amount" validate:"gt=0"`
	Note       string `structs:"note"`
}

type RedeemPointsForm struct {
	WalletID string `structs:"walletId" validate:"required"`
	Amount   int64  `structs:"amount" validate:"gt=0"`
}

type RollbackForm struct {
	TransactionID string `structs:"transactionId" validate:"required"`
	Reason        string `structs:"reason"`
}
