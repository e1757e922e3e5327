package models

// BankItem is a linked bank connection (one Plaid item) used to import
// transactions into the ledger. AccessToken never leaves the server.
type BankItem struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	ItemID      string `json:"item_id"`
	AccessToken string `json:"-"`
	Institution string `json:"institution"`
	CreatedAt   string `json:"created_at"`
}
