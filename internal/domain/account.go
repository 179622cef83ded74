package domain

import "time"

type AccountType string

const (
	AccountTypeRetailer    AccountType = "retailer"
	AccountTypeDistributor AccountType = "distributor"
)

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
)

type Account struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Type      AccountType   `json:"type"`
	Status    AccountStatus `json:"status"`
	CreatedAt *time.Time    `json:"createdAt,omitempty"`
}

type Product struct {
	ID        int64      `json:"id"`
	SKU       string     `json:"sku"`
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	Brand     string     `json:"brand"`
	UnitCost  Numeric    `json:"unitCost"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// accountName resolve o nome da conta aninhada, vazio quando ausente
func accountName(account *Account) string {
	if account == nil {
		return ""
	}
	return account.Name
}
