package domain

import "time"

// SalesDataPoint é um ponto de venda append-only ligado a uma promoção
type SalesDataPoint struct {
	ID               int64      `json:"id"`
	PromotionID      *int64     `json:"promotionId"`
	AccountID        *int64     `json:"accountId"`
	ProductID        *int64     `json:"productId"`
	SalesDate        time.Time  `json:"salesDate"`
	UnitsLift        Numeric    `json:"unitsLift"`
	DollarLift       Numeric    `json:"dollarLift"`
	BaselineSales    Numeric    `json:"baselineSales"`
	IncrementalSales Numeric    `json:"incrementalSales"`
	ROI              Numeric    `json:"roi"`
	CreatedAt        *time.Time `json:"createdAt"`
	Promotion        *Promotion `json:"promotion,omitempty"`
	Account          *Account   `json:"account,omitempty"`
	Product          *Product   `json:"product,omitempty"`
}

// PromotionAccountID retorna o accountId da promoção aninhada, não o do próprio ponto
func (s *SalesDataPoint) PromotionAccountID() *int64 {
	if s.Promotion == nil {
		return nil
	}
	return s.Promotion.AccountID
}

func (s *SalesDataPoint) AccountName() string {
	if s.Account != nil {
		return s.Account.Name
	}
	if s.Promotion != nil {
		return s.Promotion.AccountName()
	}
	return ""
}

func (s *SalesDataPoint) SearchFields() []string {
	fields := []string{s.AccountName()}
	if s.Promotion != nil {
		fields = append(fields, s.Promotion.Name)
	}
	if s.Product != nil {
		fields = append(fields, s.Product.Name)
	}
	return fields
}

func (s *SalesDataPoint) FilterDate() (time.Time, bool) {
	if s.CreatedAt != nil && !s.CreatedAt.IsZero() {
		return *s.CreatedAt, true
	}
	if !s.SalesDate.IsZero() {
		return s.SalesDate, true
	}
	return time.Time{}, false
}

func (s *SalesDataPoint) FilterAccountName() string {
	return s.AccountName()
}

// FilterStatus: pontos de venda não possuem status
func (s *SalesDataPoint) FilterStatus() (string, bool) {
	return "", false
}
