package domain

import (
	"errors"
	"time"
)

type PromotionType string

const (
	PromotionTypeBOGO     PromotionType = "bogo"
	PromotionTypeDiscount PromotionType = "discount"
	PromotionTypeCoupon   PromotionType = "coupon"
	PromotionTypeRebate   PromotionType = "rebate"
)

type PromotionStatus string

const (
	PromotionStatusPlanned   PromotionStatus = "planned"
	PromotionStatusActive    PromotionStatus = "active"
	PromotionStatusCompleted PromotionStatus = "completed"
	PromotionStatusCancelled PromotionStatus = "cancelled"
)

var (
	ErrPromotionInvalidDateRange = errors.New("promotion start date must not be after end date")
	ErrPromotionNegativeBudget   = errors.New("promotion budget must not be negative")
)

// promotionTransitions mapeia o ciclo de vida permitido de uma promoção
var promotionTransitions = map[PromotionStatus][]PromotionStatus{
	PromotionStatusPlanned: {PromotionStatusActive, PromotionStatusCancelled},
	PromotionStatusActive:  {PromotionStatusCompleted, PromotionStatusCancelled},
}

type Promotion struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	AccountID        *int64          `json:"accountId"`
	ProductID        *int64          `json:"productId"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          time.Time       `json:"endDate"`
	PromotionType    PromotionType   `json:"promotionType"`
	DiscountPercent  Numeric         `json:"discountPercent"`
	Budget           Numeric         `json:"budget"`
	ForecastedVolume *int            `json:"forecastedVolume"`
	ActualVolume     *int            `json:"actualVolume"`
	Status           PromotionStatus `json:"status"`
	CreatedBy        *string         `json:"createdBy"`
	CreatedAt        *time.Time      `json:"createdAt"`
	Account          *Account        `json:"account,omitempty"`
	Product          *Product        `json:"product,omitempty"`
}

func (p *Promotion) Validate() error {
	if p.StartDate.After(p.EndDate) {
		return ErrPromotionInvalidDateRange
	}
	if p.Budget.OrZero().IsNegative() {
		return ErrPromotionNegativeBudget
	}
	return nil
}

// CanTransitionTo indica se a mudança de status respeita o ciclo de vida
func (p *Promotion) CanTransitionTo(next PromotionStatus) bool {
	for _, allowed := range promotionTransitions[p.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DueForActivation indica se uma promoção planejada já atingiu a data de início
func (p *Promotion) DueForActivation(now time.Time) bool {
	if p.Status != PromotionStatusPlanned {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !p.StartDate.After(today)
}

// DueForCompletion indica se uma promoção ativa já terminou e foi fechada,
// ou seja, passou da data de término e teve o volume real apurado
func (p *Promotion) DueForCompletion(now time.Time) bool {
	if p.Status != PromotionStatusActive || p.EndDate.IsZero() || p.ActualVolume == nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return p.EndDate.Before(today)
}

func (p *Promotion) AccountName() string {
	return accountName(p.Account)
}

func (p *Promotion) ProductName() string {
	if p.Product == nil {
		return ""
	}
	return p.Product.Name
}

func (p *Promotion) SearchFields() []string {
	return []string{p.Name, p.AccountName(), p.ProductName(), string(p.PromotionType)}
}

func (p *Promotion) FilterDate() (time.Time, bool) {
	if p.CreatedAt != nil && !p.CreatedAt.IsZero() {
		return *p.CreatedAt, true
	}
	if !p.StartDate.IsZero() {
		return p.StartDate, true
	}
	return time.Time{}, false
}

func (p *Promotion) FilterAccountName() string {
	return p.AccountName()
}

func (p *Promotion) FilterStatus() (string, bool) {
	return string(p.Status), true
}
