package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllocationDecision é a escolha explícita do usuário diante de uma alocação duplicada
type AllocationDecision string

const (
	AllocationDecisionNone    AllocationDecision = ""
	AllocationDecisionAdd     AllocationDecision = "add"
	AllocationDecisionReplace AllocationDecision = "replace"
)

type AllocationAction string

const (
	AllocationActionInsert AllocationAction = "insert"
	AllocationActionUpdate AllocationAction = "update"
)

type BudgetAllocation struct {
	ID              int64           `json:"id"`
	AccountID       int64           `json:"accountId"`
	Quarter         string          `json:"quarter"` // Formato Q{1-4}-{ano} (ex: Q3-2024)
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
	SpentAmount     decimal.Decimal `json:"spentAmount"`
	CreatedAt       *time.Time      `json:"createdAt"`
	Account         *Account        `json:"account,omitempty"`
}

// SameKey indica se a alocação pertence ao mesmo par (conta, trimestre)
func (b *BudgetAllocation) SameKey(accountID int64, quarter string) bool {
	return b.AccountID == accountID && b.Quarter == quarter
}

func (b *BudgetAllocation) Remaining() decimal.Decimal {
	return b.AllocatedAmount.Sub(b.SpentAmount)
}

func (b *BudgetAllocation) SearchFields() []string {
	return []string{accountName(b.Account), b.Quarter}
}

func (b *BudgetAllocation) FilterDate() (time.Time, bool) {
	if b.CreatedAt != nil && !b.CreatedAt.IsZero() {
		return *b.CreatedAt, true
	}
	return time.Time{}, false
}

func (b *BudgetAllocation) FilterAccountName() string {
	return accountName(b.Account)
}

func (b *BudgetAllocation) FilterStatus() (string, bool) {
	return "", false
}

type AllocationRequest struct {
	AccountID       int64              `json:"accountId" validate:"required,gt=0"`
	Quarter         string             `json:"quarter" validate:"required,quarter"`
	AllocatedAmount decimal.Decimal    `json:"allocatedAmount" validate:"nonnegative_decimal"`
	Action          AllocationDecision `json:"action,omitempty" validate:"omitempty,oneof=add replace"`
}

// AllocationResolution é o resultado da resolução: o que gravar e como
type AllocationResolution struct {
	Action   AllocationAction  `json:"action"`
	Result   BudgetAllocation  `json:"result"`
	Previous *BudgetAllocation `json:"previous,omitempty"`
}

// QuarterBudgetSummary resume o orçamento total de um trimestre
type QuarterBudgetSummary struct {
	Quarter     string          `json:"quarter"`
	Total       decimal.Decimal `json:"total"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	Utilization float64         `json:"utilization"`
	Allocations int             `json:"allocations"`
}
