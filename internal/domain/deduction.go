package domain

import (
	"math"
	"time"
)

type DeductionStatus string

const (
	DeductionStatusPending  DeductionStatus = "pending"
	DeductionStatusInReview DeductionStatus = "in_review"
	DeductionStatusResolved DeductionStatus = "resolved"
	DeductionStatusDisputed DeductionStatus = "disputed"
)

type Deduction struct {
	ID              int64           `json:"id"`
	AccountID       int64           `json:"accountId"`
	PromotionID     *int64          `json:"promotionId"`
	ReferenceNumber string          `json:"referenceNumber"`
	Amount          Numeric         `json:"amount"`
	Status          DeductionStatus `json:"status"`
	SubmittedDate   time.Time       `json:"submittedDate"`
	DaysOld         int             `json:"daysOld"`
	Description     *string         `json:"description"`
	CreatedAt       *time.Time      `json:"createdAt"`
	Account         *Account        `json:"account,omitempty"`
	Promotion       *Promotion      `json:"promotion,omitempty"`
}

// AgeAt calcula quantos dias inteiros se passaram desde o envio
func (d *Deduction) AgeAt(now time.Time) int {
	if d.SubmittedDate.IsZero() {
		return 0
	}
	submitted := time.Date(d.SubmittedDate.Year(), d.SubmittedDate.Month(), d.SubmittedDate.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(math.Floor(today.Sub(submitted).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

func (d *Deduction) SearchFields() []string {
	fields := []string{d.ReferenceNumber, accountName(d.Account)}
	if d.Promotion != nil {
		fields = append(fields, d.Promotion.Name)
	}
	if d.Description != nil {
		fields = append(fields, *d.Description)
	}
	return fields
}

func (d *Deduction) FilterDate() (time.Time, bool) {
	if d.CreatedAt != nil && !d.CreatedAt.IsZero() {
		return *d.CreatedAt, true
	}
	if !d.SubmittedDate.IsZero() {
		return d.SubmittedDate, true
	}
	return time.Time{}, false
}

func (d *Deduction) FilterAccountName() string {
	return accountName(d.Account)
}

func (d *Deduction) FilterStatus() (string, bool) {
	return string(d.Status), true
}
