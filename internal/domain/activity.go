package domain

import "time"

type ActivityEntityType string

const (
	ActivityEntityPromotion ActivityEntityType = "promotion"
	ActivityEntityDeduction ActivityEntityType = "deduction"
	ActivityEntityBudget    ActivityEntityType = "budget"
)

// Activity é uma entrada do histórico de ações exibido no painel
type Activity struct {
	ID         int64               `json:"id"`
	UserID     *string             `json:"userId"`
	Type       string              `json:"type"`
	Message    string              `json:"message"`
	EntityType *ActivityEntityType `json:"entityType"`
	EntityID   *int64              `json:"entityId"`
	CreatedAt  *time.Time          `json:"createdAt"`
}

func (a *Activity) SearchFields() []string {
	return []string{a.Message, a.Type}
}

func (a *Activity) FilterDate() (time.Time, bool) {
	if a.CreatedAt != nil && !a.CreatedAt.IsZero() {
		return *a.CreatedAt, true
	}
	return time.Time{}, false
}

// FilterAccountName: atividades não pertencem a uma conta
func (a *Activity) FilterAccountName() string {
	return ""
}

func (a *Activity) FilterStatus() (string, bool) {
	return "", false
}
