package domain

import "time"

type AllocationSessionState string

const (
	AllocationSessionChecking         AllocationSessionState = "checking"
	AllocationSessionAwaitingDecision AllocationSessionState = "awaiting_decision"
	AllocationSessionCommitting       AllocationSessionState = "committing"
	AllocationSessionCommitted        AllocationSessionState = "committed"
)

// AllocationSession acompanha o protocolo detectar → decidir → gravar de uma alocação
type AllocationSession struct {
	ID        string                 `json:"id"`
	State     AllocationSessionState `json:"state"`
	Request   AllocationRequest      `json:"request"`
	Existing  *BudgetAllocation      `json:"existing,omitempty"`
	Decision  AllocationDecision     `json:"decision,omitempty"`
	Result    *AllocationResolution  `json:"result,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}
