package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tpm-api/internal/domain"
	"github.com/vfg2006/tpm-api/internal/usecases/budgeting"
	"github.com/vfg2006/tpm-api/internal/usecases/budgeting/mocks"
	"github.com/vfg2006/tpm-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestBudgetHandlers(t *testing.T) {
	existing := &domain.BudgetAllocation{
		ID:              11,
		AccountID:       1,
		Quarter:         "Q3-2024",
		AllocatedAmount: decimal.NewFromInt(1000),
		SpentAmount:     decimal.NewFromInt(250),
	}

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		setup    func(m *mocks.MockBudgeter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Deve criar a alocação quando não há duplicada",
			method: http.MethodPost,
			target: "/v1/budgets",
			body:   `{"accountId":1,"quarter":"Q3-2024","allocatedAmount":1500}`,
			setup: func(m *mocks.MockBudgeter) {
				m.EXPECT().Allocate(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req domain.AllocationRequest) (*domain.AllocationResolution, error) {
						if req.AccountID != 1 || req.Quarter != "Q3-2024" || !req.AllocatedAmount.Equal(decimal.NewFromInt(1500)) {
							return nil, budgeting.ErrInvalidAllocation
						}
						return &domain.AllocationResolution{
							Action: domain.AllocationActionInsert,
							Result: domain.BudgetAllocation{AccountID: 1, Quarter: "Q3-2024", AllocatedAmount: req.AllocatedAmount},
						}, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)
				assert.Contains(t, rec.Body.String(), `"action":"insert"`)
			},
		},
		{
			name:   "Deve responder 200 quando a alocação existente é atualizada",
			method: http.MethodPost,
			target: "/v1/budgets",
			body:   `{"accountId":1,"quarter":"Q3-2024","allocatedAmount":500,"action":"add"}`,
			setup: func(m *mocks.MockBudgeter) {
				m.EXPECT().Allocate(gomock.Any(), gomock.Any()).Return(&domain.AllocationResolution{
					Action:   domain.AllocationActionUpdate,
					Result:   domain.BudgetAllocation{ID: 11, AccountID: 1, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(1500)},
					Previous: existing,
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"action":"update"`)
			},
		},
		{
			name:   "Deve exigir decisão quando a alocação é duplicada",
			method: http.MethodPost,
			target: "/v1/budgets",
			body:   `{"accountId":1,"quarter":"Q3-2024","allocatedAmount":500}`,
			setup: func(m *mocks.MockBudgeter) {
				m.EXPECT().Allocate(gomock.Any(), gomock.Any()).Return(nil, &budgeting.DuplicateAllocationError{Existing: existing})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusConflict, rec.Code)
				apiErr := decodeError(t, rec)
				assert.Equal(t, apiErrors.ErrBudgetDecisionRequired, apiErr.Code)
				details, ok := apiErr.Details.(map[string]any)
				require.True(t, ok)
				assert.Contains(t, details, "existing")
				assert.Equal(t, []any{"add", "replace"}, details["actions"])
			},
		},
		{
			name:   "Deve responder conflito quando a escrita concorrente esgota as tentativas",
			method: http.MethodPost,
			target: "/v1/budgets",
			body:   `{"accountId":1,"quarter":"Q3-2024","allocatedAmount":500,"action":"replace"}`,
			setup: func(m *mocks.MockBudgeter) {
				m.EXPECT().Allocate(gomock.Any(), gomock.Any()).Return(nil, &budgeting.ConflictError{AccountID: 1, Quarter: "Q3-2024", Attempts: 3})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusConflict, rec.Code)
				apiErr := decodeError(t, rec)
				assert.Equal(t, apiErrors.ErrBudgetConflict, apiErr.Code)
				details := apiErr.Details.(map[string]any)
				assert.Equal(t, float64(3), details["attempts"])
			},
		},
		{
			name:   "Deve devolver os campos inválidos",
			method: http.MethodPost,
			target: "/v1/budgets",
			body:   `{"accountId":0,"quarter":"2024-Q3","allocatedAmount":-1}`,
			setup: func(m *mocks.MockBudgeter) {
				m.EXPECT().Allocate(gomock.Any(), gomock.Any()).Return(nil, &budgeting.ValidationError{Fields: map[string]string{
					"accountId": "required",
					"quarter":   "quarter",
				}})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				apiErr := decodeError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
				assert.Equal(t, map[string]any{"accountId": "required", "quarter": "quarter"}, apiErr.Details)
			},
		},
		{
			name:   "Deve rejeitar corpo malformado",
			method: http.MethodPost,
			target: "/v1/budgets",
			body:   `{"accountId":`,
			setup:  func(m *mocks.MockBudgeter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
			},
		},
		{
			name:   "Deve abrir sessão aguardando decisão",
			method: http.MethodPost,
			target: "/v1/budgets/check",
			body:   `{"accountId":1,"quarter":"Q3-2024","allocatedAmount":500}`,
			setup: func(m *mocks.MockBudgeter) {
				m.EXPECT().Check(gomock.Any(), gomock.Any()).Return(&domain.AllocationSession{
					ID:       "abc",
					State:    domain.AllocationSessionAwaitingDecision,
					Existing: existing,
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"state":"awaiting_decision"`)
			},
		},
		{
			name:   "Deve responder 201 quando a verificação já grava a alocação",
			method: http.MethodPost,
			target: "/v1/budgets/check",
			body:   `{"accountId":2,"quarter":"Q4-2024","allocatedAmount":800}`,
			setup: func(m *mocks.MockBudgeter) {
				m.EXPECT().Check(gomock.Any(), gomock.Any()).Return(&domain.AllocationSession{
					ID:    "def",
					State: domain.AllocationSessionCommitted,
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)
			},
		},
		{
			name:   "Deve responder 404 quando a conta não existe",
			method: http.MethodPost,
			target: "/v1/budgets/check",
			body:   `{"accountId":99,"quarter":"Q4-2024","allocatedAmount":800}`,
			setup: func(m *mocks.MockBudgeter) {
				m.EXPECT().Check(gomock.Any(), gomock.Any()).Return(nil, budgeting.NewBudgetError(budgeting.ErrAccountNotFound, apiErrors.ErrAccountNotFound, "99"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Equal(t, apiErrors.ErrAccountNotFound, decodeError(t, rec).Code)
			},
		},
		{
			name:   "Deve aplicar a decisão à sessão",
			method: http.MethodPost,
			target: "/v1/budgets/sessions/abc/decision",
			body:   `{"action":"replace"}`,
			setup: func(m *mocks.MockBudgeter) {
				m.EXPECT().Decide(gomock.Any(), "abc", domain.AllocationDecisionReplace).Return(&domain.AllocationSession{
					ID:       "abc",
					State:    domain.AllocationSessionCommitted,
					Decision: domain.AllocationDecisionReplace,
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"state":"committed"`)
			},
		},
		{
			name:   "Deve responder 404 para sessão expirada",
			method: http.MethodPost,
			target: "/v1/budgets/sessions/expirada/decision",
			body:   `{"action":"add"}`,
			setup: func(m *mocks.MockBudgeter) {
				m.EXPECT().Decide(gomock.Any(), "expirada", domain.AllocationDecisionAdd).
					Return(nil, budgeting.NewBudgetError(budgeting.ErrSessionNotFound, apiErrors.ErrBudgetSessionNotFound, "expirada"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Equal(t, apiErrors.ErrBudgetSessionNotFound, decodeError(t, rec).Code)
			},
		},
		{
			name:   "Deve responder 409 para decisão repetida",
			method: http.MethodPost,
			target: "/v1/budgets/sessions/abc/decision",
			body:   `{"action":"add"}`,
			setup: func(m *mocks.MockBudgeter) {
				m.EXPECT().Decide(gomock.Any(), "abc", domain.AllocationDecisionAdd).Return(nil, budgeting.ErrInvalidSessionTransition)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusConflict, rec.Code)
				assert.Equal(t, apiErrors.ErrBudgetInvalidTransition, decodeError(t, rec).Code)
			},
		},
		{
			name:   "Deve resumir o trimestre",
			method: http.MethodGet,
			target: "/v1/budgets/quarter/Q3-2024",
			setup: func(m *mocks.MockBudgeter) {
				m.EXPECT().QuarterSummary(gomock.Any(), "Q3-2024").Return(&domain.QuarterBudgetSummary{
					Quarter: "Q3-2024",
					Total:   decimal.NewFromInt(1000),
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"quarter":"Q3-2024"`)
			},
		},
		{
			name:   "Deve rejeitar trimestre inválido",
			method: http.MethodGet,
			target: "/v1/budgets/quarter/2024",
			setup: func(m *mocks.MockBudgeter) {
				m.EXPECT().QuarterSummary(gomock.Any(), "2024").Return(nil, budgeting.NewBudgetError(budgeting.ErrInvalidQuarter, apiErrors.ErrInvalidFormat, "2024"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name:   "Deve listar as alocações com filtros",
			method: http.MethodGet,
			target: "/v1/budgets?search=walmart&as_of=2024-08-20",
			setup: func(m *mocks.MockBudgeter) {
				m.EXPECT().ListAllocations(gomock.Any(), domain.FilterSpec{SearchQuery: "walmart"}, gomock.Any()).
					Return([]*domain.BudgetAllocation{existing}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"quarter":"Q3-2024"`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			budgeter := mocks.NewMockBudgeter(ctrl)
			tt.setup(budgeter)

			rec := serve(t, Budgets(budgeter), tt.method, tt.target, tt.body)
			tt.validate(t, rec)
		})
	}
}
