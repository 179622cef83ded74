package budgeting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tpm-api/infrastructure/repository"
	"github.com/vfg2006/tpm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/tpm-api/internal/config"
	"github.com/vfg2006/tpm-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)

// decimalEq compara valores decimais pelo valor numérico, ignorando a escala
type decimalEq struct {
	expected decimal.Decimal
}

func (m decimalEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.expected)
}

func (m decimalEq) String() string {
	return fmt.Sprintf("is decimal %s", m.expected.String())
}

func eqAmount(value int64) gomock.Matcher {
	return decimalEq{expected: decimal.NewFromInt(value)}
}

type serviceFixture struct {
	service        *Service
	allocationRepo *mocks.MockBudgetAllocationRepository
	accountRepo    *mocks.MockAccountRepository
	sessionRepo    repository.AllocationSessionRepository
	redis          *miniredis.Miniredis
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	allocationRepo := mocks.NewMockBudgetAllocationRepository(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	sessionRepo := repository.NewAllocationSessionRepository(client)

	cfg := &config.Config{Budget: config.Budget{AllocationMaxRetries: 3, SessionTTL: time.Minute}}
	service := NewService(allocationRepo, sessionRepo, accountRepo, cfg)
	service.now = func() time.Time { return fixedNow }

	return &serviceFixture{
		service:        service,
		allocationRepo: allocationRepo,
		accountRepo:    accountRepo,
		sessionRepo:    sessionRepo,
		redis:          mr,
	}
}

func (f *serviceFixture) expectAccount(accountID int64) {
	f.accountRepo.EXPECT().
		GetAccountByID(gomock.Any(), accountID).
		Return(&domain.Account{ID: accountID, Name: "Mercado Central"}, nil)
}

func existingAllocation(allocated int64) *domain.BudgetAllocation {
	return &domain.BudgetAllocation{
		ID:              10,
		AccountID:       7,
		Quarter:         "Q3-2024",
		AllocatedAmount: decimal.NewFromInt(allocated),
		SpentAmount:     decimal.NewFromInt(100),
	}
}

func TestService_Allocate(t *testing.T) {
	tests := []struct {
		name     string
		req      domain.AllocationRequest
		setup    func(f *serviceFixture)
		validate func(t *testing.T, res *domain.AllocationResolution, err error)
	}{
		{
			name: "Sem alocação existente - insere",
			req:  domain.AllocationRequest{AccountID: 7, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(1000)},
			setup: func(f *serviceFixture) {
				f.expectAccount(7)
				f.allocationRepo.EXPECT().FindByAccountQuarter(gomock.Any(), int64(7), "Q3-2024").Return(nil, nil)
				f.allocationRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, allocation *domain.BudgetAllocation) (*domain.BudgetAllocation, error) {
						created := *allocation
						created.ID = 99
						return &created, nil
					})
			},
			validate: func(t *testing.T, res *domain.AllocationResolution, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.AllocationActionInsert, res.Action)
				assert.Equal(t, int64(99), res.Result.ID)
				assert.True(t, res.Result.AllocatedAmount.Equal(decimal.NewFromInt(1000)))
			},
		},
		{
			name: "Duplicada sem ação - exige decisão e não grava",
			req:  domain.AllocationRequest{AccountID: 7, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(500)},
			setup: func(f *serviceFixture) {
				f.expectAccount(7)
				f.allocationRepo.EXPECT().FindByAccountQuarter(gomock.Any(), int64(7), "Q3-2024").Return(existingAllocation(1000), nil)
			},
			validate: func(t *testing.T, res *domain.AllocationResolution, err error) {
				assert.Nil(t, res)
				assert.ErrorIs(t, err, ErrDecisionRequired)
			},
		},
		{
			name: "Duplicada com add - 1000 + 500 = 1500",
			req:  domain.AllocationRequest{AccountID: 7, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(500), Action: domain.AllocationDecisionAdd},
			setup: func(f *serviceFixture) {
				f.expectAccount(7)
				f.allocationRepo.EXPECT().FindByAccountQuarter(gomock.Any(), int64(7), "Q3-2024").Return(existingAllocation(1000), nil)
				f.allocationRepo.EXPECT().UpdateAllocatedAmount(gomock.Any(), int64(10), eqAmount(1000), eqAmount(1500)).Return(true, nil)
			},
			validate: func(t *testing.T, res *domain.AllocationResolution, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.AllocationActionUpdate, res.Action)
				assert.True(t, res.Result.AllocatedAmount.Equal(decimal.NewFromInt(1500)))
			},
		},
		{
			name: "Duplicada com replace - 500",
			req:  domain.AllocationRequest{AccountID: 7, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(500), Action: domain.AllocationDecisionReplace},
			setup: func(f *serviceFixture) {
				f.expectAccount(7)
				f.allocationRepo.EXPECT().FindByAccountQuarter(gomock.Any(), int64(7), "Q3-2024").Return(existingAllocation(1000), nil)
				f.allocationRepo.EXPECT().UpdateAllocatedAmount(gomock.Any(), int64(10), eqAmount(1000), eqAmount(500)).Return(true, nil)
			},
			validate: func(t *testing.T, res *domain.AllocationResolution, err error) {
				require.NoError(t, err)
				assert.True(t, res.Result.AllocatedAmount.Equal(decimal.NewFromInt(500)))
			},
		},
		{
			name: "Alocação alterada entre leitura e escrita - relê e soma sobre o valor novo",
			req:  domain.AllocationRequest{AccountID: 7, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(500), Action: domain.AllocationDecisionAdd},
			setup: func(f *serviceFixture) {
				f.expectAccount(7)
				gomock.InOrder(
					f.allocationRepo.EXPECT().FindByAccountQuarter(gomock.Any(), int64(7), "Q3-2024").Return(existingAllocation(1000), nil),
					f.allocationRepo.EXPECT().UpdateAllocatedAmount(gomock.Any(), int64(10), eqAmount(1000), eqAmount(1500)).Return(false, nil),
					f.allocationRepo.EXPECT().FindByAccountQuarter(gomock.Any(), int64(7), "Q3-2024").Return(existingAllocation(1200), nil),
					f.allocationRepo.EXPECT().UpdateAllocatedAmount(gomock.Any(), int64(10), eqAmount(1200), eqAmount(1700)).Return(true, nil),
				)
			},
			validate: func(t *testing.T, res *domain.AllocationResolution, err error) {
				require.NoError(t, err)
				assert.True(t, res.Result.AllocatedAmount.Equal(decimal.NewFromInt(1700)))
				assert.True(t, res.Previous.AllocatedAmount.Equal(decimal.NewFromInt(1200)))
			},
		},
		{
			name: "Tentativas esgotadas - retorna conflito",
			req:  domain.AllocationRequest{AccountID: 7, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(500), Action: domain.AllocationDecisionReplace},
			setup: func(f *serviceFixture) {
				f.expectAccount(7)
				f.allocationRepo.EXPECT().FindByAccountQuarter(gomock.Any(), int64(7), "Q3-2024").Return(existingAllocation(1000), nil).Times(3)
				f.allocationRepo.EXPECT().UpdateAllocatedAmount(gomock.Any(), int64(10), gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
			},
			validate: func(t *testing.T, res *domain.AllocationResolution, err error) {
				assert.Nil(t, res)
				assert.ErrorIs(t, err, ErrAllocationConflict)

				var conflictErr *ConflictError
				require.True(t, errors.As(err, &conflictErr))
				assert.Equal(t, 3, conflictErr.Attempts)
				assert.Equal(t, "Q3-2024", conflictErr.Quarter)
			},
		},
		{
			name: "Inserção perde a corrida sem ação - conflito imediato",
			req:  domain.AllocationRequest{AccountID: 7, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(500)},
			setup: func(f *serviceFixture) {
				f.expectAccount(7)
				f.allocationRepo.EXPECT().FindByAccountQuarter(gomock.Any(), int64(7), "Q3-2024").Return(nil, nil)
				f.allocationRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil, repository.ErrAllocationKeyTaken)
			},
			validate: func(t *testing.T, res *domain.AllocationResolution, err error) {
				assert.Nil(t, res)

				var conflictErr *ConflictError
				require.True(t, errors.As(err, &conflictErr))
				assert.Equal(t, 1, conflictErr.Attempts)
			},
		},
		{
			name: "Inserção perde a corrida com add - soma sobre a linha criada pela outra requisição",
			req:  domain.AllocationRequest{AccountID: 7, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(500), Action: domain.AllocationDecisionAdd},
			setup: func(f *serviceFixture) {
				f.expectAccount(7)
				gomock.InOrder(
					f.allocationRepo.EXPECT().FindByAccountQuarter(gomock.Any(), int64(7), "Q3-2024").Return(nil, nil),
					f.allocationRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil, repository.ErrAllocationKeyTaken),
					f.allocationRepo.EXPECT().FindByAccountQuarter(gomock.Any(), int64(7), "Q3-2024").Return(existingAllocation(800), nil),
					f.allocationRepo.EXPECT().UpdateAllocatedAmount(gomock.Any(), int64(10), eqAmount(800), eqAmount(1300)).Return(true, nil),
				)
			},
			validate: func(t *testing.T, res *domain.AllocationResolution, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.AllocationActionUpdate, res.Action)
				assert.True(t, res.Result.AllocatedAmount.Equal(decimal.NewFromInt(1300)))
			},
		},
		{
			name:  "Pedido inválido - não consulta o banco",
			req:   domain.AllocationRequest{AccountID: 0, Quarter: "Q3", AllocatedAmount: decimal.NewFromInt(-5)},
			setup: func(f *serviceFixture) {},
			validate: func(t *testing.T, res *domain.AllocationResolution, err error) {
				assert.Nil(t, res)
				assert.ErrorIs(t, err, ErrInvalidAllocation)
			},
		},
		{
			name: "Conta inexistente",
			req:  domain.AllocationRequest{AccountID: 42, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(5)},
			setup: func(f *serviceFixture) {
				f.accountRepo.EXPECT().GetAccountByID(gomock.Any(), int64(42)).Return(nil, nil)
			},
			validate: func(t *testing.T, res *domain.AllocationResolution, err error) {
				assert.Nil(t, res)
				assert.ErrorIs(t, err, ErrAccountNotFound)
			},
		},
		{
			name: "Erro no banco ao buscar alocação",
			req:  domain.AllocationRequest{AccountID: 7, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(5)},
			setup: func(f *serviceFixture) {
				f.expectAccount(7)
				f.allocationRepo.EXPECT().FindByAccountQuarter(gomock.Any(), int64(7), "Q3-2024").Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, res *domain.AllocationResolution, err error) {
				assert.Nil(t, res)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			tt.setup(f)

			res, err := f.service.Allocate(context.Background(), tt.req)
			tt.validate(t, res, err)
		})
	}
}

func TestService_CheckEDecide(t *testing.T) {
	ctx := context.Background()

	t.Run("Duplicada aguarda decisão e add grava 1500", func(t *testing.T) {
		f := newServiceFixture(t)
		req := domain.AllocationRequest{AccountID: 7, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(500)}

		f.expectAccount(7)
		f.allocationRepo.EXPECT().FindByAccountQuarter(gomock.Any(), int64(7), "Q3-2024").Return(existingAllocation(1000), nil).Times(2)
		f.allocationRepo.EXPECT().UpdateAllocatedAmount(gomock.Any(), int64(10), eqAmount(1000), eqAmount(1500)).Return(true, nil)

		session, err := f.service.Check(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, domain.AllocationSessionAwaitingDecision, session.State)
		require.NotNil(t, session.Existing)
		assert.True(t, session.Existing.AllocatedAmount.Equal(decimal.NewFromInt(1000)))

		stored, err := f.sessionRepo.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.AllocationSessionAwaitingDecision, stored.State)

		decided, err := f.service.Decide(ctx, session.ID, domain.AllocationDecisionAdd)
		require.NoError(t, err)
		assert.Equal(t, domain.AllocationSessionCommitted, decided.State)
		assert.Equal(t, domain.AllocationDecisionAdd, decided.Decision)
		require.NotNil(t, decided.Result)
		assert.True(t, decided.Result.Result.AllocatedAmount.Equal(decimal.NewFromInt(1500)))

		// Uma segunda decisão para a mesma sessão é rejeitada
		_, err = f.service.Decide(ctx, session.ID, domain.AllocationDecisionReplace)
		assert.ErrorIs(t, err, ErrInvalidSessionTransition)
	})

	t.Run("Sem duplicada grava direto", func(t *testing.T) {
		f := newServiceFixture(t)
		req := domain.AllocationRequest{AccountID: 7, Quarter: "Q4-2024", AllocatedAmount: decimal.NewFromInt(300)}

		f.expectAccount(7)
		f.allocationRepo.EXPECT().FindByAccountQuarter(gomock.Any(), int64(7), "Q4-2024").Return(nil, nil).Times(2)
		f.allocationRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, allocation *domain.BudgetAllocation) (*domain.BudgetAllocation, error) {
				created := *allocation
				created.ID = 11
				return &created, nil
			})

		session, err := f.service.Check(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, domain.AllocationSessionCommitted, session.State)
		assert.Equal(t, domain.AllocationActionInsert, session.Result.Action)
		assert.Equal(t, int64(11), session.Result.Result.ID)
	})

	t.Run("Sessão inexistente ou expirada", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.service.Decide(ctx, "inexistente", domain.AllocationDecisionAdd)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Sessão expira após o TTL", func(t *testing.T) {
		f := newServiceFixture(t)
		req := domain.AllocationRequest{AccountID: 7, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(500)}

		f.expectAccount(7)
		f.allocationRepo.EXPECT().FindByAccountQuarter(gomock.Any(), int64(7), "Q3-2024").Return(existingAllocation(1000), nil)

		session, err := f.service.Check(ctx, req)
		require.NoError(t, err)

		f.redis.FastForward(2 * time.Minute)

		_, err = f.service.Decide(ctx, session.ID, domain.AllocationDecisionAdd)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Decisão inválida", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.service.Decide(ctx, "qualquer", domain.AllocationDecisionNone)
		assert.ErrorIs(t, err, ErrInvalidDecision)
	})

	t.Run("Conflito na gravação remove a sessão", func(t *testing.T) {
		f := newServiceFixture(t)
		req := domain.AllocationRequest{AccountID: 7, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(500)}

		f.expectAccount(7)
		f.allocationRepo.EXPECT().FindByAccountQuarter(gomock.Any(), int64(7), "Q3-2024").Return(existingAllocation(1000), nil).Times(4)
		f.allocationRepo.EXPECT().UpdateAllocatedAmount(gomock.Any(), int64(10), gomock.Any(), gomock.Any()).Return(false, nil).Times(3)

		session, err := f.service.Check(ctx, req)
		require.NoError(t, err)

		_, err = f.service.Decide(ctx, session.ID, domain.AllocationDecisionReplace)
		assert.ErrorIs(t, err, ErrAllocationConflict)

		_, err = f.sessionRepo.Get(ctx, session.ID)
		assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	})
}

func TestService_QuarterSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Soma alocado e gasto do trimestre", func(t *testing.T) {
		f := newServiceFixture(t)
		f.allocationRepo.EXPECT().ListByQuarter(gomock.Any(), "Q3-2024").Return([]*domain.BudgetAllocation{
			{ID: 1, AccountID: 1, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(600), SpentAmount: decimal.NewFromInt(150)},
			{ID: 2, AccountID: 2, Quarter: "Q3-2024", AllocatedAmount: decimal.NewFromInt(400), SpentAmount: decimal.NewFromInt(235)},
		}, nil)

		summary, err := f.service.QuarterSummary(ctx, "Q3-2024")
		require.NoError(t, err)
		assert.True(t, summary.Total.Equal(decimal.NewFromInt(1000)))
		assert.True(t, summary.Spent.Equal(decimal.NewFromInt(385)))
		assert.True(t, summary.Remaining.Equal(decimal.NewFromInt(615)))
		assert.Equal(t, 39.0, summary.Utilization)
		assert.Equal(t, 2, summary.Allocations)
	})

	t.Run("Trimestre sem alocações", func(t *testing.T) {
		f := newServiceFixture(t)
		f.allocationRepo.EXPECT().ListByQuarter(gomock.Any(), "Q1-2025").Return(nil, nil)

		summary, err := f.service.QuarterSummary(ctx, "Q1-2025")
		require.NoError(t, err)
		assert.True(t, summary.Total.IsZero())
		assert.Equal(t, 0.0, summary.Utilization)
	})

	t.Run("Trimestre inválido", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.service.QuarterSummary(ctx, "terceiro")
		assert.ErrorIs(t, err, ErrInvalidQuarter)
	})
}

func TestService_ListAllocations(t *testing.T) {
	f := newServiceFixture(t)
	createdAt := fixedNow.Add(-48 * time.Hour)

	f.allocationRepo.EXPECT().ListAllocations(gomock.Any()).Return([]*domain.BudgetAllocation{
		{ID: 1, AccountID: 1, Quarter: "Q3-2024", CreatedAt: &createdAt, Account: &domain.Account{ID: 1, Name: "Mercado Central"}},
		{ID: 2, AccountID: 2, Quarter: "Q3-2024", CreatedAt: &createdAt, Account: &domain.Account{ID: 2, Name: "Distribuidora Sul"}},
	}, nil)

	allocations, err := f.service.ListAllocations(context.Background(), domain.FilterSpec{AccountFilter: "Distribuidora Sul"}, time.Time{})
	require.NoError(t, err)
	require.Len(t, allocations, 1)
	assert.Equal(t, int64(2), allocations[0].ID)
}
