package analyzing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tpm-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func activity(id int64, kind, message string, createdAt time.Time) *domain.Activity {
	return &domain.Activity{ID: id, Type: kind, Message: message, CreatedAt: timePtr(createdAt)}
}

func TestService_ListagensFiltradas(t *testing.T) {
	ctx := context.Background()
	central := &domain.Account{ID: 1, Name: "Mercado Central"}
	sul := &domain.Account{ID: 2, Name: "Distribuidora Sul"}

	t.Run("Promoções passam pelo filtro composto", func(t *testing.T) {
		f := newAnalyzerFixture(t)
		f.promotionRepo.EXPECT().ListPromotions(gomock.Any()).Return([]*domain.Promotion{
			{ID: 1, Name: "Summer BOGO", Status: domain.PromotionStatusActive, Account: central},
			{ID: 2, Name: "Summer Rebate", Status: domain.PromotionStatusPlanned, Account: central},
			{ID: 3, Name: "Winter BOGO", Status: domain.PromotionStatusActive, Account: sul},
			nil,
		}, nil)

		result, err := f.service(nil).ListPromotions(ctx, domain.FilterSpec{SearchQuery: "summer", StatusFilter: "active"}, referenceNow)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, int64(1), result[0].ID)
	})

	t.Run("Deduções filtradas pela conta", func(t *testing.T) {
		f := newAnalyzerFixture(t)
		f.deductionRepo.EXPECT().ListDeductions(gomock.Any()).Return([]*domain.Deduction{
			{ID: 1, ReferenceNumber: "DED-001", Account: central},
			{ID: 2, ReferenceNumber: "DED-002", Account: sul},
		}, nil)

		result, err := f.service(nil).ListDeductions(ctx, domain.FilterSpec{AccountFilter: "Distribuidora Sul"}, referenceNow)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "DED-002", result[0].ReferenceNumber)
	})

	t.Run("Vendas sem correspondência viram lista vazia", func(t *testing.T) {
		f := newAnalyzerFixture(t)
		f.salesRepo.EXPECT().ListSalesData(gomock.Any()).Return(nil, nil)

		result, err := f.service(nil).ListSalesData(ctx, domain.FilterSpec{SearchQuery: "x"}, referenceNow)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("Erro no banco vira AnalyticsError", func(t *testing.T) {
		f := newAnalyzerFixture(t)
		f.salesRepo.EXPECT().ListSalesData(gomock.Any()).Return(nil, errors.New("timeout"))

		result, err := f.service(nil).ListSalesData(ctx, domain.FilterSpec{}, referenceNow)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrFetchData)
	})
}

func TestService_RecentActivities(t *testing.T) {
	ctx := context.Background()
	activities := []*domain.Activity{
		activity(5, "deduction_validated", "Dedução DED-005 aprovada", referenceNow.Add(-time.Hour)),
		activity(4, "promotion_created", "Promoção Summer BOGO criada", referenceNow.Add(-2*time.Hour)),
		activity(3, "deduction_validated", "Dedução DED-003 aprovada", referenceNow.AddDate(0, 0, -3)),
		activity(2, "deduction_validated", "Dedução DED-002 aprovada", referenceNow.AddDate(0, -2, 0)),
		{ID: 1, Type: "budget_allocated", Message: "Orçamento alocado"},
	}

	tests := []struct {
		name     string
		filter   domain.FilterSpec
		limit    int
		setup    func(f *analyzerFixture)
		validate func(t *testing.T, result []*domain.Activity, err error)
	}{
		{
			name:   "Busca pela mensagem e respeita o limite",
			filter: domain.FilterSpec{SearchQuery: "APROVADA"},
			limit:  2,
			setup: func(f *analyzerFixture) {
				f.activityRepo.EXPECT().ListRecent(gomock.Any(), recentActivitiesScanLimit).Return(activities, nil)
			},
			validate: func(t *testing.T, result []*domain.Activity, err error) {
				require.NoError(t, err)
				require.Len(t, result, 2)
				assert.Equal(t, int64(5), result[0].ID)
				assert.Equal(t, int64(3), result[1].ID)
			},
		},
		{
			name:   "Busca pelo tipo da atividade",
			filter: domain.FilterSpec{SearchQuery: "promotion_created"},
			setup: func(f *analyzerFixture) {
				f.activityRepo.EXPECT().ListRecent(gomock.Any(), recentActivitiesScanLimit).Return(activities, nil)
			},
			validate: func(t *testing.T, result []*domain.Activity, err error) {
				require.NoError(t, err)
				require.Len(t, result, 1)
				assert.Equal(t, int64(4), result[0].ID)
			},
		},
		{
			name:   "Intervalo de semana descarta antigas e sem data",
			filter: domain.FilterSpec{DateRange: domain.DateRangeWeek},
			setup: func(f *analyzerFixture) {
				f.activityRepo.EXPECT().ListRecent(gomock.Any(), recentActivitiesScanLimit).Return(activities, nil)
			},
			validate: func(t *testing.T, result []*domain.Activity, err error) {
				require.NoError(t, err)
				assert.Len(t, result, 3)
			},
		},
		{
			name:  "Limite acima da janela de varredura é repassado ao repositório",
			limit: 500,
			setup: func(f *analyzerFixture) {
				f.activityRepo.EXPECT().ListRecent(gomock.Any(), 500).Return(activities, nil)
			},
			validate: func(t *testing.T, result []*domain.Activity, err error) {
				require.NoError(t, err)
				assert.Len(t, result, len(activities))
			},
		},
		{
			name: "Erro no banco vira AnalyticsError",
			setup: func(f *analyzerFixture) {
				f.activityRepo.EXPECT().ListRecent(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			validate: func(t *testing.T, result []*domain.Activity, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrFetchData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAnalyzerFixture(t)
			tt.setup(f)

			result, err := f.service(nil).RecentActivities(ctx, tt.filter, tt.limit, referenceNow)
			tt.validate(t, result, err)
		})
	}
}
