package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tpm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/tpm-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type fakeInvalidator struct {
	calls int
	err   error
}

func (f *fakeInvalidator) InvalidateCache(ctx context.Context) error {
	f.calls++
	return f.err
}

func intPtr(v int) *int {
	return &v
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPromotionStatusSyncService_Sync(t *testing.T) {
	referenceNow := time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockPromotionRepository)
		validate func(t *testing.T, result *PromotionStatusSyncResult, err error, invalidator *fakeInvalidator)
	}{
		{
			name: "Deve ativar promoções planejadas que começam hoje ou antes",
			setup: func(repo *mocks.MockPromotionRepository) {
				repo.EXPECT().ListByStatus(gomock.Any(), domain.PromotionStatusPlanned).Return([]*domain.Promotion{
					{ID: 1, Status: domain.PromotionStatusPlanned, StartDate: day(2024, 8, 20), EndDate: day(2024, 9, 20)},
					{ID: 2, Status: domain.PromotionStatusPlanned, StartDate: day(2024, 8, 1), EndDate: day(2024, 9, 1)},
					{ID: 3, Status: domain.PromotionStatusPlanned, StartDate: day(2024, 8, 21), EndDate: day(2024, 9, 21)},
				}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.PromotionStatusPlanned, domain.PromotionStatusActive).Return(true, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(2), domain.PromotionStatusPlanned, domain.PromotionStatusActive).Return(true, nil)
				repo.EXPECT().ListByStatus(gomock.Any(), domain.PromotionStatusActive).Return(nil, nil)
			},
			validate: func(t *testing.T, result *PromotionStatusSyncResult, err error, invalidator *fakeInvalidator) {
				require.NoError(t, err)
				assert.Equal(t, 2, result.Activated)
				assert.Equal(t, 0, result.Completed)
				assert.Equal(t, 1, invalidator.calls)
			},
		},
		{
			name: "Deve concluir promoções ativas encerradas",
			setup: func(repo *mocks.MockPromotionRepository) {
				repo.EXPECT().ListByStatus(gomock.Any(), domain.PromotionStatusPlanned).Return(nil, nil)
				repo.EXPECT().ListByStatus(gomock.Any(), domain.PromotionStatusActive).Return([]*domain.Promotion{
					{ID: 4, Status: domain.PromotionStatusActive, StartDate: day(2024, 7, 1), EndDate: day(2024, 8, 19), ActualVolume: intPtr(1200)},
					{ID: 5, Status: domain.PromotionStatusActive, StartDate: day(2024, 7, 1), EndDate: day(2024, 8, 20), ActualVolume: intPtr(800)},
				}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(4), domain.PromotionStatusActive, domain.PromotionStatusCompleted).Return(true, nil)
			},
			validate: func(t *testing.T, result *PromotionStatusSyncResult, err error, invalidator *fakeInvalidator) {
				require.NoError(t, err)
				assert.Equal(t, 0, result.Activated)
				assert.Equal(t, 1, result.Completed)
				assert.Equal(t, 1, invalidator.calls)
			},
		},
		{
			name: "Deve manter ativa a promoção encerrada sem volume real apurado",
			setup: func(repo *mocks.MockPromotionRepository) {
				repo.EXPECT().ListByStatus(gomock.Any(), domain.PromotionStatusPlanned).Return(nil, nil)
				repo.EXPECT().ListByStatus(gomock.Any(), domain.PromotionStatusActive).Return([]*domain.Promotion{
					{ID: 8, Status: domain.PromotionStatusActive, StartDate: day(2024, 1, 1), EndDate: day(2024, 1, 31)},
				}, nil)
			},
			validate: func(t *testing.T, result *PromotionStatusSyncResult, err error, invalidator *fakeInvalidator) {
				require.NoError(t, err)
				assert.Equal(t, 0, result.Completed)
				assert.Equal(t, 0, result.Skipped)
				assert.Equal(t, 0, invalidator.calls)
			},
		},
		{
			name: "Deve contar como ignorada a promoção alterada por outro processo",
			setup: func(repo *mocks.MockPromotionRepository) {
				repo.EXPECT().ListByStatus(gomock.Any(), domain.PromotionStatusPlanned).Return([]*domain.Promotion{
					{ID: 6, Status: domain.PromotionStatusPlanned, StartDate: day(2024, 8, 1), EndDate: day(2024, 9, 1)},
				}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(6), domain.PromotionStatusPlanned, domain.PromotionStatusActive).Return(false, nil)
				repo.EXPECT().ListByStatus(gomock.Any(), domain.PromotionStatusActive).Return(nil, nil)
			},
			validate: func(t *testing.T, result *PromotionStatusSyncResult, err error, invalidator *fakeInvalidator) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.Skipped)
				assert.Equal(t, 0, invalidator.calls)
			},
		},
		{
			name: "Deve retornar erro quando a listagem falhar",
			setup: func(repo *mocks.MockPromotionRepository) {
				repo.EXPECT().ListByStatus(gomock.Any(), domain.PromotionStatusPlanned).Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, result *PromotionStatusSyncResult, err error, invalidator *fakeInvalidator) {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, 0, invalidator.calls)
			},
		},
		{
			name: "Deve interromper quando a atualização falhar",
			setup: func(repo *mocks.MockPromotionRepository) {
				repo.EXPECT().ListByStatus(gomock.Any(), domain.PromotionStatusPlanned).Return([]*domain.Promotion{
					{ID: 7, Status: domain.PromotionStatusPlanned, StartDate: day(2024, 8, 1), EndDate: day(2024, 9, 1)},
				}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(7), domain.PromotionStatusPlanned, domain.PromotionStatusActive).Return(false, errors.New("deadlock"))
			},
			validate: func(t *testing.T, result *PromotionStatusSyncResult, err error, invalidator *fakeInvalidator) {
				assert.ErrorContains(t, err, "promoção 7")
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockPromotionRepository(ctrl)
			invalidator := &fakeInvalidator{}
			tt.setup(repo)

			service := NewPromotionStatusSyncService(repo, invalidator, PromotionStatusSyncConfig{CronSchedule: "0 1 * * *"})
			service.now = func() time.Time { return referenceNow }

			result, err := service.Sync(context.Background())
			tt.validate(t, result, err, invalidator)
		})
	}
}

func TestPromotionStatusSyncService_StartDesabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewPromotionStatusSyncService(mocks.NewMockPromotionRepository(ctrl), nil, PromotionStatusSyncConfig{
		CronSchedule: "0 1 * * *",
		Enabled:      false,
	})

	assert.NoError(t, service.Start(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 1 * * *", status["sync_cron"])
}

func TestPromotionStatusSyncService_StartCronInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewPromotionStatusSyncService(mocks.NewMockPromotionRepository(ctrl), nil, PromotionStatusSyncConfig{
		CronSchedule: "isso não é cron",
		Enabled:      true,
	})

	assert.Error(t, service.Start(context.Background()))
}

func TestPromotionStatusSyncService_TriggerManualSyncEmAndamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewPromotionStatusSyncService(mocks.NewMockPromotionRepository(ctrl), nil, PromotionStatusSyncConfig{})
	service.syncRunning = true

	assert.Error(t, service.TriggerManualSync())
}

func TestPromotionStatusSyncService_RunRegistraResultado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPromotionRepository(ctrl)
	repo.EXPECT().ListByStatus(gomock.Any(), domain.PromotionStatusPlanned).Return(nil, nil)
	repo.EXPECT().ListByStatus(gomock.Any(), domain.PromotionStatusActive).Return(nil, nil)

	service := NewPromotionStatusSyncService(repo, &fakeInvalidator{}, PromotionStatusSyncConfig{})
	fixed := time.Date(2024, 8, 20, 1, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	service.run(context.Background())

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, fixed, status["last_sync_completed_at"])
	assert.Equal(t, &PromotionStatusSyncResult{}, status["last_result"])
}
