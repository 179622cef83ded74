package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tpm-api/infrastructure/repository"
)

type DeductionAgingSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

type DeductionAgingSyncResult struct {
	Checked int   `json:"checked"`
	Updated int64 `json:"updated"`
}

// DeductionAgingSyncService recalcula diariamente a idade das deduções em aberto
type DeductionAgingSyncService struct {
	scheduler           *gocron.Scheduler
	deductionRepository repository.DeductionRepository
	invalidator         CacheInvalidator
	config              DeductionAgingSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *DeductionAgingSyncResult
	now                 func() time.Time
}

func NewDeductionAgingSyncService(
	deductionRepository repository.DeductionRepository,
	invalidator CacheInvalidator,
	config DeductionAgingSyncConfig,
) *DeductionAgingSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": config.CronSchedule,
		"enabled":       config.Enabled,
	}).Info("Inicializando serviço de envelhecimento das deduções")

	return &DeductionAgingSyncService{
		scheduler:           scheduler,
		deductionRepository: deductionRepository,
		invalidator:         invalidator,
		config:              config,
		now:                 time.Now,
	}
}

func (s *DeductionAgingSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Envelhecimento das deduções desabilitado")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar envelhecimento das deduções: %w", err)
	}

	s.scheduler.StartAsync()

	logrus.WithField("cron", s.config.CronSchedule).Info("Envelhecimento das deduções agendado")

	go func() {
		<-ctx.Done()
		logrus.Info("Parando envelhecimento das deduções")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DeductionAgingSyncService) run(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Envelhecimento das deduções já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := s.now()

	result, err := s.Sync(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro no envelhecimento das deduções")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastResult = result
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"checked":  result.Checked,
		"updated":  result.Updated,
		"duration": s.now().Sub(startTime).String(),
	}).Info("Envelhecimento das deduções concluído")
}

// Sync grava daysOld somente das deduções abertas cuja idade mudou
func (s *DeductionAgingSyncService) Sync(ctx context.Context) (*DeductionAgingSyncResult, error) {
	now := s.now()

	deductions, err := s.deductionRepository.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar deduções em aberto: %w", err)
	}

	result := &DeductionAgingSyncResult{Checked: len(deductions)}

	daysOldByID := make(map[int64]int)
	for _, deduction := range deductions {
		age := deduction.AgeAt(now)
		if age != deduction.DaysOld {
			daysOldByID[deduction.ID] = age
		}
	}

	if len(daysOldByID) == 0 {
		return result, nil
	}

	updated, err := s.deductionRepository.UpdateDaysOld(ctx, daysOldByID)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar idade das deduções: %w", err)
	}
	result.Updated = updated

	if s.invalidator != nil {
		if err := s.invalidator.InvalidateCache(ctx); err != nil {
			logrus.WithError(err).Warn("Erro ao invalidar cache analítico após envelhecer deduções")
		}
	}

	return result, nil
}

func (s *DeductionAgingSyncService) TriggerManualSync() error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		return fmt.Errorf("envelhecimento das deduções já está em andamento")
	}

	go s.run(context.Background())
	return nil
}

func (s *DeductionAgingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
