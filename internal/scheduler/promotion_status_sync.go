package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tpm-api/infrastructure/repository"
	"github.com/vfg2006/tpm-api/internal/domain"
)

type PromotionStatusSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// PromotionStatusSyncResult resume uma execução da sincronização de status
type PromotionStatusSyncResult struct {
	Activated int `json:"activated"`
	Completed int `json:"completed"`
	Skipped   int `json:"skipped"`
}

type PromotionStatusSyncService struct {
	scheduler           *gocron.Scheduler
	promotionRepository repository.PromotionRepository
	invalidator         CacheInvalidator
	config              PromotionStatusSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *PromotionStatusSyncResult
	now                 func() time.Time
}

func NewPromotionStatusSyncService(
	promotionRepository repository.PromotionRepository,
	invalidator CacheInvalidator,
	config PromotionStatusSyncConfig,
) *PromotionStatusSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": config.CronSchedule,
		"enabled":       config.Enabled,
	}).Info("Inicializando serviço de sincronização de status das promoções")

	return &PromotionStatusSyncService{
		scheduler:           scheduler,
		promotionRepository: promotionRepository,
		invalidator:         invalidator,
		config:              config,
		now:                 time.Now,
	}
}

func (s *PromotionStatusSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de status das promoções desabilitada")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de status das promoções: %w", err)
	}

	s.scheduler.StartAsync()

	logrus.WithField("cron", s.config.CronSchedule).Info("Sincronização de status das promoções agendada")

	go func() {
		<-ctx.Done()
		logrus.Info("Parando sincronização de status das promoções")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *PromotionStatusSyncService) run(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de status das promoções já em andamento, ignorando")
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
	logrus.Info("Iniciando sincronização de status das promoções")

	result, err := s.Sync(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização de status das promoções")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastResult = result
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"activated": result.Activated,
		"completed": result.Completed,
		"skipped":   result.Skipped,
		"duration":  s.now().Sub(startTime).String(),
	}).Info("Sincronização de status das promoções concluída")
}

// Sync ativa promoções planejadas cuja data de início chegou e conclui as
// ativas já encerradas. Cada mudança é condicionada ao status lido.
func (s *PromotionStatusSyncService) Sync(ctx context.Context) (*PromotionStatusSyncResult, error) {
	now := s.now()
	result := &PromotionStatusSyncResult{}

	planned, err := s.promotionRepository.ListByStatus(ctx, domain.PromotionStatusPlanned)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar promoções planejadas: %w", err)
	}

	for _, promotion := range planned {
		if !promotion.DueForActivation(now) {
			continue
		}
		changed, err := s.promotionRepository.UpdateStatus(ctx, promotion.ID, domain.PromotionStatusPlanned, domain.PromotionStatusActive)
		if err != nil {
			return nil, fmt.Errorf("erro ao ativar promoção %d: %w", promotion.ID, err)
		}
		if changed {
			result.Activated++
		} else {
			result.Skipped++
		}
	}

	active, err := s.promotionRepository.ListByStatus(ctx, domain.PromotionStatusActive)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar promoções ativas: %w", err)
	}

	for _, promotion := range active {
		if !promotion.DueForCompletion(now) {
			continue
		}
		changed, err := s.promotionRepository.UpdateStatus(ctx, promotion.ID, domain.PromotionStatusActive, domain.PromotionStatusCompleted)
		if err != nil {
			return nil, fmt.Errorf("erro ao concluir promoção %d: %w", promotion.ID, err)
		}
		if changed {
			result.Completed++
		} else {
			result.Skipped++
		}
	}

	if result.Activated+result.Completed > 0 && s.invalidator != nil {
		if err := s.invalidator.InvalidateCache(ctx); err != nil {
			logrus.WithError(err).Warn("Erro ao invalidar cache analítico após sincronizar status")
		}
	}

	return result, nil
}

func (s *PromotionStatusSyncService) TriggerManualSync() error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		return fmt.Errorf("sincronização de status das promoções já está em andamento")
	}

	go s.run(context.Background())
	return nil
}

func (s *PromotionStatusSyncService) GetStatus() map[string]any {
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
