package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tpm-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypePromotionStatus = "promotion-status"
	CronJobTypeDeductionAging  = "deduction-aging"
	CronJobTypeAll             = "all"
)

// SyncJob é a parte de um serviço agendado exposta para execução manual
type SyncJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	PromotionStatusSyncService SyncJob
	DeductionAgingSyncService  SyncJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		var jobs []SyncJob
		switch cronType {
		case CronJobTypePromotionStatus:
			jobs = append(jobs, services.PromotionStatusSyncService)
		case CronJobTypeDeductionAging:
			jobs = append(jobs, services.DeductionAgingSyncService)
		case CronJobTypeAll:
			jobs = append(jobs, services.PromotionStatusSyncService, services.DeductionAgingSyncService)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: promotion-status, deduction-aging, all", nil)
			return
		}

		for _, job := range jobs {
			if job == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
				return
			}
			if err := job.TriggerManualSync(); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, err.Error(), nil)
				return
			}
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		if err := writeJSON(w, http.StatusAccepted, response); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta da cron job")
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		status := map[string]any{}
		switch cronType {
		case CronJobTypePromotionStatus, CronJobTypeDeductionAging, CronJobTypeAll:
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: promotion-status, deduction-aging, all", nil)
			return
		}

		if services.PromotionStatusSyncService != nil && cronType != CronJobTypeDeductionAging {
			status[CronJobTypePromotionStatus] = services.PromotionStatusSyncService.GetStatus()
		}
		if services.DeductionAgingSyncService != nil && cronType != CronJobTypePromotionStatus {
			status[CronJobTypeDeductionAging] = services.DeductionAgingSyncService.GetStatus()
		}

		if err := writeJSON(w, http.StatusOK, status); err != nil {
			logrus.WithError(err).Error("Erro ao codificar status das cron jobs")
		}
	}
}
