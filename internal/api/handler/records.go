package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tpm-api/internal/usecases/analyzing"
	"github.com/vfg2006/tpm-api/pkg/apiErrors"
	"github.com/vfg2006/tpm-api/pkg/utils"
)

func ListPromotions(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListPromotions")

		now, err := referenceTimeFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro as_of inválido", nil)
			return
		}

		promotions, err := service.ListPromotions(r.Context(), filterFromQuery(r), now)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, promotions); err != nil {
			logrus.WithError(err).Error("Erro ao codificar promoções")
		}
	})
}

func ListDeductions(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListDeductions")

		now, err := referenceTimeFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro as_of inválido", nil)
			return
		}

		deductions, err := service.ListDeductions(r.Context(), filterFromQuery(r), now)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, deductions); err != nil {
			logrus.WithError(err).Error("Erro ao codificar deduções")
		}
	})
}

func ListSalesData(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListSalesData")

		now, err := referenceTimeFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro as_of inválido", nil)
			return
		}

		sales, err := service.ListSalesData(r.Context(), filterFromQuery(r), now)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, sales); err != nil {
			logrus.WithError(err).Error("Erro ao codificar dados de vendas")
		}
	})
}

func GetRecentActivities(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetRecentActivities")

		limit, err := utils.ParsePositiveInt(r.URL.Query().Get("limit"), analyzing.DefaultRecentActivitiesLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		now, err := referenceTimeFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro as_of inválido", nil)
			return
		}

		activities, err := service.RecentActivities(r.Context(), filterFromQuery(r), limit, now)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, activities); err != nil {
			logrus.WithError(err).Error("Erro ao codificar atividades recentes")
		}
	})
}
