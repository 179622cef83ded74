package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tpm-api/internal/usecases/analyzing"
	"github.com/vfg2006/tpm-api/pkg/apiErrors"
	"github.com/vfg2006/tpm-api/pkg/log"
	"github.com/vfg2006/tpm-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func GetKPIs(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetKPIs")

		year := time.Now().Year()
		if raw := r.URL.Query().Get("year"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
				return
			}
			year = parsed
		}

		kpis, err := service.GetKPIs(r.Context(), year)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, kpis); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta de KPIs")
		}
	})
}

func GetROITrend(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		period, err := analyzing.ParsePeriod(query.Get("period"))
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		granularity, err := analyzing.ParseGranularity(query.Get("granularity"))
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		now, err := referenceTimeFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro as_of inválido", nil)
			return
		}

		trendQuery := analyzing.TrendQuery{
			Filter:        filterFromQuery(r),
			Period:        period,
			Granularity:   granularity,
			Chronological: query.Get("order") == "chronological",
			Now:           now,
		}

		logger.WithFields(log.Fields{
			"period":      period,
			"granularity": granularity,
			"as_of":       now.Format(time.DateOnly),
		}).Debug("analytics: calculando tendência de ROI")

		points, err := service.GetROITrend(r.Context(), trendQuery)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, points); err != nil {
			logger.WithError(err).Error("analytics: falha ao codificar tendência de ROI")
		}
	})
}

func GetTopPromotions(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetTopPromotions")

		limit, err := utils.ParsePositiveInt(r.URL.Query().Get("limit"), 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		top, err := service.GetTopPromotions(r.Context(), limit)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, top); err != nil {
			logrus.WithError(err).Error("Erro ao codificar ranking de promoções")
		}
	})
}

func GetRollup(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetRollup")

		dimension, err := analyzing.ParseDimension(r.URL.Query().Get("dimension"))
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		now, err := referenceTimeFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro as_of inválido", nil)
			return
		}

		rows, err := service.GetRollup(r.Context(), filterFromQuery(r), dimension, now)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, rows); err != nil {
			logrus.WithError(err).Error("Erro ao codificar consolidação")
		}
	})
}

func GetPriorityDeductions(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetPriorityDeductions")

		limit, err := utils.ParsePositiveInt(r.URL.Query().Get("limit"), 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		deductions, err := service.GetPriorityDeductions(r.Context(), limit)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, deductions); err != nil {
			logrus.WithError(err).Error("Erro ao codificar deduções prioritárias")
		}
	})
}

func GetDeductionBreakdown(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDeductionBreakdown")

		now, err := referenceTimeFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro as_of inválido", nil)
			return
		}

		totals, err := service.GetDeductionBreakdown(r.Context(), filterFromQuery(r), now)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, totals); err != nil {
			logrus.WithError(err).Error("Erro ao codificar totais de deduções")
		}
	})
}

func GetUpcomingPromotions(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetUpcomingPromotions")

		now, err := referenceTimeFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro as_of inválido", nil)
			return
		}

		promotions, err := service.GetUpcomingPromotions(r.Context(), now)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, promotions); err != nil {
			logrus.WithError(err).Error("Erro ao codificar próximas promoções")
		}
	})
}

func writeAnalyticsError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Error("analytics: falha ao processar requisição")

	var analyticsErr *analyzing.AnalyticsError
	if errors.As(err, &analyticsErr) && analyticsErr.Code != "" {
		apiErrors.WriteError(w, analyticsErr.Code, analyticsErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, analyzing.ErrInvalidPeriod),
		errors.Is(err, analyzing.ErrInvalidGranularity),
		errors.Is(err, analyzing.ErrInvalidDimension):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, analyzing.ErrFetchData):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar dados analíticos", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular análises", nil)
	}
}
