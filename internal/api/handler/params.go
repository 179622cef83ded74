package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/tpm-api/internal/domain"
	"github.com/vfg2006/tpm-api/pkg/utils"
)

// filterFromQuery monta o FilterSpec a partir de search, date_range, account e status
func filterFromQuery(r *http.Request) domain.FilterSpec {
	query := r.URL.Query()
	return domain.FilterSpec{
		SearchQuery:   query.Get("search"),
		DateRange:     domain.DateRange(query.Get("date_range")),
		AccountFilter: query.Get("account"),
		StatusFilter:  query.Get("status"),
	}
}

// referenceTimeFromQuery lê as_of (2006-01-02); ausente usa o instante atual
func referenceTimeFromQuery(r *http.Request) (time.Time, error) {
	asOf, err := utils.ParseDate(r.URL.Query().Get("as_of"))
	if err != nil {
		return time.Time{}, err
	}
	return utils.ReferenceTime(asOf, time.Now()), nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}
