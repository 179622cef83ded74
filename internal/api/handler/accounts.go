package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tpm-api/internal/domain"
	"github.com/vfg2006/tpm-api/internal/usecases/account"
	"github.com/vfg2006/tpm-api/pkg/apiErrors"
	"github.com/vfg2006/tpm-api/pkg/utils"
)

func AccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		availableStatus := make([]domain.AccountStatus, 0)
		if filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				availableStatus = append(availableStatus, domain.AccountStatus(strings.TrimSpace(status)))
			}
		}

		accounts, err := service.ListAccounts(r.Context(), availableStatus)
		if err != nil {
			logrus.Error("Error listing accounts:", err)
			writeAccountError(w, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, accounts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAccount")

		accountID, err := utils.ParseID(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		acc, err := service.GetAccount(r.Context(), accountID)
		if err != nil {
			writeAccountError(w, err)
			return
		}

		if err := writeJSON(w, http.StatusOK, acc); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func writeAccountError(w http.ResponseWriter, err error) {
	// Verificar se é um AccountError para obter detalhes específicos do erro
	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, account.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)
	case errors.Is(err, account.ErrFetchAccounts):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar contas no banco de dados", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar contas", nil)
	}
}
