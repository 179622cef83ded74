package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de orçamento (1000-1999)
	ErrBudgetDecisionRequired  = "BUD_001" // Alocação duplicada exige decisão (somar ou substituir)
	ErrBudgetSessionNotFound   = "BUD_002" // Sessão de alocação inexistente ou expirada
	ErrBudgetConflict          = "BUD_003" // Alocação alterada por outra requisição
	ErrBudgetInvalidTransition = "BUD_004" // Transição de sessão inválida
	ErrAccountNotFound         = "BUD_005" // Conta não encontrada

	// Erros de rotinas agendadas
	ErrJobAlreadyRunning = "JOB_001" // Rotina já em execução

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
	ErrRouteNotFound     = "SRV_005" // Rota inexistente
	ErrMethodNotAllowed  = "SRV_006" // Método não suportado pela rota
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrBudgetDecisionRequired:  http.StatusConflict,
	ErrBudgetSessionNotFound:   http.StatusNotFound,
	ErrBudgetConflict:          http.StatusConflict,
	ErrBudgetInvalidTransition: http.StatusConflict,
	ErrAccountNotFound:         http.StatusNotFound,
	ErrJobAlreadyRunning:       http.StatusConflict,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrMissingRequiredData:     http.StatusBadRequest,
	ErrInvalidFormat:           http.StatusBadRequest,
	ErrInternalServer:          http.StatusInternalServerError,
	ErrDatabaseOperation:       http.StatusInternalServerError,
	ErrExternalService:         http.StatusBadGateway,
	ErrCommunication:           http.StatusServiceUnavailable,
	ErrRouteNotFound:           http.StatusNotFound,
	ErrMethodNotAllowed:        http.StatusMethodNotAllowed,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
