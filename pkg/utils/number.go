package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePositiveInt converte um parâmetro opcional; vazio retorna o fallback
func ParsePositiveInt(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("valor numérico inválido: %q", raw)
	}
	if value <= 0 {
		return 0, fmt.Errorf("valor deve ser positivo: %d", value)
	}

	return value, nil
}

// ParseID converte o identificador numérico vindo da rota
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("identificador inválido: %q", raw)
	}
	return id, nil
}
