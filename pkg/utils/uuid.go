package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const sessionIDLength = 21

// GenerateSessionID gera o identificador das sessões de alocação, longo o
// suficiente para não ser adivinhado enquanto a sessão aguarda a decisão
func GenerateSessionID() (string, error) {
	return gonanoid.Generate(characters, sessionIDLength)
}
