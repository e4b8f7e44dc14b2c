package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera ids curtos alfanuméricos para mensagens do chat e sessões do drawer.
func GenerateID(size int) string {
	return gonanoid.MustGenerate(characters, size)
}
