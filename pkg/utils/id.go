package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const runIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewRunID gera um sufixo curto para diferenciar execuções no mesmo segundo
func NewRunID() (string, error) {
	return gonanoid.Generate(runIDAlphabet, 8)
}
