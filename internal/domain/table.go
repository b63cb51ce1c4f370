package domain

import (
	"strconv"
	"strings"
)

// Table identifica um dos dois conjuntos de registros persistidos
type Table string

const (
	TableSales Table = "sales"
	TableAm    Table = "am"
)

var Tables = []Table{TableSales, TableAm}

func ParseTable(s string) (Table, error) {
	switch Table(strings.ToLower(strings.TrimSpace(s))) {
	case TableSales:
		return TableSales, nil
	case TableAm:
		return TableAm, nil
	}
	return "", NewValidationError("table", ErrInvalidTable.Error()+": "+s)
}

// DefaultRowCount é o número de linhas em branco sugeridas para um período novo
const DefaultRowCount = 10

func defaultCollaboratorName(i int) string {
	return "Collab " + strconv.Itoa(i)
}

// safeRatio divide sem falhar: denominador zero resulta em 0
func safeRatio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
