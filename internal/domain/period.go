// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/prime-manager-api/pkg/utils"
)

// Month é o nome canônico de um mês, na ordem fixa do calendário
type Month string

const (
	January   Month = "Janvier"
	February  Month = "Février"
	March     Month = "Mars"
	April     Month = "Avril"
	May       Month = "Mai"
	June      Month = "Juin"
	July      Month = "Juillet"
	August    Month = "Août"
	September Month = "Septembre"
	October   Month = "Octobre"
	November  Month = "Novembre"
	December  Month = "Décembre"
)

// Months lista os meses na ordem do calendário
var Months = []Month{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

// ParseMonth aceita o nome canônico (sem diferenciar maiúsculas) ou o número 1..12
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return "", NewValidationError("month", fmt.Sprintf("mês fora do intervalo: %d", n))
		}
		return Months[n-1], nil
	}

	for _, m := range Months {
		if strings.EqualFold(string(m), s) {
			return m, nil
		}
	}

	return "", NewValidationError("month", fmt.Sprintf("mês inválido: %q", s))
}

// Number retorna 1..12, ou 0 para um mês desconhecido
func (m Month) Number() int {
	for i, month := range Months {
		if month == m {
			return i + 1
		}
	}
	return 0
}

func (m Month) Valid() bool {
	return m.Number() != 0
}

// Period identifica um snapshot mensal (mês, ano)
type Period struct {
	Month Month `json:"month"`
	Year  int   `json:"year"`
}

func NewPeriod(month string, year int) (Period, error) {
	m, err := ParseMonth(month)
	if err != nil {
		return Period{}, err
	}

	if year < 1900 || year > 9999 {
		return Period{}, NewValidationError("year", fmt.Sprintf("ano inválido: %d", year))
	}

	return Period{Month: m, Year: year}, nil
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}

// RecordID reconstrói o id de uma linha a partir do período e da posição
func (p Period) RecordID(row int) string {
	return fmt.Sprintf("%d_%s_%d", p.Year, p.Month, row)
}

// BusinessDays conta os dias úteis (seg-sex) do mês descontando os feriados
func (p Period) BusinessDays(holidays int) int {
	return utils.BusinessDays(p.Year, p.Month.Number(), holidays)
}

// TargetAcquisitionFactor é a fração dos dias úteis exigida como meta de aquisição
const TargetAcquisitionFactor = 0.9

// TargetAcquisition deriva a meta mensal de aquisição: round(dias_úteis * 0.9, 1)
func TargetAcquisition(businessDays int) float64 {
	return utils.RoundHalfUp(float64(businessDays)*TargetAcquisitionFactor, 1)
}

// Quarter agrupa três meses fixos
type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

var quarterMonths = map[Quarter][]Month{
	Q1: {January, February, March},
	Q2: {April, May, June},
	Q3: {July, August, September},
	Q4: {October, November, December},
}

func ParseQuarter(s string) (Quarter, error) {
	q := Quarter(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := quarterMonths[q]; !ok {
		return "", NewValidationError("quarter", fmt.Sprintf("trimestre inválido: %q", s))
	}
	return q, nil
}

func (q Quarter) Months() []Month {
	return quarterMonths[q]
}

func (q Quarter) Contains(m Month) bool {
	for _, month := range quarterMonths[q] {
		if month == m {
			return true
		}
	}
	return false
}

// BusinessCalendar resume o calendário de um período e a meta derivada dele
type BusinessCalendar struct {
	Period            Period  `json:"period"`
	Holidays          int     `json:"holidays"`
	BusinessDays      int     `json:"business_days"`
	TargetAcquisition float64 `json:"target_acquisition"`
}

func NewBusinessCalendar(period Period, holidays int) BusinessCalendar {
	days := period.BusinessDays(holidays)
	return BusinessCalendar{
		Period:            period,
		Holidays:          holidays,
		BusinessDays:      days,
		TargetAcquisition: TargetAcquisition(days),
	}
}
