package utils

import "time"

// CountWeekdays conta os dias de segunda a sexta no intervalo [start, end)
func CountWeekdays(start, end time.Time) int {
	count := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// BusinessDays retorna os dias úteis do mês (1..12) menos os feriados, nunca negativo
func BusinessDays(year, month, holidays int) int {
	if month < 1 || month > 12 {
		return 0
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	days := CountWeekdays(start, end) - holidays
	if days < 0 {
		return 0
	}
	return days
}
