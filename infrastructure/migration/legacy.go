// Package migration copia o histórico de um banco legado (arquivo sqlite da
// ferramenta antiga) para o banco configurado, período por período.
package migration

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/prime-manager-api/infrastructure/database"
	"github.com/vfg2006/prime-manager-api/infrastructure/repository"
	"github.com/vfg2006/prime-manager-api/internal/domain"
)

// Report resume o que foi copiado de uma tabela
type Report struct {
	Table   domain.Table `json:"table"`
	Periods int          `json:"periods"`
	Rows    int          `json:"rows"`
	Clamped int          `json:"clamped"`
}

// periodGroups agrupa registros por período mantendo a ordem de aparição
type periodGroups[T any] struct {
	order  []domain.Period
	groups map[domain.Period][]T
}

func groupByPeriod[T any](records []T, period func(T) domain.Period) periodGroups[T] {
	g := periodGroups[T]{groups: make(map[domain.Period][]T)}
	for _, r := range records {
		p := period(r)
		if _, ok := g.groups[p]; !ok {
			g.order = append(g.order, p)
		}
		g.groups[p] = append(g.groups[p], r)
	}
	return g
}

// MigrateLegacy lê todas as linhas de source e substitui os mesmos períodos em target.
// Os ids são reconstruídos pela posição, que na ferramenta antiga já era a regra; valores negativos são limitados a zero como no fluxo normal.
// Com dryRun nada é gravado.
func MigrateLegacy(ctx context.Context, source, target *database.Connection, dryRun bool) ([]Report, error) {
	startTime := time.Now()
	logrus.WithField("dry_run", dryRun).Info("Iniciando migração do banco legado")

	salesReport, err := migrateSales(ctx,
		repository.NewSalesRecordRepository(source),
		repository.NewSalesRecordRepository(target),
		dryRun,
	)
	if err != nil {
		return nil, errors.Wrap(err, "migração de sales")
	}

	amReport, err := migrateAm(ctx,
		repository.NewAmRecordRepository(source),
		repository.NewAmRecordRepository(target),
		dryRun,
	)
	if err != nil {
		return nil, errors.Wrap(err, "migração de am")
	}

	logrus.WithFields(logrus.Fields{
		"duration":      time.Since(startTime).String(),
		"sales_rows":    salesReport.Rows,
		"sales_periods": salesReport.Periods,
		"am_rows":       amReport.Rows,
		"am_periods":    amReport.Periods,
	}).Info("Migração do banco legado concluída")

	return []Report{salesReport, amReport}, nil
}

func migrateSales(ctx context.Context, source, target repository.SalesRecordRepository, dryRun bool) (Report, error) {
	report := Report{Table: domain.TableSales}

	records, err := source.LoadAll(ctx)
	if err != nil {
		return report, err
	}

	g := groupByPeriod(records, func(r domain.SalesRecord) domain.Period {
		return domain.Period{Month: r.Month, Year: r.Year}
	})

	for _, period := range g.order {
		rows := g.groups[period]
		if !period.Month.Valid() {
			logrus.WithField("month", period.Month).Warn("Mês desconhecido no banco legado, período ignorado")
			continue
		}

		for i := range rows {
			before := rows[i]
			rows[i].Normalize()
			if rows[i] != before {
				report.Clamped++
			}
		}

		if !dryRun {
			if _, err := target.ReplacePeriod(ctx, period, rows); err != nil {
				return report, errors.Wrapf(err, "período %s", period)
			}
		}

		report.Periods++
		report.Rows += len(rows)
	}

	return report, nil
}

func migrateAm(ctx context.Context, source, target repository.AmRecordRepository, dryRun bool) (Report, error) {
	report := Report{Table: domain.TableAm}

	records, err := source.LoadAll(ctx)
	if err != nil {
		return report, err
	}

	g := groupByPeriod(records, func(r domain.AmRecord) domain.Period {
		return domain.Period{Month: r.Month, Year: r.Year}
	})

	for _, period := range g.order {
		rows := g.groups[period]
		if !period.Month.Valid() {
			logrus.WithField("month", period.Month).Warn("Mês desconhecido no banco legado, período ignorado")
			continue
		}

		for i := range rows {
			before := rows[i]
			rows[i].Normalize()
			if rows[i] != before {
				report.Clamped++
			}
		}

		if !dryRun {
			if _, err := target.ReplacePeriod(ctx, period, rows); err != nil {
				return report, errors.Wrapf(err, "período %s", period)
			}
		}

		report.Periods++
		report.Rows += len(rows)
	}

	return report, nil
}
