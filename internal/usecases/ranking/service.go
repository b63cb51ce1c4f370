package ranking

import (
	"context"
	"sort"

	"github.com/vfg2006/prime-manager-api/infrastructure/repository"
	"github.com/vfg2006/prime-manager-api/internal/domain"
	"github.com/vfg2006/prime-manager-api/pkg/log"
)

type RankingService interface {
	MonthlyPodium(ctx context.Context, period domain.Period) (*domain.MonthlyPodium, error)
	QuarterlyReview(ctx context.Context, year int, quarter domain.Quarter) (*domain.QuarterlyReview, error)
}

type DashboardService struct {
	SalesRecordRepository repository.SalesRecordRepository
	AmRecordRepository    repository.AmRecordRepository
}

func NewDashboardService(
	salesRecordRepository repository.SalesRecordRepository,
	amRecordRepository repository.AmRecordRepository,
) RankingService {
	return &DashboardService{
		SalesRecordRepository: salesRecordRepository,
		AmRecordRepository:    amRecordRepository,
	}
}

// MonthlyPodium monta o top 3 do mês. O ano inteiro é lido para decidir se há
// dados suficientes para o painel de Sales.
func (s *DashboardService) MonthlyPodium(ctx context.Context, period domain.Period) (*domain.MonthlyPodium, error) {
	salesYear, err := s.SalesRecordRepository.LoadYear(ctx, period.Year)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("year", period.Year).Error("Erro ao carregar sales do ano")
		return nil, err
	}

	podium := &domain.MonthlyPodium{
		Period:  period,
		HasData: len(salesYear) > 0,
		Sales:   make([]domain.SalesPodiumEntry, 0, domain.PodiumSize),
		Am:      make([]domain.AmPodiumEntry, 0, domain.PodiumSize),
	}
	if !podium.HasData {
		return podium, nil
	}

	monthSales := make([]domain.SalesRecord, 0)
	for _, record := range salesYear {
		if record.Month == period.Month {
			monthSales = append(monthSales, record)
		}
	}

	for _, record := range topN(monthSales, domain.PodiumSize, func(a, b domain.SalesRecord) bool {
		return a.AcquisitionReal > b.AcquisitionReal
	}) {
		podium.Sales = append(podium.Sales, domain.SalesPodiumEntry{
			CollaboratorName: record.CollaboratorName,
			AcquisitionReal:  record.AcquisitionReal,
		})
	}

	amMonth, err := s.AmRecordRepository.Load(ctx, period)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("period", period.String()).Error("Erro ao carregar AM do mês")
		return nil, err
	}

	// crescimento é recalculado por linha, nunca somado
	amRanked := domain.EvaluateAm(amMonth)
	for _, row := range topN(amRanked, domain.PodiumSize, func(a, b domain.AmEvaluation) bool {
		return a.Growth > b.Growth
	}) {
		podium.Am = append(podium.Am, domain.AmPodiumEntry{
			CollaboratorName: row.CollaboratorName,
			Growth:           row.Growth,
		})
	}

	return podium, nil
}

func (s *DashboardService) QuarterlyReview(ctx context.Context, year int, quarter domain.Quarter) (*domain.QuarterlyReview, error) {
	salesYear, err := s.SalesRecordRepository.LoadYear(ctx, year)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("year", year).Error("Erro ao carregar sales do ano")
		return nil, err
	}

	review := &domain.QuarterlyReview{
		Year:             year,
		Quarter:          quarter,
		Months:           quarter.Months(),
		HasData:          len(salesYear) > 0,
		QualityObjective: domain.SalesPerfThreshold,
		Matrix:           make([]domain.SalesQuarterAggregate, 0),
		Flop:             make([]domain.SalesQuarterAggregate, 0, domain.FlopSize),
	}
	if !review.HasData {
		return review, nil
	}

	review.Matrix = AggregateQuarter(salesYear, quarter)
	review.Flop = topN(review.Matrix, domain.FlopSize, func(a, b domain.SalesQuarterAggregate) bool {
		return a.AvgPerf < b.AvgPerf
	})

	return review, nil
}

// AggregateQuarter soma as linhas de sales dos meses do trimestre por colaborador,
// na ordem da primeira aparição
func AggregateQuarter(records []domain.SalesRecord, quarter domain.Quarter) []domain.SalesQuarterAggregate {
	index := make(map[string]int)
	aggregates := make([]domain.SalesQuarterAggregate, 0)

	for _, record := range records {
		if !quarter.Contains(record.Month) {
			continue
		}

		pos, ok := index[record.CollaboratorName]
		if !ok {
			pos = len(aggregates)
			index[record.CollaboratorName] = pos
			aggregates = append(aggregates, domain.SalesQuarterAggregate{CollaboratorName: record.CollaboratorName})
		}

		aggregates[pos].AcquisitionReal += record.AcquisitionReal
		aggregates[pos].TotalStores += record.TotalStores
		aggregates[pos].ActiveStores += record.ActiveStores
	}

	for i := range aggregates {
		aggregates[i].AvgPerf = domain.SalesRecord{
			TotalStores:  aggregates[i].TotalStores,
			ActiveStores: aggregates[i].ActiveStores,
		}.PerfRatio()
	}

	return aggregates
}

// topN ordena uma cópia de forma estável (empates mantêm a ordem original) e devolve
// no máximo n elementos
func topN[T any](items []T, n int, less func(a, b T) bool) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
