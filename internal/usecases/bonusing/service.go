// Package bonusing monta as planilhas mensais de prime (Sales e AM) e grava os períodos
package bonusing

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/prime-manager-api/infrastructure/repository"
	"github.com/vfg2006/prime-manager-api/internal/domain"
	"github.com/vfg2006/prime-manager-api/pkg/log"
)

type Bonuser interface {
	Calendar(period domain.Period, holidays int) (*domain.BusinessCalendar, error)
	LoadSalesSheet(ctx context.Context, period domain.Period, holidays int) (*domain.SalesSheet, error)
	SaveSalesSheet(ctx context.Context, period domain.Period, holidays int, records []domain.SalesRecord) (*domain.SalesSheet, error)
	LoadAmSheet(ctx context.Context, period domain.Period) (*domain.AmSheet, error)
	SaveAmSheet(ctx context.Context, period domain.Period, records []domain.AmRecord) (*domain.AmSheet, error)
}

type Service struct {
	salesRepository repository.SalesRecordRepository
	amRepository    repository.AmRecordRepository
}

func NewService(
	salesRepository repository.SalesRecordRepository,
	amRepository repository.AmRecordRepository,
) Bonuser {
	return &Service{
		salesRepository: salesRepository,
		amRepository:    amRepository,
	}
}

func (s *Service) Calendar(period domain.Period, holidays int) (*domain.BusinessCalendar, error) {
	if err := validateStruct(holidaysRequest{Holidays: holidays}); err != nil {
		return nil, err
	}

	calendar := domain.NewBusinessCalendar(period, holidays)
	return &calendar, nil
}

// LoadSalesSheet devolve as linhas gravadas do período ou, se não houver nenhuma,
// as linhas padrão com Persisted=false
func (s *Service) LoadSalesSheet(ctx context.Context, period domain.Period, holidays int) (*domain.SalesSheet, error) {
	if err := validateStruct(holidaysRequest{Holidays: holidays}); err != nil {
		return nil, err
	}

	records, err := s.salesRepository.Load(ctx, period)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(logrus.Fields{
			"period": period.String(),
		}).Error("Erro ao carregar registros de sales")
		return nil, err
	}

	persisted := len(records) > 0
	if !persisted {
		records = domain.DefaultSalesRecords(period)
	}

	return buildSalesSheet(period, holidays, records, persisted), nil
}

func (s *Service) SaveSalesSheet(ctx context.Context, period domain.Period, holidays int, records []domain.SalesRecord) (*domain.SalesSheet, error) {
	if err := validateStruct(salesSaveRequest{Holidays: holidays, Records: records}); err != nil {
		return nil, err
	}

	normalized := make([]domain.SalesRecord, len(records))
	for i, record := range records {
		record.Normalize()
		normalized[i] = record
	}

	saved, err := s.salesRepository.ReplacePeriod(ctx, period, normalized)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(logrus.Fields{
			"period": period.String(),
			"rows":   len(normalized),
		}).Error("Erro ao salvar período de sales")
		return nil, err
	}

	log.ForContext(ctx).WithFields(logrus.Fields{
		"period": period.String(),
		"rows":   len(saved),
	}).Info("Período de sales salvo")

	return buildSalesSheet(period, holidays, saved, true), nil
}

func (s *Service) LoadAmSheet(ctx context.Context, period domain.Period) (*domain.AmSheet, error) {
	records, err := s.amRepository.Load(ctx, period)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(logrus.Fields{
			"period": period.String(),
		}).Error("Erro ao carregar registros de AM")
		return nil, err
	}

	persisted := len(records) > 0
	if !persisted {
		records = domain.DefaultAmRecords(period)
	}

	return buildAmSheet(period, records, persisted), nil
}

func (s *Service) SaveAmSheet(ctx context.Context, period domain.Period, records []domain.AmRecord) (*domain.AmSheet, error) {
	if err := validateStruct(amSaveRequest{Records: records}); err != nil {
		return nil, err
	}

	normalized := make([]domain.AmRecord, len(records))
	for i, record := range records {
		record.Normalize()
		normalized[i] = record
	}

	saved, err := s.amRepository.ReplacePeriod(ctx, period, normalized)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(logrus.Fields{
			"period": period.String(),
			"rows":   len(normalized),
		}).Error("Erro ao salvar período de AM")
		return nil, err
	}

	log.ForContext(ctx).WithFields(logrus.Fields{
		"period": period.String(),
		"rows":   len(saved),
	}).Info("Período de AM salvo")

	return buildAmSheet(period, saved, true), nil
}

func buildSalesSheet(period domain.Period, holidays int, records []domain.SalesRecord, persisted bool) *domain.SalesSheet {
	calendar := domain.NewBusinessCalendar(period, holidays)
	rows := domain.EvaluateSales(records, calendar.TargetAcquisition)

	return &domain.SalesSheet{
		Period:            period,
		BusinessDays:      calendar.BusinessDays,
		Holidays:          holidays,
		TargetAcquisition: calendar.TargetAcquisition,
		PerfThreshold:     domain.SalesPerfThreshold,
		Persisted:         persisted,
		Rows:              rows,
		Summary:           domain.SummarizeSales(rows),
	}
}

func buildAmSheet(period domain.Period, records []domain.AmRecord, persisted bool) *domain.AmSheet {
	rows := domain.EvaluateAm(records)

	return &domain.AmSheet{
		Period:     period,
		Thresholds: domain.DefaultAmThresholds,
		Persisted:  persisted,
		Rows:       rows,
		Summary:    domain.SummarizeAm(rows),
	}
}
