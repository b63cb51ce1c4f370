// Package exporting gera os arquivos de histórico (CSV por tabela e planilha XLSX)
package exporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/prime-manager-api/infrastructure/repository"
	"github.com/vfg2006/prime-manager-api/internal/domain"
	"github.com/vfg2006/prime-manager-api/pkg/log"
	"github.com/xuri/excelize/v2"
)

const (
	WorkbookFileName = "historique.xlsx"
	CSVContentType   = "text/csv; charset=utf-8"
	XLSXContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Colunas na ordem do schema, sem métricas derivadas
var columns = map[domain.Table][]string{
	domain.TableSales: {"id", "month", "year", "collab_name", "acquisition_real", "total_stores", "active_stores"},
	domain.TableAm:    {"id", "month", "year", "collab_name", "gmv_prev", "gmv_curr", "total_stores", "automated_stores", "quality_deals"},
}

type Exporter interface {
	ExportCSV(ctx context.Context, table domain.Table) ([]byte, error)
	ExportWorkbook(ctx context.Context) (*excelize.File, error)
}

type Service struct {
	salesRepo repository.SalesRecordRepository
	amRepo    repository.AmRecordRepository
}

func NewService(salesRepo repository.SalesRecordRepository, amRepo repository.AmRecordRepository) Exporter {
	return &Service{
		salesRepo: salesRepo,
		amRepo:    amRepo,
	}
}

// CSVFileName devolve o nome do arquivo de histórico de uma tabela
func CSVFileName(table domain.Table) string {
	return fmt.Sprintf("historique_%s.csv", table)
}

func (s *Service) ExportCSV(ctx context.Context, table domain.Table) ([]byte, error) {
	rows, err := s.rows(ctx, table)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(columns[table]); err != nil {
		return nil, errors.Wrap(err, "erro ao escrever cabeçalho do CSV")
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, errors.Wrap(err, "erro ao escrever linha do CSV")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "erro ao finalizar CSV")
	}

	log.ForContext(ctx).WithFields(logrus.Fields{
		"table": table,
		"rows":  len(rows),
	}).Info("Exportação CSV gerada")

	return buf.Bytes(), nil
}

// ExportWorkbook monta uma planilha com uma aba por tabela
func (s *Service) ExportWorkbook(ctx context.Context) (*excelize.File, error) {
	f := excelize.NewFile()

	for i, table := range domain.Tables {
		sheet := string(table)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				_ = f.Close()
				return nil, errors.Wrap(err, "erro ao renomear aba")
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			_ = f.Close()
			return nil, errors.Wrapf(err, "erro ao criar aba %s", sheet)
		}

		if err := s.fillSheet(ctx, f, table); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return f, nil
}

func (s *Service) fillSheet(ctx context.Context, f *excelize.File, table domain.Table) error {
	sheet := string(table)

	header := make([]interface{}, 0, len(columns[table]))
	for _, column := range columns[table] {
		header = append(header, column)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrapf(err, "erro ao escrever cabeçalho da aba %s", sheet)
	}

	values, err := s.cellValues(ctx, table)
	if err != nil {
		return err
	}

	for i, row := range values {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "erro ao escrever linha %d da aba %s", i+2, sheet)
		}
	}

	return nil
}

func (s *Service) rows(ctx context.Context, table domain.Table) ([][]string, error) {
	values, err := s.cellValues(ctx, table)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(values))
	for _, value := range values {
		row := make([]string, 0, len(value))
		for _, v := range value {
			row = append(row, formatCell(v))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cellValues lê o histórico completo de uma tabela em valores tipados por coluna
func (s *Service) cellValues(ctx context.Context, table domain.Table) ([][]interface{}, error) {
	switch table {
	case domain.TableSales:
		records, err := s.salesRepo.LoadAll(ctx)
		if err != nil {
			return nil, err
		}
		values := make([][]interface{}, 0, len(records))
		for _, r := range records {
			values = append(values, []interface{}{
				r.ID, string(r.Month), r.Year, r.CollaboratorName,
				r.AcquisitionReal, r.TotalStores, r.ActiveStores,
			})
		}
		return values, nil

	case domain.TableAm:
		records, err := s.amRepo.LoadAll(ctx)
		if err != nil {
			return nil, err
		}
		values := make([][]interface{}, 0, len(records))
		for _, r := range records {
			values = append(values, []interface{}{
				r.ID, string(r.Month), r.Year, r.CollaboratorName,
				r.GmvPrev, r.GmvCurr, r.TotalStores, r.AutomatedStores, r.QualityDeals,
			})
		}
		return values, nil
	}

	return nil, domain.NewValidationError("table", domain.ErrInvalidTable.Error()+": "+string(table))
}

func formatCell(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
