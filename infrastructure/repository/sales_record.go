package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/prime-manager-api/infrastructure/database"
	"github.com/vfg2006/prime-manager-api/internal/domain"
)

var salesColumns = []string{
	"id",
	"month",
	"year",
	"collab_name",
	"acquisition_real",
	"total_stores",
	"active_stores",
}

//go:generate mockgen -source=sales_record.go -destination=mocks/sales_record.go -package=mocks
type SalesRecordRepository interface {
	Load(ctx context.Context, period domain.Period) ([]domain.SalesRecord, error)
	ReplacePeriod(ctx context.Context, period domain.Period, records []domain.SalesRecord) ([]domain.SalesRecord, error)
	LoadYear(ctx context.Context, year int) ([]domain.SalesRecord, error)
	LoadAll(ctx context.Context) ([]domain.SalesRecord, error)
}

type salesRecordRepository struct {
	conn database.Conn
}

func NewSalesRecordRepository(conn database.Conn) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

func (r *salesRecordRepository) Load(ctx context.Context, period domain.Period) ([]domain.SalesRecord, error) {
	return r.selectWhere(ctx, "sales.load", squirrel.Eq{"month": string(period.Month), "year": period.Year})
}

func (r *salesRecordRepository) LoadYear(ctx context.Context, year int) ([]domain.SalesRecord, error) {
	return r.selectWhere(ctx, "sales.load_year", squirrel.Eq{"year": year})
}

func (r *salesRecordRepository) LoadAll(ctx context.Context) ([]domain.SalesRecord, error) {
	return r.selectWhere(ctx, "sales.load_all", nil)
}

// ReplacePeriod substitui todas as linhas do período pelas informadas. Mês, ano e
// ids posicionais são carimbados antes da escrita; os registros gravados são retornados.
func (r *salesRecordRepository) ReplacePeriod(ctx context.Context, period domain.Period, records []domain.SalesRecord) ([]domain.SalesRecord, error) {
	ids := positionalIDs(period, len(records))

	stamped := make([]domain.SalesRecord, len(records))
	query := squirrel.StatementBuilder.
		Insert(database.SalesTable).
		Columns(salesColumns...)

	for i, record := range records {
		record.ID = ids[i]
		record.Month = period.Month
		record.Year = period.Year
		stamped[i] = record

		query = query.Values(
			record.ID,
			string(record.Month),
			record.Year,
			record.CollaboratorName,
			record.AcquisitionReal,
			record.TotalStores,
			record.ActiveStores,
		)
	}

	if err := replacePeriod(ctx, r.conn, database.SalesTable, period, query, len(stamped) > 0); err != nil {
		return nil, domain.NewPersistenceError("sales.replace_period", err)
	}

	return stamped, nil
}

func (r *salesRecordRepository) selectWhere(ctx context.Context, op string, where squirrel.Sqlizer) ([]domain.SalesRecord, error) {
	queryBuilder := squirrel.
		Select(salesColumns...).
		From(database.SalesTable).
		OrderBy("year ASC", "month ASC", "id ASC").
		PlaceholderFormat(r.conn.Placeholder())

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, domain.NewPersistenceError(op, fmt.Errorf("erro ao executar a query: %w", err))
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		record, err := r.scanSalesRecord(rows)
		if err != nil {
			return nil, domain.NewPersistenceError(op, fmt.Errorf("erro ao escanear registro de sales: %w", err))
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, domain.NewPersistenceError(op, fmt.Errorf("erro durante a iteração de linhas: %w", err))
	}

	sortByRow(records, func(r domain.SalesRecord) (int, int, string) {
		return r.Year, r.Month.Number(), r.ID
	})

	return records, nil
}

func (r *salesRecordRepository) scanSalesRecord(rows *sql.Rows) (*domain.SalesRecord, error) {
	record := &domain.SalesRecord{}
	var month string

	err := rows.Scan(
		&record.ID,
		&month,
		&record.Year,
		&record.CollaboratorName,
		&record.AcquisitionReal,
		&record.TotalStores,
		&record.ActiveStores,
	)
	if err != nil {
		return nil, err
	}

	record.Month = domain.Month(month)
	return record, nil
}
