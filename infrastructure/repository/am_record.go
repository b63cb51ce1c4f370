package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/prime-manager-api/infrastructure/database"
	"github.com/vfg2006/prime-manager-api/internal/domain"
)

var amColumns = []string{
	"id",
	"month",
	"year",
	"collab_name",
	"gmv_prev",
	"gmv_curr",
	"total_stores",
	"automated_stores",
	"quality_deals",
}

//go:generate mockgen -source=am_record.go -destination=mocks/am_record.go -package=mocks
type AmRecordRepository interface {
	Load(ctx context.Context, period domain.Period) ([]domain.AmRecord, error)
	ReplacePeriod(ctx context.Context, period domain.Period, records []domain.AmRecord) ([]domain.AmRecord, error)
	LoadYear(ctx context.Context, year int) ([]domain.AmRecord, error)
	LoadAll(ctx context.Context) ([]domain.AmRecord, error)
}

type amRecordRepository struct {
	conn database.Conn
}

func NewAmRecordRepository(conn database.Conn) AmRecordRepository {
	return &amRecordRepository{
		conn: conn,
	}
}

func (r *amRecordRepository) Load(ctx context.Context, period domain.Period) ([]domain.AmRecord, error) {
	return r.selectWhere(ctx, "am.load", squirrel.Eq{"month": string(period.Month), "year": period.Year})
}

func (r *amRecordRepository) LoadYear(ctx context.Context, year int) ([]domain.AmRecord, error) {
	return r.selectWhere(ctx, "am.load_year", squirrel.Eq{"year": year})
}

func (r *amRecordRepository) LoadAll(ctx context.Context) ([]domain.AmRecord, error) {
	return r.selectWhere(ctx, "am.load_all", nil)
}

func (r *amRecordRepository) ReplacePeriod(ctx context.Context, period domain.Period, records []domain.AmRecord) ([]domain.AmRecord, error) {
	ids := positionalIDs(period, len(records))

	stamped := make([]domain.AmRecord, len(records))
	query := squirrel.StatementBuilder.
		Insert(database.AmTable).
		Columns(amColumns...)

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
			record.GmvPrev,
			record.GmvCurr,
			record.TotalStores,
			record.AutomatedStores,
			record.QualityDeals,
		)
	}

	if err := replacePeriod(ctx, r.conn, database.AmTable, period, query, len(stamped) > 0); err != nil {
		return nil, domain.NewPersistenceError("am.replace_period", err)
	}

	return stamped, nil
}

func (r *amRecordRepository) selectWhere(ctx context.Context, op string, where squirrel.Sqlizer) ([]domain.AmRecord, error) {
	queryBuilder := squirrel.
		Select(amColumns...).
		From(database.AmTable).
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

	records := make([]domain.AmRecord, 0)
	for rows.Next() {
		record, err := r.scanAmRecord(rows)
		if err != nil {
			return nil, domain.NewPersistenceError(op, fmt.Errorf("erro ao escanear registro de am: %w", err))
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, domain.NewPersistenceError(op, fmt.Errorf("erro durante a iteração de linhas: %w", err))
	}

	sortByRow(records, func(r domain.AmRecord) (int, int, string) {
		return r.Year, r.Month.Number(), r.ID
	})

	return records, nil
}

func (r *amRecordRepository) scanAmRecord(rows *sql.Rows) (*domain.AmRecord, error) {
	record := &domain.AmRecord{}
	var month string

	err := rows.Scan(
		&record.ID,
		&month,
		&record.Year,
		&record.CollaboratorName,
		&record.GmvPrev,
		&record.GmvCurr,
		&record.TotalStores,
		&record.AutomatedStores,
		&record.QualityDeals,
	)
	if err != nil {
		return nil, err
	}

	record.Month = domain.Month(month)
	return record, nil
}
