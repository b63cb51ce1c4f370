package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pkg/errors"
)

const (
	SalesTable = "sales"
	AmTable    = "am"
)

var tableSchemas = map[string]string{
	SalesTable: `CREATE TABLE IF NOT EXISTS sales (
		id TEXT PRIMARY KEY,
		month TEXT,
		year INTEGER,
		collab_name TEXT,
		acquisition_real INTEGER,
		total_stores INTEGER,
		active_stores INTEGER
	)`,
	AmTable: `CREATE TABLE IF NOT EXISTS am (
		id TEXT PRIMARY KEY,
		month TEXT,
		year INTEGER,
		collab_name TEXT,
		gmv_prev REAL,
		gmv_curr REAL,
		total_stores INTEGER,
		automated_stores INTEGER,
		quality_deals INTEGER
	)`,
}

// CreateSchema cria as tabelas que ainda não existem
func (c *Connection) CreateSchema(ctx context.Context) error {
	for _, table := range []string{SalesTable, AmTable} {
		if _, err := c.ExecContext(ctx, tableSchemas[table]); err != nil {
			return errors.Wrapf(err, "erro ao criar tabela %s", table)
		}
	}
	return nil
}

// RecreateTable apaga a tabela e a recria vazia dentro da transação informada
func RecreateTable(ctx context.Context, tx *sql.Tx, table string) error {
	schema, ok := tableSchemas[table]
	if !ok {
		return fmt.Errorf("tabela desconhecida: %s", table)
	}

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return errors.Wrapf(err, "erro ao remover tabela %s", table)
	}

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return errors.Wrapf(err, "erro ao recriar tabela %s", table)
	}

	return nil
}
