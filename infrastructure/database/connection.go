package database

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/vfg2006/prime-manager-api/internal/config"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
	Placeholder() squirrel.PlaceholderFormat
}

// Connection é dona do pool de conexões. É aberta na inicialização do processo
// e fechada no desligamento.
type Connection struct {
	*sql.DB
	driver string
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir conexão %s", cfg.Driver)
	}

	if cfg.Driver == config.DriverSQLite {
		// sqlite serializa escritas; uma conexão evita "database is locked"
		// e mantém bancos :memory: consistentes entre chamadas
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	conn := &Connection{DB: db, driver: cfg.Driver}

	if err := conn.CreateSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return conn, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *Connection) Driver() string {
	return c.driver
}

// Placeholder retorna o formato de parâmetros do driver ($1 no postgres, ? no sqlite)
func (c *Connection) Placeholder() squirrel.PlaceholderFormat {
	if c.driver == config.DriverPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "rollback falhou: %v", rbErr)
		}
		return err
	}

	return tx.Commit()
}
