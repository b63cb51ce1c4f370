package repository

import (
	"context"

	"github.com/vfg2006/prime-manager-api/infrastructure/database"
	"github.com/vfg2006/prime-manager-api/internal/domain"
)

//go:generate mockgen -source=record_store.go -destination=mocks/record_store.go -package=mocks
type RecordStore interface {
	ResetAll(ctx context.Context) error
}

type recordStore struct {
	conn database.Conn
}

func NewRecordStore(conn database.Conn) RecordStore {
	return &recordStore{conn: conn}
}

// ResetAll recria sales e am vazias na mesma transação
func (s *recordStore) ResetAll(ctx context.Context) error {
	if err := resetTables(ctx, s.conn, database.SalesTable, database.AmTable); err != nil {
		return domain.NewPersistenceError("store.reset_all", err)
	}
	return nil
}
