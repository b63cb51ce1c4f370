// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/prime-manager-api/infrastructure/database"
	"github.com/vfg2006/prime-manager-api/internal/domain"
)

// positionalIDs reconstrói os ids de todas as linhas como {ano}_{mês}_{posição}.
// Ids recebidos são descartados: a posição na planilha é a identidade da linha, o
// que mantém a ordem salva no recarregamento e impede colisão com ids de outro período.
func positionalIDs(period domain.Period, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = period.RecordID(i)
	}
	return ids
}

// rowIndex extrai a posição da linha do sufixo "_N" do id; ids fora do padrão vão para o fim
func rowIndex(id string) int {
	pos := strings.LastIndex(id, "_")
	if pos < 0 {
		return math.MaxInt
	}
	n, err := strconv.Atoi(id[pos+1:])
	if err != nil || n < 0 {
		return math.MaxInt
	}
	return n
}

// sortByRow ordena registros pela posição original da linha dentro de cada período
func sortByRow[T any](records []T, key func(T) (int, int, string)) {
	sort.SliceStable(records, func(i, j int) bool {
		yi, mi, idi := key(records[i])
		yj, mj, idj := key(records[j])
		if yi != yj {
			return yi < yj
		}
		if mi != mj {
			return mi < mj
		}
		ri, rj := rowIndex(idi), rowIndex(idj)
		if ri != rj {
			return ri < rj
		}
		return idi < idj
	})
}

// replacePeriod apaga as linhas do período e insere as novas dentro de uma única transação
func replacePeriod(
	ctx context.Context,
	conn database.Conn,
	table string,
	period domain.Period,
	insert squirrel.InsertBuilder,
	hasRows bool,
) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete(table).
			Where(squirrel.Eq{"month": string(period.Month), "year": period.Year}).
			PlaceholderFormat(conn.Placeholder()).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query de remoção: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover linhas do período: %w", err)
		}

		if !hasRows {
			return nil
		}

		insertSQL, insertArgs, err := insert.PlaceholderFormat(conn.Placeholder()).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir linhas do período: %w", err)
		}

		return nil
	})
}

// resetTables recria as tabelas informadas numa única transação: ou todas ficam vazias ou nenhuma muda
func resetTables(ctx context.Context, conn database.Conn, tables ...string) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, table := range tables {
			if err := database.RecreateTable(ctx, tx, table); err != nil {
				return err
			}
		}
		return nil
	})
}
