package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae pool y transacción: los repos aceptan cualquiera de
// los dos, lo que permite reutilizarlos dentro de TxRunner.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// overdueCutoff devuelve la medianoche siguiente al día indicado.
// Una factura pendiente con due_date < cutoff está vencida; el mismo
// corte se usa en listados, dashboard y en entity.Invoice.IsOverdue.
func overdueCutoff(today time.Time) time.Time {
	y, m, d := today.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, today.Location()).AddDate(0, 0, 1)
}

// overdueCondition fragmento SQL del predicado de vencimiento; el
// placeholder indicado recibe el valor de overdueCutoff.
const overdueCondition = `status = 'pending' AND due_date IS NOT NULL AND due_date < `
