package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// newID genera el identificador de filas creadas dentro del adaptador
// (p.ej. logs escritos en la misma transacción que su registro principal).
func newID() string {
	return uuid.NewString()
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// timeOrNil mapea el tiempo cero a NULL para columnas de fecha anulables.
func timeOrNil(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

// slugExists verifica si un slug ya existe en la tabla para la empresa,
// excluyendo opcionalmente un registro (para updates).
func slugExists(ctx context.Context, q Querier, table, companyID, slug, excludeID string) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx,
		fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE company_id = $1 AND slug = $2 AND id <> $3)", table),
		companyID, slug, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("slug exists en %s: %w", table, err)
	}
	return exists, nil
}

// textOrNil mapea string vacío a NULL para columnas FK anulables.
func textOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
