package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// listQuery descripción declarativa de un listado paginado. Las columnas y el
// orden vienen de constantes del adaptador, nunca de entrada del usuario; lo
// único que viaja por placeholder es el término de búsqueda y los filtros.
type listQuery struct {
	columns    string   // lista SELECT
	from       string   // tabla o tabla + joins
	conds      []string // condiciones WHERE ya numeradas contra args
	args       []any
	searchCols []string // columnas del OR de búsqueda (ILIKE)
	sort       string   // ORDER BY fijo por entidad
	countFrom  string   // FROM del COUNT; vacío = from
}

// likePattern escapa los metacaracteres de LIKE en el término y lo envuelve
// en comodines: la búsqueda es substring literal, no patrón.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// where añade una condición con su argumento y devuelve el placeholder usado.
func (lq *listQuery) where(cond string, arg any) {
	lq.args = append(lq.args, arg)
	lq.conds = append(lq.conds, fmt.Sprintf(cond, len(lq.args)))
}

// scope aplica el filtro de visibilidad: FK del padre directo restringida al
// conjunto de IDs permitidos, más la intersección personal si aplica. Un
// conjunto vacío produce "= ANY de nada", es decir cero filas.
func (lq *listQuery) scope(s *tenant.Scope) {
	if s == nil {
		return
	}
	if !s.All {
		ids := s.IDs
		if ids == nil {
			ids = []string{}
		}
		lq.where(s.Column+" = ANY($%d)", ids)
	}
	if s.OwnerColumn != "" {
		lq.where(s.OwnerColumn+" = $%d", s.OwnerID)
	}
}

// search añade el OR de ILIKE sobre searchCols cuando hay término.
func (lq *listQuery) search(term string) {
	if term == "" || len(lq.searchCols) == 0 {
		return
	}
	lq.args = append(lq.args, likePattern(term))
	n := len(lq.args)
	parts := make([]string, len(lq.searchCols))
	for i, col := range lq.searchCols {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
	}
	lq.conds = append(lq.conds, "("+strings.Join(parts, " OR ")+")")
}

func (lq *listQuery) whereSQL() string {
	if len(lq.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(lq.conds, " AND ")
}

// queryPage ejecuta el par COUNT + SELECT paginado con el mismo filtro y arma
// el sobre. Una página más allá del final devuelve datos vacíos con el total
// real, nunca error.
func queryPage[T any](ctx context.Context, q Querier, lq listQuery, spec query.Spec, scan func(pgx.Rows) (T, error)) (*query.Page[T], error) {
	lq.search(spec.Search)
	where := lq.whereSQL()

	countFrom := lq.countFrom
	if countFrom == "" {
		countFrom = lq.from
	}
	var total int
	countSQL := "SELECT COUNT(*) FROM " + countFrom + where
	if err := q.QueryRow(ctx, countSQL, lq.args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}

	dataSQL := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT %d OFFSET %d",
		lq.columns, lq.from, where, lq.sort, spec.Limit, spec.Offset())
	rows, err := q.Query(ctx, dataSQL, lq.args...)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer rows.Close()

	var data []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		data = append(data, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return query.NewPage(data, total, spec), nil
}
