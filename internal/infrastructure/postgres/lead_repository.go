package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/repository"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

const leadColumns = `id, client_id, user_id, name, description, source, statut, valeur_estimee, created_at, updated_at`

// LeadRepo implementación del puerto LeadRepository sobre PostgreSQL.
// Necesita DB (no solo Querier) porque los cambios de etapa escriben el lead
// y su log en una transacción.
type LeadRepo struct {
	db DB
}

// NewLeadRepository construye el adaptador.
func NewLeadRepository(db DB) *LeadRepo {
	return &LeadRepo{db: db}
}

func scanLead(row pgx.Row) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(&l.ID, &l.ClientID, &l.UserID, &l.Name, &l.Description,
		&l.Source, &l.Statut, &l.ValeurEstimee, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

const insertLeadSQL = `
	INSERT INTO leads (id, client_id, user_id, name, description, source, statut, valeur_estimee, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const insertStatusLogSQL = `
	INSERT INTO lead_status_logs (id, lead_id, previous_statut, new_statut, changed_by, changed_at, duration_ms)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Create inserta el lead y su log de etapa inicial en una transacción.
func (r *LeadRepo) Create(ctx context.Context, l *entity.Lead) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, insertLeadSQL,
		l.ID, l.ClientID, l.UserID, l.Name, l.Description,
		l.Source, l.Statut, l.ValeurEstimee, l.CreatedAt, l.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lead: %w", err)
	}

	log := entity.LeadStatusLog{
		ID:        newID(),
		LeadID:    l.ID,
		NewStatut: l.Statut,
		ChangedBy: l.UserID,
		ChangedAt: l.CreatedAt,
	}
	if _, err := tx.Exec(ctx, insertStatusLogSQL,
		log.ID, log.LeadID, textOrNil(log.PreviousStatut), log.NewStatut,
		log.ChangedBy, log.ChangedAt, log.Duration,
	); err != nil {
		return fmt.Errorf("insert status log: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene un lead por ID. Devuelve (nil, nil) si no existe.
func (r *LeadRepo) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	l, err := scanLead(r.db.QueryRow(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return l, nil
}

// List lista leads con alcance de visibilidad, paginación y búsqueda.
func (r *LeadRepo) List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Lead], error) {
	lq := listQuery{
		columns:    leadColumns,
		from:       "leads",
		searchCols: []string{"name", "description", "source", "statut"},
		sort:       "created_at DESC",
	}
	lq.scope(scope)
	return queryPage(ctx, r.db, lq, spec, func(rows pgx.Rows) (entity.Lead, error) {
		l, err := scanLead(rows)
		if err != nil {
			return entity.Lead{}, err
		}
		return *l, nil
	})
}

const updateLeadSQL = `
	UPDATE leads SET user_id = $2, name = $3, description = $4, source = $5, statut = $6,
		valeur_estimee = $7, updated_at = $8
	WHERE id = $1`

// Update actualiza un lead sin cambio de etapa.
func (r *LeadRepo) Update(ctx context.Context, l *entity.Lead) error {
	_, err := r.db.Exec(ctx, updateLeadSQL,
		l.ID, l.UserID, l.Name, l.Description, l.Source, l.Statut, l.ValeurEstimee, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// UpdateWithStatusLog actualiza el lead y escribe el log del cambio de etapa
// en la misma transacción: o persisten ambos o ninguno.
func (r *LeadRepo) UpdateWithStatusLog(ctx context.Context, l *entity.Lead, log *entity.LeadStatusLog) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, updateLeadSQL,
		l.ID, l.UserID, l.Name, l.Description, l.Source, l.Statut, l.ValeurEstimee, l.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	if _, err := tx.Exec(ctx, insertStatusLogSQL,
		log.ID, log.LeadID, textOrNil(log.PreviousStatut), log.NewStatut,
		log.ChangedBy, log.ChangedAt, log.Duration,
	); err != nil {
		return fmt.Errorf("insert status log: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Delete elimina un lead por ID.
func (r *LeadRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

// StatusLogs devuelve el historial de etapas de un lead, más reciente primero.
func (r *LeadRepo) StatusLogs(ctx context.Context, leadID string) ([]entity.LeadStatusLog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, lead_id, COALESCE(previous_statut, ''), new_statut, changed_by, changed_at, duration_ms
		FROM lead_status_logs WHERE lead_id = $1 ORDER BY changed_at DESC`, leadID)
	if err != nil {
		return nil, fmt.Errorf("list status logs: %w", err)
	}
	defer rows.Close()
	var logs []entity.LeadStatusLog
	for rows.Next() {
		var l entity.LeadStatusLog
		if err := rows.Scan(&l.ID, &l.LeadID, &l.PreviousStatut, &l.NewStatut, &l.ChangedBy, &l.ChangedAt, &l.Duration); err != nil {
			return nil, fmt.Errorf("scan status log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// PipelineSummary agrega conteo y valor estimado por etapa dentro del alcance.
func (r *LeadRepo) PipelineSummary(ctx context.Context, scope *tenant.Scope) ([]entity.PipelineStage, error) {
	lq := listQuery{}
	lq.scope(scope)
	sql := `SELECT statut, COUNT(*), COALESCE(SUM(valeur_estimee), 0) FROM leads` + lq.whereSQL() + ` GROUP BY statut`
	rows, err := r.db.Query(ctx, sql, lq.args...)
	if err != nil {
		return nil, fmt.Errorf("pipeline summary: %w", err)
	}
	defer rows.Close()
	var stages []entity.PipelineStage
	for rows.Next() {
		var s entity.PipelineStage
		if err := rows.Scan(&s.Statut, &s.Count, &s.TotalValeur); err != nil {
			return nil, fmt.Errorf("scan stage: %w", err)
		}
		stages = append(stages, s)
	}
	return stages, rows.Err()
}
