package usecase

import (
	"context"
	"sort"

	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/repository"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// fakeTenantStore implementa RefStore e IDStore en memoria: por tipo, un mapa
// id → FK padre. Suficiente para ejercitar la cadena de pertenencia completa.
type fakeTenantStore struct {
	parents map[tenant.Kind]map[string]string
}

func newFakeTenantStore() *fakeTenantStore {
	return &fakeTenantStore{parents: map[tenant.Kind]map[string]string{}}
}

func (s *fakeTenantStore) put(kind tenant.Kind, id, parentID string) {
	if s.parents[kind] == nil {
		s.parents[kind] = map[string]string{}
	}
	s.parents[kind][id] = parentID
}

func (s *fakeTenantStore) ParentID(_ context.Context, kind tenant.Kind, id string) (string, error) {
	parentID, ok := s.parents[kind][id]
	if !ok {
		return "", domain.ErrNotFound
	}
	return parentID, nil
}

func (s *fakeTenantStore) ChildIDs(_ context.Context, kind tenant.Kind, parentIDs []string) ([]string, error) {
	allowed := map[string]bool{}
	for _, id := range parentIDs {
		allowed[id] = true
	}
	var ids []string
	for id, parent := range s.parents[kind] {
		if allowed[parent] {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func newTestAccess(store *fakeTenantStore) *Access {
	resolver := tenant.NewResolver(store)
	return NewAccess(resolver, tenant.NewScopeBuilder(resolver, store))
}

// ── Repos fake ────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients   map[string]*entity.Client
	lastScope *tenant.Scope
	deleted   []string
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*entity.Client{}}
}

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) List(_ context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Client], error) {
	r.lastScope = scope
	var data []entity.Client
	for _, c := range r.clients {
		if scope.All || contains(scope.IDs, c.CompanyID) {
			data = append(data, *c)
		}
	}
	sort.Slice(data, func(i, j int) bool { return data[i].ID < data[j].ID })
	return query.NewPage(data, len(data), spec), nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id string) error {
	delete(r.clients, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeLeadRepo struct {
	leads map[string]*entity.Lead
	logs  []entity.LeadStatusLog // del más reciente al más antiguo

	updated       *entity.Lead
	txLog         *entity.LeadStatusLog
	plainUpdates  int
	loggedUpdates int
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: map[string]*entity.Lead{}}
}

func (r *fakeLeadRepo) Create(_ context.Context, l *entity.Lead) error {
	cp := *l
	r.leads[l.ID] = &cp
	return nil
}

func (r *fakeLeadRepo) GetByID(_ context.Context, id string) (*entity.Lead, error) {
	l, ok := r.leads[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLeadRepo) List(_ context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Lead], error) {
	var data []entity.Lead
	for _, l := range r.leads {
		if scope.All || contains(scope.IDs, l.ClientID) {
			if scope.OwnerColumn != "" && l.UserID != scope.OwnerID {
				continue
			}
			data = append(data, *l)
		}
	}
	sort.Slice(data, func(i, j int) bool { return data[i].ID < data[j].ID })
	return query.NewPage(data, len(data), spec), nil
}

func (r *fakeLeadRepo) Update(_ context.Context, l *entity.Lead) error {
	cp := *l
	r.leads[l.ID] = &cp
	r.updated = &cp
	r.plainUpdates++
	return nil
}

func (r *fakeLeadRepo) UpdateWithStatusLog(_ context.Context, l *entity.Lead, log *entity.LeadStatusLog) error {
	cp := *l
	r.leads[l.ID] = &cp
	r.updated = &cp
	lg := *log
	r.txLog = &lg
	r.logs = append([]entity.LeadStatusLog{lg}, r.logs...)
	r.loggedUpdates++
	return nil
}

func (r *fakeLeadRepo) Delete(_ context.Context, id string) error {
	delete(r.leads, id)
	return nil
}

func (r *fakeLeadRepo) StatusLogs(_ context.Context, leadID string) ([]entity.LeadStatusLog, error) {
	var out []entity.LeadStatusLog
	for _, l := range r.logs {
		if l.LeadID == leadID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) PipelineSummary(_ context.Context, _ *tenant.Scope) ([]entity.PipelineStage, error) {
	return nil, nil
}

type fakeTaskRepo struct {
	tasks     map[string]*entity.Task
	lastScope *tenant.Scope
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*entity.Task{}}
}

func (r *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTaskRepo) GetDetailByID(_ context.Context, id string) (*entity.TaskDetail, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return &entity.TaskDetail{Task: *t}, nil
}

// List aplica alcance, filtro y recorte de página, igual que el LIMIT/OFFSET
// del adaptador real.
func (r *fakeTaskRepo) List(_ context.Context, scope *tenant.Scope, spec query.Spec, filter repository.TaskFilter) (*query.Page[entity.TaskDetail], error) {
	r.lastScope = scope
	var data []entity.TaskDetail
	for _, t := range r.tasks {
		if !scope.All && !contains(scope.IDs, t.InteractionID) {
			continue
		}
		if scope.OwnerColumn != "" && t.AssignedTo != scope.OwnerID {
			continue
		}
		if filter.Statut != "" && t.Statut != filter.Statut {
			continue
		}
		if !filter.DueBefore.IsZero() && !t.DueDate.Before(filter.DueBefore) {
			continue
		}
		if !filter.DueAfter.IsZero() && t.DueDate.Before(filter.DueAfter) {
			continue
		}
		data = append(data, entity.TaskDetail{Task: *t})
	}
	sort.Slice(data, func(i, j int) bool { return data[i].ID < data[j].ID })
	total := len(data)
	off := spec.Offset()
	if off > total {
		off = total
	}
	end := off + spec.Limit
	if end > total {
		end = total
	}
	return query.NewPage(data[off:end], total, spec), nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t *entity.Task) error {
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	delete(r.tasks, id)
	return nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
