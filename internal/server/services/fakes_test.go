package services

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/scholarshipops/scholarshipops/internal/common"
	"github.com/scholarshipops/scholarshipops/internal/dbx"
	"github.com/scholarshipops/scholarshipops/internal/server/dispatch"
	"github.com/scholarshipops/scholarshipops/internal/server/models"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/applications"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/criteria"
	"github.com/scholarshipops/scholarshipops/internal/server/repositories/leads"
)

// --- in-memory repositories ---

type fakeLeadsRepo struct {
	mu         sync.Mutex
	nextID     int64
	rows       map[int64]*models.Lead
	lastFilter *models.LeadFilter
	err        error
}

func newFakeLeadsRepo() *fakeLeadsRepo {
	return &fakeLeadsRepo{rows: map[int64]*models.Lead{}}
}

func (f *fakeLeadsRepo) List(ctx context.Context, filter *models.LeadFilter) ([]*models.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Lead, 0, len(f.rows))
	for _, l := range f.rows {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLeadsRepo) GetByID(ctx context.Context, id int64) (*models.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return l, nil
}

func (f *fakeLeadsRepo) Create(ctx context.Context, in *models.LeadInput) (*models.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	d := in.WithDefaults()
	f.nextID++
	now := time.Now()
	l := &models.Lead{ID: f.nextID, Name: *d.Name, Status: *d.Status, MatchScore: d.MatchScore,
		Tags: d.Tags, CreatedAt: now, UpdatedAt: now}
	f.rows[l.ID] = l
	return l, nil
}

func (f *fakeLeadsRepo) Update(ctx context.Context, id int64, in *models.LeadInput) (*models.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if in.Name != nil {
		l.Name = *in.Name
	}
	if in.Status != nil {
		l.Status = *in.Status
	}
	l.UpdatedAt = time.Now()
	return l, nil
}

func (f *fakeLeadsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeLeadsRepo) Count(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return len(f.rows), nil
}

type fakeApplicationsRepo struct {
	rows []*models.Application
	err  error
}

func (f *fakeApplicationsRepo) List(ctx context.Context) ([]*models.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeApplicationsRepo) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	for _, a := range f.rows {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeApplicationsRepo) Create(ctx context.Context, in *models.ApplicationInput) (*models.Application, error) {
	d := in.WithDefaults()
	a := &models.Application{ID: int64(len(f.rows) + 1), Name: *d.Name, Status: *d.Status, Progress: *d.Progress}
	f.rows = append(f.rows, a)
	return a, nil
}

func (f *fakeApplicationsRepo) Update(ctx context.Context, id int64, in *models.ApplicationInput) (*models.Application, error) {
	a, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Progress != nil {
		a.Progress = *in.Progress
	}
	return a, nil
}

func (f *fakeApplicationsRepo) Delete(ctx context.Context, id int64) (bool, error) {
	for i, a := range f.rows {
		if a.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeCriteriaRepo struct {
	stored *models.Criteria
	err    error
	saved  []*models.Criteria
}

func (f *fakeCriteriaRepo) Get(ctx context.Context) (*models.Criteria, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.stored.IsEmpty() {
		return nil, common.ErrorNotFound
	}
	return f.stored, nil
}

func (f *fakeCriteriaRepo) Upsert(ctx context.Context, c *models.Criteria) (*models.Criteria, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved = append(f.saved, c)
	next := &models.Criteria{ID: models.CriteriaID, UpdatedAt: time.Now()}
	if f.stored != nil {
		next.CriteriaJSON, next.ProfileJSON = f.stored.CriteriaJSON, f.stored.ProfileJSON
	}
	if c.CriteriaJSON != nil {
		next.CriteriaJSON = c.CriteriaJSON
	}
	if c.ProfileJSON != nil {
		next.ProfileJSON = c.ProfileJSON
	}
	f.stored = next
	return next, nil
}

type fakeRepoManager struct {
	l *fakeLeadsRepo
	a *fakeApplicationsRepo
	c *fakeCriteriaRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{l: newFakeLeadsRepo(), a: &fakeApplicationsRepo{}, c: &fakeCriteriaRepo{}}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error     { return nil }
func (m *fakeRepoManager) Leads(db dbx.DBTX) leads.Repository               { return m.l }
func (m *fakeRepoManager) Applications(db dbx.DBTX) applications.Repository { return m.a }
func (m *fakeRepoManager) Criteria(db dbx.DBTX) criteria.Repository         { return m.c }

// --- dispatcher ---

type fakeDispatcher struct {
	id    string
	err   error
	kinds []dispatch.Kind
}

func (d *fakeDispatcher) Dispatch(ctx context.Context, kind dispatch.Kind) (string, error) {
	d.kinds = append(d.kinds, kind)
	return d.id, d.err
}

func (d *fakeDispatcher) Close() error { return nil }
