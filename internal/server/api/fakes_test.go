package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scholarshipops/scholarshipops/internal/logging"
	"github.com/scholarshipops/scholarshipops/internal/server/models"
	"github.com/scholarshipops/scholarshipops/internal/server/services"
)

// ---- fakes ----

type fakeLeads struct {
	listOut    []*models.Lead
	lastFilter *models.LeadFilter

	getOut *models.Lead
	getErr error

	created   *models.LeadInput
	createErr error

	updatedID int64
	updated   *models.LeadInput
	updateErr error

	deleteOut bool
	deleteErr error

	panicOnList bool
	listErr     error
}

func (f *fakeLeads) List(ctx context.Context, filter *models.LeadFilter) ([]*models.Lead, error) {
	if f.panicOnList {
		panic("boom")
	}
	f.lastFilter = filter
	return f.listOut, f.listErr
}
func (f *fakeLeads) Get(ctx context.Context, id int64) (*models.Lead, error) {
	return f.getOut, f.getErr
}
func (f *fakeLeads) Create(ctx context.Context, in *models.LeadInput) (*models.Lead, error) {
	f.created = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Lead{ID: 1, Name: *in.Name, Status: models.DefaultLeadStatus}, nil
}
func (f *fakeLeads) Update(ctx context.Context, id int64, in *models.LeadInput) (*models.Lead, error) {
	f.updatedID, f.updated = id, in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.Lead{ID: id, Name: "Merit Award", Status: "applied"}, nil
}
func (f *fakeLeads) Delete(ctx context.Context, id int64) (bool, error) {
	return f.deleteOut, f.deleteErr
}

type fakeApplications struct {
	listOut []*models.Application
	getOut  *models.Application
	getErr  error
	created *models.ApplicationInput
	updErr  error
	delOut  bool
}

func (f *fakeApplications) List(ctx context.Context) ([]*models.Application, error) {
	return f.listOut, nil
}
func (f *fakeApplications) Get(ctx context.Context, id int64) (*models.Application, error) {
	return f.getOut, f.getErr
}
func (f *fakeApplications) Create(ctx context.Context, in *models.ApplicationInput) (*models.Application, error) {
	f.created = in
	d := in.WithDefaults()
	return &models.Application{ID: 1, Name: *d.Name, Status: *d.Status, Progress: *d.Progress}, nil
}
func (f *fakeApplications) Update(ctx context.Context, id int64, in *models.ApplicationInput) (*models.Application, error) {
	if f.updErr != nil {
		return nil, f.updErr
	}
	return &models.Application{ID: id, Name: "x", Status: models.ApplicationInProgress}, nil
}
func (f *fakeApplications) Delete(ctx context.Context, id int64) (bool, error) {
	return f.delOut, nil
}

type fakeCriteria struct {
	getOut  *models.Criteria
	getErr  error
	saved   *models.CriteriaInput
	saveOut *models.Criteria
}

func (f *fakeCriteria) Get(ctx context.Context) (*models.Criteria, error) {
	return f.getOut, f.getErr
}
func (f *fakeCriteria) Save(ctx context.Context, in *models.CriteriaInput) (*models.Criteria, error) {
	f.saved = in
	return f.saveOut, nil
}

type fakeStats struct {
	out *models.Stats
	err error
}

func (f *fakeStats) Get(ctx context.Context) (*models.Stats, error) { return f.out, f.err }

type fakeTriggers struct{}

func (fakeTriggers) Search(ctx context.Context) *services.TriggerResult {
	return &services.TriggerResult{Message: "Search trigger received", Status: "pending", Note: "n", JobID: "job-1"}
}
func (fakeTriggers) Schedule(ctx context.Context) *services.TriggerResult {
	return &services.TriggerResult{Message: "Schedule trigger received", Status: "pending", Note: "n"}
}
func (fakeTriggers) Track(ctx context.Context) *services.TriggerResult {
	return &services.TriggerResult{Message: "Track trigger received", Status: "pending", Note: "n"}
}

// ---- helpers ----

type testServer struct {
	*Server
	leads    *fakeLeads
	apps     *fakeApplications
	criteria *fakeCriteria
	stats    *fakeStats
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		leads:    &fakeLeads{},
		apps:     &fakeApplications{},
		criteria: &fakeCriteria{},
		stats:    &fakeStats{},
	}
	ts.Server = NewServer(Options{CORS: DefaultCORSPolicy()}, logging.Nop{}, Services{
		Leads:        ts.leads,
		Applications: ts.apps,
		Criteria:     ts.criteria,
		Stats:        ts.stats,
		Triggers:     fakeTriggers{},
	})
	return ts
}

func (ts *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.ServeHTTP(rec, req)
	return rec
}
