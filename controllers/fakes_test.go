package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/hoa-portal/api-go/models"
	"github.com/hoa-portal/api-go/store"
)

var errTest = errors.New("backend unavailable")

// In-memory stand-ins for the store interfaces. The report fake mirrors the
// real store's semantics: every comment mutation is one call, and close
// applies both halves together.

type fakeUsers struct {
	byEmail     map[string]models.User
	byID        map[string]models.User
	findErr     error
	batchCalls  [][]string
	createdUser *models.User
	createErr   error
}

func newFakeUsers(users ...models.User) *fakeUsers {
	f := &fakeUsers{
		byEmail: make(map[string]models.User),
		byID:    make(map[string]models.User),
	}
	for _, u := range users {
		f.byEmail[u.Email] = u
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUsers) FindByIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	f.batchCalls = append(f.batchCalls, ids)
	out := make(map[string]models.User, len(ids))
	for _, id := range ids {
		if u, ok := f.byID[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (f *fakeUsers) ListByGroup(ctx context.Context, group string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.byID {
		if u.StaffGroup == group {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeUsers) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdUser = user
	f.byEmail[user.Email] = *user
	f.byID[user.ID] = *user
	return nil
}

type fakeReports struct {
	mu        sync.Mutex
	reports   map[string]*models.Report
	inserted  []*models.Report
	insertErr error
	listErr   error
	listCalls []int
}

func newFakeReports(reports ...*models.Report) *fakeReports {
	f := &fakeReports{reports: make(map[string]*models.Report)}
	for _, r := range reports {
		f.reports[r.ReportID] = r
	}
	return f
}

func (f *fakeReports) Insert(ctx context.Context, report *models.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, report)
	f.reports[report.ReportID] = report
	return nil
}

func (f *fakeReports) ListRecent(ctx context.Context, limit int) ([]models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = append(f.listCalls, limit)
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Report
	for _, r := range f.reports {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeReports) ListByOwner(ctx context.Context, userID string, limit int) ([]models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = append(f.listCalls, limit)
	var out []models.Report
	for _, r := range f.reports {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeReports) AppendComment(ctx context.Context, reportID, comment string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reports[reportID]
	if !ok {
		return store.ErrNotFound
	}
	r.Comments = append(r.Comments, comment)
	return nil
}

func (f *fakeReports) CloseWithComment(ctx context.Context, reportID, comment string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reports[reportID]
	if !ok {
		return store.ErrNotFound
	}
	r.Comments = append(r.Comments, comment)
	r.Status = models.StatusClosed
	return nil
}

type fakeObjects struct {
	uploaded  []string
	deleted   []string
	keys      []string // pre-seeded keys for ListPrefix
	failNames []string // uploads whose key contains one of these fail
	baseURL   string
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{baseURL: "https://cdn.example.com"}
}

func (f *fakeObjects) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	io.Copy(io.Discard, body)
	for _, name := range f.failNames {
		if strings.Contains(key, name) {
			return "", fmt.Errorf("upload of %s refused", key)
		}
	}
	f.uploaded = append(f.uploaded, key)
	return f.PublicURL(key), nil
}

func (f *fakeObjects) ListPrefix(ctx context.Context, prefix string) ([]string, error) {
	var out []string
	for _, k := range f.keys {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeObjects) PublicURL(key string) string {
	return f.baseURL + "/" + key
}

func (f *fakeObjects) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}
