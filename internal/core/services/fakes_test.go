package services

import (
	"context"
	"errors"
	"io"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"iadev-dashboard/internal/adapters/persistence/models"
	"iadev-dashboard/internal/config"
	"iadev-dashboard/internal/core/domain"

	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		Session: config.SessionConfig{Secret: "test-secret", TTL: 24 * time.Hour},
		Master:  config.MasterConfig{Username: "Pastor", Password: "master-pass"},
		Upload:  config.UploadConfig{Timeout: time.Second},
	}
}

// fakeMemberRepo stores copies so callers never share structs with the store
type fakeMemberRepo struct {
	mu      sync.Mutex
	nextID  uint
	members map[uint]models.Member
	writes  int
	err     error
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{nextID: 1, members: map[uint]models.Member{}}
}

func (r *fakeMemberRepo) Create(_ context.Context, m *models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.members {
		if existing.Name == m.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	m.ID = r.nextID
	r.nextID++
	r.members[m.ID] = *m
	r.writes++
	return nil
}

func (r *fakeMemberRepo) GetByID(_ context.Context, id uint) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (r *fakeMemberRepo) GetAdministratorByUsername(_ context.Context, username string) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, m := range r.members {
		if m.IsAdministrator && m.Username != nil && strings.EqualFold(*m.Username, username) {
			found := m
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMemberRepo) Update(_ context.Context, m *models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[m.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.members[m.ID] = *m
	r.writes++
	return nil
}

func (r *fakeMemberRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.members, id)
	r.writes++
	return nil
}

func (r *fakeMemberRepo) List(_ context.Context) ([]*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Member, 0, len(r.members))
	for _, m := range r.members {
		m := m
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeMemberRepo) stored(id uint) models.Member {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.members[id]
}

type fakeTxRepo struct {
	mu     sync.Mutex
	nextID uint
	txs    map[uint]models.Transaction
}

func newFakeTxRepo() *fakeTxRepo {
	return &fakeTxRepo{nextID: 1, txs: map[uint]models.Transaction{}}
}

func (r *fakeTxRepo) Create(_ context.Context, tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx.ID = r.nextID
	r.nextID++
	r.txs[tx.ID] = *tx
	return nil
}

func (r *fakeTxRepo) GetByID(_ context.Context, id uint) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.txs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &tx, nil
}

func (r *fakeTxRepo) Update(_ context.Context, tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs[tx.ID] = *tx
	return nil
}

func (r *fakeTxRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.txs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.txs, id)
	return nil
}

func (r *fakeTxRepo) ListBetween(_ context.Context, start, end time.Time) ([]*models.Transaction, error) {
	var out []*models.Transaction
	for _, tx := range r.sorted() {
		if !tx.Date.Before(start) && !tx.Date.After(end) {
			out = append(out, tx)
		}
	}
	// newest first
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeTxRepo) SumBefore(_ context.Context, t time.Time) (float64, error) {
	var total float64
	for _, tx := range r.sorted() {
		if tx.Date.Before(t) {
			total += domain.SignedAmount(tx.Kind, tx.Amount)
		}
	}
	return total, nil
}

func (r *fakeTxRepo) SearchDescription(_ context.Context, pattern string, limit int) ([]*models.Transaction, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, err
	}
	var out []*models.Transaction
	txs := r.sorted()
	for i := len(txs) - 1; i >= 0 && len(out) < limit; i-- {
		if re.MatchString(txs[i].Description) {
			out = append(out, txs[i])
		}
	}
	return out, nil
}

func (r *fakeTxRepo) List(_ context.Context) ([]*models.Transaction, error) {
	return r.sorted(), nil
}

// sorted returns copies ordered by date ascending
func (r *fakeTxRepo) sorted() []*models.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Transaction, 0, len(r.txs))
	for _, tx := range r.txs {
		tx := tx
		out = append(out, &tx)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

type fakeOrgRepo struct {
	org *models.Organization
	err error
}

func (r *fakeOrgRepo) Get(_ context.Context) (*models.Organization, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.org == nil {
		return nil, gorm.ErrRecordNotFound
	}
	org := *r.org
	return &org, nil
}

func (r *fakeOrgRepo) Save(_ context.Context, org *models.Organization) error {
	if org.ID == 0 {
		org.ID = 1
	}
	saved := *org
	r.org = &saved
	return nil
}

// fakeMediaStore records uploads and deletions. A positive delay makes
// every upload block until the context ends, or for the whole delay when
// ignoreCancel is set.
type fakeMediaStore struct {
	mu           sync.Mutex
	delay        time.Duration
	ignoreCancel bool
	err          error
	uploads  []string
	deletes  []string
	sequence int
}

func (s *fakeMediaStore) Upload(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	if s.delay > 0 && s.ignoreCancel {
		time.Sleep(s.delay)
	} else if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if s.err != nil {
		return "", s.err
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sequence++
	url := "https://media.example/" + folder + "/" + filename
	s.uploads = append(s.uploads, url)
	return url, nil
}

func (s *fakeMediaStore) Delete(_ context.Context, _ string, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, url)
	return nil
}

func (s *fakeMediaStore) uploadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.uploads)
}

func (s *fakeMediaStore) deleted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.deletes...)
}

type fakeBackupUploader struct {
	name    string
	content []byte
	err     error
}

func (u *fakeBackupUploader) Upload(_ context.Context, name string, content []byte) (string, string, error) {
	if u.err != nil {
		return "", "", u.err
	}
	u.name = name
	u.content = content
	return "file-1", "https://drive.example/file-1", nil
}

var errStoreDown = errors.New("store unavailable")

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
