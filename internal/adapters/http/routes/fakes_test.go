package routes

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"iadev-dashboard/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

type memMembers struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]models.Member
}

func newMemMembers() *memMembers {
	return &memMembers{nextID: 1, rows: map[uint]models.Member{}}
}

func (r *memMembers) Create(_ context.Context, m *models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rows {
		if existing.Name == m.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	m.ID = r.nextID
	r.nextID++
	r.rows[m.ID] = *m
	return nil
}

func (r *memMembers) GetByID(_ context.Context, id uint) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (r *memMembers) GetAdministratorByUsername(_ context.Context, username string) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.rows {
		if m.IsAdministrator && m.Username != nil && strings.EqualFold(*m.Username, username) {
			found := m
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memMembers) Update(_ context.Context, m *models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[m.ID] = *m
	return nil
}

func (r *memMembers) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memMembers) List(_ context.Context) ([]*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Member
	for _, m := range r.rows {
		m := m
		out = append(out, &m)
	}
	return out, nil
}

type memTransactions struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]models.Transaction
}

func newMemTransactions() *memTransactions {
	return &memTransactions{nextID: 1, rows: map[uint]models.Transaction{}}
}

func (r *memTransactions) Create(_ context.Context, tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx.ID = r.nextID
	r.nextID++
	r.rows[tx.ID] = *tx
	return nil
}

func (r *memTransactions) GetByID(_ context.Context, id uint) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &tx, nil
}

func (r *memTransactions) Update(_ context.Context, tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[tx.ID] = *tx
	return nil
}

func (r *memTransactions) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memTransactions) ListBetween(_ context.Context, start, end time.Time) ([]*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Transaction
	for _, tx := range r.rows {
		tx := tx
		if !tx.Date.Before(start) && !tx.Date.After(end) {
			out = append(out, &tx)
		}
	}
	return out, nil
}

func (r *memTransactions) SumBefore(_ context.Context, t time.Time) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, tx := range r.rows {
		if tx.Date.Before(t) {
			if tx.Kind.IsIncome() {
				total += tx.Amount
			} else {
				total -= tx.Amount
			}
		}
	}
	return total, nil
}

func (r *memTransactions) SearchDescription(_ context.Context, _ string, _ int) ([]*models.Transaction, error) {
	return nil, nil
}

func (r *memTransactions) List(ctx context.Context) ([]*models.Transaction, error) {
	return r.ListBetween(ctx, time.Time{}, time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC))
}

type memOrganization struct {
	org *models.Organization
}

func (r *memOrganization) Get(_ context.Context) (*models.Organization, error) {
	if r.org == nil {
		return nil, gorm.ErrRecordNotFound
	}
	org := *r.org
	return &org, nil
}

func (r *memOrganization) Save(_ context.Context, org *models.Organization) error {
	if org.ID == 0 {
		org.ID = 1
	}
	saved := *org
	r.org = &saved
	return nil
}

// slowMedia never finishes an upload before the context ends
type slowMedia struct{}

func (slowMedia) Upload(ctx context.Context, _, _ string, _ io.Reader) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (slowMedia) Delete(context.Context, string, string) error { return nil }

type memBackups struct {
	names []string
}

func (b *memBackups) Upload(_ context.Context, name string, _ []byte) (string, string, error) {
	b.names = append(b.names, name)
	return "drive-id", "https://drive.example/drive-id", nil
}
