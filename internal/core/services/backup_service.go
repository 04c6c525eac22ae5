package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"iadev-dashboard/internal/adapters/persistence/models"
	"iadev-dashboard/internal/adapters/persistence/repositories"
	"iadev-dashboard/internal/core/domain"
	"iadev-dashboard/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// BackupTrigger names what started a backup
type BackupTrigger string

const (
	TriggerManual BackupTrigger = "manual"
	TriggerAuto   BackupTrigger = "auto"
)

// BackupService exports the full dataset to bulk-file storage
type BackupService struct {
	memberRepo repositories.MemberRepository
	txRepo     repositories.TransactionRepository
	orgRepo    repositories.OrganizationRepository
	uploader   BackupUploader
	now        func() time.Time
}

// NewBackupService creates a new backup service
func NewBackupService(
	memberRepo repositories.MemberRepository,
	txRepo repositories.TransactionRepository,
	orgRepo repositories.OrganizationRepository,
	uploader BackupUploader,
) *BackupService {
	return &BackupService{
		memberRepo: memberRepo,
		txRepo:     txRepo,
		orgRepo:    orgRepo,
		uploader:   uploader,
		now:        time.Now,
	}
}

// Snapshot is the backup document
type Snapshot struct {
	TakenAt      string                 `json:"dataBackup"`
	Members      []*models.MemberBackup `json:"membros"`
	Transactions []*models.Transaction  `json:"transacoes"`
	Organization interface{}            `json:"igreja"`
}

// BackupResult describes an uploaded artifact
type BackupResult struct {
	FileName string `json:"fileName"`
	FileID   string `json:"fileId"`
	Link     string `json:"link,omitempty"`
}

// Export reads the whole dataset
func (s *BackupService) Export(ctx context.Context) (*Snapshot, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	snap := &Snapshot{
		TakenAt:      s.now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Members:      make([]*models.MemberBackup, len(members)),
		Transactions: txs,
		Organization: map[string]interface{}{},
	}
	for i, m := range members {
		snap.Members[i] = m.ToBackup()
	}
	if snap.Transactions == nil {
		snap.Transactions = []*models.Transaction{}
	}

	org, err := NewOrganizationService(s.orgRepo).Get(ctx)
	if err != nil {
		return nil, err
	}
	if org != nil {
		snap.Organization = org
	}
	return snap, nil
}

// Run exports the dataset and uploads it as one JSON file
func (s *BackupService) Run(ctx context.Context, trigger BackupTrigger) (*BackupResult, error) {
	result, err := s.run(ctx, trigger)
	if err != nil {
		metrics.Backups.WithLabelValues(string(trigger), "failed").Inc()
		log.Printf("❌ Backup (%s) failed: %v", trigger, err)
		return nil, err
	}
	metrics.Backups.WithLabelValues(string(trigger), "ok").Inc()
	log.Printf("✅ Backup (%s) uploaded: %s", trigger, result.FileName)
	return result, nil
}

func (s *BackupService) run(ctx context.Context, trigger BackupTrigger) (*BackupResult, error) {
	snap, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}

	content, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}

	name := BackupFileName(trigger, s.now())
	fileID, link, err := s.uploader.Upload(ctx, name, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return &BackupResult{FileName: name, FileID: fileID, Link: link}, nil
}

var stampReplacer = strings.NewReplacer(":", "-", ".", "-")

// BackupFileName builds e.g. backup_iadev_2024-01-05T10-20-30-123Z.json
func BackupFileName(trigger BackupTrigger, t time.Time) string {
	prefix := "backup_iadev_"
	if trigger == TriggerAuto {
		prefix = "auto_backup_iadev_"
	}
	return prefix + stampReplacer.Replace(t.UTC().Format("2006-01-02T15:04:05.000Z")) + ".json"
}

// BackupScheduler runs automatic backups on a cron schedule
type BackupScheduler struct {
	cron    *cron.Cron
	backup  *BackupService
	timeout time.Duration
}

// NewBackupScheduler validates schedule and registers the backup job
func NewBackupScheduler(backup *BackupService, schedule string) (*BackupScheduler, error) {
	s := &BackupScheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		backup:  backup,
		timeout: 2 * time.Minute,
	}
	if _, err := s.cron.AddFunc(schedule, s.runOnce); err != nil {
		return nil, fmt.Errorf("invalid backup schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start starts the scheduler in its own goroutine
func (s *BackupScheduler) Start() {
	s.cron.Start()
	log.Println("⏰ Backup scheduler started")
}

// Stop stops the scheduler and waits for a running backup to finish
func (s *BackupScheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("✅ Backup scheduler stopped")
}

func (s *BackupScheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	// Run logs its own failures
	_, _ = s.backup.Run(ctx, TriggerAuto)
}
