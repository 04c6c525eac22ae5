package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"iadev-dashboard/internal/adapters/persistence/models"
	"iadev-dashboard/internal/adapters/persistence/repositories"
	"iadev-dashboard/internal/adapters/storage"
	"iadev-dashboard/internal/core/domain"

	"gorm.io/gorm"
)

// TransactionService handles ledger entries and balance carry-forward
type TransactionService struct {
	txRepo repositories.TransactionRepository
	media  uploader
}

// NewTransactionService creates a new transaction service
func NewTransactionService(txRepo repositories.TransactionRepository, media MediaStore, uploadTimeout time.Duration) *TransactionService {
	return &TransactionService{
		txRepo: txRepo,
		media:  uploader{store: media, timeout: uploadTimeout},
	}
}

// TransactionInput represents raw create/update fields as the dashboard sends them
type TransactionInput struct {
	Description string
	Amount      string
	Kind        string
	Date        string
	Receipt     *Upload
}

// TransactionResult is a saved transaction plus a warning when the receipt was dropped
type TransactionResult struct {
	Transaction *models.Transaction
	Warning     string
}

// ListMonth lists a month's transactions, newest first. month is zero-based.
func (s *TransactionService) ListMonth(ctx context.Context, year, month int) ([]*models.Transaction, error) {
	start, end := domain.MonthRange(year, month)
	txs, err := s.txRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return txs, nil
}

// PreviousBalance is the signed total of everything dated before the first
// day of the given month. month is zero-based.
func (s *TransactionService) PreviousBalance(ctx context.Context, year, month int) (float64, error) {
	start, _ := domain.MonthRange(year, month)
	total, err := s.txRepo.SumBefore(ctx, start)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return math.Round(total*100) / 100, nil
}

// Create records a transaction. A failed receipt upload does not fail the write.
func (s *TransactionService) Create(ctx context.Context, input *TransactionInput) (*TransactionResult, error) {
	tx := &models.Transaction{}
	if err := applyTransactionInput(tx, input); err != nil {
		return nil, err
	}

	url, warning := s.media.put(ctx, storage.FolderReceipts, input.Receipt)
	tx.ReceiptURL = url

	if err := s.txRepo.Create(ctx, tx); err != nil {
		s.media.remove(ctx, storage.FolderReceipts, url)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	log.Printf("✅ Transaction created: #%d (%s %.2f)", tx.ID, tx.Kind, tx.Amount)
	return &TransactionResult{Transaction: tx, Warning: warning}, nil
}

// Update replaces description, amount, kind and date. The receipt is kept.
func (s *TransactionService) Update(ctx context.Context, id uint, input *TransactionInput) (*models.Transaction, error) {
	tx, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyTransactionInput(tx, input); err != nil {
		return nil, err
	}

	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return tx, nil
}

// Delete deletes a transaction and its stored receipt
func (s *TransactionService) Delete(ctx context.Context, id uint) error {
	tx, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.txRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	s.media.remove(ctx, storage.FolderReceipts, tx.ReceiptURL)

	log.Printf("✅ Transaction deleted: #%d", id)
	return nil
}

func (s *TransactionService) get(ctx context.Context, id uint) (*models.Transaction, error) {
	tx, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return tx, nil
}

// applyTransactionInput validates input and copies it onto tx
func applyTransactionInput(tx *models.Transaction, input *TransactionInput) error {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}

	amount, err := ParseAmount(input.Amount)
	if err != nil {
		return err
	}

	kind := domain.TransactionKind(strings.TrimSpace(input.Kind))
	if !kind.Valid() {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, domain.ErrInvalidKind)
	}

	date, err := ParseDate(input.Date)
	if err != nil {
		return err
	}

	tx.Description = description
	tx.Amount = amount
	tx.Kind = kind
	tx.Date = date
	return nil
}

// ParseAmount parses a non-negative decimal, accepting a comma as the decimal separator
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, domain.ErrInvalidAmount)
	}
	return amount, nil
}

// ParseDate accepts YYYY-MM-DD (midnight UTC) or RFC 3339
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, domain.ErrInvalidDate)
}
