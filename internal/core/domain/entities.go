package domain

import "time"

// TransactionKind classifies a financial movement
type TransactionKind string

const (
	KindTithe    TransactionKind = "dizimo"
	KindOffering TransactionKind = "oferta"
	KindExpense  TransactionKind = "gastos"
)

// Valid reports whether k is one of the known kinds
func (k TransactionKind) Valid() bool {
	switch k {
	case KindTithe, KindOffering, KindExpense:
		return true
	}
	return false
}

// IsIncome reports whether k adds to the balance
func (k TransactionKind) IsIncome() bool {
	return k == KindTithe || k == KindOffering
}

// SignedAmount returns amount with the sign its kind contributes to a balance
func SignedAmount(kind TransactionKind, amount float64) float64 {
	if kind.IsIncome() {
		return amount
	}
	return -amount
}

// MonthRange returns the first and last instant of a month in UTC.
// month is zero-based (0 = January) and may overflow into adjacent years.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	lastDay := start.AddDate(0, 1, -1)
	end := time.Date(lastDay.Year(), lastDay.Month(), lastDay.Day(), 23, 59, 59, 0, time.UTC)
	return start, end
}

// Session is the validated caller context reconstructed from a session token
type Session struct {
	// CallerID is the member id, or the super-administrator username
	CallerID    string
	IsMaster    bool
	Permissions Capabilities
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// Can reports whether the session may perform an action gated by c
func (s *Session) Can(c Capability) bool {
	if s == nil {
		return false
	}
	if s.IsMaster {
		return true
	}
	return s.Permissions.Has(c)
}
