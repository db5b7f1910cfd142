package service

import (
	"fmt"
	"time"

	"brokerage-backoffice/internal/database/models"
	"brokerage-backoffice/internal/finance"
	"brokerage-backoffice/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CapTracker answers how much more a recipient may be paid inside their
// current anniversary year, and clamps proposed payouts accordingly.
type CapTracker struct {
	shares repository.RevenueShareRepositoryInterface
}

// NewCapTracker creates a new cap tracker
func NewCapTracker(shares repository.RevenueShareRepositoryInterface) *CapTracker {
	return &CapTracker{shares: shares}
}

// AnniversaryWindow resolves the recipient's anniversary year containing the
// reference date: [most recent anniversary on/before ref, next anniversary).
// A February 29 anniversary falls on March 1 in non-leap years.
func AnniversaryWindow(anniversary, ref time.Time) (start, end time.Time) {
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	start = anniversaryIn(refDay.Year(), anniversary)
	if start.After(refDay) {
		start = anniversaryIn(refDay.Year()-1, anniversary)
	}
	end = anniversaryIn(start.Year()+1, anniversary)
	return start, end
}

func anniversaryIn(year int, anniversary time.Time) time.Time {
	month, day := anniversary.Month(), anniversary.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		month, day = time.March, 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Remaining returns how much of the recipient's annual allowance is left in
// the anniversary year containing the reference date.
func (t *CapTracker) Remaining(tx *gorm.DB, recipient *models.Agent, ref time.Time) (decimal.Decimal, error) {
	shares := t.shares
	if tx != nil {
		shares = shares.WithTx(tx)
	}

	start, end := AnniversaryWindow(recipient.AnniversaryDate, ref)
	alreadyPaid, err := shares.SumForRecipientBetween(recipient.ID, start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum prior payouts: %w", err)
	}

	remaining := finance.AnnualAllowance(recipient).Sub(alreadyPaid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return remaining, nil
}

// Clamp reduces a proposed payout to whatever allowance the recipient has
// left. A zero result is the expected outcome for a capped-out sponsor,
// not an error.
func (t *CapTracker) Clamp(tx *gorm.DB, recipient *models.Agent, proposed decimal.Decimal, ref time.Time) (decimal.Decimal, error) {
	remaining, err := t.Remaining(tx, recipient, ref)
	if err != nil {
		return decimal.Zero, err
	}
	if proposed.GreaterThan(remaining) {
		return remaining, nil
	}
	return proposed, nil
}
