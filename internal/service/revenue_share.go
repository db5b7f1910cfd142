package service

import (
	"errors"
	"fmt"
	"sort"

	"brokerage-backoffice/internal/database/models"
	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/finance"
	"brokerage-backoffice/internal/logger"
	"brokerage-backoffice/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RevenueShareEngine computes and persists the payout line items a closed
// transaction owes to the closing agent's upline. It composes the sponsor
// chain resolver and the cap tracker, and always runs inside the SQL
// transaction that owns the rest of the ledger write, so the line item set
// is all-or-nothing from the caller's point of view.
type RevenueShareEngine struct {
	agents   repository.AgentRepositoryInterface
	shares   repository.RevenueShareRepositoryInterface
	resolver *SponsorChainResolver
	caps     *CapTracker
	log      *logger.Logger
}

// NewRevenueShareEngine creates a new revenue share engine
func NewRevenueShareEngine(agents repository.AgentRepositoryInterface, shares repository.RevenueShareRepositoryInterface) *RevenueShareEngine {
	return &RevenueShareEngine{
		agents:   agents,
		shares:   shares,
		resolver: NewSponsorChainResolver(agents),
		caps:     NewCapTracker(shares),
		log:      logger.New(),
	}
}

// Recompute deletes whatever line items the transaction had and generates
// the current set: one row per upline sponsor, tiers 1..5, each amount
// cap-clamped against the recipient's anniversary-year allowance.
//
// Recipient agent rows are locked FOR UPDATE (in id order) before any cap
// read, so two concurrent transactions touching the same sponsor serialize
// on the read-clamp-write sequence instead of both under-clamping.
func (e *RevenueShareEngine) Recompute(tx *gorm.DB, txn *models.Transaction) ([]models.RevenueShare, error) {
	agents := e.agents.WithTx(tx)
	shares := e.shares.WithTx(tx)

	if err := shares.DeleteByTransaction(txn.ID); err != nil {
		return nil, fmt.Errorf("failed to clear prior line items: %w", err)
	}

	closer, err := agents.GetByID(txn.AgentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDanglingAgentRef
		}
		return nil, fmt.Errorf("failed to load closing agent: %w", err)
	}

	chain, err := e.resolver.Resolve(tx, closer)
	if err != nil {
		return nil, err
	}
	if len(chain) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(chain))
	for i, sponsor := range chain {
		ids[i] = sponsor.ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	if _, err := agents.LockForUpdate(ids); err != nil {
		return nil, fmt.Errorf("failed to lock recipients: %w", err)
	}

	proposed := txn.CompanyGCI.Mul(finance.SponsorRateFor(closer.AgentType)).Round(2)

	items := make([]models.RevenueShare, 0, len(chain))
	for i := range chain {
		sponsor := &chain[i]
		amount, err := e.caps.Clamp(tx, sponsor, proposed, txn.TransactionDate)
		if err != nil {
			return nil, err
		}
		items = append(items, models.RevenueShare{
			TransactionID:    txn.ID,
			SourceAgentID:    closer.ID,
			RecipientAgentID: sponsor.ID,
			Tier:             i + 1,
			Amount:           amount,
		})
	}

	if err := shares.CreateBatch(items); err != nil {
		return nil, fmt.Errorf("failed to persist line items: %w", err)
	}

	e.log.WithFields(map[string]interface{}{
		"transaction_id": txn.ID,
		"closer_id":      closer.ID,
		"line_items":     len(items),
	}).Debug("revenue share recomputed")

	return items, nil
}
