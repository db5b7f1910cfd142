package service_test

import (
	"testing"
	"time"

	"brokerage-backoffice/internal/database/models"
	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/mocks"
	"brokerage-backoffice/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type engineFixture struct {
	agents *mocks.MockAgentRepositoryInterface
	shares *mocks.MockRevenueShareRepositoryInterface
	engine *service.RevenueShareEngine
}

func newEngineFixture(ctrl *gomock.Controller) *engineFixture {
	f := &engineFixture{
		agents: mocks.NewMockAgentRepositoryInterface(ctrl),
		shares: mocks.NewMockRevenueShareRepositoryInterface(ctrl),
	}
	f.agents.EXPECT().WithTx(gomock.Any()).Return(f.agents).AnyTimes()
	f.shares.EXPECT().WithTx(gomock.Any()).Return(f.shares).AnyTimes()
	f.engine = service.NewRevenueShareEngine(f.agents, f.shares)
	return f
}

func newTransaction(agentID uuid.UUID, companyGCI string) *models.Transaction {
	return &models.Transaction{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		AgentID:         agentID,
		CompanyGCI:      decimal.RequireFromString(companyGCI),
		TransactionDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRevenueShareRecompute(t *testing.T) {
	t.Run("Principal closer pays 12.5 percent of company GCI to each tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newEngineFixture(ctrl)

		agents := buildChain(4) // closer + 3 sponsors
		closer := agents[0]
		txn := newTransaction(closer.ID, "9000")

		f.shares.EXPECT().DeleteByTransaction(txn.ID).Return(nil)
		f.agents.EXPECT().GetByID(closer.ID).Return(closer, nil)
		for _, a := range agents[1:] {
			f.agents.EXPECT().GetByID(a.ID).Return(a, nil)
		}
		f.agents.EXPECT().LockForUpdate(gomock.Any()).Return(nil, nil)
		for _, a := range agents[1:] {
			f.shares.EXPECT().
				SumForRecipientBetween(a.ID, gomock.Any(), gomock.Any()).
				Return(decimal.Zero, nil)
		}
		f.shares.EXPECT().CreateBatch(gomock.Any()).Return(nil)

		items, err := f.engine.Recompute(nil, txn)
		require.NoError(t, err)
		require.Len(t, items, 3)
		for i, item := range items {
			assert.Equal(t, i+1, item.Tier)
			assert.Equal(t, agents[i+1].ID, item.RecipientAgentID)
			assert.Equal(t, closer.ID, item.SourceAgentID)
			assert.Equal(t, txn.ID, item.TransactionID)
			assert.True(t, item.Amount.Equal(decimal.RequireFromString("1125")),
				"tier %d: got %s, want 1125", item.Tier, item.Amount)
		}
	})

	t.Run("Support closer pays the flat 2 percent rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newEngineFixture(ctrl)

		agents := buildChain(2)
		closer := agents[0]
		closer.AgentType = models.AgentTypeSupport
		txn := newTransaction(closer.ID, "60000")

		f.shares.EXPECT().DeleteByTransaction(txn.ID).Return(nil)
		f.agents.EXPECT().GetByID(closer.ID).Return(closer, nil)
		f.agents.EXPECT().GetByID(agents[1].ID).Return(agents[1], nil)
		f.agents.EXPECT().LockForUpdate(gomock.Any()).Return(nil, nil)
		f.shares.EXPECT().
			SumForRecipientBetween(agents[1].ID, gomock.Any(), gomock.Any()).
			Return(decimal.Zero, nil)
		f.shares.EXPECT().CreateBatch(gomock.Any()).Return(nil)

		items, err := f.engine.Recompute(nil, txn)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.True(t, items[0].Amount.Equal(decimal.RequireFromString("1200")),
			"got %s, want 1200", items[0].Amount)
	})

	t.Run("A deep upline is cut off at five tiers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newEngineFixture(ctrl)

		agents := buildChain(7) // closer + 6 sponsors
		closer := agents[0]
		txn := newTransaction(closer.ID, "9000")

		f.shares.EXPECT().DeleteByTransaction(txn.ID).Return(nil)
		f.agents.EXPECT().GetByID(closer.ID).Return(closer, nil)
		for _, a := range agents[1:6] {
			f.agents.EXPECT().GetByID(a.ID).Return(a, nil)
		}
		f.agents.EXPECT().LockForUpdate(gomock.Any()).Return(nil, nil)
		for _, a := range agents[1:6] {
			f.shares.EXPECT().
				SumForRecipientBetween(a.ID, gomock.Any(), gomock.Any()).
				Return(decimal.Zero, nil)
		}
		f.shares.EXPECT().CreateBatch(gomock.Any()).Return(nil)

		items, err := f.engine.Recompute(nil, txn)
		require.NoError(t, err)
		require.Len(t, items, 5)
		assert.Equal(t, agents[5].ID, items[4].RecipientAgentID)
		assert.Equal(t, 5, items[4].Tier)
	})

	t.Run("Capped-out sponsors get zero line items, still persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newEngineFixture(ctrl)

		agents := buildChain(3) // closer + 2 sponsors
		closer := agents[0]
		txn := newTransaction(closer.ID, "9000")

		f.shares.EXPECT().DeleteByTransaction(txn.ID).Return(nil)
		f.agents.EXPECT().GetByID(closer.ID).Return(closer, nil)
		f.agents.EXPECT().GetByID(agents[1].ID).Return(agents[1], nil)
		f.agents.EXPECT().GetByID(agents[2].ID).Return(agents[2], nil)
		f.agents.EXPECT().LockForUpdate(gomock.Any()).Return(nil, nil)

		// Tier 1 is partially through the cap, tier 2 is exhausted.
		f.shares.EXPECT().
			SumForRecipientBetween(agents[1].ID, gomock.Any(), gomock.Any()).
			Return(decimal.RequireFromString("1125"), nil)
		f.shares.EXPECT().
			SumForRecipientBetween(agents[2].ID, gomock.Any(), gomock.Any()).
			Return(decimal.RequireFromString("2000"), nil)

		var persisted []models.RevenueShare
		f.shares.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(items []models.RevenueShare) error {
			persisted = items
			return nil
		})

		items, err := f.engine.Recompute(nil, txn)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.True(t, items[0].Amount.Equal(decimal.RequireFromString("875")),
			"tier 1: got %s, want 875", items[0].Amount)
		assert.True(t, items[1].Amount.IsZero(), "tier 2: got %s, want 0", items[1].Amount)
		require.Len(t, persisted, 2, "zero rows must reach storage")
	})

	t.Run("Unsponsored closer produces no line items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newEngineFixture(ctrl)

		closer := &models.Agent{BaseModel: models.BaseModel{ID: uuid.New()}, AgentType: models.AgentTypePrincipal}
		txn := newTransaction(closer.ID, "9000")

		f.shares.EXPECT().DeleteByTransaction(txn.ID).Return(nil)
		f.agents.EXPECT().GetByID(closer.ID).Return(closer, nil)

		items, err := f.engine.Recompute(nil, txn)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Missing closing agent is a data integrity error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newEngineFixture(ctrl)

		txn := newTransaction(uuid.New(), "9000")

		f.shares.EXPECT().DeleteByTransaction(txn.ID).Return(nil)
		f.agents.EXPECT().GetByID(txn.AgentID).Return(nil, gorm.ErrRecordNotFound)

		_, err := f.engine.Recompute(nil, txn)
		assert.ErrorIs(t, err, apperrors.ErrDanglingAgentRef)
	})

	t.Run("Cycle in the upline aborts the computation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newEngineFixture(ctrl)

		a := &models.Agent{BaseModel: models.BaseModel{ID: uuid.New()}, AgentType: models.AgentTypePrincipal}
		b := &models.Agent{BaseModel: models.BaseModel{ID: uuid.New()}}
		a.SponsorID = &b.ID
		b.SponsorID = &a.ID
		txn := newTransaction(a.ID, "9000")

		f.shares.EXPECT().DeleteByTransaction(txn.ID).Return(nil)
		f.agents.EXPECT().GetByID(a.ID).Return(a, nil)
		f.agents.EXPECT().GetByID(b.ID).Return(b, nil)

		_, err := f.engine.Recompute(nil, txn)
		assert.ErrorIs(t, err, apperrors.ErrSponsorChainCycle)
	})
}
