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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type RevenueShareQueryServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockAgentRepo *mocks.MockAgentRepositoryInterface
	mockShareRepo *mocks.MockRevenueShareRepositoryInterface
	queryService  *service.RevenueShareQueryService
}

func (suite *RevenueShareQueryServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAgentRepo = mocks.NewMockAgentRepositoryInterface(suite.ctrl)
	suite.mockShareRepo = mocks.NewMockRevenueShareRepositoryInterface(suite.ctrl)
	suite.queryService = service.NewRevenueShareQueryService(suite.mockShareRepo, suite.mockAgentRepo)
}

func (suite *RevenueShareQueryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RevenueShareQueryServiceTestSuite) TestGetByTransaction() {
	txnID := uuid.New()
	items := []models.RevenueShare{
		{
			BaseModel:        models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
			TransactionID:    txnID,
			SourceAgentID:    uuid.New(),
			RecipientAgentID: uuid.New(),
			Tier:             1,
			Amount:           decimal.RequireFromString("1125.00"),
		},
		{
			BaseModel:        models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
			TransactionID:    txnID,
			SourceAgentID:    uuid.New(),
			RecipientAgentID: uuid.New(),
			Tier:             2,
			Amount:           decimal.Zero,
		},
	}
	suite.mockShareRepo.EXPECT().GetByTransaction(txnID).Return(items, nil)

	out, err := suite.queryService.GetByTransaction(txnID)

	suite.NoError(err)
	suite.Len(out, 2)
	suite.Equal(1, out[0].Tier)
	suite.True(out[1].Amount.IsZero())
}

func (suite *RevenueShareQueryServiceTestSuite) TestGetByRecipient() {
	recipient := &models.Agent{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		AgentType:       models.AgentTypePrincipal,
		AnniversaryDate: time.Date(2021, time.April, 10, 0, 0, 0, 0, time.UTC),
	}
	ref := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	windowStart := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	items := []models.RevenueShare{{
		BaseModel:        models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		TransactionID:    uuid.New(),
		SourceAgentID:    uuid.New(),
		RecipientAgentID: recipient.ID,
		Tier:             1,
		Amount:           decimal.RequireFromString("600.00"),
	}}

	suite.mockAgentRepo.EXPECT().GetByID(recipient.ID).Return(recipient, nil)
	suite.mockShareRepo.EXPECT().GetByRecipient(recipient.ID, 20, 0).Return(items, int64(1), nil)
	suite.mockShareRepo.EXPECT().SumForRecipientBetween(recipient.ID, windowStart, windowEnd).
		Return(decimal.RequireFromString("600.00"), nil)

	resp, err := suite.queryService.GetByRecipient(recipient.ID, ref, 1, 20)

	suite.NoError(err)
	suite.Len(resp.Shares, 1)
	suite.Equal(int64(1), resp.Total)
	suite.Equal("2024-04-10", resp.Summary.WindowStart)
	suite.True(resp.Summary.AlreadyPaid.Equal(decimal.RequireFromString("600.00")))
	suite.True(resp.Summary.Allowance.Equal(decimal.RequireFromString("2000")))
	suite.True(resp.Summary.Remaining.Equal(decimal.RequireFromString("1400.00")))
}

func (suite *RevenueShareQueryServiceTestSuite) TestGetByRecipient_NotFound() {
	id := uuid.New()
	suite.mockAgentRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.queryService.GetByRecipient(id, time.Now(), 1, 20)

	suite.ErrorIs(err, apperrors.ErrAgentNotFound)
}

func (suite *RevenueShareQueryServiceTestSuite) TestGetByRecipient_InvalidPagination() {
	_, err := suite.queryService.GetByRecipient(uuid.New(), time.Now(), 0, 20)

	suite.ErrorIs(err, apperrors.ErrInvalidPaginationParams)
}

func TestRevenueShareQueryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RevenueShareQueryServiceTestSuite))
}
