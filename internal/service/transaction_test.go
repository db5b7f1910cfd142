package service_test

import (
	"testing"
	"time"

	"brokerage-backoffice/internal/database/models"
	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/mocks"
	"brokerage-backoffice/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockTxnRepo        *mocks.MockTransactionRepositoryInterface
	mockAgentRepo      *mocks.MockAgentRepositoryInterface
	mockShareRepo      *mocks.MockRevenueShareRepositoryInterface
	transactionService *service.TransactionService
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTxnRepo = mocks.NewMockTransactionRepositoryInterface(suite.ctrl)
	suite.mockAgentRepo = mocks.NewMockAgentRepositoryInterface(suite.ctrl)
	suite.mockShareRepo = mocks.NewMockRevenueShareRepositoryInterface(suite.ctrl)

	engine := service.NewRevenueShareEngine(suite.mockAgentRepo, suite.mockShareRepo)
	suite.transactionService = service.NewTransactionService(
		nil, suite.mockTxnRepo, suite.mockAgentRepo, suite.mockShareRepo, engine, nil, nil, validator.New())
}

func (suite *TransactionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TransactionServiceTestSuite) closer() *models.Agent {
	return &models.Agent{
		BaseModel:        models.BaseModel{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		FullName:         "Priya Raman",
		Email:            "priya@example.com",
		AgentType:        models.AgentTypePrincipal,
		AnniversaryDate:  time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC),
		CareerSalesCount: 8,
		IsActive:         true,
	}
}

func (suite *TransactionServiceTestSuite) TestCreate_AgentNotFound() {
	agentID := uuid.New()
	suite.mockAgentRepo.EXPECT().GetByID(agentID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.transactionService.Create(&service.CreateTransactionRequest{
		AgentID:              agentID,
		PropertyAddress:      "42 Harbor View Dr",
		SaleAmount:           decimal.NewFromInt(500000),
		CommissionPercentage: decimal.NewFromInt(3),
		TransactionDate:      time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	})

	suite.ErrorIs(err, apperrors.ErrAgentNotFound)
}

func (suite *TransactionServiceTestSuite) TestCreate_ValidationFailure() {
	_, err := suite.transactionService.Create(&service.CreateTransactionRequest{
		SaleAmount:           decimal.NewFromInt(500000),
		CommissionPercentage: decimal.NewFromInt(3),
	})

	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *TransactionServiceTestSuite) TestCreate_NonPositiveSaleAmount() {
	agent := suite.closer()
	suite.mockAgentRepo.EXPECT().GetByID(agent.ID).Return(agent, nil)

	_, err := suite.transactionService.Create(&service.CreateTransactionRequest{
		AgentID:              agent.ID,
		PropertyAddress:      "42 Harbor View Dr",
		SaleAmount:           decimal.Zero,
		CommissionPercentage: decimal.NewFromInt(3),
		TransactionDate:      time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	})

	suite.ErrorIs(err, apperrors.ErrInvalidSaleAmount)
}

func (suite *TransactionServiceTestSuite) TestCreate_CommissionPercentageOverLimit() {
	agent := suite.closer()
	suite.mockAgentRepo.EXPECT().GetByID(agent.ID).Return(agent, nil)

	_, err := suite.transactionService.Create(&service.CreateTransactionRequest{
		AgentID:              agent.ID,
		PropertyAddress:      "42 Harbor View Dr",
		SaleAmount:           decimal.NewFromInt(500000),
		CommissionPercentage: decimal.NewFromInt(101),
		TransactionDate:      time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	})

	suite.ErrorIs(err, apperrors.ErrInvalidCommissionPercentage)
}

func (suite *TransactionServiceTestSuite) TestGetByID_Success() {
	txnID := uuid.New()
	agentID := uuid.New()
	txn := &models.Transaction{
		BaseModel:             models.BaseModel{ID: txnID, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		AgentID:               agentID,
		PropertyAddress:       "42 Harbor View Dr",
		SaleAmount:            decimal.NewFromInt(500000),
		CommissionPercentage:  decimal.NewFromInt(3),
		TransactionDate:       time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		TotalCommission:       decimal.RequireFromString("15000"),
		CompanyGCI:            decimal.RequireFromString("2250"),
		AgentCommissionAmount: decimal.RequireFromString("11500"),
	}
	items := []models.RevenueShare{{
		BaseModel:        models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		TransactionID:    txnID,
		SourceAgentID:    agentID,
		RecipientAgentID: uuid.New(),
		Tier:             1,
		Amount:           decimal.RequireFromString("281.25"),
	}}
	suite.mockTxnRepo.EXPECT().GetByID(txnID).Return(txn, nil)
	suite.mockShareRepo.EXPECT().GetByTransaction(txnID).Return(items, nil)

	resp, err := suite.transactionService.GetByID(txnID)

	suite.NoError(err)
	suite.Equal(txnID, resp.ID)
	suite.Equal("2024-06-01", resp.TransactionDate)
	suite.Len(resp.RevenueShares, 1)
	suite.Equal(1, resp.RevenueShares[0].Tier)
}

func (suite *TransactionServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockTxnRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.transactionService.GetByID(id)

	suite.ErrorIs(err, apperrors.ErrTransactionNotFound)
}

func (suite *TransactionServiceTestSuite) TestList_InvalidPagination() {
	_, err := suite.transactionService.List(0, 20)
	suite.ErrorIs(err, apperrors.ErrInvalidPaginationParams)

	_, err = suite.transactionService.List(1, 0)
	suite.ErrorIs(err, apperrors.ErrInvalidPaginationParams)
}

func (suite *TransactionServiceTestSuite) TestListByAgent_AgentNotFound() {
	agentID := uuid.New()
	suite.mockAgentRepo.EXPECT().GetByID(agentID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.transactionService.ListByAgent(agentID, 1, 20)

	suite.ErrorIs(err, apperrors.ErrAgentNotFound)
}

func (suite *TransactionServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	suite.mockTxnRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	addr := "New Address"
	_, err := suite.transactionService.Update(id, &service.UpdateTransactionRequest{PropertyAddress: &addr})

	suite.ErrorIs(err, apperrors.ErrTransactionNotFound)
}

func (suite *TransactionServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockTxnRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.transactionService.Delete(id)

	suite.ErrorIs(err, apperrors.ErrTransactionNotFound)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
