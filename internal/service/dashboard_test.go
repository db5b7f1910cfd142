package service_test

import (
	"testing"
	"time"

	"brokerage-backoffice/internal/database/models"
	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/mocks"
	"brokerage-backoffice/internal/repository"
	"brokerage-backoffice/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockAgentRepo    *mocks.MockAgentRepositoryInterface
	mockTxnRepo      *mocks.MockTransactionRepositoryInterface
	mockShareRepo    *mocks.MockRevenueShareRepositoryInterface
	dashboardService *service.DashboardService
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAgentRepo = mocks.NewMockAgentRepositoryInterface(suite.ctrl)
	suite.mockTxnRepo = mocks.NewMockTransactionRepositoryInterface(suite.ctrl)
	suite.mockShareRepo = mocks.NewMockRevenueShareRepositoryInterface(suite.ctrl)
	suite.dashboardService = service.NewDashboardService(suite.mockAgentRepo, suite.mockTxnRepo, suite.mockShareRepo)
}

func (suite *DashboardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DashboardServiceTestSuite) TestCompanySummary() {
	suite.mockTxnRepo.EXPECT().Totals().Return(&repository.TransactionTotals{
		Count:           7,
		TotalCommission: decimal.RequireFromString("105000.00"),
		CompanyGCI:      decimal.RequireFromString("15750.00"),
	}, nil)
	suite.mockShareRepo.EXPECT().TotalPaid().Return(decimal.RequireFromString("5625.00"), nil)

	resp, err := suite.dashboardService.CompanySummary()

	suite.NoError(err)
	suite.Equal(int64(7), resp.TransactionCount)
	suite.True(resp.TotalCommission.Equal(decimal.RequireFromString("105000.00")))
	suite.True(resp.RevenueSharePaidOut.Equal(decimal.RequireFromString("5625.00")))
}

func (suite *DashboardServiceTestSuite) TestAgentSummary() {
	agent := &models.Agent{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		FullName:        "Dana Whitfield",
		Email:           "dana@example.com",
		AgentType:       models.AgentTypePrincipal,
		AnniversaryDate: time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC),
		TotalGCIYTD:     decimal.RequireFromString("48000.00"),
	}
	ref := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	windowStart := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	suite.mockAgentRepo.EXPECT().GetByID(agent.ID).Return(agent, nil)
	suite.mockShareRepo.EXPECT().SumForRecipientBetween(agent.ID, windowStart, windowEnd).
		Return(decimal.RequireFromString("1250.00"), nil)
	suite.mockAgentRepo.EXPECT().CountBySponsorID(agent.ID).Return(int64(3), nil)

	resp, err := suite.dashboardService.AgentSummary(agent.ID, ref)

	suite.NoError(err)
	suite.Equal(agent.ID, resp.AgentID)
	suite.True(resp.RevenueShareReceived.Equal(decimal.RequireFromString("1250.00")))
	suite.True(resp.RemainingAllowance.Equal(decimal.RequireFromString("750.00")))
	suite.Equal("2024-01-15", resp.WindowStart)
	suite.Equal("2025-01-15", resp.WindowEnd)
	suite.Equal(int64(3), resp.DownlineSize)
}

func (suite *DashboardServiceTestSuite) TestAgentSummary_OverpaidClampsToZero() {
	agent := &models.Agent{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		AgentType:       models.AgentTypePrincipal,
		AnniversaryDate: time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC),
		TotalGCIYTD:     decimal.Zero,
	}
	ref := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	suite.mockAgentRepo.EXPECT().GetByID(agent.ID).Return(agent, nil)
	suite.mockShareRepo.EXPECT().SumForRecipientBetween(agent.ID, gomock.Any(), gomock.Any()).
		Return(decimal.RequireFromString("2400.00"), nil)
	suite.mockAgentRepo.EXPECT().CountBySponsorID(agent.ID).Return(int64(0), nil)

	resp, err := suite.dashboardService.AgentSummary(agent.ID, ref)

	suite.NoError(err)
	suite.True(resp.RemainingAllowance.IsZero())
}

func (suite *DashboardServiceTestSuite) TestAgentSummary_NotFound() {
	id := uuid.New()
	suite.mockAgentRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.dashboardService.AgentSummary(id, time.Now())

	suite.ErrorIs(err, apperrors.ErrAgentNotFound)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
