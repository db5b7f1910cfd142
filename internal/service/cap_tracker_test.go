package service_test

import (
	"testing"
	"time"

	"brokerage-backoffice/internal/database/models"
	"brokerage-backoffice/internal/mocks"
	"brokerage-backoffice/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestAnniversaryWindow(t *testing.T) {
	testCases := []struct {
		name          string
		anniversary   time.Time
		ref           time.Time
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "Reference after the anniversary in the same year",
			anniversary:   day(2019, time.March, 10),
			ref:           day(2024, time.June, 1),
			expectedStart: day(2024, time.March, 10),
			expectedEnd:   day(2025, time.March, 10),
		},
		{
			name:          "Reference before the anniversary rolls back a year",
			anniversary:   day(2019, time.March, 10),
			ref:           day(2024, time.February, 1),
			expectedStart: day(2023, time.March, 10),
			expectedEnd:   day(2024, time.March, 10),
		},
		{
			name:          "Reference exactly on the anniversary starts a new window",
			anniversary:   day(2019, time.March, 10),
			ref:           day(2024, time.March, 10),
			expectedStart: day(2024, time.March, 10),
			expectedEnd:   day(2025, time.March, 10),
		},
		{
			name:          "February 29 anniversary in a non-leap year becomes March 1",
			anniversary:   day(2020, time.February, 29),
			ref:           day(2023, time.June, 1),
			expectedStart: day(2023, time.March, 1),
			expectedEnd:   day(2024, time.February, 29),
		},
		{
			name:          "February 29 anniversary honored in a leap year",
			anniversary:   day(2020, time.February, 29),
			ref:           day(2024, time.June, 1),
			expectedStart: day(2024, time.February, 29),
			expectedEnd:   day(2025, time.March, 1),
		},
		{
			name:          "Time-of-day on the reference is ignored",
			anniversary:   day(2019, time.March, 10),
			ref:           time.Date(2024, time.March, 10, 23, 59, 59, 0, time.UTC),
			expectedStart: day(2024, time.March, 10),
			expectedEnd:   day(2025, time.March, 10),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := service.AnniversaryWindow(tc.anniversary, tc.ref)
			assert.Equal(t, tc.expectedStart, start)
			assert.Equal(t, tc.expectedEnd, end)
		})
	}
}

func TestCapTrackerClamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recipient := &models.Agent{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		AgentType:       models.AgentTypePrincipal,
		AnniversaryDate: day(2019, time.March, 10),
	}
	ref := day(2024, time.June, 1)

	testCases := []struct {
		name        string
		alreadyPaid string
		proposed    string
		expected    string
	}{
		{"Full allowance available", "0", "1125", "1125"},
		{"Partial allowance clamps the payout", "1125", "1125", "875"},
		{"Exhausted allowance yields zero", "2000", "1125", "0"},
		{"Overdrawn window never goes negative", "2500", "1125", "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockShares := mocks.NewMockRevenueShareRepositoryInterface(ctrl)
			mockShares.EXPECT().
				SumForRecipientBetween(recipient.ID, day(2024, time.March, 10), day(2025, time.March, 10)).
				Return(decimal.RequireFromString(tc.alreadyPaid), nil)

			tracker := service.NewCapTracker(mockShares)
			amount, err := tracker.Clamp(nil, recipient, decimal.RequireFromString(tc.proposed), ref)
			require.NoError(t, err)
			assert.True(t, amount.Equal(decimal.RequireFromString(tc.expected)),
				"got %s, want %s", amount, tc.expected)
		})
	}
}

func TestCapTrackerTeamCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	team := models.CapTypeTeam
	recipient := &models.Agent{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		AgentType:       models.AgentTypePrincipal,
		CapType:         &team,
		AnniversaryDate: day(2019, time.March, 10),
	}

	mockShares := mocks.NewMockRevenueShareRepositoryInterface(ctrl)
	mockShares.EXPECT().
		SumForRecipientBetween(recipient.ID, gomock.Any(), gomock.Any()).
		Return(decimal.Zero, nil)

	tracker := service.NewCapTracker(mockShares)
	amount, err := tracker.Clamp(nil, recipient, decimal.RequireFromString("1125"), day(2024, time.June, 1))
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("1000")), "got %s", amount)
}
