package scheduler

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hussenmi/real-estate-api/internal/domain"
	reportingmocks "github.com/hussenmi/real-estate-api/internal/usecases/reporting/mocks"
)

func TestMonthlyCommissionSyncService_processWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)

	service := &MonthlyCommissionSyncService{
		config: MonthlyCommissionSyncConfig{
			CronSchedule:  "0 5 2 * *",
			SyncEnabled:   true,
			MonthLookback: 1,
		},
		reportingService: mockReporter,
	}

	logger := logrus.WithField("run_id", "test")

	tests := []struct {
		name  string
		ref   time.Time
		setup func()
	}{
		{
			name: "Fecha a janela do mês anterior com mês e ano de dois e quatro dígitos",
			ref:  time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC),
			setup: func() {
				mockReporter.EXPECT().
					CommissionByAgent(gomock.Any(), "01", "2024").
					Return(map[int]decimal.Decimal{1: decimal.NewFromInt(15000)}, nil)
			},
		},
		{
			name: "Virada de ano - janeiro fecha dezembro do ano anterior",
			ref:  time.Date(2024, 1, 2, 5, 0, 0, 0, time.UTC),
			setup: func() {
				mockReporter.EXPECT().
					CommissionByAgent(gomock.Any(), "12", "2023").
					Return(map[int]decimal.Decimal{}, nil)
			},
		},
		{
			name: "Erro do cálculo não interrompe o agendador",
			ref:  time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC),
			setup: func() {
				mockReporter.EXPECT().
					CommissionByAgent(gomock.Any(), "01", "2024").
					Return(nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			window := domain.PreviousMonthWindow(tt.ref)
			service.processWindow(logger, window)
		})
	}
}

func TestMonthlyCommissionSyncService_GetStatus(t *testing.T) {
	service := &MonthlyCommissionSyncService{
		config: MonthlyCommissionSyncConfig{
			CronSchedule:  "0 5 2 * *",
			SyncEnabled:   true,
			MonthLookback: 1,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 5 2 * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
}
