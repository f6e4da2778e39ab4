// Package scheduler contém os jobs agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/hussenmi/real-estate-api/internal/config"
	"github.com/hussenmi/real-estate-api/internal/domain"
	"github.com/hussenmi/real-estate-api/internal/usecases/reporting"
	"github.com/hussenmi/real-estate-api/pkg/utils"
)

// MonthlyCommissionSyncConfig representa a configuração do fechamento do razão
type MonthlyCommissionSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookback int
}

// MonthlyCommissionSyncService agenda o fechamento mensal do razão de
// comissões. O cálculo é idempotente, então reexecutar uma janela já
// fechada apenas sobrescreve os totais.
type MonthlyCommissionSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyCommissionSyncConfig
	reportingService    reporting.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMonthlyCommissionSyncService cria uma nova instância do serviço de fechamento do razão
func NewMonthlyCommissionSyncService(
	reportingService reporting.Reporter,
	appConfig *config.Config,
) *MonthlyCommissionSyncService {
	syncConfig := MonthlyCommissionSyncConfig{
		CronSchedule:  appConfig.CommissionSync.CronSchedule,
		SyncEnabled:   appConfig.CommissionSync.Enabled,
		MonthLookback: appConfig.CommissionSync.MonthLookback,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"sync_enabled":   syncConfig.SyncEnabled,
		"month_lookback": syncConfig.MonthLookback,
	}).Info("Configuração do agendador de fechamento de comissões carregada")

	return &MonthlyCommissionSyncService{
		scheduler:        scheduler,
		config:           syncConfig,
		reportingService: reportingService,
		syncRunning:      false,
	}
}

// Start inicia o agendador
func (s *MonthlyCommissionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Fechamento agendado de comissões desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de fechamento de comissões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyCommissions()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento de comissões: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de fechamento de comissões")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyCommissions fecha o razão das janelas mensais anteriores
func (s *MonthlyCommissionSyncService) syncMonthlyCommissions() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento de comissões já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar identificador da execução")
		return
	}

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando fechamento mensal de comissões")

	lookback := s.config.MonthLookback
	if lookback < 1 {
		lookback = 1
	}

	// Trunca para o dia 1 antes de recuar: AddDate em fim de mês
	// normaliza a data (31/03 - 1 mês vira 02/03) e pularia janelas
	now := time.Now()
	ref := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < lookback; i++ {
		window := domain.PreviousMonthWindow(ref.AddDate(0, -i, 0))
		s.processWindow(logger, window)
	}

	duration := time.Since(startTime)
	logger.WithFields(logrus.Fields{
		"duration": duration.String(),
		"months":   lookback,
	}).Info("Fechamento mensal de comissões concluído")

	s.lastSyncCompletedAt = time.Now()
}

// processWindow calcula e grava as comissões de uma janela
func (s *MonthlyCommissionSyncService) processWindow(logger *logrus.Entry, window domain.Window) {
	month := fmt.Sprintf("%02d", window.Month())
	year := fmt.Sprintf("%04d", window.Year())

	logger.WithField("period", window.Period()).Info("Fechando razão de comissões da janela")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	totals, err := s.reportingService.CommissionByAgent(ctx, month, year)
	if err != nil {
		logger.WithError(err).WithField("period", window.Period()).Error("Erro ao fechar razão de comissões")
		return
	}

	logger.WithFields(logrus.Fields{
		"period": window.Period(),
		"agents": len(totals),
	}).Info("Razão de comissões gravado")
}

// TriggerManualSync inicia manualmente um fechamento de comissões
func (s *MonthlyCommissionSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento de comissões já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando fechamento manual de comissões")
	go s.syncMonthlyCommissions()
}

// GetStatus retorna o status atual do fechamento
func (s *MonthlyCommissionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
