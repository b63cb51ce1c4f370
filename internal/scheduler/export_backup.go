package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/prime-manager-api/internal/config"
	"github.com/vfg2006/prime-manager-api/internal/domain"
	"github.com/vfg2006/prime-manager-api/internal/usecases/exporting"
	"github.com/vfg2006/prime-manager-api/pkg/log"
	"github.com/vfg2006/prime-manager-api/pkg/utils"
)

const backupTimestampLayout = "20060102T150405"

// ExportBackupConfig representa a configuração do agendador de backups
type ExportBackupConfig struct {
	CronSchedule string
	Directory    string
	Enabled      bool
}

// ExportBackupService grava periodicamente os CSVs e a planilha do histórico em disco
type ExportBackupService struct {
	scheduler           *gocron.Scheduler
	config              ExportBackupConfig
	exporter            exporting.Exporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastBackupDir       string
	lastError           string
	now                 func() time.Time
}

func NewExportBackupService(exporter exporting.Exporter, appConfig *config.Config) *ExportBackupService {
	backupConfig := ExportBackupConfig{
		CronSchedule: appConfig.ExportBackup.CronSchedule,
		Directory:    appConfig.ExportBackup.Directory,
		Enabled:      appConfig.ExportBackup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": backupConfig.CronSchedule,
		"directory":     backupConfig.Directory,
		"sync_enabled":  backupConfig.Enabled,
	}).Info("Configuração do agendador de backup carregada")

	return &ExportBackupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    backupConfig,
		exporter:  exporter,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *ExportBackupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Backup de exportação desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de backup de exportação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runBackup(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar backup de exportação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de backup de exportação")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara um backup fora do agendamento. Devolve false se já
// houver um em andamento. O backup segue mesmo que a requisição termine antes.
func (s *ExportBackupService) TriggerManualSync(ctx context.Context) bool {
	startTime, ok := s.begin()
	if !ok {
		log.ForContext(ctx).Info("Backup de exportação já em andamento, ignorando solicitação manual")
		return false
	}

	log.ForContext(ctx).Info("Iniciando backup manual de exportação")
	go func() {
		if _, err := s.execute(context.WithoutCancel(ctx), startTime); err != nil {
			log.ForContext(ctx).WithError(err).Error("Erro no backup de exportação")
		}
	}()
	return true
}

func (s *ExportBackupService) runBackup(ctx context.Context) {
	if _, err := s.RunBackup(ctx); err != nil {
		logrus.WithError(err).Error("Erro no backup de exportação")
	}
}

// RunBackup grava os arquivos em <diretório>/<timestamp>_<run-id>/ e devolve o caminho
func (s *ExportBackupService) RunBackup(ctx context.Context) (string, error) {
	startTime, ok := s.begin()
	if !ok {
		return "", ErrBackupRunning
	}
	return s.execute(ctx, startTime)
}

// begin marca a execução como iniciada; a checagem e a marcação acontecem sob o mesmo lock
func (s *ExportBackupService) begin() (time.Time, bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return time.Time{}, false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return s.lastSyncStartedAt, true
}

func (s *ExportBackupService) execute(ctx context.Context, startTime time.Time) (string, error) {
	dir, err := s.writeBackup(ctx, startTime)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	if err != nil {
		s.lastError = err.Error()
		return "", err
	}

	s.lastError = ""
	s.lastBackupDir = dir
	s.lastSyncCompletedAt = s.now()

	log.ForContext(ctx).WithFields(logrus.Fields{
		"duration":  s.lastSyncCompletedAt.Sub(startTime).String(),
		"directory": dir,
	}).Info("Backup de exportação concluído")

	return dir, nil
}

func (s *ExportBackupService) writeBackup(ctx context.Context, startTime time.Time) (string, error) {
	runID, err := utils.NewRunID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	dir := filepath.Join(s.config.Directory, fmt.Sprintf("%s_%s", startTime.Format(backupTimestampLayout), runID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório de backup: %w", err)
	}

	for _, table := range domain.Tables {
		data, err := s.exporter.ExportCSV(ctx, table)
		if err != nil {
			return "", fmt.Errorf("erro ao exportar %s: %w", table, err)
		}
		if err := os.WriteFile(filepath.Join(dir, exporting.CSVFileName(table)), data, 0o644); err != nil {
			return "", fmt.Errorf("erro ao gravar CSV de %s: %w", table, err)
		}
	}

	workbook, err := s.exporter.ExportWorkbook(ctx)
	if err != nil {
		return "", fmt.Errorf("erro ao exportar planilha: %w", err)
	}
	defer workbook.Close()

	if err := workbook.SaveAs(filepath.Join(dir, exporting.WorkbookFileName)); err != nil {
		return "", fmt.Errorf("erro ao gravar planilha: %w", err)
	}

	return dir, nil
}

// GetStatus retorna o status atual do backup
func (s *ExportBackupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"directory":              s.config.Directory,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_backup_dir":        s.lastBackupDir,
		"last_error":             s.lastError,
	}
}
