package handler

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/prime-manager-api/internal/scheduler"
	"github.com/vfg2006/prime-manager-api/pkg/apiErrors"
	"github.com/vfg2006/prime-manager-api/pkg/log"
)

const CronJobTypeExportBackup = "export-backup"

// ManualJob é uma rotina agendada que também pode ser disparada pela API
type ManualJob interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// CronJobServices indexa as rotinas pelo tipo usado na rota
type CronJobServices map[string]ManualJob

func NewCronJobServices(exportBackup *scheduler.ExportBackupService) CronJobServices {
	services := CronJobServices{}
	if exportBackup != nil {
		services[CronJobTypeExportBackup] = exportBackup
	}
	return services
}

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for cronType := range s {
		types = append(types, cronType)
	}
	sort.Strings(types)
	return types
}

func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		job, ok := services[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]string{
				"type":     cronType,
				"accepted": strings.Join(services.types(), ","),
			})
			return
		}

		if !job.TriggerManualSync(r.Context()) {
			writeServiceError(w, scheduler.ErrJobRunning)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Cron job disparada manualmente")
		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for cronType, job := range services {
			status[cronType] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
