package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/prime-manager-api/internal/domain"
	"github.com/vfg2006/prime-manager-api/internal/usecases/administrating"
	"github.com/vfg2006/prime-manager-api/internal/usecases/exporting"
	"github.com/vfg2006/prime-manager-api/pkg/apiErrors"
	"github.com/vfg2006/prime-manager-api/pkg/middleware"
)

const workbookExportName = "workbook.xlsx"

func Login(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Senha é obrigatória", nil)
			return
		}

		token, err := service.Login(req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

func ResetDatabase(service administrating.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logrus.WithField("subject", claims.Subject).Warn("Reinicialização da base solicitada")
		}

		if err := service.ResetDatabase(r.Context()); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Base de dados reinicializada",
		})
	}
}

// Export serve /v1/admin/export/:file com file = sales.csv, am.csv ou workbook.xlsx
func Export(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file := httprouter.ParamsFromContext(r.Context()).ByName("file")

		if file == workbookExportName {
			exportWorkbook(service, w, r)
			return
		}

		name, ok := strings.CutSuffix(file, ".csv")
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Arquivo de exportação desconhecido", map[string]string{"file": file})
			return
		}

		table, err := domain.ParseTable(name)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		data, err := service.ExportCSV(r.Context(), table)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", exporting.CSVContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exporting.CSVFileName(table)))
		if _, err := w.Write(data); err != nil {
			logrus.WithError(err).Error("Erro ao enviar CSV")
		}
	}
}

func exportWorkbook(service exporting.Exporter, w http.ResponseWriter, r *http.Request) {
	f, err := service.ExportWorkbook(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", exporting.XLSXContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exporting.WorkbookFileName))
	if err := f.Write(w); err != nil {
		logrus.WithError(err).Error("Erro ao enviar planilha")
	}
}
