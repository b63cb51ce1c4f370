package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/prime-manager-api/infrastructure/database"
	"github.com/vfg2006/prime-manager-api/infrastructure/repository"
	"github.com/vfg2006/prime-manager-api/internal/api"
	"github.com/vfg2006/prime-manager-api/internal/config"
	"github.com/vfg2006/prime-manager-api/internal/scheduler"
	"github.com/vfg2006/prime-manager-api/internal/usecases/administrating"
	"github.com/vfg2006/prime-manager-api/internal/usecases/bonusing"
	"github.com/vfg2006/prime-manager-api/internal/usecases/exporting"
	"github.com/vfg2006/prime-manager-api/internal/usecases/ranking"
	"github.com/vfg2006/prime-manager-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel, cfg.App.LogFormat)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	salesRepo := repository.NewSalesRecordRepository(conn)
	amRepo := repository.NewAmRecordRepository(conn)

	bonusService := bonusing.NewService(salesRepo, amRepo)
	rankingService := ranking.NewDashboardService(salesRepo, amRepo)
	administrator := administrating.NewService(cfg, repository.NewRecordStore(conn))
	exporter := exporting.NewService(salesRepo, amRepo)

	exportBackupService := scheduler.NewExportBackupService(exporter, cfg)
	if err := exportBackupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de backup de exportação")
	}

	server, err := api.New(
		cfg,
		conn,
		bonusService,
		rankingService,
		administrator,
		exporter,
		exportBackupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite achar o .env ao rodar com go run de qualquer diretório
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}

// dbconn abre o pool de conexões e garante o schema
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
