package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/prime-manager-api/infrastructure/database"
	"github.com/vfg2006/prime-manager-api/infrastructure/migration"
	"github.com/vfg2006/prime-manager-api/internal/config"
	"github.com/vfg2006/prime-manager-api/pkg/log"
)

func main() {
	legacyPath := flag.String("legacy", "primes_data.db", "Arquivo sqlite da ferramenta antiga")
	dryRun := flag.Bool("dry-run", true, "Apenas conta as linhas, sem gravar")
	flag.Parse()

	if strings.TrimSpace(*legacyPath) == "" {
		fmt.Fprintln(os.Stderr, "--legacy é obrigatório")
		os.Exit(1)
	}
	if _, err := os.Stat(*legacyPath); err != nil {
		fmt.Fprintf(os.Stderr, "arquivo legado não encontrado: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel, cfg.App.LogFormat)

	ctx := context.Background()

	source, err := database.NewConnection(ctx, config.Database{Driver: config.DriverSQLite, DSN: *legacyPath})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir banco legado")
	}
	defer source.Close()

	target, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de destino")
	}
	defer target.Close()

	reports, err := migration.MigrateLegacy(ctx, source, target, *dryRun)
	if err != nil {
		logrus.WithError(err).Fatal("Migração interrompida")
	}

	for _, report := range reports {
		fmt.Printf("%-6s períodos=%d linhas=%d ajustadas=%d\n", report.Table, report.Periods, report.Rows, report.Clamped)
	}
	if *dryRun {
		fmt.Println("dry-run: nada foi gravado (use --dry-run=false)")
	}
}
