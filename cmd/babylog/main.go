package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/babylog/internal/api"
	"github.com/alexanderramin/babylog/internal/cli"
	"github.com/alexanderramin/babylog/internal/config"
	"github.com/alexanderramin/babylog/internal/db"
	"github.com/alexanderramin/babylog/internal/logger"
	"github.com/alexanderramin/babylog/internal/repository"
	"github.com/alexanderramin/babylog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// stores is the repository set for the configured backend.
type stores struct {
	profiles repository.ProfileRepo
	tx       repository.ProfileTxRunner
	records  repository.RecordRepo
	close    func() error
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	log, closeLog, err := logger.Init(cfg.Log)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer closeLog()

	st, err := openStores(cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	var observers []service.UseCaseObserver
	if cfg.Log.UseCases {
		observers = append(observers, service.NewLogUseCaseObserver(log))
	}

	// Wire services
	profileSvc := service.NewProfileService(st.profiles, st.tx, observers...)
	recordSvc := service.NewRecordService(st.records, st.profiles, observers...)
	statsSvc := service.NewStatsService(st.records)
	seedSvc := service.NewSeedService(recordSvc, st.profiles, observers...)

	srv := api.New(profileSvc, recordSvc, statsSvc, log)

	app := &cli.App{
		Profiles: profileSvc,
		Records:  recordSvc,
		Stats:    statsSvc,
		Seed:     seedSvc,
		Serve:    srv.Run,
		Addr:     cfg.Addr,
	}

	// Forms and the timeline browser only run on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

func openStores(cfg config.Config, log *slog.Logger) (*stores, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		gdb, err := repository.NewPostgresDB(cfg.Postgres)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("postgres handle: %w", err)
		}
		log.Debug("store opened", "driver", cfg.Driver, "host", cfg.Postgres.Host, "name", cfg.Postgres.Name)
		profiles := repository.NewGormProfileRepo(gdb)
		return &stores{
			profiles: profiles,
			tx:       profiles,
			records:  repository.NewGormRecordRepo(gdb),
			close:    sqlDB.Close,
		}, nil

	default:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		log.Debug("store opened", "driver", cfg.Driver, "path", cfg.DBPath)
		return &stores{
			profiles: repository.NewSQLiteProfileRepo(database),
			tx:       repository.NewSQLiteProfileTx(db.NewSQLiteUnitOfWork(database)),
			records:  repository.NewSQLiteRecordRepo(database),
			close:    database.Close,
		}, nil
	}
}
