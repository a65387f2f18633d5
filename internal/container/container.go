package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"randlab/adapters/memory"
	"randlab/adapters/postgres"
	"randlab/adapters/random"
	"randlab/app"
	"randlab/internal"
	"randlab/internal/config"
	"randlab/ports"
)

// Container holds the application dependencies and manages their lifecycle.
// Report storage is PostgreSQL when DATABASE_URL is set, in-memory otherwise.
type Container struct {
	Config  *config.Config
	DB      *sqlx.DB
	Reports ports.ReportRepository
	Service *app.AnalysisService

	log *internal.Logger
}

// New wires the dependency graph from configuration
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{
		Config: cfg,
		log:    internal.DefaultLogger.Named("container"),
	}

	if err := c.setupReportStorage(); err != nil {
		return nil, err
	}

	c.Service = app.NewAnalysisService(random.NewSeededRNG(), c.Reports)
	return c, nil
}

func (c *Container) setupReportStorage() error {
	if c.Config.Database.URL == "" {
		c.log.Info("no DATABASE_URL configured, keeping reports in memory")
		c.Reports = memory.NewReportRepository()
		return nil
	}

	db, err := sqlx.Connect("postgres", c.Config.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	repo := postgres.NewReportRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if pg, ok := repo.(*postgres.ReportRepositoryImpl); ok {
		if err := pg.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to ensure report schema: %w", err)
		}
	}

	c.DB = db
	c.Reports = repo
	c.log.Info("report history stored in PostgreSQL")
	return nil
}

// Close releases held resources
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
