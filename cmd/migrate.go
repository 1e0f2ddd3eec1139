package cmd

import (
	"database/sql"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/recargaexpress/ms-go-recharges/config"
	"github.com/recargaexpress/ms-go-recharges/migrations"

	_ "github.com/go-sql-driver/mysql"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database schema migrations",
	Run:   runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back the most recent migration")
}

func runMigrate(_ *cobra.Command, _ []string) {
	db := mustOpenDatabase()
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("mysql"); err != nil {
		logrus.WithError(err).Fatal("Failed to set migration dialect")
	}

	if migrateDown {
		if err := goose.Down(db, "."); err != nil {
			logrus.WithError(err).Fatal("Migration rollback failed")
		}
		logrus.Info("Migration rolled back")
		return
	}

	if err := goose.Up(db, "."); err != nil {
		logrus.WithError(err).Fatal("Migrations failed")
	}
	logrus.Info("Migrations applied")
}

func mustOpenDatabase() *sql.DB {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		logrus.WithError(err).Fatal("Failed to ping database")
	}

	return db
}
