package datastore

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"verilearn.io/infrastructure/database/migrations"
	"verilearn.io/infrastructure/logger"
)

// DB is the process-wide connection pool, set by ConnectToDatabase.
var DB *sql.DB

func ConnectToDatabase() {
	url := os.Getenv("DB_URL")
	db, err := sql.Open("pgx", url)
	if err != nil {
		logger.Error("could not open postgres connection", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		panic(err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		logger.Error("could not reach postgres", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		panic(err)
	}

	if err := runMigrations(ctx, db); err != nil {
		logger.Error("could not run database migrations", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		panic(err)
	}

	DB = db
	logger.Info("connected to postgres successfully")
}

func CleanUp() {
	if DB == nil {
		return
	}
	if err := DB.Close(); err != nil {
		logger.Warning("error closing postgres pool", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
