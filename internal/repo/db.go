package repo

import (
	"fmt"
	"time"

	"Marketplace/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options задаёт параметры подключения к БД.
type Options struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	Logger       *zap.SugaredLogger
}

// InitDB открывает соединение, настраивает пул и прогоняет AutoMigrate для всех моделей.
func InitDB(opts Options) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch opts.Driver {
	case DriverPostgres, "":
		dial = postgres.Open(opts.DSN)
	case DriverSQLite:
		// modernc.org/sqlite регистрируется под именем "sqlite" и не требует cgo
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: opts.DSN}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	gcfg := &gorm.Config{}
	if opts.Logger != nil {
		gcfg.Logger = NewGormLogger(opts.Logger, 200*time.Millisecond)
	}

	db, err := gorm.Open(dial, gcfg)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate создаёт/обновляет таблицы схемы.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
