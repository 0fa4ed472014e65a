package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open abre (o crea) la base SQLite. No crea tablas: eso es Migrate.
// dsn es un path o una URI "file:...". Se fuerzan las FKs en cada conexión:
// sin eso SQLite ignora REFERENCES y no hay cascada.
func Open(dsn string) (*gorm.DB, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, errors.New("sqlite: empty dsn")
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	dsn += sep + "_foreign_keys=1"

	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to connect: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite: underlying db: %w", err)
	}
	// SQLite serializa escrituras; una sola conexión evita SQLITE_BUSY
	// y mantiene viva una base ":memory:".
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return db, nil
}

// Migrate crea o actualiza las tablas con AutoMigrate.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&studentRow{},
		&interestRow{},
		&petRow{},
		&lessonRow{},
		&lessonQuestionRow{},
		&levelingTestRow{},
		&testQuestionRow{},
	); err != nil {
		return fmt.Errorf("sqlite: failed to migrate: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IsForeignKeyViolation detecta SQLITE_CONSTRAINT_FOREIGNKEY.
func IsForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}

func classifyFK(err error, sentinel error) error {
	if err == nil {
		return nil
	}
	if IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	return err
}
