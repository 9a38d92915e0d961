package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"letify_backend/internal/logger"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvRow is one row of the key-value table.
type kvRow struct {
	Key   string         `gorm:"primaryKey;type:varchar(255)"`
	Value datatypes.JSON `gorm:"not null"`
}

// GormStore keeps the key-value namespace in a single SQL table.
type GormStore struct {
	db    *gorm.DB
	table string
}

// OpenGorm connects to postgres or mysql and migrates the table.
func OpenGorm(dialect, dsn, table string) (*GormStore, error) {
	var dialector gorm.Dialector
	switch dialect {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("kvstore: unsupported sql dialect %q", dialect)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("kvstore: connect %s: %w", dialect, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("kvstore: ping %s: %w", dialect, err)
	}

	return NewGormStore(db, table)
}

// NewGormStore wraps an existing connection.
func NewGormStore(db *gorm.DB, table string) (*GormStore, error) {
	if table == "" {
		table = "kv_store"
	}
	if err := db.Table(table).AutoMigrate(&kvRow{}); err != nil {
		return nil, fmt.Errorf("kvstore: migrate %s: %w", table, err)
	}
	return &GormStore{db: db, table: table}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	start := time.Now()
	var row kvRow
	err := s.db.WithContext(ctx).Table(s.table).Where(keyEq(key)).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	logger.StoreLog("gorm", "get", key, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(row.Value), nil
}

func (s *GormStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	start := time.Now()
	row := kvRow{Key: key, Value: datatypes.JSON(value)}
	err := s.db.WithContext(ctx).Table(s.table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{keyColumn},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
	logger.StoreLog("gorm", "set", key, time.Since(start), err)
	return err
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.db.WithContext(ctx).Table(s.table).Where(keyEq(key)).Delete(&kvRow{}).Error
	logger.StoreLog("gorm", "delete", key, time.Since(start), err)
	return err
}

func (s *GormStore) ScanPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	start := time.Now()
	var rows []kvRow
	err := s.db.WithContext(ctx).Table(s.table).
		Where(clause.Like{Column: keyColumn, Value: escapeLike(prefix) + "%"}).
		Order(clause.OrderByColumn{Column: keyColumn}).
		Find(&rows).Error
	logger.StoreLog("gorm", "scan", prefix, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{Key: r.Key, Value: json.RawMessage(r.Value)})
	}
	return entries, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// "key" is reserved in mysql, so conditions go through clause to get quoting.
var keyColumn = clause.Column{Name: "key"}

func keyEq(key string) clause.Eq {
	return clause.Eq{Column: keyColumn, Value: key}
}

// escapeLike makes prefix safe for a LIKE pattern; underscores are common in our keys.
func escapeLike(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix)
}
