// File: internal/platform/store/store.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"unichoice_core/internal/config"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Record is one persisted key. Values are always JSON text, mirroring the
// key-value storage the application treats as its only datastore.
type Record struct {
	Key       string         `gorm:"primaryKey;type:varchar(255)"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName specifies the table name for the Record model.
func (Record) TableName() string {
	return "records"
}

// Op identifies what happened to a key.
type Op string

const (
	OpSet    Op = "set"
	OpRemove Op = "remove"
)

// Event is published to subscribers after every successful Set or Remove.
// Subscribers re-read the store; the event carries no value on purpose.
type Event struct {
	Key string
	Op  Op
}

// Store is a key-value abstraction over a single local sqlite file.
// Writes publish change events so dependent views can subscribe instead of
// polling the store on an interval.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger

	mu      sync.Mutex
	subs    map[int]chan Event
	nextSub int
}

// New opens (or creates) the sqlite file at cfg.StorePath and migrates the
// records table.
func New(cfg *config.Config, logger *zap.Logger) (*Store, error) {
	var gormLogLevel gormlogger.LogLevel
	switch cfg.LogLevel {
	case "silent", "fatal", "panic":
		gormLogLevel = gormlogger.Silent
	case "error":
		gormLogLevel = gormlogger.Error
	case "info", "debug":
		gormLogLevel = gormlogger.Info
	default:
		gormLogLevel = gormlogger.Warn
	}

	newLogger := gormlogger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  cfg.AppMode != "release",
		},
	)

	db, err := gorm.Open(sqlite.Open(cfg.StorePath), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open record store at %s: %w", cfg.StorePath, err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate record store: %w", err)
	}

	return &Store{
		db:     db,
		logger: logger,
		subs:   make(map[int]chan Event),
	}, nil
}

// Get returns the raw JSON stored under key, or ok=false when the key is absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	var rec Record
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&rec).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Record store read failed, treating key as absent",
				zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return []byte(rec.Value), true
}

// GetJSON decodes the value stored under key into out. An absent key or an
// unparseable value both leave out untouched and return false; corruption is
// logged, never propagated.
func (s *Store) GetJSON(ctx context.Context, key string, out any) bool {
	raw, ok := s.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn("Record store value is not valid JSON, treating key as absent",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set serializes value as JSON and upserts it under key, then notifies subscribers.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value for key %s: %w", key, err)
	}

	rec := Record{Key: key, Value: datatypes.JSON(raw), UpdatedAt: time.Now()}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to persist key %s: %w", key, err)
	}

	s.publish(Event{Key: key, Op: OpSet})
	return nil
}

// Remove deletes the record under key. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&Record{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to remove key %s: %w", key, err)
	}
	s.publish(Event{Key: key, Op: OpRemove})
	return nil
}

// Subscribe registers a change listener. The returned cancel func must be
// called when the subscriber goes away. Delivery is lossy: a subscriber that
// does not keep up misses events and is expected to re-read the store.
func (s *Store) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Event, 16)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *Store) publish(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
			// Subscriber is behind; it will re-read on its next event.
		}
	}
}

// Close closes the underlying database connection and all subscriber channels.
func (s *Store) Close() error {
	s.mu.Lock()
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
	s.mu.Unlock()

	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
