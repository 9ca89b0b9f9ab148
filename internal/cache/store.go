// Package cache keeps the last-known document lists on the client. Reads are
// served from memory immediately; mutations patch entries in place by id.
// Lists are shadow-persisted to a local sqlite file so a restart does not
// begin with a blank screen, but the backend stays the system of record.
package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fastrasuites/fastra-procure-go/internal/models"
)

// cachedRow is one persisted list entry. Position preserves list order across
// reloads.
type cachedRow struct {
	DocType   string `gorm:"primaryKey;size:40"`
	DocID     string `gorm:"primaryKey;size:80"`
	Position  int
	Payload   string
	UpdatedAt time.Time
}

func (cachedRow) TableName() string { return "cached_documents" }

// Store is the sqlite shadow behind a ListCache.
type Store struct {
	db *gorm.DB
}

// OpenStore opens (or creates) the shadow database at path and migrates its
// single table. Use a file: DSN; ":memory:" works for tests.
func OpenStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open cache store: %w", err)
	}
	if err := db.AutoMigrate(&cachedRow{}); err != nil {
		return nil, fmt.Errorf("migrate cache store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) loadAll() (map[models.DocType][]models.Summary, error) {
	var rows []cachedRow
	if err := s.db.Order("doc_type, position").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[models.DocType][]models.Summary)
	for _, row := range rows {
		var sum models.Summary
		if err := json.Unmarshal([]byte(row.Payload), &sum); err != nil {
			continue
		}
		dt := models.DocType(row.DocType)
		out[dt] = append(out[dt], sum)
	}
	return out, nil
}

func (s *Store) saveList(dt models.DocType, items []models.Summary) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doc_type = ?", string(dt)).Delete(&cachedRow{}).Error; err != nil {
			return err
		}
		for i, sum := range items {
			payload, err := json.Marshal(sum)
			if err != nil {
				return err
			}
			row := cachedRow{DocType: string(dt), DocID: sum.ID, Position: i, Payload: string(payload)}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
