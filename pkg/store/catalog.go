package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Entry maps a level name to the snapshot that was last saved under it.
type Entry struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"uniqueIndex;not null;size:64"`
	Hash    string `gorm:"not null;size:16"`
	Objects int
	Saved   time.Time
}

type Catalog struct {
	db *gorm.DB
}

func OpenCatalog(path string) (*Catalog, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}

	return &Catalog{db: db}, nil
}

// Put creates the entry for name or points it at a new snapshot.
func (c *Catalog) Put(ctx context.Context, name string, hash string, objects int, saved time.Time) (*Entry, error) {
	var entry Entry
	err := c.db.WithContext(ctx).
		Where(Entry{Name: name}).
		Assign(Entry{Hash: hash, Objects: objects, Saved: saved}).
		FirstOrCreate(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Catalog) Get(ctx context.Context, name string) (*Entry, error) {
	var entry Entry
	err := c.db.WithContext(ctx).Where("name = ?", name).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMissing
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns every entry ordered by name.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := c.db.WithContext(ctx).Order("name").Find(&entries).Error
	return entries, err
}

func (c *Catalog) Close() error {
	db, err := c.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
