package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cfoust/gdlevel/pkg/gd/level"
)

// Library saves levels by name. Snapshots live in a Store keyed by content
// hash and the Catalog maps names onto them.
type Library struct {
	store   Store
	catalog *Catalog
}

func NewLibrary(store Store, catalog *Catalog) *Library {
	return &Library{
		store:   store,
		catalog: catalog,
	}
}

func (l *Library) Save(ctx context.Context, name string, editor *level.Editor) (*Entry, error) {
	text, err := editor.Dump()
	if err != nil {
		return nil, err
	}

	compressed, err := level.Compress(text)
	if err != nil {
		return nil, err
	}

	saved := time.Now()
	snapshot := Snapshot{
		Name:    name,
		Level:   compressed,
		Objects: editor.Len(),
		Saved:   saved.Unix(),
	}
	data, err := snapshot.Encode()
	if err != nil {
		return nil, err
	}

	hash := Hash(text)
	if err := l.store.Set(ctx, snapshotKey(hash), data); err != nil {
		return nil, fmt.Errorf("could not write snapshot %s: %w", hash, err)
	}

	entry, err := l.catalog.Put(ctx, name, hash, snapshot.Objects, saved)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("name", name).
		Str("hash", hash).
		Int("objects", snapshot.Objects).
		Msg("saved level")
	return entry, nil
}

// Load returns the level last saved under name. ErrMissing means either the
// name is unknown or its snapshot is gone from the store.
func (l *Library) Load(ctx context.Context, name string) (*level.Editor, error) {
	entry, err := l.catalog.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	data, err := l.store.Get(ctx, snapshotKey(entry.Hash))
	if err != nil {
		return nil, err
	}

	snapshot, err := DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}

	editor, err := level.Parse(snapshot.Level)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("name", name).
		Str("hash", entry.Hash).
		Msg("loaded level")
	return editor, nil
}

func (l *Library) List(ctx context.Context) ([]Entry, error) {
	return l.catalog.List(ctx)
}
