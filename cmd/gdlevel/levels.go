package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/cfoust/gdlevel/pkg/config"
	"github.com/cfoust/gdlevel/pkg/gd/level"
	"github.com/cfoust/gdlevel/pkg/store"
)

func readLevel(path string) (*level.Editor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return level.Parse(string(data))
}

func statsCommand(out io.Writer, path string) error {
	editor, err := readLevel(path)
	if err != nil {
		return err
	}

	header := editor.Header()
	channels, err := header.Colors()
	if err != nil {
		return err
	}

	used := editor.UsedGroups()
	free, err := editor.FreeGroup()
	freeText := fmt.Sprint(free)
	if err != nil {
		freeText = "none"
	}

	groups := make([]string, len(used))
	for i, id := range used {
		groups[i] = fmt.Sprint(id)
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "objects\t%d\n", editor.Len())
	fmt.Fprintf(writer, "header keys\t%d\n", header.Len())
	fmt.Fprintf(writer, "color channels\t%d\n", len(channels))
	fmt.Fprintf(writer, "groups\t%s\n", strings.Join(groups, " "))
	fmt.Fprintf(writer, "free group\t%s\n", freeText)
	return writer.Flush()
}

func openLibrary(settings *config.Config) (*store.Library, func(), error) {
	var snapshots store.Store
	cleanup := func() {}

	storeSettings := settings.Store
	switch storeSettings.Kind {
	case config.StoreKindFS:
		snapshots = store.FSStore(storeSettings.Directory)
	case config.StoreKindRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     storeSettings.Redis.Address,
			Password: storeSettings.Redis.Password,
			DB:       storeSettings.Redis.DB,
		})
		cleanup = func() { client.Close() }

		if storeSettings.TTL > 0 {
			snapshots = store.NewRedisCache(client, storeSettings.TTL)
		} else {
			snapshots = store.NewRedisStore(client)
		}
	default:
		return nil, nil, fmt.Errorf("unknown store kind %q", storeSettings.Kind)
	}

	if err := os.MkdirAll(filepath.Dir(settings.Catalog.Path), 0755); err != nil {
		cleanup()
		return nil, nil, err
	}

	catalog, err := store.OpenCatalog(settings.Catalog.Path)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("could not open catalog: %w", err)
	}

	log.Debug().
		Str("store", string(storeSettings.Kind)).
		Str("catalog", settings.Catalog.Path).
		Msg("opened library")

	return store.NewLibrary(snapshots, catalog), func() {
		catalog.Close()
		cleanup()
	}, nil
}

func saveCommand(settings *config.Config, name string, path string) error {
	editor, err := readLevel(path)
	if err != nil {
		return err
	}

	library, done, err := openLibrary(settings)
	if err != nil {
		return err
	}
	defer done()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entry, err := library.Save(ctx, name, editor)
	if err != nil {
		return err
	}

	log.Info().
		Str("name", entry.Name).
		Str("hash", entry.Hash).
		Int("objects", entry.Objects).
		Msg("saved level")
	return nil
}

func loadCommand(out io.Writer, settings *config.Config, name string, compressed bool) error {
	library, done, err := openLibrary(settings)
	if err != nil {
		return err
	}
	defer done()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	editor, err := library.Load(ctx, name)
	if err != nil {
		return fmt.Errorf("could not load %s: %w", name, err)
	}

	text, err := editor.Dump()
	if err != nil {
		return err
	}

	if compressed {
		text, err = level.Compress(text)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(out, text)
	return err
}

func listCommand(out io.Writer, settings *config.Config) error {
	library, done, err := openLibrary(settings)
	if err != nil {
		return err
	}
	defer done()

	entries, err := library.List(context.Background())
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, entry := range entries {
		fmt.Fprintf(
			writer,
			"%s\t%s\t%d\t%s\n",
			entry.Name,
			entry.Hash,
			entry.Objects,
			entry.Saved.Format(time.RFC3339),
		)
	}
	return writer.Flush()
}
