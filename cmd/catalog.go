package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/desertthunder/jukebox/internal/formatter"
	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/repositories"
	"github.com/desertthunder/jukebox/internal/shared"
	"github.com/urfave/cli/v3"
)

// CatalogList prints the track catalog, from the server or from the local
// snapshot cache when --cached is set.
func (r *Runner) CatalogList(ctx context.Context, cmd *cli.Command) error {
	var catalog models.Catalog
	var err error

	if cmd.Bool("cached") {
		catalog, err = r.loadCachedCatalog()
		if err != nil {
			return err
		}
	} else {
		catalog, err = r.svc.Catalog(ctx)
		if err != nil {
			return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
		}
		r.persistCatalog(catalog)
	}

	if cmd.Bool("json") {
		return r.writeJSON(catalog, true)
	}

	hashes := make([]string, 0, catalog.Len())
	for hash := range catalog {
		hashes = append(hashes, hash)
	}
	sort.Slice(hashes, func(i, j int) bool {
		ti, _ := catalog.Get(hashes[i])
		tj, _ := catalog.Get(hashes[j])
		if ti.Name == tj.Name {
			return hashes[i] < hashes[j]
		}
		return ti.Name < tj.Name
	})

	for _, hash := range hashes {
		track, _ := catalog.Get(hash)
		if err := r.writePlain("%s\n", formatter.Label(track.Name, hash, track.Duration)); err != nil {
			return err
		}
	}
	return nil
}

// loadCachedCatalog reads the last persisted snapshot without touching the network.
func (r *Runner) loadCachedCatalog() (models.Catalog, error) {
	db, err := shared.NewDatabase(r.config.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog cache: %w", err)
	}
	defer db.Close()

	cache, err := repositories.NewCatalogCache(db)
	if err != nil {
		return nil, err
	}
	return cache.Load()
}

// persistCatalog saves the snapshot for later warm starts. Best effort: a
// cache failure never fails the command.
func (r *Runner) persistCatalog(catalog models.Catalog) {
	db, err := shared.NewDatabase(r.config.Cache.Path)
	if err != nil {
		r.logger.Warn("catalog cache unavailable", "error", err)
		return
	}
	defer db.Close()

	cache, err := repositories.NewCatalogCache(db)
	if err != nil {
		r.logger.Warn("catalog cache unavailable", "error", err)
		return
	}
	if err := cache.Save(catalog); err != nil {
		r.logger.Warn("failed to persist catalog snapshot", "error", err)
	}
}
