package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/pathdash/internal/config"
	"github.com/abhisek/pathdash/internal/course"
	"github.com/abhisek/pathdash/internal/dataset"
	"github.com/abhisek/pathdash/internal/store"
)

// openStore opens the SQLite store at the configured path.
func openStore(cfg config.Config) (*store.Store, string, error) {
	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, "", fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, "", fmt.Errorf("open store: %w", err)
	}
	return st, dbPath, nil
}

// sourceChain builds the dataset lookup order: data file, then the
// imported database, then the built-in table.
func sourceChain(cfg config.Config, st *store.Store, dbPath string) dataset.Chain {
	var chain dataset.Chain
	if cfg.DataFile != "" {
		chain = append(chain, dataset.File{Path: cfg.DataFile})
	}
	if st != nil {
		chain = append(chain, dataset.Database{Repo: st.DatasetRepo(), Path: dbPath})
	}
	return append(chain, dataset.Builtin())
}

// loadDataset resolves the dataset for one-shot commands. The returned
// close func releases the store.
func loadDataset(ctx context.Context, cfg config.Config) (*course.Dataset, dataset.Source, func(), error) {
	st, dbPath, err := openStore(cfg)
	if err != nil {
		return nil, nil, func() {}, err
	}
	closeFn := func() { st.Close() }

	ds, src, err := sourceChain(cfg, st, dbPath).Resolve(ctx)
	if err != nil {
		closeFn()
		return nil, nil, func() {}, err
	}
	return ds, src, closeFn, nil
}
