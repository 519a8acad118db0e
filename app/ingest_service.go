package app

import (
	"context"
	"os"

	"esgchat/adapters/excel"
	"esgchat/domain/grid"
	"esgchat/internal"
	"esgchat/internal/errors"
	"esgchat/ports"
)

// IngestService loads the multi-section spreadsheet export into the
// relational store: split into sections, normalize each, replace the
// derived table. Runs once at process start.
type IngestService struct {
	store ports.Store
	log   *internal.Logger

	// HeaderPredicate overrides section-header detection for alternate
	// input formats. Nil means grid.DefaultHeaderPredicate.
	HeaderPredicate grid.HeaderPredicate
}

// NewIngestService creates an ingestion service.
func NewIngestService(store ports.Store, logger *internal.Logger) *IngestService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &IngestService{store: store, log: logger.Named("ingest")}
}

// Run ingests the source file. A missing file is non-fatal: a warning is
// logged and the store is left empty.
func (s *IngestService) Run(ctx context.Context, filePath string) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		s.log.Warn("source file not found at %s, store left empty", filePath)
		return nil
	}

	s.log.Info("reading source data from %s", filePath)
	g, err := excel.NewDataReader(filePath).ReadGrid()
	if err != nil {
		return errors.Wrapf(err, "failed to read source file %s", filePath)
	}

	return s.RunGrid(ctx, g)
}

// RunGrid ingests an already-loaded grid. A section that fails to
// persist is logged and skipped; remaining sections still load.
func (s *IngestService) RunGrid(ctx context.Context, g grid.RawGrid) error {
	sections := grid.Split(g, s.HeaderPredicate)
	s.log.Info("found %d sections in source data", len(sections))

	loaded := 0
	for _, section := range sections {
		table := grid.Normalize(section)
		if table.Empty() {
			s.log.Debug("section %s normalized to an empty table, skipping", section.Name)
			continue
		}

		name := grid.DeriveTableName(section.Name)
		if err := s.store.ReplaceTable(ctx, name, table); err != nil {
			s.log.Error("failed to create table %s: %v", name, errors.WithCode(errors.CodeIngestion, err))
			continue
		}
		s.log.Info("created table %s with %d rows", name, len(table.Rows))
		loaded++
	}

	s.log.Info("ingestion complete: %d of %d sections loaded", loaded, len(sections))
	return nil
}
