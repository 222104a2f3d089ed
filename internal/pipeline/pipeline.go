// Package pipeline drives a full ETL run: read every configured source,
// normalize every row, sort, number, and emit the output tables. Processing
// is strictly sequential (sources in configured order, rows in file order)
// and fail-fast: any structural error aborts the run before the primary
// table is written.
package pipeline

import (
	"fmt"
	"sort"

	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/common"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/config"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/etlerror"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/fileutils"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/logging"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/models"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/normalizer"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/rules"
)

// Summary reports the row counts of a completed run.
type Summary struct {
	Total     int
	Unmatched int
	PerSource map[string]int
}

// Pipeline owns the accumulating collections of one run. A Pipeline value is
// single-use; build one per run.
type Pipeline struct {
	cfg    *config.Config
	norm   *normalizer.Normalizer
	logger logging.Logger
}

// New creates a pipeline over an explicit configuration and ruleset.
func New(cfg *config.Config, rs *rules.Ruleset, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Pipeline{
		cfg:    cfg,
		norm:   normalizer.New(rs),
		logger: logger,
	}
}

// Run executes the whole pipeline and returns the row counts. On error
// nothing has been written: source files are verified and all rows
// normalized before any output is produced.
func (p *Pipeline) Run() (*Summary, error) {
	summary := &Summary{PerSource: make(map[string]int)}

	var transactions []models.NormalizedTransaction
	var unmatched []models.UnmatchedRow

	for _, src := range p.cfg.ResolvedSources() {
		if !fileutils.FileExists(src.Path) {
			return nil, &etlerror.SourceNotFoundError{Path: src.Path, AccountID: src.AccountID}
		}

		records, err := common.ReadRawCSV(src.Path)
		if err != nil {
			return nil, err
		}

		for i, record := range records {
			tx, err := p.norm.Normalize(src.Kind, src.AccountID, record)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: %w", src.Path, i+1, err)
			}

			// Uncategorized rows go to the review table as well; they are
			// never dropped from the primary output.
			if tx.IsUncategorized() {
				unmatched = append(unmatched, models.NewUnmatchedRow(src.Path, tx))
			}
			transactions = append(transactions, tx)
		}

		summary.PerSource[src.AccountID] = len(records)
		p.logger.WithFields(
			logging.Field{Key: logging.FieldSource, Value: src.Path},
			logging.Field{Key: logging.FieldAccount, Value: src.AccountID},
			logging.Field{Key: logging.FieldCount, Value: len(records)},
		).Info("Normalized source")
	}

	sortTransactions(transactions)
	assignIDs(transactions)

	summary.Total = len(transactions)
	summary.Unmatched = len(unmatched)

	if err := fileutils.EnsureDirectoryExists(p.cfg.Data.OutDir); err != nil {
		return nil, err
	}

	if err := common.WriteTransactionsToCSV(transactions, p.cfg.OutputPath()); err != nil {
		return nil, err
	}

	if len(unmatched) > 0 {
		if err := common.WriteUnmatchedToCSV(unmatched, p.cfg.UnmatchedPath()); err != nil {
			return nil, err
		}
		p.logger.WithFields(
			logging.Field{Key: logging.FieldOutputFile, Value: p.cfg.UnmatchedPath()},
			logging.Field{Key: logging.FieldCount, Value: len(unmatched)},
		).Warn("Some rows matched no category rule")
	} else if err := common.RemoveIfExists(p.cfg.UnmatchedPath()); err != nil {
		return nil, err
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: p.cfg.OutputPath()},
		logging.Field{Key: logging.FieldCount, Value: summary.Total},
	).Info("Pipeline run completed")
	return summary, nil
}

// sortTransactions orders rows by (date, posted_date, account_id) ascending.
// The sort is stable, so rows with identical keys keep their per-source,
// per-file insertion order. ISO date strings sort lexicographically.
func sortTransactions(transactions []models.NormalizedTransaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		a, b := transactions[i], transactions[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.PostedDate != b.PostedDate {
			return a.PostedDate < b.PostedDate
		}
		return a.AccountID < b.AccountID
	})
}

// assignIDs numbers the sorted rows sequentially starting at 1. IDs are
// stable only within a single run.
func assignIDs(transactions []models.NormalizedTransaction) {
	for i := range transactions {
		transactions[i].TransactionID = fmt.Sprintf("tx_raw_%05d", i+1)
	}
}
