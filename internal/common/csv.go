// Package common provides the shared CSV reading and writing used by the
// pipeline, built on gocsv.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/logging"
	"github.com/hansinirajesh92/finances-tracker-dashboard/internal/models"
)

var log = logging.GetLogger()

// Delimiter is the CSV output delimiter.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadRawCSV reads a raw export into records keyed by header column name,
// preserving file order. Every row keeps whatever columns the file has; the
// normalizer decides which ones are required.
func ReadRawCSV(filePath string) ([]models.RawRecord, error) {
	log.WithField(logging.FieldFile, filePath).Info("Reading raw CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	maps, err := gocsv.CSVToMaps(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing CSV file %s: %w", filePath, err)
	}

	records := make([]models.RawRecord, len(maps))
	for i, m := range maps {
		records[i] = models.RawRecord(m)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
	).Info("Successfully read raw rows")
	return records, nil
}

// WriteTransactionsToCSV writes the primary table. The column order comes
// from the struct's csv tags.
func WriteTransactionsToCSV(transactions []models.NormalizedTransaction, csvFile string) error {
	return writeCSV(transactions, len(transactions), csvFile)
}

// WriteUnmatchedToCSV writes the unmatched review table.
func WriteUnmatchedToCSV(rows []models.UnmatchedRow, csvFile string) error {
	return writeCSV(rows, len(rows), csvFile)
}

func writeCSV(rows interface{}, count int, csvFile string) error {
	log.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: count},
	).Info("Writing CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	return nil
}

// RemoveIfExists deletes the given file when present. Used to clear a stale
// unmatched table from a previous run.
func RemoveIfExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("error removing stale file %s: %w", path, err)
	}
	log.WithField(logging.FieldFile, path).Debug("Removed stale file")
	return nil
}
