package report

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// CSVWriter writes rows to a CSV file in one synchronous save.
type CSVWriter struct{}

// Write writes a header row followed by one row per record to path.
func (CSVWriter) Write(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
