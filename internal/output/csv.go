package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// CSVGraphWriter writes commit graph reports as CSV.
type CSVGraphWriter struct{}

// Write outputs the commit graph report as CSV, one row per commit.
// Parents and refs are space- and comma-separated respectively.
func (w *CSVGraphWriter) Write(report *GraphReport, options OutputOptions) error {
	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	// Write header
	headers := []string{"SHA", "Parents", "Author", "Email", "Date", "Refs", "Subject"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	// Write data
	for _, c := range report.Commits {
		row := []string{
			c.ID,
			strings.Join(c.ParentIDs, " "),
			c.AuthorName,
			c.AuthorEmail,
			formatTimestamp(c.Timestamp),
			refNames(c.Refs),
			subject(c.Message),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// CSVChangesWriter writes file change reports as CSV.
type CSVChangesWriter struct{}

// Write outputs the file change report as CSV.
func (w *CSVChangesWriter) Write(report *ChangesReport, options OutputOptions) error {
	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if err := writer.Write([]string{"Status", "Path", "OldPath"}); err != nil {
		return err
	}

	for _, c := range report.Changes {
		if err := writer.Write([]string{c.Kind.String(), c.Path, c.OldPath}); err != nil {
			return fmt.Errorf("write %s: %w", c.Path, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func createCSVWriter(outputPath string) (*csv.Writer, *os.File, error) {
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return nil, nil, err
		}
		return csv.NewWriter(file), file, nil
	}
	return csv.NewWriter(os.Stdout), nil, nil
}
