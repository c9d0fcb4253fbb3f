package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"fitgenius/internal/models"
)

const exportDateLayout = "2006-01-02"

var ExportCSVHeaders = []string{
	"Date",
	"Weight (lbs)",
	"Body fat (%)",
	"Waist (in)",
	"Neck (in)",
	"Hip (in)",
	"Notes",
}

var (
	ErrExportFromDateInvalid = errors.New("export invalid from date")
	ErrExportToDateInvalid   = errors.New("export invalid to date")
	ErrExportRangeInvalid    = errors.New("export invalid range")
)

func ParseExportRange(rawFrom string, rawTo string) (*time.Time, *time.Time, error) {
	fromRaw := strings.TrimSpace(rawFrom)
	toRaw := strings.TrimSpace(rawTo)

	var from *time.Time
	if fromRaw != "" {
		parsedFrom, err := time.ParseInLocation(exportDateLayout, fromRaw, time.UTC)
		if err != nil {
			return nil, nil, ErrExportFromDateInvalid
		}
		from = &parsedFrom
	}

	var to *time.Time
	if toRaw != "" {
		parsedTo, err := time.ParseInLocation(exportDateLayout, toRaw, time.UTC)
		if err != nil {
			return nil, nil, ErrExportToDateInvalid
		}
		to = &parsedTo
	}

	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, ErrExportRangeInvalid
	}
	return from, to, nil
}

// BuildEntriesCSV renders progress entries oldest-first so the export reads
// as a timeline.
func BuildEntriesCSV(entries []models.ProgressEntry) ([]byte, error) {
	sorted := make([]models.ProgressEntry, 0, len(entries))
	sorted = append(sorted, entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	if err := writer.Write(ExportCSVHeaders); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, entry := range sorted {
		record := []string{
			entry.Date.Format(exportDateLayout),
			strconv.FormatFloat(entry.WeightLbs, 'f', 1, 64),
			formatOptionalFloat(entry.BodyFatPct),
			formatOptionalFloat(entry.WaistInches),
			formatOptionalFloat(entry.NeckInches),
			formatOptionalFloat(entry.HipInches),
			entry.Notes,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buffer.Bytes(), nil
}

func formatOptionalFloat(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', 1, 64)
}

// FilterEntriesByRange keeps entries within the inclusive [from, to] window;
// nil bounds are open.
func FilterEntriesByRange(entries []models.ProgressEntry, from *time.Time, to *time.Time) []models.ProgressEntry {
	filtered := make([]models.ProgressEntry, 0, len(entries))
	for _, entry := range entries {
		if from != nil && entry.Date.Before(*from) {
			continue
		}
		if to != nil && entry.Date.After(*to) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}
