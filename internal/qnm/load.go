package qnm

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads a table from CSV with columns a, fRD, fdamp.
// Lines starting with '#' are comments. A single non-numeric header row is
// allowed before the data.
func Load(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comment = csvComment
	reader.FieldsPerRecord = csvColumns
	reader.TrimLeadingSpace = true

	var spin, ringdown, damping []float64
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
		}
		line++

		values, err := parseRecord(record)
		if err != nil {
			if line == 1 && len(spin) == 0 {
				continue // header
			}
			return nil, fmt.Errorf("%w: record %d: %w", ErrInvalidTable, line, err)
		}
		spin = append(spin, values[columnSpin])
		ringdown = append(ringdown, values[columnRingdown])
		damping = append(damping, values[columnDamping])
	}

	return New(spin, ringdown, damping)
}

// LoadFile reads a CSV table from path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open QNM table: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func parseRecord(record []string) ([csvColumns]float64, error) {
	var values [csvColumns]float64
	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return values, err
		}
		values[i] = v
	}
	return values, nil
}
