package bom

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/protolab/protoboard/pkg/errors"
)

// CSVReader loads BOMs from comma-separated files with a header row of
// type,value,quantity,refs. Refs are semicolon-separated; quantity defaults
// to 1 when the column is empty.
type CSVReader struct{}

// Format returns the format identifier.
func (r *CSVReader) Format() string { return "csv" }

// Supports reports whether the filename looks like a CSV BOM.
func (r *CSVReader) Supports(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".csv")
}

// Read loads the BOM at path.
func (r *CSVReader) Read(path string) (BOM, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidBOM, err, "open %s", path)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	var (
		out    BOM
		header []string
		row    int
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBOM, err, "row %d", row)
		}
		row++

		if header == nil {
			header = normalizeHeader(rec)
			continue
		}
		record, err := recordFromRow(header, rec)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBOM, err, "row %d", row)
		}
		if record.Value == "" && record.Type == TypeUnknown {
			continue // blank line
		}
		out = append(out, record)
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// normalizeHeader lowercases and trims the header cells.
func normalizeHeader(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ToLower(strings.TrimSpace(c))
	}
	return out
}

// recordFromRow assembles a ComponentRecord from a data row using the
// header for column lookup. Shared by the CSV and XLSX readers.
func recordFromRow(header, cells []string) (ComponentRecord, error) {
	get := func(name string) string {
		for i, h := range header {
			if h == name && i < len(cells) {
				return strings.TrimSpace(cells[i])
			}
		}
		return ""
	}

	record := ComponentRecord{
		Type:     ParseType(get("type")),
		Value:    get("value"),
		Quantity: 1,
	}

	if q := get("quantity"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			return ComponentRecord{}, errors.Wrap(errors.ErrCodeInvalidBOM, err, "quantity %q", q)
		}
		record.Quantity = n
	}

	if refs := get("refs"); refs != "" {
		for _, ref := range strings.Split(refs, ";") {
			if ref = strings.TrimSpace(ref); ref != "" {
				record.Refs = append(record.Refs, ref)
			}
		}
	}

	return record, nil
}

var _ Reader = (*CSVReader)(nil)
