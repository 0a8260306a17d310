package bom

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/protolab/protoboard/pkg/errors"
)

// XLSXReader loads BOMs from Excel workbooks. The first sheet is read with
// the same column layout as the CSV reader: a header row of
// type,value,quantity,refs followed by one record per row.
type XLSXReader struct{}

// Format returns the format identifier.
func (r *XLSXReader) Format() string { return "xlsx" }

// Supports reports whether the filename looks like an Excel BOM.
func (r *XLSXReader) Supports(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".xlsx")
}

// Read loads the BOM at path.
func (r *XLSXReader) Read(path string) (BOM, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBOM, err, "open %s", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidBOM, "%s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBOM, err, "read sheet %s", sheets[0])
	}

	var (
		out    BOM
		header []string
	)
	for i, cells := range rows {
		if header == nil {
			header = normalizeHeader(cells)
			continue
		}
		record, err := recordFromRow(header, cells)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBOM, err, "row %d", i+1)
		}
		if record.Value == "" && record.Type == TypeUnknown {
			continue
		}
		out = append(out, record)
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ Reader = (*XLSXReader)(nil)
