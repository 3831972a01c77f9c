package report

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrNoSheets = errors.New("workbook has no sheets")

// ReadFirstSheet returns the non-empty rows of the workbook's first sheet,
// with cells trimmed. Row 0 is the header.
func ReadFirstSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		empty := true
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
			if row[i] != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out, nil
}
