package content

import (
	"io"
	"strings"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	"github.com/unidoc/unioffice/spreadsheet"
)

// spreadsheetRow is one parsed data row: the 1-based row number in the sheet
// and its cells keyed by the lowercased header of the column.
type spreadsheetRow struct {
	number int
	fields map[string]any
}

// parseSpreadsheet reads the first sheet of an xlsx workbook. The first row
// names the entry fields; empty cells and fully empty rows are skipped.
func parseSpreadsheet(file io.ReaderAt, size int64) ([]spreadsheetRow, error) {
	wb, err := spreadsheet.Read(file, size)
	if err != nil {
		return nil, entity.ErrInvalidFile
	}
	defer wb.Close()

	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return nil, entity.ErrEmptySpreadsheet
	}

	sheetRows := sheets[0].Rows()
	if len(sheetRows) < 2 {
		return nil, entity.ErrEmptySpreadsheet
	}

	var headers []string
	for _, cell := range sheetRows[0].Cells() {
		headers = append(headers, strings.ToLower(strings.TrimSpace(cell.GetString())))
	}

	var rows []spreadsheetRow
	for i, sheetRow := range sheetRows[1:] {
		fields := make(map[string]any)
		for j, cell := range sheetRow.Cells() {
			if j >= len(headers) || headers[j] == "" {
				continue
			}
			value := strings.TrimSpace(cell.GetString())
			if value == "" {
				continue
			}
			fields[headers[j]] = value
		}
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, spreadsheetRow{number: i + 2, fields: fields})
	}

	if len(rows) == 0 {
		return nil, entity.ErrEmptySpreadsheet
	}

	return rows, nil
}
