package excel

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

// ReadSheet returns the header row and header-keyed data rows of one
// sheet, without schema validation or typed conversion. The inspect
// subcommands use it to look at a workbook as-is.
func ReadSheet(fs afero.Fs, path, name string) ([]string, []map[string]string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file %s: %w", path, err)
	}
	defer file.Close()

	wb, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read Excel file %s: %w", path, err)
	}
	defer wb.Close()

	found := false
	for _, n := range wb.GetSheetList() {
		if n == name {
			found = true
			break
		}
	}
	if !found {
		return nil, nil, fmt.Errorf("sheet %q not found in %s", name, path)
	}

	sheet, err := readSheet(wb, name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}
	return sheet.headers, sheet.rows, nil
}
