package roster

import (
    "fmt"
    "io"
    "strings"

    "github.com/xuri/excelize/v2"
)

// Parse reads student names from an uploaded roster spreadsheet. The first
// sheet is used; the first row is treated as a header and skipped; names come
// from the first column. Blank cells are ignored.
func Parse(r io.Reader) ([]string, error) {
    f, err := excelize.OpenReader(r)
    if err != nil {
        return nil, fmt.Errorf("failed to open roster: %w", err)
    }
    defer f.Close()

    sheets := f.GetSheetList()
    if len(sheets) == 0 {
        return nil, fmt.Errorf("roster has no sheets")
    }

    rows, err := f.GetRows(sheets[0])
    if err != nil {
        return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
    }

    var names []string
    for rowIndex, row := range rows {
        if rowIndex == 0 {
            continue // header
        }
        if len(row) == 0 {
            continue
        }
        name := strings.TrimSpace(row[0])
        if name == "" {
            continue
        }
        names = append(names, name)
    }
    return names, nil
}
