package roster

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sheetWith(t *testing.T, cells map[string]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for cell, value := range cells {
		require.NoError(t, f.SetCellValue(sheet, cell, value))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParse(t *testing.T) {
	buf := sheetWith(t, map[string]string{
		"A1": "Name", // header
		"A2": "Zoe",
		"A3": "  Adam  ",
		"A5": "Mia",
		"B2": "ignored column",
	})

	names, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zoe", "Adam", "Mia"}, names)
}

func TestParseHeaderOnly(t *testing.T) {
	buf := sheetWith(t, map[string]string{"A1": "Name"})

	names, err := Parse(buf)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestParseNotASpreadsheet(t *testing.T) {
	_, err := Parse(strings.NewReader("definitely,not,xlsx"))
	assert.Error(t, err)
}
