package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"eatz-backend/internal/catalog"
	"eatz-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

// Import columns, in order: Name, Category, Price, Description,
// Allowed Stores, Allowed Regions, Image URL. List cells are comma separated
// and any further columns are ignored, so the Menus sheet of an export can be
// uploaded as is.
const (
	colName = iota
	colCategory
	colPrice
	colDescription
	colStores
	colRegions
	colImageURL
)

type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type ImportRow struct {
	Row  int
	Form catalog.MenuForm
}

// ParseMenuSheet reads menu rows from the first sheet of an xlsx file. Cells
// are read raw, so number formats such as "#,##0" do not leak into prices. A
// first row whose first cell says "name" is treated as a header. Rows that
// cannot be parsed are reported and skipped; business validation is left to
// the store.
func ParseMenuSheet(r io.Reader) ([]ImportRow, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	start := 0
	if len(rows) > 0 && len(rows[0]) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), "name") {
		start = 1
	}

	var (
		parsed  []ImportRow
		rowErrs []RowError
	)
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if strings.TrimSpace(cell(row, colName)) == "" {
			continue
		}

		price, err := strconv.ParseInt(strings.TrimSpace(cell(row, colPrice)), 10, 64)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: i + 1, Error: "price must be a whole number"})
			continue
		}

		var stores []models.StoreType
		for _, s := range splitList(cell(row, colStores)) {
			stores = append(stores, models.StoreType(s))
		}

		parsed = append(parsed, ImportRow{
			Row: i + 1,
			Form: catalog.MenuForm{
				Name:           strings.TrimSpace(cell(row, colName)),
				Category:       models.MenuCategory(strings.TrimSpace(cell(row, colCategory))),
				Price:          price,
				Description:    strings.TrimSpace(cell(row, colDescription)),
				AllowedStores:  stores,
				AllowedRegions: splitList(cell(row, colRegions)),
				ImageURL:       strings.TrimSpace(cell(row, colImageURL)),
			},
		})
	}

	return parsed, rowErrs, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
