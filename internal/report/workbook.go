package report

import (
	"fmt"
	"strings"

	"eatz-backend/internal/catalog"
	"eatz-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	MenusSheet     = "Menus"
	ProposalsSheet = "Proposals"

	// numFmtThousands is the built-in "#,##0" format.
	numFmtThousands = 3
)

var (
	// The first seven columns match the import layout so an exported sheet
	// can be edited and uploaded again. The rest are derived and ignored
	// on import.
	menuHeaders = []any{
		"Name", "Category", "Price", "Description", "Allowed Stores",
		"Allowed Regions", "Image URL",
		"Service Fee", "Tax", "Total", "ID", "Source Proposal",
	}
	proposalHeaders = []any{
		"ID", "Menu Name", "Status", "Category", "Price", "Proposer",
		"Region", "RM Notes", "GM Comment", "Menu ID",
	}
)

type sheetLayout struct {
	name    string
	headers []any
	rows    [][]any
	// money columns, as letters
	moneyCols []string
}

// BuildCatalogWorkbook renders menus and proposals into one workbook with a
// sheet each. Money columns hold the rounded customer-facing amounts.
func BuildCatalogWorkbook(menus []models.Menu, proposals []models.Proposal) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", MenusSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(ProposalsSheet); err != nil {
		f.Close()
		return nil, err
	}

	menuRows := make([][]any, 0, len(menus))
	for _, m := range menus {
		b := catalog.BreakdownFor(m)
		menuRows = append(menuRows, []any{
			m.Name,
			string(m.Category),
			m.Price,
			m.Description,
			joinStores(m.AllowedStores),
			strings.Join(m.AllowedRegions, ", "),
			m.ImageURL,
			b.ServiceFee.Round(0).IntPart(),
			b.Tax.Round(0).IntPart(),
			b.RoundedTotal(),
			m.ID,
			optionalID(m.SourceProposalID),
		})
	}

	proposalRows := make([][]any, 0, len(proposals))
	for _, p := range proposals {
		comment := ""
		if p.GMComment != nil {
			comment = *p.GMComment
		}
		proposalRows = append(proposalRows, []any{
			p.ID,
			p.MenuName,
			string(p.Status),
			string(p.Category),
			p.Price,
			p.Proposer.Name,
			p.Proposer.Region,
			p.RMNotes,
			comment,
			optionalID(p.MenuID),
		})
	}

	layouts := []sheetLayout{
		{name: MenusSheet, headers: menuHeaders, rows: menuRows, moneyCols: []string{"C", "H", "I", "J"}},
		{name: ProposalsSheet, headers: proposalHeaders, rows: proposalRows, moneyCols: []string{"E"}},
	}
	for _, l := range layouts {
		if err := writeSheet(f, l); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func writeSheet(f *excelize.File, l sheetLayout) error {
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtThousands})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(l.name, "A1", &l.headers); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(l.headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(l.name, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, row := range l.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(l.name, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", l.name, i+2, err)
		}
	}

	if len(l.rows) > 0 {
		lastRow := len(l.rows) + 1
		for _, col := range l.moneyCols {
			if err := f.SetCellStyle(l.name, col+"2", fmt.Sprintf("%s%d", col, lastRow), moneyStyle); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(l.name, "A", "B", 28)
}

func joinStores(stores []models.StoreType) string {
	parts := make([]string, len(stores))
	for i, s := range stores {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func optionalID(id *uint) any {
	if id == nil {
		return ""
	}
	return *id
}
