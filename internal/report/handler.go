package report

import (
	"fmt"
	"strings"
	"time"

	"eatz-backend/internal/auth"
	"eatz-backend/internal/catalog"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GET /api/admin/reports/catalog.xlsx
func ExportCatalogHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := BuildCatalogWorkbook(
			store.ListMenus(catalog.MenuFilter{}),
			store.ListProposals(catalog.ProposalFilter{}),
		)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not build report")
		}
		defer f.Close()

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not write report")
		}

		c.Attachment(fmt.Sprintf("catalog-%s.xlsx", time.Now().Format("20060102")))
		c.Set(fiber.HeaderContentType, xlsxContentType)
		return c.Send(buf.Bytes())
	}
}

type ImportResponse struct {
	Imported []uint     `json:"imported"`
	Errors   []RowError `json:"errors"`
}

// POST /api/admin/menus/import  (multipart, field "file")
// Each valid row becomes a menu; invalid rows are reported and skipped.
func ImportMenusHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "file upload missing: "+err.Error())
		}
		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "only .xlsx files are accepted")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not open upload")
		}
		defer file.Close()

		rows, rowErrs, err := ParseMenuSheet(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		resp := ImportResponse{Imported: []uint{}, Errors: rowErrs}
		if resp.Errors == nil {
			resp.Errors = []RowError{}
		}
		for _, r := range rows {
			m, err := store.AddMenu(user, r.Form)
			if err != nil {
				resp.Errors = append(resp.Errors, RowError{Row: r.Row, Error: err.Error()})
				continue
			}
			resp.Imported = append(resp.Imported, m.ID)
		}

		return c.JSON(resp)
	}
}
