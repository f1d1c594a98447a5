package report

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"eatz-backend/internal/auth"
	"eatz-backend/internal/catalog"
	"eatz-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var gm = models.User{ID: 1, Name: "Alex Johnson", Role: models.RoleGM}

func seededStore(t *testing.T) *catalog.Store {
	t.Helper()
	store := catalog.NewStore()
	require.NoError(t, store.SeedDemoData())
	return store
}

func TestBuildCatalogWorkbook(t *testing.T) {
	store := seededStore(t)
	menus := store.ListMenus(catalog.MenuFilter{})

	f, err := BuildCatalogWorkbook(menus, store.ListProposals(catalog.ProposalFilter{}))
	require.NoError(t, err)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	out, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer out.Close()

	assert.Equal(t, []string{MenusSheet, ProposalsSheet}, out.GetSheetList())

	rows, err := out.GetRows(MenusSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, len(menus)+1)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Total", rows[0][9])

	// Nasi Goreng Spesial: 45000 + 2250 fee + 4500 tax
	assert.Equal(t, "Nasi Goreng Spesial", rows[1][0])
	assert.Equal(t, "51750", rows[1][9])
	// Instant Coffee Sachet has no service fee: 10000 + 1000 tax
	assert.Equal(t, "11000", rows[5][9])

	// money cells carry a thousands format
	formatted, err := out.GetCellValue(MenusSheet, "J2")
	require.NoError(t, err)
	assert.Equal(t, "51,750", formatted)

	proposals, err := out.GetRows(ProposalsSheet)
	require.NoError(t, err)
	assert.Len(t, proposals, 4)
}

func buildUpload(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseMenuSheet(t *testing.T) {
	data := buildUpload(t, [][]any{
		{"Name", "Category", "Price", "Description", "Allowed Stores", "Allowed Regions"},
		{"Kopi Tubruk", "Coffee", 15000, "Traditional coffee", "CoffeeShop, DineIn", "Bandung"},
		{"", "Snack", 1},
		{"Pisang Goreng", "Snack", "cheap", "", "SnackStall"},
	})

	rows, rowErrs, err := ParseMenuSheet(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Row)
	assert.Equal(t, "Kopi Tubruk", rows[0].Form.Name)
	assert.Equal(t, []models.StoreType{models.StoreCoffeeShop, models.StoreDineIn}, rows[0].Form.AllowedStores)
	assert.Equal(t, []string{"Bandung"}, rows[0].Form.AllowedRegions)
	require.Len(t, rowErrs, 1)
	assert.Equal(t, 4, rowErrs[0].Row)

	_, _, err = ParseMenuSheet(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}

func TestParseMenuSheetReadsFormattedPrices(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Name", "Category", "Price", "Description", "Allowed Stores", "Allowed Regions"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Americano", "Coffee", 25000, "Espresso and water", "DineIn", "All"}))
	style, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "C2", "C2", style))

	shown, err := f.GetCellValue("Sheet1", "C2")
	require.NoError(t, err)
	require.Equal(t, "25,000", shown)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, rowErrs, err := ParseMenuSheet(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(25000), rows[0].Form.Price)
	assert.Equal(t, []string{"All"}, rows[0].Form.AllowedRegions)
}

func TestExportedMenusCanBeImported(t *testing.T) {
	store := seededStore(t)
	menus := store.ListMenus(catalog.MenuFilter{})

	f, err := BuildCatalogWorkbook(menus, store.ListProposals(catalog.ProposalFilter{}))
	require.NoError(t, err)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rows, rowErrs, err := ParseMenuSheet(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, len(menus))

	for i, r := range rows {
		assert.Equal(t, menus[i].Name, r.Form.Name)
		assert.Equal(t, menus[i].Price, r.Form.Price)
		assert.Equal(t, menus[i].AllowedStores, r.Form.AllowedStores)
		assert.Equal(t, menus[i].AllowedRegions, r.Form.AllowedRegions)
		assert.Equal(t, menus[i].ImageURL, r.Form.ImageURL)
	}

	fresh := catalog.NewStore()
	for _, r := range rows {
		_, err := fresh.AddMenu(gm, r.Form)
		require.NoError(t, err, r.Form.Name)
	}
	assert.Len(t, fresh.ListMenus(catalog.MenuFilter{}), len(menus))
}

func newTestApp(store *catalog.Store) *fiber.App {
	app := fiber.New()
	withGM := func(c *fiber.Ctx) error {
		c.Locals(auth.CtxUserKey, gm)
		return c.Next()
	}
	app.Get("/export", ExportCatalogHandler(store))
	app.Post("/import", withGM, ImportMenusHandler(store))
	return app
}

func TestExportCatalogHandler(t *testing.T) {
	app := newTestApp(seededStore(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/export", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, xlsxContentType, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), ".xlsx")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue(MenusSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Nasi Goreng Spesial", v)
}

func TestImportMenusHandler(t *testing.T) {
	store := catalog.NewStore()
	app := newTestApp(store)

	data := buildUpload(t, [][]any{
		{"Name", "Category", "Price", "Description", "Allowed Stores"},
		{"Kopi Tubruk", "Coffee", 15000, "Traditional coffee", "CoffeeShop"},
		{"Es Teh", "InstantBeverage", 5000, "", "DineIn"},
	})

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "menus.xlsx")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/import", &body)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out ImportResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Len(t, out.Imported, 1)
	require.Len(t, out.Errors, 1, "InstantBeverage cannot be sold in DineIn")
	assert.Equal(t, 3, out.Errors[0].Row)

	menus := store.ListMenus(catalog.MenuFilter{})
	require.Len(t, menus, 1)
	assert.True(t, menus[0].HasServiceFee)
}
