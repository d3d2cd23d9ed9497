// Package excel loads the workbook and converts each named sheet into
// the typed rows the generators consume. The first row of every sheet
// is the header; cells are matched to fields by column name, with the
// alternate spellings some workbooks carry.
package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"

	"excel-to-astro/internal/model"
	"excel-to-astro/internal/report"
)

// sheetNames lists every sheet a workbook may carry, in load order.
var sheetNames = []string{
	"site", "coleccion", "sku", "IndexheroSlides",
	"CollectionShowcase", "catalogohero", "navmenu", "faq", "img",
}

// requiredSheets must exist in the workbook; their absence is fatal.
var requiredSheets = map[string]bool{"coleccion": true, "sku": true}

// requiredColumns must appear in the header of a non-empty sheet.
var requiredColumns = map[string][]string{
	"coleccion": {"Linea", "Coleccion", "imgfolder"},
	"sku":       {"codigo", "linea", "coleccion", "filename"},
}

// rawSheet is one sheet decoded to header-keyed cell maps, before
// typed conversion.
type rawSheet struct {
	headers []string
	rows    []map[string]string
}

// Load opens the workbook at path, validates its schema and returns
// every sheet as typed rows. Missing optional sheets come back empty
// with a warning; a missing required sheet or column is a fatal error.
func Load(fs afero.Fs, path string, reporter *report.Reporter) (*model.Sheets, error) {
	reporter.Info("Loading Excel file: %s", path)

	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file %s: %w", path, err)
	}
	defer file.Close()

	wb, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel file %s: %w", path, err)
	}
	defer wb.Close()

	raw := make(map[string]rawSheet, len(sheetNames))
	present := make(map[string]bool)
	for _, name := range wb.GetSheetList() {
		present[name] = true
	}

	for _, name := range sheetNames {
		if !present[name] {
			if requiredSheets[name] {
				return nil, fmt.Errorf("required sheet %q not found in Excel file", name)
			}
			reporter.Warning("Optional sheet %q not found", name)
			raw[name] = rawSheet{}
			continue
		}

		sheet, err := readSheet(wb, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		raw[name] = sheet
		reporter.Debug("Loaded sheet %q: %d rows", name, len(sheet.rows))
	}

	if err := validate(raw, reporter); err != nil {
		return nil, err
	}
	reporter.Success("Excel file loaded successfully")

	return convert(raw, reporter), nil
}

// readSheet decodes one worksheet into header-keyed rows. Rows whose
// cells are all empty are skipped.
func readSheet(wb *excelize.File, name string) (rawSheet, error) {
	rows, err := wb.GetRows(name)
	if err != nil {
		return rawSheet{}, err
	}
	if len(rows) == 0 {
		return rawSheet{}, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	sheet := rawSheet{headers: headers}
	for _, cells := range rows[1:] {
		row := make(map[string]string, len(headers))
		empty := true
		for i, header := range headers {
			if header == "" {
				continue
			}
			var value string
			if i < len(cells) {
				value = strings.TrimSpace(cells[i])
			}
			if value != "" {
				empty = false
			}
			row[header] = value
		}
		if !empty {
			sheet.rows = append(sheet.rows, row)
		}
	}
	return sheet, nil
}

// validate enforces the schema: required columns on non-empty required
// sheets are fatal, per-row problems are warnings.
func validate(raw map[string]rawSheet, reporter *report.Reporter) error {
	reporter.Info("Validating Excel schema...")

	var missing []string
	for sheetName, cols := range requiredColumns {
		sheet := raw[sheetName]
		if len(sheet.rows) == 0 {
			reporter.Warning("[%s] Sheet is empty", sheetName)
			continue
		}
		have := make(map[string]bool, len(sheet.headers))
		for _, h := range sheet.headers {
			have[h] = true
		}
		for _, col := range cols {
			if !have[col] {
				missing = append(missing, fmt.Sprintf("[%s] missing required column: %s", sheetName, col))
			}
		}
	}
	if len(missing) > 0 {
		for _, m := range missing {
			reporter.Error("%s", m)
		}
		return fmt.Errorf("schema validation failed: %s", strings.Join(missing, "; "))
	}

	for i, row := range raw["sku"].rows {
		if row["codigo"] == "" {
			reporter.Warning("[sku] Row %d: Missing SKU code", i+2)
		}
		if v := row["disponible"]; v != "" && v != "0" && v != "1" {
			reporter.Warning("[sku] Row %d: Invalid 'disponible' value (expected 0 or 1)", i+2)
		}
	}
	for i, row := range raw["coleccion"].rows {
		if row["Coleccion"] == "" {
			reporter.Warning("[coleccion] Row %d: Missing collection name", i+2)
		}
	}

	reporter.Success("Schema validation passed")
	return nil
}

// convert maps the raw sheets onto typed records. SKU rows without a
// codigo are discarded here (already warned about during validation).
func convert(raw map[string]rawSheet, reporter *report.Reporter) *model.Sheets {
	sheets := &model.Sheets{}

	for _, row := range raw["site"].rows {
		sheets.Site = append(sheets.Site, model.SiteRow{
			PageTitle:         cell(row, "page_tittle", "page_title"),
			AnnouncementLabel: cell(row, "Announcement_label", "announcement_label"),
		})
	}

	for _, row := range raw["coleccion"].rows {
		sheets.Coleccion = append(sheets.Coleccion, model.CollectionRow{
			Linea:             cell(row, "Linea"),
			Coleccion:         cell(row, "Coleccion"),
			ImgFolder:         cell(row, "imgfolder"),
			VisibleHeroSlider: intPtr(row, "visible_HeroSlider"),
			HeroSliderTitle:   cell(row, "HeroSliderTitle"),
			HeroSliderCTA:     cell(row, "HeroSliderCTA"),
			Active:            intPtr(row, "Active"),
		})
	}

	for _, row := range raw["sku"].rows {
		codigo := cell(row, "codigo")
		if codigo == "" {
			continue
		}
		sheets.Sku = append(sheets.Sku, model.SkuRow{
			Codigo:     codigo,
			Linea:      cell(row, "linea"),
			Coleccion:  cell(row, "coleccion"),
			Filename:   cell(row, "filename"),
			Folder:     cell(row, "folder"),
			Color:      cell(row, "color"),
			Patron:     cell(row, "patron"),
			Marca:      cell(row, "marca"),
			Sample:     intCell(row, "sample"),
			Ambiente:   intCell(row, "ambiente"),
			Disponible: intCell(row, "disponible"),
			Nueva:      intCell(row, "nueva"),
			Error:      intCell(row, "error"),
		})
	}

	for _, row := range raw["IndexheroSlides"].rows {
		sheets.HeroSlides = append(sheets.HeroSlides, model.HeroSlideRow{
			IndexOrder:   intPtr(row, "indexorder"),
			Eyebrow:      cell(row, "eyebrow"),
			Title:        cell(row, "title"),
			Description:  cell(row, "description"),
			SampleImage:  cell(row, "sampleImage"),
			AmbientImage: cell(row, "ambientImage"),
			Background:   cell(row, "background"),
			TextColor:    cell(row, "textColor"),
			Link:         cell(row, "link"),
			LinkLabel:    cell(row, "linkLabel"),
			SliderType:   cell(row, "slidertype"),
			ImageFolder:  cell(row, "Imagefolder", "imagefolder"),
			Collection:   cell(row, "collection"),
		})
	}

	for _, row := range raw["CollectionShowcase"].rows {
		sheets.Showcase = append(sheets.Showcase, model.ShowcaseRow{
			CollectionShowcase: cell(row, "CollectionShowcase"),
			CardEyebrow:        cell(row, "card_eyebrow"),
			CardTitle:          cell(row, "card_title"),
			CardDescription:    cell(row, "card_description"),
			CardImage:          cell(row, "card_image"),
			CardLinkLabel:      cell(row, "card_linklabel"),
		})
	}

	for _, row := range raw["catalogohero"].rows {
		sheets.CatalogoHero = append(sheets.CatalogoHero, model.CatalogoHeroRow{
			Heading:    cell(row, "heading"),
			Subheading: cell(row, "subheading"),
		})
	}

	for _, row := range raw["navmenu"].rows {
		sheets.NavMenu = append(sheets.NavMenu, model.NavMenuRow{
			Linea:                cell(row, "Linea", "linea", "label"),
			MegaMenu:             intCell(row, "mega-menu"),
			HighlightImageFolder: cell(row, "mega-highlight-image-folder"),
			HighlightImage:       cell(row, "mega-highlight-image"),
			HighlightHeading:     cell(row, "mega-highlight-heading"),
			HighlightText:        cell(row, "mega-highlight-text"),
			HighlightCTA:         cell(row, "mega-highlight-cta"),
		})
	}

	for _, row := range raw["faq"].rows {
		sheets.Faq = append(sheets.Faq, model.FaqRow{
			ID:       cell(row, "id"),
			Question: cell(row, "question"),
			Answer:   cell(row, "answer"),
		})
	}

	for _, row := range raw["img"].rows {
		sheets.Img = append(sheets.Img, model.ImgRow{
			ImgFolder: cell(row, "imgfolder"),
			Filename:  cell(row, "filename"),
		})
	}

	reporter.Debug("Converted sheets: %d collections, %d sku rows", len(sheets.Coleccion), len(sheets.Sku))
	return sheets
}

// cell returns the first non-empty value among the given column
// spellings.
func cell(row map[string]string, keys ...string) string {
	for _, key := range keys {
		if v := row[key]; v != "" {
			return v
		}
	}
	return ""
}

// intCell parses a numeric cell, treating empty or malformed values as
// 0. Excel sometimes renders integers as "1.0"; the float parse covers
// that.
func intCell(row map[string]string, key string) int {
	v := row[key]
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	return 0
}

// intPtr is intCell for columns where absence matters: nil when the
// cell is empty or missing.
func intPtr(row map[string]string, key string) *int {
	if row[key] == "" {
		return nil
	}
	n := intCell(row, key)
	return &n
}
