// Package normalize holds the pure string, path and image-role
// functions every generation step depends on. Nothing here touches the
// filesystem or the reporter.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"excel-to-astro/internal/model"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`) // Runs collapse to a single hyphen
	nonFileChars = regexp.MustCompile(`[^a-zA-Z0-9-_]`)
)

// combiningMarks is the U+0300–U+036F combining diacritical block.
var combiningMarks = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}}}

// stripMarks removes combining diacritical marks after NFD
// decomposition, so "Élan" slugs the same as "Elan".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(combiningMarks)))

// Line maps the legacy line spelling "Vinilico" onto "Vinilicos". The
// coleccion and sku sheets disagree on this value in old workbooks, so
// every comparison or emission of a line goes through here.
func Line(linea string) string {
	if linea == "Vinilico" {
		return "Vinilicos"
	}
	return linea
}

// Slugify turns free text into a lowercase, accent-stripped,
// hyphen-separated URL token. Empty input yields an empty slug.
func Slugify(text string) string {
	s := strings.ToLower(text)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FolderPath normalizes a folder value from the spreadsheet into a
// relative forward-slash path, stripping at most one leading slash.
func FolderPath(raw string) string {
	s := strings.ReplaceAll(raw, `\`, "/")
	return strings.TrimPrefix(s, "/")
}

// FolderPathAll is the variant used by the hero-slide, navmenu and
// img-sheet call sites: it strips every leading slash. The two
// variants are kept separate on purpose; do not unify them.
func FolderPathAll(raw string) string {
	s := strings.ReplaceAll(raw, `\`, "/")
	return strings.TrimLeft(s, "/")
}

// SanitizeCodigo makes a product code safe for use as a filename by
// replacing anything outside [A-Za-z0-9-_] with a hyphen.
func SanitizeCodigo(codigo string) string {
	return nonFileChars.ReplaceAllString(codigo, "-")
}

// ImageSet is the image-role classification of one SKU row: at most
// one sample path and zero or more ambient paths.
type ImageSet struct {
	Sample   string // Empty when the row contributes no sample image
	Ambiente []string
}

// ClassifyImageRole resolves a SKU row's image into its roles against
// an already-normalized folder path. A row without a filename carries
// no image at all. When a row is flagged as both sample and ambient,
// the sample is assumed to live at the canonical {codigo}.webp path
// and the row's own filename counts as the ambient shot.
func ClassifyImageRole(row model.SkuRow, folder string) ImageSet {
	if row.Filename == "" {
		return ImageSet{}
	}

	switch {
	case row.Sample == 1 && row.Ambiente == 0:
		return ImageSet{Sample: fmt.Sprintf("%s/%s", folder, row.Filename)}
	case row.Sample == 1 && row.Ambiente == 1:
		return ImageSet{
			Sample:   fmt.Sprintf("%s/%s.webp", folder, row.Codigo),
			Ambiente: []string{fmt.Sprintf("%s/%s", folder, row.Filename)},
		}
	case row.Sample == 0 && row.Ambiente == 1:
		return ImageSet{Ambiente: []string{fmt.Sprintf("%s/%s", folder, row.Filename)}}
	default:
		return ImageSet{}
	}
}

// AggregateImages folds the classification of every row in a SKU group
// into one set: the first sample found wins, ambient paths append in
// row order (duplicates kept).
func AggregateImages(rows []model.SkuRow, folder string) ImageSet {
	var agg ImageSet
	for _, row := range rows {
		mapped := ClassifyImageRole(row, folder)
		if mapped.Sample != "" && agg.Sample == "" {
			agg.Sample = mapped.Sample
		}
		agg.Ambiente = append(agg.Ambiente, mapped.Ambiente...)
	}
	return agg
}
