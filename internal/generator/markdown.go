// Package generator builds the content files for the Astro site: one
// markdown document per collection and per wallpaper code, plus the
// JSON data files. Builders are pure; writing goes through the storage
// sink so dry runs compute identical content.
package generator

import (
	"bytes"
	"fmt"
	"path"
	"time"

	"gopkg.in/yaml.v3"

	"excel-to-astro/internal/model"
	"excel-to-astro/internal/normalize"
	"excel-to-astro/internal/report"
	"excel-to-astro/internal/storage"
)

// PublicImagePrefix is where the copied images are served from; every
// image path emitted into content or data files starts with it.
const PublicImagePrefix = "/images/wallpapers"

const defaultCTALabel = "Ver Catálogo"

// HeroSlider is the hero-slider block of a collection document. The
// image is always null at generation time; the slide tooling fills it
// in later.
type HeroSlider struct {
	Enabled     bool    `yaml:"enabled"`
	Eyebrow     string  `yaml:"eyebrow"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	CTAText     string  `yaml:"cta_text"`
	CTALink     string  `yaml:"cta_link"`
	Image       *string `yaml:"image"`
}

// Showcase is the static showcase block of a collection document.
type Showcase struct {
	Featured      bool    `yaml:"featured"`
	FeaturedImage *string `yaml:"featured_image"`
	Order         int     `yaml:"order"`
}

// CollectionDocument is the front matter of one collection file.
type CollectionDocument struct {
	Title             string     `yaml:"title"`
	MetaTitle         string     `yaml:"meta_title"`
	Description       string     `yaml:"description"`
	Draft             bool       `yaml:"draft"`
	Active            bool       `yaml:"active"`
	Linea             string     `yaml:"linea"`
	Slug              string     `yaml:"slug"`
	Folder            string     `yaml:"folder"`
	HeroSlider        HeroSlider `yaml:"hero_slider"`
	Showcase          Showcase   `yaml:"showcase"`
	SkuCount          int        `yaml:"sku_count"`
	AvailableColors   []string   `yaml:"available_colors"`
	AvailablePatterns []string   `yaml:"available_patterns"`
}

// WallpaperImages holds the aggregated image paths of one wallpaper.
// Ambiente is nil (rendered as null) when no ambient shots exist.
type WallpaperImages struct {
	Sample   *string  `yaml:"sample"`
	Ambiente []string `yaml:"ambiente"`
}

// WallpaperDocument is the front matter of one wallpaper file.
type WallpaperDocument struct {
	Title         string          `yaml:"title"`
	Description   string          `yaml:"description"`
	Draft         bool            `yaml:"draft"`
	Codigo        string          `yaml:"codigo"`
	Linea         string          `yaml:"linea"`
	Coleccion     string          `yaml:"coleccion"`
	ColeccionSlug string          `yaml:"coleccion_slug"`
	Color         string          `yaml:"color"`
	Patron        *string         `yaml:"patron"`
	Habitacion    *string         `yaml:"habitacion"`
	Images        WallpaperImages `yaml:"images"`
	Nueva         bool            `yaml:"nueva"`
	Disponible    bool            `yaml:"disponible"`
	Error         bool            `yaml:"error"`
	Image         *string         `yaml:"image"`
	Date          string          `yaml:"date"`
}

// BuildCollectionDocument derives one collection's front matter from
// its row and the full SKU sheet. Matching SKU rows must agree on both
// the collection name and the normalized line.
func BuildCollectionDocument(col model.CollectionRow, skus []model.SkuRow) CollectionDocument {
	linea := normalize.Line(col.Linea)

	var matched []model.SkuRow
	for _, sku := range skus {
		if sku.Coleccion == col.Coleccion && normalize.Line(sku.Linea) == linea {
			matched = append(matched, sku)
		}
	}

	colors := distinct(matched, func(s model.SkuRow) string { return s.Color })
	patterns := distinct(matched, func(s model.SkuRow) string { return s.Patron })

	slug := normalize.Slugify(col.Coleccion)
	folder := col.ImgFolder
	if folder == "" {
		folder = col.Coleccion
	}

	title := col.HeroSliderTitle
	if title == "" {
		title = col.Coleccion
	}
	cta := col.HeroSliderCTA
	if cta == "" {
		cta = defaultCTALabel
	}

	return CollectionDocument{
		Title:       col.Coleccion,
		MetaTitle:   fmt.Sprintf("Papel Mural %s - Colección %s", col.Coleccion, linea),
		Description: fmt.Sprintf("Colección %s de papeles murales %s.", col.Coleccion, linea),
		Draft:       false,
		Active:      col.IsActive(),
		Linea:       linea,
		Slug:        slug,
		Folder:      normalize.FolderPath(folder),
		HeroSlider: HeroSlider{
			Enabled: col.VisibleHeroSlider != nil && *col.VisibleHeroSlider == 1,
			Eyebrow: linea,
			Title:   title,
			CTAText: cta,
			CTALink: "/catalogo?coleccion=" + slug,
			Image:   nil,
		},
		Showcase: Showcase{
			Featured:      false,
			FeaturedImage: nil,
			Order:         0,
		},
		SkuCount:          len(matched),
		AvailableColors:   colors,
		AvailablePatterns: patterns,
	}
}

// BuildWallpaperDocument derives one wallpaper's front matter from its
// SKU group and the aggregated images. The first row of the group is
// representative for the scalar fields. A wallpaper with no sample
// image is always flagged as an error, whatever its source flag says.
func BuildWallpaperDocument(rows []model.SkuRow, images normalize.ImageSet, now time.Time) WallpaperDocument {
	first := rows[0]
	linea := normalize.Line(first.Linea)

	description := "Papel mural " + first.Coleccion
	if first.Color != "" && first.Color != "default" {
		description += " en " + first.Color
	}
	if first.Patron != "" {
		description += " con patrón " + first.Patron
	}
	description += "."

	color := first.Color
	if color == "" {
		color = "default"
	}

	var sample *string
	if images.Sample != "" {
		sample = &images.Sample
	}
	var ambiente []string
	if len(images.Ambiente) > 0 {
		ambiente = images.Ambiente
	}

	var image *string
	switch {
	case sample != nil:
		image = sample
	case len(images.Ambiente) > 0:
		image = &images.Ambiente[0]
	}

	return WallpaperDocument{
		Title:         fmt.Sprintf("%s - SKU %s", first.Coleccion, first.Codigo),
		Description:   description,
		Draft:         first.Disponible != 1,
		Codigo:        first.Codigo,
		Linea:         linea,
		Coleccion:     first.Coleccion,
		ColeccionSlug: normalize.Slugify(first.Coleccion),
		Color:         color,
		Patron:        optional(first.Patron),
		Habitacion:    nil,
		Images:        WallpaperImages{Sample: sample, Ambiente: ambiente},
		Nueva:         first.Nueva == 1,
		Disponible:    first.Disponible == 1,
		Error:         first.Error == 1 || sample == nil,
		Image:         image,
		Date:          now.Format("2006-01-02"),
	}
}

// RenderDocument marshals front matter into a markdown document with
// an empty body.
func RenderDocument(doc any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish front matter: %w", err)
	}
	buf.WriteString("---\n\n")
	return buf.Bytes(), nil
}

// Markdown writes collection and wallpaper documents under outputDir.
type Markdown struct {
	outputDir string
	store     storage.Store
	reporter  *report.Reporter
	now       func() time.Time
}

// NewMarkdown creates a markdown generator writing through store.
func NewMarkdown(outputDir string, store storage.Store, reporter *report.Reporter) *Markdown {
	return &Markdown{outputDir: outputDir, store: store, reporter: reporter, now: time.Now}
}

// GenerateCollectionFile builds and writes one collection document at
// collections/{slug}.md.
func (g *Markdown) GenerateCollectionFile(col model.CollectionRow, skus []model.SkuRow) error {
	doc := BuildCollectionDocument(col, skus)
	content, err := RenderDocument(doc)
	if err != nil {
		return err
	}
	return g.store.WriteFile(path.Join(g.outputDir, "collections", doc.Slug+".md"), content)
}

// GenerateWallpaperFile builds and writes one wallpaper document at
// wallpapers/{collection-slug}/{sanitized-codigo}.md. The base folder
// is the raw folder resolved by the caller; it is normalized and
// prefixed here before image aggregation.
func (g *Markdown) GenerateWallpaperFile(rows []model.SkuRow, baseFolder string) error {
	folder := PublicImagePrefix + "/" + normalize.FolderPath(baseFolder)
	images := normalize.AggregateImages(rows, folder)

	doc := BuildWallpaperDocument(rows, images, g.now())
	content, err := RenderDocument(doc)
	if err != nil {
		return err
	}

	file := normalize.SanitizeCodigo(doc.Codigo) + ".md"
	return g.store.WriteFile(path.Join(g.outputDir, "wallpapers", doc.ColeccionSlug, file), content)
}

// distinct collects non-empty values in first-seen order without
// duplicates.
func distinct(rows []model.SkuRow, value func(model.SkuRow) string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, row := range rows {
		v := value(row)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// optional returns nil for empty strings so yaml renders null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
