package model

// The spreadsheet is the only data source for a run. Each sheet maps to
// one record type below; rows are read once at load time and never
// mutated afterwards. Optional columns whose absence means something
// different from zero (Active, visible_HeroSlider, indexorder) are
// pointer-typed so the builders can tell "missing" from "0".

// CollectionRow is one row of the "coleccion" sheet: a named grouping
// of wallpapers within a product line.
type CollectionRow struct {
	Linea             string // Product line ("Diseño", "Personalizados", "Infantiles", "Vinilicos"; legacy "Vinilico")
	Coleccion         string // Collection name, unique within the sheet; join key against SKU rows
	ImgFolder         string // Source image folder, relative to the images root
	VisibleHeroSlider *int   // 1 = collection appears in the homepage hero slider
	HeroSliderTitle   string
	HeroSliderCTA     string
	Active            *int // nil or 1 = active, 0 = hidden
}

// SkuRow is one row of the "sku" sheet: a single image asset belonging
// to a product code. Several rows may share one Codigo.
type SkuRow struct {
	Codigo     string // Product code; rows without one are discarded at load
	Linea      string
	Coleccion  string
	Filename   string // Image filename; empty means the row carries no image
	Folder     string // Optional per-row folder override
	Color      string
	Patron     string
	Marca      string
	Sample     int // 1 = this image is the product's sample shot
	Ambiente   int // 1 = this image is an ambient/lifestyle shot
	Disponible int // 1 = product is available for sale
	Nueva      int // 1 = product is flagged as new
	Error      int // 1 = row is known-bad upstream
}

// HeroSlideRow is one row of the "IndexheroSlides" sheet.
type HeroSlideRow struct {
	IndexOrder   *int // Explicit slide ordering; missing sorts as 0
	Eyebrow      string
	Title        string
	Description  string
	SampleImage  string
	AmbientImage string
	Background   string
	TextColor    string
	Link         string
	LinkLabel    string
	SliderType   string // Defaults to "collection" when empty
	ImageFolder  string
	Collection   string // Collection name reference, slugified on output
}

// ShowcaseRow is one row of the "CollectionShowcase" sheet.
type ShowcaseRow struct {
	CollectionShowcase string
	CardEyebrow        string
	CardTitle          string // Matched against collection names for the active filter
	CardDescription    string
	CardImage          string
	CardLinkLabel      string
}

// NavMenuRow is one row of the "navmenu" sheet: per-line navigation
// config plus the optional mega-menu highlight block.
type NavMenuRow struct {
	Linea                string
	MegaMenu             int // 1 = mega menu enabled for this line
	HighlightImageFolder string
	HighlightImage       string
	HighlightHeading     string
	HighlightText        string
	HighlightCTA         string
}

// SiteRow is the single row of the "site" sheet.
type SiteRow struct {
	PageTitle         string
	AnnouncementLabel string
}

// CatalogoHeroRow is the single row of the "catalogohero" sheet.
type CatalogoHeroRow struct {
	Heading    string
	Subheading string
}

// FaqRow is one row of the "faq" sheet.
type FaqRow struct {
	ID       string
	Question string
	Answer   string
}

// ImgRow is one row of the "img" sheet: a general-purpose image to copy
// that is not tied to a collection folder.
type ImgRow struct {
	ImgFolder string
	Filename  string
}

// Sheets holds every loaded sheet for one run. Optional sheets that are
// absent from the workbook load as empty slices.
type Sheets struct {
	Site         []SiteRow
	Coleccion    []CollectionRow
	Sku          []SkuRow
	HeroSlides   []HeroSlideRow
	Showcase     []ShowcaseRow
	CatalogoHero []CatalogoHeroRow
	NavMenu      []NavMenuRow
	Faq          []FaqRow
	Img          []ImgRow
}

// IsActive reports whether the collection should be treated as active.
// The Active column is optional; only an explicit 0 deactivates.
func (c CollectionRow) IsActive() bool {
	return c.Active == nil || *c.Active == 1
}

// Options are the resolved CLI options for one run.
type Options struct {
	ExcelPath       string
	OutputDir       string // Content output root (collections/, wallpapers/)
	ImagesDir       string // Public images output root
	DataDir         string // JSON data output root
	SourceDir       string // Root the spreadsheet's image folders are relative to
	DryRun          bool
	CopyImages      bool
	Overwrite       bool
	CollectionsOnly bool
	WallpapersOnly  bool
	Verbose         bool
	Clean           bool
}
