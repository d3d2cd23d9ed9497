package generator

import (
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"

	"excel-to-astro/internal/model"
	"excel-to-astro/internal/normalize"
	"excel-to-astro/internal/report"
	"excel-to-astro/internal/storage"
)

// SiteData is data/site.json.
type SiteData struct {
	PageTitle         string `json:"pageTitle"`
	AnnouncementLabel string `json:"announcementLabel"`
}

// HeroSlide is one entry of data/heroSlides.json.
type HeroSlide struct {
	IndexOrder   int    `json:"indexorder"`
	Eyebrow      string `json:"eyebrow"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	SampleImage  string `json:"sampleImage"`
	AmbientImage string `json:"ambientImage"`
	Background   string `json:"background"`
	TextColor    string `json:"textColor"`
	Link         string `json:"link"`
	LinkLabel    string `json:"linkLabel"`
	SliderType   string `json:"slidertype"`
	ImageFolder  string `json:"imagefolder"`
	Collection   string `json:"collection"`
}

// ShowcaseCard is one entry of data/collectionShowcase.json.
type ShowcaseCard struct {
	CollectionShowcase string `json:"CollectionShowcase"`
	CardEyebrow        string `json:"card_eyebrow"`
	CardTitle          string `json:"card_title"`
	CardDescription    string `json:"card_description"`
	CardImage          string `json:"card_image"`
	CardLinkLabel      string `json:"card_linklabel"`
}

// NavHighlight is the mega-menu highlight block of one nav entry.
type NavHighlight struct {
	Image   string `json:"image"`
	Heading string `json:"heading"`
	Text    string `json:"text"`
	CTA     string `json:"cta"`
	URL     string `json:"url"`
}

// NavEntry is one value of data/navmenu.json, keyed by line name.
type NavEntry struct {
	Enabled   bool         `json:"enabled"`
	Highlight NavHighlight `json:"highlight"`
}

// CatalogoHeroData is data/catalogoHero.json.
type CatalogoHeroData struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
}

// FaqEntry is one entry of data/faq.json.
type FaqEntry struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// JSON writes the data-file projections into dataDir.
type JSON struct {
	dataDir  string
	store    storage.Store
	reporter *report.Reporter
}

// NewJSON creates a JSON generator writing through store.
func NewJSON(dataDir string, store storage.Store, reporter *report.Reporter) *JSON {
	return &JSON{dataDir: dataDir, store: store, reporter: reporter}
}

// GenerateAll produces every data file that has source rows. An empty
// source sheet skips its file with a warning; it never fails the run.
func (g *JSON) GenerateAll(sheets *model.Sheets) error {
	g.reporter.Info("Generating JSON data files:")

	if err := g.GenerateSiteSettings(sheets.Site); err != nil {
		return err
	}
	if err := g.GenerateHeroSlides(sheets.HeroSlides); err != nil {
		return err
	}
	if err := g.GenerateCollectionShowcase(sheets.Showcase, sheets.Coleccion); err != nil {
		return err
	}
	if err := g.GenerateCatalogoHero(sheets.CatalogoHero); err != nil {
		return err
	}
	if err := g.GenerateNavMenu(sheets.NavMenu); err != nil {
		return err
	}
	if err := g.GenerateFAQ(sheets.Faq); err != nil {
		return err
	}

	g.reporter.Success("JSON generation complete")
	return nil
}

// GenerateSiteSettings projects the single site row into site.json.
func (g *JSON) GenerateSiteSettings(rows []model.SiteRow) error {
	if len(rows) == 0 {
		g.reporter.Warning("No site data found, skipping site.json")
		return nil
	}
	return g.writeJSON("site.json", SiteData{
		PageTitle:         rows[0].PageTitle,
		AnnouncementLabel: rows[0].AnnouncementLabel,
	})
}

// GenerateHeroSlides projects the slide rows into heroSlides.json,
// sorted by index order. Rows without an order sort as 0, so they
// float to the front.
func (g *JSON) GenerateHeroSlides(rows []model.HeroSlideRow) error {
	if len(rows) == 0 {
		g.reporter.Warning("No hero slides data found, skipping heroSlides.json")
		return nil
	}

	slides := make([]HeroSlide, 0, len(rows))
	for _, row := range rows {
		sliderType := row.SliderType
		if sliderType == "" {
			sliderType = "collection"
		}
		background := row.Background
		if background == "" {
			background = "#000000"
		}
		textColor := row.TextColor
		if textColor == "" {
			textColor = "#ffffff"
		}

		slides = append(slides, HeroSlide{
			IndexOrder:   orderOf(row),
			Eyebrow:      row.Eyebrow,
			Title:        row.Title,
			Description:  row.Description,
			SampleImage:  row.SampleImage,
			AmbientImage: row.AmbientImage,
			Background:   background,
			TextColor:    textColor,
			Link:         row.Link,
			LinkLabel:    row.LinkLabel,
			SliderType:   strings.ToLower(sliderType),
			ImageFolder:  normalize.FolderPathAll(row.ImageFolder),
			Collection:   normalize.Slugify(row.Collection),
		})
	}

	sort.SliceStable(slides, func(i, j int) bool {
		return slides[i].IndexOrder < slides[j].IndexOrder
	})

	return g.writeJSON("heroSlides.json", slides)
}

// GenerateCollectionShowcase filters the showcase cards to those whose
// title names an active collection. Without any collection rows the
// filter passes everything through.
func (g *JSON) GenerateCollectionShowcase(rows []model.ShowcaseRow, collections []model.CollectionRow) error {
	if len(rows) == 0 {
		g.reporter.Warning("No collection showcase data found, skipping collectionShowcase.json")
		return nil
	}

	active := make(map[string]bool)
	if len(collections) > 0 {
		for _, col := range collections {
			if col.IsActive() {
				active[col.Coleccion] = true
			}
		}
	} else {
		for _, row := range rows {
			active[row.CardTitle] = true
		}
	}

	cards := make([]ShowcaseCard, 0, len(rows))
	for _, row := range rows {
		if !active[row.CardTitle] {
			continue
		}
		cards = append(cards, ShowcaseCard{
			CollectionShowcase: row.CollectionShowcase,
			CardEyebrow:        row.CardEyebrow,
			CardTitle:          row.CardTitle,
			CardDescription:    row.CardDescription,
			CardImage:          row.CardImage,
			CardLinkLabel:      row.CardLinkLabel,
		})
	}

	return g.writeJSON("collectionShowcase.json", cards)
}

// GenerateNavMenu projects the per-line nav rows into navmenu.json,
// keyed by line name. The highlight URL targets the slugified heading,
// falling back to the bare catalog page.
func (g *JSON) GenerateNavMenu(rows []model.NavMenuRow) error {
	if len(rows) == 0 {
		g.reporter.Warning("No navmenu data found, skipping navmenu.json")
		return nil
	}

	menu := make(map[string]NavEntry, len(rows))
	for _, row := range rows {
		if row.Linea == "" {
			continue
		}

		folder := normalize.FolderPathAll(row.HighlightImageFolder)
		imagePath := ""
		if folder != "" && row.HighlightImage != "" {
			imagePath = fmt.Sprintf("%s/%s/%s", PublicImagePrefix, folder, row.HighlightImage)
		}

		url := "/catalogo"
		if slug := normalize.Slugify(row.HighlightHeading); slug != "" {
			url = "/catalogo?coleccion=" + slug
		}

		menu[row.Linea] = NavEntry{
			Enabled: row.MegaMenu == 1,
			Highlight: NavHighlight{
				Image:   imagePath,
				Heading: row.HighlightHeading,
				Text:    row.HighlightText,
				CTA:     row.HighlightCTA,
				URL:     url,
			},
		}
	}

	return g.writeJSON("navmenu.json", menu)
}

// GenerateCatalogoHero projects the single catalog hero row into
// catalogoHero.json.
func (g *JSON) GenerateCatalogoHero(rows []model.CatalogoHeroRow) error {
	if len(rows) == 0 {
		g.reporter.Warning("No catalogo hero data found, skipping catalogoHero.json")
		return nil
	}
	return g.writeJSON("catalogoHero.json", CatalogoHeroData{
		Heading:    rows[0].Heading,
		Subheading: rows[0].Subheading,
	})
}

// GenerateFAQ projects the FAQ rows into faq.json, order preserved.
func (g *JSON) GenerateFAQ(rows []model.FaqRow) error {
	if len(rows) == 0 {
		g.reporter.Warning("No FAQ data found, skipping faq.json")
		return nil
	}

	faqs := make([]FaqEntry, 0, len(rows))
	for _, row := range rows {
		faqs = append(faqs, FaqEntry{ID: row.ID, Question: row.Question, Answer: row.Answer})
	}
	return g.writeJSON("faq.json", faqs)
}

func (g *JSON) writeJSON(filename string, data any) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filename, err)
	}
	if err := g.store.WriteFile(path.Join(g.dataDir, filename), content); err != nil {
		return err
	}
	g.reporter.Success("Generated: %s", filename)
	return nil
}

func orderOf(row model.HeroSlideRow) int {
	if row.IndexOrder == nil {
		return 0
	}
	return *row.IndexOrder
}
