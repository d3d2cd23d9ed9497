package generator

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"

	"excel-to-astro/internal/model"
	"excel-to-astro/internal/storage"
)

func newJSONFixture() (*JSON, afero.Fs) {
	fs := afero.NewMemMapFs()
	rep := testReporter()
	return NewJSON("data", storage.NewFileStore(fs, rep), rep), fs
}

func readJSON(t *testing.T, fs afero.Fs, name string, v any) {
	t.Helper()
	content, err := afero.ReadFile(fs, "data/"+name)
	if err != nil {
		t.Fatalf("expected data/%s: %v", name, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		t.Fatalf("data/%s is not valid JSON: %v", name, err)
	}
}

func TestGenerateSiteSettings(t *testing.T) {
	g, fs := newJSONFixture()
	err := g.GenerateSiteSettings([]model.SiteRow{{PageTitle: "Decomural", AnnouncementLabel: "Envíos gratis"}})
	if err != nil {
		t.Fatalf("GenerateSiteSettings failed: %v", err)
	}

	var got SiteData
	readJSON(t, fs, "site.json", &got)
	if got.PageTitle != "Decomural" || got.AnnouncementLabel != "Envíos gratis" {
		t.Errorf("site.json = %+v", got)
	}
}

func TestGenerateSiteSettingsEmptySkips(t *testing.T) {
	g, fs := newJSONFixture()
	if err := g.GenerateSiteSettings(nil); err != nil {
		t.Fatalf("empty sheet must not fail: %v", err)
	}
	if ok, _ := afero.Exists(fs, "data/site.json"); ok {
		t.Error("empty sheet must not produce site.json")
	}
}

func TestGenerateHeroSlidesSortAndDefaults(t *testing.T) {
	g, fs := newJSONFixture()
	three, one := 3, 1
	rows := []model.HeroSlideRow{
		{IndexOrder: &three, Title: "third", SliderType: "CUSTOM", ImageFolder: `//elan\cafe`, Collection: "Élan Café"},
		{Title: "unordered-a"}, // no indexorder: sorts as 0, floats to front
		{IndexOrder: &one, Title: "first"},
		{Title: "unordered-b"},
	}
	if err := g.GenerateHeroSlides(rows); err != nil {
		t.Fatalf("GenerateHeroSlides failed: %v", err)
	}

	var slides []HeroSlide
	readJSON(t, fs, "heroSlides.json", &slides)

	titles := make([]string, len(slides))
	for i, s := range slides {
		titles[i] = s.Title
	}
	// Stable sort: equal keys keep their sheet order.
	want := []string{"unordered-a", "unordered-b", "first", "third"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("order = %v, want %v", titles, want)
		}
	}

	last := slides[3]
	if last.SliderType != "custom" {
		t.Errorf("slidertype = %q, want lowercased", last.SliderType)
	}
	if last.ImageFolder != "elan/cafe" {
		t.Errorf("imagefolder = %q, want all leading slashes stripped", last.ImageFolder)
	}
	if last.Collection != "elan-cafe" {
		t.Errorf("collection = %q, want slugified", last.Collection)
	}

	first := slides[0]
	if first.SliderType != "collection" {
		t.Errorf("slidertype default = %q, want collection", first.SliderType)
	}
	if first.Background != "#000000" || first.TextColor != "#ffffff" {
		t.Errorf("color defaults = %q/%q", first.Background, first.TextColor)
	}
}

func TestGenerateCollectionShowcaseFiltersInactive(t *testing.T) {
	g, fs := newJSONFixture()
	zero := 0
	collections := []model.CollectionRow{
		{Coleccion: "Activa"},
		{Coleccion: "Inactiva", Active: &zero},
	}
	rows := []model.ShowcaseRow{
		{CardTitle: "Activa", CardEyebrow: "eye"},
		{CardTitle: "Inactiva"},
		{CardTitle: "Desconocida"},
	}
	if err := g.GenerateCollectionShowcase(rows, collections); err != nil {
		t.Fatalf("GenerateCollectionShowcase failed: %v", err)
	}

	var cards []ShowcaseCard
	readJSON(t, fs, "collectionShowcase.json", &cards)
	if len(cards) != 1 || cards[0].CardTitle != "Activa" {
		t.Errorf("cards = %+v, want only the active collection", cards)
	}
}

func TestGenerateCollectionShowcaseWithoutCollections(t *testing.T) {
	g, fs := newJSONFixture()
	rows := []model.ShowcaseRow{{CardTitle: "A"}, {CardTitle: "B"}}
	if err := g.GenerateCollectionShowcase(rows, nil); err != nil {
		t.Fatalf("GenerateCollectionShowcase failed: %v", err)
	}

	var cards []ShowcaseCard
	readJSON(t, fs, "collectionShowcase.json", &cards)
	if len(cards) != 2 {
		t.Errorf("without a collection sheet every card passes, got %+v", cards)
	}
}

func TestGenerateNavMenu(t *testing.T) {
	g, fs := newJSONFixture()
	rows := []model.NavMenuRow{
		{
			Linea:                "Diseño",
			MegaMenu:             1,
			HighlightImageFolder: "/elan-cafe",
			HighlightImage:       "hero.webp",
			HighlightHeading:     "Élan Café",
			HighlightText:        "texto",
			HighlightCTA:         "Ver",
		},
		{Linea: "Infantiles", MegaMenu: 0},
		{Linea: ""}, // skipped
	}
	if err := g.GenerateNavMenu(rows); err != nil {
		t.Fatalf("GenerateNavMenu failed: %v", err)
	}

	var menu map[string]NavEntry
	readJSON(t, fs, "navmenu.json", &menu)

	if len(menu) != 2 {
		t.Fatalf("menu has %d entries, want 2", len(menu))
	}
	diseno := menu["Diseño"]
	if !diseno.Enabled {
		t.Error("mega-menu=1 must enable the entry")
	}
	if diseno.Highlight.Image != "/images/wallpapers/elan-cafe/hero.webp" {
		t.Errorf("highlight image = %q", diseno.Highlight.Image)
	}
	if diseno.Highlight.URL != "/catalogo?coleccion=elan-cafe" {
		t.Errorf("highlight url = %q", diseno.Highlight.URL)
	}

	infantiles := menu["Infantiles"]
	if infantiles.Enabled {
		t.Error("mega-menu=0 must disable the entry")
	}
	if infantiles.Highlight.URL != "/catalogo" {
		t.Errorf("empty heading must fall back to /catalogo, got %q", infantiles.Highlight.URL)
	}
	if infantiles.Highlight.Image != "" {
		t.Errorf("missing folder/image must leave the path empty, got %q", infantiles.Highlight.Image)
	}
}

func TestGenerateCatalogoHeroAndFAQ(t *testing.T) {
	g, fs := newJSONFixture()

	err := g.GenerateCatalogoHero([]model.CatalogoHeroRow{{Heading: "Catálogo", Subheading: "Todo el papel mural"}})
	if err != nil {
		t.Fatalf("GenerateCatalogoHero failed: %v", err)
	}
	var hero CatalogoHeroData
	readJSON(t, fs, "catalogoHero.json", &hero)
	if hero.Heading != "Catálogo" || hero.Subheading != "Todo el papel mural" {
		t.Errorf("catalogoHero.json = %+v", hero)
	}

	err = g.GenerateFAQ([]model.FaqRow{
		{ID: "1", Question: "¿Envían?", Answer: "Sí"},
		{ID: "2", Question: "¿Plazos?", Answer: "5 días"},
	})
	if err != nil {
		t.Fatalf("GenerateFAQ failed: %v", err)
	}
	var faqs []FaqEntry
	readJSON(t, fs, "faq.json", &faqs)
	if len(faqs) != 2 || faqs[0].ID != "1" || faqs[1].Question != "¿Plazos?" {
		t.Errorf("faq.json = %+v, order must be preserved", faqs)
	}
}

func TestGenerateAllWithEmptySheetsWritesNothing(t *testing.T) {
	g, fs := newJSONFixture()
	if err := g.GenerateAll(&model.Sheets{}); err != nil {
		t.Fatalf("GenerateAll on empty sheets must not fail: %v", err)
	}
	files, _ := afero.ReadDir(fs, "data")
	if len(files) != 0 {
		t.Errorf("no data files expected, found %d", len(files))
	}
}
