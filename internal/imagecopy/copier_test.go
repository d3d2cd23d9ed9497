package imagecopy

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"

	"excel-to-astro/internal/model"
	"excel-to-astro/internal/report"
)

func fixture(t *testing.T) (afero.Fs, *report.Reporter, *bytes.Buffer) {
	t.Helper()
	fs := afero.NewMemMapFs()
	var buf bytes.Buffer
	return fs, report.NewWithWriter(&buf, true), &buf
}

func write(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCopyImageByteForByte(t *testing.T) {
	fs, rep, _ := fixture(t)
	write(t, fs, "src/elan-cafe/a.webp", "IMAGE-BYTES")

	c := New(fs, "src", "public", rep)
	if ok := c.CopyImage("src/elan-cafe/a.webp", "public/elan-cafe/a.webp", false); !ok {
		t.Fatal("copy reported failure")
	}
	got, err := afero.ReadFile(fs, "public/elan-cafe/a.webp")
	if err != nil {
		t.Fatalf("destination missing: %v", err)
	}
	if string(got) != "IMAGE-BYTES" {
		t.Errorf("content = %q, must be identical", got)
	}
	if c.Stats().Copied != 1 {
		t.Errorf("stats = %+v", c.Stats())
	}
}

func TestCopyImageSkipsExistingUnlessOverwrite(t *testing.T) {
	fs, rep, _ := fixture(t)
	write(t, fs, "src/a.webp", "new")
	write(t, fs, "public/a.webp", "old")

	c := New(fs, "src", "public", rep)
	c.CopyImage("src/a.webp", "public/a.webp", false)
	got, _ := afero.ReadFile(fs, "public/a.webp")
	if string(got) != "old" {
		t.Error("existing destination must be kept without --overwrite")
	}
	if c.Stats().Skipped != 1 {
		t.Errorf("stats = %+v, want one skip", c.Stats())
	}

	c.CopyImage("src/a.webp", "public/a.webp", true)
	got, _ = afero.ReadFile(fs, "public/a.webp")
	if string(got) != "new" {
		t.Error("--overwrite must replace the destination")
	}
}

func TestCopyImageMissingSourceIsWarning(t *testing.T) {
	fs, rep, _ := fixture(t)
	c := New(fs, "src", "public", rep)

	if ok := c.CopyImage("src/missing.webp", "public/missing.webp", false); ok {
		t.Error("missing source must report failure")
	}
	if c.Stats().Missing != 1 {
		t.Errorf("stats = %+v, want one missing", c.Stats())
	}
	if len(rep.Warnings()) != 1 {
		t.Errorf("warnings = %v, want exactly one", rep.Warnings())
	}
}

func TestCopyAllCollectionsAndImgSheet(t *testing.T) {
	fs, rep, _ := fixture(t)
	write(t, fs, "src/elan-cafe/a.webp", "a")
	write(t, fs, "src/elan-cafe/b.PNG", "b")
	write(t, fs, "src/elan-cafe/notes.txt", "skip me")
	write(t, fs, "src/general/logo.webp", "logo")

	collections := []model.CollectionRow{
		{Coleccion: "Élan Café", ImgFolder: "elan-cafe"},
		{Coleccion: "Dup", ImgFolder: "elan-cafe"},  // duplicate folder copied once
		{Coleccion: "Sin carpeta", ImgFolder: ""},   // ignored
		{Coleccion: "Fantasma", ImgFolder: "nope"},  // missing folder warns
	}
	imgRows := []model.ImgRow{
		{ImgFolder: "/general", Filename: "logo.webp"},
		{ImgFolder: "", Filename: "x.webp"}, // warns, skipped
	}

	c := New(fs, "src", "public", rep)
	stats := c.CopyAll(collections, imgRows, false, false)

	if stats.Copied != 3 {
		t.Errorf("copied = %d, want 3 (two collection images + one general)", stats.Copied)
	}
	for _, path := range []string{
		"public/elan-cafe/a.webp",
		"public/elan-cafe/b.PNG",
		"public/general/logo.webp",
	} {
		if ok, _ := afero.Exists(fs, path); !ok {
			t.Errorf("expected %s to exist", path)
		}
	}
	if ok, _ := afero.Exists(fs, "public/elan-cafe/notes.txt"); ok {
		t.Error("non-image files must not be copied")
	}
	if len(rep.Warnings()) != 2 {
		t.Errorf("warnings = %v, want missing-folder and bad-row warnings", rep.Warnings())
	}
}

func TestCopyAllDryRunCopiesNothing(t *testing.T) {
	fs, rep, _ := fixture(t)
	write(t, fs, "src/elan-cafe/a.webp", "a")
	write(t, fs, "src/general/logo.webp", "logo")

	collections := []model.CollectionRow{{Coleccion: "Élan Café", ImgFolder: "elan-cafe"}}
	imgRows := []model.ImgRow{{ImgFolder: "general", Filename: "logo.webp"}}

	c := New(fs, "src", "public", rep)
	stats := c.CopyAll(collections, imgRows, false, true)

	if stats.Copied != 0 {
		t.Errorf("dry run copied %d files", stats.Copied)
	}
	if ok, _ := afero.Exists(fs, "public"); ok {
		t.Error("dry run must not create the destination tree")
	}
}
