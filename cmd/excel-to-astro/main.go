// Command excel-to-astro generates the Astro site's content from the
// catalog spreadsheet: one markdown document per collection and per
// wallpaper code, the JSON data files, and a mirrored copy of the
// referenced images.
package main

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"excel-to-astro/internal/excel"
	"excel-to-astro/internal/generator"
	"excel-to-astro/internal/imagecopy"
	"excel-to-astro/internal/model"
	"excel-to-astro/internal/report"
	"excel-to-astro/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "excel-to-astro",
		Short:         "Generate Astro content collections from Excel data",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(optionsFrom(v), afero.NewOsFs())
		},
	}

	// excel-path is persistent so the inspect subcommands share it.
	cmd.PersistentFlags().StringP("excel-path", "e", "data.xlsx", "Path to Excel file")

	flags := cmd.Flags()
	flags.StringP("output-dir", "o", "src/content", "Content output directory")
	flags.StringP("images-dir", "i", "public/images/wallpapers", "Images output directory")
	flags.String("data-dir", "src/data", "JSON data output directory")
	flags.String("source-dir", ".", "Directory the spreadsheet's image folders are relative to")
	flags.BoolP("dry-run", "d", false, "Preview changes without writing files")
	flags.Bool("no-copy", false, "Skip image copying")
	flags.Bool("overwrite", false, "Overwrite existing images")
	flags.Bool("collections-only", false, "Generate only collection files")
	flags.Bool("wallpapers-only", false, "Generate only wallpaper files")
	flags.BoolP("verbose", "v", false, "Verbose logging")
	flags.Bool("clean", false, "Remove existing generated files before creating new ones")

	// Every flag can also come from the environment, e.g.
	// EXCEL_TO_ASTRO_EXCEL_PATH for CI runs.
	v.SetEnvPrefix("EXCEL_TO_ASTRO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	cobra.CheckErr(v.BindPFlags(cmd.PersistentFlags()))
	cobra.CheckErr(v.BindPFlags(flags))

	cmd.AddCommand(newInspectCmd(v))
	return cmd
}

func optionsFrom(v *viper.Viper) model.Options {
	return model.Options{
		ExcelPath:       v.GetString("excel-path"),
		OutputDir:       v.GetString("output-dir"),
		ImagesDir:       v.GetString("images-dir"),
		DataDir:         v.GetString("data-dir"),
		SourceDir:       v.GetString("source-dir"),
		DryRun:          v.GetBool("dry-run"),
		CopyImages:      !v.GetBool("no-copy"),
		Overwrite:       v.GetBool("overwrite"),
		CollectionsOnly: v.GetBool("collections-only"),
		WallpapersOnly:  v.GetBool("wallpapers-only"),
		Verbose:         v.GetBool("verbose"),
		Clean:           v.GetBool("clean"),
	}
}

// run is the whole pipeline: load and validate the workbook, project
// the JSON data files, copy images, then write the collection and
// wallpaper documents. Fatal errors return; per-row problems are
// recorded on the reporter and processing continues.
func run(opts model.Options, fs afero.Fs) error {
	reporter := report.New(opts.Verbose)
	reporter.Info("Excel to Astro Content Generator")
	reporter.Info("=================================")

	sheets, err := excel.Load(fs, opts.ExcelPath, reporter)
	if err != nil {
		return err
	}

	var store storage.Store
	if opts.DryRun {
		store = storage.NewDryRunStore(reporter)
	} else {
		store = storage.NewFileStore(fs, reporter)
	}

	jsonGen := generator.NewJSON(opts.DataDir, store, reporter)
	if err := jsonGen.GenerateAll(sheets); err != nil {
		return err
	}

	if opts.CopyImages && !opts.WallpapersOnly {
		copier := imagecopy.New(fs, opts.SourceDir, opts.ImagesDir, reporter)
		copier.CopyAll(sheets.Coleccion, sheets.Img, opts.Overwrite, opts.DryRun)
	}

	markdown := generator.NewMarkdown(opts.OutputDir, store, reporter)

	if opts.Clean && !opts.DryRun {
		if !opts.WallpapersOnly {
			cleanDir(store, reporter, path.Join(opts.OutputDir, "collections"))
		}
		if !opts.CollectionsOnly {
			cleanDir(store, reporter, path.Join(opts.OutputDir, "wallpapers"))
		}
	}

	collectionsCount := 0
	if !opts.WallpapersOnly {
		reporter.Info("Processing Collections:")
		for _, col := range sheets.Coleccion {
			if err := markdown.GenerateCollectionFile(col, sheets.Sku); err != nil {
				reporter.Error("Failed to write collection %q: %v", col.Coleccion, err)
				continue
			}
			collectionsCount++
		}
		reporter.Success("Generated %d collection files", collectionsCount)
	}

	wallpapersCount := 0
	if !opts.CollectionsOnly {
		reporter.Info("Processing Wallpapers:")
		for _, group := range groupByCodigo(sheets.Sku) {
			first := group[0]
			if err := markdown.GenerateWallpaperFile(group, resolveBaseFolder(first, sheets.Coleccion)); err != nil {
				reporter.Error("Failed to write wallpaper %q: %v", first.Codigo, err)
				continue
			}
			wallpapersCount++
		}
		reporter.Success("Generated %d wallpaper files", wallpapersCount)
	}

	reporter.PrintSummary(reporter.Summary(collectionsCount, wallpapersCount), opts.DryRun)
	return nil
}

func cleanDir(store storage.Store, reporter *report.Reporter, dir string) {
	if err := store.CleanDir(dir); err != nil {
		reporter.Warning("Failed to clean directory %s: %v", dir, err)
	}
}

// groupByCodigo groups SKU rows by product code, groups ordered by
// first appearance, rows in sheet order within each group.
func groupByCodigo(skus []model.SkuRow) [][]model.SkuRow {
	index := make(map[string]int)
	var groups [][]model.SkuRow
	for _, row := range skus {
		i, ok := index[row.Codigo]
		if !ok {
			i = len(groups)
			index[row.Codigo] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], row)
	}
	return groups
}

// resolveBaseFolder picks the image folder for a wallpaper: the
// collection's configured folder, else the row's own folder, else the
// collection name itself.
func resolveBaseFolder(row model.SkuRow, collections []model.CollectionRow) string {
	for _, col := range collections {
		if col.Coleccion == row.Coleccion && col.ImgFolder != "" {
			return col.ImgFolder
		}
	}
	if row.Folder != "" {
		return row.Folder
	}
	return row.Coleccion
}
