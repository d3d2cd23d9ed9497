package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"excel-to-astro/internal/excel"
)

// newInspectCmd groups the workbook debugging helpers: quick looks at
// column names, line values and raw sheet contents without running a
// generation pass.
func newInspectCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect the workbook without generating anything",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "columns",
		Short: "Print the column names of the sku and coleccion sheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()
			path := v.GetString("excel-path")

			skuCols, _, err := excel.ReadSheet(fs, path, "sku")
			if err != nil {
				return err
			}
			collCols, _, err := excel.ReadSheet(fs, path, "coleccion")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "SKU columns:", skuCols)
			fmt.Fprintln(cmd.OutOrStdout(), "Collection columns:", collCols)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "lineas [sheet]",
		Short: "Print the distinct line values of a sheet (default coleccion)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet := "coleccion"
			column := "Linea"
			if len(args) == 1 {
				sheet = args[0]
				if sheet != "coleccion" {
					column = "linea"
				}
			}

			_, rows, err := excel.ReadSheet(afero.NewOsFs(), v.GetString("excel-path"), sheet)
			if err != nil {
				return err
			}

			seen := make(map[string]bool)
			var lineas []string
			for _, row := range rows {
				linea := row[column]
				if linea == "" || seen[linea] {
					continue
				}
				seen[linea] = true
				lineas = append(lineas, linea)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unique Lineas (%s): %v\n", sheet, lineas)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sheet <name>",
		Short: "Dump a sheet's rows as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rows, err := excel.ReadSheet(afero.NewOsFs(), v.GetString("excel-path"), args[0])
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s data:\n%s\n", args[0], out)
			return nil
		},
	})

	return cmd
}
