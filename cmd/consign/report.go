package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/harborops/consign/internal/common"
	"github.com/harborops/consign/internal/consolidate"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the consolidated view of the session's sources",
		Long: `Recompute and print the consolidated table over every imported source,
or over a single source with --source. With --serials the ungrouped
serial-level manifest is printed instead.`,
		RunE: runReport,
	}

	cmd.Flags().String("source", "", "Restrict the view to one source id")
	cmd.Flags().Bool("serials", false, "Print the serial-level manifest instead of the grouped table")
	cmd.Flags().String("csv", "", "Write the view to a CSV file instead of stdout")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	sourceID, _ := cmd.Flags().GetString("source")
	serials, _ := cmd.Flags().GetBool("serials")
	csvPath, _ := cmd.Flags().GetString("csv")

	ctx := cmd.Context()
	st, err := initStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	reg, err := loadRegistry(ctx, st)
	if err != nil {
		return err
	}

	view := consolidate.NewView(reg)
	var result consolidate.Result
	if sourceID != "" {
		if result, err = view.ShowOne(sourceID); err != nil {
			return err
		}
	} else {
		result = view.ShowAll()
	}

	if csvPath != "" {
		return writeCSV(csvPath, result, serials)
	}
	if serials {
		printSerials(result)
		return nil
	}
	printGrouped(result)
	return nil
}

func printGrouped(result consolidate.Result) {
	if len(result.Rows) == 0 {
		fmt.Println("Nothing to report.")
		return
	}

	fmt.Printf("%-16s %-32s %-26s %6s %-16s %s\n",
		"MATERIAL", "DESCRIPTION", "CATEGORY", "QTY", "DOCUMENT", "SHIP TO")
	total := 0
	for _, row := range result.Rows {
		fmt.Printf("%-16s %-32s %-26s %6d %-16s %s\n",
			row.MaterialCode, row.Description, row.Category, row.Qty, row.Remarks, row.ShipName)
		total += row.Qty
	}
	fmt.Printf("\n%d consolidated rows, total qty %d.\n", len(result.Rows), total)
}

func printSerials(result consolidate.Result) {
	if len(result.Serials) == 0 {
		fmt.Println("No serial rows to report.")
		return
	}

	fmt.Printf("%-16s %-20s %-12s %-10s %-20s %s\n",
		"MATERIAL", "BARCODE", "LOCATION", "BIN", "SHIP TO", "DOCUMENT")
	for _, row := range result.Serials {
		fmt.Printf("%-16s %-20s %-12s %-10s %-20s %s\n",
			row.MaterialCode, row.Barcode, row.Location, row.BinCode, row.ShipToName, row.DocumentID)
	}
	fmt.Printf("\n%d serial rows.\n", len(result.Serials))
}

func writeCSV(path string, result consolidate.Result, serials bool) error {
	f, err := os.Create(path) // #nosec G304 -- operator-supplied path
	if err != nil {
		return common.NewUserError(fmt.Sprintf("could not create %s", path), err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	defer w.Flush()

	if serials {
		_ = w.Write([]string{"material_code", "description", "barcode", "location", "bin_code", "ship_to_name", "ship_to_address", "sold_to", "document_id"})
		for _, row := range result.Serials {
			if err := w.Write([]string{row.MaterialCode, row.Description, row.Barcode, row.Location,
				row.BinCode, row.ShipToName, row.ShipToAddress, row.SoldTo, row.DocumentID}); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	} else {
		_ = w.Write([]string{"material_code", "description", "category", "qty", "document_id", "ship_to"})
		for _, row := range result.Rows {
			if err := w.Write([]string{row.MaterialCode, row.Description, string(row.Category),
				strconv.Itoa(row.Qty), row.Remarks, row.ShipName}); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	fmt.Printf("Wrote %s.\n", path)
	return nil
}
