package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/harborops/consign/internal/classify"
	"github.com/harborops/consign/internal/common"
	"github.com/harborops/consign/internal/ingest"
	"github.com/harborops/consign/internal/model"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import delivery-note spreadsheets into the session",
		Long: `Import one or more delivery-note documents (XLSX, legacy XLS, or CSV).

Each file becomes one source, keyed by its DN number. A file whose DN
number matches an already-imported source is rejected; the rest of the
batch still imports.

Examples:
  # Import a single manifest
  consign import ~/Downloads/DN20260815.xlsx

  # Import a whole drop folder
  consign import ~/Downloads/inbound/*.xlsx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")
	cmd.Flags().String("document-id", "", "Override the natural document id (single file only)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	documentID, _ := cmd.Flags().GetString("document-id")

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return common.NewUserError("no files found to import", nil)
	}
	if documentID != "" && len(allFiles) > 1 {
		return common.NewUserError(
			fmt.Sprintf("--document-id applies to a single file, got %d", len(allFiles)), nil)
	}

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

	slog.Info("📦 Importing delivery notes...",
		"file_count", len(allFiles),
		"dry_run", dryRun)

	bar := progressbar.NewOptions(len(allFiles),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Reading files"),
	)

	ingestor := ingest.NewIngestor(classify.NewDefault())
	var batch []*model.Source

	for _, filePath := range allFiles {
		table, err := ingest.ReadFile(filePath)
		if err != nil {
			slog.Error("Failed to read file",
				"file", filePath,
				"error", err)
			_ = bar.Add(1)
			continue
		}

		source := ingestor.Ingest(table, ingest.Options{
			DocumentID: documentID,
			FileName:   filepath.Base(filePath),
		})
		if len(source.Materials) == 0 {
			slog.Warn("No usable rows in file", "file", filepath.Base(filePath))
			_ = bar.Add(1)
			continue
		}

		batch = append(batch, source)
		_ = bar.Add(1)
	}
	fmt.Fprintln(os.Stderr)

	accepted, rejected := reg.RegisterAll(batch)

	if !dryRun {
		for _, source := range accepted {
			if err := st.SaveSource(ctx, source); err != nil {
				return common.NewUserError(
					fmt.Sprintf("could not save source %s", source.DocumentID), err)
			}
		}
	}

	// Summary
	fmt.Println("\n📁 Import summary:")
	for _, source := range accepted {
		fmt.Printf("  - %s (%s): %d material rows, total qty %d\n",
			source.DocumentID, source.FileName, len(source.Materials), source.TotalQty())
	}
	if len(rejected) > 0 {
		fmt.Printf("\n⚠️  Rejected duplicate documents: %s\n", strings.Join(rejected, ", "))
	}

	if dryRun {
		slog.Info("🔍 Dry run complete - no data saved")
	} else {
		slog.Info("✅ Import complete",
			"accepted", len(accepted),
			"rejected", len(rejected),
			"session_sources", reg.Len())
	}

	return nil
}
