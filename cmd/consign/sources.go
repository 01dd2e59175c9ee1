package main

import (
	"fmt"

	"github.com/harborops/consign/internal/consolidate"
	"github.com/spf13/cobra"
)

func sourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage the session's imported sources",
	}

	cmd.AddCommand(sourcesListCmd())
	cmd.AddCommand(sourcesRemoveCmd())

	return cmd
}

func sourcesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported sources in registration order",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			sources := reg.List()
			if len(sources) == 0 {
				fmt.Println("No sources imported yet.")
				return nil
			}

			fmt.Printf("%-4s %-36s %-16s %-24s %6s %6s\n", "#", "SOURCE ID", "DOCUMENT", "FILE", "ROWS", "QTY")
			for i, source := range sources {
				fmt.Printf("%-4d %-36s %-16s %-24s %6d %6d\n",
					i+1, source.ID, source.DocumentID, source.FileName,
					len(source.Materials), source.TotalQty())
			}
			return nil
		},
	}
}

func sourcesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <source-id>",
		Short: "Remove a source and recompute the consolidated totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sourceID := args[0]

			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			reg, err := loadRegistry(ctx, st)
			if err != nil {
				return err
			}

			// Registry first: an unknown id should fail before touching
			// the store.
			view := consolidate.NewView(reg)
			result, err := view.AfterRemoval(sourceID)
			if err != nil {
				return err
			}
			if err := st.DeleteSource(ctx, sourceID); err != nil {
				return err
			}

			fmt.Printf("Removed source %s.\n", sourceID)
			fmt.Printf("Recomputed view: %d consolidated rows, %d serial rows, %d sources remaining.\n",
				len(result.Rows), len(result.Serials), reg.Len())
			return nil
		},
	}
}
