package main

import (
	"fmt"

	"github.com/harborops/consign/internal/model"
	"github.com/harborops/consign/internal/service"
	"github.com/spf13/cobra"
)

func masterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "master",
		Short: "Maintain the material master used for descriptor lookup",
	}

	cmd.AddCommand(masterSetCmd())

	return cmd
}

func masterSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <code> <description> <category>",
		Short: "Add or update one material-master entry",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			category := model.CategoryLabel(args[2])
			if !category.IsValid() {
				return fmt.Errorf("unknown category %q; valid categories: %v", args[2], model.AllCategories())
			}

			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			descriptor := &service.MaterialDescriptor{
				Code:        args[0],
				Description: args[1],
				Category:    category,
			}
			if err := st.SaveDescriptor(ctx, descriptor); err != nil {
				return err
			}

			fmt.Printf("Saved %s as %s (%s).\n", model.NormalizeCode(args[0]), category, args[1])
			return nil
		},
	}
}
