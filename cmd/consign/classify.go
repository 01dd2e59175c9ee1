package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/harborops/consign/internal/classify"
	"github.com/harborops/consign/internal/common"
	"github.com/spf13/cobra"
)

// lookupTimeout bounds the material-master lookup. On timeout or error the
// command falls straight back to the local classifier; there is no retry.
const lookupTimeout = 2 * time.Second

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <code>...",
		Short: "Classify material codes into product categories",
		Long: `Resolve each code against the material master first; when the master has
no entry (or does not answer in time) the local classifier decides. Every
code yields a category: unrecognized codes fall back to Others.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().Bool("offline", false, "Skip the material-master lookup")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	offline, _ := cmd.Flags().GetBool("offline")
	ctx := cmd.Context()

	classifier := classify.NewDefault()

	if offline {
		for _, code := range args {
			fmt.Printf("%-20s %s\n", code, classifier.Classify(code))
		}
		return nil
	}

	st, err := initStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	for _, code := range args {
		lookupCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
		descriptor, err := st.Lookup(lookupCtx, code)
		cancel()

		switch {
		case err == nil:
			fmt.Printf("%-20s %-26s %s\n", code, descriptor.Category, descriptor.Description)
		case errors.Is(err, common.ErrNotFound):
			fmt.Printf("%-20s %s\n", code, classifier.Classify(code))
		default:
			slog.Warn("Material master unavailable, using local classifier",
				"code", code,
				"error", err)
			fmt.Printf("%-20s %s\n", code, classifier.Classify(code))
		}
	}

	return nil
}
