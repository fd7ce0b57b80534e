package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/economics"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/rewards"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rewardctl",
		Short:         "Session reward tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("json", false, "Print results as JSON")

	calc := rewards.NewCalculator(economics.DefaultTable(), rewards.DefaultConfig())
	root.AddCommand(
		newCalculateCmd(calc),
		newPreviewCmd(calc),
		newRiskCmd(calc),
		newBracketsCmd(calc),
		newTokenCmd(),
	)
	return root
}

func parseSessionType(raw string) (domain.SessionType, error) {
	st, ok := domain.ParseSessionType(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSessionType, raw)
	}
	return st, nil
}

func wantJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
