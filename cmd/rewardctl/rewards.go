package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/rewards"
)

func newCalculateCmd(calc rewards.Calculator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute win and loss rewards for a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			rawType, _ := flags.GetString("type")
			st, err := parseSessionType(rawType)
			if err != nil {
				return err
			}

			sc := domain.SessionContext{SessionType: st}
			sc.DurationMinutes, _ = flags.GetInt("duration")
			sc.PlayerLevel, _ = flags.GetInt("level")
			sc.OpponentLevel, _ = flags.GetInt("opponent-level")
			sc.StakesAmount, _ = flags.GetInt("stakes")
			sc.IsWinner, _ = flags.GetBool("winner")

			b := calc.CalculateSessionRewards(sc)
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), b)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "OUTCOME\tXP\tHP\tTOKENS")
			fmt.Fprintf(w, "win\t%d\t%+d\t%d\n", b.WinXP, b.WinHP, b.WinTokens)
			fmt.Fprintf(w, "loss\t%d\t%+d\t%d\n", b.LoseXP, b.LoseHP, b.LoseTokens)
			if err := w.Flush(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "stakes %d, rake %d, net payout %d, level difference %s\n",
				b.Stakes, b.Rake, b.NetPayout, b.LevelDifference)
			return err
		},
	}

	cmd.Flags().String("type", string(domain.SessionTypeMatch), "Session type (match, social, training, wellbeing)")
	cmd.Flags().Int("duration", 60, "Duration in minutes")
	cmd.Flags().Int("level", 1, "Player level")
	cmd.Flags().Int("opponent-level", 0, "Opponent level (defaults to the player level)")
	cmd.Flags().Int("stakes", 0, "Token stakes")
	cmd.Flags().Bool("winner", true, "Project the winning side")
	return cmd
}

func newPreviewCmd(calc rewards.Calculator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the pre-session summary and warnings",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, duration, hp, err := previewInputs(cmd)
			if err != nil {
				return err
			}

			p := calc.FormatSessionPreview(st, duration, hp)
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), p)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.PreSessionText)
			fmt.Fprintf(out, "HP %d -> %d\n", hp, p.CostBreakdown.ProjectedHP)
			for _, warning := range p.SmartWarnings {
				fmt.Fprintf(out, "! %s\n", warning)
			}
			return nil
		},
	}
	addPreviewFlags(cmd)
	return cmd
}

func newRiskCmd(calc rewards.Calculator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Check whether a session is affordable and list safer durations",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, duration, hp, err := previewInputs(cmd)
			if err != nil {
				return err
			}

			risky := calc.IsSessionTooRisky(hp, st, duration)
			alternatives := calc.SuggestAlternativeDurations(hp, st, duration)
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"too_risky":    risky,
					"alternatives": alternatives,
				})
			}

			out := cmd.OutOrStdout()
			if !risky {
				_, err := fmt.Fprintf(out, "%d minutes of %s is affordable at %d HP\n", duration, st, hp)
				return err
			}
			if len(alternatives) == 0 {
				_, err := fmt.Fprintf(out, "%d minutes of %s is too risky at %d HP and no shorter session fits\n", duration, st, hp)
				return err
			}
			mins := make([]string, len(alternatives))
			for i, m := range alternatives {
				mins[i] = fmt.Sprint(m)
			}
			_, err = fmt.Fprintf(out, "%d minutes of %s is too risky at %d HP; try %s minutes\n",
				duration, st, hp, strings.Join(mins, ", "))
			return err
		},
	}
	addPreviewFlags(cmd)
	return cmd
}

func newBracketsCmd(calc rewards.Calculator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brackets [session-type]",
		Short: "Print the base reward table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types := domain.AllSessionTypes
			if len(args) == 1 {
				st, err := parseSessionType(args[0])
				if err != nil {
					return err
				}
				types = []domain.SessionType{st}
			}

			if wantJSON(cmd) {
				table := make(map[domain.SessionType][]domain.DurationBracket, len(types))
				for _, st := range types {
					table[st] = calc.Brackets(st)
				}
				return printJSON(cmd.OutOrStdout(), table)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tMINUTES\tXP\tHP\tTOKENS")
			for _, st := range types {
				for _, b := range calc.Brackets(st) {
					fmt.Fprintf(w, "%s\t%d\t%d\t%+d\t%d\n", st, b.Minutes, b.Reward.XP, b.Reward.HP, b.Reward.Tokens)
				}
			}
			return w.Flush()
		},
	}
	return cmd
}

func addPreviewFlags(cmd *cobra.Command) {
	cmd.Flags().String("type", string(domain.SessionTypeMatch), "Session type (match, social, training, wellbeing)")
	cmd.Flags().Int("duration", 60, "Duration in minutes")
	cmd.Flags().Int("hp", 100, "Current HP")
}

func previewInputs(cmd *cobra.Command) (domain.SessionType, int, int, error) {
	rawType, _ := cmd.Flags().GetString("type")
	st, err := parseSessionType(rawType)
	if err != nil {
		return "", 0, 0, err
	}
	duration, _ := cmd.Flags().GetInt("duration")
	if duration <= 0 {
		return "", 0, 0, fmt.Errorf("%w: %d", domain.ErrInvalidDuration, duration)
	}
	hp, _ := cmd.Flags().GetInt("hp")
	return st, duration, hp, nil
}
