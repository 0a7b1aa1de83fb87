package main

import (
	"fmt"

	"github.com/katalvlaran/symgroup/schedmodel"
	"github.com/spf13/cobra"
)

var (
	classifyN int

	classifyCmd = &cobra.Command{
		Use:   "classify",
		Short: "Classify every schedule in S_n against the three constraints",
		Long: `Prints the classification table of S_n: for each schedule, whether it
is the deadlock state, mutex-admissible on the critical slot, and a
round-robin rotation. Keep n small - the table has n! rows.`,
		RunE: runClassify,
	}
)

func init() {
	classifyCmd.Flags().IntVar(&classifyN, "n", 3, "number of processes (table has n! rows)")
}

func runClassify(cmd *cobra.Command, _ []string) error {
	m, err := schedmodel.New(classifyN)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render(fmt.Sprintf("Classification of all %d schedules in S_%d", m.SpaceSize(), m.N())))
	fmt.Fprintf(out, "  %-20s %-10s %-10s %s\n", "Permutation", "Deadlock", "Mutex", "Round-Robin")
	fmt.Fprintf(out, "  %-20s %-10s %-10s %s\n", "------------------", "--------", "--------", "-----------")

	for _, c := range m.ClassifyAll() {
		// Pad before styling: ANSI escapes would defeat %-20s.
		fmt.Fprintf(out, "  %s %-10s %-10s %s\n",
			NotationStyle.Render(fmt.Sprintf("%-20s", c.Notation)),
			yesDash(c.Deadlock), yesDash(c.Mutex), yesDash(c.RoundRobin))
	}

	fmt.Fprintln(out, SubtitleStyle.Render(fmt.Sprintf(
		"subgroup chain: {e} <= <c> (%d) <= S_%d (%d);  {e} <= Stab(1) (%d) <= S_%d",
		len(m.RoundRobin()), m.N(), m.SpaceSize(),
		len(m.MutexAdmissible(schedmodel.CriticalSlot)), m.N())))

	return nil
}

// yesDash renders a boolean as the table's "yes"/"-" cell.
func yesDash(b bool) string {
	if b {
		return "yes"
	}

	return "-"
}
