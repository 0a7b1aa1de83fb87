package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// verbose surfaces the per-check diagnostics of the verification
	// pipelines on stderr.
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "symgroup",
		Short: "Exact computation over the symmetric group S_n",
		Long: TitleStyle.Render("symgroup") + SubtitleStyle.Render(" - OS synchronization as symmetry restrictions in S_n") + `

symgroup models the scheduling space of n processes as the symmetric
group S_n and expresses synchronization concepts algebraically:

  mutual exclusion  =  the stabilizer subgroup Stab(x)
  round-robin       =  the cyclic subgroup <c>
  deadlock          =  the identity element e

Every claim is proved, not assumed: the verification pipelines check the
subgroup axioms, Lagrange's theorem and the orbit-stabilizer identity
exhaustively for the requested n.`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print per-check diagnostics to stderr")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(cosetsCmd)
	rootCmd.AddCommand(elementsCmd)
}

// diagLogger returns the diagnostics logger honoring --verbose: a styled
// stderr logger, or discard.
func diagLogger() *log.Logger {
	if !verbose {
		return log.New(io.Discard)
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           log.InfoLevel,
	})
}
