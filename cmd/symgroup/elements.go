package main

import (
	"fmt"

	"github.com/katalvlaran/symgroup/perm"
	"github.com/spf13/cobra"
)

var (
	elementsN    int
	elementsLazy bool

	elementsCmd = &cobra.Command{
		Use:   "elements",
		Short: "List all n! elements of S_n in cycle notation",
		RunE:  runElements,
	}
)

func init() {
	elementsCmd.Flags().IntVar(&elementsN, "n", 3, "number of elements being permuted")
	elementsCmd.Flags().BoolVar(&elementsLazy, "lazy", false,
		"stream via the enumerator instead of materializing S_n")
}

func runElements(cmd *cobra.Command, _ []string) error {
	if elementsN < 0 || elementsN > 8 {
		return fmt.Errorf("n = %d: listing is capped at n <= 8 (8! = 40320 rows)", elementsN)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render(fmt.Sprintf(
		"S_%d  (order %d)", elementsN, perm.Factorial(elementsN))))

	printOne := func(sigma perm.Perm) {
		fmt.Fprintf(out, "  %s  ->  %v\n",
			NotationStyle.Render(fmt.Sprintf("%-16s", sigma.CycleString())), sigma.Images())
	}

	if elementsLazy {
		e := perm.NewEnumerator(elementsN)
		for sigma, ok := e.Next(); ok; sigma, ok = e.Next() {
			printOne(sigma)
		}

		return nil
	}

	for _, sigma := range perm.Generate(elementsN) {
		printOne(sigma)
	}

	return nil
}
