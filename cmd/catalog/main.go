// Command catalog inspects the embedded tyre catalog without starting the
// server.
//
//	catalog options --width 225 --vehicle-type Car
//	catalog validate
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Inspect the tyre catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newOptionsCmd(), newValidateCmd())
	return root
}
