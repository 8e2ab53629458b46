package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vmini/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "vmini",
		Short: "Render and serve reactive vmini apps",
		Long: `vmini renders reactive apps built on a data store and a render function.

Every data key a render reads becomes a dependency. Writing one of
those keys throws the old tree away and renders a new one.

  render   mount an app, apply data, print the HTML, publish a snapshot
  serve    run a playground that pushes every re-render to the browser`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configDir, "config", "c", ".", "Directory holding vmini.yaml")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(
		renderCmd(&flags),
		serveCmd(&flags),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var ve *errors.Error
		if stderrors.As(err, &ve) {
			fmt.Fprint(os.Stderr, ve.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "  %s\n", fmt.Sprintf(format, args...))
}
