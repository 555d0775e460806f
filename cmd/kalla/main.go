// Command kalla resolves configuration locations from the command line and
// prints the ordered resolution results. It is a diagnostic front end for
// the resolution engine; the output order is the precedence order a
// downstream loader would see.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/0xalexb/kalla"
	"github.com/0xalexb/kalla/logging"
	"github.com/0xalexb/kalla/store"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kalla",
		Short:         "Resolve configuration location specifiers",
		Version:       kalla.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newResolveCmd())

	return root
}

func newResolveCmd() *cobra.Command {
	var (
		profiles []string
		names    []string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "resolve [location...]",
		Short: "Resolve locations into concrete configuration resources",
		Long: `Resolve one or more configuration location specifiers into the ordered
list of concrete resources a configuration loader would read.

Locations follow the standard grammar: an "optional:" prefix tolerates
missing data, a trailing '/' scans a directory, a single '*' expands
against the filesystem, and "name[.ext]" forces a format for an
extension-less file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger(logging.LoggerConfig{
				Level:  logLevel,
				Format: logging.FormatConsole,
			}, cmd.ErrOrStderr())

			resolver, err := kalla.NewStandardResolver(
				kalla.Config{Names: names},
				kalla.DefaultLoaders(),
				store.NewFileStore(),
				logger,
			)
			if err != nil {
				return err
			}

			resolvers := kalla.NewResolvers(resolver)

			// nil means "no profile pass"; an explicit empty --profile list
			// still runs an (empty) pass.
			var profilePass []string
			if cmd.Flags().Changed("profile") {
				profilePass = profiles
			}

			for _, arg := range args {
				results, err := resolvers.Resolve(nil, kalla.ParseLocation(arg), profilePass)
				if err != nil {
					return err
				}

				printResults(cmd, arg, results)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&profiles, "profile", "p", nil, "profile names, in precedence order")
	cmd.Flags().StringSliceVarP(&names, "name", "n", nil, "base configuration names (default \"application\")")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func printResults(cmd *cobra.Command, location string, results []kalla.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s: %d resource(s)\n", location, len(results))

	for i, result := range results {
		state := "exists"

		switch {
		case result.Resource.IsEmptyDirectory():
			state = "empty directory"
		case !result.Resource.Exists():
			state = "missing"
		}

		pass := "default"
		if result.ProfileSpecific {
			pass = "profile"
		}

		fmt.Fprintf(out, "  %2d. %s [%s, %s]\n", i+1, result.Resource.Name(), state, pass)
	}
}
