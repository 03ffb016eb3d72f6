// Command seqflow builds and runs a sequence pipeline over integers from
// the command line.
//
//	seqflow run --range 1:10 --stage filter=even --stage map=half --terminal collect
//	seqflow run --text 12345 --terminal sum
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	root := newRootCommand()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%v: error: %v\n", root.CommandPath(), err)
		os.Exit(1)
	}
}

type globalFlags struct {
	configFile string
	envFile    string
}

func newRootCommand() *cobra.Command {
	var gf globalFlags
	root := &cobra.Command{
		Use:   "seqflow {[flags]|SUBCOMMAND}",
		Short: "Run lazy sequence pipelines over integers",

		SilenceErrors: true, // main() reports the error
		SilenceUsage:  true,

		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&gf.configFile, "config", "", "read settings from config file `path` (yaml, json or toml)")
	pf.StringVar(&gf.envFile, "env-file", envFileDefault(), "load environment variables from `path` if it exists")
	pf.String("log-level", "info", "log `level`: trace, debug, info, warn, error or disabled")
	pf.String("log-format", "console", "log `format`: console or json")
	if err := root.MarkPersistentFlagFilename("config", "yaml", "yml", "json", "toml"); err != nil {
		panic(err)
	}

	root.AddCommand(newRunCommand(&gf), newVersionCommand())
	return root
}

func newRunCommand(gf *globalFlags) *cobra.Command {
	var o runOptions
	cmd := &cobra.Command{
		Use:   "run [flags]",
		Short: "Build a pipeline from a source, stages and a terminal, and print its result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(gf.configFile, gf.envFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Log, cmd.ErrOrStderr())
			return runPipeline(cmd.Context(), o, cfg, logger, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&o.Values, "values", nil, "read the comma-separated integers `list`")
	f.StringVar(&o.Text, "text", "", "read the digits of `text`, ignoring anything else")
	f.StringVar(&o.Range, "range", "", "generate `start:count` consecutive integers")
	f.StringVar(&o.SQLite, "sqlite", "", "read the first column of --query from the sqlite database at `path`")
	f.StringVar(&o.Query, "query", "", "the `sql` query run against --sqlite")
	f.StringArrayVar(&o.Stages, "stage", nil, "append a stage `name[=arg]`: map=double|square|half|negate, filter=even|odd|positive, skip=N, take=N, reverse")
	f.StringVar(&o.Terminal, "terminal", "collect", "consume the pipeline with `name[=arg]`: collect, sum, count, all=P, any=P, none=P, print")
	f.String("separator", " ", "element separator for the print terminal")
	f.Bool("trace", false, "log every element read after each stage")
	cmd.MarkFlagsMutuallyExclusive("values", "text", "range", "sqlite")
	cmd.MarkFlagsRequiredTogether("sqlite", "query")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "seqflow %s\n", version)
			return err
		},
	}
}
