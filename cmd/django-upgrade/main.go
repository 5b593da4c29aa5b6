// Package main is the entry point for django-upgrade.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/muneeb706/django-upgrade-agent/internal/runner"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts := &runner.Options{}
	exitCode := runner.ExitOK

	cmd := &cobra.Command{
		Use:   "django-upgrade [flags] FILES...",
		Short: "Automatically upgrade your Django project code",
		Long: `django-upgrade rewrites Python source files to drop deprecated Django
API usage for the targeted Django version. Pass "-" as the only file to
read from stdin and write the result to stdout.`,
		Version:       version + " (" + commit + ") " + date,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			opts.Files = args
			exitCode = runner.Run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.TargetVersion, "target-version", "",
		"Django version to target, e.g. 5.0 (default from config file, else 2.2)")
	flags.StringArrayVar(&opts.Only, "only", nil, "run only the selected fixers (repeatable)")
	flags.StringArrayVar(&opts.Skip, "skip", nil, "skip the selected fixers (repeatable)")
	flags.BoolVar(&opts.ListFixers, "list-fixers", false, "list all fixer names and exit")
	flags.BoolVar(&opts.ExitZeroEvenIfChanged, "exit-zero-even-if-changed", false,
		"exit with a zero return code even if files have changed")
	flags.BoolVar(&opts.Diff, "diff", false, "print a unified diff instead of rewriting files")
	flags.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	flags.StringVar(&opts.ConfigPath, "config", "", "path to config file")

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrf("django-upgrade: %v\n", err)
		return runner.ExitError
	}
	return exitCode
}
