// Command frcmp maintains the generated stylesheet vocabulary: the
// class name constants and severity sets in the fr package.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/frcmp/lib/generator"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "frcmp",
		Short:         "Maintain the generated class vocabulary of the frcmp library",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newCleanCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

type generateOptions struct {
	css    string
	out    string
	pkg    string
	prefix string
	dryRun bool
}

func newGenerateCmd() *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate classnames.go and severity.go from the stylesheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := generator.New(generator.Options{
				Package: opts.pkg,
				Prefix:  opts.prefix,
				DryRun:  opts.dryRun,
			})
			return gen.Generate(opts.css, opts.out)
		},
	}

	cmd.Flags().StringVar(&opts.css, "css", "assets/dsfr.min.css", "Stylesheet to derive the vocabulary from")
	cmd.Flags().StringVar(&opts.out, "out", "fr", "Directory receiving the generated files")
	cmd.Flags().StringVar(&opts.pkg, "package", "fr", "Package name of the generated files")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "fr-", "Class prefix that scopes the vocabulary")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report what would be written without writing")

	return cmd
}

func newCleanCmd() *cobra.Command {
	var out string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the generated vocabulary files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generator.New(generator.Options{DryRun: dryRun}).Clean(out)
		},
	}

	cmd.Flags().StringVar(&out, "out", "fr", "Directory holding the generated files")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be removed without removing")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the frcmp version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "frcmp %s\n", version)
			return nil
		},
	}
}
