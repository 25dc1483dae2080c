package main

import (
	"fmt"
	"os"

	"github.com/dgallion1/pdfoutline/internal/outline"
	"github.com/spf13/cobra"
)

func main() {
	root := rootCmd()
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		input   string
		out     string
		format  string
		max     int
		rootLvl int
		shallow string
		drop    string
		reverse bool
		push    bool
	)

	cmd := &cobra.Command{
		Use:          "pdfoutline",
		Short:        "Convert a styled document into a nested JSON outline",
		Long:         "pdfoutline infers a document's structure (titles, sub-titles, paragraphs)\nfrom typographic style and emits it as a nested tree.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, convertConfig{
				input:   input,
				out:     out,
				format:  format,
				max:     max,
				root:    rootLvl,
				shallow: shallow,
				drop:    drop,
				reverse: reverse,
				push:    push,
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input document (.pdf, .docx, .md, .html, .txt)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json|markdown|html")
	cmd.Flags().IntVarP(&max, "max", "m", outline.DefaultMaxLevel, "deepest heading rank retained as structure")
	cmd.Flags().IntVarP(&rootLvl, "root", "r", outline.DefaultRootLevel, "heading rank treated as the top of the output tree")
	cmd.Flags().StringVar(&shallow, "shallow", "skip", "policy for headings shallower than --root: skip|text")
	cmd.Flags().StringVarP(&drop, "drop", "d", "", "comma-separated tag substrings whose paragraphs are dropped")
	cmd.Flags().BoolVarP(&reverse, "reverse", "n", false, "reverse paragraph order under each node")
	cmd.Flags().BoolVar(&push, "push", false, "push the tree to the configured note store")
	cmd.MarkFlagRequired("input")

	return cmd
}
