package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/floatdesk/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown for every command",
	Long: `Generate documentation from the command tree.

Supported formats:
  man       Unix manual pages, installed to ~/.local/share/man/man1 by default
  markdown  Markdown files, written to ./docs by default

Examples:
  floatdesk gen-docs
  floatdesk gen-docs --format markdown
  floatdesk gen-docs --output ./man`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	dir, ext, err := docsTarget(genDocsFormat, genDocsOutputDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return writeDocs(cmd.OutOrStdout(), rootCmd, genDocsFormat, dir, ext)
}

// docsTarget resolves the output directory and file extension for format.
func docsTarget(format, dir string) (string, string, error) {
	switch format {
	case "man":
		if dir == "" {
			manDir, err := config.GetManDir()
			if err != nil {
				return "", "", fmt.Errorf("resolve man directory: %w", err)
			}
			dir = manDir
		}
		return dir, ".1", nil
	case "markdown":
		if dir == "" {
			dir = "./docs"
		}
		return dir, ".md", nil
	default:
		return "", "", fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}
}

func writeDocs(out io.Writer, root *cobra.Command, format, dir, ext string) error {
	// no generation timestamp, for reproducible output
	root.DisableAutoGenTag = true

	var err error
	if format == "man" {
		now := time.Now()
		err = doc.GenManTree(root, &doc.GenManHeader{
			Title:   "FLOATDESK",
			Section: "1",
			Source:  "floatdesk " + buildInfo.Version,
			Manual:  "floatdesk Manual",
			Date:    &now,
		}, dir)
	} else {
		err = doc.GenMarkdownTree(root, dir)
	}
	if err != nil {
		return fmt.Errorf("generate %s docs: %w", format, err)
	}

	fmt.Fprintf(out, "Generated %s docs in %s\n", format, dir)
	if entries, err := os.ReadDir(dir); err == nil {
		for _, e := range entries {
			if filepath.Ext(e.Name()) == ext {
				fmt.Fprintf(out, "  - %s\n", e.Name())
			}
		}
	}
	if format == "man" {
		fmt.Fprintln(out, "Run 'mandb' if 'man floatdesk' doesn't work immediately.")
	}
	return nil
}
