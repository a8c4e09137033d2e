package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/gstsink/internal/application/port"
	xdgadapter "github.com/bnema/gstsink/internal/infrastructure/xdg"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Render the command tree as man pages (groff) or markdown.

Man pages go to $XDG_DATA_HOME/man/man1 and markdown to
$XDG_DATA_HOME/doc/gstsink unless --output is given.

Examples:
  gstsink gen-docs
  gstsink gen-docs --format markdown --output ./docs`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		dir, err := defaultDocsDir(xdgadapter.New(), genDocsFormat)
		if err != nil {
			return err
		}
		outputDir = dir
	}
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output.
	rootCmd.DisableAutoGenTag = true

	var ext string
	switch genDocsFormat {
	case "man":
		ext = ".1"
		now := time.Now()
		header := &doc.GenManHeader{
			Title:   "GSTSINK",
			Section: "1",
			Source:  "gstsink " + buildInfo.Version,
			Manual:  "gstsink Manual",
			Date:    &now,
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
	case "markdown":
		ext = ".md"
		if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
			return fmt.Errorf("generate markdown docs: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	fmt.Printf("Wrote %s docs to %s\n", genDocsFormat, outputDir)
	for _, name := range generatedFiles(outputDir, ext) {
		fmt.Printf("  - %s\n", name)
	}
	return nil
}

func defaultDocsDir(paths port.XDGPaths, format string) (string, error) {
	var (
		dir string
		err error
	)
	switch format {
	case "man":
		dir, err = paths.ManDir()
	case "markdown":
		dir, err = paths.DocsDir()
	default:
		return "", fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}
	if err != nil {
		return "", fmt.Errorf("resolve %s directory: %w", format, err)
	}
	return dir, nil
}

// generatedFiles lists the files in dir with the given extension. Listing
// errors are ignored, the docs are already written.
func generatedFiles(dir, ext string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ext {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}
