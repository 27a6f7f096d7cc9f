// Command html2slide translates a single rendered HTML slide into a
// declarative slide description and prints the builder calls it would
// send a real presentation library.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/flanksource/commons/logger"
	"github.com/spf13/cobra"

	"github.com/domslide/html2slide"
	"github.com/domslide/html2slide/shutdown"
	"github.com/domslide/html2slide/slidebuilder/jsonslide"
	"github.com/domslide/html2slide/style"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#32CD32"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6347")).Bold(true)
)

func main() {
	defer shutdown.Shutdown()

	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "html2slide <slide.html>",
		Short: "Translate a rendered HTML slide into a declarative slide description",
		Long: `html2slide loads one rendered HTML document into a headless browser,
inspects its computed styles and layout, and prints the sequence of
slide-builder calls needed to reproduce it in a presentation file.

It never writes a .pptx itself - that is the job of whatever builder
consumes its output.`,
		Example: `  html2slide slide.html
  html2slide --width 13.333 --height 7.5 slide.html`,
		Args: cobra.ExactArgs(1),
		RunE: runTranslate,
	}

	rootCmd.Flags().Float64("width", 10, "slide layout width, in inches")
	rootCmd.Flags().Float64("height", 5.63, "slide layout height, in inches")
	rootCmd.Flags().String("tmp-dir", "", "directory for rasterized images (default: a fresh temp dir)")

	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func runTranslate(cmd *cobra.Command, args []string) error {
	htmlFile := args[0]

	widthIn, err := cmd.Flags().GetFloat64("width")
	if err != nil {
		return err
	}
	heightIn, err := cmd.Flags().GetFloat64("height")
	if err != nil {
		return err
	}
	tmpDir, err := cmd.Flags().GetString("tmp-dir")
	if err != nil {
		return err
	}

	logger.Infof("translating %s (%.2fx%.2f in)", htmlFile, widthIn, heightIn)

	presentation := jsonslide.New(style.InToEMU(style.Inches(widthIn)), style.InToEMU(style.Inches(heightIn)))

	var opts []html2slide.BuilderOption
	if tmpDir != "" {
		opts = append(opts, html2slide.WithTmpDir(tmpDir))
	}

	result, err := html2slide.Translate(context.Background(), htmlFile, presentation, opts...)
	if err != nil {
		return fmt.Errorf("translate %s: %w", htmlFile, err)
	}

	slide, ok := result.Slide.(*jsonslide.Slide)
	if !ok {
		return fmt.Errorf("unexpected slide type %T", result.Slide)
	}

	out, err := slide.MarshalIndent()
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	fmt.Println(string(out))

	if len(result.Placeholders) > 0 {
		fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("%d placeholder(s) reserved for non-HTML content", len(result.Placeholders))))
		for _, ph := range result.Placeholders {
			fmt.Fprintf(os.Stderr, "  %s: (%.2f,%.2f) %.2fx%.2f in\n", ph.ID, float64(ph.X), float64(ph.Y), float64(ph.W), float64(ph.H))
		}
	} else {
		fmt.Fprintln(os.Stderr, successStyle.Render("translated with no placeholders"))
	}

	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getVersionInfo())
		},
	}
}

func getVersionInfo() string {
	return fmt.Sprintf("html2slide %s (commit: %s, built: %s)", version, commit, date)
}
