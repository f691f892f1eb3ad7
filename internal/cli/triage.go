package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"demclean/internal/model"
	"demclean/internal/output"
	"demclean/internal/pipeline"
)

var (
	triageSource      string
	killstreakOnly    bool
	doRelocate        bool
	copyFiles         bool
	outputDir         string
	exportPath        string
	exportAnnotations bool
)

// triageCmd represents the triage command
var triageCmd = &cobra.Command{
	Use:   "triage <dir>",
	Short: "Decide which demos to keep and act on the result",
	Long: `Triage scans a demos directory, extracts the event annotations for every
demo, and applies the inclusion policy:
- Demos without any annotations are always kept
- Annotated demos are excluded, unless --killstreak-only is set and every
  event is a killstreak

Example:
  demclean triage ./demos --source sidecar
  demclean triage ./demos --source eventlog --killstreak-only
  demclean triage ./demos --source sidecar --relocate --copy
  demclean triage ./demos --source eventlog --export kept.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runTriage,
}

func init() {
	rootCmd.AddCommand(triageCmd)

	// Collection flags
	triageCmd.Flags().StringVar(&triageSource, "source", "sidecar", "annotation source (sidecar, eventlog)")
	triageCmd.Flags().BoolVar(&killstreakOnly, "killstreak-only", false, "also keep demos whose every event is a killstreak")

	// Relocation flags
	triageCmd.Flags().BoolVar(&doRelocate, "relocate", false, "move included demos into the output directory")
	triageCmd.Flags().BoolVar(&copyFiles, "copy", false, "copy instead of move (implies --relocate)")
	triageCmd.Flags().StringVar(&outputDir, "output-dir", "", "output directory (default: <dir>/demclean-<timestamp>)")

	// Export flags
	triageCmd.Flags().StringVar(&exportPath, "export", "", "write included demo paths to this manifest file")
	triageCmd.Flags().BoolVar(&exportAnnotations, "export-annotations", true, "also write sidecar paths to the manifest")
}

func runTriage(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source := model.Source(triageSource)
	switch source {
	case model.SourceSidecar, model.SourceEventLog:
	default:
		return fmt.Errorf("unknown annotation source %q (want sidecar or eventlog)", triageSource)
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", dir)
		fmt.Fprintf(os.Stderr, "Source: %s\n", source)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	if killstreakOnly {
		fmt.Println("Demos containing only Killstreak events will be included.")
	} else {
		fmt.Println("Demos containing only Killstreak events will not be included.")
	}

	color.HiGreen("Searching for %s demos...", source)

	p := pipeline.NewPipeline(cfg, consoleDiagnostics{})
	records, err := p.Triage(dir, pipeline.Options{
		Source:         source,
		KillstreakOnly: killstreakOnly,
	})
	if err != nil {
		return err
	}

	if len(records) == 0 {
		color.HiRed("There are no included demos.")
		return nil
	}

	for _, rec := range records {
		color.HiGreen("Including %q: %s", filepath.Base(rec.DemoPath), rec.Reason)
	}
	fmt.Println(renderIncludedTable(records))

	if doRelocate || copyFiles {
		if err := relocateIncluded(dir, records); err != nil {
			return err
		}
	}

	if exportPath != "" {
		if err := exportIncluded(records); err != nil {
			return err
		}
	}

	color.HiGreen("Done.")
	return nil
}

// relocateIncluded moves or copies the included files into the output
// directory, one subfolder per annotation source
func relocateIncluded(dir string, records []*model.IncludedDemo) error {
	dest := outputDir
	if dest == "" {
		dest = filepath.Join(dir, output.DefaultName())
	}

	relocator := &output.Relocator{
		Copy: copyFiles,
		Printf: func(format string, args ...interface{}) {
			fmt.Printf(format+"\n", args...)
		},
	}

	count, err := relocator.Relocate(records, dest)
	if err != nil {
		return err
	}

	verb := "Moved"
	if copyFiles {
		verb = "Copied"
	}
	color.HiGreen("%s %d files to %s", verb, count, dest)
	return nil
}

// exportIncluded writes the manifest of included paths
func exportIncluded(records []*model.IncludedDemo) error {
	count, err := output.WriteManifest(records, exportPath, exportAnnotations)
	if err != nil {
		return err
	}

	color.HiGreen("Exported %d paths to %s", count, exportPath)
	return nil
}
