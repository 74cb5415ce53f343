package commands

import (
	"fmt"
	"strings"

	"github.com/scholarfolio/scholarfolio/internal/export"
	"github.com/scholarfolio/scholarfolio/internal/snapshot"
)

// ExportCommand implements the export command: snapshot in, single
// self-contained HTML file out.
func ExportCommand(args []string) error {
	var configPath string
	var outDir string
	snapshotPath := ""

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--out" || arg == "-o" {
			if i+1 < len(args) {
				outDir = args[i+1]
				i++
			}
		} else if arg == "--config" || arg == "-c" {
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			}
		} else if !strings.HasPrefix(arg, "-") {
			snapshotPath = arg
		}
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if snapshotPath == "" {
		snapshotPath = cfg.Site.GetSnapshotPath()
	}
	if outDir == "" {
		outDir = cfg.Site.GetOutputDir()
	}

	snap, err := snapshot.Load(snapshotPath)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	path, err := export.WriteFile(outDir, snap)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("Exported %d page(s) to %s\n", len(snap.Profile.Pages), path)
	return nil
}
