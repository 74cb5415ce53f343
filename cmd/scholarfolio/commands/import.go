package commands

import (
	"fmt"
	"os"
	"strings"

	scholarfolio "github.com/scholarfolio/scholarfolio"
	"github.com/scholarfolio/scholarfolio/internal/mdimport"
	"github.com/scholarfolio/scholarfolio/internal/snapshot"
)

// ImportCommand implements the import command: parse a markdown CV and
// append it to the snapshot as a new page.
func ImportCommand(args []string) error {
	var configPath string
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--config" || arg == "-c" {
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			}
		} else if !strings.HasPrefix(arg, "-") {
			positional = append(positional, arg)
		}
	}

	if len(positional) == 0 {
		return fmt.Errorf("usage: scholarfolio import <cv.md> [snapshot]")
	}
	markdownPath := positional[0]

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	snapshotPath := cfg.Site.GetSnapshotPath()
	if len(positional) > 1 {
		snapshotPath = positional[1]
	}

	src, err := os.ReadFile(markdownPath)
	if err != nil {
		return fmt.Errorf("failed to read markdown: %w", err)
	}

	page, err := mdimport.Import(src, scholarfolio.UUIDSource{})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	snap, err := snapshot.Load(snapshotPath)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if snap.Profile == nil {
		return fmt.Errorf("snapshot %s has no profile", snapshotPath)
	}
	snap.Profile.Pages = append(snap.Profile.Pages, page)

	if err := snapshot.Save(snapshotPath, snap); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	fmt.Printf("Imported %q (%d section(s)) into %s\n", page.Title, len(page.Layout), snapshotPath)
	return nil
}
