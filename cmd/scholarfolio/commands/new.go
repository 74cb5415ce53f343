package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	scholarfolio "github.com/scholarfolio/scholarfolio"
	"github.com/scholarfolio/scholarfolio/internal/config"
	"github.com/scholarfolio/scholarfolio/internal/snapshot"
)

// NewCommand implements the new command: a starter directory with a
// default snapshot and config file, ready for serve.
func NewCommand(args []string) error {
	flagSet := flag.NewFlagSet("new", flag.ContinueOnError)
	name := flagSet.String("name", "", "Display name for the homepage (defaults to the directory name)")
	theme := flagSet.String("theme", "theme-1", "Starting theme id (theme-1 through theme-8)")

	flagSet.Usage = func() {
		fmt.Println("Usage: scholarfolio new [options] <directory>")
		fmt.Println()
		fmt.Println("Create a starter project with a default document.")
		fmt.Println()
		fmt.Println("Options:")
		flagSet.PrintDefaults()
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  scholarfolio new mysite")
		fmt.Println("  scholarfolio new mysite --name \"Dr. Ada Lovelace\" --theme theme-4")
	}

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	remainingArgs := flagSet.Args()
	if len(remainingArgs) < 1 {
		return fmt.Errorf("directory name required\n\nUsage: scholarfolio new [options] <directory>\n\nRun 'scholarfolio new --help' for more information")
	}
	dir := remainingArgs[0]

	if strings.Contains(dir, " ") {
		return fmt.Errorf("directory name cannot contain spaces")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		return fmt.Errorf("directory '%s' already exists", dir)
	}
	if !scholarfolio.ValidThemeID(scholarfolio.ThemeID(*theme)) {
		return fmt.Errorf("unknown theme: %s", *theme)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	profile := scholarfolio.DefaultProfile(scholarfolio.UUIDSource{})
	profile.Subdomain = scholarfolio.SanitizeSubdomain(dir)
	if *name != "" {
		profile.Name.Text = *name
	} else {
		profile.Name.Text = toTitle(dir)
	}

	snap := snapshot.Snapshot{
		Profile:      profile,
		Theme:        scholarfolio.ThemeID(*theme),
		PrimaryColor: snapshot.DefaultPrimaryColor,
	}
	if err := snapshot.Save(filepath.Join(dir, "site.json"), snap); err != nil {
		os.RemoveAll(dir)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	cfg := config.DefaultConfig()
	cfg.Styling.Theme = *theme
	if err := cfg.Save(filepath.Join(dir, "scholarfolio.yaml")); err != nil {
		os.RemoveAll(dir)
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Created new project: %s\n\n", dir)
	fmt.Printf("Next steps:\n")
	fmt.Printf("   cd %s\n", dir)
	fmt.Printf("   scholarfolio serve\n\n")
	fmt.Printf("Your editor will be available at http://localhost:8080\n")
	return nil
}

// toTitle converts a directory name to a display name.
// Example: "ada-lovelace" -> "Ada Lovelace"
func toTitle(name string) string {
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")

	words := strings.Fields(name)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
