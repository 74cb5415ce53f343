package commands

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	scholarfolio "github.com/scholarfolio/scholarfolio"
	"github.com/scholarfolio/scholarfolio/internal/config"
	"github.com/scholarfolio/scholarfolio/internal/server"
	"github.com/scholarfolio/scholarfolio/internal/session"
	"github.com/scholarfolio/scholarfolio/internal/snapshot"
)

// ServeCommand implements the serve command.
func ServeCommand(args []string) error {
	var configPath string
	var port string
	var host string
	var watch *bool
	var debug bool
	snapshotPath := ""

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--watch" || arg == "-w" {
			watchVal := true
			watch = &watchVal
		} else if arg == "--no-watch" {
			watchVal := false
			watch = &watchVal
		} else if arg == "--debug" {
			debug = true
		} else if arg == "--port" || arg == "-p" {
			if i+1 < len(args) {
				port = args[i+1]
				i++
			}
		} else if arg == "--host" {
			if i+1 < len(args) {
				host = args[i+1]
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

	// CLI flags override config
	if port != "" {
		portInt, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid port: %s", port)
		}
		cfg.Server.Port = portInt
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if watch != nil {
		cfg.Site.Watch = *watch
	}
	if debug {
		cfg.Server.Debug = true
	}
	if snapshotPath != "" {
		cfg.Site.Snapshot = snapshotPath
	}

	sess, loaded, err := openSession(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("scholarfolio editor\n\n")
	if loaded {
		fmt.Printf("Snapshot: %s\n", cfg.Site.GetSnapshotPath())
	} else {
		fmt.Printf("Snapshot: %s (not found, starting from the default document)\n", cfg.Site.GetSnapshotPath())
	}
	fmt.Printf("Pages: %d  Theme: %s\n", len(sess.Profile().Pages), sess.Theme())

	srv := server.New(cfg, sess)
	defer srv.Close()

	if cfg.Site.Watch && loaded {
		if err := srv.WatchSnapshot(cfg.Site.GetSnapshotPath()); err != nil {
			return fmt.Errorf("failed to watch snapshot: %w", err)
		}
		fmt.Printf("Watch mode enabled, external edits to the snapshot reload the session\n")
	}
	if cfg.Assist.GetAPIKey() != "" {
		fmt.Printf("Writing assist enabled (%s)\n", cfg.Assist.GetModel())
	}

	fmt.Printf("\nEditor running at http://%s\n", cfg.Server.Addr())
	fmt.Printf("Press Ctrl+C to stop\n\n")

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// loadConfig resolves the config file: an explicit path wins, otherwise
// scholarfolio.yaml in the working directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		fmt.Printf("Using config: %s\n", configPath)
		return cfg, nil
	}
	cfg, err := config.LoadFromDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// openSession builds the editor session from the configured snapshot.
// A missing file is not an error, the session starts from the default
// document; a malformed file is.
func openSession(cfg *config.Config) (*session.EditorSession, bool, error) {
	path := cfg.Site.GetSnapshotPath()
	theme := scholarfolio.ThemeID(cfg.Styling.Theme)
	color := cfg.Styling.PrimaryColor

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return session.New(scholarfolio.UUIDSource{}, nil, theme, color), false, nil
	}

	snap, err := snapshot.Load(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if snap.Theme != "" {
		theme = snap.Theme
	}
	if snap.PrimaryColor != "" {
		color = snap.PrimaryColor
	}
	return session.New(scholarfolio.UUIDSource{}, snap.Profile, theme, color), true, nil
}

func init() {
	log.SetFlags(0) // Remove timestamp from logs
}
