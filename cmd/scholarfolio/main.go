// Command scholarfolio is the CLI for building and serving academic
// homepages.
package main

import (
	"fmt"
	"os"

	"github.com/scholarfolio/scholarfolio/cmd/scholarfolio/commands"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "serve":
		err = commands.ServeCommand(args)
	case "export":
		err = commands.ExportCommand(args)
	case "import":
		err = commands.ImportCommand(args)
	case "new":
		err = commands.NewCommand(args)
	case "version":
		fmt.Printf("scholarfolio version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("scholarfolio - Academic homepages without the yak shaving")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  scholarfolio serve [snapshot]          Start the live editor")
	fmt.Println("  scholarfolio export [snapshot]         Write the static site")
	fmt.Println("  scholarfolio import <cv.md> [snapshot] Append a page from markdown")
	fmt.Println("  scholarfolio new [directory]           Create a starter project")
	fmt.Println("  scholarfolio version                   Show version")
	fmt.Println("  scholarfolio help                      Show this help")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  scholarfolio new mysite            # Starter snapshot and config")
	fmt.Println("  scholarfolio serve                 # Edit site.json at :8080")
	fmt.Println("  scholarfolio serve --port 3000     # Pick a port")
	fmt.Println("  scholarfolio serve --no-watch      # Ignore external edits")
	fmt.Println("  scholarfolio export                # Write dist/<subdomain>.html")
	fmt.Println("  scholarfolio export -o public      # Pick the output directory")
	fmt.Println("  scholarfolio import cv.md          # Turn a markdown CV into a page")
	fmt.Println()
	fmt.Println("Documentation: https://github.com/scholarfolio/scholarfolio")
}
