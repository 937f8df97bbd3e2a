package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/flexlay/cmd/flexlay/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "render":
		err = commands.Render(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		fmt.Printf("flexlay version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`flexlay - layout computation CLI

Usage: flexlay <command> [options]

Commands:
  render <file.toml>   Compute a layout document and print its geometry
  init                 Write a starter layout document (flexlay.toml)
  version              Print the version
  help                 Show this help

Render options:
  --node <name>        Print one node's absolute position and size
  --theme <file.toml>  Load a style theme before parsing classes
  --verbose            Trace measure/arrange passes`)
}
