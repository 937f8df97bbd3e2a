package commands

import (
	"flag"
	"fmt"
	"os"
)

const starterDocument = `# flexlay layout document
width = 320.0
height = 240.0

[root]
name = "dialog"
kind = "column"
classes = "p-2 gap-1 items-stretch"

[[root.children]]
name = "title"
kind = "leaf"
classes = "h-[24]"

[[root.children]]
name = "body"
kind = "row"
classes = "grow gap-1 items-stretch"

[[root.children.children]]
name = "portrait"
kind = "leaf"
classes = "w-[64]"

[[root.children.children]]
name = "text"
kind = "leaf"
classes = "grow"

[[root.children]]
name = "buttons"
kind = "row"
classes = "h-[28] gap-1"

[[root.children.children]]
name = "accept"
kind = "leaf"
classes = "w-[72]"

[[root.children.children]]
kind = "spacer"

[[root.children.children]]
name = "decline"
kind = "leaf"
classes = "w-[72]"
`

// Init implements the 'flexlay init' command.
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	out := fs.String("out", "flexlay.toml", "Output path for the starter document")
	force := fs.Bool("force", false, "Overwrite an existing file")
	fs.Parse(args)

	if _, err := os.Stat(*out); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", *out)
	}

	if err := os.WriteFile(*out, []byte(starterDocument), 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", *out)
	return nil
}
