package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/agiangrant/flexlay"
	"github.com/agiangrant/flexlay/style"
)

// Document is a declarative layout file: the root canvas size plus a nested
// node tree. Node options are written as utility-class strings.
type Document struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	Root   NodeDoc `toml:"root"`
}

// NodeDoc is one node of a layout document.
type NodeDoc struct {
	Name     string    `toml:"name"`
	Kind     string    `toml:"kind"` // row, column, box, leaf, spacer
	Classes  string    `toml:"classes"`
	Children []NodeDoc `toml:"children"`
}

// Render implements the 'flexlay render' command.
func Render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	nodeName := fs.String("node", "", "Print one node's absolute position and size")
	themePath := fs.String("theme", "", "Style theme TOML to load before parsing classes")
	verbose := fs.Bool("verbose", false, "Trace measure/arrange passes")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: flexlay render [options] <file.toml>")
	}

	if *themePath != "" {
		if err := style.LoadTheme(*themePath); err != nil {
			return err
		}
	}

	doc, err := LoadDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if *verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
	}

	layout, err := BuildLayout(doc, logger)
	if err != nil {
		return err
	}
	layout.Compute()

	if *nodeName != "" {
		pos, ok := layout.AbsolutePosition(*nodeName)
		if !ok {
			return fmt.Errorf("node %q not found", *nodeName)
		}
		res, _ := layout.Result(*nodeName)
		fmt.Printf("%s: x=%.2f y=%.2f width=%.2f height=%.2f\n",
			*nodeName, pos.X, pos.Y, res.Width(), res.Height())
		return nil
	}

	fmt.Print(layout.DebugString())
	return nil
}

// LoadDocument reads and decodes a layout document.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc.Root.Name == "" {
		return Document{}, fmt.Errorf("%s: root node must have a name", path)
	}
	return doc, nil
}

// BuildLayout declares the document's tree into a fresh layout. Contract
// violations raised by the builder (duplicate names, a leaf root, an
// overfull box) are recovered and reported as errors, since documents are
// user input rather than source code.
func BuildLayout(doc Document, logger *zap.Logger) (layout *flexlay.Layout, err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*flexlay.ContractError)
			if !ok {
				panic(r)
			}
			layout, err = nil, ce
		}
	}()

	layout = flexlay.New(doc.Width, doc.Height, flexlay.WithLogger(logger))
	layout.Build(func(b *flexlay.Builder) {
		err = declareNode(b, doc.Root)
	})
	if err != nil {
		return nil, err
	}
	return layout, nil
}

func declareNode(b *flexlay.Builder, d NodeDoc) error {
	opts := style.Classes(d.Classes)
	var childErr error
	declareChildren := func() {
		for _, child := range d.Children {
			if err := declareNode(b, child); err != nil {
				childErr = err
				return
			}
		}
	}

	switch d.Kind {
	case "row":
		b.Row(d.Name, declareChildren, opts...)
	case "column", "col":
		b.Column(d.Name, declareChildren, opts...)
	case "box":
		b.Box(d.Name, declareChildren, opts...)
	case "leaf", "":
		if len(d.Children) > 0 {
			return fmt.Errorf("node %q: leaf cannot have children", d.Name)
		}
		b.Leaf(d.Name, opts...)
	case "spacer":
		b.Spacer()
	default:
		return fmt.Errorf("node %q: unknown kind %q", d.Name, d.Kind)
	}
	return childErr
}
