package initcmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Command runs the init command with injectable dependencies.
type Command struct {
	fs  FS
	out io.Writer
}

func New() *Command {
	return &Command{fs: OSFS{}, out: os.Stdout}
}

// Run keeps the package-level API callers use from main.
func Run(o Opt) error {
	return New().Run(o)
}

func (c *Command) Run(o Opt) error {
	o = withDefaults(o)
	if o.Out == nil {
		o.Out = c.out
	}

	if o.List {
		return c.listTemplates(o.Out)
	}

	tpl, ok := findTemplate(o.Template)
	if !ok {
		return unknownTemplateErr(o.Template)
	}

	r := runner{fs: c.fs, o: o, t: tpl}
	return r.run()
}

func (c *Command) listTemplates(w io.Writer) error {
	width := 0
	for _, t := range templates {
		if len(t.Name) > width {
			width = len(t.Name)
		}
	}
	for _, t := range templates {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, t.Name, t.Description); err != nil {
			return fmt.Errorf("init: list templates: %w", err)
		}
	}
	return nil
}

func unknownTemplateErr(name string) error {
	if name == "" {
		name = "(empty)"
	}
	names := make([]string, 0, len(templates))
	for _, t := range templates {
		names = append(names, t.Name)
	}
	return fmt.Errorf(
		"init: unknown template %q (available: %s)",
		name,
		strings.Join(names, ", "),
	)
}
