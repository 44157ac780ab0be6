package printer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"
)

// PObj pretty-prints an arbitrary Go value, showing types and nesting.
func (p *Printer) PObj(obj any, f Format) error {
	cfg := spew.ConfigState{
		Indent:                  strings.Repeat(" ", indentWidth),
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	return p.printBlock(cfg.Sdump(obj), f)
}

// PJSON prints obj as JSON indented by indent spaces per level, or compact
// JSON if indent is negative.
func (p *Printer) PJSON(obj any, indent int, f Format) error {
	var (
		data []byte
		err  error
	)
	if indent < 0 {
		data, err = json.Marshal(obj)
	} else {
		data, err = json.MarshalIndent(obj, "", strings.Repeat(" ", indent))
	}
	if err != nil {
		return fmt.Errorf("printer: failed to encode JSON: %w", err)
	}
	return p.printBlock(string(data), f)
}

// PYAML prints obj as a YAML document indented by indent spaces per level.
func (p *Printer) PYAML(obj any, indent int, f Format) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(max(indent, 2))
	if err := enc.Encode(obj); err != nil {
		return fmt.Errorf("printer: failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("printer: failed to encode YAML: %w", err)
	}
	return p.printBlock(buf.String(), f)
}

// printBlock prints multi-line machine output as a spaced block. Its text is
// never read for a leading tag, so JSON arrays and the like print intact.
func (p *Printer) printBlock(text string, f Format) error {
	text = strings.TrimRight(text, "\n")
	return p.block(false, func() error {
		return p.print(text, f, false)
	})
}
