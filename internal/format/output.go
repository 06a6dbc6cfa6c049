package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sectionpad/internal/model"

	"gopkg.in/yaml.v3"
)

// Names lists the accepted values for Write.
var Names = []string{"json", "yaml", "markdown", "terminal"}

// Write writes doc in the requested format.
//
// Supported formats:
// - json (default)
// - yaml (readable back as a seed document)
// - markdown
// - terminal (markdown rendered for the terminal, wrapped at width)
func Write(w io.Writer, doc model.Document, format string, pretty bool, width int) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return WriteJSON(w, doc, pretty)
	case "yaml", "yml":
		return WriteYAML(w, doc)
	case "markdown", "md":
		_, err := io.WriteString(w, Markdown(doc))
		return err
	case "terminal":
		out, err := RenderTerminal(Markdown(doc), width)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Markdown renders the page as a level-1 heading followed by one level-2 heading per section.
func Markdown(doc model.Document) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	title := strings.TrimSpace(doc.Title)
	if title == "" {
		title = "Untitled"
	}
	writeLn("# " + title)
	for _, s := range doc.Sections {
		writeLn("")
		st := strings.TrimSpace(s.Title)
		if st == "" {
			st = "(untitled section)"
		}
		writeLn("## " + st)
		if body := strings.TrimSpace(s.Content); body != "" {
			writeLn("")
			writeLn(body)
		}
	}
	return buf.String()
}
