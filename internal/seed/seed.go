// Package seed provides the starting document for an editing session: either the
// built-in page or one read from a YAML (or JSON) file.
package seed

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"sectionpad/internal/model"

	"gopkg.in/yaml.v3"
)

const defaultBlurb = "Deze vaardigheid betekent dat je leert hoe je betrouwbare, academische literatuur vindt voor je onderzoek. Je gebruikt hiervoor databases, zoekstrategieën en slimme zoektechnieken. Zo vind je snel de juiste informatie bij je onderwerp."

// Default returns the built-in page.
func Default() model.Document {
	return model.Document{
		Title: "Leervaardigheden",
		Sections: []model.Section{
			{
				ID:      "1",
				Title:   "Relevante academische literatuur vinden",
				Content: "Deze vaardigheid is ook goed wat nu dan weer betekent dat je leert hoe je betrouwbare, academische literatuur vindt voor je onderzoek. Je gebruikt hiervoor databases, zoekstrategieën en slimme zoektechnieken. Zo vind je snel de juiste informatie bij je onderwerp.",
			},
			{ID: "2", Title: "Academische literatuur kritisch lezen en verwerken", Content: defaultBlurb},
			{ID: "3", Title: "Mediavaardigheden (geletterdheid)", Content: defaultBlurb},
			{ID: "4", Title: "Kennishiaten in de literatuur identificeren", Content: defaultBlurb},
		},
	}
}

// Load reads a document from path. An empty path yields Default().
func Load(path string) (model.Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("read seed: %w", err)
	}
	doc, err := Parse(b)
	if err != nil {
		return model.Document{}, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a YAML or JSON document. Sections without an id get a positional one
// ("s1", "s2", ...) that does not clash with ids already present in the file.
func Parse(b []byte) (model.Document, error) {
	var doc model.Document
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return model.Document{}, err
	}
	if len(doc.Sections) == 0 {
		return model.Document{}, fmt.Errorf("no sections")
	}

	taken := map[string]bool{}
	for i := range doc.Sections {
		doc.Sections[i].ID = strings.TrimSpace(doc.Sections[i].ID)
		if id := doc.Sections[i].ID; id != "" {
			if taken[id] {
				return model.Document{}, fmt.Errorf("duplicate section id %q", id)
			}
			taken[id] = true
		}
	}
	n := 0
	for i := range doc.Sections {
		if doc.Sections[i].ID != "" {
			continue
		}
		for {
			n++
			id := "s" + strconv.Itoa(n)
			if !taken[id] {
				taken[id] = true
				doc.Sections[i].ID = id
				break
			}
		}
	}
	return doc, nil
}
