package cli

import (
	"fmt"
	"strings"

	"sectionpad/internal/format"
)

type unknownFormatError struct {
	flag  string
	value string
}

func (e unknownFormatError) Error() string {
	return fmt.Sprintf("unknown %s format: %q (want json|yaml|markdown)", e.flag, strings.TrimSpace(e.value))
}

func formatNames() []string {
	return append([]string(nil), format.Names...)
}
