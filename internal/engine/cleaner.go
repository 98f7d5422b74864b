package engine

import (
	"strings"
)

const (
	DefaultStartMarker  = "A"
	DefaultFooterMarker = "totaal"
)

// CleanOptions names the markers that delimit the data table.
type CleanOptions struct {
	StartMarker  string
	FooterMarker string
}

func (o CleanOptions) withDefaults() CleanOptions {
	if o.StartMarker == "" {
		o.StartMarker = DefaultStartMarker
	}
	if o.FooterMarker == "" {
		o.FooterMarker = DefaultFooterMarker
	}
	return o
}

// Clean cuts the data table out of raw and rewrites every row as a plain
// comma separated line: "<id>,<name>,<a>,<b>,...".
func Clean(raw string, opts CleanOptions) (string, error) {
	opts = opts.withDefaults()

	// Header: everything before the first id.
	start := strings.Index(raw, opts.StartMarker)
	if start == -1 {
		return "", &MalformedInputError{Marker: opts.StartMarker}
	}
	body := raw[start:]

	// Footer: the totals row and whatever follows it.
	end := strings.Index(body, opts.FooterMarker)
	if end == -1 {
		return "", &MalformedInputError{Marker: opts.FooterMarker}
	}
	body = strings.TrimSpace(body[:end])

	lines := strings.Split(body, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, cleanLine(line))
	}
	return strings.Join(out, "\n"), nil
}

// cleanLine drops only the first thousands separator of the row; values
// with more than one separator keep the rest.
func cleanLine(line string) string {
	id, rest, found := strings.Cut(line, " ")
	if !found {
		return line
	}
	rest = strings.Replace(rest, ",", "", 1)
	rest = strings.ReplaceAll(rest, ";", ",")
	return id + "," + rest
}
