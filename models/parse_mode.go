package models

import (
	"fmt"
	"strings"
)

// SourceFormat says how a source document is decoded before tokenizing.
type SourceFormat int

const (
	// SourceFormatText tokenizes the raw file content as-is.
	SourceFormatText SourceFormat = iota
	// SourceFormatHTML strips tags and keeps all text nodes.
	SourceFormatHTML
	// SourceFormatArticle keeps only the readability main content.
	SourceFormatArticle
)

func (f SourceFormat) String() string {
	switch f {
	case SourceFormatHTML:
		return "html"
	case SourceFormatArticle:
		return "article"
	default:
		return "text"
	}
}

// ParseSourceFormat resolves a --source-format value. Empty means text.
func ParseSourceFormat(s string) (SourceFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return SourceFormatText, nil
	case "html":
		return SourceFormatHTML, nil
	case "article", "readability":
		return SourceFormatArticle, nil
	}
	return SourceFormatText, fmt.Errorf("unknown source format %q (want text, html or article)", s)
}
