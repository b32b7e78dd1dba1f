package parser

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/mr-verify/models"
	"github.com/dtnitsch/mr-verify/pkg/storage"
	"github.com/go-shiori/go-readability"
)

type Parser struct {
	Format models.SourceFormat
}

// Decode turns a source document into the text that gets tokenized.
func (p *Parser) Decode(doc storage.Document) (string, error) {
	switch p.Format {
	case models.SourceFormatHTML:
		return htmlText(string(doc.Content))
	case models.SourceFormatArticle:
		return articleText(doc.Name, string(doc.Content))
	default:
		return string(doc.Content), nil
	}
}

// htmlText returns every text node of the page in document order, one
// space after each. Script and style bodies are dropped.
func htmlText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var sb strings.Builder
	collectText(doc.Selection, &sb)
	return sb.String(), nil
}

func collectText(s *goquery.Selection, sb *strings.Builder) {
	s.Contents().Each(func(_ int, child *goquery.Selection) {
		switch goquery.NodeName(child) {
		case "#text":
			sb.WriteString(child.Text())
			sb.WriteByte(' ')
		case "#comment", "script", "style", "noscript", "template":
		default:
			collectText(child, sb)
		}
	})
}

// articleText lets go-readability find the main content, then extracts its
// text the same way as htmlText. The title is kept as the first line.
func articleText(name, html string) (string, error) {
	pageURL := &url.URL{Scheme: "file", Path: name}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(html), pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract article from %s: %w", name, err)
	}

	body, err := htmlText(article.Content)
	if err != nil {
		return "", err
	}

	return article.Title + "\n" + body, nil
}
