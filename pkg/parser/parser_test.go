package parser

import (
	"strings"
	"testing"

	"github.com/dtnitsch/mr-verify/models"
	"github.com/dtnitsch/mr-verify/pkg/analytics"
	"github.com/dtnitsch/mr-verify/pkg/storage"
	"github.com/stretchr/testify/require"
)

func TestDecode_TextIsIdentity(t *testing.T) {
	p := &Parser{Format: models.SourceFormatText}
	raw := "<p>not parsed</p> & kept"

	text, err := p.Decode(storage.Document{Name: "pg-1", Content: []byte(raw)})
	require.NoError(t, err)
	require.Equal(t, raw, text)
}

func TestDecode_HTML(t *testing.T) {
	p := &Parser{Format: models.SourceFormatHTML}
	html := `<html><head><title>Moby Dick</title><style>p { color: red }</style></head>
<body><h1>Call</h1><p>me <b>Ishmael</b>.</p><script>var whale = 1;</script><!-- hidden --></body></html>`

	text, err := p.Decode(storage.Document{Name: "pg-2701.html", Content: []byte(html)})
	require.NoError(t, err)

	words := analytics.Tokenize(text)
	require.Equal(t, []string{"Moby", "Dick", "Call", "me", "Ishmael"}, words)
	require.NotContains(t, text, "whale")
	require.NotContains(t, text, "hidden")
	require.NotContains(t, text, "color")
}

func TestDecode_Article(t *testing.T) {
	paragraph := strings.Repeat("The whale swam through the open sea while the crew watched in silence. ", 6)
	html := `<html><head><title>Whale Tales</title></head><body>
<nav><a href="/">Home</a></nav>
<article><h1>Whale Tales</h1><p>` + paragraph + `</p><p>` + paragraph + `</p></article>
</body></html>`

	p := &Parser{Format: models.SourceFormatArticle}
	text, err := p.Decode(storage.Document{Name: "pg-whale.html", Content: []byte(html)})
	require.NoError(t, err)
	require.Contains(t, text, "whale swam")
	require.NotContains(t, text, "<p>")
}
