package export

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; margin-bottom: 1.5rem; }
th, td { border: 1px solid #ccc; padding: 0.25rem 0.75rem; }
</style>
</head>
<body>
%s</body>
</html>
`

// HTML renders the Markdown sheet into a standalone HTML page.
func HTML(doc Document) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(doc)), &body); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}
	return []byte(fmt.Sprintf(htmlPage, html.EscapeString(doc.Title), body.String())), nil
}
