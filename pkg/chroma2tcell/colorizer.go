// Package chroma2tcell renders chroma tokens as tview colour tags.
package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

// Colorize tokenises text with lexer and wraps every styled token in tview
// tags carrying its foreground colour and bold, italic or underline flags.
// Unknown style names fall back to chroma's default style.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}
	style := styles.Get(styleName)

	var sb strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		open, closing := tagsFor(style.Get(token.Type))
		sb.WriteString(open)
		sb.WriteString(tview.Escape(token.Value))
		sb.WriteString(closing)
	}
	return sb.String(), nil
}

func tagsFor(entry chroma.StyleEntry) (open, closing string) {
	var attrs []byte
	if entry.Bold == chroma.Yes {
		attrs = append(attrs, 'b')
	}
	if entry.Italic == chroma.Yes {
		attrs = append(attrs, 'i')
	}
	if entry.Underline == chroma.Yes {
		attrs = append(attrs, 'u')
	}
	var fg string
	if entry.Colour.IsSet() {
		fg = entry.Colour.String()
	}
	switch {
	case len(attrs) > 0:
		return "[" + fg + "::" + string(attrs) + "]", "[-::-]"
	case fg != "":
		return "[" + fg + "]", "[-]"
	}
	return "", ""
}

var matchLexer = lexers.Match
var analyseLexer = lexers.Analyse

// LexerFor picks a lexer by file name and falls back to content analysis.
// It returns nil when neither recognises the file.
func LexerFor(fileName, text string) chroma.Lexer {
	if lexer := matchLexer(fileName); lexer != nil {
		return lexer
	}
	return analyseLexer(text)
}

// ColorizeFile highlights text of the file named fileName.
// Unrecognised files are returned escaped and without colours.
func ColorizeFile(fileName, text, styleName string) (string, error) {
	lexer := LexerFor(fileName, text)
	if lexer == nil {
		return tview.Escape(text), nil
	}
	return Colorize(text, styleName, chroma.Coalesce(lexer))
}
