// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/fwojciec/gitcmd"
)

// Compile-time interface verification.
var (
	_ gitcmd.Tokenizer        = (*Tokenizer)(nil)
	_ gitcmd.LanguageDetector = (*Detector)(nil)
)

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct{}

// NewTokenizer creates a new chroma-based tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits source code into styled tokens for the given language.
// Returns nil if the language is not supported or tokenization fails.
// Returns an empty slice for empty source (valid input, no tokens).
func (t *Tokenizer) Tokenize(language, source string) []gitcmd.Token {
	if source == "" {
		return []gitcmd.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []gitcmd.Token
	for token := iterator(); token != chroma.EOF; token = iterator() {
		tokens = append(tokens, gitcmd.Token{
			Text:  token.Value,
			Style: tokenStyle(token.Type),
		})
	}

	return tokens
}

// Detector infers languages from file paths using chroma's lexer registry.
type Detector struct{}

// NewDetector creates a new chroma-based language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromPath returns the language name chroma associates with the
// path's file name, or "" when no lexer matches.
func (d *Detector) DetectFromPath(path string) string {
	lexer := lexers.Match(path)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}

// tokenStyle returns the visual style for a chroma token type.
// Colors are loosely based on the One Dark theme.
func tokenStyle(tt chroma.TokenType) gitcmd.Style {
	switch tt.Category() {
	case chroma.Keyword:
		return gitcmd.Style{Foreground: "#c678dd", Bold: true}
	case chroma.Comment:
		return gitcmd.Style{Foreground: "#5c6370"}
	case chroma.Operator:
		return gitcmd.Style{Foreground: "#56b6c2"}
	}

	switch tt.SubCategory() {
	case chroma.LiteralString:
		return gitcmd.Style{Foreground: "#98c379"}
	case chroma.LiteralNumber:
		return gitcmd.Style{Foreground: "#d19a66"}
	}

	switch tt {
	case chroma.NameBuiltin, chroma.NameBuiltinPseudo:
		return gitcmd.Style{Foreground: "#e5c07b"}
	case chroma.NameFunction, chroma.NameFunctionMagic:
		return gitcmd.Style{Foreground: "#61afef"}
	case chroma.NameClass, chroma.NameConstant, chroma.NameTag:
		return gitcmd.Style{Foreground: "#e06c75"}
	}

	return gitcmd.Style{}
}
