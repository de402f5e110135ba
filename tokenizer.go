package gitcmd

// Token is a fragment of source text with an associated visual style.
type Token struct {
	Text  string
	Style Style
}

// Style describes how a token should be rendered.
type Style struct {
	Foreground string // hex color, e.g. "#c678dd"; "" for default
	Bold       bool
}

// Tokenizer extracts syntax tokens from source code.
type Tokenizer interface {
	// Tokenize splits source code into styled tokens for the given
	// language. Returns nil if the language is not supported.
	Tokenize(language, source string) []Token
}

// LanguageDetector infers a source language from a file path.
type LanguageDetector interface {
	// DetectFromPath returns a language name for the path, or "" if the
	// language cannot be determined.
	DetectFromPath(path string) string
}
