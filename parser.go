package gitcmd

// HunkParser parses a file's verbatim patch block into structured hunks.
type HunkParser interface {
	// ParseHunks reads one file's unified-diff text and returns its hunks.
	ParseHunks(patch string) ([]Hunk, error)
}
