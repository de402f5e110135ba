// Package gitdiff implements hunk parsing using bluekeyes/go-gitdiff.
package gitdiff

import (
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"

	"github.com/fwojciec/gitcmd"
)

// Compile-time interface verification.
var _ gitcmd.HunkParser = (*Parser)(nil)

// Parser parses per-file patch blocks using go-gitdiff.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseHunks reads one file's unified-diff text and returns its hunks.
// Binary blocks and empty patches yield no hunks and no error.
func (p *Parser) ParseHunks(patch string) ([]gitcmd.Hunk, error) {
	if strings.TrimSpace(patch) == "" {
		return nil, nil
	}
	files, _, err := gitdiff.Parse(strings.NewReader(patch))
	if err != nil {
		return nil, err
	}

	var hunks []gitcmd.Hunk
	for _, f := range files {
		for _, frag := range f.TextFragments {
			hunks = append(hunks, convertFragment(frag))
		}
	}
	return hunks, nil
}

func convertFragment(frag *gitdiff.TextFragment) gitcmd.Hunk {
	hunk := gitcmd.Hunk{
		OldStart: int(frag.OldPosition),
		OldCount: int(frag.OldLines),
		NewStart: int(frag.NewPosition),
		NewCount: int(frag.NewLines),
		Section:  frag.Comment,
	}

	// Track line numbers for old and new files
	oldLineNum := int(frag.OldPosition)
	newLineNum := int(frag.NewPosition)

	for _, l := range frag.Lines {
		line := gitcmd.Line{
			Content:   l.Line,
			NoNewline: l.NoEOL(),
		}

		switch l.Op {
		case gitdiff.OpContext:
			line.Type = gitcmd.LineContext
			line.OldLineNum = oldLineNum
			line.NewLineNum = newLineNum
			oldLineNum++
			newLineNum++
		case gitdiff.OpAdd:
			line.Type = gitcmd.LineAdded
			line.NewLineNum = newLineNum
			newLineNum++
		case gitdiff.OpDelete:
			line.Type = gitcmd.LineDeleted
			line.OldLineNum = oldLineNum
			oldLineNum++
		}

		hunk.Lines = append(hunk.Lines, line)
	}

	return hunk
}
