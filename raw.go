package gitcmd

import (
	"strconv"
	"strings"
)

// absentMode marks a side of a raw-format change where the file does not
// exist (new or deleted files).
const absentMode = "000000"

// ParseRaw parses the output of a raw-mode diff: ':'-prefixed status
// lines together with the numstat, shortstat and dirstat sections from
// the same invocation, all in one blob.
func ParseRaw(text string, dirstat bool) *DiffResult {
	var rawLines, rest []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, ":") {
			rawLines = append(rawLines, line)
		} else {
			rest = append(rest, line)
		}
	}

	statText := strings.Join(rest, "\n")
	index := ParseNumstatIndex(statText)

	result := &DiffResult{}
	s := splitSections(statText, dirstat)
	if s.shortstat != "" {
		result.FilesChanged, result.Insertions, result.Deletions = ParseShortstat(s.shortstat)
	}
	if dirstat {
		result.Dirstat = ParseDirstat(s.dirstat)
	}

	for _, line := range rawLines {
		rec, ok := parseRawLine(line, index)
		if !ok {
			continue
		}
		result.Files = append(result.Files, rec)
	}
	return result
}

// parseRawLine parses one raw-format line:
//
//	:<old-mode> <new-mode> <old-sha> <new-sha> <status>[<similarity>]\t<path>[\t<path2>]
//
// Two path fields appear only for renames and copies, source first.
func parseRawLine(line string, index map[string]Stat) (FileRecord, bool) {
	tabs := strings.Split(strings.TrimPrefix(line, ":"), "\t")
	if len(tabs) < 2 {
		return FileRecord{}, false
	}
	head := strings.Fields(tabs[0])
	if len(head) < 5 {
		return FileRecord{}, false
	}
	oldMode, newMode, oldSHA, newSHA, token := head[0], head[1], head[2], head[3], head[4]

	srcPath := UnescapePath(tabs[1])
	dstPath := srcPath
	if len(tabs) > 2 {
		dstPath = UnescapePath(tabs[2])
	}

	rec := FileRecord{
		Path:   dstPath,
		Status: ParseStatus(token[0]),
	}
	if len(tabs) > 2 {
		rec.SrcPath = srcPath
	}
	if rec.Status == StatusRenamed || rec.Status == StatusCopied {
		sim, _ := strconv.Atoi(token[1:])
		rec.Similarity = sim
	}
	if oldMode != absentMode {
		rec.Src = &FileRef{Mode: oldMode, SHA: oldSHA, Path: srcPath}
	}
	if newMode != absentMode {
		rec.Dst = &FileRef{Mode: newMode, SHA: newSHA, Path: dstPath}
	}

	// Line counts live in the numstat section, keyed by destination.
	stat := index[dstPath]
	rec.Insertions = stat.Insertions
	rec.Deletions = stat.Deletions
	rec.Binary = stat.Binary
	return rec, true
}
