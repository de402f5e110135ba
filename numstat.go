package gitcmd

import "strings"

// sections is a numstat blob partitioned around its shortstat line.
type sections struct {
	numstat   []string
	shortstat string // "" when no shortstat line was present
	dirstat   []string
}

// splitSections locates the shortstat line by pattern match; everything
// before it is numstat lines, everything after is dirstat lines. When no
// shortstat line exists the whole blob is offered to both parsers, whose
// line filters are disjoint.
func splitSections(text string, dirstat bool) sections {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if isShortstat(line) {
			s := sections{numstat: lines[:i], shortstat: line}
			if dirstat {
				s.dirstat = lines[i+1:]
			}
			return s
		}
	}
	s := sections{numstat: lines}
	if dirstat {
		s.dirstat = lines
	}
	return s
}

// ParseNumstat parses the output of a numstat-mode diff: per-file count
// lines, an optional shortstat summary, and (when requested) trailing
// dirstat lines.
func ParseNumstat(text string, dirstat bool) *DiffResult {
	s := splitSections(text, dirstat)
	result := &DiffResult{}
	if s.shortstat != "" {
		result.FilesChanged, result.Insertions, result.Deletions = ParseShortstat(s.shortstat)
	}
	for _, line := range s.numstat {
		rec, ok := parseNumstatLine(line)
		if !ok {
			continue
		}
		result.Files = append(result.Files, rec)
	}
	if dirstat {
		result.Dirstat = ParseDirstat(s.dirstat)
	}
	return result
}

// ParseNumstatIndex parses numstat lines into a lookup keyed by the
// destination (post-rename) path. Binary is set exactly when both count
// fields were the "-" placeholder.
func ParseNumstatIndex(text string) map[string]Stat {
	index := make(map[string]Stat)
	for _, line := range strings.Split(text, "\n") {
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) != 3 {
			continue
		}
		dst, _ := SplitRenamePath(UnescapePath(fields[2]))
		index[dst] = Stat{
			Insertions: ParseStatValue(fields[0]),
			Deletions:  ParseStatValue(fields[1]),
			Binary:     fields[0] == "-" && fields[1] == "-",
		}
	}
	return index
}

// parseNumstatLine parses one "<ins>\t<del>\t<path>" line. The path field
// may contain tabs inside quoting, hence the max-3 split.
func parseNumstatLine(line string) (FileRecord, bool) {
	fields := strings.SplitN(line, "\t", 3)
	if len(fields) != 3 {
		return FileRecord{}, false
	}
	dst, src := SplitRenamePath(UnescapePath(fields[2]))
	return FileRecord{
		Path:       dst,
		SrcPath:    src,
		Insertions: ParseStatValue(fields[0]),
		Deletions:  ParseStatValue(fields[1]),
	}, true
}
