package gitcmd

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	patchHeaderRE  = regexp.MustCompile(`^diff --git ("a/.*"|a/.*) ("b/.*"|b/.*)$`)
	indexRE        = regexp.MustCompile(`^index ([0-9a-f]{4,40})\.\.([0-9a-f]{4,40})(?: (\d{6}))?`)
	newFileModeRE  = regexp.MustCompile(`^new file mode (\d{6})$`)
	delFileModeRE  = regexp.MustCompile(`^deleted file mode (\d{6})$`)
	oldModeRE      = regexp.MustCompile(`^old mode (\d{6})$`)
	newModeRE      = regexp.MustCompile(`^new mode (\d{6})$`)
	renameFromRE   = regexp.MustCompile(`^rename from (.+)$`)
	renameToRE     = regexp.MustCompile(`^rename to (.+)$`)
	copyFromRE     = regexp.MustCompile(`^copy from (.+)$`)
	copyToRE       = regexp.MustCompile(`^copy to (.+)$`)
	similarityRE   = regexp.MustCompile(`^similarity index (\d+)%`)
	binaryFilesPfx = "Binary files "
	binaryPatch    = "GIT binary patch"
)

// patchFile accumulates one file's metadata while the scanner walks its
// block. It only becomes a FileRecord once finalized, so a malformed
// tail never emits a half-built record.
type patchFile struct {
	srcPath, dstPath string
	srcMode, dstMode string
	srcSHA, dstSHA   string
	status           Status
	similarity       int
	binary           bool
	lines            []string
}

// ParsePatch parses the output of a patch-mode diff: the numstat,
// shortstat and dirstat prefix followed by the full unified-diff text,
// which begins at the first "diff --git" header line.
func ParsePatch(text string, dirstat bool) *DiffResult {
	lines := strings.Split(text, "\n")

	// Everything before the first header is the stat prefix.
	body := len(lines)
	for i, line := range lines {
		if patchHeaderRE.MatchString(line) {
			body = i
			break
		}
	}
	prefix := strings.Join(lines[:body], "\n")
	index := ParseNumstatIndex(prefix)

	result := &DiffResult{}
	s := splitSections(prefix, dirstat)
	if s.shortstat != "" {
		result.FilesChanged, result.Insertions, result.Deletions = ParseShortstat(s.shortstat)
	}
	if dirstat {
		result.Dirstat = ParseDirstat(s.dirstat)
	}

	// Fold over the body carrying the in-progress file; a new header
	// finalizes the previous accumulator.
	var current *patchFile
	for _, line := range lines[body:] {
		if m := patchHeaderRE.FindStringSubmatch(line); m != nil {
			if current != nil {
				result.Files = append(result.Files, current.finalize(index))
			}
			current = &patchFile{
				srcPath: stripPathPrefix(m[1], "a/"),
				dstPath: stripPathPrefix(m[2], "b/"),
				lines:   []string{line},
			}
			continue
		}
		if current == nil {
			continue
		}
		current.scan(line)
	}
	if current != nil {
		result.Files = append(result.Files, current.finalize(index))
	}
	return result
}

// scan applies one line of the file block to the accumulator. Multiple
// metadata patterns may match across different lines of the same block;
// every line is kept verbatim in the patch text.
func (f *patchFile) scan(line string) {
	f.lines = append(f.lines, line)

	switch {
	case strings.HasPrefix(line, "index "):
		if m := indexRE.FindStringSubmatch(line); m != nil {
			f.srcSHA, f.dstSHA = m[1], m[2]
			// A mode on the index line means it did not change.
			if m[3] != "" && f.srcMode == "" && f.dstMode == "" {
				f.srcMode, f.dstMode = m[3], m[3]
			}
		}
	case strings.HasPrefix(line, "new file mode "):
		if m := newFileModeRE.FindStringSubmatch(line); m != nil {
			f.status = StatusAdded
			f.srcPath = ""
			f.dstMode = m[1]
		}
	case strings.HasPrefix(line, "deleted file mode "):
		if m := delFileModeRE.FindStringSubmatch(line); m != nil {
			f.status = StatusDeleted
			f.dstPath = ""
			f.srcMode = m[1]
		}
	case strings.HasPrefix(line, "old mode "):
		if m := oldModeRE.FindStringSubmatch(line); m != nil {
			f.srcMode = m[1]
			f.checkTypeChange()
		}
	case strings.HasPrefix(line, "new mode "):
		if m := newModeRE.FindStringSubmatch(line); m != nil {
			f.dstMode = m[1]
			f.checkTypeChange()
		}
	case strings.HasPrefix(line, "rename from "):
		if m := renameFromRE.FindStringSubmatch(line); m != nil {
			f.status = StatusRenamed
			f.srcPath = UnescapePath(m[1])
		}
	case strings.HasPrefix(line, "rename to "):
		if m := renameToRE.FindStringSubmatch(line); m != nil {
			f.status = StatusRenamed
			f.dstPath = UnescapePath(m[1])
		}
	case strings.HasPrefix(line, "copy from "):
		if m := copyFromRE.FindStringSubmatch(line); m != nil {
			f.status = StatusCopied
			f.srcPath = UnescapePath(m[1])
		}
	case strings.HasPrefix(line, "copy to "):
		if m := copyToRE.FindStringSubmatch(line); m != nil {
			f.status = StatusCopied
			f.dstPath = UnescapePath(m[1])
		}
	case strings.HasPrefix(line, "similarity index "):
		if m := similarityRE.FindStringSubmatch(line); m != nil {
			f.similarity, _ = strconv.Atoi(m[1])
		}
	case strings.HasPrefix(line, binaryFilesPfx), line == binaryPatch:
		f.binary = true
	}
}

// checkTypeChange overrides the status once both modes are known and
// their type bits (the first three octal digits) differ.
func (f *patchFile) checkTypeChange() {
	if len(f.srcMode) == 6 && len(f.dstMode) == 6 && f.srcMode[:3] != f.dstMode[:3] {
		f.status = StatusTypeChanged
	}
}

// finalize converts the accumulator into a FileRecord, merging in line
// counts from the numstat index.
func (f *patchFile) finalize(index map[string]Stat) FileRecord {
	rec := FileRecord{
		Path:       f.dstPath,
		Status:     f.status,
		Similarity: f.similarity,
		Binary:     f.binary,
		Patch:      strings.Join(f.lines, "\n"),
	}
	if rec.Path == "" {
		rec.Path = f.srcPath
	}
	if f.status == StatusRenamed || f.status == StatusCopied {
		rec.SrcPath = f.srcPath
	}
	// A side with no path does not exist on that side of the diff.
	if f.srcPath != "" {
		rec.Src = &FileRef{Mode: f.srcMode, SHA: f.srcSHA, Path: f.srcPath}
	}
	if f.dstPath != "" {
		rec.Dst = &FileRef{Mode: f.dstMode, SHA: f.dstSHA, Path: f.dstPath}
	}

	key := f.dstPath
	if key == "" {
		key = f.srcPath
	}
	stat := index[key]
	rec.Insertions = stat.Insertions
	rec.Deletions = stat.Deletions
	if stat.Binary {
		rec.Binary = true
	}
	return rec
}

// stripPathPrefix removes optional quoting and the a/ or b/ prefix from
// a header path.
func stripPathPrefix(token, prefix string) string {
	if strings.HasPrefix(token, `"`) {
		return strings.TrimPrefix(UnescapePath(token), prefix)
	}
	return strings.TrimPrefix(token, prefix)
}
