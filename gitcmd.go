// Package gitcmd provides domain types for driving the git command line
// and parsing its diff-report output formats.
package gitcmd

// Status represents the kind of change applied to a file.
type Status int

// File change kinds, matching git's raw-format status letters.
const (
	StatusModified Status = iota
	StatusAdded
	StatusDeleted
	StatusRenamed
	StatusCopied
	StatusTypeChanged
	StatusUnknown
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusAdded:
		return "added"
	case StatusDeleted:
		return "deleted"
	case StatusRenamed:
		return "renamed"
	case StatusCopied:
		return "copied"
	case StatusTypeChanged:
		return "type_changed"
	default:
		return "unknown"
	}
}

// ParseStatus maps a raw-format status letter to a Status.
// Unrecognized letters map to StatusUnknown.
func ParseStatus(letter byte) Status {
	switch letter {
	case 'A':
		return StatusAdded
	case 'M':
		return StatusModified
	case 'D':
		return StatusDeleted
	case 'R':
		return StatusRenamed
	case 'C':
		return StatusCopied
	case 'T':
		return StatusTypeChanged
	default:
		return StatusUnknown
	}
}

// FileRef identifies one side of a file change.
type FileRef struct {
	Mode string // 6-digit octal mode, e.g. "100644"
	SHA  string // object id, 4-40 hex chars
	Path string
}

// FileRecord represents changes to a single file. A single struct covers
// the numstat, raw and patch parse shapes; fields that a given shape does
// not produce keep their zero values.
type FileRecord struct {
	Path       string   // destination path (or the only path)
	SrcPath    string   // source path for renames/copies, "" otherwise
	Src        *FileRef // nil when the file does not exist on the old side
	Dst        *FileRef // nil when the file does not exist on the new side
	Status     Status
	Similarity int // 0-100, set only for renamed/copied
	Insertions int
	Deletions  int
	Binary     bool
	Patch      string // verbatim per-file diff block, patch mode only
}

// DiffResult is the unified output of any of the three diff parse paths.
type DiffResult struct {
	FilesChanged int // from the shortstat line; 0 when absent
	Insertions   int
	Deletions    int
	Files        []FileRecord // source order
	Dirstat      *Dirstat     // nil unless directory stats were requested
}

// Stat holds the per-file line counts recovered from a numstat section.
// It is the currency the raw and patch parsers use to enrich their records.
type Stat struct {
	Insertions int
	Deletions  int
	Binary     bool
}

// DirstatEntry is one directory's share of the overall change.
type DirstatEntry struct {
	Dir     string // with trailing '/'
	Percent float64
}

// Dirstat is the directory-level change breakdown. Percentages are not
// required to sum to 100.
type Dirstat struct {
	Entries []DirstatEntry
}

// Percent reports the percentage recorded for dir.
func (d *Dirstat) Percent(dir string) (float64, bool) {
	for _, e := range d.Entries {
		if e.Dir == dir {
			return e.Percent, true
		}
	}
	return 0, false
}
