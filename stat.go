package gitcmd

import (
	"regexp"
	"strconv"
	"strings"
)

// Shortstat phrases are matched independently: a diff with no deletions
// simply omits the deletions clause, so each pattern degrades to zero.
var (
	shortstatFilesRE      = regexp.MustCompile(`(\d+) files? changed`)
	shortstatInsertionsRE = regexp.MustCompile(`(\d+) insertions?\(\+\)`)
	shortstatDeletionsRE  = regexp.MustCompile(`(\d+) deletions?\(-\)`)

	dirstatRE = regexp.MustCompile(`^\s*([0-9.]+)% (.+)$`)
)

// ParseStatValue parses a numstat count token. The literal "-" marks a
// binary file and maps to 0, as does anything else that is not a number.
func ParseStatValue(token string) int {
	if token == "-" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0
	}
	return n
}

// ParseShortstat extracts the three totals from a shortstat summary line.
// Any phrase absent from the line yields 0 for that total.
func ParseShortstat(line string) (files, insertions, deletions int) {
	return matchCount(shortstatFilesRE, line),
		matchCount(shortstatInsertionsRE, line),
		matchCount(shortstatDeletionsRE, line)
}

func matchCount(re *regexp.Regexp, line string) int {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// isShortstat reports whether line looks like a shortstat summary.
func isShortstat(line string) bool {
	return shortstatFilesRE.MatchString(line) ||
		shortstatInsertionsRE.MatchString(line) ||
		shortstatDeletionsRE.MatchString(line)
}

// ParseDirstat parses dirstat lines of the form "<float>% <directory>".
// Lines that do not match are skipped; git can append recursion markers
// this package has no use for.
func ParseDirstat(lines []string) *Dirstat {
	d := &Dirstat{}
	for _, line := range lines {
		m := dirstatRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		pct, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		d.Entries = append(d.Entries, DirstatEntry{Dir: m[2], Percent: pct})
	}
	return d
}
