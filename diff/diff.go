// Package diff computes a classified line-level comparison between two
// extracted document texts.
//
// Lines are aligned with a longest-common-subsequence edit script and each
// line is classified as added, removed, modified, or unchanged. The result
// preserves reading order, so a renderer can reproduce an inline or
// side-by-side view of the full document.
package diff

import (
	"encoding/json"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Kind identifies how a line changed between the two documents.
type Kind string

const (
	Added     Kind = "added"
	Removed   Kind = "removed"
	Modified  Kind = "modified"
	Unchanged Kind = "unchanged"
)

// Change is a single classified line of the comparison.
// For Modified changes Old and New carry the two versions of the line;
// for every other kind Text carries the line itself.
type Change struct {
	Kind Kind
	Text string
	Old  string
	New  string
}

// MarshalJSON emits only the fields relevant to the change kind:
// old/new for modified changes, text otherwise.
func (c Change) MarshalJSON() ([]byte, error) {
	if c.Kind == Modified {
		return json.Marshal(struct {
			Kind Kind   `json:"kind"`
			Old  string `json:"old"`
			New  string `json:"new"`
		}{c.Kind, c.Old, c.New})
	}
	return json.Marshal(struct {
		Kind Kind   `json:"kind"`
		Text string `json:"text"`
	}{c.Kind, c.Text})
}

// Summary counts the non-identical changes of a comparison.
// Unchanged lines are kept in the change sequence but not counted here.
type Summary struct {
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Modified int `json:"modified"`
}

// Diff compares two texts line by line and classifies every line.
// It is total: any pair of strings, including empty ones, produces a valid
// result. The summary is always derived from the returned changes.
func Diff(oldText, newText string) ([]Change, Summary) {
	oldLines := SplitLines(oldText)
	newLines := SplitLines(newText)

	matcher := difflib.NewMatcher(oldLines, newLines)

	var changes []Change
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for i := op.I1; i < op.I2; i++ {
				changes = append(changes, Change{Kind: Unchanged, Text: oldLines[i]})
			}
		case 'd':
			for i := op.I1; i < op.I2; i++ {
				changes = append(changes, Change{Kind: Removed, Text: oldLines[i]})
			}
		case 'i':
			for j := op.J1; j < op.J2; j++ {
				changes = append(changes, Change{Kind: Added, Text: newLines[j]})
			}
		case 'r':
			changes = append(changes, pairReplacement(oldLines[op.I1:op.I2], newLines[op.J1:op.J2])...)
		}
	}

	return changes, Summarize(changes)
}

// pairReplacement reduces a run of deletions followed by insertions into
// positionally paired Modified changes. The k-th deleted line pairs with the
// k-th inserted line; leftover deletions become Removed and leftover
// insertions become Added.
func pairReplacement(deleted, inserted []string) []Change {
	n := len(deleted)
	if len(inserted) < n {
		n = len(inserted)
	}

	changes := make([]Change, 0, len(deleted)+len(inserted)-n)
	for k := 0; k < n; k++ {
		changes = append(changes, Change{Kind: Modified, Old: deleted[k], New: inserted[k]})
	}
	for _, line := range deleted[n:] {
		changes = append(changes, Change{Kind: Removed, Text: line})
	}
	for _, line := range inserted[n:] {
		changes = append(changes, Change{Kind: Added, Text: line})
	}
	return changes
}

// Summarize counts the added, removed, and modified changes in a sequence.
// This is the only way a Summary is produced, so the counts can never drift
// from the change records they describe.
func Summarize(changes []Change) Summary {
	var s Summary
	for _, c := range changes {
		switch c.Kind {
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		case Modified:
			s.Modified++
		}
	}
	return s
}

// SplitLines splits text into ordered lines. CRLF and lone CR boundaries are
// treated as LF, and a trailing boundary does not produce an empty final
// line. Empty input yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		// Input was only line boundaries.
		return []string{""}
	}

	return strings.Split(text, "\n")
}
