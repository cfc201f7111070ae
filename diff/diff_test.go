package diff

import (
	"encoding/json"
	"strings"
	"testing"
)

func kinds(changes []Change) []Kind {
	out := make([]Kind, len(changes))
	for i, c := range changes {
		out[i] = c.Kind
	}
	return out
}

func TestIdenticalTexts(t *testing.T) {
	text := "alpha\nbravo\ncharlie\n"

	changes, summary := Diff(text, text)

	if len(changes) != 3 {
		t.Fatalf("expected 3 changes, got %d", len(changes))
	}
	for i, c := range changes {
		if c.Kind != Unchanged {
			t.Errorf("change %d: expected unchanged, got %s", i, c.Kind)
		}
	}
	if summary != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}

func TestEmptyAgainstEmpty(t *testing.T) {
	changes, summary := Diff("", "")

	if len(changes) != 0 {
		t.Errorf("expected no changes, got %d", len(changes))
	}
	if summary != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}

func TestFullReplacement(t *testing.T) {
	changes, summary := Diff("", "one\ntwo\nthree")

	if len(changes) != 3 {
		t.Fatalf("expected 3 changes, got %d", len(changes))
	}
	for i, c := range changes {
		if c.Kind != Added {
			t.Errorf("change %d: expected added, got %s", i, c.Kind)
		}
	}
	if summary.Added != 3 || summary.Removed != 0 || summary.Modified != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}

	changes, summary = Diff("one\ntwo\nthree", "")
	for i, c := range changes {
		if c.Kind != Removed {
			t.Errorf("change %d: expected removed, got %s", i, c.Kind)
		}
	}
	if summary.Removed != 3 || summary.Added != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestModificationPairing(t *testing.T) {
	changes, summary := Diff("A\nB", "A\nC")

	want := []Kind{Unchanged, Modified}
	got := kinds(changes)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	mod := changes[1]
	if mod.Old != "B" || mod.New != "C" {
		t.Errorf("expected B->C, got %q->%q", mod.Old, mod.New)
	}
	if summary != (Summary{Modified: 1}) {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestExcessDeletions(t *testing.T) {
	changes, summary := Diff("A\nB", "X")

	if summary.Modified != 1 || summary.Removed != 1 || summary.Added != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	var sawModified, sawRemoved bool
	for _, c := range changes {
		switch c.Kind {
		case Modified:
			sawModified = true
			if c.New != "X" {
				t.Errorf("expected modification into X, got %q", c.New)
			}
		case Removed:
			sawRemoved = true
		case Added:
			t.Errorf("unexpected added change: %+v", c)
		}
	}
	if !sawModified || !sawRemoved {
		t.Errorf("expected one modified and one removed, got %v", kinds(changes))
	}
}

func TestExcessInsertions(t *testing.T) {
	_, summary := Diff("X", "A\nB\nC")

	if summary.Modified != 1 || summary.Added != 2 || summary.Removed != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestReplacementPairsPositionally(t *testing.T) {
	changes, _ := Diff("one\ntwo\nthree", "uno\ndue\ntre")

	if len(changes) != 3 {
		t.Fatalf("expected 3 changes, got %d: %v", len(changes), kinds(changes))
	}
	wantOld := []string{"one", "two", "three"}
	wantNew := []string{"uno", "due", "tre"}
	for i, c := range changes {
		if c.Kind != Modified {
			t.Fatalf("change %d: expected modified, got %s", i, c.Kind)
		}
		if c.Old != wantOld[i] || c.New != wantNew[i] {
			t.Errorf("change %d: expected %q->%q, got %q->%q", i, wantOld[i], wantNew[i], c.Old, c.New)
		}
	}
}

func TestSummaryMatchesChanges(t *testing.T) {
	cases := []struct {
		name     string
		old, new string
	}{
		{"identical", "a\nb", "a\nb"},
		{"disjoint", "a\nb\nc", "x\ny"},
		{"interleaved", "a\nb\nc\nd", "a\nx\nc\ny\nz"},
		{"old empty", "", "a\nb"},
		{"new empty", "a\nb", ""},
		{"both empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			changes, summary := Diff(tc.old, tc.new)
			if got := Summarize(changes); got != summary {
				t.Errorf("summary %+v does not match recount %+v", summary, got)
			}
			if summary.Added < 0 || summary.Removed < 0 || summary.Modified < 0 {
				t.Errorf("negative counts in summary: %+v", summary)
			}
		})
	}
}

func TestOrderIsPreserved(t *testing.T) {
	changes, _ := Diff("keep\ndrop\nkeep2", "keep\nnew\nkeep2\ntail")

	want := []Kind{Unchanged, Modified, Unchanged, Added}
	got := kinds(changes)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestSplitLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "a", []string{"a"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr", "a\rb", []string{"a", "b"}},
		{"only newline", "\n", []string{""}},
		{"blank middle line", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitLines(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("line %d: expected %q, got %q", i, tc.want[i], got[i])
				}
			}
		})
	}
}

func TestChangeJSON(t *testing.T) {
	changes, summary := Diff("A\nB", "A\nC")

	payload, err := json.Marshal(struct {
		Differences []Change `json:"differences"`
		Summary     Summary  `json:"summary"`
	}{changes, summary})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded struct {
		Differences []map[string]string `json:"differences"`
		Summary     map[string]int      `json:"summary"`
	}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded.Differences[0]["kind"] != "unchanged" || decoded.Differences[0]["text"] != "A" {
		t.Errorf("unexpected first record: %v", decoded.Differences[0])
	}
	mod := decoded.Differences[1]
	if mod["kind"] != "modified" || mod["old"] != "B" || mod["new"] != "C" {
		t.Errorf("unexpected modified record: %v", mod)
	}
	if _, hasText := mod["text"]; hasText {
		t.Errorf("modified record should not carry a text field: %v", mod)
	}
	if decoded.Summary["modified"] != 1 || decoded.Summary["added"] != 0 || decoded.Summary["removed"] != 0 {
		t.Errorf("unexpected summary: %v", decoded.Summary)
	}
}

func TestLargeInputTerminates(t *testing.T) {
	var oldB, newB strings.Builder
	for i := 0; i < 500; i++ {
		oldB.WriteString("common line\n")
		if i%3 == 0 {
			newB.WriteString("altered line\n")
		} else {
			newB.WriteString("common line\n")
		}
	}

	changes, summary := Diff(oldB.String(), newB.String())
	if len(changes) == 0 {
		t.Fatal("expected changes for large input")
	}
	if got := Summarize(changes); got != summary {
		t.Errorf("summary mismatch: %+v vs %+v", summary, got)
	}
}
