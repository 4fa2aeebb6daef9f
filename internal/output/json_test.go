package output

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestJSONGraphWriter_Write(t *testing.T) {
	path := outputPath(t, "graph.json")
	if err := (&JSONGraphWriter{}).Write(sampleGraphReport(), OutputOptions{Format: FormatJSON, OutputPath: path}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var got JSONGraphReport
	if err := json.Unmarshal([]byte(readTestFile(t, path)), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if got.RepoPath != "/test/repo" || got.Window != 2000 || got.TotalCommits != 3 {
		t.Errorf("header = %+v", got)
	}
	if got.GeneratedAt != "2026-02-10T09:00:00Z" {
		t.Errorf("generatedAt = %q", got.GeneratedAt)
	}
	if !reflect.DeepEqual(got.Stubs, []string{idStub}) {
		t.Errorf("stubs = %v, expected [%s]", got.Stubs, idStub)
	}
	if got.Commits[0].OID != idMerge || !reflect.DeepEqual(got.Commits[0].Parents, []string{idRoot, idSide}) {
		t.Errorf("first commit = %+v", got.Commits[0])
	}
}

func TestJSONGraphWriter_WireNames(t *testing.T) {
	path := outputPath(t, "graph.json")
	if err := (&JSONGraphWriter{}).Write(sampleGraphReport(), OutputOptions{OutputPath: path}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var raw struct {
		Commits []map[string]json.RawMessage `json:"commits"`
	}
	if err := json.Unmarshal([]byte(readTestFile(t, path)), &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	for _, key := range []string{"oid", "parents", "author", "email", "date", "message", "refs"} {
		if _, ok := raw.Commits[0][key]; !ok {
			t.Errorf("commit JSON missing %q", key)
		}
	}

	// Roots and unannotated commits still serialize arrays.
	if string(raw.Commits[2]["parents"]) != "[]" {
		t.Errorf("root parents = %s, expected []", raw.Commits[2]["parents"])
	}
	if string(raw.Commits[2]["refs"]) != "[]" {
		t.Errorf("root refs = %s, expected []", raw.Commits[2]["refs"])
	}
	var refs []RefJSON
	if err := json.Unmarshal(raw.Commits[0]["refs"], &refs); err != nil {
		t.Fatalf("invalid refs: %v", err)
	}
	expectedRefs := []RefJSON{{Name: "main", Kind: "branch"}, {Name: "HEAD", Kind: "head"}}
	if !reflect.DeepEqual(refs, expectedRefs) {
		t.Errorf("refs = %+v, expected %+v", refs, expectedRefs)
	}
}

func TestJSONChangesWriter_Write(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		wantFrom bool
	}{
		{name: "CommitChanges", from: "", wantFrom: false},
		{name: "Compare", from: idRoot, wantFrom: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := outputPath(t, "changes.json")
			if err := (&JSONChangesWriter{}).Write(sampleChangesReport(tt.from), OutputOptions{OutputPath: path}); err != nil {
				t.Fatalf("Write failed: %v", err)
			}

			content := readTestFile(t, path)
			if strings.Contains(content, `"from"`) != tt.wantFrom {
				t.Errorf("from present = %v, expected %v:\n%s", !tt.wantFrom, tt.wantFrom, content)
			}

			var got JSONChangesReport
			if err := json.Unmarshal([]byte(content), &got); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			expected := []FileChangeJSON{
				{Path: "main.go", Status: "Modified"},
				{Path: "new.go", Status: "Added"},
				{Path: "b.go", Status: "Renamed", OldPath: "a.go"},
			}
			if !reflect.DeepEqual(got.Changes, expected) {
				t.Errorf("changes = %+v, expected %+v", got.Changes, expected)
			}
			if got.TotalChanges != 3 {
				t.Errorf("totalChanges = %d, expected 3", got.TotalChanges)
			}
		})
	}
}

func TestNewFileChangeJSON_Empty(t *testing.T) {
	got := NewFileChangeJSON(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("NewFileChangeJSON(nil) = %#v, expected empty non-nil slice", got)
	}
}
