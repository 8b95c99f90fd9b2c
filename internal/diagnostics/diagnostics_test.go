package diagnostics

import (
	"strings"
	"testing"

	"github.com/fcsr-dev/fcsr/api/v1alpha1"
)

func TestWarningMessage(t *testing.T) {
	tests := []struct {
		name string
		w    Warning
		want []string
	}{
		{
			name: "range mismatch",
			w:    RangeMismatch("a", "b", "2.0.0", "^1.0.0"),
			want: []string{`"a"`, `"b"`, `"2.0.0"`, `"^1.0.0"`},
		},
		{
			name: "duplicate in linked",
			w:    DuplicateGroupMember("pkg-a", v1alpha1.GroupLinked),
			want: []string{`"pkg-a"`, "multiple sets of linked packages"},
		},
		{
			name: "overlap",
			w:    FixedLinkedOverlap("pkg-a"),
			want: []string{`"pkg-a"`, "both fixed and linked"},
		},
		{
			name: "ignored dependent",
			w:    IgnoredDependent("b", "a"),
			want: []string{`The package "b" depends on the ignored package "a"`, "Please add \"b\""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.w.Message()
			for _, sub := range tt.want {
				if !strings.Contains(msg, sub) {
					t.Errorf("message %q should contain %q", msg, sub)
				}
			}
		})
	}
}

func TestReport(t *testing.T) {
	var r Report
	if !r.Empty() {
		t.Fatalf("zero Report should be empty")
	}

	r.Add(FixedLinkedOverlap("a"))
	other := Report{}
	other.Add(IgnoredDependent("b", "a"))
	other.Add(IgnoredDependent("c", "a"))
	r.Merge(other)

	if r.Len() != 3 {
		t.Fatalf("expected 3 warnings, got %d", r.Len())
	}
	if got := r.OfKind(KindIgnoredDependent); len(got) != 2 || got[0].Package != "b" {
		t.Fatalf("unexpected OfKind result: %+v", got)
	}

	counts := r.CountByKind()
	if counts[KindFixedLinkedOverlap] != 1 || counts[KindIgnoredDependent] != 2 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
	if _, ok := counts[KindRangeMismatch]; !ok {
		t.Fatalf("expected zero entry for %s", KindRangeMismatch)
	}
}
