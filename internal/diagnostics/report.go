package diagnostics

// Report is an ordered collection of warnings.
//
// The zero value is ready to use.
type Report struct {
	Warnings []Warning `json:"warnings"`
}

func (r *Report) Add(w Warning) {
	r.Warnings = append(r.Warnings, w)
}

// Merge appends every warning of other, preserving order.
func (r *Report) Merge(other Report) {
	r.Warnings = append(r.Warnings, other.Warnings...)
}

func (r Report) Len() int { return len(r.Warnings) }

func (r Report) Empty() bool { return len(r.Warnings) == 0 }

// OfKind returns the warnings with the given kind, in report order.
func (r Report) OfKind(kind Kind) []Warning {
	var out []Warning
	for _, w := range r.Warnings {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}

// CountByKind returns the number of warnings per kind. Kinds with no warnings
// are present with a zero count.
func (r Report) CountByKind() map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, k := range Kinds {
		counts[k] = 0
	}
	for _, w := range r.Warnings {
		counts[w.Kind]++
	}
	return counts
}
