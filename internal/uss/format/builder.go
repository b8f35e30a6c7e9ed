package format

import "sort"

// flexibleEntry pairs an entry with its allowed occurrence range.
type flexibleEntry struct {
	entry Entry
	min   int
	max   int
}

// FlexibleFormatBuilder expands a compact occurrence-range description of
// a property grammar into the full set of concrete format alternatives.
//
// Construct with NewBuilder, chain occurrence declarations in declaration
// order, and call Build exactly once. Under AnyOrder the expansion is
// factorial in the combination length, so callers keep entry counts small
// (shorthand properties of arity <= 4 in practice).
type FlexibleFormatBuilder struct {
	entries  []flexibleEntry
	anyOrder bool
	built    bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *FlexibleFormatBuilder {
	return &FlexibleFormatBuilder{}
}

// Required declares an entry that occurs exactly once.
func (b *FlexibleFormatBuilder) Required(types ...Type) *FlexibleFormatBuilder {
	return b.Range(1, 1, types...)
}

// Optional declares an entry that occurs at most once.
func (b *FlexibleFormatBuilder) Optional(types ...Type) *FlexibleFormatBuilder {
	return b.Range(0, 1, types...)
}

// Range declares an entry that occurs between min and max times.
func (b *FlexibleFormatBuilder) Range(min, max int, types ...Type) *FlexibleFormatBuilder {
	b.entries = append(b.entries, flexibleEntry{entry: NewEntry(types...), min: min, max: max})
	return b
}

// AnyOrder makes every permutation of each expanded combination an
// accepted format, not just the declaration order.
func (b *FlexibleFormatBuilder) AnyOrder() *FlexibleFormatBuilder {
	b.anyOrder = true
	return b
}

// Build consumes the builder and returns the sorted, deduplicated list of
// concrete formats. Combinations that expand to zero entries are dropped:
// a format must require at least one value. Build panics if called twice.
func (b *FlexibleFormatBuilder) Build() []Format {
	if b.built {
		panic("format: Build called twice on the same FlexibleFormatBuilder")
	}
	b.built = true

	var formats []Format
	expandOccurrences(b.entries, nil, func(combination []Entry) {
		if len(combination) == 0 {
			return
		}
		if b.anyOrder {
			permute(combination, func(p []Entry) {
				formats = append(formats, Format{Entries: cloneEntries(p)})
			})
		} else {
			formats = append(formats, Format{Entries: cloneEntries(combination)})
		}
	})

	sort.Slice(formats, func(i, j int) bool {
		return Compare(formats[i], formats[j]) < 0
	})

	deduped := formats[:0]
	for _, f := range formats {
		if len(deduped) == 0 || Compare(deduped[len(deduped)-1], f) != 0 {
			deduped = append(deduped, f)
		}
	}

	return deduped
}

// expandOccurrences enumerates, entry by entry, every occurrence count in
// each entry's range and emits the cross-product of the choices.
func expandOccurrences(entries []flexibleEntry, prefix []Entry, emit func([]Entry)) {
	if len(entries) == 0 {
		emit(prefix)
		return
	}

	head, rest := entries[0], entries[1:]
	for count := head.min; count <= head.max; count++ {
		next := prefix
		for i := 0; i < count; i++ {
			next = append(next, head.entry)
		}
		expandOccurrences(rest, next, emit)
	}
}

// permute emits every permutation of the entries, including equal ones
// produced by repeated entries.
func permute(entries []Entry, emit func([]Entry)) {
	var recurse func(k int)
	recurse = func(k int) {
		if k == len(entries) {
			emit(entries)
			return
		}
		for i := k; i < len(entries); i++ {
			entries[k], entries[i] = entries[i], entries[k]
			recurse(k + 1)
			entries[k], entries[i] = entries[i], entries[k]
		}
	}
	recurse(0)
}

func cloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
