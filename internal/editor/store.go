package editor

import (
	"image"
	"sort"

	"github.com/mzen17/PDF-Page-Editor/pkg/models"
)

// PageRecord is one page of the working strip: where the page came from, its
// rendered thumbnail, and whether export includes it.
type PageRecord struct {
	Doc       *models.DocumentInfo
	PageIndex int
	Thumb     image.Image
	Included  bool
}

// Ref projects the record onto the source coordinates the export writer
// operates on.
func (r *PageRecord) Ref() models.PageRef {
	return models.PageRef{Path: r.Doc.Path, PageIndex: r.PageIndex}
}

// Store is the ordered, session-lifetime sequence of page records. It only
// grows; display order changes exclusively through Relocate.
type Store struct {
	records []*PageRecord
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Len() int {
	return len(s.records)
}

// Record returns the record at display position i. The caller is responsible
// for i being in range.
func (s *Store) Record(i int) *PageRecord {
	return s.records[i]
}

// Records returns the current display order as a copied slice; reordering the
// copy does not affect the store.
func (s *Store) Records() []*PageRecord {
	out := make([]*PageRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Append(records ...*PageRecord) {
	s.records = append(s.records, records...)
}

func (s *Store) SetIncluded(i int, included bool) {
	if i < 0 || i >= len(s.records) {
		return
	}
	s.records[i].Included = included
}

func (s *Store) IncludedCount() int {
	count := 0
	for _, rec := range s.records {
		if rec.Included {
			count++
		}
	}
	return count
}

// IncludedRefs returns the refs of all included records in display order.
// This is the exact page sequence an export started now would produce.
func (s *Store) IncludedRefs() []models.PageRef {
	refs := make([]models.PageRef, 0, len(s.records))
	for _, rec := range s.records {
		if rec.Included {
			refs = append(refs, rec.Ref())
		}
	}
	return refs
}

// Relocate removes the records at the given indices (any order, duplicates
// and out-of-range values ignored) and reinserts them as one contiguous
// block, preserving their relative order. drop addresses the slot *between*
// records where the block should land, counted in pre-removal positions and
// clamped to [0, Len]; the insertion point is adjusted by the number of
// removed records that preceded it, so the block ends up exactly where the
// gesture released. Returns the block's new start index, or -1 if nothing
// moved.
func (s *Store) Relocate(indices []int, drop int) int {
	sel := normalizeIndices(indices, len(s.records))
	if len(sel) == 0 {
		return -1
	}

	if drop < 0 {
		drop = 0
	}
	if drop > len(s.records) {
		drop = len(s.records)
	}

	dest := drop
	for _, i := range sel {
		if i < drop {
			dest--
		}
	}

	selected := make(map[int]struct{}, len(sel))
	for _, i := range sel {
		selected[i] = struct{}{}
	}

	moved := make([]*PageRecord, 0, len(sel))
	for _, i := range sel {
		moved = append(moved, s.records[i])
	}

	kept := make([]*PageRecord, 0, len(s.records)-len(sel))
	for i, rec := range s.records {
		if _, ok := selected[i]; !ok {
			kept = append(kept, rec)
		}
	}

	out := make([]*PageRecord, 0, len(s.records))
	out = append(out, kept[:dest]...)
	out = append(out, moved...)
	out = append(out, kept[dest:]...)
	s.records = out

	return dest
}

// normalizeIndices drops out-of-range values, deduplicates, and sorts
// ascending so the moved block keeps display order.
func normalizeIndices(indices []int, length int) []int {
	seen := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i < 0 || i >= length {
			continue
		}
		seen[i] = struct{}{}
	}

	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
