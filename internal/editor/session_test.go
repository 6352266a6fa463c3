package editor_test

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mzen17/PDF-Page-Editor/internal/editor"
	"github.com/mzen17/PDF-Page-Editor/pkg/models"
)

func addDoc(session *editor.Session, name string, pages int) {
	doc := models.NewDocumentInfo(filepath.Join("/library", name+".pdf"), pages)
	session.AddDocument(doc, make([]image.Image, pages))
}

// stripLabels renders the display order as "name:page" labels, e.g. "a:0".
func stripLabels(session *editor.Session) []string {
	labels := make([]string, 0, session.Len())
	for _, rec := range session.Records() {
		name := strings.TrimSuffix(rec.Doc.Name(), ".pdf")
		labels = append(labels, fmt.Sprintf("%s:%d", name, rec.PageIndex))
	}
	return labels
}

func refLabels(refs []models.PageRef) []string {
	labels := make([]string, 0, len(refs))
	for _, ref := range refs {
		name := strings.TrimSuffix(filepath.Base(ref.Path), ".pdf")
		labels = append(labels, fmt.Sprintf("%s:%d", name, ref.PageIndex))
	}
	return labels
}

var _ = Describe("Session", func() {
	var session *editor.Session

	BeforeEach(func() {
		session = editor.NewSession()
		addDoc(session, "a", 3)
		addDoc(session, "b", 2)
	})

	Describe("importing documents", func() {
		It("appends pages at the end in source order", func() {
			Expect(stripLabels(session)).To(Equal([]string{"a:0", "a:1", "a:2", "b:0", "b:1"}))
		})

		It("includes every imported page by default", func() {
			Expect(session.IncludedCount()).To(Equal(5))
		})

		It("keeps the selection valid across an import", func() {
			session.HandleClick(1, editor.ClickPlain)

			addDoc(session, "c", 2)

			Expect(session.Len()).To(Equal(7))
			Expect(session.SelectedIndices()).To(Equal([]int{1}))
		})
	})

	Describe("selection gestures", func() {
		Context("plain click", func() {
			It("replaces the selection with the clicked page", func() {
				session.HandleClick(0, editor.ClickPlain)
				session.HandleClick(3, editor.ClickPlain)

				Expect(session.SelectedIndices()).To(Equal([]int{3}))
			})

			It("moves the anchor to the clicked page", func() {
				session.HandleClick(2, editor.ClickPlain)
				session.HandleClick(4, editor.ClickRange)

				Expect(session.SelectedIndices()).To(Equal([]int{2, 3, 4}))
			})
		})

		Context("toggle click", func() {
			It("adds an unselected page", func() {
				session.HandleClick(1, editor.ClickPlain)
				session.HandleClick(3, editor.ClickToggle)

				Expect(session.SelectedIndices()).To(Equal([]int{1, 3}))
			})

			It("removes a selected page", func() {
				session.HandleClick(1, editor.ClickPlain)
				session.HandleClick(3, editor.ClickToggle)
				session.HandleClick(3, editor.ClickToggle)

				Expect(session.SelectedIndices()).To(Equal([]int{1}))
			})

			It("moves the anchor even when toggling a page off", func() {
				session.HandleClick(1, editor.ClickPlain)
				session.HandleClick(3, editor.ClickToggle)
				session.HandleClick(3, editor.ClickToggle)
				session.HandleClick(4, editor.ClickRange)

				Expect(session.SelectedIndices()).To(Equal([]int{3, 4}))
			})
		})

		Context("range click", func() {
			It("selects the span from the anchor up to the clicked page", func() {
				session.HandleClick(1, editor.ClickPlain)
				session.HandleClick(3, editor.ClickRange)

				Expect(session.SelectedIndices()).To(Equal([]int{1, 2, 3}))
			})

			It("selects the span when clicking before the anchor", func() {
				session.HandleClick(3, editor.ClickPlain)
				session.HandleClick(0, editor.ClickRange)

				Expect(session.SelectedIndices()).To(Equal([]int{0, 1, 2, 3}))
			})

			It("pivots around the same anchor across consecutive range clicks", func() {
				session.HandleClick(2, editor.ClickPlain)
				session.HandleClick(4, editor.ClickRange)
				session.HandleClick(0, editor.ClickRange)

				Expect(session.SelectedIndices()).To(Equal([]int{0, 1, 2}))
			})

			It("degrades to a plain click when no anchor exists", func() {
				session.HandleClick(3, editor.ClickRange)
				Expect(session.SelectedIndices()).To(Equal([]int{3}))

				session.HandleClick(1, editor.ClickRange)
				Expect(session.SelectedIndices()).To(Equal([]int{1, 2, 3}))
			})
		})

		It("ignores clicks outside the strip", func() {
			session.HandleClick(99, editor.ClickPlain)
			session.HandleClick(-1, editor.ClickPlain)

			Expect(session.SelectionCount()).To(BeZero())
		})
	})

	Describe("drag reorder", func() {
		It("moves a single page forward", func() {
			session.HandleClick(0, editor.ClickPlain)
			session.BeginDrag(0)
			Expect(session.DragTo(3)).To(Equal(3))

			Expect(session.CompleteDrag()).To(BeTrue())
			Expect(stripLabels(session)).To(Equal([]string{"a:1", "a:2", "a:0", "b:0", "b:1"}))
			Expect(session.SelectedIndices()).To(Equal([]int{2}))
		})

		It("moves a single page backward", func() {
			session.HandleClick(3, editor.ClickPlain)
			session.BeginDrag(3)
			session.DragTo(1)

			Expect(session.CompleteDrag()).To(BeTrue())
			Expect(stripLabels(session)).To(Equal([]string{"a:0", "b:0", "a:1", "a:2", "b:1"}))
			Expect(session.SelectedIndices()).To(Equal([]int{1}))
		})

		It("moves a contiguous block past the end of the strip", func() {
			session.HandleClick(0, editor.ClickPlain)
			session.HandleClick(1, editor.ClickRange)
			session.BeginDrag(1)
			session.DragTo(5)

			Expect(session.CompleteDrag()).To(BeTrue())
			Expect(stripLabels(session)).To(Equal([]string{"a:2", "b:0", "b:1", "a:0", "a:1"}))
			Expect(session.SelectedIndices()).To(Equal([]int{3, 4}))
		})

		It("compacts a discontiguous selection into one block at the drop slot", func() {
			session.HandleClick(0, editor.ClickToggle)
			session.HandleClick(2, editor.ClickToggle)
			session.HandleClick(4, editor.ClickToggle)
			session.BeginDrag(4)
			session.DragTo(1)

			Expect(session.CompleteDrag()).To(BeTrue())
			Expect(stripLabels(session)).To(Equal([]string{"a:0", "a:2", "b:1", "a:1", "b:0"}))
			Expect(session.SelectedIndices()).To(Equal([]int{0, 1, 2}))
		})

		It("clamps the drop slot to the strip", func() {
			session.HandleClick(2, editor.ClickPlain)
			session.BeginDrag(2)

			Expect(session.DragTo(99)).To(Equal(5))
			Expect(session.DragTo(-5)).To(Equal(0))
		})

		It("exposes the drop candidate while a gesture is active", func() {
			session.HandleClick(0, editor.ClickPlain)
			session.BeginDrag(0)
			Expect(session.Dragging()).To(BeFalse())

			session.DragTo(4)

			Expect(session.Dragging()).To(BeTrue())
			slot, ok := session.DropSlot()
			Expect(ok).To(BeTrue())
			Expect(slot).To(Equal(4))
		})

		Context("no-op gestures", func() {
			It("treats a press without movement as a plain click", func() {
				session.HandleClick(2, editor.ClickPlain)
				session.BeginDrag(2)

				Expect(session.CompleteDrag()).To(BeFalse())
				Expect(stripLabels(session)).To(Equal([]string{"a:0", "a:1", "a:2", "b:0", "b:1"}))
				Expect(session.SelectedIndices()).To(Equal([]int{2}))
			})

			It("leaves the strip alone when the drop slot sits inside the selection", func() {
				session.HandleClick(0, editor.ClickToggle)
				session.HandleClick(2, editor.ClickToggle)
				session.BeginDrag(0)
				session.DragTo(2)

				Expect(session.CompleteDrag()).To(BeFalse())
				Expect(stripLabels(session)).To(Equal([]string{"a:0", "a:1", "a:2", "b:0", "b:1"}))
				Expect(session.SelectedIndices()).To(Equal([]int{0, 2}))
			})

			It("reports no change when a block drops right after itself", func() {
				session.HandleClick(1, editor.ClickPlain)
				session.HandleClick(2, editor.ClickRange)
				session.BeginDrag(2)
				session.DragTo(3)

				Expect(session.CompleteDrag()).To(BeFalse())
				Expect(stripLabels(session)).To(Equal([]string{"a:0", "a:1", "a:2", "b:0", "b:1"}))
				Expect(session.SelectedIndices()).To(Equal([]int{1, 2}))
			})

			It("does nothing without a selection", func() {
				session.BeginDrag(2)
				session.DragTo(4)

				Expect(session.CompleteDrag()).To(BeFalse())
				Expect(stripLabels(session)).To(Equal([]string{"a:0", "a:1", "a:2", "b:0", "b:1"}))
			})

			It("does nothing after a cancelled gesture", func() {
				session.HandleClick(0, editor.ClickPlain)
				session.BeginDrag(0)
				session.DragTo(3)
				session.CancelDrag()

				_, ok := session.DropSlot()
				Expect(ok).To(BeFalse())
				Expect(session.CompleteDrag()).To(BeFalse())
				Expect(stripLabels(session)).To(Equal([]string{"a:0", "a:1", "a:2", "b:0", "b:1"}))
			})
		})

		It("rejects movement without an armed gesture", func() {
			Expect(session.DragTo(3)).To(Equal(-1))
		})

		It("refuses to arm a gesture outside the strip", func() {
			session.BeginDrag(99)
			Expect(session.DragTo(3)).To(Equal(-1))
		})
	})

	Describe("export planning", func() {
		It("lists every page in display order by default", func() {
			Expect(refLabels(session.ExportRefs())).To(Equal([]string{"a:0", "a:1", "a:2", "b:0", "b:1"}))
		})

		It("skips excluded pages", func() {
			session.SetIncluded(1, false)
			session.SetIncluded(3, false)

			Expect(refLabels(session.ExportRefs())).To(Equal([]string{"a:0", "a:2", "b:1"}))
			Expect(session.IncludedCount()).To(Equal(3))
		})

		It("follows the display order after a reorder", func() {
			session.HandleClick(0, editor.ClickPlain)
			session.HandleClick(1, editor.ClickRange)
			session.BeginDrag(1)
			session.DragTo(5)
			session.CompleteDrag()

			session.SetIncluded(1, false)

			Expect(refLabels(session.ExportRefs())).To(Equal([]string{"a:2", "b:1", "a:0", "a:1"}))
		})

		It("restores re-included pages", func() {
			session.SetIncluded(4, false)
			session.SetIncluded(4, true)

			Expect(session.IncludedCount()).To(Equal(5))
		})

		It("ignores inclusion changes outside the strip", func() {
			session.SetIncluded(99, false)
			Expect(session.IncludedCount()).To(Equal(5))
		})
	})
})

var _ = Describe("Store", func() {
	newStore := func(pages int) *editor.Store {
		store := editor.NewStore()
		doc := models.NewDocumentInfo("/library/doc.pdf", pages)
		for i := 0; i < pages; i++ {
			store.Append(&editor.PageRecord{Doc: doc, PageIndex: i, Included: true})
		}
		return store
	}

	pageOrder := func(store *editor.Store) []int {
		order := make([]int, 0, store.Len())
		for _, rec := range store.Records() {
			order = append(order, rec.PageIndex)
		}
		return order
	}

	Describe("Relocate", func() {
		It("ignores duplicate and out-of-range indices", func() {
			store := newStore(4)

			Expect(store.Relocate([]int{2, 2, 7, -1}, 0)).To(Equal(0))
			Expect(pageOrder(store)).To(Equal([]int{2, 0, 1, 3}))
		})

		It("reports -1 when nothing is selected", func() {
			store := newStore(4)

			Expect(store.Relocate(nil, 2)).To(Equal(-1))
			Expect(pageOrder(store)).To(Equal([]int{0, 1, 2, 3}))
		})

		It("keeps the order when every record moves", func() {
			store := newStore(4)

			Expect(store.Relocate([]int{0, 1, 2, 3}, 2)).To(Equal(0))
			Expect(pageOrder(store)).To(Equal([]int{0, 1, 2, 3}))
		})

		It("clamps the drop slot past the end", func() {
			store := newStore(4)

			Expect(store.Relocate([]int{0}, 99)).To(Equal(3))
			Expect(pageOrder(store)).To(Equal([]int{1, 2, 3, 0}))
		})
	})
})
