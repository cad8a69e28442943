// =============================================================================
// Order Print Pipeline - Paginator
// =============================================================================
//
// Partitions an ordered item sequence into fixed-capacity pages. Pure and
// deterministic: page order preserves input order, every page except possibly
// the last is full, and no item appears on more than one page.
//
// =============================================================================

package paginate

// Domain capacities. Label sheets hold 6 (3x2 grid) or 8 (4x2 grid) labels
// per A4 page depending on the physical label stock; invoice runs place one
// document per page.
const (
	LabelSheetSix   = 6
	LabelSheetEight = 8
	InvoiceRun      = 1
)

// Paginate partitions items into pages of at most capacity elements.
// Pages are sub-slices of the input, not copies. An empty input yields an
// empty page list, not a single empty page; a non-positive capacity yields
// an empty page list.
func Paginate[T any](items []T, capacity int) [][]T {
	if len(items) == 0 || capacity < 1 {
		return [][]T{}
	}

	pageCount := (len(items) + capacity - 1) / capacity
	pages := make([][]T, 0, pageCount)

	for start := 0; start < len(items); start += capacity {
		end := start + capacity
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[start:end])
	}

	return pages
}

// Grid returns the physical rows-by-columns layout of a label sheet for a
// given capacity. Unknown capacities fall back to a single column.
func Grid(capacity int) (rows, cols int) {
	switch capacity {
	case LabelSheetEight:
		return 4, 2
	case LabelSheetSix:
		return 3, 2
	default:
		return capacity, 1
	}
}
