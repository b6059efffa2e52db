package pagination

// Offset calculates the slice/SQL offset for a 1-based page number.
//
// Formula: offset = (pageNo - 1) * numOfRows
//
// Examples:
//   - PageNo 1, NumOfRows 10 -> Offset 0
//   - PageNo 2, NumOfRows 10 -> Offset 10
//   - PageNo 3, NumOfRows 5  -> Offset 10
func Offset(pageNo, numOfRows int) int {
	return (pageNo - 1) * numOfRows
}

// TotalPages calculates the total number of pages using ceiling division.
//
// Special cases:
//   - If total is 0, returns 1 (always at least 1 page)
//   - If total < numOfRows, returns 1
func TotalPages(total int64, numOfRows int) int {
	if total == 0 {
		return 1 // Always at least 1 page
	}
	return int((total + int64(numOfRows) - 1) / int64(numOfRows))
}

// Slice returns the sub-slice of items corresponding to the given page.
// Out-of-range pages yield an empty (non-nil) slice. The result over the
// full set matches what would be computed from the full set directly, so
// pagination is idempotent with respect to the underlying data.
func Slice[T any](items []T, pageNo, numOfRows int) []T {
	start := Offset(pageNo, numOfRows)
	if start >= len(items) {
		return []T{}
	}
	end := start + numOfRows
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
