package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	TotalCount int64 `json:"totalCount"` // Total number of items across all pages
	PageNo     int   `json:"pageNo"`     // Current page number (1-based)
	NumOfRows  int   `json:"numOfRows"`  // Items per page
	TotalPages int   `json:"totalPages"` // Calculated total number of pages
}

// NewMetadata builds Metadata for the given totals and paging parameters.
func NewMetadata(totalCount int64, params Params) Metadata {
	return Metadata{
		TotalCount: totalCount,
		PageNo:     params.PageNo,
		NumOfRows:  params.NumOfRows,
		TotalPages: TotalPages(totalCount, params.NumOfRows),
	}
}
