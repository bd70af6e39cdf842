package dashboard

// PageSize is the fixed number of rows per dashboard page.
const PageSize = 10

// Paginate slices the filtered rows for one page. Pages are 1-based; out of
// range pages return an empty slice. The second return is the total row count
// before slicing.
func Paginate(rows []RealtorRow, page int) ([]RealtorRow, int) {
	total := len(rows)
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	if start >= total {
		return []RealtorRow{}, total
	}

	end := start + PageSize
	if end > total {
		end = total
	}

	return rows[start:end], total
}
