package utils

// PageCount is the number of pages needed for total items at the given limit.
func PageCount(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	count := int(total) / limit
	if int(total)%limit != 0 {
		count++
	}
	return count
}

// HasNextPage reports whether another page follows the current one.
func HasNextPage(page, pageCount int) bool {
	return page < pageCount
}
