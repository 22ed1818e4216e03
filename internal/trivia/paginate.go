package trivia

// Paginate returns the 1-indexed page window of the given size. Out-of-range
// pages yield an empty slice; callers decide whether that is an error. Pages
// below 1 are treated as page 1.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
