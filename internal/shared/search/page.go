package search

// Page is one slice of a filtered, sorted result set.
type Page[T any] struct {
	Content       []T
	TotalElements int64
	Page          int
	Size          int
}

func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// MapPage projects every row and keeps the counts.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, 0, len(p.Content))
	for _, row := range p.Content {
		out = append(out, fn(row))
	}
	return Page[R]{Content: out, TotalElements: p.TotalElements, Page: p.Page, Size: p.Size}
}

type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	CurrentPage   int   `json:"currentPage"`
}

func NewPageResponse[T any](p Page[T]) PageResponse[T] {
	content := p.Content
	if content == nil {
		content = []T{}
	}
	return PageResponse[T]{
		Content:       content,
		TotalPages:    p.TotalPages(),
		TotalElements: p.TotalElements,
		CurrentPage:   p.Page,
	}
}
