package selection

import "sync"

// DefaultPageSize es el tamaño de página del listado
const DefaultPageSize = 12

// ListState guarda los SKU marcados y la página actual del listado.
// La página se ajusta cada vez que cambia el total de productos.
type ListState struct {
	mu       sync.Mutex
	selected []string // orden de selección
	page     int
	pageSize int
	total    int
}

func NewListState(pageSize int) *ListState {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &ListState{page: 1, pageSize: pageSize}
}

// Toggle marca o desmarca un SKU y devuelve si quedó marcado
func (s *ListState) Toggle(sku string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.selected {
		if v == sku {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return false
		}
	}
	s.selected = append(s.selected, sku)
	return true
}

func (s *ListState) IsSelected(sku string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(sku) >= 0
}

// Selected devuelve una copia de los SKU marcados
func (s *ListState) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// Deselect quita SKU de la selección, p. ej. tras borrarlos
func (s *ListState) Deselect(skus ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sku := range skus {
		if i := s.indexOf(sku); i >= 0 {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
		}
	}
}

func (s *ListState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// CanEdit: la edición solo se habilita con exactamente un producto marcado
func (s *ListState) CanEdit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selected) == 1
}

// CanDelete: hay productos y al menos uno marcado
func (s *ListState) CanDelete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total > 0 && len(s.selected) > 0
}

func (s *ListState) PageSize() int {
	return s.pageSize
}

// Page devuelve la página actual (base 1)
func (s *ListState) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// PageCount = ceil(total / pageSize)
func (s *ListState) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pageCount(s.total, s.pageSize)
}

func (s *ListState) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// SetPage cambia de página, limitada a [1, PageCount]
func (s *ListState) SetPage(page int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.page = page
	s.clamp()
	return s.page
}

// SetTotal registra el tamaño de la colección y ajusta la página actual
func (s *ListState) SetTotal(total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total = max(total, 0)
	s.clamp()
}

func (s *ListState) clamp() {
	last := max(pageCount(s.total, s.pageSize), 1)
	s.page = min(max(s.page, 1), last)
}

func (s *ListState) indexOf(sku string) int {
	for i, v := range s.selected {
		if v == sku {
			return i
		}
	}
	return -1
}

func pageCount(total, pageSize int) int {
	return (total + pageSize - 1) / pageSize
}
