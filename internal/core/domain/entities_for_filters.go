package domain

import (
	"fmt"
	"strings"
)

type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortDateDesc  SortKey = "date_desc"
)

func (s SortKey) IsValid() bool {
	switch s {
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortDateDesc:
		return true
	}
	return false
}

// PageSize - количество карточек на странице поиска.
const PageSize = 6

// PropertyQueryFilter - состояние фильтра поиска, канонически хранится в адресной строке.
// nil у числовых полей означает "без ограничения".
type PropertyQueryFilter struct {
	Location     string
	PropertyType string
	ListingType  string
	// Status - buy/rent из верхней формы поиска.
	Status    string
	Keywords  string
	MinPrice  *float64
	MaxPrice  *float64
	Bedrooms  *float64
	Bathrooms *float64
	SizeMin   *float64
	SizeMax   *float64
	Amenities []string
	SortBy    SortKey
	// Page - nil, если страница не указана в адресе.
	Page *int
	// Extra - нераспознанные ключи, переносятся без изменений.
	Extra map[string]string
}

// CurrentPage возвращает номер страницы, 0 по умолчанию.
func (f PropertyQueryFilter) CurrentPage() int {
	if f.Page == nil {
		return 0
	}
	return *f.Page
}

// FilterPatch - изменения формы фильтров в терминах ключей запроса.
// Присутствующий ключ с пустым значением очищает поле.
type FilterPatch map[string]string

// SearchSummary - заголовок страницы результатов.
func SearchSummary(f PropertyQueryFilter) string {
	var parts []string
	if f.Location != "" {
		parts = append(parts, fmt.Sprintf("Location: %q", f.Location))
	}
	if f.PropertyType != "" {
		parts = append(parts, fmt.Sprintf("Type: %q", f.PropertyType))
	}
	if f.ListingType != "" {
		parts = append(parts, fmt.Sprintf("For: %q", f.ListingType))
	}
	if len(parts) == 0 {
		return "Showing all properties"
	}
	return "Showing results for " + strings.Join(parts, ", ")
}

// ListResult - результат загрузки страницы поиска.
type ListResult struct {
	Items      []PropertySummary
	Total      int
	Page       int
	PageSize   int
	TotalPages int
	// Err заполняется вместо возврата ошибки, страница рендерится с баннером.
	Err error
	// Stale - ответ устарел, так как был запущен более новый поиск.
	Stale bool
}
