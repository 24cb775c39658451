package domain

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	keyLocation     = "location"
	keyPropertyType = "propertyType"
	keyListingType  = "listingType"
	keyStatus       = "status"
	keyKeywords     = "keywords"
	keyMinPrice     = "minPrice"
	keyMaxPrice     = "maxPrice"
	keyBedrooms     = "bedrooms"
	keyBathrooms    = "bathrooms"
	keySizeMin      = "sizeMin"
	keySizeMax      = "sizeMax"
	keyAmenities    = "amenities"
	keySortBy       = "sortBy"
	keyPage         = "page"
)

// keyAliases - альтернативные имена ключей, которые встречаются в ссылках.
var keyAliases = map[string]string{
	"priceMin":      keyMinPrice,
	"priceMax":      keyMaxPrice,
	"property_type": keyPropertyType,
}

func canonicalKey(key string) string {
	if canonical, ok := keyAliases[key]; ok {
		return canonical
	}
	return key
}

// ParseFromLocation разбирает строку запроса. Ошибок нет: некорректные значения
// становятся "без ограничения".
func ParseFromLocation(rawQuery string) PropertyQueryFilter {
	values, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	return ParseValues(values)
}

// ParseValues - то же, что ParseFromLocation, для уже разобранных значений.
func ParseValues(values url.Values) PropertyQueryFilter {
	var f PropertyQueryFilter

	for key, vals := range canonicalValues(values) {
		value := vals[0]
		switch key {
		case keyLocation:
			f.Location = value
		case keyPropertyType:
			f.PropertyType = value
		case keyListingType:
			f.ListingType = value
		case keyStatus:
			f.Status = value
		case keyKeywords:
			f.Keywords = value
		case keyMinPrice:
			f.MinPrice = parseBound(value)
		case keyMaxPrice:
			f.MaxPrice = parseBound(value)
		case keyBedrooms:
			f.Bedrooms = parseBound(value)
		case keyBathrooms:
			f.Bathrooms = parseBound(value)
		case keySizeMin:
			f.SizeMin = parseBound(value)
		case keySizeMax:
			f.SizeMax = parseBound(value)
		case keyAmenities:
			f.Amenities = parseAmenities(value)
		case keySortBy:
			f.SortBy = SortKey(value)
		case keyPage:
			page, _ := strconv.Atoi(value)
			f.Page = &page
		default:
			if f.Extra == nil {
				f.Extra = make(map[string]string)
			}
			f.Extra[key] = value
		}
	}

	return f
}

// canonicalValues оставляет по одному значению на ключ в том виде, в каком его
// пишет Serialize: псевдонимы заменены каноническими ключами (канонический ключ
// имеет приоритет), числа переформатированы, amenities без пробелов и повторов.
// Пустые и некорректные значения отбрасываются.
func canonicalValues(values url.Values) url.Values {
	out := url.Values{}
	for rawKey, vals := range values {
		if len(vals) == 0 {
			continue
		}
		key := canonicalKey(rawKey)
		if key != rawKey {
			if _, hasCanonical := values[key]; hasCanonical {
				continue
			}
		}
		if value, ok := canonicalValue(key, strings.TrimSpace(vals[0])); ok {
			out.Set(key, value)
		}
	}
	return out
}

func canonicalValue(key, value string) (string, bool) {
	switch key {
	case keyMinPrice, keyMaxPrice, keyBedrooms, keyBathrooms, keySizeMin, keySizeMax:
		if bound := parseBound(value); bound != nil {
			return formatNumber(*bound), true
		}
		return "", false
	case keyAmenities:
		parts := parseAmenities(value)
		return strings.Join(parts, ","), len(parts) > 0
	case keySortBy:
		return value, SortKey(value).IsValid()
	case keyPage:
		page, err := strconv.Atoi(value)
		if err != nil || page < 0 {
			return "", false
		}
		return strconv.Itoa(page), true
	default:
		return value, value != ""
	}
}

// parseBound никогда не возвращает NaN: пустое, нечисловое, бесконечное
// или отрицательное значение дает nil.
func parseBound(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	return &v
}

func parseAmenities(raw string) []string {
	if raw == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Values переводит фильтр в набор параметров без пустых значений.
func (f PropertyQueryFilter) Values() url.Values {
	v := url.Values{}
	setString := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	setNumber := func(key string, value *float64) {
		if value != nil {
			v.Set(key, formatNumber(*value))
		}
	}

	setString(keyLocation, f.Location)
	setString(keyPropertyType, f.PropertyType)
	setString(keyListingType, f.ListingType)
	setString(keyStatus, f.Status)
	setString(keyKeywords, f.Keywords)
	setNumber(keyMinPrice, f.MinPrice)
	setNumber(keyMaxPrice, f.MaxPrice)
	setNumber(keyBedrooms, f.Bedrooms)
	setNumber(keyBathrooms, f.Bathrooms)
	setNumber(keySizeMin, f.SizeMin)
	setNumber(keySizeMax, f.SizeMax)
	if len(f.Amenities) > 0 {
		v.Set(keyAmenities, strings.Join(f.Amenities, ","))
	}
	setString(keySortBy, string(f.SortBy))
	if f.Page != nil {
		v.Set(keyPage, strconv.Itoa(*f.Page))
	}
	for key, value := range f.Extra {
		setString(key, value)
	}
	return v
}

// Serialize - каноническая строка запроса, ключи отсортированы.
func Serialize(f PropertyQueryFilter) string {
	return f.Values().Encode()
}

// Normalize приводит произвольную строку запроса к канонической форме Serialize
// без построения фильтра.
func Normalize(rawQuery string) string {
	values, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	return canonicalValues(values).Encode()
}

// ApplyFilterChange сливает изменения формы с текущим фильтром и сбрасывает страницу на 0.
func ApplyFilterChange(current PropertyQueryFilter, patch FilterPatch) PropertyQueryFilter {
	values := current.Values()
	for rawKey, value := range patch {
		key := canonicalKey(rawKey)
		if strings.TrimSpace(value) == "" {
			values.Del(key)
			continue
		}
		values.Set(key, value)
	}

	next := ParseValues(values)
	firstPage := 0
	next.Page = &firstPage
	return next
}

// WithPage возвращает копию фильтра с другой страницей.
func (f PropertyQueryFilter) WithPage(page int) PropertyQueryFilter {
	if page < 0 {
		page = 0
	}
	f.Page = &page
	return f
}
