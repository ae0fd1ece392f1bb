package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/learnhub/learnhub/internal/pkg/helpers"
)

// SortKey selects the result ordering.
type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// Duration bucket tokens as sent by the filter UI.
const (
	BucketShort  = "0-5"
	BucketMedium = "5-10"
	BucketLong   = "10+"
)

// Default price range bounds.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 100
)

// PriceRange is an inclusive [Min, Max] price filter.
type PriceRange struct {
	Min float64
	Max float64
}

// FilterSpec describes one catalog query: free-text search, facet
// selections, price range, sort key and pagination. Zero values mean
// "no filtering" for the set-valued fields; Normalize fills the rest.
// Price is nil when the request carried no price parameter; an explicit
// range, including [0,0] for free courses only, is kept as given.
type FilterSpec struct {
	Search     string
	Categories []string
	Levels     []string
	Durations  []string
	Price      *PriceRange
	Sort       SortKey
	Page       int
	PageSize   int
}

// Normalize returns a copy of the filter with defaults applied and invariants
// restored: page >= 1, page size > 0, price min <= max.
func (s FilterSpec) Normalize() FilterSpec {
	if s.Page < 1 {
		s.Page = helpers.DefaultPage
	}
	if s.PageSize <= 0 || s.PageSize > helpers.MaxPageSize {
		s.PageSize = helpers.DefaultPageSize
	}
	if s.Price == nil {
		s.Price = &PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax}
	} else {
		price := *s.Price
		if price.Min > price.Max {
			price.Min, price.Max = price.Max, price.Min
		}
		s.Price = &price
	}
	if s.Sort == "" {
		s.Sort = SortPopular
	}
	return s
}

// ParseQuery builds a FilterSpec from URL query parameters using the catalog
// client's wire format: comma-separated facet lists, price as "min-max",
// 1-based "page" and "limit".
func ParseQuery(values url.Values) FilterSpec {
	spec := FilterSpec{
		Search:     values.Get("search"),
		Categories: splitList(values.Get("category")),
		Levels:     splitList(values.Get("level")),
		Durations:  splitList(values.Get("duration")),
		Sort:       SortKey(values.Get("sort")),
	}

	if priceRange := values.Get("price"); priceRange != "" {
		if min, max, ok := parsePriceRange(priceRange); ok {
			spec.Price = &PriceRange{Min: min, Max: max}
		}
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil {
		spec.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil {
		spec.PageSize = limit
	}

	return spec.Normalize()
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parsePriceRange(raw string) (min, max float64, ok bool) {
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	min, errMin := strconv.ParseFloat(parts[0], 64)
	max, errMax := strconv.ParseFloat(parts[1], 64)
	if errMin != nil || errMax != nil || min < 0 {
		return 0, 0, false
	}
	return min, max, true
}
