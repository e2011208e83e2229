package storefront

import (
	"context"
	"log"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	DefaultDebounce = 300 * time.Millisecond
	minSuggestText  = 2
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSuggesting
	PhaseSuggestionsShown
)

func (p Phase) String() string {
	switch p {
	case PhaseSuggesting:
		return "suggesting"
	case PhaseSuggestionsShown:
		return "suggestions-shown"
	default:
		return "idle"
	}
}

type PriceBucket string

const (
	PriceAny      PriceBucket = ""
	PriceUpTo200  PriceBucket = "ate-200"
	Price200To500 PriceBucket = "200-500"
	Price500To1k  PriceBucket = "500-1000"
	PriceOver1k   PriceBucket = "acima-1000"
)

// bounds returns the priceMin and priceMax parameters for b; "" means unset.
func (b PriceBucket) bounds() (string, string) {
	switch b {
	case PriceUpTo200:
		return "", "200"
	case Price200To500:
		return "200", "500"
	case Price500To1k:
		return "500", "1000"
	case PriceOver1k:
		return "1000", ""
	}
	return "", ""
}

type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortPriceAsc  SortOption = "price_asc"
	SortPriceDesc SortOption = "price_desc"
	SortName      SortOption = "name"
)

func (s SortOption) params() (string, string) {
	switch s {
	case SortPriceAsc:
		return "price", "asc"
	case SortPriceDesc:
		return "price", "desc"
	case SortName:
		return "name", "asc"
	}
	return "createdAt", "desc"
}

// Filters is the committed browsing state that drives the product list.
type Filters struct {
	Text     string
	Category string
	Material string
	Price    PriceBucket
	InStock  bool
	Sort     SortOption
	Page     int
}

func DefaultFilters() Filters {
	return Filters{Sort: SortNewest, Page: 1}
}

// Values encodes f as /api/products query parameters.
func (f Filters) Values() url.Values {
	v := url.Values{}
	if f.Text != "" {
		v.Set("q", f.Text)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Material != "" {
		v.Set("materialType", f.Material)
	}
	lo, hi := f.Price.bounds()
	if lo != "" {
		v.Set("priceMin", lo)
	}
	if hi != "" {
		v.Set("priceMax", hi)
	}
	if f.InStock {
		v.Set("inStock", "true")
	}
	sortBy, sortOrder := f.Sort.params()
	v.Set("sortBy", sortBy)
	v.Set("sortOrder", sortOrder)
	page := f.Page
	if page < 1 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))
	return v
}

// Snapshot is a copy of FilterState at one moment.
type Snapshot struct {
	Phase       Phase
	FiltersOpen bool
	Input       string
	Filters     Filters
	Suggestions []Suggestion
	Products    *ProductList
	Err         error
}

// FilterState tracks the search box, the open/closed filter panel and the
// committed filters. Suggestion lookups are debounced; product lists are
// fetched synchronously by the method that changed the filters.
type FilterState struct {
	fetcher  Fetcher
	history  History
	debounce time.Duration

	mu          sync.Mutex
	phase       Phase
	filtersOpen bool
	input       string
	filters     Filters
	suggestions []Suggestion
	products    *ProductList
	err         error
	timer       *time.Timer
	generation  int
}

func NewFilterState(fetcher Fetcher, history History, debounce time.Duration) *FilterState {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &FilterState{
		fetcher:  fetcher,
		history:  history,
		debounce: debounce,
		filters:  DefaultFilters(),
	}
}

func (s *FilterState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Phase:       s.phase,
		FiltersOpen: s.filtersOpen,
		Input:       s.input,
		Filters:     s.filters,
		Suggestions: append([]Suggestion(nil), s.suggestions...),
		Products:    s.products,
		Err:         s.err,
	}
}

// SetText records typed text. Two or more characters schedule a suggestion
// lookup after the debounce delay, replacing any pending one.
func (s *FilterState) SetText(ctx context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.input = text
	s.stopTimerLocked()
	s.generation++

	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minSuggestText {
		s.phase = PhaseIdle
		s.suggestions = nil
		return
	}

	s.phase = PhaseSuggesting
	gen := s.generation
	s.timer = time.AfterFunc(s.debounce, func() {
		s.loadSuggestions(ctx, gen, trimmed)
	})
}

func (s *FilterState) loadSuggestions(ctx context.Context, gen int, text string) {
	suggestions, err := s.fetcher.Suggestions(ctx, text)
	if err != nil {
		log.Printf("loadSuggestions: %q: %v", text, err)
		suggestions = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.suggestions = suggestions
	s.phase = PhaseSuggestionsShown
}

// Commit searches for the current input and records it in history.
func (s *FilterState) Commit(ctx context.Context) error {
	s.mu.Lock()
	s.commitLocked(s.input)
	s.mu.Unlock()
	return s.refresh(ctx)
}

// SelectSuggestion searches for the suggestion's text.
func (s *FilterState) SelectSuggestion(ctx context.Context, suggestion Suggestion) error {
	s.mu.Lock()
	s.input = suggestion.Text
	s.commitLocked(suggestion.Text)
	s.mu.Unlock()
	return s.refresh(ctx)
}

func (s *FilterState) commitLocked(text string) {
	s.stopTimerLocked()
	s.generation++
	s.phase = PhaseIdle
	s.suggestions = nil

	text = strings.TrimSpace(text)
	s.filters.Text = text
	s.filters.Page = 1
	if text != "" && s.history != nil {
		s.history.Append(text)
	}
}

// ToggleFilters opens or closes the filter panel. It never fetches.
func (s *FilterState) ToggleFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filtersOpen = !s.filtersOpen
}

// ToggleCategory selects slug, or clears it when it is already selected.
func (s *FilterState) ToggleCategory(ctx context.Context, slug string) error {
	return s.change(ctx, func(f *Filters) {
		if f.Category == slug {
			f.Category = ""
		} else {
			f.Category = slug
		}
	})
}

func (s *FilterState) ToggleMaterial(ctx context.Context, material string) error {
	return s.change(ctx, func(f *Filters) {
		if f.Material == material {
			f.Material = ""
		} else {
			f.Material = material
		}
	})
}

func (s *FilterState) TogglePrice(ctx context.Context, bucket PriceBucket) error {
	return s.change(ctx, func(f *Filters) {
		if f.Price == bucket {
			f.Price = PriceAny
		} else {
			f.Price = bucket
		}
	})
}

func (s *FilterState) SetInStock(ctx context.Context, inStock bool) error {
	return s.change(ctx, func(f *Filters) { f.InStock = inStock })
}

func (s *FilterState) SetSort(ctx context.Context, sort SortOption) error {
	return s.change(ctx, func(f *Filters) { f.Sort = sort })
}

// SetPage moves through the current result set without resetting filters.
func (s *FilterState) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.filters.Page = page
	s.mu.Unlock()
	return s.refresh(ctx)
}

// ClearFilters returns to the unfiltered, first page, newest first view.
func (s *FilterState) ClearFilters(ctx context.Context) error {
	s.mu.Lock()
	s.stopTimerLocked()
	s.generation++
	s.phase = PhaseIdle
	s.input = ""
	s.suggestions = nil
	s.filters = DefaultFilters()
	s.mu.Unlock()
	return s.refresh(ctx)
}

func (s *FilterState) change(ctx context.Context, mutate func(*Filters)) error {
	s.mu.Lock()
	mutate(&s.filters)
	s.filters.Page = 1
	s.mu.Unlock()
	return s.refresh(ctx)
}

// refresh fetches the product list for the current filters. A response for
// filters that changed meanwhile is dropped.
func (s *FilterState) refresh(ctx context.Context) error {
	s.mu.Lock()
	filters := s.filters
	s.mu.Unlock()

	list, err := s.fetcher.Products(ctx, filters.Values())

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filters != filters {
		return err
	}
	s.err = err
	if err == nil {
		s.products = list
	}
	return err
}

func (s *FilterState) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
