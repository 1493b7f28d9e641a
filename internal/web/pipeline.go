package web

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"movies-api/internal/data/entity"
)

const (
	placeholderImage = "https://via.placeholder.com/300x450?text=No+Image"
	// transparent 1x1 gif shown until the real image is in view
	blankImage = "data:image/gif;base64,R0lGODlhAQABAAAAACH5BAEKAAEALAAAAAABAAEAAAICTAEAOw=="

	cardDescriptionLen = 100

	ObserverLazyImages  = "img[data-src]"
	ObserverRevealCards = ".movie-card"
)

var ErrStageOrder = errors.New("render stage out of order")

// Card is the view of one movie in the grid.
type Card struct {
	ID          string
	Href        string
	Title       string
	Description string
	Year        string
	Genres      []string

	ImageURL string
	// Src is what the img tag loads initially; DataSrc is set when the
	// image is deferred until it scrolls into view.
	Src     string
	DataSrc string
	Lazy    bool
}

// PageView holds everything the index template renders for one request.
type PageView struct {
	Movies []*entity.Movie
	Cards  []Card

	Observers []string
	lazy      bool
}

// Stage transforms a PageView in place.
type Stage func(*PageView) error

// DefaultStages is the render pipeline used by the index page.
var DefaultStages = []Stage{BuildCards, AttachLazyLoad, RegisterViewportObservers}

// Render runs the stages in order and stops at the first error.
func Render(view *PageView, stages ...Stage) error {
	for i, stage := range stages {
		if err := stage(view); err != nil {
			return fmt.Errorf("render stage %d: %w", i, err)
		}
	}
	return nil
}

// BuildCards turns the page's movies into cards.
func BuildCards(view *PageView) error {
	view.Cards = make([]Card, 0, len(view.Movies))
	for _, m := range view.Movies {
		view.Cards = append(view.Cards, newCard(m))
	}
	return nil
}

// AttachLazyLoad defers every card image until it is near the viewport.
func AttachLazyLoad(view *PageView) error {
	if len(view.Cards) != len(view.Movies) {
		return fmt.Errorf("%w: lazy loading needs cards", ErrStageOrder)
	}
	for i := range view.Cards {
		c := &view.Cards[i]
		c.DataSrc = c.ImageURL
		c.Src = blankImage
		c.Lazy = true
	}
	view.lazy = len(view.Cards) > 0
	return nil
}

// RegisterViewportObservers lists the selectors the page script observes.
func RegisterViewportObservers(view *PageView) error {
	if len(view.Cards) != len(view.Movies) {
		return fmt.Errorf("%w: observers need cards", ErrStageOrder)
	}
	view.Observers = view.Observers[:0]
	if view.lazy {
		view.Observers = append(view.Observers, ObserverLazyImages)
	}
	if len(view.Cards) > 0 {
		view.Observers = append(view.Observers, ObserverRevealCards)
	}
	return nil
}

func newCard(m *entity.Movie) Card {
	imageURL := placeholderImage
	if img := m.CoverImage(); img != nil && img.URL != "" {
		imageURL = img.URL
	}

	year := "Unknown"
	if y := m.Year(); y > 0 {
		year = strconv.Itoa(y)
	}

	id := m.ID.Hex()
	return Card{
		ID:          id,
		Href:        "/movie/" + id,
		Title:       m.Title,
		Description: truncate(firstNonEmpty(m.ShortDescription, m.LongDescription, "No description available"), cardDescriptionLen),
		Year:        year,
		Genres:      m.GenreTitles(),
		ImageURL:    imageURL,
		Src:         imageURL,
	}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimRight(string(r[:n]), " ") + "..."
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
