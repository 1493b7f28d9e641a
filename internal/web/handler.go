// Package web serves the server-rendered movie browser.
package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"movies-api/internal/data/entity"
	"movies-api/internal/dto/request"
	"movies-api/pkg/apperr"
	"movies-api/pkg/pagination"
)

// NavSpread is how many page links are shown on each side of the current one.
const NavSpread = 2

const detailPlaceholder = "https://via.placeholder.com/1200x500?text=No+Image"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type page struct {
	Title     string
	Sample    bool
	Observers string
}

type navLink struct {
	Page     int
	Href     string
	Active   bool
	Ellipsis bool
}

type indexPage struct {
	page
	Cards    []Card
	Nav      pagination.NavigationWindow
	Links    []navLink
	PrevHref string
	NextHref string
	Showing  string
}

type moviePage struct {
	page
	Movie       *entity.Movie
	Image       string
	Background  string
	Description string
	Year        string
	Genres      string
	Duration    string
}

type errorPage struct {
	page
	Message string
}

type Handler struct {
	catalog   Catalog
	policy    pagination.Policy
	stages    []Stage
	templates map[string]*template.Template
	static    http.Handler
	log       *zap.Logger
}

func NewHandler(catalog Catalog, policy pagination.Policy, log *zap.Logger) (*Handler, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	static, err := staticHandler(staticFS)
	if err != nil {
		return nil, err
	}
	return &Handler{
		catalog:   catalog,
		policy:    policy,
		stages:    DefaultStages,
		templates: templates,
		static:    static,
		log:       log.With(zap.String("handler", "web")),
	}, nil
}

// staticHandler serves the static/ directory of assets at the mount root.
func staticHandler(assets fs.FS) (http.Handler, error) {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("open static assets: %w", err)
	}
	if _, err := fs.Stat(sub, "app.js"); err != nil {
		return nil, fmt.Errorf("open static assets: %w", err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub))), nil
}

func parseTemplates() (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"join": strings.Join,
		// a data: URL is rejected by the src sanitizer unless marked safe
		"blankImage": func() template.URL { return blankImage },
	}

	out := make(map[string]*template.Template, 3)
	for _, name := range []string{"index", "movie", "error"} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

// Routes mounts the pages and their static assets on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/movie/{id}", h.Movie)
	r.Handle("/static/*", h.static)
}

// Index renders one page of the movie grid with its navigation controls.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	query := request.ParseMovieListQuery(values, h.policy)

	listing, err := h.catalog.List(r.Context(), query)
	if err != nil {
		h.renderError(w, err, "Failed to load movies. Please try again later.")
		return
	}

	view := &PageView{Movies: listing.Data}
	if err := Render(view, h.stages...); err != nil {
		h.log.Error("Failed to build movie grid", zap.Error(err))
		h.renderError(w, err, "Failed to load movies. Please try again later.")
		return
	}

	nav := pagination.ComputeNavigationWindow(listing.Page, listing.TotalPages, NavSpread)
	data := indexPage{
		page: page{
			Title:     "Movies",
			Sample:    listing.Sample,
			Observers: strings.Join(view.Observers, " "),
		},
		Cards:    view.Cards,
		Nav:      nav,
		PrevHref: pageHref(values, nav.Prev()),
		NextHref: pageHref(values, nav.Next()),
		Showing:  showing(listing.Result),
	}
	for _, e := range nav.Entries() {
		data.Links = append(data.Links, navLink{
			Page:     e.Page,
			Href:     pageHref(values, e.Page),
			Active:   e.Active,
			Ellipsis: e.Ellipsis,
		})
	}

	h.render(w, http.StatusOK, "index", data)
}

// Movie renders the detail page of one movie.
func (h *Handler) Movie(w http.ResponseWriter, r *http.Request) {
	entry, err := h.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, err, "Failed to load movie details. Please try again later.")
		return
	}

	m := entry.Movie
	data := moviePage{
		page:        page{Title: m.Title, Sample: entry.Sample},
		Movie:       m,
		Image:       detailPlaceholder,
		Description: firstNonEmpty(m.LongDescription, m.ShortDescription, "No description available"),
		Year:        "Unknown",
		Genres:      "Unknown",
	}
	if img := m.CoverImage(); img != nil && img.URL != "" {
		data.Image = img.URL
	}
	if bg := m.BackgroundImage(); bg != nil {
		data.Background = bg.URL
	}
	if y := m.Year(); y > 0 {
		data.Year = strconv.Itoa(y)
	}
	if titles := m.GenreTitles(); len(titles) > 0 {
		data.Genres = strings.Join(titles, ", ")
	}
	if m.Duration > 0 {
		data.Duration = strconv.Itoa(m.Duration) + " min"
	}

	h.render(w, http.StatusOK, "movie", data)
}

func (h *Handler) renderError(w http.ResponseWriter, err error, fallback string) {
	code, msg := http.StatusInternalServerError, fallback

	var ve *apperr.ValidationError
	switch {
	case errors.Is(err, apperr.ErrInvalidIdentifier):
		code, msg = http.StatusBadRequest, "Invalid movie ID format"
	case errors.As(err, &ve):
		code, msg = http.StatusBadRequest, ve.Error()
	case errors.Is(err, apperr.ErrNotFound):
		code, msg = http.StatusNotFound, "Movie not found"
	default:
		h.log.Error("Page failed", zap.Error(err))
	}

	h.render(w, code, "error", errorPage{page: page{Title: http.StatusText(code)}, Message: msg})
}

// render executes into a buffer first so a template error never leaves a
// half-written page behind.
func (h *Handler) render(w http.ResponseWriter, code int, name string, data any) {
	var buf bytes.Buffer
	if err := h.templates[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		h.log.Error("Failed to render template", zap.String("template", name), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

func pageHref(values url.Values, p int) string {
	q := url.Values{}
	for k, v := range values {
		q[k] = v
	}
	q.Set("page", strconv.Itoa(p))
	return "/?" + q.Encode()
}

func showing[T any](r *pagination.Result[T]) string {
	if r.TotalItems == 0 || len(r.Data) == 0 {
		return ""
	}
	return fmt.Sprintf("Showing %d-%d of %d movies", r.FirstItem(), r.LastItem(), r.TotalItems)
}
