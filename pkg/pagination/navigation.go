package pagination

// DefaultSpread is how many pages are shown on each side of the current one.
const DefaultSpread = 2

// NavigationWindow describes the controls rendered under a paginated list.
// It is derived from (current, total) on every render and never stored.
type NavigationWindow struct {
	Current              int   `json:"current"`
	Total                int   `json:"total"`
	PrevEnabled          bool  `json:"prevEnabled"`
	NextEnabled          bool  `json:"nextEnabled"`
	PageNumbers          []int `json:"pageNumbers"`
	ShowLeadingEllipsis  bool  `json:"showLeadingEllipsis"`
	ShowTrailingEllipsis bool  `json:"showTrailingEllipsis"`
}

// NavEntry is one rendered control: a page link or an ellipsis marker.
type NavEntry struct {
	Page     int
	Ellipsis bool
	Active   bool
}

// ComputeNavigationWindow returns the page numbers to show around currentPage.
//
// The window is [current-spread, current+spread] clipped to [1, totalPages].
// Page 1 and the last page are always reachable; an ellipsis marks a gap of
// at least one hidden page. With totalPages <= 1 navigation is suppressed and
// the zero window is returned.
//
// A currentPage outside [1, totalPages] is clamped for the window only;
// PrevEnabled and NextEnabled still reflect the requested page.
func ComputeNavigationWindow(currentPage, totalPages, spread int) NavigationWindow {
	if totalPages <= 1 {
		return NavigationWindow{Current: currentPage, Total: totalPages}
	}
	if spread < 0 {
		spread = 0
	}

	center := currentPage
	if center < 1 {
		center = 1
	}
	if center > totalPages {
		center = totalPages
	}

	start := max(1, center-spread)
	end := min(totalPages, center+spread)

	w := NavigationWindow{
		Current:     currentPage,
		Total:       totalPages,
		PrevEnabled: currentPage > 1,
		NextEnabled: currentPage < totalPages,
		PageNumbers: make([]int, 0, end-start+3),
	}

	if start > 1 {
		w.PageNumbers = append(w.PageNumbers, 1)
		w.ShowLeadingEllipsis = start > 2
	}
	for p := start; p <= end; p++ {
		w.PageNumbers = append(w.PageNumbers, p)
	}
	if end < totalPages {
		w.ShowTrailingEllipsis = end < totalPages-1
		w.PageNumbers = append(w.PageNumbers, totalPages)
	}

	return w
}

// Visible reports whether any controls should be rendered.
func (w NavigationWindow) Visible() bool {
	return len(w.PageNumbers) > 0
}

// Entries flattens the window into render order, placing the ellipsis
// markers after the first page and before the last one.
func (w NavigationWindow) Entries() []NavEntry {
	if !w.Visible() {
		return nil
	}

	entries := make([]NavEntry, 0, len(w.PageNumbers)+2)
	last := len(w.PageNumbers) - 1
	for i, p := range w.PageNumbers {
		if i == last && w.ShowTrailingEllipsis {
			entries = append(entries, NavEntry{Ellipsis: true})
		}
		entries = append(entries, NavEntry{Page: p, Active: p == w.Current})
		if i == 0 && w.ShowLeadingEllipsis {
			entries = append(entries, NavEntry{Ellipsis: true})
		}
	}
	return entries
}

// Prev is the page the previous control links to.
func (w NavigationWindow) Prev() int {
	return max(1, w.Current-1)
}

// Next is the page the next control links to.
func (w NavigationWindow) Next() int {
	if w.Current >= w.Total {
		return w.Total
	}
	return w.Current + 1
}
