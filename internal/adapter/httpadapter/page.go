package httpadapter

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate -f page.templ

import (
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/couchcryptid/uninsured-dashboard/internal/dashboard"
)

// pageStateID is the id of the JSON script element the page script reads.
const pageStateID = "dashboard_state"

// pageView is the data behind the dashboard page.
type pageView struct {
	Layout dashboard.Layout
	State  pageState
}

// pageState is handed to the browser as JSON; the page script wires the
// slider and graph from it.
type pageState struct {
	Initial        renderResponse `json:"initial"`
	StatusID       string         `json:"status_id"`
	GraphID        string         `json:"graph_id"`
	SliderID       string         `json:"slider_id"`
	EventURL       string         `json:"event_url"`
	SliderEvent    string         `json:"slider_event"`
	DisplayModeBar bool           `json:"display_mode_bar"`
}

func newPageView(layout dashboard.Layout, initial dashboard.Output) pageView {
	sliderEvent := "change"
	if layout.Slider.UpdateMode == "drag" {
		sliderEvent = "input"
	}
	return pageView{
		Layout: layout,
		State: pageState{
			Initial:        newRenderResponse(initial),
			StatusID:       layout.StatusID,
			GraphID:        layout.GraphID,
			SliderID:       layout.Slider.ID,
			EventURL:       "/api/events/" + url.PathEscape(layout.ChangeEvent),
			SliderEvent:    sliderEvent,
			DisplayModeBar: !layout.HideModeBar,
		},
	}
}

// handlePage renders the page into a buffer first; a figure that cannot be
// encoded fails the render and the client gets a 500 instead of a broken page.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	layout := s.dashboard.Layout()
	initial := s.dashboard.Render(layout.InitialYear)

	templ.Handler(dashboardPage(newPageView(layout, initial)),
		templ.WithErrorHandler(func(req *http.Request, err error) http.Handler {
			s.logger.Error("page render failed", "error", err, "path", req.URL.Path)
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "page render failed", http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}
