package http

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/treeboard/frontend"
	"github.com/secmon-lab/treeboard/pkg/domain/interfaces"
	"github.com/secmon-lab/treeboard/pkg/domain/model"
	"github.com/secmon-lab/treeboard/pkg/domain/types"
	"github.com/secmon-lab/treeboard/pkg/service/chart"
)

// DashboardHandler serves the dashboard page, the rendered charts and their data
type DashboardHandler struct {
	config    *model.DashboardConfig
	dashboard interfaces.Dashboard
	page      *template.Template
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(config *model.DashboardConfig, dashboard interfaces.Dashboard) (*DashboardHandler, error) {
	page, err := frontend.IndexTemplate(nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load dashboard page template")
	}

	return &DashboardHandler{
		config:    config,
		dashboard: dashboard,
		page:      page,
	}, nil
}

// selection reads the borough and species controls from the query string,
// falling back to the configured defaults
func (h *DashboardHandler) selection(r *http.Request) (types.Borough, types.Species) {
	q := r.URL.Query()

	borough := types.Borough(q.Get("borough"))
	if borough == "" {
		borough = h.config.DefaultBorough
	}
	species := types.Species(q.Get("species"))
	if species == "" {
		species = h.config.DefaultSpecies
	}
	return borough, species
}

func chartSrc(view model.View, borough types.Borough, species types.Species) string {
	q := url.Values{}
	q.Set("borough", borough.String())
	q.Set("species", species.String())
	return "/charts/" + view.String() + ".svg?" + q.Encode()
}

// speciesOptions keeps the charted species selectable when the startup list lacks it
func speciesOptions(species []types.Species, selected types.Species) []types.Species {
	if slices.Contains(species, selected) {
		return species
	}
	return append([]types.Species{selected}, species...)
}

type chartPanel struct {
	View   model.View
	Layout model.Layout
	Src    string
}

type pageData struct {
	Title           string
	Boroughs        []types.Borough
	Species         []types.Species
	Borough         types.Borough
	SelectedSpecies types.Species
	Health          []model.Health
	Charts          []chartPanel
	Width           int
	Height          int
}

// HandlePage renders the dashboard page
func (h *DashboardHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	borough, species := h.selection(r)

	data := pageData{
		Title:           h.config.Title,
		Boroughs:        h.dashboard.Boroughs(),
		Species:         speciesOptions(h.dashboard.Species(), species),
		Borough:         borough,
		SelectedSpecies: species,
		Health:          model.HealthLevels(),
		Width:           h.config.Chart.Width,
		Height:          h.config.Chart.Height,
	}
	for _, view := range model.Views() {
		data.Charts = append(data.Charts, chartPanel{
			View:   view,
			Layout: model.LayoutFor(view),
			Src:    chartSrc(view, borough, species),
		})
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		writeError(w, r, goerr.Wrap(err, "failed to render dashboard page"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *DashboardHandler) figure(r *http.Request) (*model.Figure, error) {
	borough, species := h.selection(r)
	view := model.View(chi.URLParam(r, "view"))
	return h.dashboard.Figure(r.Context(), borough, species, view)
}

// HandleChartSVG renders one chart of the current selection as SVG
func (h *DashboardHandler) HandleChartSVG(w http.ResponseWriter, r *http.Request) {
	fig, err := h.figure(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := chart.RenderSVG(&buf, fig, chart.WithSize(h.config.Chart.Width, h.config.Chart.Height)); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// HandleFigure returns one chart of the current selection as JSON
func (h *DashboardHandler) HandleFigure(w http.ResponseWriter, r *http.Request) {
	fig, err := h.figure(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, fig)
}

// HandleSpecies returns the species dropdown options
func (h *DashboardHandler) HandleSpecies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"species": h.dashboard.Species(),
		"default": h.config.DefaultSpecies,
	})
}

// HandleBoroughs returns the borough radio options
func (h *DashboardHandler) HandleBoroughs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"boroughs": h.dashboard.Boroughs(),
		"default":  h.config.DefaultBorough,
	})
}
