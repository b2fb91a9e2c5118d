package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"math"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"backoffice/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// frenchRelTime spells durations the way the back-office UI speaks
var frenchRelTime = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "à l'instant", DivBy: time.Second},
	{D: time.Minute, Format: "%s %d secondes", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "%s 1 minute", DivBy: 1},
	{D: time.Hour, Format: "%s %d minutes", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "%s 1 heure", DivBy: 1},
	{D: humanize.Day, Format: "%s %d heures", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "%s 1 jour", DivBy: 1},
	{D: humanize.Week, Format: "%s %d jours", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "%s 1 semaine", DivBy: 1},
	{D: humanize.Month, Format: "%s %d semaines", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "%s 1 mois", DivBy: 1},
	{D: humanize.Year, Format: "%s %d mois", DivBy: humanize.Month},
	{D: math.MaxInt64, Format: "%s plus d'un an", DivBy: 1},
}

// Renderer executes the embedded page templates inside the shared layout
type Renderer struct {
	pages map[string]*template.Template
	now   func() time.Time
}

// NewRenderer parses every page template once
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template), now: time.Now}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New(name).Funcs(r.funcs()).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render writes the named page with the given status. Execution happens into
// a buffer so a template error never leaves a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data interface{}) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"since": func(t time.Time) string {
			return humanize.CustomRelTime(t, r.now(), "il y a", "dans", frenchRelTime)
		},
		"date": func(t time.Time) string {
			return t.Format("02/01/2006")
		},
		"price": func(v float64) string {
			return humanize.FormatFloat("# ###,##", v) + " €"
		},
		"count": func(v int64) string {
			return humanize.Comma(v)
		},
		"percent": func(v, peak int64) int64 {
			if peak <= 0 {
				return 0
			}
			return v * 100 / peak
		},
		"activityPath": view.PageActivitiesDetail.Path,
		"tabs":         func() []view.Tab { return view.Tabs },
		"steps":        func() []view.WizardStep { return view.WizardSteps },
		"timeOptions":  func() []string { return view.TimeOptions },
		"participants": func() []int { return participantOptions },
	}
}

var participantOptions = func() []int {
	opts := make([]int, view.MaxParticipants+1)
	for i := range opts {
		opts[i] = i
	}
	return opts
}()
