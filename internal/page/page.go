package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/m-zajac/agentsmd/internal/app"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Meta holds page metadata rendered into head tags.
type Meta struct {
	Title       string
	Description string
	URL         string
	Image       string
}

// DefaultMeta describes the AGENTS.md site.
var DefaultMeta = Meta{
	Title:       "AGENTS.md",
	Description: "AGENTS.md is a simple, open format for guiding coding agents. Think of it as a README for agents.",
	URL:         "https://agents.md",
	Image:       "https://agents.md/og.png",
}

// ExampleCard shows a repository using AGENTS.md together with its contributors.
type ExampleCard struct {
	Repository string
	URL        string
	Avatars    []string
	Total      int
	TotalLabel string
	// More is the number of contributors not shown as avatars.
	More int
}

// Data is the template input.
type Data struct {
	Meta        Meta
	Hero        Snippet
	Example     Snippet
	Marquee     []MarqueeRow
	Agents      []Agent
	Examples    []ExampleCard
	GeneratedAt time.Time
}

// Renderer renders the landing page.
type Renderer struct {
	tmpl    *template.Template
	meta    Meta
	repos   []app.Repository
	shuffle func(n int, swap func(i, j int))
}

// NewRenderer creates new Renderer instance.
// repos sets the order of example cards. shuffle is used for marquee order, rand.Shuffle if nil.
func NewRenderer(meta Meta, repos []app.Repository, shuffle func(n int, swap func(i, j int))) (*Renderer, error) {
	tmpl, err := template.New("page").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	if shuffle == nil {
		shuffle = rand.Shuffle
	}

	return &Renderer{
		tmpl:    tmpl,
		meta:    meta,
		repos:   append([]app.Repository(nil), repos...),
		shuffle: shuffle,
	}, nil
}

// Render writes the page for given contributors data.
// Output is written only if the whole template executes successfully.
func (r *Renderer) Render(w io.Writer, contributors app.ContributorsPage) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "index.html", r.NewData(contributors)); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}

	return nil
}

// NewData builds template input.
func (r *Renderer) NewData(contributors app.ContributorsPage) Data {
	top, bottom := SplitRows(Shuffle(Agents, r.shuffle))

	return Data{
		Meta:    r.meta,
		Hero:    NewSnippet(HeroAgentsMD),
		Example: NewSnippet(ExampleAgentsMD),
		Marquee: []MarqueeRow{
			newMarqueeRow(top, 70, 0),
			newMarqueeRow(bottom, 80, -35),
		},
		Agents:      Agents,
		Examples:    newExampleCards(r.repos, contributors.Repositories),
		GeneratedAt: contributors.FetchedAt,
	}
}

func newExampleCards(repos []app.Repository, summaries map[string]app.ContributorSummary) []ExampleCard {
	cards := make([]ExampleCard, 0, len(repos))
	for _, repo := range repos {
		s := summaries[repo.String()]
		card := ExampleCard{
			Repository: repo.String(),
			URL:        "https://github.com/" + repo.String(),
			Avatars:    s.Avatars,
			Total:      s.Total,
			TotalLabel: contributorsLabel(s.Total),
		}
		if more := s.Total - len(s.Avatars); more > 0 {
			card.More = more
		}
		cards = append(cards, card)
	}

	return cards
}

func contributorsLabel(total int) string {
	if total == 1 {
		return "1 contributor"
	}

	return humanize.Comma(int64(total)) + " contributors"
}
