package page

// Agent is a coding agent or tool supporting AGENTS.md.
type Agent struct {
	Name string
	URL  string
	From string

	// Image is used when there are no theme specific variants.
	Image      string
	ImageLight string
	ImageDark  string
}

// Themed tells if agent has separate logos for light and dark theme.
func (a Agent) Themed() bool {
	return a.ImageLight != "" && a.ImageDark != ""
}

// Agents is the catalogue of compatible agents, in grid order.
var Agents = []Agent{
	{Name: "Codex", URL: "https://openai.com/codex/", From: "OpenAI", Image: "/logos/codex.svg"},
	{Name: "Amp", URL: "https://ampcode.com", Image: "/logos/amp.svg"},
	{Name: "Jules", URL: "https://jules.google", From: "Google", Image: "/logos/jules.svg"},
	{Name: "Cursor", URL: "https://cursor.com", Image: "/logos/cursor.svg"},
	{Name: "Factory", URL: "https://factory.ai", Image: "/logos/factory.svg"},
	{Name: "RooCode", URL: "https://roocode.com", Image: "/logos/roocode.svg"},
	{Name: "Aider", URL: "https://aider.chat/docs/usage/conventions.html#always-load-conventions", Image: "/logos/aider.svg"},
	{
		Name:  "Gemini CLI",
		URL:   "https://github.com/google-gemini/gemini-cli/blob/main/docs/get-started/configuration.md#available-settings-in-settingsjson",
		From:  "Google",
		Image: "/logos/gemini.svg",
	},
	{Name: "goose", URL: "https://github.com/block/goose", Image: "/logos/goose.svg"},
	{Name: "Kilo Code", URL: "https://kilocode.ai/", Image: "/logos/kilo-code.svg"},
	{Name: "opencode", URL: "https://opencode.ai/docs/rules/", Image: "/logos/opencode.svg"},
	{Name: "Phoenix", URL: "https://phoenix.new/", Image: "/logos/phoenix.svg"},
	{Name: "Zed", URL: "https://zed.dev/docs/ai/rules", Image: "/logos/zed.svg"},
	{Name: "Semgrep", URL: "https://semgrep.dev", Image: "/logos/semgrep.svg"},
	{Name: "Warp", URL: "https://docs.warp.dev/knowledge-and-collaboration/rules#project-scoped-rules-1", Image: "/logos/warp.svg"},
	{Name: "Coding agent", From: "GitHub Copilot", URL: "https://gh.io/coding-agent-docs", Image: "/logos/copilot.svg"},
	{
		Name:       "VS Code",
		URL:        "https://code.visualstudio.com/docs/editor/artificial-intelligence",
		ImageLight: "/logos/vscode-light.svg",
		ImageDark:  "/logos/vscode-dark.svg",
	},
	{Name: "Ona", URL: "https://ona.com", ImageLight: "/logos/ona-light.svg", ImageDark: "/logos/ona-dark.svg"},
	{Name: "Devin", From: "Cognition", URL: "https://devin.ai", ImageLight: "/logos/devin-light.svg", ImageDark: "/logos/devin-dark.svg"},
	{
		Name:       "Windsurf",
		From:       "Cognition",
		URL:        "https://windsurf.com",
		ImageLight: "/logos/windsurf-light.svg",
		ImageDark:  "/logos/windsurf-dark.svg",
	},
	{Name: "Autopilot & Coded Agents", From: "UiPath", URL: "https://uipath.github.io/uipath-python", Image: "/logos/uipath.svg"},
}

// Shuffle returns shuffled copy of agents. Given slice is not modified.
// shuffle has the signature of rand.Shuffle.
func Shuffle(agents []Agent, shuffle func(n int, swap func(i, j int))) []Agent {
	shuffled := append([]Agent(nil), agents...)
	shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}

// SplitRows distributes agents alternately between two marquee rows.
func SplitRows(agents []Agent) (top []Agent, bottom []Agent) {
	for i, a := range agents {
		if i%2 == 0 {
			top = append(top, a)
		} else {
			bottom = append(bottom, a)
		}
	}

	return top, bottom
}

// MarqueeRow is a row of scrolling logos.
// Items are repeated twice, so the animation loops without a gap.
type MarqueeRow struct {
	Items    []Agent
	Duration int
	Offset   int
}

func newMarqueeRow(agents []Agent, duration int, offset int) MarqueeRow {
	items := make([]Agent, 0, 2*len(agents))
	items = append(items, agents...)
	items = append(items, agents...)

	return MarqueeRow{
		Items:    items,
		Duration: duration,
		Offset:   offset,
	}
}
