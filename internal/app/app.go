package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathdash/internal/course"
	"github.com/abhisek/pathdash/internal/dataset"
	"github.com/abhisek/pathdash/internal/debug"
	"github.com/abhisek/pathdash/internal/router"
	"github.com/abhisek/pathdash/internal/screen"
	"github.com/abhisek/pathdash/internal/screens/dashboard"
	"github.com/abhisek/pathdash/internal/ui/layout"
	"github.com/abhisek/pathdash/internal/watcher"
)

// Options configures the TUI.
type Options struct {
	Dashboard dashboard.Options
	// Source is reloaded whenever a watched path changes.
	Source dataset.Source
	// WatchPaths are the data file and chapters directory. Nil disables
	// live reload.
	WatchPaths []string
	Debounce   time.Duration
}

// fileChangedMsg is sent when the watcher reports a change.
type fileChangedMsg struct{}

// reloadedMsg carries the result of reloading the data source.
type reloadedMsg struct {
	dataset *course.Dataset
	source  string
	err     error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	source  dataset.Source
	watcher *watcher.Watcher
	overall int
	width   int
	height  int
}

// newAppModel creates a new AppModel with the dashboard as the root screen.
func newAppModel(ds *course.Dataset, sourceName string, opts Options, w *watcher.Watcher) (AppModel, error) {
	dash, err := dashboard.New(ds, sourceName, opts.Dashboard)
	if err != nil {
		return AppModel{}, err
	}
	return AppModel{
		router:  router.New(dash),
		source:  opts.Source,
		watcher: w,
		overall: dash.Dataset().OverallPercent(),
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return watchCmd(m.watcher)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case fileChangedMsg:
		return m, tea.Batch(reloadCmd(m.source), watchCmd(m.watcher))

	case reloadedMsg:
		if msg.err != nil {
			debug.LogErr("reload", msg.err)
			return m, nil
		}
		m.overall = msg.dataset.OverallPercent()
		return m, m.router.Broadcast(screen.DataMsg{Dataset: msg.dataset, Source: msg.source})

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the full frame, or nothing before the first WindowSizeMsg.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	chrome := layout.Chrome{
		Trail:  m.router.Trail(" › "),
		Status: fmt.Sprintf("%d%% complete  ", m.overall),
		Hints:  m.hints(),
	}
	return chrome.Render(m.width, m.height, m.router.View)
}

// hints lists the active screen's keys, or the global ones when it has none.
func (m AppModel) hints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}, {Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

// watchCmd blocks until the watcher reports a change.
func watchCmd(w *watcher.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		<-w.Changed()
		return fileChangedMsg{}
	}
}

// reloadCmd loads src off the UI goroutine.
func reloadCmd(src dataset.Source) tea.Cmd {
	if src == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		start := time.Now()
		ds, served, err := dataset.Resolve(ctx, src)
		debug.LogTiming("reload "+src.Describe(), time.Since(start))
		if err == nil && ds == nil {
			err = errors.New("source returned no data")
		}
		name := src.Describe()
		if served != nil {
			name = served.Describe()
		}
		return reloadedMsg{dataset: ds, source: name, err: err}
	}
}

// Run starts the Bubble Tea program over ds until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, ds *course.Dataset, sourceName string, opts Options) error {
	if opts.Debounce <= 0 {
		opts.Debounce = watcher.DefaultDebounceDuration
	}

	var w *watcher.Watcher
	if len(opts.WatchPaths) > 0 && opts.Source != nil {
		var err error
		w, err = watcher.New(opts.WatchPaths,
			watcher.WithDebounceDuration(opts.Debounce),
			watcher.WithOnError(func(err error) { debug.LogErr("watcher", err) }),
		)
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		if err := w.Start(); err != nil {
			debug.LogErr("start watcher", err)
			w = nil
		} else {
			defer w.Stop()
		}
	}

	model, err := newAppModel(ds, sourceName, opts, w)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
