package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/jask/skincare/internal/config"
	"github.com/jask/skincare/internal/routine"
	"github.com/jask/skincare/internal/service"
)

// App ties together views.
type App struct {
	ctx         context.Context
	planner     *service.Planner
	log         *zap.Logger
	cfg         config.UIConfig
	session     service.Session
	state       appState
	modal       modalState
	quizCursor  int
	savedCursor int
	detailIndex int
	nameInput   textinput.Model
	renderer    *glamour.TermRenderer
	width       int
	status      string
}

type appState string

const (
	viewHome    appState = "home"
	viewQuiz    appState = "quiz"
	viewResults appState = "results"
	viewSaved   appState = "saved"
	viewDetail  appState = "detail"
)

type modalState string

const (
	modalNone modalState = ""
	modalSave modalState = "save"
)

// quiz rows: skin types first, then concerns.
var (
	quizSkinTypes = routine.SkinTypes()
	quizConcerns  = routine.Concerns()
	quizRows      = len(quizSkinTypes) + len(quizConcerns)
)

func New(ctx context.Context, cfg config.UIConfig, planner *service.Planner, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "Enter routine name"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "> "
	ti.Cursor.SetMode(cursor.CursorStatic)

	a := &App{
		ctx:       ctx,
		planner:   planner,
		log:       log,
		cfg:       cfg,
		state:     viewHome,
		nameInput: ti,
		width:     defaultWrap,
	}
	a.refreshRenderer()
	return a
}

func (a *App) Init() tea.Cmd {
	return a.loadSaved()
}

func (a *App) loadSaved() tea.Cmd {
	return func() tea.Msg {
		return savedListMsg(a.planner.Load(a.ctx))
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		if m.Width > 0 && m.Width != a.width {
			a.width = m.Width
			a.refreshRenderer()
		}
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		switch m.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.goTo(viewHome)
			return a, nil
		case "2":
			a.goTo(viewQuiz)
			return a, nil
		case "3":
			a.goTo(viewSaved)
			return a, nil
		}
		switch a.state {
		case viewQuiz:
			return a.handleQuizKey(m)
		case viewResults:
			return a.handleResultsKey(m)
		case viewSaved:
			return a.handleSavedKey(m)
		case viewDetail:
			return a.handleDetailKey(m)
		default:
			return a.handleHomeKey(m)
		}
	case savedListMsg:
		a.session.Saved = []routine.Routine(m)
		a.clampSavedCursor()
	case routineSavedMsg:
		a.session.Saved = m.saved
		a.savedCursor = len(m.saved) - 1
		a.goTo(viewSaved)
		a.status = fmt.Sprintf("saved %q", m.routine.Name)
	case routineDeletedMsg:
		a.session.Saved = m.saved
		a.clampSavedCursor()
		a.status = fmt.Sprintf("deleted %q", m.name)
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) goTo(s appState) {
	a.state = s
	a.status = ""
}

func (a *App) handleHomeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "c", "enter":
		a.session.StartQuiz()
		a.quizCursor = 0
		a.goTo(viewQuiz)
	case "s":
		a.goTo(viewSaved)
	}
	return a, nil
}

func (a *App) handleQuizKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.goTo(viewHome)
	case "up", "k":
		if a.quizCursor > 0 {
			a.quizCursor--
		}
	case "down", "j":
		if a.quizCursor < quizRows-1 {
			a.quizCursor++
		}
	case "enter", " ", "x":
		if a.quizCursor < len(quizSkinTypes) {
			a.session.SelectSkinType(quizSkinTypes[a.quizCursor])
			return a, nil
		}
		a.session.ToggleConcern(quizConcerns[a.quizCursor-len(quizSkinTypes)])
	case "g":
		if err := a.session.Generate(); err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.log.Debug("routine generated",
			zap.String("skin_type", string(a.session.SkinType)),
			zap.Int("concerns", a.session.Concerns.Len()),
			zap.Int("steps", len(a.session.Current)))
		a.goTo(viewResults)
	}
	return a, nil
}

func (a *App) handleResultsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc", "b":
		a.goTo(viewQuiz)
	case "s":
		a.modal = modalSave
		a.nameInput.Reset()
		return a, a.nameInput.Focus()
	}
	return a, nil
}

func (a *App) handleSavedKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc", "b":
		a.goTo(viewQuiz)
	case "h":
		a.goTo(viewHome)
	case "up", "k":
		if a.savedCursor > 0 {
			a.savedCursor--
		}
	case "down", "j":
		if a.savedCursor < len(a.session.Saved)-1 {
			a.savedCursor++
		}
	case "enter":
		if len(a.session.Saved) > 0 {
			a.detailIndex = a.savedCursor
			a.goTo(viewDetail)
		}
	case "d", "delete":
		if len(a.session.Saved) > 0 {
			return a, a.deleteCmd(a.savedCursor)
		}
	}
	return a, nil
}

func (a *App) handleDetailKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc", "b":
		a.goTo(viewSaved)
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.closeModal()
		return a, nil
	case tea.KeyEnter:
		name := a.nameInput.Value()
		a.closeModal()
		return a, a.saveCmd(name)
	case tea.KeyCtrlC:
		return a, tea.Quit
	}
	var cmd tea.Cmd
	a.nameInput, cmd = a.nameInput.Update(m)
	return a, cmd
}

func (a *App) closeModal() {
	a.modal = modalNone
	a.nameInput.Reset()
	a.nameInput.Blur()
}

// commands work on copies so only Update mutates the session.
func (a *App) saveCmd(name string) tea.Cmd {
	saved := append([]routine.Routine(nil), a.session.Saved...)
	products := append([]routine.ProductStep(nil), a.session.Current...)
	return func() tea.Msg {
		out, r := a.planner.Save(a.ctx, saved, name, products)
		return routineSavedMsg{saved: out, routine: r}
	}
}

func (a *App) deleteCmd(index int) tea.Cmd {
	saved := append([]routine.Routine(nil), a.session.Saved...)
	return func() tea.Msg {
		out, err := a.planner.Delete(a.ctx, saved, index)
		if err != nil {
			return errMsg{err}
		}
		return routineDeletedMsg{saved: out, name: saved[index].Name}
	}
}

func (a *App) clampSavedCursor() {
	if a.savedCursor >= len(a.session.Saved) {
		a.savedCursor = len(a.session.Saved) - 1
	}
	if a.savedCursor < 0 {
		a.savedCursor = 0
	}
}

func (a *App) refreshRenderer() {
	if !a.cfg.Markdown {
		a.renderer = nil
		return
	}
	r, err := NewMarkdownRenderer(a.cfg.GlamourStyle, a.width)
	if err != nil {
		a.log.Warn("markdown renderer unavailable", zap.Error(err))
		a.renderer = nil
		return
	}
	a.renderer = r
}

type savedListMsg []routine.Routine

type routineSavedMsg struct {
	saved   []routine.Routine
	routine routine.Routine
}

type routineDeletedMsg struct {
	saved []routine.Routine
	name  string
}

type errMsg struct{ error }
