package tui

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jask/skincare/internal/routine"
	"github.com/jask/skincare/internal/service"
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewQuiz:
		body = a.renderQuiz()
	case viewResults:
		body = a.renderResults()
	case viewSaved:
		body = a.renderSaved()
	case viewDetail:
		body = a.renderDetail()
	default:
		body = a.renderHome()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	if a.status != "" {
		body += "\n" + a.status
	}
	return body
}

func (a *App) renderHome() string {
	var b strings.Builder
	b.WriteString(brandStyle.Render("SKINCARE") + "\n")
	b.WriteString(mutedStyle.Render("COLLECTION") + "\n\n")
	fmt.Fprintf(&b, "Saved routines: %d\n\n", len(a.session.Saved))
	b.WriteString(helpStyle.Render("[c] Create routine  [s] Saved routines  [q] Quit"))
	return b.String()
}

func (a *App) renderQuiz() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Skincare Consultation") + "\n\n")

	skin := "Select Skin Type"
	if a.session.SkinType.Valid() {
		skin = a.session.SkinType.Label()
	}
	b.WriteString("Skin type: " + skin + "\n")
	for i, s := range quizSkinTypes {
		mark := "( )"
		if a.session.SkinType == s {
			mark = "(•)"
		}
		b.WriteString(a.quizRow(i, mark+" "+s.Label()))
	}

	b.WriteString("\nSelect Concerns\n")
	for i, c := range quizConcerns {
		mark := "☐"
		if a.session.Concerns.Has(c) {
			mark = "☑"
		}
		b.WriteString(a.quizRow(len(quizSkinTypes)+i, mark+" "+c.Label()))
	}

	b.WriteString("\n")
	if a.session.CanGenerate() {
		b.WriteString(helpStyle.Render("[↑/↓] Move  [enter] Select  [g] Generate routine  [esc] Home"))
	} else {
		b.WriteString(helpStyle.Render("[↑/↓] Move  [enter] Select  [esc] Home") + "\n")
		b.WriteString(mutedStyle.Render(service.ErrIncompleteQuiz.Error()))
	}
	return b.String()
}

func (a *App) quizRow(i int, label string) string {
	if i == a.quizCursor {
		return cursorStyle.Render("▶ ") + selectedStyle.Render(label) + "\n"
	}
	return "  " + label + "\n"
}

func (a *App) renderResults() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your Skincare Routine") + "\n\n")
	b.WriteString(renderSteps(a.session.Current))
	b.WriteString("\n" + helpStyle.Render("[s] Save routine  [esc] Back to quiz  [q] Quit"))
	return b.String()
}

func (a *App) renderSaved() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Saved Routines") + "\n\n")
	if len(a.session.Saved) == 0 {
		b.WriteString(mutedStyle.Render("No saved routines") + "\n")
	}
	for i, r := range a.session.Saved {
		label := fmt.Sprintf("%s  %s", r.Name, mutedStyle.Render(fmt.Sprintf("(%d steps)", len(r.Products))))
		if i == a.savedCursor {
			b.WriteString(cursorStyle.Render("▶ ") + label + "\n")
			continue
		}
		b.WriteString("  " + label + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("[enter] Open  [d] Delete  [esc] Quiz  [h] Home  [q] Quit"))
	return b.String()
}

func (a *App) renderDetail() string {
	if a.detailIndex < 0 || a.detailIndex >= len(a.session.Saved) {
		return errorStyle.Render("routine not found") + "\n" + helpStyle.Render("[esc] Back")
	}
	r := a.session.Saved[a.detailIndex]
	footer := "\n" + helpStyle.Render("[esc] Back to saved routines  [q] Quit")
	if a.renderer != nil {
		out, err := a.renderer.Render(service.Markdown(r))
		if err == nil {
			return out + footer
		}
		a.log.Warn("render markdown", zap.Error(err))
	}
	return titleStyle.Render(r.Name) + "\n\n" + renderSteps(r.Products) + footer
}

func (a *App) renderModal() string {
	body := titleStyle.Render("Name Your Routine") + "\n" +
		a.nameInput.View() + "\n" +
		helpStyle.Render(fmt.Sprintf("Leave empty for %q  [enter] Save  [esc] Cancel", routine.DefaultName(len(a.session.Saved))))
	return modalStyle.Render(body)
}

func renderSteps(steps []routine.ProductStep) string {
	var b strings.Builder
	for i, s := range steps {
		b.WriteString(stepStyle.Render(fmt.Sprintf("Step %d", i+1)) + renderStep(s) + "\n")
	}
	return b.String()
}

func renderStep(s routine.ProductStep) string {
	cat := s.Category()
	if cat == "" {
		return s.Product()
	}
	return categoryStyle.Render(cat+":") + " " + s.Product()
}
