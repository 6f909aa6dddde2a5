package main

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Muthuselvi-09/calc"
)

// displayGlyphs replaces the operators a user types with the glyphs the
// display shows. calc.Evaluate undoes this mapping before tokenizing.
var displayGlyphs = strings.NewReplacer("*", "×", "/", "÷")

// model is the interactive calculator. Digits and operators edit the
// buffer, backspace deletes, esc clears, s toggles the sign of the
// trailing number, and enter evaluates.
type model struct {
	editor  Editor
	theme   Theme
	result  string
	errored bool
	done    bool
}

func newModel(theme Theme) model {
	return model{theme: theme}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC:
		m.done = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.editor.Clear()
		m.result = ""
		m.errored = false
		return m, nil
	case tea.KeyBackspace:
		m.editor.DeleteLast()
		m.result = ""
		m.errored = false
		return m, nil
	case tea.KeyEnter:
		r, err := calc.Evaluate(m.editor.EvalExpr())
		if err != nil {
			// The display shows one generic indicator for every failure.
			m.result = ""
			m.errored = true
			return m, nil
		}
		m.result = strconv.FormatFloat(r, 'g', -1, 64)
		m.errored = false
		m.seed(r)
		return m, nil
	}
	if key.Type != tea.KeyRunes {
		return m, nil
	}
	for _, r := range key.Runes {
		switch r {
		case 'q':
			m.done = true
			return m, tea.Quit
		case 's':
			m.editor.ToggleSign()
		default:
			m.editor.Append(r)
		}
	}
	m.result = ""
	m.errored = false
	return m, nil
}

// seed restarts the expression from a result so the user can keep
// calculating with it. The fixed-point form is used because the display
// form may carry an exponent, whose e the tokenizer would drop, turning
// the reused result into a different number. Values with no keypad form
// at all (infinities, NaN) clear the buffer instead.
func (m *model) seed(r float64) {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	for _, c := range s {
		if !strings.ContainsRune(editRunes, c) {
			m.editor.Clear()
			return
		}
	}
	m.editor.Set(s)
}

func (m model) View() string {
	if m.done {
		return ""
	}
	t := m.theme
	expr := displayGlyphs.Replace(m.editor.Expr())
	if expr == "" {
		expr = "0"
	}
	var out string
	switch {
	case m.errored:
		out = t.Error.Render("Error")
	case m.result != "":
		out = t.Result.Render("= " + m.result)
	}
	body := t.Title.Render("calc") + "\n\n" +
		t.Expression.Render(expr) + "\n" +
		out + "\n\n" +
		t.Help.Render("enter = • backspace del • esc clear\ns sign • q quit")
	return t.Frame.Render(body) + "\n"
}
