// seehuhn.de/go/sigpad - signature capture and input validation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package form implements a terminal form whose text fields show, below
// each input, a bar which turns green or red depending on whether the
// input passes the field's validation rule.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"seehuhn.de/go/sigpad/validate"
)

// Field describes one input of the form.
type Field struct {
	Key    string
	Label  string
	Rule   validate.Rule
	Secret bool // hide the input, for passwords
}

// Status is the validation state of a field.
type Status int

// These are the possible field states.  Empty fields show no bar.
const (
	Empty Status = iota
	Valid
	Invalid
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Width(12)
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle    = lipgloss.NewStyle().Faint(true)
)

// barWidth is the length of the validation bar, in cells.
const barWidth = 32

// Model is a bubbletea model for a validated form.
type Model struct {
	title     string
	fields    []Field
	inputs    []textinput.Model
	focus     int
	submitted bool
}

// New returns a form with the given fields.  The first field has the
// keyboard focus.
func New(title string, fields []Field) *Model {
	inputs := make([]textinput.Model, 0, len(fields))
	for i, f := range fields {
		inp := textinput.New()
		inp.Prompt = ""
		inp.Placeholder = f.Rule.String()
		inp.CharLimit = 128
		inp.Width = barWidth
		if f.Secret {
			inp.EchoMode = textinput.EchoPassword
			inp.EchoCharacter = '•'
		}
		if i == 0 {
			inp.Focus()
		}
		inputs = append(inputs, inp)
	}
	return &Model{title: title, fields: fields, inputs: inputs}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, tea.Quit
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.move(1)
			return m, nil
		case "shift+tab", "up":
			m.move(-1)
			return m, nil
		case "enter":
			if m.Valid() {
				m.submitted = true
				return m, tea.Quit
			}
			m.move(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) move(dir int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + dir + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// Status returns the validation state of field i.
func (m *Model) Status(i int) Status {
	v := m.inputs[i].Value()
	switch {
	case v == "":
		return Empty
	case validate.Validate(m.fields[i].Rule, v):
		return Valid
	default:
		return Invalid
	}
}

// Valid reports whether all fields pass their rules.
func (m *Model) Valid() bool {
	for i := range m.fields {
		if !validate.Validate(m.fields[i].Rule, m.inputs[i].Value()) {
			return false
		}
	}
	return true
}

// Submitted reports whether the form was completed with enter.
func (m *Model) Submitted() bool {
	return m.submitted
}

// Focus returns the index of the focused field.
func (m *Model) Focus() int {
	return m.focus
}

// SetValue replaces the text of field i.
func (m *Model) SetValue(i int, s string) {
	m.inputs[i].SetValue(s)
}

// Values returns the field contents by key.
func (m *Model) Values() map[string]string {
	res := make(map[string]string, len(m.fields))
	for i, f := range m.fields {
		res[f.Key] = m.inputs[i].Value()
	}
	return res
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, f := range m.fields {
		b.WriteString(labelStyle.Render(f.Label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(""))
		b.WriteString(m.bar(i))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("tab: next field  enter: submit  esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) bar(i int) string {
	switch m.Status(i) {
	case Valid:
		return validStyle.Render(strings.Repeat("▁", barWidth))
	case Invalid:
		return invalidStyle.Render(strings.Repeat("▁", barWidth))
	default:
		return ""
	}
}
