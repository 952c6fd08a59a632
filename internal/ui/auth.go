package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// authForm drives the login and register screens: a small stack of text
// inputs with tab cycling. register toggles the extra name fields.
type authForm struct {
	register  bool
	firstName textinput.Model
	lastName  textinput.Model
	email     textinput.Model
	password  textinput.Model
	focus     int
}

func newAuthForm(register bool) authForm {
	first := textinput.New()
	first.Placeholder = "First name"
	first.CharLimit = 64

	last := textinput.New()
	last.Placeholder = "Last name"
	last.CharLimit = 64

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	f := authForm{register: register, firstName: first, lastName: last, email: email, password: password}
	f.inputs()[0].Focus()
	return f
}

func (f *authForm) inputs() []*textinput.Model {
	if f.register {
		return []*textinput.Model{&f.firstName, &f.lastName, &f.email, &f.password}
	}
	return []*textinput.Model{&f.email, &f.password}
}

func (f *authForm) cycle(forward bool) tea.Cmd {
	ins := f.inputs()
	if forward {
		f.focus = (f.focus + 1) % len(ins)
	} else {
		f.focus = (f.focus + len(ins) - 1) % len(ins)
	}
	var cmd tea.Cmd
	for i, in := range ins {
		if i == f.focus {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (f authForm) update(msg tea.Msg) (authForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			return f, f.cycle(true)
		case "shift+tab", "up":
			return f, f.cycle(false)
		}
	}
	ins := f.inputs()
	var cmd tea.Cmd
	*ins[f.focus], cmd = ins[f.focus].Update(msg)
	return f, cmd
}

func (f authForm) view(title, footer string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	if f.register {
		b.WriteString(f.firstName.View() + "\n")
		b.WriteString(f.lastName.View() + "\n")
	}
	b.WriteString(f.email.View() + "\n")
	b.WriteString(f.password.View() + "\n\n")
	b.WriteString(statusStyle.Render(footer))
	return b.String()
}
