package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smolder-dev/smolderctl/internal/api"
	"github.com/smolder-dev/smolderctl/internal/schema"
)

// StudioEntry is one navigable function in the deployment studio.
type StudioEntry struct {
	Fn      api.FunctionSchema
	IsWrite bool
}

// StudioModel is the Bubble Tea model for the interactive function
// navigator. It shows a deployment's read and write functions in labelled
// sections, lets the user navigate with ↑↓ / j k, and exits with the
// selected entry when Enter is pressed.
type StudioModel struct {
	Deployment api.Deployment
	Entries    []StudioEntry

	cursor int

	// output
	Selected *StudioEntry
	Quitting bool
}

// NewStudioModel builds the navigator from the server's function list,
// reads first.
func NewStudioModel(dep api.Deployment, funcs *api.FunctionList) StudioModel {
	m := StudioModel{Deployment: dep}
	for _, f := range funcs.Read {
		m.Entries = append(m.Entries, StudioEntry{Fn: f})
	}
	for _, f := range funcs.Write {
		m.Entries = append(m.Entries, StudioEntry{Fn: f, IsWrite: true})
	}
	return m
}

func (m StudioModel) Init() tea.Cmd { return nil }

func (m StudioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.Entries)-1 {
				m.cursor++
			}
		case "enter", " ":
			if len(m.Entries) > 0 {
				e := m.Entries[m.cursor]
				m.Selected = &e
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m StudioModel) View() string {
	if m.Quitting {
		return ""
	}

	var sb strings.Builder

	const sepWidth = 72

	title := fmt.Sprintf("  Deployment Studio  ·  %s  ·  %s",
		m.Deployment.ContractName, m.Deployment.NetworkName)
	sb.WriteString(StyleTitle.Render(title) + "\n\n")

	sb.WriteString(fmt.Sprintf("  %-10s %s\n",
		StyleMeta.Render("Address"),
		StyleAddress.Render(m.Deployment.Address)))
	sb.WriteString(fmt.Sprintf("  %-10s %s\n",
		StyleMeta.Render("Deployed"),
		StyleMeta.Render(m.Deployment.DeployedAt)))
	sb.WriteString("\n")

	renderSection := func(header string, write bool) {
		var idxs []int
		for i, e := range m.Entries {
			if e.IsWrite == write {
				idxs = append(idxs, i)
			}
		}
		if len(idxs) == 0 {
			return
		}
		hdr := fmt.Sprintf("  ── %s (%d) ", header, len(idxs))
		fill := max(sepWidth-len(hdr)-2, 0)
		sb.WriteString(StyleHeader.Render(hdr) + StyleMeta.Render(strings.Repeat("─", fill)) + "\n")

		for _, idx := range idxs {
			e := m.Entries[idx]
			nameStyle := StyleValue
			if write {
				nameStyle = StyleWarning
			}
			outStr := ""
			if !write && len(e.Fn.Outputs) > 0 {
				outStr = StyleMeta.Render("  →  " + outputSig(e.Fn.Outputs))
			}
			prefix := "    "
			if idx == m.cursor {
				prefix = "  ▸ "
			}
			line := fmt.Sprintf("%s%s  %s(%s)%s",
				prefix,
				StyleMeta.Render(Selector(e.Fn.Signature)),
				nameStyle.Render(e.Fn.Name),
				StyleMeta.Render(ParamSig(e.Fn.Inputs)),
				outStr,
			)
			if idx == m.cursor {
				sb.WriteString(StyleSelected.Render(line) + "\n")
			} else {
				sb.WriteString(line + "\n")
			}
		}
		sb.WriteString("\n")
	}

	renderSection("Read", false)
	renderSection("Write", true)

	ruler := StyleMeta.Render(strings.Repeat("─", sepWidth))
	sb.WriteString(ruler + "\n")
	if len(m.Entries) > 0 {
		cur := m.Entries[m.cursor]
		sb.WriteString(StyleMeta.Render("  "+cur.Fn.Signature) + "\n")
	}
	sb.WriteString(ruler + "\n\n")

	sb.WriteString(
		StyleMeta.Render("  [ ↑↓ / jk ]") + " navigate   " +
			StyleInfo.Render("[ Enter ]") + " open form   " +
			StyleMeta.Render("[ q ]") + " quit\n")

	return sb.String()
}

// RunStudio launches the function navigator with altscreen and returns the
// selected entry, or nil if the user quit.
func RunStudio(m StudioModel) (*StudioEntry, error) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("studio: %w", err)
	}
	fm := final.(StudioModel)
	if fm.Quitting || fm.Selected == nil {
		return nil, nil
	}
	return fm.Selected, nil
}

// ParamSig formats params as "type name, type name".
func ParamSig(params []schema.ParamSchema) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if p.Name != "" {
			parts[i] = p.TypeTag + " " + p.Name
		} else {
			parts[i] = p.TypeTag
		}
	}
	return strings.Join(parts, ", ")
}

func outputSig(params []schema.ParamSchema) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.TypeTag
	}
	return strings.Join(parts, ", ")
}
