package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smolder-dev/smolderctl/internal/api"
	"github.com/smolder-dev/smolderctl/internal/invoke"
	"github.com/smolder-dev/smolderctl/internal/schema"
)

// FormModel is the parameter form for one function: a text field per
// top-level parameter (nested values are typed as one JSON literal at the
// parent, mirroring how the schema nests), a wallet picker and optional
// value field for writes, and an outcome pane. While a submission is in
// flight the form refuses resubmission; the dispatcher itself does not
// queue.
type FormModel struct {
	Deployment api.Deployment
	Fn         api.FunctionSchema
	IsWrite    bool
	Wallets    []api.Wallet

	Dispatcher *invoke.Dispatcher
	Reconciler *invoke.Reconciler
	Ctx        context.Context

	inputs     []string
	valueInput string
	walletIdx  int // index into Wallets; -1 = none selected

	focus      int // 0..len(inputs)-1 params, then value, wallet, submit
	submitting bool
	outcome    *invoke.Outcome
	hints      []schema.Hint
	history    []api.HistoryEntry

	histCh chan []api.HistoryEntry

	Quitting bool
}

type outcomeMsg struct{ out invoke.Outcome }

type historyMsg struct{ entries []api.HistoryEntry }

// NewFormModel builds a form for the given function.
func NewFormModel(dep api.Deployment, entry StudioEntry, wallets []api.Wallet, defaultWallet string,
	d *invoke.Dispatcher, r *invoke.Reconciler, ctx context.Context) FormModel {

	m := FormModel{
		Deployment: dep,
		Fn:         entry.Fn,
		IsWrite:    entry.IsWrite,
		Wallets:    wallets,
		Dispatcher: d,
		Reconciler: r,
		Ctx:        ctx,
		inputs:     make([]string, len(entry.Fn.Inputs)),
		walletIdx:  -1,
		histCh:     make(chan []api.HistoryEntry, 1),
	}
	for i, w := range wallets {
		if w.Name == defaultWallet {
			m.walletIdx = i
			break
		}
	}
	return m
}

// field positions after the parameter inputs
func (m FormModel) valuePos() int  { return len(m.inputs) }
func (m FormModel) walletPos() int { return len(m.inputs) + 1 }
func (m FormModel) submitPos() int { return len(m.inputs) + 2 }

func (m FormModel) fieldCount() int { return len(m.inputs) + 3 }

func (m FormModel) fieldActive(pos int) bool {
	switch pos {
	case m.valuePos():
		return m.IsWrite && m.Fn.IsPayable()
	case m.walletPos():
		return m.IsWrite
	default:
		return true
	}
}

func (m FormModel) Init() tea.Cmd { return nil }

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeMsg:
		m.submitting = false
		out := msg.out
		m.outcome = &out
		if out.OK && m.IsWrite {
			// One scheduled refresh per successful write; overlapping
			// writes overlap here too.
			m.Reconciler.ScheduleRefresh(m.Ctx, m.Deployment.ID, m.pushHistory)
			return m, m.awaitHistory()
		}
		return m, nil

	case historyMsg:
		m.history = msg.entries
		return m, m.awaitHistory()

	case tea.KeyMsg:
		if m.submitting {
			if msg.String() == "ctrl+c" {
				m.Quitting = true
				return m, tea.Quit
			}
			return m, nil // everything else is ignored while in flight
		}
		switch msg.String() {
		case "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		case "esc":
			return m, tea.Quit
		case "tab", "down":
			m.focus = m.nextField(m.focus, +1)
		case "shift+tab", "up":
			m.focus = m.nextField(m.focus, -1)
		case "left", "right":
			if m.focus == m.walletPos() && len(m.Wallets) > 0 {
				step := 1
				if msg.String() == "left" {
					step = -1
				}
				m.walletIdx = (m.walletIdx + step + len(m.Wallets)) % len(m.Wallets)
			}
		case "enter":
			if m.focus == m.submitPos() {
				return m.submit()
			}
			m.focus = m.nextField(m.focus, +1)
		case "backspace":
			m.editFocused(func(s string) string {
				if len(s) > 0 {
					return s[:len(s)-1]
				}
				return s
			})
		default:
			if msg.Type == tea.KeyRunes || msg.String() == " " {
				text := string(msg.Runes)
				if msg.String() == " " {
					text = " "
				}
				m.editFocused(func(s string) string { return s + text })
			}
		}
	}
	return m, nil
}

func (m *FormModel) nextField(from, step int) int {
	pos := from
	for range m.fieldCount() {
		pos = (pos + step + m.fieldCount()) % m.fieldCount()
		if m.fieldActive(pos) {
			return pos
		}
	}
	return from
}

func (m *FormModel) editFocused(edit func(string) string) {
	switch {
	case m.focus < len(m.inputs):
		m.inputs[m.focus] = edit(m.inputs[m.focus])
	case m.focus == m.valuePos():
		m.valueInput = edit(m.valueInput)
	}
}

func (m FormModel) submit() (tea.Model, tea.Cmd) {
	inputs := m.rawInputs()
	m.hints = schema.Lint(m.Fn.Inputs, inputs)

	mode := invoke.Read
	wallet := ""
	value := ""
	if m.IsWrite {
		mode = invoke.Write
		if m.walletIdx >= 0 {
			wallet = m.Wallets[m.walletIdx].Name
		}
		if m.Fn.IsPayable() {
			v, err := schema.ParseValue(m.valueInput)
			if err != nil {
				out := invoke.Outcome{Err: err.Error()}
				m.outcome = &out
				return m, nil
			}
			value = v
		}
	}

	req := invoke.Request{
		Mode:         mode,
		DeploymentID: m.Deployment.ID,
		Function:     m.Fn,
		Inputs:       inputs,
		Wallet:       wallet,
		Value:        value,
	}

	// A fresh submission discards the previous outcome.
	m.outcome = nil
	m.submitting = true
	d := m.Dispatcher
	ctx := m.Ctx
	return m, func() tea.Msg {
		return outcomeMsg{out: d.Dispatch(ctx, req)}
	}
}

func (m FormModel) rawInputs() map[string]string {
	inputs := make(map[string]string, len(m.inputs))
	for i, p := range m.Fn.Inputs {
		inputs[p.Name] = strings.TrimSpace(m.inputs[i])
	}
	return inputs
}

// pushHistory runs on the reconciler goroutine; awaitHistory feeds the
// result back into the Bubble Tea loop.
func (m FormModel) pushHistory(entries []api.HistoryEntry) {
	select {
	case m.histCh <- entries:
	case <-m.Ctx.Done():
	}
}

func (m FormModel) awaitHistory() tea.Cmd {
	ch := m.histCh
	done := m.Ctx.Done()
	return func() tea.Msg {
		select {
		case entries := <-ch:
			return historyMsg{entries: entries}
		case <-done:
			return nil
		}
	}
}

func (m FormModel) View() string {
	if m.Quitting {
		return ""
	}

	var sb strings.Builder

	verb := "call"
	nameStyle := StyleValue
	if m.IsWrite {
		verb = "send"
		nameStyle = StyleWarning
	}
	title := fmt.Sprintf("  %s  ·  %s.%s", verb, m.Deployment.ContractName, m.Fn.Name)
	sb.WriteString(StyleTitle.Render(title) + "\n")
	sb.WriteString("  " + StyleMeta.Render(m.Fn.Signature) + "\n\n")

	// Parameter fields.
	for i, p := range m.Fn.Inputs {
		label := fmt.Sprintf("%s %s", p.TypeTag, nameStyle.Render(p.Name))
		sb.WriteString(m.renderField(i, label, m.inputs[i], placeholder(p)))
	}
	if len(m.Fn.Inputs) == 0 {
		sb.WriteString(StyleMeta.Render("  (no parameters)") + "\n")
	}

	if m.IsWrite && m.Fn.IsPayable() {
		sb.WriteString(m.renderField(m.valuePos(), "value "+StyleMeta.Render("(wei)"), m.valueInput, "0"))
	}
	if m.IsWrite {
		sb.WriteString(m.renderWalletField())
	}

	// Submit row.
	submit := "[ " + strings.ToUpper(verb) + " ]"
	if m.submitting {
		sb.WriteString("\n  " + StyleInfo.Render("⠿ submitting…") + "\n")
	} else if m.focus == m.submitPos() {
		sb.WriteString("\n  " + StyleSelected.Render(submit) + "\n")
	} else {
		sb.WriteString("\n  " + StyleMeta.Render(submit) + "\n")
	}

	// Hints from the last submission.
	for _, h := range m.hints {
		sb.WriteString("  " + Warn(h.Param+": "+h.Message) + "\n")
	}

	// Outcome pane.
	if m.outcome != nil {
		sb.WriteString("\n")
		switch {
		case !m.outcome.OK:
			sb.WriteString("  " + Err(m.outcome.Err) + "\n")
		case m.IsWrite:
			sb.WriteString("  " + Success("transaction submitted") + "\n")
			sb.WriteString("  " + StyleMeta.Render("tx hash  ") + Addr(m.outcome.TxHash) + "\n")
		default:
			sb.WriteString("  " + Success("result") + "\n")
			sb.WriteString("  " + Val(string(m.outcome.Payload)) + "\n")
		}
	}

	// Recent history, refreshed after confirmed writes.
	if len(m.history) > 0 {
		sb.WriteString("\n  " + StyleHeader.Render("Recent calls") + "\n")
		for i, h := range m.history {
			if i == 5 {
				break
			}
			sb.WriteString("  " + historyLine(h) + "\n")
		}
	}

	sb.WriteString("\n" +
		StyleMeta.Render("  [ tab ]") + " next field   " +
		StyleMeta.Render("[ ←→ ]") + " wallet   " +
		StyleInfo.Render("[ enter ]") + " submit   " +
		StyleMeta.Render("[ esc ]") + " back\n")

	return sb.String()
}

func (m FormModel) renderField(pos int, label, value, hint string) string {
	cursor := "  "
	if m.focus == pos {
		cursor = StyleSelected.Render("▸ ")
	}
	shown := value
	if shown == "" {
		shown = StyleMeta.Render(hint)
	} else {
		shown = StyleValue.Render(shown)
	}
	if m.focus == pos {
		shown += StyleInfo.Render("▏")
	}
	return fmt.Sprintf("  %s%-40s %s\n", cursor, label, shown)
}

func (m FormModel) renderWalletField() string {
	cursor := "  "
	if m.focus == m.walletPos() {
		cursor = StyleSelected.Render("▸ ")
	}
	shown := StyleMeta.Render("(none — required for writes)")
	if m.walletIdx >= 0 && m.walletIdx < len(m.Wallets) {
		w := m.Wallets[m.walletIdx]
		shown = StyleValue.Render(w.Name) + " " + StyleAddress.Render(TruncateAddr(w.Address))
	}
	return fmt.Sprintf("  %s%-40s %s\n", cursor, "wallet", shown)
}

func historyLine(h api.HistoryEntry) string {
	status := StyleMeta.Render(h.Status)
	switch h.Status {
	case "success":
		status = StyleSuccess.Render(h.Status)
	case "failed", "reverted":
		status = StyleError.Render(h.Status)
	case "pending":
		status = StyleWarning.Render(h.Status)
	}
	tx := h.TxHash
	if tx != "" {
		tx = TruncateAddr(tx)
	}
	return fmt.Sprintf("%s  %-20s %-10s %s",
		StyleMeta.Render(h.CreatedAt), StyleValue.Render(h.FunctionName), status, Addr(tx))
}

// placeholder suggests an input shape for a parameter.
func placeholder(p schema.ParamSchema) string {
	switch schema.Classify(p).Kind {
	case schema.KindBool:
		return "true | false"
	case schema.KindArray:
		return `[…, …]`
	case schema.KindStructure:
		names := make([]string, len(p.Fields))
		for i, f := range p.Fields {
			names[i] = fmt.Sprintf("%q: …", f.Name)
		}
		return "{" + strings.Join(names, ", ") + "}"
	case schema.KindBytes:
		return "0x…"
	default:
		if schema.IsNumeric(p.TypeTag) {
			return "0"
		}
		if p.TypeTag == "address" {
			return "0x… (20 bytes)"
		}
		return "text"
	}
}

// RunForm launches the parameter form and blocks until the user leaves it.
func RunForm(m FormModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("form: %w", err)
	}
	return nil
}
