// Package tui is the terminal front end for the entry form.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/mmynk/finform/internal/form"
	"github.com/mmynk/finform/internal/ledger"
	"github.com/mmynk/finform/internal/service"
)

// step one fields
const (
	typeField uint = iota
	amountField
)

type focusKind uint

// step two focus targets
const (
	focusCategory focusKind = iota
	focusTotal
	focusParticipant
	focusNewName
)

type focus struct {
	kind focusKind
	side ledger.Side
	id   string // participant id for focusParticipant
}

// Model is the bubbletea model for one entry session.
type Model struct {
	ctx      context.Context
	form     *form.Form
	service  *service.EntryService
	currency string

	width  int
	height int

	infoField  uint
	focusIndex int

	// amount editing on step two
	isEditingAmount  bool
	editingAmountStr string

	// category dropdown
	isSelectingCategory bool
	categorySelectIndex int

	// pending names, indexed by ledger.Side
	newName [2]string

	message string
	isError bool
}

// NewModel returns a model driving f. Saves go through svc.
func NewModel(ctx context.Context, f *form.Form, svc *service.EntryService, currency string) Model {
	return Model{
		ctx:       ctx,
		form:      f,
		service:   svc,
		currency:  currency,
		infoField: amountField,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.form.Step() {
		case form.StepInfo:
			return m.handleInfoView(key)
		case form.StepDetails:
			return m.handleDetailsView(key)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// Step one --------------------

func (m Model) handleInfoView(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		return m, tea.Quit
	case "tab", "down", "shift+tab", "up":
		if m.infoField == typeField {
			m.infoField = amountField
		} else {
			m.infoField = typeField
		}
	case "left":
		if m.infoField == typeField {
			m.form.CycleType(-1)
		}
	case "right", " ":
		if m.infoField == typeField {
			m.form.CycleType(1)
		}
	case "backspace":
		if m.infoField == amountField {
			m.form.SetAmountInput(trimLast(m.form.AmountInput()))
		}
	case "enter":
		return m.handleNext()
	default:
		if m.infoField == amountField && len(key) == 1 {
			if s, ok := appendAmountChar(m.form.AmountInput(), key); ok {
				m.form.SetAmountInput(s)
			}
		}
	}
	return m, nil
}

func (m Model) handleNext() (tea.Model, tea.Cmd) {
	if err := m.form.Next(); err != nil {
		m.setError(err)
		return m, nil
	}
	m.clearMessage()
	m.focusIndex = 0
	return m, nil
}

// Step two --------------------

func (m Model) handleDetailsView(key string) (tea.Model, tea.Cmd) {
	if m.isSelectingCategory {
		return m.handleCategorySelection(key)
	}
	if m.isEditingAmount {
		return m.handleAmountEditing(key)
	}

	cur := m.currentFocus()
	switch key {
	case "esc":
		m.form.Back()
		m.infoField = amountField
		m.clearMessage()
		return m, nil
	case "tab", "down":
		return m.moveFocus(1), nil
	case "shift+tab", "up":
		return m.moveFocus(-1), nil
	case "ctrl+s":
		return m.handleSave()
	case "ctrl+e":
		if cur.kind != focusCategory {
			mode := m.form.Split().Ledger(cur.side).ToggleEqual()
			slog.Debug("Split mode toggled", "ledger", cur.side, "mode", mode)
		}
		return m, nil
	case "ctrl+d":
		if cur.kind == focusParticipant {
			m.form.Split().Ledger(cur.side).Remove(cur.id)
			m.clampFocus()
		}
		return m, nil
	}

	switch cur.kind {
	case focusCategory:
		if key == "enter" {
			return m.enterCategorySelection()
		}
	case focusTotal, focusParticipant:
		return m.handleAmountActivation(key, cur)
	case focusNewName:
		return m.handleNameInput(key, cur.side)
	}
	return m, nil
}

func (m Model) handleSave() (tea.Model, tea.Cmd) {
	tx, err := m.service.Save(m.ctx, m.form)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.form.Reset()
	m.resetInputs()
	m.message = fmt.Sprintf("Transaction saved: %s %s", tx.Type, m.formatAmount(tx.Amount))
	m.isError = false
	return m, nil
}

// focusTargets lists the focusable rows of step two in display order.
func (m Model) focusTargets() []focus {
	targets := []focus{{kind: focusCategory}}
	split := m.form.Split()
	if split == nil {
		return targets
	}
	for _, side := range []ledger.Side{ledger.YouOwe, ledger.OwedToYou} {
		targets = append(targets, focus{kind: focusTotal, side: side})
		for _, p := range split.Ledger(side).Participants() {
			targets = append(targets, focus{kind: focusParticipant, side: side, id: p.ID})
		}
		targets = append(targets, focus{kind: focusNewName, side: side})
	}
	return targets
}

func (m Model) currentFocus() focus {
	targets := m.focusTargets()
	if m.focusIndex < 0 || m.focusIndex >= len(targets) {
		return targets[0]
	}
	return targets[m.focusIndex]
}

func (m Model) moveFocus(direction int) Model {
	n := len(m.focusTargets())
	m.focusIndex = ((m.focusIndex+direction)%n + n) % n
	return m
}

func (m *Model) clampFocus() {
	if n := len(m.focusTargets()); m.focusIndex >= n {
		m.focusIndex = n - 1
	}
}

// Category selection --------------------

func (m Model) enterCategorySelection() (tea.Model, tea.Cmd) {
	m.isSelectingCategory = true
	m.categorySelectIndex = 0

	for i, cat := range m.form.Categories() {
		if cat == m.form.Category() {
			m.categorySelectIndex = i
			break
		}
	}
	return m, nil
}

func (m Model) handleCategorySelection(key string) (tea.Model, tea.Cmd) {
	categories := m.form.Categories()

	switch key {
	case "up":
		if m.categorySelectIndex > 0 {
			m.categorySelectIndex--
		}
	case "down":
		if m.categorySelectIndex < len(categories)-1 {
			m.categorySelectIndex++
		}
	case "enter":
		if len(categories) > 0 {
			if err := m.form.SetCategory(categories[m.categorySelectIndex]); err != nil {
				m.setError(err)
			}
		}
		m.isSelectingCategory = false
	case "backspace", "delete":
		_ = m.form.SetCategory("")
		m.isSelectingCategory = false
	case "esc":
		m.isSelectingCategory = false
	}
	return m, nil
}

// Amount editing --------------------

func (m Model) handleAmountActivation(key string, cur focus) (tea.Model, tea.Cmd) {
	switch {
	case key == "enter":
		m.isEditingAmount = true
		m.editingAmountStr = m.focusedAmount(cur).StringFixed(2)
	case key == "backspace":
		m.isEditingAmount = true
		m.editingAmountStr = trimLast(m.focusedAmount(cur).StringFixed(2))
	case len(key) == 1:
		if s, ok := appendAmountChar("", key); ok {
			m.isEditingAmount = true
			m.editingAmountStr = s
		}
	}
	return m, nil
}

func (m Model) handleAmountEditing(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter", "tab":
		m.commitAmount()
		if key == "tab" {
			return m.moveFocus(1), nil
		}
	case "esc":
		m.isEditingAmount = false
		m.editingAmountStr = ""
	case "backspace":
		m.editingAmountStr = trimLast(m.editingAmountStr)
	default:
		if len(key) == 1 {
			if s, ok := appendAmountChar(m.editingAmountStr, key); ok {
				m.editingAmountStr = s
			}
		}
	}
	return m, nil
}

// commitAmount applies the edit buffer to the focused total or participant.
func (m *Model) commitAmount() {
	cur := m.currentFocus()
	l := m.form.Split().Ledger(cur.side)
	switch cur.kind {
	case focusTotal:
		l.SetTotalAmountInput(m.editingAmountStr)
	case focusParticipant:
		l.SetAmountInput(cur.id, m.editingAmountStr)
	}
	m.isEditingAmount = false
	m.editingAmountStr = ""
}

func (m Model) focusedAmount(cur focus) decimal.Decimal {
	l := m.form.Split().Ledger(cur.side)
	if cur.kind == focusTotal {
		return l.TotalAmount()
	}
	p, _ := l.Get(cur.id)
	return p.Amount
}

// Name input --------------------

func (m Model) handleNameInput(key string, side ledger.Side) (tea.Model, tea.Cmd) {
	switch key {
	case "enter":
		p, ok := m.form.Split().Ledger(side).Add(m.newName[side])
		if !ok {
			return m, nil
		}
		m.newName[side] = ""
		m.clearMessage()
		// keep focus on the name input, which moved down one row
		m.focusIndex++
		slog.Debug("Participant added", "ledger", side, "participant_id", p.ID)
	case "backspace":
		m.newName[side] = trimLast(m.newName[side])
	default:
		if len([]rune(key)) == 1 {
			m.newName[side] += key
		}
	}
	return m, nil
}

// Helpers --------------------

func (m *Model) setError(err error) {
	m.message = "Error: " + err.Error()
	m.isError = true
}

func (m *Model) clearMessage() {
	m.message = ""
	m.isError = false
}

func (m *Model) resetInputs() {
	m.infoField = amountField
	m.focusIndex = 0
	m.isEditingAmount = false
	m.editingAmountStr = ""
	m.isSelectingCategory = false
	m.newName = [2]string{}
}

// appendAmountChar adds one typed character to an amount string. Only digits
// and a single decimal point are allowed, with at most two decimal places.
func appendAmountChar(s, key string) (string, bool) {
	if !(key >= "0" && key <= "9") && key != "." {
		return s, false
	}
	if key == "." && strings.Contains(s, ".") {
		return s, false
	}
	newStr := s + key
	if dot := strings.LastIndex(newStr, "."); dot != -1 && len(newStr)-dot-1 > 2 {
		return s, false
	}
	return newStr, true
}

func trimLast(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
