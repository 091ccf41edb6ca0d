package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/mmynk/finform/internal/form"
	"github.com/mmynk/finform/internal/ledger"
)

var (
	appNameStyle = lipgloss.NewStyle().Background(lipgloss.Color("99")).Padding(0, 1)

	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Faint(true)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))

	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))

	formLabelStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Width(15)
	formFieldStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(30)
	activeFieldStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("99")).Padding(0, 1).Width(30)
	selectingFieldStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208")).Padding(0, 1).Width(30)

	activeStepStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	inactiveStepStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	equalOnStyle  = lipgloss.NewStyle().Background(lipgloss.Color("99")).Padding(0, 1)
	equalOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
)

// avatarColors is indexed by the rune count of a participant's name.
var avatarColors = []lipgloss.Color{
	lipgloss.Color("33"),  // blue
	lipgloss.Color("34"),  // green
	lipgloss.Color("99"),  // purple
	lipgloss.Color("208"), // orange
	lipgloss.Color("205"), // pink
}

func (m Model) View() string {
	s := appNameStyle.Render("Add Transaction") + "\n\n"
	s += m.renderStepIndicator() + "\n\n"

	switch m.form.Step() {
	case form.StepInfo:
		s += m.renderInfoView()
	case form.StepDetails:
		s += m.renderDetailsView()
	}

	if m.message != "" {
		if m.isError {
			s += "\n" + errorStyle.Render(m.message) + "\n"
		} else {
			s += "\n" + successStyle.Render(m.message) + "\n"
		}
	}
	return s
}

func (m Model) renderStepIndicator() string {
	step := m.form.Step()
	dots := ""
	for _, st := range []form.Step{form.StepInfo, form.StepDetails} {
		if st <= step {
			dots += activeStepStyle.Render("●")
		} else {
			dots += inactiveStepStyle.Render("○")
		}
	}
	return headerStyle.Render(fmt.Sprintf("Step %d: %s", int(step), step)) + "  " + dots
}

func (m Model) renderInfoView() string {
	var s string

	typeStyle := formFieldStyle
	if m.infoField == typeField {
		typeStyle = activeFieldStyle
	}
	typeText := string(m.form.Type())
	if m.infoField == typeField {
		typeText = "< " + typeText + " >"
	}
	s += formLabelStyle.Render("Type:") + typeStyle.Render(typeText) + "\n"

	amountStyle := formFieldStyle
	if m.infoField == amountField {
		amountStyle = activeFieldStyle
	}
	amountText := m.currency + m.form.AmountInput()
	if m.infoField == amountField {
		amountText += "_"
	}
	s += formLabelStyle.Render("Amount:") + amountStyle.Render(amountText) + "\n\n"

	s += faintStyle.Render("Tab: Switch Field | Left/Right: Change Type | Enter: Next | Esc: Quit")
	return s
}

func (m Model) renderDetailsView() string {
	targets := m.focusTargets()
	cur := m.currentFocus()
	var s string

	s += faintStyle.Render(fmt.Sprintf("%s · %s", m.form.Type(), m.formatAmount(m.form.Amount()))) + "\n\n"

	// Category
	catStyle := formFieldStyle
	if cur.kind == focusCategory {
		catStyle = activeFieldStyle
		if m.isSelectingCategory {
			catStyle = selectingFieldStyle
		}
	}
	catText := m.form.Category()
	if catText == "" {
		catText = faintStyle.Render("Select category")
	}
	s += formLabelStyle.Render("Category:") + catStyle.Render(catText) + "\n"

	if m.isSelectingCategory {
		for i, c := range m.form.Categories() {
			prefix := "  "
			if i == m.categorySelectIndex {
				prefix = "> "
			}
			s += strings.Repeat(" ", 15) + prefix + c + "\n"
		}
	}

	if m.form.Split() != nil {
		s += "\n" + headerStyle.Render("Split Amount (optional)") + "\n"
		for _, side := range []ledger.Side{ledger.YouOwe, ledger.OwedToYou} {
			s += "\n" + m.renderLedger(side, cur)
		}
	}

	s += "\n" + formLabelStyle.Render("Personal:") + m.formatAmount(m.form.PersonalAmount()) + "\n"
	s += faintStyle.Render(fmt.Sprintf("(%d/%d)", m.focusIndex+1, len(targets))) + "\n\n"

	s += faintStyle.Render("Tab: Next Field | Enter: Edit/Add | Ctrl+E: Equal Split | Ctrl+D: Remove | Ctrl+S: Save | Esc: Back")
	return s
}

func (m Model) renderLedger(side ledger.Side, cur focus) string {
	l := m.form.Split().Ledger(side)
	var s string

	toggle := equalOffStyle.Render("Equally")
	if l.Mode() == ledger.ModeEqual {
		toggle = equalOnStyle.Render("Equally")
	}
	s += headerStyle.Render(side.Label()) + "  " + toggle + "\n"

	totalFocused := cur.kind == focusTotal && cur.side == side
	s += formLabelStyle.Render("  Split total:") + m.renderAmountField(l.TotalAmount(), totalFocused) + "\n"

	for _, p := range l.Participants() {
		focused := cur.kind == focusParticipant && cur.side == side && cur.id == p.ID
		avatar := lipgloss.NewStyle().
			Background(avatarColor(p.Name)).
			Padding(0, 1).
			Render(initials(p.Name))
		prefix := "  "
		if focused {
			prefix = "> "
		}
		name := lipgloss.NewStyle().Width(15).Render(p.Name)
		s += prefix + avatar + " " + name + m.renderAmountField(p.Amount, focused) + "\n"
	}

	nameFocused := cur.kind == focusNewName && cur.side == side
	nameStyle := formFieldStyle
	nameText := m.newName[side]
	if nameFocused {
		nameStyle = activeFieldStyle
		nameText += "_"
	}
	if nameText == "" {
		nameText = faintStyle.Render(addPlaceholder(side))
	}
	s += formLabelStyle.Render("  Add:") + nameStyle.Render(nameText) + "\n"

	if l.Len() > 0 {
		s += faintStyle.Render("  Total distributed: "+m.formatAmount(l.Sum())) + "\n"
	}
	return s
}

func (m Model) renderAmountField(amount decimal.Decimal, focused bool) string {
	if focused && m.isEditingAmount {
		return selectingFieldStyle.Render(m.currency + m.editingAmountStr + "_")
	}
	style := formFieldStyle
	if focused {
		style = activeFieldStyle
	}
	return style.Render(m.formatAmount(amount))
}

// formatAmount renders a with the currency symbol, thousands separators and
// two decimal places.
func (m Model) formatAmount(a decimal.Decimal) string {
	return formatAmount(m.currency, a)
}

func formatAmount(currency string, a decimal.Decimal) string {
	return currency + humanize.FormatFloat("#,###.##", a.Round(2).InexactFloat64())
}

func addPlaceholder(side ledger.Side) string {
	if side == ledger.YouOwe {
		return "Add person you owe..."
	}
	return "Add person who owes you..."
}

// initials is the upper-cased first letter of each word of name.
func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

func avatarColor(name string) lipgloss.Color {
	return avatarColors[utf8.RuneCountInString(name)%len(avatarColors)]
}
