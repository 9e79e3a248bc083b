package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	switch m.scene {
	case scenePicker:
		b.WriteString(titleStyle.Render("Tariff Fee Calculator"))
		b.WriteString("\n")
		for i, item := range pickerItems {
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> " + item))
			} else {
				b.WriteString("  " + item)
			}
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("up/down: select  enter: open  q: quit"))
	case sceneMediation:
		b.WriteString(titleStyle.Render("Mediation Fee"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("category:"), selectedStyle.Render(string(m.category())))
		fmt.Fprintf(&b, "%s %t   %s %t\n",
			labelStyle.Render("monetary:"), m.monetary,
			labelStyle.Render("agreement:"), m.agreement)
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("amount:  "), m.mediationInputs[0].View())
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("parties: "), m.mediationInputs[1].View())
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("year:    "), m.mediationInputs[2].View())
		if m.err != nil {
			b.WriteString(errorStyle.Render(m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("tab: next field  left/right: category  ctrl+o: monetary  ctrl+a: agreement  enter: calculate  esc: back"))
	case sceneSMM:
		b.WriteString(titleStyle.Render("SMM Gross-Up"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("amount:"), m.smmAmount.View())
		fmt.Fprintf(&b, "%s %t   %s %t\n",
			labelStyle.Render("VAT included:"), m.vatIncluded,
			labelStyle.Render("withholding included:"), m.whIncluded)
		if m.err != nil {
			b.WriteString(errorStyle.Render(m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("ctrl+v: toggle VAT  ctrl+w: toggle withholding  enter: calculate  esc: back"))
	case sceneResult:
		b.WriteString(resultStyle.Render(m.result))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("any key: back"))
	}
	return b.String()
}
