package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/legalfees/tariffengine/internal/domain"
	"github.com/legalfees/tariffengine/internal/output"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scene {
		case scenePicker:
			return m.updatePicker(msg)
		case sceneMediation:
			return m.updateMediation(msg)
		case sceneSMM:
			return m.updateSMM(msg)
		case sceneResult:
			m.scene = scenePicker
			m.result = ""
			m.err = nil
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(pickerItems)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor == 0 {
			m.scene = sceneMediation
		} else {
			m.scene = sceneSMM
		}
	}
	return m, nil
}

func (m Model) updateMediation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.scene = scenePicker
		return m, nil
	case "tab", "shift+tab":
		if msg.String() == "tab" {
			m.focus = (m.focus + 1) % len(m.mediationInputs)
		} else {
			m.focus = (m.focus + len(m.mediationInputs) - 1) % len(m.mediationInputs)
		}
		for i := range m.mediationInputs {
			if i == m.focus {
				m.mediationInputs[i].Focus()
			} else {
				m.mediationInputs[i].Blur()
			}
		}
		return m, nil
	case "left":
		m.categoryIdx = (m.categoryIdx + len(domain.AllCategories) - 1) % len(domain.AllCategories)
		return m, nil
	case "right":
		m.categoryIdx = (m.categoryIdx + 1) % len(domain.AllCategories)
		return m, nil
	case "ctrl+o":
		m.monetary = !m.monetary
		return m, nil
	case "ctrl+a":
		m.agreement = !m.agreement
		return m, nil
	case "enter":
		return m.runMediation()
	}
	var cmd tea.Cmd
	m.mediationInputs[m.focus], cmd = m.mediationInputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) runMediation() (tea.Model, tea.Cmd) {
	amount := decimal.Zero
	if v := m.mediationInputs[0].Value(); v != "" {
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			m.err = err
			return m, nil
		}
		amount = parsed
	}
	parties := atoiDefault(m.mediationInputs[1].Value(), 2)
	year := atoiDefault(m.mediationInputs[2].Value(), 2025)

	in := domain.MediationInput{
		Category:      m.category(),
		Monetary:      m.monetary,
		Agreement:     m.agreement,
		DisputeAmount: amount,
		PartyCount:    parties,
		Year:          year,
	}
	if err := in.Validate(m.registry); err != nil {
		m.err = err
		return m, nil
	}
	r, err := m.mediation.Calculate(in)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.result = output.NewConsoleFormatter().FormatMediation(r)
	m.scene = sceneResult
	return m, nil
}

func (m Model) updateSMM(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.scene = scenePicker
		return m, nil
	case "ctrl+v":
		m.vatIncluded = !m.vatIncluded
		return m, nil
	case "ctrl+w":
		m.whIncluded = !m.whIncluded
		return m, nil
	case "enter":
		return m.runSMM()
	}
	var cmd tea.Cmd
	m.smmAmount, cmd = m.smmAmount.Update(msg)
	return m, cmd
}

func (m Model) runSMM() (tea.Model, tea.Cmd) {
	amount, err := decimal.NewFromString(m.smmAmount.Value())
	if err != nil {
		m.err = err
		return m, nil
	}
	r, err := m.smm.Solve(domain.SMMInput{
		Amount:              amount,
		VATIncluded:         m.vatIncluded,
		WithholdingIncluded: m.whIncluded,
	})
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.result = output.NewConsoleFormatter().FormatSMM(r)
	m.scene = sceneResult
	return m, nil
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
