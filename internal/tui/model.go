package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/legalfees/tariffengine/internal/calculation"
	"github.com/legalfees/tariffengine/internal/domain"
	"github.com/legalfees/tariffengine/internal/tariff"
)

type scene int

const (
	scenePicker scene = iota
	sceneMediation
	sceneSMM
	sceneResult
)

var pickerItems = []string{
	"Mediation fee",
	"SMM gross-up",
}

// Model is the interactive calculator's application state. It drives the
// same engine the CLI uses; the TUI is purely a presentation surface.
type Model struct {
	scene  scene
	cursor int

	// Mediation form state
	mediationInputs []textinput.Model // amount, parties, year
	focus           int
	categoryIdx     int
	monetary        bool
	agreement       bool

	// SMM form state
	smmAmount   textinput.Model
	vatIncluded bool
	whIncluded  bool

	registry  *tariff.Registry
	mediation *calculation.MediationFeeCalculator
	smm       *calculation.SMMGrossUpSolver

	result string
	err    error

	width  int
	height int
}

// NewModel creates the application model with its tables built once.
func NewModel() Model {
	reg := tariff.NewRegistry()

	amount := textinput.New()
	amount.Placeholder = "dispute amount"
	amount.CharLimit = 16
	amount.Focus()

	parties := textinput.New()
	parties.Placeholder = "2"
	parties.CharLimit = 4

	year := textinput.New()
	year.Placeholder = "2025"
	year.CharLimit = 4

	smmAmount := textinput.New()
	smmAmount.Placeholder = "amount"
	smmAmount.CharLimit = 16
	smmAmount.Focus()

	return Model{
		scene:           scenePicker,
		mediationInputs: []textinput.Model{amount, parties, year},
		smmAmount:       smmAmount,
		registry:        reg,
		mediation:       calculation.NewMediationFeeCalculator(reg),
		smm:             calculation.NewSMMGrossUpSolver(),
		width:           80,
		height:          24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) category() domain.DisputeCategory {
	return domain.AllCategories[m.categoryIdx]
}
