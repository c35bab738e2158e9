package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/redshift-games/tyrian-world/pkg/locations"
	"github.com/redshift-games/tyrian-world/pkg/options"
	"github.com/redshift-games/tyrian-world/pkg/session"
	"github.com/redshift-games/tyrian-world/pkg/world"
)

const DefaultsEntry = "(defaults)"

var moneyPrinter = message.NewPrinter(language.English)

// TrackerUI is the BubbleTea model that runs the tracker.
// https://github.com/charmbracelet/bubbletea
type TrackerUI struct {
	config *TrackerConfig
	client *http.Client

	record *session.Record
	world  *world.World

	// held tracks how many copies of each pool item are toggled on
	held      map[string]int
	maxHeld   map[string]int
	itemNames []string
	cursor    int

	itemsViewport     viewport.Model
	locationsViewport viewport.Model

	reach     map[string]bool
	beatable  bool
	showHints bool

	ready   bool
	width   int
	height  int
	err     error
	status  string
	waiting bool

	// Preset selection state
	worldID         uuid.UUID
	showPresetModal bool
	presets         []string
	selectedPreset  int
	loadingPresets  bool
	loading         bool

	// Quit confirmation state
	showQuitModal bool
}

type presetsLoadedMsg struct {
	presets []string
	err     error
}

type recordLoadedMsg struct {
	record *session.Record
	err    error
}

type recordPollMsg struct{}

var (
	itemPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	locationPanelStyle = lipgloss.NewStyle().
				PaddingTop(2).
				PaddingBottom(0).
				PaddingLeft(0).
				PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	regionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	inLogicStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	heldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewTrackerUI(cfg *TrackerConfig, client *http.Client, worldID uuid.UUID) TrackerUI {
	itemsVp := viewport.New(40, 20)
	itemsVp.MouseWheelEnabled = true

	locationsVp := viewport.New(50, 20)
	locationsVp.MouseWheelEnabled = true

	return TrackerUI{
		config:            cfg,
		client:            client,
		worldID:           worldID,
		itemsViewport:     itemsVp,
		locationsViewport: locationsVp,
		ready:             false,
		showPresetModal:   worldID == uuid.Nil,
		loadingPresets:    worldID == uuid.Nil,
		selectedPreset:    0,
	}
}

func (m TrackerUI) Init() tea.Cmd {
	if m.showPresetModal {
		return m.loadPresets()
	}
	return m.loadRecord()
}

func (m TrackerUI) loadPresets() tea.Cmd {
	return func() tea.Msg {
		presets, err := listPresets(m.client, m.config.APIBaseURL)
		return presetsLoadedMsg{presets, err}
	}
}

func (m TrackerUI) loadRecord() tea.Cmd {
	return func() tea.Msg {
		rec, err := getRecord(m.client, m.config.APIBaseURL, m.worldID)
		return recordLoadedMsg{rec, err}
	}
}

func (m TrackerUI) createFromPreset(preset string) tea.Cmd {
	return func() tea.Msg {
		rec, err := createWorld(m.client, m.config.APIBaseURL, preset)
		return recordLoadedMsg{rec, err}
	}
}

// recordPoll re-checks a queued world after a short pause
func recordPoll() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return recordPollMsg{}
	})
}

// setupWorld rebuilds the world from the record's options and seed.
// Generation is deterministic, so the local copy matches the one the
// service produced.
func (m *TrackerUI) setupWorld() error {
	opts := m.record.Options
	if opts == nil {
		opts = &options.Raw{}
	}
	set, err := opts.Resolve()
	if err != nil {
		return fmt.Errorf("stored options no longer resolve: %w", err)
	}

	w, err := world.Generate(context.Background(), set, m.record.Seed)
	if err != nil {
		return fmt.Errorf("failed to rebuild world: %w", err)
	}
	m.world = w

	m.held = make(map[string]int)
	m.maxHeld = make(map[string]int)
	m.itemNames = nil
	for _, name := range w.Pool {
		if m.maxHeld[name] == 0 {
			m.itemNames = append(m.itemNames, name)
		}
		m.maxHeld[name]++
	}
	sort.Strings(m.itemNames)
	m.cursor = 0

	m.recompute()
	return nil
}

// recompute refreshes the reachable set for the toggled inventory
func (m *TrackerUI) recompute() {
	inv := world.NewInventory(m.world.Precollected...)
	for name, count := range m.held {
		for i := 0; i < count; i++ {
			inv.Add(name)
		}
	}
	m.reach = m.world.Reachable(inv)
	m.beatable = m.world.Beatable(inv)
}

// applyRecord installs a fetched record, polling again while the
// worker is still generating it.
func (m *TrackerUI) applyRecord(rec *session.Record) tea.Cmd {
	m.record = rec
	m.worldID = rec.ID
	m.showPresetModal = false
	m.loading = false

	switch rec.Status {
	case session.StatusQueued, session.StatusWorking:
		m.waiting = true
		return recordPoll()
	case session.StatusFailed:
		m.waiting = false
		m.err = fmt.Errorf("generation failed: %s", rec.Error)
		return nil
	}

	m.waiting = false
	if err := m.setupWorld(); err != nil {
		m.err = err
		return nil
	}

	if m.width > 0 && m.height > 0 {
		m.resize()
	}
	m.writeItemsContent()
	m.writeLocationsContent()
	m.ready = true
	return nil
}

func (m *TrackerUI) resize() {
	itemWidth := int(float64(m.width)*0.4) - 4
	locWidth := m.width - itemWidth - 6

	m.itemsViewport.Width = itemWidth - 2
	m.itemsViewport.Height = m.height - 10
	m.locationsViewport.Width = locWidth - 2
	m.locationsViewport.Height = m.height - 4
}

// writeItemsContent fills the item viewport with the toggle list
func (m *TrackerUI) writeItemsContent() {
	var content strings.Builder

	for i, name := range m.itemNames {
		marker := "  "
		if i == m.cursor {
			marker = "▶ "
		}

		line := fmt.Sprintf("%s%s  %d/%d", marker, name, m.held[name], m.maxHeld[name])
		if m.held[name] > 0 {
			line = heldStyle.Render(line)
		} else if i != m.cursor {
			line = promptStyle.Render(line)
		}
		content.WriteString(line + "\n")
	}

	m.itemsViewport.SetContent(content.String())

	// Keep the cursor in view
	if m.cursor < m.itemsViewport.YOffset {
		m.itemsViewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.itemsViewport.YOffset+m.itemsViewport.Height {
		m.itemsViewport.SetYOffset(m.cursor - m.itemsViewport.Height + 1)
	}
}

// writeLocationsContent fills the location viewport with per-region
// checks, marking the ones in logic for the toggled inventory
func (m *TrackerUI) writeLocationsContent() {
	width := m.locationsViewport.Width - 2
	if width < 20 {
		width = 20
	}

	var content strings.Builder

	inLogic := 0
	for _, l := range m.world.Locations {
		if m.reach[l.Name] {
			inLogic++
		}
	}
	content.WriteString(titleStyle.Render("LOCATIONS") + "\n")
	content.WriteString(fmt.Sprintf("%d of %d in logic\n", inLogic, len(m.world.Locations)))
	content.WriteString(moneyPrinter.Sprintf("Credits needed: %d\n", m.world.TotalMoneyNeeded))
	content.WriteString(separatorStyle.Render(strings.Repeat("─", width)) + "\n\n")

	for _, region := range m.world.Regions {
		var lines []string
		for _, l := range region.Locations {
			if l.Event != "" {
				continue
			}
			marker := "· "
			line := l.Name
			if l.IsShop() {
				line = moneyPrinter.Sprintf("%s [%d]", l.Name, l.ShopPrice)
			}
			if m.reach[l.Name] {
				marker = "✓ "
				lines = append(lines, inLogicStyle.Render(wordwrap.String(marker+line, width)))
			} else {
				lines = append(lines, promptStyle.Render(wordwrap.String(marker+line, width)))
			}
			if m.showHints {
				if hint, ok := locations.SecretDescriptions[l.Name]; ok {
					for _, row := range strings.Split(wordwrap.String(hint, width-4), "\n") {
						lines = append(lines, hintStyle.Render("    "+row))
					}
				}
			}
		}
		if len(lines) == 0 {
			continue
		}
		content.WriteString(regionStyle.Render(region.Name) + "\n")
		content.WriteString(strings.Join(lines, "\n") + "\n\n")
	}

	content.WriteString(regionStyle.Render("GOALS") + "\n")
	for _, ev := range m.world.Events {
		if m.reach[ev.Name] {
			content.WriteString(inLogicStyle.Render("✓ "+ev.Name) + "\n")
		} else {
			content.WriteString(promptStyle.Render("· "+ev.Name) + "\n")
		}
	}
	if m.beatable {
		content.WriteString("\n" + inLogicStyle.Render("All goals are in logic.") + "\n")
	} else {
		content.WriteString("\n" + promptStyle.Render("Goals remain out of logic.") + "\n")
	}

	m.locationsViewport.SetContent(content.String())
}

func (m TrackerUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle preset modal first
	if m.showPresetModal {
		return m.updatePresetModal(msg)
	}

	// Handle quit modal second
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		var ivCmd, lvCmd tea.Cmd
		m.itemsViewport, ivCmd = m.itemsViewport.Update(msg)
		m.locationsViewport, lvCmd = m.locationsViewport.Update(msg)
		return m, tea.Batch(ivCmd, lvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.world != nil {
			m.writeItemsContent()
			m.writeLocationsContent()
			m.ready = true
		}
		return m, nil

	case recordLoadedMsg:
		if msg.err != nil {
			m.waiting = false
			m.err = msg.err
			return m, nil
		}
		cmd := m.applyRecord(msg.record)
		return m, cmd

	case recordPollMsg:
		if m.waiting {
			return m, m.loadRecord()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			if m.err != nil || m.waiting {
				return m, tea.Quit
			}
			m.showQuitModal = true
			return m, nil
		}

		if !m.ready {
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.writeItemsContent()
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.itemNames)-1 {
				m.cursor++
				m.writeItemsContent()
			}
			return m, nil
		case " ", "enter", "right", "l":
			name := m.itemNames[m.cursor]
			m.held[name]++
			if m.held[name] > m.maxHeld[name] {
				m.held[name] = 0
			}
			m.recompute()
			m.writeItemsContent()
			m.writeLocationsContent()
			return m, nil
		case "left", "h":
			name := m.itemNames[m.cursor]
			if m.held[name] > 0 {
				m.held[name]--
				m.recompute()
				m.writeItemsContent()
				m.writeLocationsContent()
			}
			return m, nil
		case "r":
			m.held = make(map[string]int)
			m.recompute()
			m.writeItemsContent()
			m.writeLocationsContent()
			m.status = "Inventory reset"
			return m, nil
		case "s":
			if err := clipboard.WriteAll(m.record.Seed); err != nil {
				m.status = "Clipboard copy failed: " + err.Error()
			} else {
				m.status = "Seed copied to clipboard"
			}
			return m, nil
		case "d":
			data, err := json.MarshalIndent(m.record.SlotData, "", "  ")
			if err != nil {
				m.status = "Failed to encode slot data: " + err.Error()
				return m, nil
			}
			if err := clipboard.WriteAll(string(data)); err != nil {
				m.status = "Clipboard copy failed: " + err.Error()
			} else {
				m.status = "Slot data copied to clipboard"
			}
			return m, nil
		case "i":
			m.showHints = !m.showHints
			m.writeLocationsContent()
			if m.showHints {
				m.status = "Secret hints shown"
			} else {
				m.status = "Secret hints hidden"
			}
			return m, nil
		}

		// Remaining keys scroll the location panel
		var lvCmd tea.Cmd
		m.locationsViewport, lvCmd = m.locationsViewport.Update(msg)
		return m, lvCmd
	}

	return m, nil
}

func (m TrackerUI) updatePresetModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case presetsLoadedMsg:
		m.loadingPresets = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.presets = append([]string{DefaultsEntry}, msg.presets...)
		}

	case recordLoadedMsg:
		// Regardless of outcome, we're no longer in the create loading phase
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		cmd := m.applyRecord(msg.record)
		return m, cmd

	case tea.KeyMsg:
		if m.loadingPresets || m.loading || m.err != nil {
			if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.selectedPreset > 0 {
				m.selectedPreset--
			}
		case tea.KeyDown:
			if m.selectedPreset < len(m.presets)-1 {
				m.selectedPreset++
			}
		case tea.KeyEnter:
			if len(m.presets) > 0 {
				preset := m.presets[m.selectedPreset]
				if preset == DefaultsEntry {
					preset = ""
				}
				m.loading = true
				return m, m.createFromPreset(preset)
			}
		}
	}

	return m, nil
}

func (m TrackerUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				return m, nil
			}
		}
	}

	return m, nil
}

func (m TrackerUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Tracker?"))
	content.WriteString("\n\n")
	content.WriteString("Toggled items are not saved.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m TrackerUI) renderPresetModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	if m.loadingPresets {
		content.WriteString(modalTitleStyle.Render("Loading Presets..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Please wait while we fetch available presets..."))
	} else if m.err != nil {
		content.WriteString(modalTitleStyle.Render("Error"))
		content.WriteString("\n\n")
		content.WriteString(errorStyle.Render(fmt.Sprintf("Failed to load presets: %v", m.err)))
		content.WriteString("\n\n")
		content.WriteString("Press Ctrl+C to exit")
	} else if m.loading {
		content.WriteString(modalTitleStyle.Render("Generating World..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Rolling a fresh seed..."))
	} else {
		content.WriteString(modalTitleStyle.Render("Select a Preset"))
		content.WriteString("\n\n")

		for i, preset := range m.presets {
			if i == m.selectedPreset {
				content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", preset)))
			} else {
				content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", preset)))
			}
			content.WriteString("\n")
		}

		content.WriteString("\n")
		content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Ctrl+C to exit"))
	}

	modal := modalStyle.Width(60).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m TrackerUI) renderWaitingModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Waiting for Generation"))
	content.WriteString("\n\n")
	status := "queued"
	if m.record != nil {
		status = string(m.record.Status)
	}
	content.WriteString(loadingStyle.Render(fmt.Sprintf("The world is %s. Checking again shortly...", status)))
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Ctrl+C to exit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m TrackerUI) renderErrorModal() string {
	if m.width == 0 || m.height == 0 {
		return fmt.Sprintf("Error: %v", m.err)
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Error"))
	content.WriteString("\n\n")
	content.WriteString(errorStyle.Render(m.err.Error()))
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Ctrl+C to exit"))

	modal := modalStyle.Width(60).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m TrackerUI) View() string {
	if m.showPresetModal {
		return m.renderPresetModal()
	}

	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if m.err != nil {
		return m.renderErrorModal()
	}

	if m.waiting {
		return m.renderWaitingModal()
	}

	if !m.ready || m.width == 0 {
		return "\n  Initializing..."
	}

	itemWidth := int(float64(m.width)*0.4) - 4
	locWidth := m.width - itemWidth - 6

	header := titleStyle.Render("TYRIAN TRACKER") + "\n" +
		fmt.Sprintf("Seed: %s\n", m.record.Seed)
	if m.status != "" {
		header += loadingStyle.Render(m.status) + "\n"
	} else {
		header += "\n"
	}
	header += separatorStyle.Render(strings.Repeat("─", itemWidth-4))

	help := promptStyle.Render("↑/↓ move, Space toggle, ← drop\ns seed, d slot data, i hints, r reset, q quit")

	itemPanel := itemPanelStyle.Width(itemWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			m.itemsViewport.View(),
			separatorStyle.Render(strings.Repeat("─", itemWidth-4)),
			help,
		),
	)

	locationPanel := locationPanelStyle.Width(locWidth).Height(m.height - 2).Render(
		m.locationsViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, itemPanel, locationPanel)
}
