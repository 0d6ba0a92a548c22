package app

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rebeliceyang/lazydeck/internal/collection"
	"github.com/rebeliceyang/lazydeck/internal/config"
	"github.com/rebeliceyang/lazydeck/internal/export"
	"github.com/rebeliceyang/lazydeck/internal/models"
	"github.com/rebeliceyang/lazydeck/internal/ui/components"
	"github.com/rebeliceyang/lazydeck/internal/ui/help"
	"github.com/rebeliceyang/lazydeck/internal/ui/theme"
	"github.com/rebeliceyang/lazydeck/internal/viewstate"
)

// App is the main application model
type App struct {
	state  models.AppState
	config *config.Config
	theme  theme.Theme

	leftPanel  components.Panel
	rightPanel components.Panel

	controller *viewstate.Controller
	watcher    *collection.Watcher

	deckTree  *components.DeckTree
	cardList  *components.CardList
	searchBar *components.SearchBar

	// Card inspection modal
	showModal bool
	cardModal *components.CardModal

	// Error overlay
	showError    bool
	errorOverlay *components.ErrorOverlay

	// Persistent empty-state message shown when no collection could be
	// loaded; filtering and highlighting are never attempted in that state
	loadErr string

	// One-line notice in the bottom bar (export/clipboard results)
	notice string

	// Debounce token: only the most recently scheduled query recompute
	// is allowed to run, earlier pending ones are discarded unexecuted
	debounceSeq int
}

// CollectionLoadedMsg is sent when the collection document has been read
type CollectionLoadedMsg struct {
	Col *collection.Collection
	Err error
}

// collectionChangedMsg is sent when the watched document is rewritten
type collectionChangedMsg struct{}

// debounceMsg fires after the search quiet window. Stale sequence numbers
// are ignored, so rapid edits coalesce into one recompute with the final
// query value.
type debounceMsg struct {
	seq   int
	query string
}

// New creates a new App instance with config
func New(cfg *config.Config) *App {
	state := models.NewAppState()

	themeName := "default"
	if cfg != nil && cfg.UI.Theme != "" {
		themeName = cfg.UI.Theme
	}
	th := theme.GetTheme(themeName)

	if cfg != nil && cfg.UI.PanelWidthRatio > 0 && cfg.UI.PanelWidthRatio < 100 {
		state.LeftPanelWidth = cfg.UI.PanelWidthRatio
	}

	maxCards := 100
	if cfg != nil && cfg.Display.MaxCards > 0 {
		maxCards = cfg.Display.MaxCards
	}

	app := &App{
		state:        state,
		config:       cfg,
		theme:        th,
		controller:   viewstate.New(),
		deckTree:     components.NewDeckTree(th),
		cardList:     components.NewCardList(th, maxCards),
		searchBar:    components.NewSearchBar(th),
		cardModal:    components.NewCardModal(th),
		errorOverlay: components.NewErrorOverlay(th),
		leftPanel: components.Panel{
			Title: "Decks",
			Style: lipgloss.NewStyle().BorderForeground(th.BorderFocused),
		},
		rightPanel: components.Panel{
			Title: "Cards",
			Style: lipgloss.NewStyle().BorderForeground(th.Border),
		},
	}

	if cfg != nil && cfg.Data.Watch {
		// A failed watcher is not fatal; manual reload still works
		if w, err := collection.NewWatcher(cfg.Data.Path); err == nil {
			app.watcher = w
		}
	}

	app.updatePanelDimensions()
	app.updatePanelStyles()

	return app
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadCollection, a.waitForChange())
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CollectionLoadedMsg:
		a.handleCollectionLoaded(msg)
		return a, nil

	case collectionChangedMsg:
		return a, tea.Batch(a.loadCollection, a.waitForChange())

	case debounceMsg:
		// Discard recomputes superseded by later keystrokes
		if msg.seq == a.debounceSeq {
			a.controller.SetQuery(msg.query)
			a.refreshCards()
		}
		return a, nil

	case components.QueryChangedMsg:
		return a, a.scheduleRecompute(msg.Query)

	case components.CloseSearchMsg:
		a.searchBar.Reset()
		a.debounceSeq++
		a.controller.SetQuery("")
		a.refreshCards()
		return a, nil

	case components.DeckSelectedMsg:
		a.controller.SelectDeck(msg.Path)
		a.deckTree.SelectedPath = msg.Path
		a.refreshCards()
		return a, nil

	case components.CardSelectedMsg:
		if card, ok := a.controller.CardAt(msg.Index); ok {
			deckPath := ""
			if idx := a.controller.Index(); idx != nil {
				if deck := idx.Deck(card.DeckId); deck != nil {
					deckPath = deck.FullPath
				}
			}
			a.cardModal.SetCard(card, deckPath, a.controller.Query())
			a.showModal = true
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.state.Width = msg.Width
		a.state.Height = msg.Height
		a.updatePanelDimensions()
	}
	return a, nil
}

// handleKey routes keyboard input by UI layer: error overlay first, then
// the card modal, then the search bar, then normal navigation.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if a.showError {
		switch key {
		case "esc", "enter":
			a.showError = false
		case "q", "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	if a.showModal {
		switch key {
		case "esc":
			a.showModal = false
		case "y":
			if err := export.CopyCard(a.cardModal.Card); err != nil {
				a.notice = "Copy failed: clipboard unavailable"
			} else {
				a.notice = "Card copied to clipboard"
			}
		case "q", "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	if a.searchBar.Visible {
		switch key {
		case "enter":
			// Keep the filter: apply the final value immediately,
			// cancel any pending debounce
			a.debounceSeq++
			a.searchBar.Visible = false
			a.searchBar.Input.Blur()
			a.controller.SetQuery(a.searchBar.Value())
			a.refreshCards()
			return a, nil
		case "ctrl+c":
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.searchBar, cmd = a.searchBar.Update(msg)
		return a, cmd
	}

	switch key {
	case "q", "ctrl+c":
		// Don't quit if in help mode, exit help instead
		if a.state.ViewMode == models.HelpMode {
			a.state.ViewMode = models.NormalMode
			return a, nil
		}
		return a, tea.Quit

	case "?":
		if a.state.ViewMode == models.HelpMode {
			a.state.ViewMode = models.NormalMode
		} else {
			a.state.ViewMode = models.HelpMode
		}

	case "esc":
		if a.state.ViewMode == models.HelpMode {
			a.state.ViewMode = models.NormalMode
		} else if a.controller.Query() != "" {
			a.searchBar.Reset()
			a.controller.SetQuery("")
			a.refreshCards()
		}

	case "/":
		if a.state.ViewMode == models.NormalMode && a.loadErr == "" {
			a.searchBar.Open()
		}

	case "r":
		return a, a.loadCollection

	case "e":
		a.exportDisplayed(false)

	case "E":
		a.exportDisplayed(true)

	case "tab":
		if a.state.ViewMode == models.NormalMode {
			if a.state.FocusedPanel == models.LeftPanel {
				a.state.FocusedPanel = models.RightPanel
			} else {
				a.state.FocusedPanel = models.LeftPanel
			}
			a.updatePanelStyles()
		}

	default:
		if a.state.ViewMode != models.NormalMode {
			return a, nil
		}
		if a.state.FocusedPanel == models.LeftPanel {
			var cmd tea.Cmd
			a.deckTree, cmd = a.deckTree.Update(msg)
			return a, cmd
		}
		var cmd tea.Cmd
		a.cardList, cmd = a.cardList.Update(msg)
		return a, cmd
	}

	return a, nil
}

// handleCollectionLoaded applies a load result. The initial failure shows
// the persistent empty state; a failed reload keeps the previous
// collection and only posts a notice.
func (a *App) handleCollectionLoaded(msg CollectionLoadedMsg) {
	if msg.Err != nil {
		if a.controller.Index() != nil {
			a.notice = "Collection reload failed; keeping previous data"
			return
		}
		path := "data.json"
		if a.config != nil {
			path = a.config.Data.Path
		}
		a.loadErr = fmt.Sprintf(
			"No collection found at %s.\n\nRun the converter on your exported collection first,\nthen restart or press 'r' to reload.", path)
		return
	}

	a.loadErr = ""
	a.controller.SetCollection(msg.Col)
	idx := a.controller.Index()
	a.deckTree.SetForest(msg.Col.Decks, idx.AllCards)
	a.deckTree.SelectedPath = a.controller.SelectedPath()
	a.refreshCards()
}

// scheduleRecompute arms the search debounce for the given query value
func (a *App) scheduleRecompute(query string) tea.Cmd {
	a.debounceSeq++
	seq := a.debounceSeq

	debounce := 300 * time.Millisecond
	if a.config != nil && a.config.Search.DebounceMs > 0 {
		debounce = time.Duration(a.config.Search.DebounceMs) * time.Millisecond
	}

	return tea.Tick(debounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq, query: query}
	})
}

// refreshCards republishes the controller's displayed set to the list
func (a *App) refreshCards() {
	a.cardList.SetCards(a.controller.Displayed(), a.controller.Index())
	a.rightPanel.Footer = a.cardList.Footer()
}

// exportDisplayed writes the current displayed set to a timestamped file
func (a *App) exportDisplayed(asCSV bool) {
	cards := a.controller.Displayed()
	if len(cards) == 0 {
		a.notice = "Nothing to export"
		return
	}

	dir := "."
	if a.config != nil && a.config.Export.Dir != "" {
		dir = a.config.Export.Dir
	}

	stamp := time.Now().Format("20060102-150405")
	var path string
	var err error
	if asCSV {
		path = filepath.Join(dir, "cards-"+stamp+".csv")
		err = export.ExportToCSV(cards, a.controller.Index(), path)
	} else {
		path = filepath.Join(dir, "cards-"+stamp+".json")
		err = export.ExportToJSON(cards, path)
	}

	if err != nil {
		a.ShowError("Export failed", err.Error())
		return
	}
	a.notice = fmt.Sprintf("Exported %d cards to %s", len(cards), path)
}

// View implements tea.Model
func (a *App) View() string {
	// If error overlay is showing, render it centered on top of everything
	if a.showError {
		return lipgloss.Place(
			a.state.Width, a.state.Height,
			lipgloss.Center, lipgloss.Center,
			a.errorOverlay.View(),
		)
	}

	if a.showModal {
		return lipgloss.Place(
			a.state.Width, a.state.Height,
			lipgloss.Center, lipgloss.Center,
			a.cardModal.View(),
		)
	}

	if a.state.ViewMode == models.HelpMode {
		return help.Render(a.state.Width, a.state.Height, lipgloss.NewStyle())
	}

	return a.renderNormalView()
}

// renderNormalView renders the normal application view
func (a *App) renderNormalView() string {
	topBarLeft := "lazydeck"
	if scope := a.controller.SelectedPath(); scope != "" {
		topBarLeft += " │ " + scope
	}
	topBarRight := fmt.Sprintf("%d cards", len(a.controller.Displayed()))
	topBarContent := a.formatStatusBar(topBarLeft, topBarRight)

	topBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.BorderFocused).
		Foreground(lipgloss.Color("230")).
		Padding(0, 2).
		Render(topBarContent)

	bottomBarLeft := "[tab] Switch panel │ [/] Search │ [e] Export │ [q] Quit"
	bottomBarRight := a.notice
	bottomBarContent := a.formatStatusBar(bottomBarLeft, bottomBarRight)

	bottomBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.Selection).
		Foreground(a.theme.Foreground).
		Padding(0, 2).
		Render(bottomBarContent)

	// Left panel: deck tree
	a.deckTree.Width = a.leftPanel.Width
	a.deckTree.Height = a.leftPanel.Height
	a.leftPanel.Content = a.deckTree.View()

	// Right panel: card list, or the persistent empty state, or the
	// search bar stacked above the list while searching
	a.cardList.Width = a.rightPanel.Width
	a.cardList.Height = a.rightPanel.Height
	if a.loadErr != "" {
		a.rightPanel.Content = lipgloss.NewStyle().
			Foreground(a.theme.Comment).
			Width(a.rightPanel.Width - 2).
			Align(lipgloss.Center).
			Render(a.loadErr)
	} else if a.searchBar.Visible {
		a.searchBar.Width = a.rightPanel.Width - 2
		a.cardList.Height = a.rightPanel.Height - 4
		a.rightPanel.Content = a.searchBar.View() + "\n" + a.cardList.View()
	} else {
		a.rightPanel.Content = a.cardList.View()
	}

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.leftPanel.View(),
		a.rightPanel.View(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		topBar,
		panels,
		bottomBar,
	)
}

// updatePanelDimensions calculates panel sizes based on window size
func (a *App) updatePanelDimensions() {
	if a.state.Width <= 0 || a.state.Height <= 0 {
		return
	}

	// Reserve space for top bar (1 line) and bottom bar (1 line)
	contentHeight := a.state.Height - 2
	if contentHeight < 5 {
		contentHeight = 5
	}

	// Each panel has a border (2 chars wide: left + right borders)
	leftWidth := (a.state.Width * a.state.LeftPanelWidth) / 100
	if leftWidth < 20 {
		leftWidth = 20
	}

	rightWidth := a.state.Width - leftWidth - 4
	if rightWidth < 20 {
		rightWidth = 20
		leftWidth = a.state.Width - rightWidth - 4
	}

	a.leftPanel.Width = leftWidth
	a.leftPanel.Height = contentHeight
	a.rightPanel.Width = rightWidth
	a.rightPanel.Height = contentHeight
}

// updatePanelStyles updates panel styling based on focus
func (a *App) updatePanelStyles() {
	if a.state.FocusedPanel == models.LeftPanel {
		a.leftPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.BorderFocused)
		a.rightPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.Border)
	} else {
		a.leftPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.Border)
		a.rightPanel.Style = lipgloss.NewStyle().BorderForeground(a.theme.BorderFocused)
	}
}

// formatStatusBar formats a status bar with left and right aligned content
func (a *App) formatStatusBar(left, right string) string {
	// Account for padding (2 chars on each side = 4 total)
	availableWidth := a.state.Width - 4
	if availableWidth < 0 {
		availableWidth = 0
	}

	leftLen := len(left)
	rightLen := len(right)

	// If content is too wide, truncate
	if leftLen+rightLen > availableWidth {
		if availableWidth > rightLen {
			return left[:availableWidth-rightLen] + right
		}
		if availableWidth <= leftLen {
			return left[:availableWidth]
		}
		return left
	}

	spacing := availableWidth - leftLen - rightLen
	if spacing < 0 {
		spacing = 0
	}

	return left + lipgloss.NewStyle().Width(spacing).Render("") + right
}

// loadCollection reads the collection document
func (a *App) loadCollection() tea.Msg {
	path := "data.json"
	if a.config != nil && a.config.Data.Path != "" {
		path = a.config.Data.Path
	}

	col, err := collection.Load(path)
	return CollectionLoadedMsg{Col: col, Err: err}
}

// waitForChange blocks on the next document rewrite
func (a *App) waitForChange() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-a.watcher.Events; !ok {
			return nil
		}
		return collectionChangedMsg{}
	}
}

// ShowError displays an error overlay with the given title and message
func (a *App) ShowError(title, message string) {
	a.errorOverlay.SetError(title, message)
	a.showError = true
}
