package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/todo/internal/app"
	"github.com/dori/todo/internal/journal"
	"github.com/dori/todo/internal/model"
	"github.com/muesli/termenv"
)

func newTestModel(t *testing.T, seed []model.Task) RootModel {
	t.Helper()
	cfg := app.DefaultConfig()
	cfg.Seed = seed
	a, err := app.New(cfg)
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	t.Cleanup(func() { a.Close() })

	m := NewRootModel(a)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return next.(RootModel)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds keys through Update and returns the last command
func press(t *testing.T, m RootModel, keys ...string) (RootModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(RootModel)
	}
	return m, cmd
}

func typeText(t *testing.T, m RootModel, text string) RootModel {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(RootModel)
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestToggleFirstSeedTask(t *testing.T) {
	m := newTestModel(t, model.Seed())

	m, cmd := press(t, m, "x")
	if cmd == nil {
		t.Fatal("toggle should record an event")
	}
	if m.store.Tasks()[0].Completed {
		t.Fatal("task 1 should be active after toggle")
	}

	m, _ = press(t, m, "space")
	if !m.store.Tasks()[0].Completed {
		t.Fatal("space should toggle task 1 back to completed")
	}
}

func TestCursorMovesAndClamps(t *testing.T) {
	m := newTestModel(t, model.Seed())

	m, _ = press(t, m, "j", "j", "x")
	if !m.store.Tasks()[2].Completed {
		t.Fatal("third task should be completed")
	}

	for i := 0; i < 20; i++ {
		m, _ = press(t, m, "down")
	}
	if m.cursor != m.store.Len()-1 {
		t.Fatalf("cursor = %d, want %d", m.cursor, m.store.Len()-1)
	}

	m, _ = press(t, m, "k")
	if m.cursor != m.store.Len()-2 {
		t.Fatalf("cursor = %d after up", m.cursor)
	}
}

func TestEntryCommitUsesDraft(t *testing.T) {
	m := newTestModel(t, model.Seed())

	m, _ = press(t, m, "a")
	if m.mode != modeEntry {
		t.Fatalf("mode = %s, want Entry", m.mode)
	}
	m = typeText(t, m, "quit smoking")
	m, _ = press(t, m, "tab")
	m, cmd := press(t, m, "enter")
	if cmd == nil {
		t.Fatal("commit should record an event")
	}

	tasks := m.store.Tasks()
	last := tasks[len(tasks)-1]
	if last.ID != 7 || last.Title != "quit smoking" || !last.Completed {
		t.Fatalf("unexpected task: %+v", last)
	}
	if title, done := m.entry.draft(); title != "" || done {
		t.Fatalf("draft not cleared: %q %v", title, done)
	}
	if m.mode != modeEntry {
		t.Fatal("commit should keep the entry focused")
	}
}

func TestEntryKeepsLongTitle(t *testing.T) {
	m := newTestModel(t, nil)
	long := strings.Repeat("x", 300)

	m, _ = press(t, m, "a")
	m = typeText(t, m, long)
	m, _ = press(t, m, "enter")

	if m.store.Len() != 1 {
		t.Fatalf("len = %d, want 1", m.store.Len())
	}
	if got := m.store.Tasks()[0].Title; got != long {
		t.Fatalf("title len = %d, want %d", len(got), len(long))
	}
}

func TestEntryAcceptsEmptyTitle(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(t, m, "i", "enter")
	if m.store.Len() != 1 {
		t.Fatalf("len = %d, want 1", m.store.Len())
	}
	got := m.store.Tasks()[0]
	if got.ID != 1 || got.Title != "" || got.Completed {
		t.Fatalf("unexpected task: %+v", got)
	}
}

func TestQuitKeyIsTextInEntryMode(t *testing.T) {
	m := newTestModel(t, model.Seed())

	m, cmd := press(t, m, "a", "q")
	if isQuit(cmd) {
		t.Fatal("q should not quit while typing")
	}
	if title, _ := m.entry.draft(); title != "q" {
		t.Fatalf("draft = %q, want q", title)
	}

	m, _ = press(t, m, "esc")
	if m.mode != modeList {
		t.Fatal("esc should return to the list")
	}
	if _, cmd = press(t, m, "q"); !isQuit(cmd) {
		t.Fatal("q should quit from the list")
	}
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	m := newTestModel(t, model.Seed())
	m, _ = press(t, m, "a")
	if _, cmd := press(t, m, "ctrl+c"); !isQuit(cmd) {
		t.Fatal("ctrl+c should quit from entry mode")
	}
}

func TestFooterAndFilterBarHiddenWhenEmpty(t *testing.T) {
	m := newTestModel(t, nil)

	view := m.View()
	if strings.Contains(view, "items left") || strings.Contains(view, "Clear Completed") {
		t.Fatal("footer rendered for an empty list")
	}
	if strings.Contains(view, "Active") {
		t.Fatal("filter bar rendered for an empty list")
	}

	m, _ = press(t, m, "a")
	m = typeText(t, m, "first")
	m, _ = press(t, m, "enter", "esc")

	view = m.View()
	if !strings.Contains(view, "1 items left") {
		t.Fatal("footer missing after adding a task")
	}
	for _, label := range []string{"All", "Active", "Completed"} {
		if !strings.Contains(view, label) {
			t.Fatalf("filter bar missing %q", label)
		}
	}
}

func TestCompletedFilterThenDelete(t *testing.T) {
	m := newTestModel(t, []model.Task{
		{ID: 1, Title: "a", Completed: false},
		{ID: 2, Title: "b", Completed: true},
	})

	m, _ = press(t, m, "3")
	if m.store.Filter() != model.FilterCompleted {
		t.Fatalf("filter = %s", m.store.Filter())
	}
	m, _ = press(t, m, "d")

	if len(m.store.VisibleTasks()) != 0 {
		t.Fatal("visible list should be empty")
	}
	if m.store.Len() != 1 {
		t.Fatalf("len = %d, want 1", m.store.Len())
	}
}

func TestFilterStepping(t *testing.T) {
	m := newTestModel(t, model.Seed())

	m, _ = press(t, m, "l")
	if m.store.Filter() != model.FilterActive {
		t.Fatalf("filter = %s, want Active", m.store.Filter())
	}
	m, _ = press(t, m, "l", "l")
	if m.store.Filter() != model.FilterCompleted {
		t.Fatalf("filter = %s, want Completed", m.store.Filter())
	}
	m, _ = press(t, m, "h", "h", "h")
	if m.store.Filter() != model.FilterAll {
		t.Fatalf("filter = %s, want All", m.store.Filter())
	}
}

func TestClearCompleted(t *testing.T) {
	m := newTestModel(t, model.Seed())

	m, _ = press(t, m, "c")
	for _, task := range m.store.Tasks() {
		if task.Completed {
			t.Fatalf("completed task survived: %+v", task)
		}
	}
	if m.store.Len() != len(model.Seed())-1 {
		t.Fatalf("len = %d", m.store.Len())
	}
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t, model.Seed())
	if !strings.Contains(m.View(), "☾") {
		t.Fatal("light theme should show the moon")
	}

	m, _ = press(t, m, "t")
	if m.store.Theme() != model.ThemeDark {
		t.Fatal("theme should be dark")
	}
	if !strings.Contains(m.View(), "☀") {
		t.Fatal("dark theme should show the sun")
	}
	if m.store.Filter() != model.FilterAll || m.store.Len() != len(model.Seed()) {
		t.Fatal("theme toggle touched task state")
	}
}

func TestThemeChordWorksWhileTyping(t *testing.T) {
	m := newTestModel(t, model.Seed())

	m, _ = press(t, m, "a", "t")
	if m.store.Theme() != model.ThemeLight {
		t.Fatal("t should be typed, not toggle the theme")
	}
	if title, _ := m.entry.draft(); title != "t" {
		t.Fatalf("draft = %q, want t", title)
	}

	m, cmd := press(t, m, "ctrl+t")
	if m.store.Theme() != model.ThemeDark {
		t.Fatal("ctrl+t should toggle the theme from the entry")
	}
	if cmd == nil {
		t.Fatal("theme change should record an event")
	}
	if m.mode != modeEntry {
		t.Fatal("entry should keep focus")
	}
	if title, _ := m.entry.draft(); title != "t" {
		t.Fatalf("draft changed to %q", title)
	}
	if !strings.Contains(m.View(), "☀") {
		t.Fatal("dark theme should show the sun")
	}
}

func TestStrikethroughOnlyOnCompleted(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	m := newTestModel(t, []model.Task{
		{ID: 1, Title: "done thing", Completed: true},
		{ID: 2, Title: "open thing"},
	})

	list := m.renderList()
	if !strings.Contains(list, m.styles.TaskDone.Render("done thing")) {
		t.Fatal("completed row should be struck through")
	}
	if strings.Contains(list, m.styles.TaskDone.Render("open thing")) {
		t.Fatal("active row should not be struck through")
	}
	if !strings.Contains(list, m.styles.TaskNormal.Render("open thing")) {
		t.Fatal("active row should use the normal style")
	}
}

func TestRecordWritesJournal(t *testing.T) {
	m := newTestModel(t, model.Seed())

	m, cmd := press(t, m, "d")
	msg, ok := cmd().(EventRecordedMsg)
	if !ok {
		t.Fatalf("unexpected message %T", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("record: %v", msg.Err)
	}
	if msg.Event.Kind != journal.KindDeleted || msg.Event.TaskID != 1 {
		t.Fatalf("unexpected event: %+v", msg.Event)
	}

	next, follow := m.Update(msg)
	if follow != nil {
		t.Fatal("no reload expected while the activity panel is hidden")
	}
	if next.(RootModel).errorMsg != "" {
		t.Fatal("successful write should not set an error")
	}
}

func TestActivityPanel(t *testing.T) {
	m := newTestModel(t, model.Seed())

	m, cmd := press(t, m, "x")
	next, _ := m.Update(cmd())
	m = next.(RootModel)

	m, cmd = press(t, m, "A")
	if !m.activityVisible || cmd == nil {
		t.Fatal("A should open the panel and load activity")
	}
	loaded, ok := cmd().(ActivityLoadedMsg)
	if !ok || loaded.Err != nil {
		t.Fatalf("load failed: %+v", loaded)
	}
	next, _ = m.Update(loaded)
	m = next.(RootModel)

	view := m.View()
	if !strings.Contains(view, "Activity") || !strings.Contains(view, "toggled 1") {
		t.Fatalf("activity panel missing toggle count:\n%s", view)
	}

	m, _ = press(t, m, "A")
	if strings.Contains(m.View(), "toggled 1") {
		t.Fatal("panel should close")
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, model.Seed())
	if strings.Contains(m.View(), "clear completed") {
		t.Fatal("short help should not list every binding")
	}
	m, _ = press(t, m, "?")
	if !strings.Contains(m.View(), "clear completed") {
		t.Fatal("full help should list clear completed")
	}
}
