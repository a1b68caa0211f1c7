package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Ghost-Lanes/internal/sim"
)

const (
	feedMaxEntries = 60
	feedLineHeight = 16
)

// FeedEntry is one line in the side panel.
type FeedEntry struct {
	Turn     int
	Label    string // ghost label or "--"
	Category string
	Message  string
}

// ActionFeed is a ring buffer of recent session events rendered beside the
// track. It pulls new entries from the session's ActionLog by cursor.
type ActionFeed struct {
	entries []FeedEntry
	head    int
	count   int
	cursor  int
}

// NewActionFeed creates a feed with a fixed capacity.
func NewActionFeed() *ActionFeed {
	return &ActionFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (f *ActionFeed) Add(turn int, label, category, msg string) {
	f.entries[f.head] = FeedEntry{
		Turn:     turn,
		Label:    label,
		Category: category,
		Message:  msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Sync copies every log entry added since the last call.
func (f *ActionFeed) Sync(log *sim.ActionLog) {
	for _, e := range log.Since(f.cursor) {
		msg := e.Key
		if e.Value != "" {
			msg += " " + e.Value
		}
		f.Add(e.Turn, e.Ghost, e.Category, msg)
	}
	f.cursor = log.Len()
}

// Reset empties the feed and rewinds the cursor for a new session.
func (f *ActionFeed) Reset() {
	f.head, f.count, f.cursor = 0, 0, 0
}

// Recent returns entries in chronological order (oldest first).
func (f *ActionFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

func categoryColor(category string) color.RGBA {
	switch category {
	case "capture":
		return color.RGBA{R: 235, G: 195, B: 60, A: 255}
	case "exit":
		return color.RGBA{R: 210, G: 70, B: 70, A: 255}
	case "move", "fire":
		return color.RGBA{R: 70, G: 110, B: 210, A: 255}
	case "result":
		return color.RGBA{R: 230, G: 230, B: 230, A: 255}
	default:
		return color.RGBA{R: 90, G: 110, B: 90, A: 255}
	}
}

// Draw renders the feed panel at panelX.
func (f *ActionFeed) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), float32(panelH), color.RGBA{R: 12, G: 10, B: 16, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 50, B: 80, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), 18, color.RGBA{R: 28, G: 22, B: 40, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "ACTION LOG  (Y: copy)", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 18, float32(panelX+feedPanelWidth), 18, 1.0, color.RGBA{R: 60, G: 50, B: 80, A: 200}, false)

	entries := f.Recent()
	maxVisible := (panelH - 26) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	recent := 3
	y := 22
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(feedPanelWidth-4), float32(feedLineHeight), color.RGBA{R: 34, G: 28, B: 48, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+5), 3, 6, categoryColor(e.Category), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%3d %-3s %s", e.Turn, e.Label, e.Message), panelX+12, y)
		y += feedLineHeight
	}
}
