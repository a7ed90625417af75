package ui

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Menu is the interactive selection menu. It renders a scrollable
// highlighted list on a tcell screen and degrades to a numbered
// line-input prompt when no usable terminal is attached.
type Menu struct {
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger

	// newScreen is swapped out in tests to force either path.
	newScreen func() (tcell.Screen, error)
}

var _ Selector = (*Menu)(nil)

// NewMenu creates a menu. The reader and writer serve the non-interactive
// fallback; the interactive path talks to the terminal directly.
func NewMenu(in io.Reader, out io.Writer, logger *slog.Logger) *Menu {
	return &Menu{
		in:        bufio.NewReader(in),
		out:       out,
		logger:    logger,
		newScreen: func() (tcell.Screen, error) { return tcell.NewScreen() },
	}
}

// Choose resolves one option interactively, or via the numbered fallback
// when the screen cannot be initialized. Empty options cancel
// immediately with no UI.
func (m *Menu) Choose(title string, options []string) (string, bool) {
	if len(options) == 0 {
		return "", false
	}
	screen, err := m.initScreen()
	if err != nil {
		m.logger.Debug("interactive menu unavailable, using numbered fallback",
			slog.String("error", err.Error()),
		)
		return m.fallback(title, options)
	}
	return m.run(screen, title, options)
}

// ChooseValue selects by label and returns the paired value.
func (m *Menu) ChooseValue(title string, options []Option) (string, bool) {
	if len(options) == 0 {
		return "", false
	}
	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}
	chosen, ok := m.Choose(title, labels)
	if !ok {
		return "", false
	}
	for _, opt := range options {
		if opt.Label == chosen {
			return opt.Value, true
		}
	}
	return "", false
}

func (m *Menu) initScreen() (tcell.Screen, error) {
	screen, err := m.newScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// run drives the key loop. The screen is finalized on every exit path,
// including panics in the underlying UI.
func (m *Menu) run(screen tcell.Screen, title string, options []string) (choice string, ok bool) {
	defer screen.Fini()

	idx := 0
	for {
		m.draw(screen, title, options, idx)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				if idx > 0 {
					idx--
				}
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				if idx < len(options)-1 {
					idx++
				}
			case ev.Key() == tcell.KeyEnter:
				return options[idx], true
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return "", false
			}
		case nil:
			// Screen torn down underneath us.
			return "", false
		}
	}
}

const menuStartRow = 3

func (m *Menu) draw(screen tcell.Screen, title string, options []string, idx int) {
	screen.Clear()
	width, height := screen.Size()

	drawText(screen, 0, 0, width, title, tcell.StyleDefault.Bold(true))
	drawText(screen, 0, 1, width, "Use ↑/↓ and Enter. q/Esc to cancel.", tcell.StyleDefault)

	visible := height - menuStartRow - 1
	if visible < 1 {
		visible = 1
	}
	if visible > len(options) {
		visible = len(options)
	}

	// Keep the highlighted row centered in the window.
	top := idx - visible/2
	if top > len(options)-visible {
		top = len(options) - visible
	}
	if top < 0 {
		top = 0
	}

	for row := 0; row < visible; row++ {
		optIdx := top + row
		if optIdx >= len(options) {
			break
		}
		prefix, style := "  ", tcell.StyleDefault
		if optIdx == idx {
			prefix, style = "> ", tcell.StyleDefault.Reverse(true)
		}
		drawText(screen, 0, menuStartRow+row, width, prefix+options[optIdx], style)
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= maxWidth {
			break
		}
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}

// fallback numbers the options and reads one line; blank, non-numeric,
// or out-of-range input cancels.
func (m *Menu) fallback(title string, options []string) (string, bool) {
	fmt.Fprintln(m.out, title)
	for i, opt := range options {
		fmt.Fprintf(m.out, "  %d. %s\n", i+1, opt)
	}
	fmt.Fprint(m.out, "Select number (blank cancels): ")

	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	sel, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || sel < 1 || sel > len(options) {
		return "", false
	}
	return options[sel-1], true
}
