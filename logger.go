package langkit

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorError   = lipgloss.Color("#ef4444") // red-500
	colorWarning = lipgloss.Color("#eab308") // yellow-500
	colorInfo    = lipgloss.Color("#3b82f6") // blue-500
	colorDim     = lipgloss.Color("#6b7280") // gray-500
)

// Logger renders a Message's trace and source snippet to stderr,
// colored by MessageKind when stderr is a terminal.
type Logger struct {
	kind  MessageKind
	trace []PositionInfo
	color lipgloss.Color
	dim   lipgloss.Style
	text  lipgloss.Style
}

// NewLogger builds a Logger for kind's color, over trace (innermost
// frame first, as produced by NewMessage).
func NewLogger(kind MessageKind, trace []PositionInfo) *Logger {
	color := kindToColor(kind)

	return &Logger{
		kind:  kind,
		trace: trace,
		color: color,
		dim:   lipgloss.NewStyle().Foreground(colorDim),
		text:  lipgloss.NewStyle().Foreground(color),
	}
}

func kindToColor(kind MessageKind) lipgloss.Color {
	switch kind {
	case MessageError:
		return colorError
	case MessageWarning:
		return colorWarning
	default:
		return colorInfo
	}
}

func colorEnabled() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

func (l *Logger) render(style lipgloss.Style, text string) string {
	if !colorEnabled() {
		return text
	}

	return style.Render(text)
}

// Header prints the " ERROR "/" WARN "/" INFO " badge.
func (l *Logger) Header(kind MessageKind) *Logger {
	label := map[MessageKind]string{
		MessageError:   " ERROR ",
		MessageWarning: " WARN ",
		MessageInfo:    " INFO ",
	}[kind]

	badge := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(l.color)
	fmt.Fprint(os.Stderr, l.render(badge, label)+" ")

	return l
}

// Text prints text in kind's color without a trailing newline.
func (l *Logger) Text(text string) *Logger {
	if text != "" {
		fmt.Fprint(os.Stderr, l.render(l.text, text))
	}

	return l
}

// Line prints text in kind's color followed by a newline.
func (l *Logger) Line(text string) *Logger {
	if text != "" {
		fmt.Fprintln(os.Stderr, l.render(l.text, text))
	}

	return l
}

// PaddedLine prints a blank line then text in kind's color, for a
// comment that follows the headline.
func (l *Logger) PaddedLine(text string) *Logger {
	if text != "" {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, l.render(l.text, text))
	}

	return l
}

func rowColLabel(pos PositionInfo) string {
	if pos.Kind == PositionEOF {
		return "end of file"
	}

	return fmt.Sprintf("%d:%d", pos.Row, pos.Col)
}

// Path prints the "at file:row:col" / "in file:row:col" location trace,
// outermost frame last.
func (l *Logger) Path() *Logger {
	var path string

	if len(l.trace) == 0 {
		path = "at [unknown]:0:0"
	} else {
		head := l.trace[0]
		lines := []string{fmt.Sprintf("at %s:%s", head.PathOrUnknown(), rowColLabel(head))}

		for _, pos := range l.trace[1:] {
			lines = append(lines, fmt.Sprintf("in %s:%s", pos.PathOrUnknown(), rowColLabel(pos)))
		}

		path = strings.TrimRight(strings.Join(lines, "\n"), "\n")
	}

	fmt.Fprintln(os.Stderr, l.render(l.dim.Foreground(l.color), path))

	return l
}

func (l *Logger) headPosition() (row, col, length int, ok bool) {
	if len(l.trace) == 0 {
		return 0, 0, 0, false
	}

	head := l.trace[0]
	if head.Kind == PositionEOF {
		return 0, 0, 0, false
	}

	return head.Row, head.Col, head.Len, true
}

func maxPadSize(row, numLines int) int {
	if row < numLines-1 {
		return len(fmt.Sprintf("%d", row+1))
	}

	return len(fmt.Sprintf("%d", row))
}

func highlightedParts(line string, col, length int) (before, highlighted, after string) {
	begin := col - 1
	end := begin + length

	runes := []rune(line)
	for i, r := range runes {
		switch {
		case i < begin:
			before += string(r)
		case i >= end:
			after += string(r)
		default:
			highlighted += string(r)
		}
	}

	return before, highlighted, after
}

// snippetRow renders one of the 3 lines of a code snippet window: index
// is the error line's 0-based index, offset is -1/0/1 relative to it
// (the rendered line is index+offset), and overflow tracks how far a multi-line highlight spills
// past the error line's own length (mutated across the 3 calls).
func (l *Logger) snippetRow(code []string, row, index, offset int, overflow *int) (string, bool) {
	_, col, length, ok := l.headPosition()
	if !ok {
		return "", false
	}

	lineIndex := index + offset
	if lineIndex < 0 || lineIndex >= len(code) {
		return "", false
	}

	maxPad := maxPadSize(row, len(code))
	lineNo := fmt.Sprintf("%*d", maxPad, row+offset)
	line := code[lineIndex]

	if offset == 0 {
		before, highlighted, after := highlightedParts(line, col, length)
		formatted := before + l.render(l.text, highlighted) + after

		if col+length-1 > len([]rune(line)) {
			spill := col + length - 2 - len([]rune(line))
			if spill < 0 {
				spill = 0
			}

			*overflow = spill
		}

		return fmt.Sprintf("%s| %s", lineNo, formatted), true
	}

	if *overflow > 0 {
		lineRunes := []rune(line)
		if *overflow > len(lineRunes) {
			return l.render(l.dim, fmt.Sprintf("%s| %s", lineNo, l.render(l.text, line))), true
		}

		highlighted := string(lineRunes[:*overflow])
		rest := string(lineRunes[*overflow:])

		return l.render(l.dim, fmt.Sprintf("%s| %s%s", lineNo, l.render(l.text, highlighted), rest)), true
	}

	return l.render(l.dim, fmt.Sprintf("%s| %s", lineNo, line)), true
}

// Snippet renders a 3-line window (the error line plus one line of
// context above and below) of code around the head trace frame. It
// prefers re-reading the frame's own file from disk (so the snippet
// reflects a path-qualified trace frame rather than the top-level
// code); code is the fallback when no path is set or the read fails.
func (l *Logger) Snippet(code *string) *Logger {
	if len(l.trace) > 0 {
		head := l.trace[0]
		if head.Path != nil {
			if contents, err := os.ReadFile(*head.Path); err == nil {
				l.snippetFromCode(string(contents))

				return l
			}
		}
	}

	if code != nil {
		l.snippetFromCode(*code)
	}

	return l
}

func (l *Logger) snippetFromCode(code string) {
	row, _, _, ok := l.headPosition()
	if !ok {
		return
	}

	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}

	overflow := 0
	index := row - 1

	fmt.Fprintln(os.Stderr)

	if line, ok := l.snippetRow(lines, row, index, -1, &overflow); ok {
		fmt.Fprintln(os.Stderr, line)
	}

	if line, ok := l.snippetRow(lines, row, index, 0, &overflow); ok {
		fmt.Fprintln(os.Stderr, line)
	}

	if line, ok := l.snippetRow(lines, row, index, 1, &overflow); ok {
		fmt.Fprintln(os.Stderr, line)
	}
}
