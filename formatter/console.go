package formatter

import (
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int  // fold lines after a separator beyond this width; 0 for no folding
	Color     bool // use colours and highlighting
}

// Console is a format for outputting numbers to a console with a fixed
// width font.
type Console struct {
	palette   []*color.Color // colours by depth
	exploding *color.Color
	splitting *color.Color
	color     bool
	ccnt      int // number of character positions already printed for line
	ctarget   int // linelength in fixedwidth ‘en’s
}

// NewConsole creates a new console format.
//
// palette holds colours by nesting depth, the last one being used for all
// deeper levels. If palette is nil, a default palette is used. If config is
// nil, colours are switched off.
func NewConsole(config *Config, palette []*color.Color) *Console {
	if config == nil {
		config = &Config{}
	}
	if len(palette) == 0 {
		palette = makeDefaultPalette()
	}
	c := &Console{
		palette:   palette,
		exploding: color.New(color.FgHiRed, color.Bold, color.Underline),
		splitting: color.New(color.FgHiYellow, color.Bold, color.ReverseVideo),
		color:     config.Color,
		ctarget:   config.LineWidth,
	}
	if c.color { // force colours, even if stdout is not a terminal
		for _, col := range palette {
			col.EnableColor()
		}
		c.exploding.EnableColor()
		c.splitting.EnableColor()
	}
	return c
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgWhite),
		color.New(color.FgBlue),
		color.New(color.FgCyan),
		color.New(color.FgGreen),
		color.New(color.FgYellow),
		color.New(color.FgMagenta),
	}
}

func (fw *Console) write(s string, c *color.Color, w io.Writer) {
	fw.ccnt += len(s)
	if fw.color && c != nil {
		c.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

func (fw *Console) depthColor(depth int) *color.Color {
	return fw.palette[min(depth, len(fw.palette)-1)]
}

func (fw *Console) markColor(depth int, mark Mark) *color.Color {
	switch mark {
	case Exploding:
		return fw.exploding
	case Splitting:
		return fw.splitting
	}
	return fw.depthColor(depth)
}

// Preamble is called by the output driver before a number is formatted.
// (Part of interface Format)
func (fw *Console) Preamble(w io.Writer) {
	fw.ccnt = 0
}

// Postamble is called after a number has been formatted. It terminates the
// line.
// (Part of interface Format)
func (fw *Console) Postamble(w io.Writer) {
	io.WriteString(w, "\n")
	fw.ccnt = 0
}

// OpenPair outputs an opening bracket.
// (Part of interface Format)
func (fw *Console) OpenPair(depth int, mark Mark, w io.Writer) {
	fw.write("[", fw.markColor(depth, mark), w)
}

// ClosePair outputs a closing bracket.
// (Part of interface Format)
func (fw *Console) ClosePair(depth int, mark Mark, w io.Writer) {
	fw.write("]", fw.markColor(depth, mark), w)
}

// Separator outputs a comma and folds the line if it has grown beyond the
// configured line width.
// (Part of interface Format)
func (fw *Console) Separator(w io.Writer) {
	fw.write(",", nil, w)
	if fw.ctarget > 0 && fw.ccnt >= fw.ctarget {
		io.WriteString(w, "\n")
		fw.ccnt = 0
	}
}

// Regular outputs a regular number.
// (Part of interface Format)
func (fw *Console) Regular(value int, depth int, mark Mark, w io.Writer) {
	fw.write(strconv.Itoa(value), fw.markColor(depth, mark), w)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it switches on colours and
// reads the terminal's width to set the Config.LineWidth parameter.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = !color.NoColor
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 10 {
			config.LineWidth = 0
		} else {
			config.LineWidth = w - 5
		}
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
