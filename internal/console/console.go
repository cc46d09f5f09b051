package console

import (
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	// semanticRegex matches {{_content_}} format for semantic tags
	semanticRegex = regexp.MustCompile(`\{\{_([A-Za-z0-9_]+)_\}\}`)

	// directRegex matches {{|content|}} format for direct codes
	directRegex = regexp.MustCompile(`\{\{\|([A-Za-z0-9_:\-#]+)\|\}\}`)

	// preferredProfile stores the detected or forced color profile
	preferredProfile termenv.Profile
)

// CodeReset resets every SGR attribute.
const CodeReset = termenv.CSI + termenv.ResetSeq + "m"

// semanticColors maps semantic tag names (lower case) to ANSI palette indexes.
var semanticColors = map[string]string{
	"applicationname": "6",
	"version":         "3",
	"usercommand":     "3",
	"scheme":          "5",
	"file":            "6",
	"folder":          "6",
	"var":             "5",
	"tag":             "5",
	"trace":           "4",
	"debug":           "4",
	"info":            "4",
	"notice":          "2",
	"warn":            "3",
	"error":           "1",
	"diffadd":         "2",
	"diffdel":         "1",
	"diffhunk":        "6",
}

// directColors maps the names accepted inside {{|...|}} to palette indexes.
var directColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

func init() {
	preferredProfile = detectProfile()
}

// GetPreferredProfile returns the detected or forced color profile
func GetPreferredProfile() termenv.Profile {
	return preferredProfile
}

// SetPreferredProfile explicitly sets the color profile (useful for testing).
// Returns the previous profile so it can be restored.
func SetPreferredProfile(p termenv.Profile) termenv.Profile {
	prev := preferredProfile
	preferredProfile = p
	return prev
}

// ColorEnabled reports whether Parse emits ANSI sequences.
func ColorEnabled() bool {
	return preferredProfile != termenv.Ascii
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func detectProfile() termenv.Profile {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return termenv.Ascii
	}

	colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
	switch colorTerm {
	case "truecolor", "24bit":
		return termenv.TrueColor
	case "8bit", "256color":
		return termenv.ANSI256
	case "1bit", "2color", "mono", "false", "0":
		return termenv.Ascii
	}

	// Log output goes to stderr, so that is the stream that decides
	if !IsTerminal(os.Stderr) {
		return termenv.Ascii
	}
	if strings.ToLower(os.Getenv("TERM")) == "dumb" {
		return termenv.Ascii
	}
	return termenv.NewOutput(os.Stderr).EnvColorProfile()
}

// Parse converts semantic ({{_Tag_}}) and direct ({{|red|}}, {{|-|}}) tags to
// ANSI sequences for the preferred profile. Unknown tags are dropped.
// With the Ascii profile every tag is stripped.
func Parse(text string) string {
	if preferredProfile == termenv.Ascii {
		return stripTags(text)
	}

	text = semanticRegex.ReplaceAllStringFunc(text, func(match string) string {
		name := strings.ToLower(match[3 : len(match)-3])
		if code, ok := semanticColors[name]; ok {
			return sequence(code)
		}
		return ""
	})

	text = directRegex.ReplaceAllStringFunc(text, func(match string) string {
		name := strings.ToLower(match[3 : len(match)-3])
		if name == "-" || name == "reset" {
			return CodeReset
		}
		if code, ok := directColors[name]; ok {
			return sequence(code)
		}
		return ""
	})

	return text
}

// Strip removes both colour tags and already rendered escape sequences.
func Strip(text string) string {
	return ansi.Strip(stripTags(text))
}

func stripTags(text string) string {
	text = semanticRegex.ReplaceAllString(text, "")
	return directRegex.ReplaceAllString(text, "")
}

func sequence(code string) string {
	c := preferredProfile.Color(code)
	if c == nil {
		return ""
	}
	seq := c.Sequence(false)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}
