package components

import (
	"regexp"
	"strconv"
	"strings"

	kerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

// IconPosition places the icon before or after the label.
type IconPosition int

const (
	IconStart IconPosition = iota
	IconEnd
)

func (p IconPosition) String() string {
	switch p {
	case IconStart:
		return "start"
	case IconEnd:
		return "end"
	}
	return "IconPosition(" + strconv.Itoa(int(p)) + ")"
}

// ParseIconPosition converts "start" or "end". The empty string means start.
func ParseIconPosition(raw string) (IconPosition, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "start":
		return IconStart, nil
	case "end":
		return IconEnd, nil
	}
	return IconStart, kerrors.NewConfigError("iconPosition", raw, []string{"start", "end"})
}

// twoCJK matches a label of exactly two CJK unified ideographs.
var twoCJK = regexp.MustCompile(`^[\x{4e00}-\x{9fa5}]{2}$`)

// AutoSpace inserts a single space between the two characters of a label
// made of exactly two CJK ideographs. Any other label is returned unchanged.
func AutoSpace(label string) string {
	if !twoCJK.MatchString(label) {
		return label
	}
	runes := []rune(label)
	return string(runes[0]) + " " + string(runes[1])
}

// composeContent lays out indicator, icon and label on one line. The icon is
// suppressed while an indicator is shown.
func composeContent(indicator, icon string, pos IconPosition, label string) string {
	parts := make([]string, 0, 3)
	if indicator != "" {
		parts = append(parts, indicator)
	}
	if icon != "" && indicator == "" && pos == IconStart {
		parts = append(parts, icon)
	}
	if label != "" {
		parts = append(parts, label)
	}
	if icon != "" && indicator == "" && pos == IconEnd {
		parts = append(parts, icon)
	}
	return strings.Join(parts, " ")
}
