package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/kinetic/internal/ui/ripple"
	kerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

func fruitGroup(t *testing.T, changes *[]string) *RadioGroup {
	t.Helper()
	g, err := NewRadioGroup(RadioGroupProps{
		Options: []RadioOption{
			{Label: "Apple", Value: "apple"},
			{Label: "Pear", Value: "pear"},
			{Label: "Plum", Value: "plum", Disabled: true},
		},
		Value: "apple",
		OnChange: func(value string) tea.Cmd {
			*changes = append(*changes, value)
			return nil
		},
	})
	require.NoError(t, err)
	return g
}

func checkedValues(g *RadioGroup) []string {
	var out []string
	for _, r := range g.Radios() {
		if r.Checked() {
			out = append(out, r.Value())
		}
	}
	return out
}

func TestRadioGroupSelectsByInteraction(t *testing.T) {
	t.Parallel()

	var changes []string
	g := fruitGroup(t, &changes)
	require.Equal(t, []string{"apple"}, checkedValues(g))

	pear := g.Radios()[1]
	pear.Interact(ripple.Pointer{X: 1, Y: 0}, indicatorHost(pear))

	assert.Equal(t, "pear", g.Value())
	assert.Equal(t, []string{"pear"}, checkedValues(g))
	assert.Equal(t, []string{"pear"}, changes)
}

func TestRadioGroupIgnoresReselectAndDisabled(t *testing.T) {
	t.Parallel()

	var changes []string
	g := fruitGroup(t, &changes)

	g.Radios()[0].Toggle()
	g.Radios()[2].Toggle()

	assert.Equal(t, "apple", g.Value())
	assert.Equal(t, []string{"apple"}, checkedValues(g))
	assert.Empty(t, changes)
}

func TestRadioGroupSelect(t *testing.T) {
	t.Parallel()

	var changes []string
	g := fruitGroup(t, &changes)

	require.Nil(t, g.Select("banana"))
	assert.Equal(t, "apple", g.Value())

	g.Select("plum")
	assert.Equal(t, []string{"plum"}, checkedValues(g))
	assert.Equal(t, []string{"plum"}, changes)
}

func TestRadioGroupRejectsDuplicateValues(t *testing.T) {
	t.Parallel()

	_, err := NewRadioGroup(RadioGroupProps{Options: []RadioOption{{Value: "a"}, {Value: "a"}}})
	var valErr *kerrors.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestRadioGroupView(t *testing.T) {
	t.Parallel()

	var changes []string
	view := ansi.Strip(fruitGroup(t, &changes).View())
	assert.Contains(t, view, "(●) Apple")
	assert.Contains(t, view, "( ) Pear")
	assert.Contains(t, view, "( ) Plum")
}
