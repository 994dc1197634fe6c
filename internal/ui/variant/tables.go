package variant

// shorthand maps a kind to the treatment and color it implies.
var shorthand = map[Kind]struct {
	treatment Treatment
	color     ColorRole
}{
	KindPrimary: {TreatmentSolid, ColorPrimary},
	KindDashed:  {TreatmentDashed, ColorDefault},
	KindLink:    {TreatmentLink, ColorPrimary},
	KindText:    {TreatmentText, ColorDefault},
	KindDefault: {TreatmentSolid, ColorDefault},
}

// RoleColors are the three tones each color role contributes.
type RoleColors struct {
	Base  string
	Hover string
	Tint  string
}

// Palette holds the fixed tones for every color role.
var Palette = map[ColorRole]RoleColors{
	ColorDefault: {Base: "#000000", Hover: "#1a1a1a", Tint: "#f3f4f6"},
	ColorPrimary: {Base: "#1677ff", Hover: "#4096ff", Tint: "#e6f4ff"},
	ColorDanger:  {Base: "#ff4d4f", Hover: "#ff7779", Tint: "#fff1f0"},
	ColorPink:    {Base: "#eb2f96", Hover: "#fa3faf", Tint: "#fff0f6"},
	ColorPurple:  {Base: "#722ed1", Hover: "#9254de", Tint: "#f9f0ff"},
	ColorCyan:    {Base: "#e3c2c2", Hover: "#f0dada", Tint: "#fef6f6"},
}

const (
	onSolid   = "#ffffff"
	focusRing = "#6366f1"
)

var baseDirectives = Set{
	D(PropDisplay, "inline"),
	D(PropAlign, "center"),
	D(PropCursor, "pointer"),
	D(PropFontWeight, "medium"),
	D(PropRadius, "md"),
	D(PropBorderStyle, None),
	D(PropFocusRing, focusRing),
	D(PropDisabledDim, "0.5"),
	D(PropDisabledPointer, None),
}

var treatmentDirectives = map[Treatment]Set{
	TreatmentOutlined: {D(PropBorderStyle, "normal"), D(PropBackground, Transparent)},
	TreatmentDashed:   {D(PropBorderStyle, "dashed"), D(PropBackground, Transparent)},
	TreatmentSolid:    nil,
	TreatmentFilled:   nil,
	TreatmentText:     {D(PropBackground, Transparent)},
	TreatmentLink:     {D(PropBackground, Transparent)},
}

var shapeDirectives = map[Shape]Set{
	ShapeDefault: nil,
	ShapeCircle:  {D(PropRadius, "full"), D(PropPaddingX, "0")},
	ShapeRound:   {D(PropRadius, "full")},
}

var (
	blockDirectives = Set{D(PropWidth, "full")}
	ghostDirectives = Set{D(PropBackground, Transparent)}
)

type comboKey struct {
	color     ColorRole
	treatment Treatment
}

// combinations holds the color-specific surface for every (color, treatment)
// pair.
var combinations = buildCombinations()

func buildCombinations() map[comboKey]Set {
	table := make(map[comboKey]Set, len(Palette)*len(treatmentDirectives))
	for color, tones := range Palette {
		solid := Set{
			D(PropBackground, tones.Base),
			D(PropForeground, onSolid),
			D(PropBorderColor, Transparent),
			D(PropHoverBackground, tones.Hover),
		}
		table[comboKey{color, TreatmentSolid}] = solid
		table[comboKey{color, TreatmentFilled}] = solid.Clone()
		table[comboKey{color, TreatmentOutlined}] = Set{
			D(PropBorderColor, tones.Base),
			D(PropForeground, tones.Base),
			D(PropHoverBackground, tones.Tint),
		}
		table[comboKey{color, TreatmentDashed}] = Set{
			D(PropBorderStyle, "dashed"),
			D(PropBorderColor, tones.Base),
			D(PropForeground, tones.Base),
			D(PropHoverBackground, tones.Tint),
		}
		table[comboKey{color, TreatmentText}] = Set{
			D(PropForeground, tones.Base),
			D(PropHoverBackground, tones.Tint),
		}
		table[comboKey{color, TreatmentLink}] = Set{
			D(PropForeground, tones.Base),
			D(PropHoverUnderline, "true"),
		}
	}
	return table
}

var sizeDirectives = map[Size]Set{
	SizeSmall:   {D(PropPaddingX, "1"), D(PropPaddingY, "0"), D(PropTextSize, "sm")},
	SizeDefault: {D(PropPaddingX, "2"), D(PropPaddingY, "0"), D(PropTextSize, "sm")},
	SizeMiddle:  {D(PropPaddingX, "2"), D(PropPaddingY, "0"), D(PropTextSize, "sm")},
	SizeLarge:   {D(PropPaddingX, "3"), D(PropPaddingY, "0"), D(PropTextSize, "base")},
}
