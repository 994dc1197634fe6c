package variant

import (
	"fmt"
	"strings"

	kerrors "github.com/alexisbeaulieu97/kinetic/pkg/errors"
)

// Kind is the shorthand selector that expands to a (Treatment, ColorRole) pair.
type Kind int

const (
	KindDefault Kind = iota
	KindPrimary
	KindDashed
	KindLink
	KindText
)

var kindNames = []string{"default", "primary", "dashed", "link", "text"}

// Treatment is the visual rendering style of a control surface.
// TreatmentUnset means "derive from Kind".
type Treatment int

const (
	TreatmentUnset Treatment = iota
	TreatmentOutlined
	TreatmentDashed
	TreatmentSolid
	TreatmentFilled
	TreatmentText
	TreatmentLink
)

var treatmentNames = []string{"", "outlined", "dashed", "solid", "filled", "text", "link"}

// ColorRole is the semantic color category of a control.
// ColorUnset means "derive from Kind".
type ColorRole int

const (
	ColorUnset ColorRole = iota
	ColorDefault
	ColorPrimary
	ColorDanger
	ColorPink
	ColorPurple
	ColorCyan
)

var colorNames = []string{"", "default", "primary", "danger", "pink", "purple", "cyan"}

// Size selects spacing and typography. SizeDefault and SizeMiddle render
// identically.
type Size int

const (
	SizeMiddle Size = iota
	SizeSmall
	SizeDefault
	SizeLarge
)

var sizeNames = []string{"middle", "small", "default", "large"}

// Shape selects the corner treatment.
type Shape int

const (
	ShapeDefault Shape = iota
	ShapeCircle
	ShapeRound
)

var shapeNames = []string{"default", "circle", "round"}

func enumName(names []string, index int, typ string) string {
	if index < 0 || index >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, index)
	}
	if names[index] == "" {
		return "unset"
	}
	return names[index]
}

func (k Kind) String() string      { return enumName(kindNames, int(k), "Kind") }
func (t Treatment) String() string { return enumName(treatmentNames, int(t), "Treatment") }
func (c ColorRole) String() string { return enumName(colorNames, int(c), "ColorRole") }
func (s Size) String() string      { return enumName(sizeNames, int(s), "Size") }
func (s Shape) String() string     { return enumName(shapeNames, int(s), "Shape") }

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= KindDefault && int(k) < len(kindNames) }

// Valid reports whether t is declared; TreatmentUnset is valid.
func (t Treatment) Valid() bool { return t >= TreatmentUnset && int(t) < len(treatmentNames) }

// Valid reports whether c is declared; ColorUnset is valid.
func (c ColorRole) Valid() bool { return c >= ColorUnset && int(c) < len(colorNames) }

// Valid reports whether s is declared.
func (s Size) Valid() bool { return s >= SizeMiddle && int(s) < len(sizeNames) }

// Valid reports whether s is declared.
func (s Shape) Valid() bool { return s >= ShapeDefault && int(s) < len(shapeNames) }

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindDefault, KindPrimary, KindDashed, KindLink, KindText}
}

// Treatments lists every concrete treatment.
func Treatments() []Treatment {
	return []Treatment{TreatmentOutlined, TreatmentDashed, TreatmentSolid, TreatmentFilled, TreatmentText, TreatmentLink}
}

// Colors lists every concrete color role.
func Colors() []ColorRole {
	return []ColorRole{ColorDefault, ColorPrimary, ColorDanger, ColorPink, ColorPurple, ColorCyan}
}

// Sizes lists every size.
func Sizes() []Size {
	return []Size{SizeSmall, SizeDefault, SizeMiddle, SizeLarge}
}

// Shapes lists every shape.
func Shapes() []Shape {
	return []Shape{ShapeDefault, ShapeCircle, ShapeRound}
}

// ParseKind converts a textual kind. The empty string means KindDefault.
func ParseKind(raw string) (Kind, error) {
	return parseEnum[Kind]("kind", raw, kindNames, KindDefault)
}

// ParseTreatment converts a textual treatment. The empty string means unset.
func ParseTreatment(raw string) (Treatment, error) {
	return parseEnum[Treatment]("variant", raw, treatmentNames, TreatmentUnset)
}

// ParseColor converts a textual color role. The empty string means unset.
func ParseColor(raw string) (ColorRole, error) {
	return parseEnum[ColorRole]("color", raw, colorNames, ColorUnset)
}

// ParseSize converts a textual size. The empty string means SizeMiddle.
func ParseSize(raw string) (Size, error) {
	return parseEnum[Size]("size", raw, sizeNames, SizeMiddle)
}

// ParseShape converts a textual shape. The empty string means ShapeDefault.
func ParseShape(raw string) (Shape, error) {
	return parseEnum[Shape]("shape", raw, shapeNames, ShapeDefault)
}

func parseEnum[T ~int](axis, raw string, names []string, empty T) (T, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return empty, nil
	}
	for i, name := range names {
		if name != "" && name == value {
			return T(i), nil
		}
	}
	return empty, kerrors.NewConfigError(axis, raw, allowedNames(names))
}

func allowedNames(names []string) []string {
	allowed := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" {
			allowed = append(allowed, name)
		}
	}
	return allowed
}

// Inputs is the full set of semantic style inputs for an action element.
type Inputs struct {
	Kind      Kind
	Treatment Treatment
	Color     ColorRole
	Size      Size
	Shape     Shape
	Block     bool
	Ghost     bool
	Danger    bool
}

// Validate rejects enumerated values outside their declared range.
func (in Inputs) Validate() error {
	switch {
	case !in.Kind.Valid():
		return kerrors.NewConfigError("kind", in.Kind.String(), allowedNames(kindNames))
	case !in.Treatment.Valid():
		return kerrors.NewConfigError("variant", in.Treatment.String(), allowedNames(treatmentNames))
	case !in.Color.Valid():
		return kerrors.NewConfigError("color", in.Color.String(), allowedNames(colorNames))
	case !in.Size.Valid():
		return kerrors.NewConfigError("size", in.Size.String(), allowedNames(sizeNames))
	case !in.Shape.Valid():
		return kerrors.NewConfigError("shape", in.Shape.String(), allowedNames(shapeNames))
	}
	return nil
}
