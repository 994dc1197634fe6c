package variant

// Resolution is the outcome of resolving a set of Inputs.
type Resolution struct {
	Treatment  Treatment
	Color      ColorRole
	Directives Set
}

// With appends caller overrides after every computed stage. Overrides win
// over all other directives once the set is collapsed.
func (r Resolution) With(overrides ...Set) Set {
	staged := make([]Set, len(overrides))
	for i, o := range overrides {
		staged[i] = o.withStage(StageOverride)
	}
	return r.Directives.Merge(staged...)
}

// Normalize applies the shorthand and danger stages, returning inputs whose
// Treatment and Color are always concrete.
func Normalize(in Inputs) Inputs {
	derived, ok := shorthand[in.Kind]
	if !ok {
		derived = shorthand[KindDefault]
	}
	if in.Treatment == TreatmentUnset {
		in.Treatment = derived.treatment
	}
	if in.Color == ColorUnset {
		in.Color = derived.color
	}

	// Danger only replaces the neutral color; an explicit or derived
	// non-default color is kept.
	if in.Danger && in.Color == ColorDefault {
		in.Color = ColorDanger
	}
	return in
}

// Resolve maps inputs to an ordered directive set. Stages are appended in
// order: base, per-axis, then combination; so combination directives win over
// per-axis ones for any shared property. Resolve never fails; values outside
// the declared enumerations should be rejected with Inputs.Validate first.
func Resolve(in Inputs) Resolution {
	norm := Normalize(in)

	var out Set
	out = append(out, baseDirectives.withStage(StageBase)...)

	out = append(out, treatmentDirectives[norm.Treatment].withStage(StageAxis)...)
	if norm.Block {
		out = append(out, blockDirectives.withStage(StageAxis)...)
	}
	out = append(out, shapeDirectives[norm.Shape].withStage(StageAxis)...)
	if norm.Ghost {
		out = append(out, ghostDirectives.withStage(StageAxis)...)
	}

	out = append(out, combinations[comboKey{norm.Color, norm.Treatment}].withStage(StageCombination)...)
	out = append(out, sizeDirectives[norm.Size].withStage(StageCombination)...)

	return Resolution{
		Treatment:  norm.Treatment,
		Color:      norm.Color,
		Directives: out,
	}
}
