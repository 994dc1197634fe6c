package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/kinetic/internal/ui/variant"
)

type resolveOptions struct {
	kind      string
	treatment string
	color     string
	size      string
	shape     string
	danger    bool
	block     bool
	ghost     bool
	collapsed bool
	format    string
}

// resolvedDirective is the printable form of a directive.
type resolvedDirective struct {
	Stage    string `yaml:"stage"`
	Property string `yaml:"property"`
	Value    string `yaml:"value"`
}

type resolveOutput struct {
	Treatment  string              `yaml:"treatment"`
	Color      string              `yaml:"color"`
	Directives []resolvedDirective `yaml:"directives"`
}

func newResolveCmd(flags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the style directives for a button variant",
		Long: `Resolve a combination of variant inputs into its effective treatment, color
and ordered directive set. Later directives win when properties repeat; use
--collapsed to print only the winning value of each property.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, flags)
			if err != nil {
				return err
			}
			out, err := runResolve(opts)
			if err != nil {
				log.Warn("variant rejected", map[string]any{"error": err.Error()})
				return err
			}
			log.Debug("variant resolved", map[string]any{"directives": len(out.Directives)})
			return renderResolve(cmd.OutOrStdout(), out, opts.format)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", "", "Shorthand kind (default, primary, dashed, link, text)")
	cmd.Flags().StringVar(&opts.treatment, "variant", "", "Treatment (outlined, dashed, solid, filled, text, link)")
	cmd.Flags().StringVar(&opts.color, "color", "", "Color role (default, primary, danger, pink, purple, cyan)")
	cmd.Flags().StringVar(&opts.size, "size", "", "Size (small, middle, default, large)")
	cmd.Flags().StringVar(&opts.shape, "shape", "", "Shape (default, circle, round)")
	cmd.Flags().BoolVar(&opts.danger, "danger", false, "Use the danger color when no other color applies")
	cmd.Flags().BoolVar(&opts.block, "block", false, "Fill the parent width")
	cmd.Flags().BoolVar(&opts.ghost, "ghost", false, "Transparent background")
	cmd.Flags().BoolVar(&opts.collapsed, "collapsed", false, "Keep only the winning directive per property")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format (text or yaml)")

	return cmd
}

func runResolve(opts *resolveOptions) (resolveOutput, error) {
	in, err := opts.inputs()
	if err != nil {
		return resolveOutput{}, newCommandError("resolve variant", "parsing inputs", err, "Run 'kinetic resolve --help' to list the accepted values.")
	}

	return resolveVariant(in, opts.collapsed), nil
}

func resolveVariant(in variant.Inputs, collapsed bool) resolveOutput {
	res := variant.Resolve(in)
	set := res.Directives
	if collapsed {
		set = set.Collapse()
	}

	out := resolveOutput{
		Treatment:  res.Treatment.String(),
		Color:      res.Color.String(),
		Directives: make([]resolvedDirective, len(set)),
	}
	for i, d := range set {
		out.Directives[i] = resolvedDirective{Stage: d.Stage.String(), Property: string(d.Property), Value: d.Value}
	}
	return out
}

func (o *resolveOptions) inputs() (variant.Inputs, error) {
	in := variant.Inputs{Danger: o.danger, Block: o.block, Ghost: o.ghost}
	var err error
	if in.Kind, err = variant.ParseKind(o.kind); err != nil {
		return in, err
	}
	if in.Treatment, err = variant.ParseTreatment(o.treatment); err != nil {
		return in, err
	}
	if in.Color, err = variant.ParseColor(o.color); err != nil {
		return in, err
	}
	if in.Size, err = variant.ParseSize(o.size); err != nil {
		return in, err
	}
	if in.Shape, err = variant.ParseShape(o.shape); err != nil {
		return in, err
	}
	return in, in.Validate()
}

func renderResolve(w io.Writer, out resolveOutput, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		fmt.Fprintf(w, "Treatment: %s\n", out.Treatment)
		fmt.Fprintf(w, "Color:     %s\n", out.Color)
		fmt.Fprintln(w, "Directives:")
		for _, d := range out.Directives {
			fmt.Fprintf(w, "  %-12s %-24s %s\n", d.Stage, d.Property, d.Value)
		}
		return nil
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(out); err != nil {
			return err
		}
		return encoder.Close()
	}
	return newCommandError("resolve variant", "rendering output", fmt.Errorf("unknown format %q", format), "Use --format text or --format yaml.")
}
