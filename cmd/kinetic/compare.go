package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/kinetic/pkg/diff"
)

type compareOptions struct {
	from string
	to   string
}

func newCompareCmd(flags *rootFlags) *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Show how the effective style changes between two variants",
		Long: `Compare the collapsed directive sets of two variants. Each side is a comma
separated list of key=value pairs; danger, block and ghost may be given bare.

  kinetic compare --from kind=primary --to kind=primary,ghost`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, flags)
			if err != nil {
				return err
			}

			before, err := describeVariant(opts.from)
			if err != nil {
				return newCommandError("compare variants", "parsing --from", err, "Use key=value pairs such as kind=primary,size=large.")
			}
			after, err := describeVariant(opts.to)
			if err != nil {
				return newCommandError("compare variants", "parsing --to", err, "Use key=value pairs such as kind=primary,size=large.")
			}

			out := diff.Unified(before, after, labelOrDefault(opts.from), labelOrDefault(opts.to))
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no differences")
				return nil
			}
			removed, inserted := diff.Changed(diff.Compare(before, after))
			log.Debug("variants compared", map[string]any{"removed": removed, "inserted": inserted})
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "Baseline variant (empty means all defaults)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Variant to compare against the baseline")

	return cmd
}

// describeVariant renders the collapsed resolution of a variant description
// as one "property: value" line per directive.
func describeVariant(spec string) (string, error) {
	opts, err := parseVariantSpec(spec)
	if err != nil {
		return "", err
	}
	in, err := opts.inputs()
	if err != nil {
		return "", err
	}
	out := resolveVariant(in, true)

	var b strings.Builder
	fmt.Fprintf(&b, "treatment: %s\n", out.Treatment)
	fmt.Fprintf(&b, "color: %s\n", out.Color)
	for _, d := range out.Directives {
		fmt.Fprintf(&b, "%s: %s\n", d.Property, d.Value)
	}
	return b.String(), nil
}

func parseVariantSpec(spec string) (*resolveOptions, error) {
	opts := &resolveOptions{}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, hasValue := strings.Cut(part, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "kind":
			opts.kind = value
		case "variant":
			opts.treatment = value
		case "color":
			opts.color = value
		case "size":
			opts.size = value
		case "shape":
			opts.shape = value
		case "danger", "block", "ghost":
			on := !hasValue || value == "true"
			if hasValue && value != "true" && value != "false" {
				return nil, fmt.Errorf("%s must be true or false, got %q", key, value)
			}
			switch key {
			case "danger":
				opts.danger = on
			case "block":
				opts.block = on
			case "ghost":
				opts.ghost = on
			}
		default:
			return nil, fmt.Errorf("unknown key %q", key)
		}
	}
	return opts, nil
}

func labelOrDefault(spec string) string {
	if strings.TrimSpace(spec) == "" {
		return "(defaults)"
	}
	return spec
}
