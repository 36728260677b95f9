package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"customfields/internal/common"
	"customfields/internal/diagnostic"
	"customfields/internal/document"
	"customfields/internal/evolution"
	"customfields/internal/field"
	"customfields/internal/flatten"
	"customfields/internal/mapping"
	"customfields/internal/validate"
)

// errInvalid is returned by validate when the form would be rejected.
var errInvalid = errors.New("form data is invalid")

func newMapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "Classify saved values against the current schema",
		Long: `Classify every saved value as mapped, orphaned or missing.

Values whose field was removed longer ago than the orphan age limit are
listed as dropped and appear in no other group.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, d, err := a.load()
			if err != nil {
				return err
			}

			res := mapping.Map(d, s, a.cfg)

			return a.render(cmd, res, func() string { return mappingText(res) })
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate saved values against the current field rules",
		Long: `Validate every mapped value against the current field definition.

Exits non-zero when the form has field errors or is missing a required
value. Phone format problems and orphaned values only warn.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, d, err := a.load()
			if err != nil {
				return err
			}

			res := validate.Form(d, s, a.cfg)

			if err := a.render(cmd, res, func() string { return validationText(res) }); err != nil {
				return err
			}

			if !res.IsValid {
				return errInvalid
			}

			return nil
		},
	}
}

func newEvolveCmd(a *app) *cobra.Command {
	var (
		apply bool
		out   string
	)

	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Analyze schema evolution and optionally heal the record",
		Long: `Analyze how saved data relates to the current schema, migrating orphaned
values onto renamed or retyped fields by rule.

With --apply the healed record is written to --out, or printed when --out
is not set. Orphaned and expired values are not carried into the healed
record.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out != "" && !apply {
				return fmt.Errorf("--out requires --apply")
			}

			s, d, err := a.load()
			if err != nil {
				return err
			}

			rules, err := evolution.RulesFor(a.cfg, nil)
			if err != nil {
				return fmt.Errorf("invalid migration rules: %w", err)
			}

			res := evolution.Analyze(d, s, a.cfg, rules)
			if !apply {
				return a.render(cmd, res, func() string { return evolution.Report(res) })
			}

			healed := evolution.Apply(d, res, a.cfg)
			if out == "" {
				return a.render(cmd, healed, func() string { return yamlText(healed) })
			}

			if err := field.WriteFormData(&healed, out); err != nil {
				return err
			}

			a.logger.Info("healed record written",
				zap.String("path", out),
				zap.Int("fields", healed.Len()),
				zap.Int("migrated", len(res.MigratedFields)))

			return a.render(cmd, res, func() string { return evolution.Report(res) })
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Build the healed record")
	cmd.Flags().StringVar(&out, "out", "", "Write the healed record to this file")

	return cmd
}

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the schema evolution report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, d, err := a.load()
			if err != nil {
				return err
			}

			rules, err := evolution.RulesFor(a.cfg, nil)
			if err != nil {
				return fmt.Errorf("invalid migration rules: %w", err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), evolution.Report(evolution.Analyze(d, s, a.cfg, rules)))

			return err
		},
	}
}

// flattenOutput is the document form of the flatten command result.
type flattenOutput struct {
	Flat    flatten.FlatData   `yaml:"flat" json:"flat"`
	Skipped []field.SavedValue `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	Check   *flatten.Result    `yaml:"check,omitempty" json:"check,omitempty"`
}

func newFlattenCmd(a *app) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "flatten",
		Short: "Convert saved data to the flat position-keyed shape",
		Long: `Convert saved data to flat entries keyed by row and column.

With --check each entry is re-checked against --schema by component id and
type compatibility.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := a.loadData()
			if err != nil {
				return err
			}

			flat, skipped := flatten.FromFormData(d)
			res := flattenOutput{Flat: flat, Skipped: skipped}

			if check {
				s, err := a.loadSchema()
				if err != nil {
					return err
				}

				checked := flatten.Validate(flat, s)
				res.Check = &checked
			}

			return a.render(cmd, res, func() string { return flattenText(res) })
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Check entries against the current schema")

	return cmd
}

func yamlText(v any) string {
	data, err := document.Encode(v, document.FormatYAML)
	if err != nil {
		return fmt.Sprintf("failed to encode: %v\n", err)
	}

	return string(data)
}

func mappingText(res mapping.Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Mapped: %d, Orphaned: %d, Missing: %d, Dropped: %d\n",
		len(res.Mapped), len(res.Orphaned), len(res.Missing), len(res.Dropped)))

	for _, m := range res.Mapped {
		sb.WriteString(fmt.Sprintf("  ✓ %s [%s] = %v\n", common.Quote(m.Current.Label), m.Saved.FieldID, m.Saved.Value))
	}

	for _, o := range res.Orphaned {
		sb.WriteString(fmt.Sprintf("  ✗ %s [%s] %s\n", common.Quote(o.Saved.Metadata.Label), o.Saved.FieldID, o.Reason))
	}

	for _, m := range res.Missing {
		required := ""
		if m.Metadata.Required {
			required = " (required)"
		}

		sb.WriteString(fmt.Sprintf("  - %s [%s] missing%s\n", common.Quote(m.Metadata.Label), m.Key, required))
	}

	for _, d := range res.Dropped {
		sb.WriteString(fmt.Sprintf("  ~ %s [%s] dropped, %d days old\n",
			common.Quote(d.Saved.Metadata.Label), d.Saved.FieldID, int(d.Age/(24*time.Hour))))
	}

	return sb.String()
}

func validationText(res validate.FormResult) string {
	var sb strings.Builder

	status := "valid"
	if !res.IsValid {
		status = "invalid"
	}

	s := res.Summary
	sb.WriteString(fmt.Sprintf("Form is %s: %d fields, %d valid, %d invalid, %d missing required, %d orphaned, %d warnings\n",
		status, s.TotalFields, s.ValidFields, s.InvalidFields, s.MissingRequired, s.Orphaned, s.Warnings))

	diags := res.Diagnostics()
	for _, d := range diags.Errors {
		sb.WriteString("  error: " + d.String() + "\n")
	}

	for _, d := range diags.Warnings {
		sb.WriteString("  warning: " + d.String() + "\n")
	}

	return sb.String()
}

func flattenText(res flattenOutput) string {
	var sb strings.Builder

	for _, key := range res.Flat.SortedKeys() {
		fv := res.Flat[key]
		sb.WriteString(fmt.Sprintf("%s\t%s\t%v\n", key, fv.ComponentType, fv.Value))
	}

	for _, v := range res.Skipped {
		sb.WriteString(fmt.Sprintf("skipped %s: %s\n", v.FieldID, diagnostic.CodeMalformedIdentity))
	}

	if res.Check != nil {
		sb.WriteString(fmt.Sprintf("Check: %d valid, %d invalid\n", len(res.Check.Valid), len(res.Check.Invalid)))

		for _, e := range res.Check.Invalid {
			sb.WriteString(fmt.Sprintf("  ✗ %s: %s\n", e.Key, e.Reason))
		}
	}

	return sb.String()
}
