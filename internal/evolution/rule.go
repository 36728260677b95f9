package evolution

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"customfields/internal/config"
	"customfields/internal/field"
	"customfields/internal/schema"
)

// Pattern matches the saved metadata of an orphaned value. Zero fields
// match anything.
type Pattern struct {
	Kind  schema.Kind
	Label *regexp.Regexp
}

// Matches reports whether md satisfies the pattern.
func (p Pattern) Matches(md field.Metadata) bool {
	if p.Kind != "" && md.Kind != p.Kind {
		return false
	}

	if p.Label != nil && !p.Label.MatchString(md.Label) {
		return false
	}

	return true
}

// Target names the current field a matching value moves to.
type Target struct {
	// Name is compared for exact equality with current labels. Empty means
	// the saved field's own label.
	Name string
	// Kind, when set, must equal the target field's kind.
	Kind schema.Kind
}

// Rule is one migration rule.
type Rule struct {
	Name      string
	From      Pattern
	To        Target
	Transform TransformFunc
}

// targetLabel returns the label the rule looks for.
func (r Rule) targetLabel(saved field.Metadata) string {
	if r.To.Name != "" {
		return r.To.Name
	}

	return saved.Label
}

// transform runs the rule's transform, turning panics into errors.
func (r Rule) transform(value any) (out any, err error) {
	if r.Transform == nil {
		return value, nil
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("transform panicked: %v", p)
		}
	}()

	return r.Transform(value)
}

// DefaultRules returns the built-in catalogue of common shape changes.
// It is illustrative rather than exhaustive; callers put their own rules
// first to override it.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "email-field-renamed",
			From: Pattern{Kind: schema.KindEmail},
			To:   Target{Name: "Email", Kind: schema.KindEmail},
		},
		{
			Name: "email-label",
			From: Pattern{Label: regexp.MustCompile(`(?i)^\s*e-?mail`)},
			To:   Target{Name: "Email", Kind: schema.KindEmail},
		},
		{
			Name: "phone-field-renamed",
			From: Pattern{Kind: schema.KindPhone},
			To:   Target{Name: "Phone", Kind: schema.KindPhone},
		},
		{
			Name: "phone-label",
			From: Pattern{Label: regexp.MustCompile(`(?i)phone|mobile|cell`)},
			To:   Target{Name: "Phone", Kind: schema.KindPhone},
		},
		{
			Name: "text-to-textarea",
			From: Pattern{Kind: schema.KindText},
			To:   Target{Kind: schema.KindTextarea},
		},
		{
			Name: "textarea-to-text",
			From: Pattern{Kind: schema.KindTextarea},
			To:   Target{Kind: schema.KindText},
		},
		{
			Name:      "select-to-radio",
			From:      Pattern{Kind: schema.KindSelect},
			To:        Target{Kind: schema.KindRadio},
			Transform: First,
		},
		{
			Name: "radio-to-select",
			From: Pattern{Kind: schema.KindRadio},
			To:   Target{Kind: schema.KindSelect},
		},
		{
			Name:      "checkbox-to-radio",
			From:      Pattern{Kind: schema.KindCheckbox},
			To:        Target{Kind: schema.KindRadio},
			Transform: First,
		},
		{
			Name:      "radio-to-checkbox",
			From:      Pattern{Kind: schema.KindRadio},
			To:        Target{Kind: schema.KindCheckbox},
			Transform: Wrap,
		},
		{
			Name:      "checkbox-to-select",
			From:      Pattern{Kind: schema.KindCheckbox},
			To:        Target{Kind: schema.KindSelect},
			Transform: First,
		},
		{
			Name:      "select-to-checkbox",
			From:      Pattern{Kind: schema.KindSelect},
			To:        Target{Kind: schema.KindCheckbox},
			Transform: Wrap,
		},
	}
}

// CompileRules turns rule documents into rules, resolving transforms by
// name. Every invalid definition is reported; valid ones are still returned.
func CompileRules(defs []config.RuleDef, registry *TransformRegistry) ([]Rule, error) {
	if registry == nil {
		registry = NewTransformRegistry()
	}

	var (
		rules []Rule
		errs  []error
	)

	for i, def := range defs {
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("rule-%d", i+1)
		}

		rule := Rule{
			Name: name,
			From: Pattern{Kind: schema.ParseKind(def.FromType)},
			To:   Target{Name: def.ToName, Kind: schema.ParseKind(def.ToType)},
		}

		if def.FromLabel != "" {
			re, err := regexp.Compile(def.FromLabel)
			if err != nil {
				errs = append(errs, fmt.Errorf("rule %q: invalid from_label pattern: %w", name, err))
				continue
			}

			rule.From.Label = re
		}

		if def.Transform != "" {
			if !registry.Has(def.Transform) {
				errs = append(errs, fmt.Errorf("rule %q: unknown transform %q (available: %s)",
					name, def.Transform, strings.Join(registry.Names(), ", ")))

				continue
			}

			rule.Transform = registry.Get(def.Transform)
		}

		rules = append(rules, rule)
	}

	return rules, errors.Join(errs...)
}

// RulesFor returns the rules for one analysis: the configured rules first,
// followed by the built-in catalogue unless cfg.ReplaceDefaultRules is set.
func RulesFor(cfg config.Config, registry *TransformRegistry) ([]Rule, error) {
	rules, err := CompileRules(cfg.MigrationRules, registry)

	if !cfg.ReplaceDefaultRules {
		rules = append(rules, DefaultRules()...)
	}

	return rules, err
}
