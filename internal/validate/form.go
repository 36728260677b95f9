package validate

import (
	"fmt"

	"go.uber.org/zap"

	"customfields/internal/common"
	"customfields/internal/config"
	"customfields/internal/diagnostic"
	"customfields/internal/field"
	"customfields/internal/mapping"
	"customfields/internal/schema"
)

// Summary counts the outcome of a form validation.
type Summary struct {
	TotalFields     int `yaml:"total_fields" json:"total_fields"`
	ValidFields     int `yaml:"valid_fields" json:"valid_fields"`
	InvalidFields   int `yaml:"invalid_fields" json:"invalid_fields"`
	MissingRequired int `yaml:"missing_required" json:"missing_required"`
	Orphaned        int `yaml:"orphaned" json:"orphaned"`
	Warnings        int `yaml:"warnings" json:"warnings"`
}

// FormResult aggregates field results with form-level messages.
type FormResult struct {
	IsValid bool `yaml:"is_valid" json:"is_valid"`
	// Fields is keyed by saved identity.
	Fields         map[string]FieldResult  `yaml:"fields" json:"fields"`
	GlobalErrors   []diagnostic.Diagnostic `yaml:"global_errors,omitempty" json:"global_errors,omitempty"`
	GlobalWarnings []diagnostic.Diagnostic `yaml:"global_warnings,omitempty" json:"global_warnings,omitempty"`
	Summary        Summary                 `yaml:"summary" json:"summary"`
}

// Diagnostics flattens every field and global message into one set.
func (r *FormResult) Diagnostics() diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	for _, id := range common.SortedKeys(r.Fields) {
		fr := r.Fields[id]
		d.Merge(diagnostic.Diagnostics{Errors: fr.Errors, Warnings: fr.Warnings})
	}

	d.Merge(diagnostic.Diagnostics{Errors: r.GlobalErrors, Warnings: r.GlobalWarnings})

	return d
}

// Form validates every mapped value of saved against the current schema's
// metadata and applies the form-level rules.
func Form(saved *field.FormData, current *schema.Schema, cfg config.Config) FormResult {
	return FromMapping(mapping.Map(saved, current, cfg), cfg)
}

// FromMapping validates an existing mapping result.
func FromMapping(m mapping.Result, cfg config.Config) FormResult {
	res := FormResult{Fields: make(map[string]FieldResult, len(m.Mapped))}

	for _, mf := range m.Mapped {
		md := mf.Current
		md.FieldID = mf.Saved.FieldID

		fr := Value(mf.Saved.Value, md)
		res.Fields[mf.Saved.FieldID] = fr

		res.Summary.TotalFields++
		res.Summary.Warnings += len(fr.Warnings)

		if fr.IsValid {
			res.Summary.ValidFields++
		} else {
			res.Summary.InvalidFields++
		}

		if hasCode(fr.Errors, diagnostic.CodeRequired) {
			res.Summary.MissingRequired++
		}
	}

	for _, missing := range m.RequiredMissing() {
		md := missing.Metadata
		res.GlobalErrors = append(res.GlobalErrors, diagnostic.Errorf(
			diagnostic.CodeMissingRequired, md.FieldID, md.Label, "%s is required", md.Label))
		res.Summary.MissingRequired++
	}

	if n := len(m.Orphaned); n > 0 {
		res.GlobalWarnings = append(res.GlobalWarnings, diagnostic.Warningf(
			diagnostic.CodeOrphanedFields, "", "", "%s no longer match the current form", pluralFields(n)))
		res.Summary.Orphaned = n
		res.Summary.Warnings++
	}

	res.IsValid = res.Summary.InvalidFields == 0 && len(res.GlobalErrors) == 0

	cfg.Log().Debug("validated form data",
		zap.Bool("valid", res.IsValid),
		zap.Int("fields", res.Summary.TotalFields),
		zap.Int("invalid", res.Summary.InvalidFields),
		zap.Int("missing_required", res.Summary.MissingRequired),
		zap.Int("orphaned", res.Summary.Orphaned))

	return res
}

func hasCode(diags []diagnostic.Diagnostic, code string) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}

	return false
}

func pluralFields(n int) string {
	if n == 1 {
		return "1 saved field"
	}

	return fmt.Sprintf("%d saved fields", n)
}
