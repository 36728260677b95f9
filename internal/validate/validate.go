package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"customfields/internal/common"
	"customfields/internal/diagnostic"
	"customfields/internal/field"
	"customfields/internal/schema"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	phoneStrip   = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "", "\t", "")
)

// FieldResult is the outcome of validating one value.
type FieldResult struct {
	FieldID  string                  `yaml:"field_id" json:"field_id"`
	Label    string                  `yaml:"label" json:"label"`
	IsValid  bool                    `yaml:"is_valid" json:"is_valid"`
	Errors   []diagnostic.Diagnostic `yaml:"errors,omitempty" json:"errors,omitempty"`
	Warnings []diagnostic.Diagnostic `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

// checker accumulates diagnostics for one field.
type checker struct {
	md  field.Metadata
	res FieldResult
}

func (c *checker) errorf(code, format string, args ...any) {
	c.res.Errors = append(c.res.Errors, diagnostic.Errorf(code, c.md.FieldID, c.md.Label, format, args...))
}

func (c *checker) warnf(code, format string, args ...any) {
	c.res.Warnings = append(c.res.Warnings, diagnostic.Warningf(code, c.md.FieldID, c.md.Label, format, args...))
}

// Value validates value against the field's metadata.
func Value(value any, md field.Metadata) FieldResult {
	c := &checker{md: md, res: FieldResult{FieldID: md.FieldID, Label: md.Label}}

	if isEmpty(value) {
		if md.Required {
			c.errorf(diagnostic.CodeRequired, "%s is required", md.Label)
		}

		return c.finish()
	}

	if md.Kind.HasOptions() {
		if md.Kind.IsMultiValued() {
			c.checkMultiChoice(value)
		} else {
			c.checkChoice(value)
		}

		return c.finish()
	}

	switch md.Kind {
	case schema.KindText, schema.KindTextarea:
		c.checkText(value)
	case schema.KindEmail:
		c.checkEmail(value)
	case schema.KindPhone:
		c.checkPhone(value)
	case schema.KindNumber:
		c.checkNumber(value)
	case schema.KindDate:
		c.checkDate(value)
	case schema.KindFile:
		c.checkFile(value)
	default:
		// Unknown kinds carry no type-specific rules.
	}

	return c.finish()
}

func (c *checker) finish() FieldResult {
	c.res.IsValid = len(c.res.Errors) == 0
	return c.res
}

func (c *checker) checkText(value any) {
	s, ok := scalarString(value)
	if !ok {
		c.errorf(diagnostic.CodeUnexpectedValue, "%s must be text", c.md.Label)
		return
	}

	n := utf8.RuneCountInString(s)

	if c.md.MinLength > 0 && n < c.md.MinLength {
		c.errorf(diagnostic.CodeTooShort, "%s must be at least %d characters", c.md.Label, c.md.MinLength)
	}

	if c.md.MaxLength > 0 && n > c.md.MaxLength {
		c.errorf(diagnostic.CodeTooLong, "%s must be at most %d characters", c.md.Label, c.md.MaxLength)
	}
}

func (c *checker) checkEmail(value any) {
	s, ok := asString(value)
	if !ok || !emailPattern.MatchString(strings.TrimSpace(s)) {
		c.errorf(diagnostic.CodeInvalidEmail, "%s must be a valid email address", c.md.Label)
	}
}

// checkPhone only warns: phone formats vary too much to reject a record.
func (c *checker) checkPhone(value any) {
	s, ok := scalarString(value)
	if !ok || !phonePattern.MatchString(phoneStrip.Replace(strings.TrimSpace(s))) {
		c.warnf(diagnostic.CodeInvalidPhone, "%s does not look like a valid phone number", c.md.Label)
	}
}

func (c *checker) checkNumber(value any) {
	if _, ok := asNumber(value); !ok {
		c.errorf(diagnostic.CodeInvalidNumber, "%s must be a valid number", c.md.Label)
	}
}

func (c *checker) checkDate(value any) {
	if _, ok := asDate(value, c.md.DateFormat); !ok {
		c.errorf(diagnostic.CodeInvalidDate, "%s must be a valid date", c.md.Label)
	}
}

func (c *checker) checkChoice(value any) {
	if len(c.md.Options) == 0 {
		return
	}

	s, ok := scalarString(value)
	if !ok || !c.md.Options.Contains(s) {
		c.errorf(diagnostic.CodeInvalidOption, "%s must be one of the available options", c.md.Label)
	}
}

func (c *checker) checkMultiChoice(value any) {
	if len(c.md.Options) == 0 {
		return
	}

	var invalid []string

	for _, item := range asList(value) {
		s, ok := scalarString(item)
		if !ok {
			s = fmt.Sprint(item)
		}

		if !ok || !c.md.Options.Contains(s) {
			invalid = append(invalid, s)
		}
	}

	if len(invalid) > 0 {
		c.errorf(diagnostic.CodeInvalidOption, "%s contains invalid options: %s", c.md.Label, strings.Join(invalid, ", "))
	}
}

func (c *checker) checkFile(value any) {
	files, ok := filesOf(value)
	if !ok {
		c.errorf(diagnostic.CodeUnexpectedValue, "%s must be an uploaded file", c.md.Label)
		return
	}

	constraints := constraintsOf(c.md.File)

	if !constraints.Multiple && common.IsMultiple(files) {
		c.errorf(diagnostic.CodeTooManyFiles, "%s accepts a single file", c.md.Label)
	}

	for _, f := range files {
		if !accepts(f, constraints.Accept) {
			c.errorf(diagnostic.CodeInvalidFileType, "%s: file %q must be of type %s",
				c.md.Label, f.Name, strings.Join(constraints.Accept, ", "))
		}

		if constraints.MaxSizeBytes > 0 && f.Size > constraints.MaxSizeBytes {
			c.errorf(diagnostic.CodeFileTooLarge, "%s: file %q exceeds the maximum size of %d bytes",
				c.md.Label, f.Name, constraints.MaxSizeBytes)
		}
	}
}
