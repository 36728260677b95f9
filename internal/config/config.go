// Package config holds the options shared by the mapping, validation and
// evolution engines.
package config

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// DefaultOrphanedFieldMaxAge is the default orphan retention window in days.
const DefaultOrphanedFieldMaxAge = 90

// Config controls how saved data is reconciled against the current schema.
type Config struct {
	// IncludeTimestamp stamps newly captured identities with the current
	// time instead of the field definition's creation marker.
	IncludeTimestamp bool `mapstructure:"include_timestamp" yaml:"include_timestamp" json:"include_timestamp" toml:"include_timestamp"`
	// ShowOrphanedFields keeps unmapped values (within the age window) in
	// mapping results. When false every unmapped value is dropped.
	ShowOrphanedFields bool `mapstructure:"show_orphaned_fields" yaml:"show_orphaned_fields" json:"show_orphaned_fields" toml:"show_orphaned_fields"`
	// OrphanedFieldMaxAge is the age in days after which an unmapped value
	// is dropped from every result set.
	OrphanedFieldMaxAge int `mapstructure:"orphaned_field_max_age" yaml:"orphaned_field_max_age" json:"orphaned_field_max_age" toml:"orphaned_field_max_age"`
	// AutoMigrate enables rule-based migration of orphaned values.
	AutoMigrate bool `mapstructure:"auto_migrate" yaml:"auto_migrate" json:"auto_migrate" toml:"auto_migrate"`
	// MigrationRules are declarative rules tried before the built-in
	// catalogue, so they override it.
	MigrationRules []RuleDef `mapstructure:"migration_rules" yaml:"migration_rules,omitempty" json:"migration_rules,omitempty" toml:"migration_rules,omitempty"`
	// ReplaceDefaultRules drops the built-in catalogue.
	ReplaceDefaultRules bool `mapstructure:"replace_default_rules" yaml:"replace_default_rules,omitempty" json:"replace_default_rules,omitempty" toml:"replace_default_rules,omitempty"`

	// Clock overrides time.Now. Nil means time.Now.
	Clock func() time.Time `mapstructure:"-" yaml:"-" json:"-" toml:"-"`
	// Logger receives debug output. Nil means no logging.
	Logger *zap.Logger `mapstructure:"-" yaml:"-" json:"-" toml:"-"`
}

// RuleDef is the document form of a migration rule.
type RuleDef struct {
	Name string `mapstructure:"name" yaml:"name" json:"name" toml:"name"`
	// FromType matches the saved field's type. Empty matches any type.
	FromType string `mapstructure:"from_type" yaml:"from_type,omitempty" json:"from_type,omitempty" toml:"from_type,omitempty"`
	// FromLabel is a regular expression matched against the saved label.
	// Empty matches any label.
	FromLabel string `mapstructure:"from_label" yaml:"from_label,omitempty" json:"from_label,omitempty" toml:"from_label,omitempty"`
	// ToName is the exact label of the target field. Empty means the saved
	// field's own label.
	ToName string `mapstructure:"to_name" yaml:"to_name,omitempty" json:"to_name,omitempty" toml:"to_name,omitempty"`
	// ToType, when set, must equal the target field's type.
	ToType string `mapstructure:"to_type" yaml:"to_type,omitempty" json:"to_type,omitempty" toml:"to_type,omitempty"`
	// Transform names a registered value transform.
	Transform string `mapstructure:"transform" yaml:"transform,omitempty" json:"transform,omitempty" toml:"transform,omitempty"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		IncludeTimestamp:    true,
		ShowOrphanedFields:  true,
		OrphanedFieldMaxAge: DefaultOrphanedFieldMaxAge,
		AutoMigrate:         true,
	}
}

// Now returns the configured current time.
func (c Config) Now() time.Time {
	if c.Clock != nil {
		return c.Clock()
	}

	return time.Now()
}

// Log returns the configured logger, or a no-op logger.
func (c Config) Log() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return zap.NewNop()
}

// MaxAge returns the orphan retention window as a duration.
// A negative window is treated as zero. Windows too long to represent
// saturate at the largest duration.
func (c Config) MaxAge() time.Duration {
	if c.OrphanedFieldMaxAge < 0 {
		return 0
	}

	if int64(c.OrphanedFieldMaxAge) > math.MaxInt64/int64(24*time.Hour) {
		return math.MaxInt64
	}

	return time.Duration(c.OrphanedFieldMaxAge) * 24 * time.Hour
}

// WithinMaxAge reports whether a value saved at savedAt is still inside the
// retention window. Unknown save times count as fresh.
func (c Config) WithinMaxAge(savedAt time.Time) bool {
	return c.Age(savedAt) <= c.MaxAge()
}

// Age returns how long ago savedAt was. Unknown or future save times are zero.
func (c Config) Age(savedAt time.Time) time.Duration {
	if savedAt.IsZero() {
		return 0
	}

	age := c.Now().Sub(savedAt)
	if age < 0 {
		return 0
	}

	return age
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
