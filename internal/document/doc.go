// Package document reads and writes schema, form-data and configuration
// documents in YAML, JSON or TOML, selected by file extension.
package document
