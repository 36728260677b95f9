// Package schema defines the administrator-editable custom-field form:
// rows of columns, each column optionally holding a field definition.
//
// A schema document looks like:
//
//	id: members
//	version: 3
//	rows:
//	  - id: r1
//	    columns:
//	      - id: c1
//	        field:
//	          id: cmp-email
//	          type: email
//	          label: Email
//	          required: true
//	      - id: c2
//	        field:
//	          type: select
//	          label: Ministry
//	          options: [Choir, Ushers, {value: yth, label: Youth}]
//
// The schema replaces the previous one wholesale on every save; no history
// is kept here. Documents may be YAML, JSON or TOML.
package schema
