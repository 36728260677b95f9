package validate

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customfields/internal/diagnostic"
	"customfields/internal/field"
	"customfields/internal/schema"
)

func meta(kind schema.Kind, label string, required bool) field.Metadata {
	return field.Metadata{FieldID: "S1_r1_c1_1000", SchemaID: "S1", RowID: "r1", ColumnID: "c1", Kind: kind, Label: label, Required: required}
}

func TestValue_Required(t *testing.T) {
	for _, empty := range []any{nil, "", "   ", []any{}, []string{}} {
		res := Value(empty, meta(schema.KindEmail, "Email", true))
		assert.False(t, res.IsValid)
		require.Len(t, res.Errors, 1, "required short-circuits other checks")
		assert.Equal(t, diagnostic.CodeRequired, res.Errors[0].Code)
		assert.Contains(t, res.Errors[0].Message, "Email")
	}
}

func TestValue_OptionalEmptyIsValid(t *testing.T) {
	for _, kind := range schema.Kinds {
		res := Value("", meta(kind, "Optional", false))
		assert.True(t, res.IsValid, kind)
		assert.Empty(t, res.Warnings, kind)
	}
}

func TestValue_Email(t *testing.T) {
	md := meta(schema.KindEmail, "Email", true)

	res := Value("not-an-email", md)
	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, diagnostic.CodeInvalidEmail, res.Errors[0].Code)
	assert.Contains(t, res.Errors[0].Message, "Email")

	assert.True(t, Value("a@b.com", md).IsValid)
	assert.True(t, Value(" pastor@church.org ", md).IsValid)
	assert.False(t, Value("a@b", md).IsValid)
	assert.False(t, Value("a b@c.com", md).IsValid)
	assert.False(t, Value(42, md).IsValid)
}

func TestValue_PhoneOnlyWarns(t *testing.T) {
	md := meta(schema.KindPhone, "Phone", false)

	for _, ok := range []string{"+1 (555) 010-0199", "555.010.0199", "5550100"} {
		res := Value(ok, md)
		assert.True(t, res.IsValid, ok)
		assert.Empty(t, res.Warnings, ok)
	}

	res := Value("call me maybe", md)
	assert.True(t, res.IsValid, "phone problems never block")
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, diagnostic.CodeInvalidPhone, res.Warnings[0].Code)

	res = Value("0123", md)
	assert.True(t, res.IsValid)
	assert.Len(t, res.Warnings, 1, "leading zero fails the shape check")
}

func TestValue_Number(t *testing.T) {
	md := meta(schema.KindNumber, "Household Size", false)

	for _, v := range []any{3, int64(4), 2.5, "12", " -7.25 ", uint8(1), float32(1.5)} {
		assert.True(t, Value(v, md).IsValid, "%v", v)
	}

	for _, v := range []any{"abc", "NaN", "Inf", math.Inf(1), math.NaN(), true, []any{1}} {
		res := Value(v, md)
		assert.False(t, res.IsValid, "%v", v)
		assert.Equal(t, diagnostic.CodeInvalidNumber, res.Errors[0].Code)
	}
}

func TestValue_Date(t *testing.T) {
	md := meta(schema.KindDate, "Baptism Date", false)

	for _, v := range []any{"2020-04-12", "2020-04-12T10:00:00Z", "04/12/2020", time.Now()} {
		assert.True(t, Value(v, md).IsValid, "%v", v)
	}

	for _, v := range []any{"yesterday", "2020-13-45", 20200412, time.Time{}} {
		assert.False(t, Value(v, md).IsValid, "%v", v)
	}

	md.DateFormat = "DD/MM/YYYY"
	assert.True(t, Value("25/12/2020", md).IsValid)
}

func TestValue_DeclaredDateFormatIsStrict(t *testing.T) {
	md := meta(schema.KindDate, "Baptism Date", false)
	md.DateFormat = "DD/MM/YYYY"

	assert.True(t, Value("31/12/2024", md).IsValid)
	assert.True(t, Value("2024-12-31T09:30:00Z", md).IsValid, "timestamps are always accepted")

	for _, v := range []string{"12/31/2024", "2024-12-31", "2024/12/31"} {
		res := Value(v, md)
		assert.False(t, res.IsValid, v)
		require.Len(t, res.Errors, 1, v)
		assert.Equal(t, diagnostic.CodeInvalidDate, res.Errors[0].Code, v)
	}
}

func TestValue_SelectAndRadio(t *testing.T) {
	for _, kind := range []schema.Kind{schema.KindSelect, schema.KindRadio} {
		md := meta(kind, "Ministry", false)
		md.Options = schema.Options{{Value: "choir"}, {Value: "ushers"}, {Value: "3"}}

		assert.True(t, Value("choir", md).IsValid)
		assert.True(t, Value(3, md).IsValid, "numeric values compare by text")

		res := Value("youth", md)
		assert.False(t, res.IsValid)
		assert.Equal(t, diagnostic.CodeInvalidOption, res.Errors[0].Code)

		assert.False(t, Value([]any{"choir"}, md).IsValid, "a list is not a single choice")

		md.Options = nil
		assert.True(t, Value("anything", md).IsValid, "no options means no membership check")
	}
}

func TestValue_Checkbox(t *testing.T) {
	md := meta(schema.KindCheckbox, "Gifts", false)
	md.Options = schema.Options{{Value: "music"}, {Value: "teaching"}}

	assert.True(t, Value([]any{"music", "teaching"}, md).IsValid)
	assert.True(t, Value([]string{"music"}, md).IsValid)
	assert.True(t, Value("music", md).IsValid, "a scalar is a single selection")

	res := Value([]any{"music", "cooking", "juggling"}, md)
	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "cooking, juggling")
}

func TestValue_File(t *testing.T) {
	md := meta(schema.KindFile, "Certificate", false)
	md.File = &schema.FileConstraints{Accept: []string{".pdf", "image/*"}, MaxSizeBytes: 1000}

	tests := []struct {
		name  string
		value any
		codes []string
	}{
		{"pdf name", "cert.PDF", nil},
		{"image by extension", map[string]any{"name": "photo.jpg", "size": 10}, nil},
		{"image by type", FileValue{Name: "scan", Type: "image/png"}, nil},
		{"wrong extension", "cert.docx", []string{diagnostic.CodeInvalidFileType}},
		{"too large", map[string]any{"name": "cert.pdf", "size": 5000.0}, []string{diagnostic.CodeFileTooLarge}},
		{"two files", []any{"a.pdf", "b.pdf"}, []string{diagnostic.CodeTooManyFiles}},
		{"not a file", 12, []string{diagnostic.CodeUnexpectedValue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Value(tt.value, md)

			var codes []string
			for _, e := range res.Errors {
				codes = append(codes, e.Code)
			}

			assert.Equal(t, tt.codes, codes)
			assert.Equal(t, len(tt.codes) == 0, res.IsValid)
		})
	}

	md.File = &schema.FileConstraints{Accept: []string{"pdf"}, Multiple: true}
	assert.True(t, Value([]any{"a.pdf", "b.pdf"}, md).IsValid)

	md.File = nil
	assert.True(t, Value("anything.exe", md).IsValid, "no constraints accept everything")
}

func TestValue_TextLength(t *testing.T) {
	md := meta(schema.KindTextarea, "Testimony", false)
	md.MinLength = 3
	md.MaxLength = 5

	assert.True(t, Value("café", md).IsValid, "length counts runes")
	assert.Equal(t, diagnostic.CodeTooShort, Value("ab", md).Errors[0].Code)
	assert.Equal(t, diagnostic.CodeTooLong, Value("abcdef", md).Errors[0].Code)
	assert.Equal(t, diagnostic.CodeUnexpectedValue, Value(map[string]any{"a": 1}, md).Errors[0].Code)
}

func TestValue_UnknownKindHasNoRules(t *testing.T) {
	res := Value(map[string]any{"x": 1}, meta(schema.Kind("signature"), "Signature", true))
	assert.True(t, res.IsValid)
}
