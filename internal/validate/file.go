package validate

import (
	"mime"
	"path/filepath"
	"strings"

	"customfields/internal/schema"
)

// FileValue describes one uploaded file as stored in saved data.
type FileValue struct {
	Name string `yaml:"name" json:"name" toml:"name"`
	Size int64  `yaml:"size,omitempty" json:"size,omitempty" toml:"size,omitempty"`
	Type string `yaml:"type,omitempty" json:"type,omitempty" toml:"type,omitempty"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty" toml:"url,omitempty"`
}

// Ext returns the lower-case extension including the dot.
func (f FileValue) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// MediaType returns the declared type, or one guessed from the extension.
func (f FileValue) MediaType() string {
	if f.Type != "" {
		return strings.ToLower(f.Type)
	}

	mt := mime.TypeByExtension(f.Ext())
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}

	return strings.ToLower(mt)
}

// filesOf extracts file descriptions from the shapes saved data can hold:
// a FileValue, a {name, size, type} map, a bare file name, or a list of any
// of those. The boolean is false when some element has none of these shapes.
func filesOf(v any) ([]FileValue, bool) {
	var out []FileValue

	for _, item := range asList(v) {
		f, ok := fileOf(item)
		if !ok {
			return nil, false
		}

		out = append(out, f)
	}

	return out, true
}

func fileOf(v any) (FileValue, bool) {
	switch x := v.(type) {
	case FileValue:
		return x, x.Name != ""
	case *FileValue:
		if x == nil {
			return FileValue{}, false
		}

		return *x, x.Name != ""
	case string:
		return FileValue{Name: x}, x != ""
	case map[string]any:
		f := FileValue{}
		f.Name, _ = x["name"].(string)
		f.Type, _ = x["type"].(string)
		f.URL, _ = x["url"].(string)

		if size, ok := asNumber(x["size"]); ok {
			f.Size = int64(size)
		}

		return f, f.Name != ""
	default:
		return FileValue{}, false
	}
}

// accepts reports whether f matches one of the accept patterns. Patterns
// are extensions (".pdf" or "pdf"), exact media types, or wildcards such as
// "image/*".
func accepts(f FileValue, accept []string) bool {
	if len(accept) == 0 {
		return true
	}

	ext := f.Ext()
	mediaType := f.MediaType()

	for _, raw := range accept {
		pattern := strings.ToLower(strings.TrimSpace(raw))

		switch {
		case pattern == "":
			continue
		case strings.HasSuffix(pattern, "/*"):
			if mediaType != "" && strings.HasPrefix(mediaType, strings.TrimSuffix(pattern, "*")) {
				return true
			}
		case strings.Contains(pattern, "/"):
			if mediaType == pattern {
				return true
			}
		default:
			if !strings.HasPrefix(pattern, ".") {
				pattern = "." + pattern
			}

			if ext == pattern {
				return true
			}
		}
	}

	return false
}

func constraintsOf(c *schema.FileConstraints) schema.FileConstraints {
	if c == nil {
		return schema.FileConstraints{}
	}

	return *c
}
