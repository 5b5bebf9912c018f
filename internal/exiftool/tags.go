package exiftool

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	goexiftool "github.com/barasher/go-exiftool"
)

// TagReader extracts structured tags through a stay-open exiftool process
type TagReader struct {
	toolPath string
}

// NewTagReader creates a tag reader for the tool at toolPath
func NewTagReader(toolPath string) *TagReader {
	return &TagReader{toolPath: toolPath}
}

// ReadTags returns every tag exiftool reports for path, values rendered as text
func (r *TagReader) ReadTags(path string) (map[string]string, error) {
	if path == "" {
		return nil, ErrNoFile
	}

	et, err := goexiftool.NewExiftool(goexiftool.SetExiftoolBinaryPath(r.toolPath))
	if err != nil {
		return nil, startError(r.toolPath, err)
	}
	defer et.Close()

	results := et.ExtractMetadata(path)
	if len(results) == 0 {
		return map[string]string{}, nil
	}

	fileInfo := results[0]
	if fileInfo.Err != nil {
		return nil, fmt.Errorf("failed to extract tags from %s: %w", path, fileInfo.Err)
	}
	return FormatTags(fileInfo.Fields), nil
}

// FormatTags renders decoded exiftool JSON values as display strings
func FormatTags(fields map[string]interface{}) map[string]string {
	tags := make(map[string]string, len(fields))
	for key, value := range fields {
		tags[key] = formatValue(value)
	}
	return tags
}

// formatValue renders a single decoded JSON value
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, formatValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

// SortedTagNames returns the tag names of tags in lexical order
func SortedTagNames(tags map[string]string) []string {
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
