package util

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Check whether a file (or dir) with name exists in file system.
// If it encounter an file system access error, return false,err
func FileExists(name string) (bool, error) {
	_, err := os.Stat(name)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// Keys returns a sorted slice of all keys in the map.
func Keys[T1 cmp.Ordered, T2 any](m map[T1]T2) []T1 {
	keys := make([]T1, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Parse http content-type header and return mediatype, e.g. "text/html".
// contentType: the http Content-Type header, e.g. "text/html; charset=utf-8"
func MediaType(contentType string) string {
	if contentType != "" {
		if mediatype, _, err := mime.ParseMediaType(contentType); err == nil {
			return mediatype
		}
	}
	return ""
}

// Unmarshal a json / yaml / toml input into target according to contentType.
// contentType could be: a mediatype (e.g. "application/json"), or a file type or extension (e.g. "json" or ".json").
// If contentType is empty or is not a supported type, return an error.
// Empty input leaves target untouched.
func Unmarshal(contentType string, input io.Reader, target any) error {
	if strings.ContainsRune(contentType, '/') {
		contentType = MediaType(contentType)
	}
	switch contentType {
	case "application/json", "text/json", "json", ".json",
		"application/yaml", "text/yaml", "yaml", ".yaml", "yml", ".yml",
		"application/toml", "text/toml", "toml", ".toml":
	default:
		return fmt.Errorf("Unmarshal: unsupported contentType %s", contentType)
	}

	body, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if len(body) == 0 {
		return nil
	}
	switch contentType {
	case "application/json", "text/json", "json", ".json":
		return json.Unmarshal(body, target)
	case "application/yaml", "text/yaml", "yaml", ".yaml", "yml", ".yml":
		return yaml.Unmarshal(body, target)
	default:
		return toml.Unmarshal(body, target)
	}
}

// UnmarshalFile reads name and unmarshals it into target, the format is decided by file extension.
func UnmarshalFile(name string, target any) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	if err = Unmarshal(strings.ToLower(filepath.Ext(name)), file, target); err != nil {
		return fmt.Errorf("failed to parse %q: %w", name, err)
	}
	return nil
}
