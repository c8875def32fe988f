package loader

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// YAML decodes a YAML document into a nested mapping.
func YAML(src []byte) (map[string]any, error) {
	out := make(map[string]any)
	if err := yaml.Unmarshal(src, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// JSON decodes a JSON object into a nested mapping.
func JSON(src []byte) (map[string]any, error) {
	out := make(map[string]any)
	if err := json.Unmarshal(src, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Dotenv decodes KEY=value pairs into a nested mapping. Dots in a key
// express nesting: "database.host=db1" lands under the "database"
// mapping. Values stay strings; this format carries no type information.
func Dotenv(src []byte) (map[string]any, error) {
	flat, err := godotenv.UnmarshalBytes(src)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any)

	for key, value := range flat {
		parts := strings.Split(key, ".")
		node := out

		for _, part := range parts[:len(parts)-1] {
			next, ok := node[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				node[part] = next
			}
			node = next
		}

		node[parts[len(parts)-1]] = value
	}

	return out, nil
}
