package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON schema used to validate a data file before use.
type Schema struct {
	Name       string
	Definition string
}

// WordsSchema describes a term -> definition object.
var WordsSchema = &Schema{
	Name: "words",
	Definition: `{
		"type": "object",
		"propertyNames": {"minLength": 1},
		"additionalProperties": {"type": "string"}
	}`,
}

// CountriesSchema describes the ranked country dataset.
var CountriesSchema = &Schema{
	Name: "countries",
	Definition: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["country"],
			"properties": {
				"country": {"type": "string", "minLength": 1},
				"population": {"type": ["number", "null"], "minimum": 0}
			}
		}
	}`,
}

// TableSchema describes a transliteration table.
var TableSchema = &Schema{
	Name: "table",
	Definition: `{
		"type": "object",
		"propertyNames": {"minLength": 1, "maxLength": 2},
		"additionalProperties": {"type": "string"}
	}`,
}

var schemaCache sync.Map // map[string]*jsonschema.Schema

// DecodeFile reads path, validates it against schema and unmarshals it into out.
// Every failure is returned as *DataLoadError.
func DecodeFile(path string, schema *Schema, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &DataLoadError{Path: path, Err: errors.Wrap(err, "failed to read")}
	}
	return Decode(path, data, schema, out)
}

// Decode validates data against schema and unmarshals it into out. name is
// used as the DataLoadError path.
func Decode(name string, data []byte, schema *Schema, out any) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &DataLoadError{Path: name, Err: errors.Wrap(err, "invalid JSON")}
	}
	compiled, err := compileSchema(schema)
	if err != nil {
		return &DataLoadError{Path: name, Err: err}
	}
	if err := compiled.Validate(doc); err != nil {
		return &DataLoadError{Path: name, Err: errors.Wrapf(err, "does not match %s schema", schema.Name)}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DataLoadError{Path: name, Err: errors.Wrap(err, "failed to decode")}
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}
	def, err := jsonschema.UnmarshalJSON(strings.NewReader(schema.Definition))
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s schema", schema.Name)
	}
	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, errors.Wrap(err, "add schema resource")
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, errors.Wrapf(err, "compile %s schema", schema.Name)
	}
	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
