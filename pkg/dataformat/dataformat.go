// Package dataformat holds utilities for working with serialized documents of different data formats.
package dataformat

import (
	"encoding/xml"
	"errors"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
)

const (
	// JSON describes JSON data format.
	JSON DataFormat = "JSON"

	// YAML describes Yaml data format.
	YAML DataFormat = "YAML"

	// XML describes XML data format.
	XML DataFormat = "XML"
)

// DataFormat describes format of data.
type DataFormat string

// ErrFormat tells that document bytes do not hold data in expected format.
var ErrFormat = errors.New("unexpected data format")

// IsJSON checks whether bytes are in JSON format.
func IsJSON(bytes []byte) bool {
	return gjson.ValidBytes(bytes)
}

// IsYAML checks whether bytes are in YAML format.
func IsYAML(bytes []byte) bool {
	if IsJSON(bytes) {
		return false
	}

	var y map[string]interface{}
	err := yaml.Unmarshal(bytes, &y)

	return err == nil
}

// IsXML checks whether bytes are in XML format.
func IsXML(bytes []byte) bool {
	var v interface{}
	err := xml.Unmarshal(bytes, &v)

	return err == nil
}

// Detect guesses format of given document bytes.
func Detect(bytes []byte) (DataFormat, error) {
	if IsJSON(bytes) {
		return JSON, nil
	}

	if IsXML(bytes) {
		return XML, nil
	}

	if IsYAML(bytes) {
		return YAML, nil
	}

	return "", ErrFormat
}
