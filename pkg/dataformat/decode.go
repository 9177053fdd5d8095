package dataformat

import (
	bytes2 "bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/goccy/go-yaml"
)

// Decode turns document bytes of given format into a traversable value tree
// built from map[string]any, []any and scalars.
func Decode(df DataFormat, doc []byte) (any, error) {
	switch df {
	case JSON:
		return decodeJSON(doc)
	case YAML:
		return decodeYAML(doc)
	case XML:
		return decodeXML(doc)
	}

	return nil, fmt.Errorf("%w: unknown data format %q", ErrFormat, df)
}

func decodeJSON(doc []byte) (any, error) {
	if !IsJSON(doc) {
		return nil, fmt.Errorf("%w: detected invalid JSON", ErrFormat)
	}

	var data any
	if err := json.Unmarshal(doc, &data); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormat, err.Error())
	}

	return data, nil
}

func decodeYAML(doc []byte) (any, error) {
	var data any
	if err := yaml.Unmarshal(doc, &data); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormat, err.Error())
	}

	return data, nil
}

// decodeXML parses XML and rebuilds it as nested mappings: attributes become
// "@name" keys, repeated sibling elements collapse into a sequence, an
// element holding only text becomes a plain string. The root element stays
// addressable under its own tag name.
func decodeXML(doc []byte) (any, error) {
	parsed, err := xmlquery.Parse(bytes2.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormat, err.Error())
	}

	for n := parsed.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return map[string]any{n.Data: xmlElementValue(n)}, nil
		}
	}

	return nil, fmt.Errorf("%w: XML document has no root element", ErrFormat)
}

func xmlElementValue(n *xmlquery.Node) any {
	entries := make(map[string]any)
	for _, attr := range n.Attr {
		entries["@"+attr.Name.Local] = attr.Value
	}

	var text strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case xmlquery.ElementNode:
			addXMLEntry(entries, child.Data, xmlElementValue(child))
		case xmlquery.TextNode, xmlquery.CharDataNode:
			text.WriteString(child.Data)
		}
	}

	content := strings.TrimSpace(text.String())

	if len(entries) == 0 {
		return content
	}

	if content != "" {
		entries["#text"] = content
	}

	return entries
}

// addXMLEntry puts a child element value under its tag name,
// promoting repeated names into a sequence.
func addXMLEntry(entries map[string]any, name string, value any) {
	existing, ok := entries[name]
	if !ok {
		entries[name] = value

		return
	}

	if seq, isSeq := existing.([]any); isSeq {
		entries[name] = append(seq, value)

		return
	}

	entries[name] = []any{existing, value}
}
