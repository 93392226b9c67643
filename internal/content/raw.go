package content

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Shape identifies which of the accepted content forms an item carried.
type Shape int

const (
	ShapeMissing Shape = iota
	ShapeText
	ShapeMapping
	ShapeSequence
	ShapeInvalid
)

func (s Shape) String() string {
	switch s {
	case ShapeMissing:
		return "missing"
	case ShapeText:
		return "text"
	case ShapeMapping:
		return "mapping"
	case ShapeSequence:
		return "sequence"
	default:
		return "invalid"
	}
}

// StanzaSource is one stanza body as written in the document: either a single
// newline-delimited string or a list of lines. Null marks an explicit null
// value, which mapping content treats like an absent ref.
type StanzaSource struct {
	Text   string
	Lines  []string
	IsText bool
	Null   bool
}

// TextSource builds a StanzaSource from a newline-delimited string.
func TextSource(text string) StanzaSource {
	return StanzaSource{Text: text, IsText: true}
}

// LinesSource builds a StanzaSource from a list of lines.
func LinesSource(lines ...string) StanzaSource {
	if lines == nil {
		lines = []string{}
	}
	return StanzaSource{Lines: lines}
}

// Section is one ref/body pair of mapping content, in document order.
type Section struct {
	Ref    string
	Source StanzaSource
}

// RawContent is the tagged variant an item's content is decoded into.
type RawContent struct {
	Shape    Shape
	Text     string         // ShapeText
	Sections []Section      // ShapeMapping, refs not yet normalized
	Stanzas  []StanzaSource // ShapeSequence
	Found    string         // ShapeInvalid: description of the offending value
}

// TextContent returns string-shaped content.
func TextContent(text string) RawContent {
	return RawContent{Shape: ShapeText, Text: text}
}

// MappingContent returns mapping-shaped content.
func MappingContent(sections ...Section) RawContent {
	return RawContent{Shape: ShapeMapping, Sections: sections}
}

// SequenceContent returns list-shaped content.
func SequenceContent(stanzas ...StanzaSource) RawContent {
	return RawContent{Shape: ShapeSequence, Stanzas: stanzas}
}

func invalidContent(found string) RawContent {
	return RawContent{Shape: ShapeInvalid, Found: found}
}

// RawOrder is an item's optional order field.
type RawOrder struct {
	Present bool
	Text    string
	Found   string // non-empty when present but not a string
}

// OrderText returns a present, string-valued order.
func OrderText(text string) RawOrder {
	return RawOrder{Present: true, Text: text}
}

// RawItem is an item as decoded from the document, before normalization.
type RawItem struct {
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Author    string     `json:"author,omitempty" yaml:"author,omitempty"`
	Copyright string     `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Type      string     `json:"type,omitempty" yaml:"type,omitempty"`
	Content   RawContent `json:"content" yaml:"content"`
	Order     RawOrder   `json:"order" yaml:"order"`
}

// Document is a decoded, not yet normalized, set document.
type Document struct {
	Title string    `json:"title,omitempty" yaml:"title,omitempty"`
	Items []RawItem `json:"items" yaml:"items"`
}

// ============================================================================
// JSON
// ============================================================================

// UnmarshalJSON sniffs the content shape. Mapping keys keep document order.
// Values of the wrong shape are recorded as ShapeInvalid rather than failing
// the decode so the normalizer can report which item is at fault.
func (c *RawContent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*c = RawContent{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = TextContent(s)

	case '{':
		dec := json.NewDecoder(bytes.NewReader(data))
		if _, err := dec.Token(); err != nil {
			return err
		}
		var sections []Section
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			key, _ := tok.(string)
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return err
			}
			src, found := jsonStanzaSource(raw)
			if found != "" {
				*c = invalidContent(fmt.Sprintf("%s for stanza %q", found, key))
				return nil
			}
			sections = append(sections, Section{Ref: key, Source: src})
		}
		*c = MappingContent(sections...)

	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil {
			return err
		}
		stanzas := make([]StanzaSource, 0, len(elems))
		for i, elem := range elems {
			src, found := jsonStanzaSource(elem)
			if found == "" && src.Null {
				found = "null"
			}
			if found != "" {
				*c = invalidContent(fmt.Sprintf("%s at stanza %d", found, i))
				return nil
			}
			stanzas = append(stanzas, src)
		}
		*c = SequenceContent(stanzas...)

	default:
		*c = invalidContent(jsonKind(data))
	}
	return nil
}

// jsonStanzaSource decodes one stanza body. found is non-empty when the value
// is neither a string, a list of strings nor null.
func jsonStanzaSource(raw json.RawMessage) (src StanzaSource, found string) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return StanzaSource{Null: true}, ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return StanzaSource{}, "malformed string"
		}
		return TextSource(s), ""
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return StanzaSource{}, "malformed array"
		}
		lines := make([]string, 0, len(elems))
		for _, elem := range elems {
			elem = bytes.TrimSpace(elem)
			if len(elem) == 0 || elem[0] != '"' {
				return StanzaSource{}, "array containing " + jsonKind(elem)
			}
			var s string
			if err := json.Unmarshal(elem, &s); err != nil {
				return StanzaSource{}, "malformed string"
			}
			lines = append(lines, s)
		}
		return LinesSource(lines...), ""
	case 'n':
		return StanzaSource{Null: true}, ""
	default:
		return StanzaSource{}, jsonKind(raw)
	}
}

func jsonKind(data []byte) string {
	if len(data) == 0 {
		return "nothing"
	}
	switch data[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	default:
		return "number"
	}
}

// UnmarshalJSON accepts a string; null means absent; anything else is kept
// as present-but-invalid.
func (o *RawOrder) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == 'n' {
		*o = RawOrder{}
		return nil
	}
	if data[0] != '"' {
		*o = RawOrder{Present: true, Found: jsonKind(data)}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*o = OrderText(s)
	return nil
}

// ============================================================================
// YAML
// ============================================================================

// UnmarshalYAML sniffs the content shape from the node tree. Any non-null
// scalar is text, since plain YAML scalars like 42 are typed incidentally.
func (c *RawContent) UnmarshalYAML(value *yaml.Node) error {
	node := resolveAlias(value)

	switch node.Kind {
	case yaml.ScalarNode:
		if isYAMLNull(node) {
			*c = invalidContent("null")
			return nil
		}
		*c = TextContent(node.Value)

	case yaml.MappingNode:
		sections := make([]Section, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := resolveAlias(node.Content[i])
			src, found := yamlStanzaSource(node.Content[i+1])
			if found != "" {
				*c = invalidContent(fmt.Sprintf("%s for stanza %q", found, key.Value))
				return nil
			}
			sections = append(sections, Section{Ref: key.Value, Source: src})
		}
		*c = MappingContent(sections...)

	case yaml.SequenceNode:
		stanzas := make([]StanzaSource, 0, len(node.Content))
		for i, elem := range node.Content {
			src, found := yamlStanzaSource(elem)
			if found == "" && src.Null {
				found = "null"
			}
			if found != "" {
				*c = invalidContent(fmt.Sprintf("%s at stanza %d", found, i))
				return nil
			}
			stanzas = append(stanzas, src)
		}
		*c = SequenceContent(stanzas...)

	default:
		*c = invalidContent(yamlKind(node))
	}
	return nil
}

func yamlStanzaSource(value *yaml.Node) (StanzaSource, string) {
	node := resolveAlias(value)
	switch node.Kind {
	case yaml.ScalarNode:
		if isYAMLNull(node) {
			return StanzaSource{Null: true}, ""
		}
		return TextSource(node.Value), ""
	case yaml.SequenceNode:
		lines := make([]string, 0, len(node.Content))
		for _, elem := range node.Content {
			elem = resolveAlias(elem)
			if elem.Kind != yaml.ScalarNode || isYAMLNull(elem) {
				return StanzaSource{}, "list containing " + yamlKind(elem)
			}
			lines = append(lines, elem.Value)
		}
		return LinesSource(lines...), ""
	default:
		return StanzaSource{}, yamlKind(node)
	}
}

// UnmarshalYAML accepts string scalars as order text. Integers are kept as
// text so "order: 1" still names a single verse.
func (o *RawOrder) UnmarshalYAML(value *yaml.Node) error {
	node := resolveAlias(value)
	switch {
	case node.Kind == yaml.ScalarNode && isYAMLNull(node):
		*o = RawOrder{}
	case node.Kind == yaml.ScalarNode && (node.ShortTag() == "!!str" || node.ShortTag() == "!!int"):
		*o = OrderText(node.Value)
	case node.Kind == yaml.ScalarNode:
		*o = RawOrder{Present: true, Found: "scalar " + node.ShortTag()}
	default:
		*o = RawOrder{Present: true, Found: yamlKind(node)}
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node != nil && node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		return resolveAlias(node.Content[0])
	}
	return node
}

func isYAMLNull(node *yaml.Node) bool {
	return node.ShortTag() == "!!null"
}

func yamlKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "list"
	case yaml.ScalarNode:
		if isYAMLNull(node) {
			return "null"
		}
		return "scalar"
	default:
		return "unknown node"
	}
}
