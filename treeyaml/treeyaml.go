// Package treeyaml round-trips built-in trees through YAML, for golden
// fixtures and for inspecting a pass's output by hand.
//
// The encoding is explicit about slot states so that nothing is lost:
// every field value carries a type discriminator (leaf, node, list, or
// null), absent fields simply do not appear, and field order is
// preserved. Leaf values round-trip through YAML's native scalars, so a
// leaf decodes as whatever YAML parses it to (string, int64, float64,
// bool, nil), not necessarily its original Go type.
package treeyaml

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/verdantlang/treewalk/tree"
)

type nodeDoc struct {
	Kind   string     `yaml:"kind"`
	Fields []fieldDoc `yaml:"fields,omitempty"`
}

type fieldDoc struct {
	Name string     `yaml:"name"`
	Type string     `yaml:"type"`
	Leaf any        `yaml:"leaf,omitempty"`
	Node *nodeDoc   `yaml:"node,omitempty"`
	List []valueDoc `yaml:"list,omitempty"`
}

type valueDoc struct {
	Type string     `yaml:"type"`
	Leaf any        `yaml:"leaf,omitempty"`
	Node *nodeDoc   `yaml:"node,omitempty"`
	List []valueDoc `yaml:"list,omitempty"`
}

const (
	typeLeaf = "leaf"
	typeNode = "node"
	typeList = "list"
	typeNull = "null"
)

// Marshal renders the tree rooted at n as YAML.
func Marshal(n *tree.Node) ([]byte, error) {
	data, err := yaml.Marshal(encodeNode(n))
	if err != nil {
		return nil, fmt.Errorf("treeyaml: marshal: %w", err)
	}
	return data, nil
}

// Unmarshal parses YAML produced by Marshal back into a tree.
func Unmarshal(data []byte) (*tree.Node, error) {
	var doc nodeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("treeyaml: unmarshal: %w", err)
	}
	n, err := decodeNode(&doc)
	if err != nil {
		return nil, fmt.Errorf("treeyaml: %w", err)
	}
	return n, nil
}

func encodeNode(n *tree.Node) *nodeDoc {
	doc := &nodeDoc{Kind: string(n.Kind())}
	for name, value := range n.Fields() {
		v := encodeValue(value)
		doc.Fields = append(doc.Fields, fieldDoc{
			Name: name,
			Type: v.Type,
			Leaf: v.Leaf,
			Node: v.Node,
			List: v.List,
		})
	}
	return doc
}

func encodeValue(value any) valueDoc {
	switch value := value.(type) {
	case *tree.Node:
		if value == nil {
			return valueDoc{Type: typeLeaf}
		}
		return valueDoc{Type: typeNode, Node: encodeNode(value)}
	case []any:
		list := make([]valueDoc, len(value))
		for i, el := range value {
			list[i] = encodeValue(el)
		}
		return valueDoc{Type: typeList, List: list}
	default:
		if tree.IsNull(value) {
			return valueDoc{Type: typeNull}
		}
		return valueDoc{Type: typeLeaf, Leaf: value}
	}
}

func decodeNode(doc *nodeDoc) (*tree.Node, error) {
	if doc.Kind == "" {
		return nil, fmt.Errorf("node with empty kind")
	}
	fields := make([]tree.Field, 0, len(doc.Fields))
	for _, f := range doc.Fields {
		value, err := decodeValue(valueDoc{Type: f.Type, Leaf: f.Leaf, Node: f.Node, List: f.List})
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		fields = append(fields, tree.F(f.Name, value))
	}
	return tree.New(tree.Kind(doc.Kind), fields...), nil
}

func decodeValue(v valueDoc) (any, error) {
	switch v.Type {
	case typeLeaf:
		return v.Leaf, nil
	case typeNull:
		return tree.Null, nil
	case typeNode:
		if v.Node == nil {
			return nil, fmt.Errorf("node slot without node body")
		}
		return decodeNode(v.Node)
	case typeList:
		list := make([]any, len(v.List))
		for i, el := range v.List {
			decoded, err := decodeValue(el)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			list[i] = decoded
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unknown slot type %q", v.Type)
	}
}
