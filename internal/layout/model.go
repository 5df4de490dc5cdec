package layout

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Kind discriminates directory entries from file entries.
type Kind int

const (
	// KindDir is an entry holding nested entries.
	KindDir Kind = iota
	// KindFile is a leaf entry with optional content.
	KindFile
)

// Node is one entry of a structure description. The model is an explicit
// tagged variant rather than a dynamic type check at use sites: a node is
// either a directory with Entries or a file with Content, never both.
//
// The dir/file decision follows the description convention: any
// mapping-shaped value is always a directory. Mapping-shaped file content
// is therefore not expressible; sequences, strings, numbers and booleans
// are the only file content forms.
type Node struct {
	Name    string
	Kind    Kind
	Entries map[string]*Node
	Content cty.Value
}

// IsDir reports whether the node is a directory entry.
func (n *Node) IsDir() bool {
	return n.Kind == KindDir
}

// FromValue builds a description tree from a decoded value. The root must
// be mapping-shaped; anything else is not a valid structure description.
func FromValue(root cty.Value) (*Node, error) {
	if root == cty.NilVal || root.IsNull() || !isMappingShaped(root.Type()) {
		return nil, fmt.Errorf("description root must be a mapping of entry names")
	}
	return buildDir("", root), nil
}

// buildDir converts a mapping-shaped value into a directory node. The
// description format guarantees a finite tree, so plain recursion over
// values already decoded into memory is bounded by the input size.
func buildDir(name string, v cty.Value) *Node {
	dir := &Node{
		Name:    name,
		Kind:    KindDir,
		Entries: make(map[string]*Node),
	}
	if v.LengthInt() == 0 {
		return dir
	}
	for entry, val := range v.AsValueMap() {
		if !val.IsNull() && isMappingShaped(val.Type()) {
			dir.Entries[entry] = buildDir(entry, val)
			continue
		}
		dir.Entries[entry] = &Node{
			Name:    entry,
			Kind:    KindFile,
			Content: val,
		}
	}
	return dir
}

// isMappingShaped reports whether a type is a mapping in the description
// sense. Object types come out of JSON decoding, map types out of the
// Go-native conversion path.
func isMappingShaped(ty cty.Type) bool {
	return ty.IsObjectType() || ty.IsMapType()
}
