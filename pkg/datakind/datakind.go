// Package datakind holds utilities for classifying traversable data nodes.
package datakind

// Kind represents structural kind of a data node.
type Kind string

const (
	Scalar         Kind = "scalar"
	Sequence       Kind = "sequence"
	Mapping        Kind = "mapping"
	TaggedSequence Kind = "tagged sequence"
	TaggedMapping  Kind = "tagged mapping"
)

const (
	// Unknown represents unknown kind.
	Unknown Kind = "unknown"
)

// Mapper is entity that has ability to map data's structure into corresponding Kind.
type Mapper interface {
	// Map maps data structural kind.
	Map(data any) Kind
}

// IsComposite checks whether kind describes a node with children.
func (k Kind) IsComposite() bool {
	ks := []Kind{Sequence, Mapping, TaggedSequence, TaggedMapping}

	return isOneOfKinds(ks, k)
}

// IsTagged checks whether kind describes a container carrying a type tag.
func (k Kind) IsTagged() bool {
	ks := []Kind{TaggedSequence, TaggedMapping}

	return isOneOfKinds(ks, k)
}

// IsMapping checks whether kind describes a keyed container, tagged or not.
func (k Kind) IsMapping() bool {
	ks := []Kind{Mapping, TaggedMapping}

	return isOneOfKinds(ks, k)
}

// IsSequence checks whether kind describes an indexed container, tagged or not.
func (k Kind) IsSequence() bool {
	ks := []Kind{Sequence, TaggedSequence}

	return isOneOfKinds(ks, k)
}

func isOneOfKinds(set []Kind, in Kind) bool {
	for _, k := range set {
		if in == k {
			return true
		}
	}

	return false
}
