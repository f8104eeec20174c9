package vrml

// field identifies where a token inside a node is routed.
type field int

const (
	fieldNone field = iota
	fieldVertex
	fieldTexCoord
	fieldFace
	fieldColor
	fieldNormal
	fieldTextureURL      // value following `url` in ImageTexture
	fieldTextureFilename // value following `filename` in Texture2
	fieldTextureURLList  // entries of `url [ ... ]` in ImageTexture
	fieldColorBinding    // value following `value` in MaterialBinding
	fieldNormalBinding   // value following `value` in NormalBinding
)

// arity returns the number of tokens making one element of the field.
// Faces take a fourth token, the terminator.
func (f field) arity() int {
	switch f {
	case fieldVertex, fieldColor, fieldNormal:
		return 3
	case fieldTexCoord:
		return 2
	case fieldFace:
		return 4
	default:
		return 0
	}
}

// fieldKey is the (node, parent node) pair a token is read under.
type fieldKey struct {
	node   string
	parent string
}

// anyParent matches every parent node.
const anyParent = "*"

// fieldTable routes tokens by node context. VRML 1.0, VRML 2.0 and the X3D
// classic encoding spell some nodes differently, all spellings share a sink.
var fieldTable = map[fieldKey]field{
	{"point", "Coordinate"}:          fieldVertex,
	{"point", "Coordinate3"}:         fieldVertex,
	{"point", "TextureCoordinate"}:   fieldTexCoord,
	{"point", "TextureCoordinate2"}:  fieldTexCoord,
	{"coordIndex", "IndexedFaceSet"}: fieldFace,
	{"color", "Color"}:               fieldColor,
	{"diffuseColor", "Material"}:     fieldColor,
	{"vector", "Normal"}:             fieldNormal,
	{"url", "ImageTexture"}:          fieldTextureURLList,
	{"ImageTexture", anyParent}:      fieldTextureURL,
	{"Texture2", anyParent}:          fieldTextureFilename,
	{"MaterialBinding", anyParent}:   fieldColorBinding,
	{"NormalBinding", anyParent}:     fieldNormalBinding,
}

// lookupField returns the field for tokens read in node under parent.
// An exact (node, parent) entry wins over an anyParent entry.
func lookupField(node, parent string) field {
	if f, ok := fieldTable[fieldKey{node, parent}]; ok {
		return f
	}
	return fieldTable[fieldKey{node, anyParent}]
}

// Binding values honored as per-vertex. An unset binding is also accepted.
func perVertex(binding string) bool {
	switch binding {
	case "", "PER_VERTEX", "PER_VERTEX_INDEXED":
		return true
	}
	return false
}
