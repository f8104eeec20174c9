// Package vrml reads and writes triangular meshes in the VRML 1.0,
// VRML 2.0, X3D classic and Inventor text formats.
//
// Only geometry-bearing nodes are interpreted. The reader does not build a
// scene graph: it tracks bracket nesting and routes each value by the names
// of the two innermost enclosing nodes.
package vrml

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/vrmlmesh/pkg/encoding"
	"github.com/Faultbox/vrmlmesh/pkg/math"
	"github.com/Faultbox/vrmlmesh/pkg/mesh"
)

// MaxLineSize bounds a single input line. Exported files often put a whole
// coordinate array on one line. Longer lines fail with ErrLineTooLong.
const MaxLineSize = 64 * 1024 * 1024

// NormalPolicy selects what happens to normals found in the input.
type NormalPolicy int

const (
	// NormalsRecompute discards parsed normals, callers use Mesh.UpdateNormals.
	NormalsRecompute NormalPolicy = iota
	// NormalsKeep stores parsed per-vertex normals as Mesh.VertexNormals.
	NormalsKeep
)

// String returns the policy name used in configuration files.
func (p NormalPolicy) String() string {
	switch p {
	case NormalsRecompute:
		return "recompute"
	case NormalsKeep:
		return "keep"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// ParseNormalPolicy converts a configuration value to a NormalPolicy.
func ParseNormalPolicy(s string) (NormalPolicy, error) {
	switch s {
	case "recompute", "":
		return NormalsRecompute, nil
	case "keep":
		return NormalsKeep, nil
	default:
		return 0, fmt.Errorf("unknown normal policy %q (want recompute or keep)", s)
	}
}

// Options controls the reader.
type Options struct {
	// Strict turns silently tolerated defects into format errors: a face
	// terminator other than -1, an incomplete tuple at a closing bracket,
	// and color, texture or normal counts that differ from the vertex count.
	Strict bool

	// Normals selects the parsed normals policy.
	Normals NormalPolicy

	// Logger receives debug messages about degraded attributes.
	Logger *zap.Logger
}

// DefaultOptions returns lenient options that recompute normals.
func DefaultOptions() Options {
	return Options{
		Strict:  false,
		Normals: NormalsRecompute,
		Logger:  zap.NewNop(),
	}
}

// ReadFile parses the scene file at path. The mesh is named after path.
func ReadFile(path string, opts Options) (*mesh.Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene file: %w", err)
	}
	defer file.Close()

	return Parse(file, path, opts)
}

// Parse reads a scene from r and returns its mesh. No mesh is returned
// with an error.
func Parse(r io.Reader, name string, opts Options) (*mesh.Mesh, error) {
	return parse(r, name, opts, MaxLineSize)
}

func parse(r io.Reader, name string, opts Options, maxLine int) (*mesh.Mesh, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	scanner := bufio.NewScanner(encoding.NewTextReader(r))
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)

	// The header is the only check made before scanning the rest.
	if !scanner.Scan() {
		if err := scanError(scanner.Err(), 1); err != nil {
			return nil, err
		}
		return nil, &FormatError{Line: 1, Err: ErrInvalidHeader}
	}
	if !checkHeader(scanner.Text()) {
		return nil, &FormatError{Line: 1, Err: ErrInvalidHeader}
	}

	p := newParser(opts)
	p.line = 1
	for scanner.Scan() {
		p.line++
		line := scanner.Text()
		if skipLine(line) {
			continue
		}
		for _, tok := range Tokenize(line) {
			if err := p.token(tok); err != nil {
				return nil, err
			}
		}
	}
	if err := scanError(scanner.Err(), p.line+1); err != nil {
		return nil, err
	}

	return p.finish(name)
}

// scanError classifies a scanner failure at line. Oversized lines are a
// format error, anything else comes from the underlying reader.
func scanError(err error, line int) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bufio.ErrTooLong):
		return &FormatError{Line: line, Err: ErrLineTooLong}
	default:
		return fmt.Errorf("reading line %d: %w", line, err)
	}
}

// parser holds the state of one Parse call.
type parser struct {
	opts  Options
	stack nodeStack
	line  int

	prev  string     // previous non-delimiter token
	n     int        // running index into the current tuple
	tuple [3]float32 // pending values of the current tuple
	face  mesh.Face  // pending indices of the current face
	urlOK bool       // an entry of the current url list was taken

	vertices     []math.Vec3
	faces        []mesh.Face
	colors       []math.Vec3
	normals      []math.Vec3
	textures     []math.Vec2
	textureName  string
	colorBinding string
	normBinding  string
}

func newParser(opts Options) *parser {
	return &parser{
		opts:  opts,
		stack: newNodeStack(),
	}
}

func (p *parser) errorf(err error, tok string) error {
	return &FormatError{Line: p.line, Token: tok, Err: err}
}

// token processes one token.
func (p *parser) token(tok string) error {
	switch tok {
	case ",":
		return nil
	case "[", "{":
		p.stack.open(p.prev)
		p.n = 0
		p.urlOK = false
		return nil
	case "]", "}":
		if err := p.checkTuple(); err != nil {
			return err
		}
		if err := p.stack.close(); err != nil {
			return p.errorf(err, tok)
		}
		p.n = 0
		return nil
	}

	if p.opts.Strict && tok[0] == '"' {
		if _, ok := encoding.Unquote(tok); !ok {
			return p.errorf(ErrUnterminatedString, tok)
		}
	}

	err := p.value(tok)
	p.prev = tok
	return err
}

// checkTuple fails in strict mode when the tuple being read is incomplete
// as its enclosing bracket closes. A face without its trailing terminator
// is complete.
func (p *parser) checkTuple() error {
	if !p.opts.Strict || p.stack.depth() == 0 {
		return nil
	}
	f := lookupField(p.stack.current(), p.stack.parent())
	if f.arity() == 0 || p.n == 0 || (f == fieldFace && p.n == 3) {
		return nil
	}
	return p.errorf(ErrIncompleteTuple, p.stack.current())
}

// value routes a non-delimiter token by node context and previous token.
func (p *parser) value(tok string) error {
	// Binding flags may appear in any node and never carry geometry.
	switch p.prev {
	case "colorPerVertex", "normalPerVertex":
		if tok == "TRUE" || tok == "FALSE" {
			binding := "PER_VERTEX"
			if tok == "FALSE" {
				binding = "PER_FACE"
			}
			if p.prev == "colorPerVertex" {
				p.colorBinding = binding
			} else {
				p.normBinding = binding
			}
			return nil
		}
	}
	if tok == "colorPerVertex" || tok == "normalPerVertex" {
		return nil
	}

	switch f := lookupField(p.stack.current(), p.stack.parent()); f {
	case fieldVertex, fieldColor, fieldNormal:
		done, err := p.accumulate(tok, f.arity())
		if err != nil || !done {
			return err
		}
		v := math.Vec3{X: p.tuple[0], Y: p.tuple[1], Z: p.tuple[2]}
		switch f {
		case fieldVertex:
			p.vertices = append(p.vertices, v)
		case fieldColor:
			p.colors = append(p.colors, v)
		default:
			p.normals = append(p.normals, v)
		}

	case fieldTexCoord:
		done, err := p.accumulate(tok, f.arity())
		if err != nil || !done {
			return err
		}
		p.textures = append(p.textures, math.Vec2{X: p.tuple[0], Y: p.tuple[1]})

	case fieldFace:
		return p.faceIndex(tok)

	case fieldTextureURL:
		if p.prev == "url" {
			p.setTextureName(tok)
		}

	case fieldTextureFilename:
		if p.prev == "filename" {
			p.setTextureName(tok)
		}

	case fieldTextureURLList:
		if !p.urlOK {
			p.urlOK = p.setTextureName(tok)
		}

	case fieldColorBinding:
		if p.prev == "value" {
			p.colorBinding = tok
		}

	case fieldNormalBinding:
		if p.prev == "value" {
			p.normBinding = tok
		}
	}

	return nil
}

// accumulate stores one numeric value of a tuple of the given arity and
// reports whether the tuple is complete.
func (p *parser) accumulate(tok string, arity int) (bool, error) {
	v, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return false, p.errorf(ErrInvalidNumber, tok)
	}
	p.tuple[p.n] = float32(v)
	p.n++
	if p.n == arity {
		p.n = 0
		return true, nil
	}
	return false, nil
}

// faceIndex reads coordIndex values as triangles: three indices followed by
// a terminator that is consumed without being parsed as an index.
func (p *parser) faceIndex(tok string) error {
	if p.n == 3 {
		p.n = 0
		if p.opts.Strict && tok != "-1" {
			return p.errorf(ErrNonTriangularFace, tok)
		}
		return nil
	}

	idx, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return p.errorf(ErrInvalidNumber, tok)
	}
	if idx < 0 || idx > int64(^uint32(0)) {
		return p.errorf(ErrIndexOutOfRange, tok)
	}

	p.face[p.n] = uint32(idx)
	p.n++
	if p.n == 3 {
		p.faces = append(p.faces, p.face)
	}
	return nil
}

// setTextureName keeps tok, unquoted, as the texture reference. Tokens of
// two characters or less, such as "", and strings missing their closing
// quote are ignored. Bare words are taken verbatim.
func (p *parser) setTextureName(tok string) bool {
	if len(tok) <= 2 {
		return false
	}
	name, ok := encoding.Unquote(tok)
	if !ok && tok[0] == '"' {
		p.opts.Logger.Debug("ignoring unterminated texture name",
			zap.Int("line", p.line), zap.String("token", tok))
		return false
	}
	if name == "" {
		return false
	}
	p.textureName = name
	return true
}

// finish validates the collected arrays and assembles the mesh.
func (p *parser) finish(name string) (*mesh.Mesh, error) {
	log := p.opts.Logger

	n := uint32(len(p.vertices))
	for i, f := range p.faces {
		if f[0] >= n || f[1] >= n || f[2] >= n {
			return nil, &FormatError{
				Err: fmt.Errorf("%w: face %d %v with %d vertices", ErrIndexOutOfRange, i, f, n),
			}
		}
	}

	m := &mesh.Mesh{
		Name:        name,
		Vertices:    p.vertices,
		Faces:       p.faces,
		TextureName: p.textureName,
	}

	colors, err := p.perVertexAttribute("colors", len(p.colors), p.colorBinding)
	if err != nil {
		return nil, err
	}
	if colors {
		m.Colors = p.colors
	}

	textures, err := p.perVertexAttribute("texture coordinates", len(p.textures), "")
	if err != nil {
		return nil, err
	}
	if textures {
		m.Textures = p.textures
	}

	if len(p.normals) > 0 {
		switch p.opts.Normals {
		case NormalsKeep:
			keep, err := p.perVertexAttribute("normals", len(p.normals), p.normBinding)
			if err != nil {
				return nil, err
			}
			if keep {
				m.VertexNormals = p.normals
			}
		default:
			log.Debug("discarding parsed normals", zap.Int("normals", len(p.normals)))
		}
	}

	log.Debug("parsed scene file",
		zap.String("name", name),
		zap.Int("lines", p.line),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", len(m.Faces)),
		zap.Int("colors", len(m.Colors)),
		zap.Int("textures", len(m.Textures)),
	)

	return m, nil
}

// perVertexAttribute decides whether an attribute array of count elements
// is kept. Arrays that are not bound per vertex or whose length differs
// from the vertex count are dropped, or rejected in strict mode.
func (p *parser) perVertexAttribute(what string, count int, binding string) (bool, error) {
	if count == 0 {
		return false, nil
	}
	log := p.opts.Logger

	if !perVertex(binding) {
		log.Debug("dropping attribute without per-vertex binding",
			zap.String("attribute", what), zap.String("binding", binding))
		return false, nil
	}

	if count != len(p.vertices) {
		if p.opts.Strict {
			return false, &FormatError{
				Err: fmt.Errorf("%w: %d %s, %d vertices", ErrAttributeCount, count, what, len(p.vertices)),
			}
		}
		log.Debug("dropping attribute with mismatched count",
			zap.String("attribute", what), zap.Int("count", count), zap.Int("vertices", len(p.vertices)))
		return false, nil
	}

	return true, nil
}
