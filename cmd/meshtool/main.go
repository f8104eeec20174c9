// meshtool is a CLI utility for inspecting and converting VRML, X3D and
// Inventor triangle meshes.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/vrmlmesh/internal/config"
	"github.com/Faultbox/vrmlmesh/internal/logger"
	"github.com/Faultbox/vrmlmesh/pkg/mesh"
	"github.com/Faultbox/vrmlmesh/pkg/vrml"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Source != "" {
		logger.Debug("config loaded", zap.String("source", cfg.Source))
	}

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	if err := run(cfg, args[0], args[1:]); err != nil {
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, command string, args []string) error {
	switch command {
	case "info":
		return cmdInfo(cfg, args)
	case "check":
		return cmdCheck(cfg, args)
	case "bounds":
		return cmdBounds(cfg, args)
	case "border":
		return cmdBorder(cfg, args)
	case "normals":
		return cmdNormals(cfg, args)
	case "convert":
		return cmdConvert(cfg, args)
	case "config":
		return cmdConfig(cfg, args)
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Println(`meshtool - VRML / X3D / Inventor mesh utility

Usage:
  meshtool [flags] <command> [arguments]

Commands:
  info <file>              Show mesh summary
  check <file>             Validate mesh consistency
  bounds <file>            Print bounding box and bounding sphere
  border <file>            List border vertices and edges
  normals <file>           Compute normals and report degenerate geometry
  convert <in> <out>       Rewrite a mesh as VRML 2.0
  config <path>            Write the effective configuration as YAML

Flags:
  -config <path>   Config file (default $MESHTOOL_CONFIG, ./meshtool.yaml,
                   ./.meshtool.yaml, then the user config directory)
  -debug           Debug logging
  -log-file <path> Also log to a rotating file
  -strict          Reject malformed faces and attribute arrays
  -keep-normals    Keep normals read from input
  -write-normals   Write vertex normals on convert

Examples:
  meshtool info bunny.wrl
  meshtool -strict check scan.x3dv
  meshtool -write-normals convert model.iv model.wrl`)
}

// readMesh loads the file named by the first argument.
func readMesh(cfg *config.Config, args []string, usage string) (*mesh.Mesh, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("usage: meshtool %s", usage)
	}

	opts, err := cfg.ReaderOptions(logger.Log)
	if err != nil {
		return nil, err
	}

	m, err := vrml.ReadFile(args[0], opts)
	if err != nil {
		var fe *vrml.FormatError
		if errors.As(err, &fe) {
			logger.Debug("format error", zap.Int("line", fe.Line), zap.String("token", fe.Token))
		}
		return nil, err
	}

	logger.Debug("mesh loaded",
		zap.String("file", args[0]),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", len(m.Faces)),
	)
	return m, nil
}

// updateNormals computes normals and logs degenerate geometry.
func updateNormals(m *mesh.Mesh) mesh.NormalStats {
	stats := m.UpdateNormals()
	if stats.Degenerate() {
		logger.Warn("degenerate geometry, zero normals produced",
			zap.String("mesh", m.Name),
			zap.Int("degenerate_faces", stats.DegenerateFaces),
			zap.Int("isolated_vertices", stats.IsolatedVertices),
		)
	}
	return stats
}

func cmdInfo(cfg *config.Config, args []string) error {
	m, err := readMesh(cfg, args, "info <file>")
	if err != nil {
		return err
	}

	fmt.Println(m)
	fmt.Printf("  Border edges :       %d\n", len(mesh.BorderEdges(m)))
	fmt.Printf("  Non-manifold edges : %d\n", len(mesh.NonManifoldEdges(m)))
	return nil
}

func cmdCheck(cfg *config.Config, args []string) error {
	m, err := readMesh(cfg, args, "check <file>")
	if err != nil {
		return err
	}

	if err := mesh.Check(m); err != nil {
		return fmt.Errorf("%s: %w", m.Name, err)
	}

	fmt.Printf("%s: OK (%d vertices, %d faces)\n", m.Name, len(m.Vertices), len(m.Faces))
	return nil
}

func cmdBounds(cfg *config.Config, args []string) error {
	m, err := readMesh(cfg, args, "bounds <file>")
	if err != nil {
		return err
	}

	pmin, pmax := mesh.BoundingBox(m)
	center, radius := mesh.BoundingSphere(m)

	fmt.Printf("Box min:  %g %g %g\n", pmin.X, pmin.Y, pmin.Z)
	fmt.Printf("Box max:  %g %g %g\n", pmax.X, pmax.Y, pmax.Z)
	fmt.Printf("Center:   %g %g %g\n", center.X, center.Y, center.Z)
	fmt.Printf("Radius:   %g\n", radius)
	return nil
}

func cmdBorder(cfg *config.Config, args []string) error {
	m, err := readMesh(cfg, args, "border <file>")
	if err != nil {
		return err
	}
	if err := mesh.Check(m); err != nil {
		return fmt.Errorf("%s: %w", m.Name, err)
	}

	count := 0
	for i, b := range mesh.BorderVertices(m) {
		if b {
			fmt.Printf("vertex %d\n", i)
			count++
		}
	}
	for _, e := range mesh.BorderEdges(m) {
		fmt.Printf("edge %d %d\n", e.A, e.B)
	}

	fmt.Fprintf(os.Stderr, "\n(%d border vertices)\n", count)
	return nil
}

func cmdNormals(cfg *config.Config, args []string) error {
	m, err := readMesh(cfg, args, "normals <file>")
	if err != nil {
		return err
	}
	if err := mesh.Check(m); err != nil {
		return fmt.Errorf("%s: %w", m.Name, err)
	}

	stats := updateNormals(m)
	fmt.Printf("Face normals:      %d\n", len(m.FaceNormals))
	fmt.Printf("Vertex normals:    %d\n", len(m.VertexNormals))
	fmt.Printf("Degenerate faces:  %d\n", stats.DegenerateFaces)
	fmt.Printf("Isolated vertices: %d\n", stats.IsolatedVertices)
	return nil
}

func cmdConvert(cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: meshtool convert <in> <out>")
	}

	m, err := readMesh(cfg, args, "convert <in> <out>")
	if err != nil {
		return err
	}

	wopts := cfg.WriterOptions()
	if wopts.Normals && len(m.VertexNormals) != len(m.Vertices) {
		if err := mesh.Check(m); err != nil {
			return fmt.Errorf("%s: %w", m.Name, err)
		}
		updateNormals(m)
	}

	if err := vrml.WriteFile(args[1], m, wopts); err != nil {
		return err
	}

	logger.Info("converted",
		zap.String("from", args[0]),
		zap.String("to", args[1]),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", len(m.Faces)),
	)
	return nil
}

func cmdConfig(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: meshtool config <path>")
	}
	if err := cfg.SaveTo(args[0]); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("Wrote %s\n", args[0])
	return nil
}
