package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/meshdebug/internal/inspector"
)

// ErrQuit is returned by Exec for the quit command.
var ErrQuit = errors.New("quit")

const helpText = `commands:
  next, n          step to the next face
  prev, p          step to the previous face
  jump N           jump to face N
  pick X Y         jump to the face under pixel X,Y of the frame
  select NAME      select an object by name or path
  cycle            select the next object with a mesh
  summary          print the face readout
  render [FILE]    write the overlay frame as PNG
  list             list objects with meshes
  quit             exit`

// REPL reads commands from in line by line and writes results to out until
// quit or end of input.
func (s *Session) REPL(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		err := s.Exec(scanner.Text(), out)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

// Exec runs one command line. Navigation commands always print the
// resulting face position, with the rejection reason first when the command
// was refused.
func (s *Session) Exec(line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	s.log.Debug("exec", zap.String("command", cmd), zap.Strings("args", args))

	switch cmd {
	case "next", "n":
		return s.navigate(out, s.insp.Next)
	case "prev", "previous", "p":
		return s.navigate(out, s.insp.Previous)
	case "jump", "j":
		if len(args) != 1 {
			return fmt.Errorf("usage: jump N")
		}
		face, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid face %q", args[0])
		}
		return s.navigate(out, func() (inspector.State, error) { return s.insp.JumpTo(face) })
	case "pick":
		if len(args) != 2 {
			return fmt.Errorf("usage: pick X Y")
		}
		x, errX := strconv.ParseFloat(args[0], 32)
		y, errY := strconv.ParseFloat(args[1], 32)
		if errX != nil || errY != nil {
			return fmt.Errorf("invalid pixel %q %q", args[0], args[1])
		}
		return s.navigate(out, func() (inspector.State, error) { return s.PickAt(float32(x), float32(y)) })
	case "select", "s":
		if len(args) == 0 {
			return fmt.Errorf("usage: select NAME")
		}
		return s.reportSelection(out, s.Select(strings.Join(args, " ")))
	case "cycle":
		return s.reportSelection(out, s.CycleSelection())
	case "summary":
		fmt.Fprintln(out, s.insp.Summary())
		return nil
	case "render":
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		written, err := s.Snapshot(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", written)
		return nil
	case "list":
		s.list(out)
		return nil
	case "help", "?":
		fmt.Fprintln(out, helpText)
		return nil
	case "quit", "exit", "q":
		return ErrQuit
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (s *Session) navigate(out io.Writer, run func() (inspector.State, error)) error {
	st, err := run()
	if errors.Is(err, inspector.ErrNoBinding) {
		fmt.Fprintln(out, inspector.NoMeshMessage)
		return nil
	}
	if err != nil {
		fmt.Fprintf(out, "rejected: %v\n", err)
	}
	fmt.Fprintln(out, st)
	return nil
}

func (s *Session) reportSelection(out io.Writer, err error) error {
	if errors.Is(err, ErrUnknownObject) {
		return err
	}
	b := s.insp.Binding()
	if b == nil {
		if errors.Is(err, inspector.ErrMalformedMesh) {
			fmt.Fprintf(out, "rejected: %v\n", err)
		}
		fmt.Fprintln(out, inspector.NoMeshMessage)
		return nil
	}
	fmt.Fprintf(out, "selected %s (%s)\n", b.Target.Path(), b.Kind)
	fmt.Fprintln(out, s.insp.State())
	return nil
}

func (s *Session) list(out io.Writer) {
	active := s.selection.ActiveObject()
	for _, o := range s.scene.MeshObjects() {
		mark := " "
		if o == active {
			mark = "*"
		}
		var faces int
		switch {
		case o.MeshFilter != nil:
			faces = o.MeshFilter.SharedMesh().FaceCount()
		case o.SkinnedMesh != nil:
			faces = o.SkinnedMesh.SharedMesh().FaceCount()
		}
		fmt.Fprintf(out, "%s %s (%d faces)\n", mark, o.Path(), faces)
	}
}
