package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/calvinalkan/vec/pkg/vector"
)

// opHelp lists the session ops in help order. The first word of each entry
// is the op name, used for completion.
var opHelp = []string{
	"push <v>...            Append values",
	"pushf <v>...           Prepend values, one at a time",
	"pop                    Remove the last element",
	"popf                   Remove the first element",
	"insert <pos> <v>...    Insert values before offset pos",
	"insertr <pos> <a> <b>  Insert stash elements [a, b) before pos",
	"erase <pos> [end]      Erase one element or the range [pos, end)",
	"assign <n> <v>         Replace contents with n copies of v",
	"assignv <v>...         Replace contents with the values",
	"assignr <a> <b>        Replace contents with stash elements [a, b)",
	"reserve <n>            Grow capacity to at least n",
	"shrink                 Drop spare capacity",
	"clear                  Remove all elements, keep capacity",
	"at <i>                 Print element i (checked)",
	"set <i> <v>            Replace element i (checked)",
	"front                  Print the first element",
	"back                   Print the last element",
	"len                    Print the size",
	"cap                    Print the capacity",
	"dump                   Print capacity, size and every slot",
	"list                   Print the live elements",
	"stash                  Copy the vector into the stash",
	"swap                   Swap the vector with the stash",
	"eq                     Compare the vector with the stash",
	"save <file>            Write a snapshot (atomic)",
	"load <file>            Replace the vector with a snapshot",
	"help                   Show this help",
}

// opNames returns the op names from opHelp.
func opNames() []string {
	names := make([]string, 0, len(opHelp))
	for _, line := range opHelp {
		name, _, _ := strings.Cut(line, " ")
		names = append(names, name)
	}

	return names
}

// executor runs session ops. It hides the element type from callers.
type executor interface {
	Exec(line string) error
}

// newExecutor returns a session for the configured element type.
func newExecutor(cfg Config, o *IO) (executor, error) {
	switch cfg.Elem {
	case ElemInt:
		return newSession(cfg, o, strconv.Atoi), nil
	case ElemString:
		return newSession(cfg, o, func(s string) (string, error) { return s, nil }), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownElem, cfg.Elem)
	}
}

// session holds the working vector and a stash register for value-semantics
// ops (stash, swap, eq, insertr, assignr).
type session[T comparable] struct {
	cfg   Config
	io    *IO
	parse func(string) (T, error)
	vec   *vector.Vector[T]
	stash *vector.Vector[T]
}

func newSession[T comparable](cfg Config, o *IO, parse func(string) (T, error)) *session[T] {
	v := &vector.Vector[T]{}
	v.Reserve(cfg.Capacity)

	return &session[T]{
		cfg:   cfg,
		io:    o,
		parse: parse,
		vec:   v,
		stash: &vector.Vector[T]{},
	}
}

// Exec runs one op line. Blank lines and lines starting with # are ignored.
func (s *session[T]) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	fields := strings.Fields(line)
	op, args := strings.ToLower(fields[0]), fields[1:]

	err := s.dispatch(op, args)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.cfg.Dump && op != "dump" && op != "help" {
		s.io.Println(s.vec.String())
	}

	return nil
}

func (s *session[T]) dispatch(op string, args []string) error {
	v := s.vec

	switch op {
	case "push":
		return s.eachValue(args, v.PushBack)
	case "pushf":
		return s.eachValue(args, v.PushFront)
	case "pop":
		v.PopBack()
	case "popf":
		v.PopFront()
	case "insert":
		return s.opInsert(args)
	case "insertr":
		return s.opInsertRange(args)
	case "erase":
		return s.opErase(args)
	case "assign":
		return s.opAssign(args)
	case "assignv":
		values, err := s.values(args)
		if err != nil {
			return err
		}

		v.AssignValues(values...)
	case "assignr":
		first, last, err := s.stashRange(args)
		if err != nil {
			return err
		}

		return v.AssignRange(first, last)
	case "reserve":
		n, err := sizeArg(args, 0, "n")
		if err != nil {
			return err
		}

		v.Reserve(n)
	case "shrink":
		v.ShrinkToFit()
	case "clear":
		v.Clear()
	case "at":
		i, err := intArg(args, 0, "index")
		if err != nil {
			return err
		}

		return s.printResult(v.At(i))
	case "set":
		return s.opSet(args)
	case "front":
		return s.printResult(v.Front())
	case "back":
		return s.printResult(v.Back())
	case "len":
		s.io.Println(v.Len())
	case "cap":
		s.io.Println(v.Cap())
	case "dump":
		s.io.Println(v.String())
	case "list":
		s.opList()
	case "stash":
		s.stash.CopyFrom(v)
	case "swap":
		vector.Swap(s.vec, s.stash)
	case "eq":
		if !vector.Equal(s.vec, s.stash) {
			return errNotEqual
		}

		s.io.Println("equal")
	case "save":
		return s.opSave(args)
	case "load":
		return s.opLoad(args)
	case "help", "?":
		s.printHelp()
	default:
		return errUnknownOp
	}

	return nil
}

func (s *session[T]) opInsert(args []string) error {
	pos, err := intArg(args, 0, "pos")
	if err != nil {
		return err
	}

	values, err := s.values(args[1:])
	if err != nil {
		return err
	}

	if len(values) == 0 {
		return fmt.Errorf("%w: value", errMissingArg)
	}

	at := s.vec.Begin().Add(pos)

	var it vector.Iterator[T]
	if len(values) == 1 {
		it, err = s.vec.Insert(at, values[0])
	} else {
		it, err = s.vec.InsertValues(at, values...)
	}

	if err != nil {
		return err
	}

	s.io.Println("@", it.Offset())

	return nil
}

func (s *session[T]) opInsertRange(args []string) error {
	pos, err := intArg(args, 0, "pos")
	if err != nil {
		return err
	}

	first, last, err := s.stashRange(args[1:])
	if err != nil {
		return err
	}

	it, err := s.vec.InsertRange(s.vec.Begin().Add(pos), first, last)
	if err != nil {
		return err
	}

	s.io.Println("@", it.Offset())

	return nil
}

func (s *session[T]) opErase(args []string) error {
	pos, err := intArg(args, 0, "pos")
	if err != nil {
		return err
	}

	first := s.vec.Begin().Add(pos)

	var it vector.Iterator[T]

	if len(args) > 1 {
		end, err := intArg(args, 1, "end")
		if err != nil {
			return err
		}

		it, err = s.vec.EraseRange(first, s.vec.Begin().Add(end))
		if err != nil {
			return err
		}
	} else {
		it, err = s.vec.Erase(first)
		if err != nil {
			return err
		}
	}

	s.io.Println("@", it.Offset())

	return nil
}

func (s *session[T]) opAssign(args []string) error {
	count, err := sizeArg(args, 0, "count")
	if err != nil {
		return err
	}

	if len(args) < 2 {
		return fmt.Errorf("%w: value", errMissingArg)
	}

	x, err := s.parseValue(args[1])
	if err != nil {
		return err
	}

	s.vec.Assign(count, x)

	return nil
}

func (s *session[T]) opSet(args []string) error {
	i, err := intArg(args, 0, "index")
	if err != nil {
		return err
	}

	if len(args) < 2 {
		return fmt.Errorf("%w: value", errMissingArg)
	}

	x, err := s.parseValue(args[1])
	if err != nil {
		return err
	}

	return s.vec.SetAt(i, x)
}

func (s *session[T]) opList() {
	parts := make([]string, 0, s.vec.Len())
	for x := range s.vec.Values() {
		parts = append(parts, fmt.Sprint(x))
	}

	s.io.Println(strings.Join(parts, " "))
}

func (s *session[T]) opSave(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: file", errMissingArg)
	}

	return saveSnapshot(s.path(args[0]), s.cfg.Elem, s.vec)
}

func (s *session[T]) opLoad(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: file", errMissingArg)
	}

	v, err := loadSnapshot[T](s.path(args[0]), s.cfg.Elem)
	if err != nil {
		return err
	}

	s.vec = v

	return nil
}

// stashRange parses "<a> <b>" into iterators over the stash.
func (s *session[T]) stashRange(args []string) (vector.Iterator[T], vector.Iterator[T], error) {
	a, err := intArg(args, 0, "first")
	if err != nil {
		return vector.Iterator[T]{}, vector.Iterator[T]{}, err
	}

	b, err := intArg(args, 1, "last")
	if err != nil {
		return vector.Iterator[T]{}, vector.Iterator[T]{}, err
	}

	if a < 0 || b > s.stash.Len() {
		return vector.Iterator[T]{}, vector.Iterator[T]{}, fmt.Errorf("%w: stash range [%d, %d) with stash size %d", vector.ErrOutOfRange, a, b, s.stash.Len())
	}

	return s.stash.Begin().Add(a), s.stash.Begin().Add(b), nil
}

func (s *session[T]) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(s.cfg.WorkDir, name)
}

func (s *session[T]) printResult(x T, err error) error {
	if err != nil {
		return err
	}

	s.io.Println(x)

	return nil
}

func (s *session[T]) printHelp() {
	s.io.Println("Ops:")

	for _, line := range opHelp {
		s.io.Println("  " + line)
	}

	s.io.Println()
	s.io.Println("Positions are offsets from the front. Lines starting with # are ignored.")
}

func (s *session[T]) eachValue(args []string, fn func(T)) error {
	values, err := s.values(args)
	if err != nil {
		return err
	}

	if len(values) == 0 {
		return fmt.Errorf("%w: value", errMissingArg)
	}

	for _, x := range values {
		fn(x)
	}

	return nil
}

func (s *session[T]) values(args []string) ([]T, error) {
	out := make([]T, 0, len(args))

	for _, arg := range args {
		x, err := s.parseValue(arg)
		if err != nil {
			return nil, err
		}

		out = append(out, x)
	}

	return out, nil
}

func (s *session[T]) parseValue(arg string) (T, error) {
	x, err := s.parse(arg)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %q is not a valid %s", errBadArg, arg, s.cfg.Elem)
	}

	return x, nil
}

func intArg(args []string, idx int, name string) (int, error) {
	if idx >= len(args) {
		return 0, fmt.Errorf("%w: %s", errMissingArg, name)
	}

	n, err := strconv.Atoi(args[idx])
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", errBadArg, name, args[idx])
	}

	return n, nil
}

// sizeArg is intArg for element counts and capacities, limited to
// [0, maxCapacity].
func sizeArg(args []string, idx int, name string) (int, error) {
	n, err := intArg(args, idx, name)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: %s %d is negative", errBadArg, name, n)
	}

	if n > maxCapacity {
		return 0, fmt.Errorf("%w: %s %d exceeds %d", errBadArg, name, n, maxCapacity)
	}

	return n, nil
}
