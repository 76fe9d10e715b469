package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fzft/go-hashset/hashset"
	"github.com/pkg/errors"
)

var (
	errQuit       = errors.New("quit")
	errNotInteger = errors.New("ERR value is not an integer")
	errNoSnapshot = errors.New("ERR no snapshot, use SNAPSHOT first")
)

// Session executes REPL commands against one set.
type Session interface {
	// Exec runs one command. It returns errQuit when the session should end.
	Exec(argv []string) error
	// Load inserts keys without writing a reply.
	Load(keys []string) error
	Prompt() string
}

type session[K any] struct {
	set      *hashset.Set[K]
	snapshot *hashset.Set[K]
	parse    func(string) (K, error)
	out      io.Writer
}

// NewSession creates a session over an empty set shaped by cfg.
func NewSession(cfg *Config, out io.Writer) (Session, error) {
	opts, err := cfg.SetOptions()
	if err != nil {
		return nil, err
	}
	switch cfg.KeyType {
	case KeyTypeInt:
		return &session[int64]{
			set:   hashset.New[int64](hashset.IntHasher[int64]{}, opts...),
			parse: parseInt,
			out:   out,
		}, nil
	default:
		return &session[string]{
			set:   hashset.New[string](hashset.StringHasher{}, opts...),
			parse: func(s string) (string, error) { return s, nil },
			out:   out,
		}, nil
	}
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errNotInteger
	}
	return n, nil
}

func (s *session[K]) Prompt() string {
	return fmt.Sprintf("hset[%d/%d]> ", s.set.Size(), s.set.BucketCount())
}

func (s *session[K]) Exec(argv []string) error {
	if len(argv) == 0 {
		return nil
	}
	name := strings.ToUpper(argv[0])
	doc, ok := lookupCommand(name)
	if !ok {
		return errors.Errorf("ERR unknown command '%s'", argv[0])
	}
	args := argv[1:]
	if len(args) < doc.minArgs || (doc.maxArgs >= 0 && len(args) > doc.maxArgs) {
		return errors.Errorf("ERR wrong number of arguments for '%s' command", strings.ToLower(doc.name))
	}

	switch doc.name {
	case "INSERT":
		keys, err := s.parseKeys(args)
		if err != nil {
			return err
		}
		n := 0
		for _, key := range keys {
			if _, inserted := s.set.Insert(key); inserted {
				n++
			}
		}
		s.integer(n)
	case "ERASE":
		keys, err := s.parseKeys(args)
		if err != nil {
			return err
		}
		n := 0
		for _, key := range keys {
			n += s.set.Erase(key)
		}
		s.integer(n)
	case "COUNT":
		key, err := s.parse(args[0])
		if err != nil {
			return err
		}
		s.integer(s.set.Count(key))
	case "FIND":
		key, err := s.parse(args[0])
		if err != nil {
			return err
		}
		it := s.set.Find(key)
		if !it.Valid() {
			fmt.Fprintln(s.out, "(nil)")
			break
		}
		fmt.Fprintf(s.out, "\"%v\" @ bucket %d\n", it.Key(), it.Bucket())
	case "SIZE":
		s.integer(s.set.Size())
	case "EMPTY":
		s.boolean(s.set.Empty())
	case "CLEAR":
		s.set.Clear()
		s.ok()
	case "KEYS":
		if s.set.Empty() {
			fmt.Fprintln(s.out, "(empty set)")
			break
		}
		i := 1
		for key := range s.set.All() {
			fmt.Fprintf(s.out, "%d) \"%v\"\n", i, key)
			i++
		}
	case "DUMP":
		return s.set.Dump(s.out)
	case "STATS":
		fmt.Fprintf(s.out, "buckets=%d size=%d load=%.3f max_load=%.2f\n",
			s.set.BucketCount(), s.set.Size(), s.set.LoadFactor(), s.set.MaxLoadFactor())
	case "SNAPSHOT":
		s.snapshot = s.set.Clone()
		s.ok()
	case "RESTORE":
		if s.snapshot == nil {
			return errNoSnapshot
		}
		s.set.Assign(s.snapshot)
		s.ok()
	case "DIFF":
		if s.snapshot == nil {
			return errNoSnapshot
		}
		s.boolean(s.set.Equal(s.snapshot))
	case "SWAP":
		if s.snapshot == nil {
			return errNoSnapshot
		}
		s.set.Swap(s.snapshot)
		s.ok()
	case "HELP":
		s.help(args)
	case "QUIT":
		return errQuit
	}
	return nil
}

func (s *session[K]) Load(args []string) error {
	keys, err := s.parseKeys(args)
	if err != nil {
		return err
	}
	s.set.InsertAll(keys...)
	return nil
}

func (s *session[K]) parseKeys(args []string) ([]K, error) {
	keys := make([]K, 0, len(args))
	for _, arg := range args {
		key, err := s.parse(arg)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *session[K]) integer(n int) {
	fmt.Fprintf(s.out, "(integer) %d\n", n)
}

func (s *session[K]) boolean(b bool) {
	if b {
		s.integer(1)
	} else {
		s.integer(0)
	}
}

func (s *session[K]) ok() {
	fmt.Fprintln(s.out, "OK")
}

func (s *session[K]) help(args []string) {
	if len(args) == 1 {
		doc, ok := lookupCommand(strings.ToUpper(args[0]))
		if !ok {
			fmt.Fprintf(s.out, "No help for '%s'\n", args[0])
			return
		}
		fmt.Fprintf(s.out, "  %s %s\n  summary: %s\n", doc.name, doc.params, doc.summary)
		return
	}
	for _, doc := range commandTable {
		fmt.Fprintf(s.out, "%-9s %-15s %s\n", doc.name, doc.params, doc.summary)
	}
}
