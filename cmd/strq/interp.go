package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"deedles.dev/strq"
)

type opKind int

const (
	opNew opKind = iota
	opFree
	opPushFront
	opPushBack
	opPopFront
	opReverse
	opSort
	opSize
	opShow
	opHelp
	opQuit
)

// An op is one parsed harness command.
type op struct {
	kind   opKind
	value  string // payload for inserts
	count  int    // repeat count for inserts
	expect string // expected value for rh, if any
	check  bool
	alg    strq.Algorithm
}

var errUnbalancedQuotes = errors.New("unbalanced quotes")

func errArity(cmd string) error {
	return fmt.Errorf("wrong number of arguments for %q", cmd)
}

// tokenize splits a command line on whitespace, honoring double quotes
// around payloads that contain spaces.
func tokenize(line string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
		open    bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = quoted || !open
			open = !open
		case (r == ' ' || r == '\t') && !open:
			if current.Len() > 0 || quoted {
				tokens = append(tokens, current.String())
				current.Reset()
				quoted = false
			}
		default:
			current.WriteRune(r)
		}
	}
	if open {
		return nil, errUnbalancedQuotes
	}
	if current.Len() > 0 || quoted {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}

// parseOp parses one line into an op. It reports ok=false for blank
// lines and comments.
func parseOp(line string) (_ *op, ok bool, _ error) {
	if s := strings.TrimSpace(line); s == "" || strings.HasPrefix(s, "#") {
		return nil, false, nil
	}

	tokens, err := tokenize(line)
	if err != nil {
		return nil, false, err
	}
	name, args := strings.ToLower(tokens[0]), tokens[1:]

	o := &op{count: 1}
	switch name {
	case "new":
		o.kind = opNew
	case "free":
		o.kind = opFree
	case "ih", "it":
		o.kind = opPushFront
		if name == "it" {
			o.kind = opPushBack
		}
		switch len(args) {
		case 2:
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return nil, false, fmt.Errorf("repeat count must be a positive integer, got %q", args[1])
			}
			o.count = n
			fallthrough
		case 1:
			o.value = args[0]
		default:
			return nil, false, errArity(name)
		}
	case "rh":
		o.kind = opPopFront
		switch len(args) {
		case 1:
			o.expect = args[0]
			o.check = true
		case 0:
		default:
			return nil, false, errArity(name)
		}
	case "reverse":
		o.kind = opReverse
	case "sort":
		o.kind = opSort
		switch {
		case len(args) == 0 || args[0] == "merge":
			o.alg = strq.Merge
		case args[0] == "quick":
			o.alg = strq.Partition
		default:
			return nil, false, fmt.Errorf("unknown sort algorithm %q", args[0])
		}
	case "size":
		o.kind = opSize
	case "show":
		o.kind = opShow
	case "help":
		o.kind = opHelp
	case "quit", "exit":
		o.kind = opQuit
	default:
		return nil, false, fmt.Errorf("unknown command %q", name)
	}
	return o, true, nil
}

// An interp applies parsed ops to a single queue. The queue starts
// absent; operations before "new" exercise the library's nil handling.
type interp struct {
	q     *strq.Queue
	out   io.Writer
	quiet bool
}

func newInterp(out io.Writer, quiet bool) *interp {
	return &interp{out: out, quiet: quiet}
}

func (it *interp) run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		o, ok, err := parseOp(sc.Text())
		if err != nil {
			fmt.Fprintf(it.out, "error: %v\n", err)
			continue
		}
		if !ok {
			continue
		}
		if o.kind == opQuit {
			return nil
		}
		it.eval(o)
	}
	return sc.Err()
}

func (it *interp) eval(o *op) {
	switch o.kind {
	case opNew:
		it.q = strq.New()

	case opFree:
		it.q.Clear()
		it.q = nil

	case opPushFront, opPushBack:
		push := it.q.PushFront
		if o.kind == opPushBack {
			push = it.q.PushBack
		}
		for range o.count {
			if !push(o.value) {
				fmt.Fprintln(it.out, "error: insert failed, no queue")
				break
			}
		}

	case opPopFront:
		buf := make([]byte, 256)
		if !it.q.PopFrontInto(buf) {
			fmt.Fprintln(it.out, "error: remove failed, queue absent or empty")
			break
		}
		v := string(buf[:bytes.IndexByte(buf, 0)])
		fmt.Fprintf(it.out, "removed %q\n", v)
		if o.check && v != o.expect {
			fmt.Fprintf(it.out, "error: removed %q, expected %q\n", v, o.expect)
		}

	case opReverse:
		it.q.Reverse()

	case opSort:
		it.q.SortBy(o.alg)

	case opSize:
		fmt.Fprintf(it.out, "size = %d\n", it.q.Len())

	case opShow:
		it.show()
		return

	case opHelp:
		fmt.Fprint(it.out, helpText)
		return
	}

	if !it.quiet {
		it.show()
	}
}

func (it *interp) show() {
	if it.q == nil {
		fmt.Fprintln(it.out, "q = nil")
		return
	}
	fmt.Fprintf(it.out, "q = %q\n", slices.Collect(it.q.All()))
}

const helpText = `commands:
  new             create a fresh queue
  free            discard the current queue
  ih <s> [n]      insert s at the head, n times
  it <s> [n]      insert s at the tail, n times
  rh [expected]   remove the head, optionally checking its value
  reverse         reverse the queue in place
  sort [merge|quick]
                  sort the queue ascending
  size            print the element count
  show            print the queue contents
  quit            exit
`
