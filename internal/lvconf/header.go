package lvconf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const headerGuard = "LV_CONF_H"

// WriteHeader writes s as an lv_conf.h. Every option is defined exactly
// once, grouped by category, in a fixed order.
func WriteHeader(w io.Writer, s *Set) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "/*\n * lv_conf.h - generated by lvconf, do not edit\n */\n\n")
	fmt.Fprintf(bw, "#ifndef %s\n#define %s\n", headerGuard, headerGuard)

	var last Category
	for _, o := range s.options {
		if o.Category != last {
			fmt.Fprintf(bw, "\n/* %s */\n", o.Category)
			last = o.Category
		}
		fmt.Fprintf(bw, "#define %s %s\n", o.Name, o.Value.Define())
	}

	fmt.Fprintf(bw, "\n#endif /* %s */\n", headerGuard)
	return bw.Flush()
}

// HeaderResult is the outcome of ParseHeader.
type HeaderResult struct {
	Set *Set
	// Duplicates lists options defined more than once with the same value.
	// They are dropped, not errors.
	Duplicates []string
}

type define struct {
	name  string
	value string
	line  int
}

// ParseHeader reads an lv_conf.h and builds a Set from it. Options the
// header leaves out keep their Default value; if the header names any
// display driver, only the drivers it enables are selected.
func ParseHeader(r io.Reader) (*HeaderResult, error) {
	defs, err := scanDefines(r)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	res := &HeaderResult{}
	seen := make(map[string]define, len(defs))
	bad := &ValidationError{}

	for _, d := range defs {
		desc, ok := lookupDescriptor(d.name)
		if !ok {
			bad.add(d.name, fmt.Errorf("%w: line %d: unknown option %s", ErrMissingOption, d.line, d.name))
			continue
		}
		if prev, ok := seen[d.name]; ok {
			if !sameValue(desc, prev.value, d.value) {
				bad.add(d.name, fmt.Errorf("%w: line %d defines %s, line %d defines %s",
					ErrConflictingDefinition, prev.line, prev.value, d.line, d.value))
			} else {
				res.Duplicates = append(res.Duplicates, d.name)
			}
			continue
		}
		seen[d.name] = d
	}
	if err := bad.orNil(); err != nil {
		return nil, err
	}

	for _, drv := range AllDrivers() {
		if _, ok := seen[drv.OptionName()]; ok {
			cfg.Display = DriverNone
			break
		}
	}

	// Apply in header order so error messages follow the file.
	for _, d := range defs {
		if seen[d.name].line != d.line {
			continue
		}
		desc, _ := lookupDescriptor(d.name)
		if err := desc.set(&cfg, d.value); err != nil {
			if !errors.Is(err, ErrInvalidConfiguration) {
				err = fmt.Errorf("%w: line %d: %v", ErrMalformedValue, d.line, err)
			}
			bad.add(d.name, err)
		}
	}
	if err := bad.orNil(); err != nil {
		return nil, err
	}

	set, err := BuildFrom(cfg)
	if err != nil {
		return nil, err
	}
	res.Set = set
	return res, nil
}

// sameValue reports whether two spellings of an option decode to the same
// value, so "0", "(0)" and "false" are one definition. Raw text is compared
// when either side does not decode; the apply pass reports that error.
func sameValue(desc descriptor, a, b string) bool {
	va, okA := decodeValue(desc, a)
	vb, okB := decodeValue(desc, b)
	if okA && okB {
		return va == vb
	}
	return a == b
}

func decodeValue(desc descriptor, raw string) (Value, bool) {
	scratch := Default()
	scratch.Display = DriverNone
	if err := desc.set(&scratch, raw); err != nil {
		return Value{}, false
	}
	return desc.get(&scratch), true
}

// scanDefines extracts #define NAME VALUE lines, skipping comments, the
// include guard and blank lines. Conditionals other than the guard are
// rejected since their outcome cannot be known here.
func scanDefines(r io.Reader) ([]define, error) {
	var (
		out     []define
		inBlock bool
		lineNo  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		var line string
		line, inBlock = stripComments(sc.Text(), inBlock)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			return nil, fmt.Errorf("%w: line %d: unexpected %q", ErrMalformedValue, lineNo, line)
		}
		fields := strings.Fields(strings.TrimSpace(strings.TrimPrefix(line, "#")))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "define":
			if len(fields) < 2 {
				return nil, fmt.Errorf("%w: line %d: empty #define", ErrMalformedValue, lineNo)
			}
			if fields[1] == headerGuard {
				continue
			}
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w: line %d: %s has no value", ErrMalformedValue, lineNo, fields[1])
			}
			out = append(out, define{name: fields[1], value: strings.Join(fields[2:], " "), line: lineNo})
		case "ifndef":
			if len(fields) < 2 || fields[1] != headerGuard {
				return nil, fmt.Errorf("%w: line %d: unsupported conditional", ErrMalformedValue, lineNo)
			}
		case "endif", "include", "pragma":
		default:
			return nil, fmt.Errorf("%w: line %d: unsupported directive #%s", ErrMalformedValue, lineNo, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// stripComments removes /* */ and // comments from one line. inBlock says
// whether the line starts inside a block comment; the returned flag says
// whether the next one does.
func stripComments(line string, inBlock bool) (string, bool) {
	var b strings.Builder
	for len(line) > 0 {
		if inBlock {
			end := strings.Index(line, "*/")
			if end < 0 {
				return b.String(), true
			}
			line = line[end+2:]
			inBlock = false
			continue
		}
		start := strings.Index(line, "/*")
		slashes := strings.Index(line, "//")
		if slashes >= 0 && (start < 0 || slashes < start) {
			b.WriteString(line[:slashes])
			return b.String(), false
		}
		if start < 0 {
			b.WriteString(line)
			return b.String(), false
		}
		b.WriteString(line[:start])
		b.WriteByte(' ')
		line = line[start+2:]
		inBlock = true
	}
	return b.String(), inBlock
}
