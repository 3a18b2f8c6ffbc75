// Package opts implements the options surface from spec.md §6.2: the
// `-Xlint`, `-nowarn`, `-deprecation`, `-Xdoclint`, `-Werror`, `-Xmaxerrs`/
// `-Xmaxwarns`, `--add-exports`/`--add-reads`, and `-XD` option families,
// plus an optional `javac-core.yaml` config file for the same settings
// (the driver's non-CLI entry point, e.g. a build-tool integration).
package opts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/javac-core/internal/diag"
	"github.com/funvibe/javac-core/internal/lint"
)

// AddExports / AddReads record a `--add-exports module/package=target` or
// `--add-reads module=target` override, per spec §6.2/§3.9.
type AddExports struct {
	Module, Package string
	Targets         []string
}

type AddReads struct {
	Module  string
	Targets []string
}

// Options is the fully-parsed option set.
type Options struct {
	Lint        lint.Lint
	Deprecation bool
	NoWarn      bool
	Werror      bool
	MaxErrors   int
	MaxWarnings int

	DoclintSubopts []string

	AddExports []AddExports
	AddReads   []AddReads

	// AddModules/LimitModules accumulate `--add-modules`/`--limit-modules`
	// comma-separated module-name lists; PatchModule/ModuleVersion record
	// the per-module `--patch-module <mod>=<path>` and
	// `--module-version <v>` overrides, all delivered to module resolution
	// per spec §6.2 ("the core sees only the resulting module graph").
	AddModules    []string
	LimitModules  []string
	PatchModule   map[string]string
	ModuleVersion string

	// XD holds the `-XD<key>=<value>` / `-XD<key>` undocumented
	// diagnostic-tuning escape hatch, per spec §6.2.
	XD map[string]string
}

// Default mirrors javac's built-in defaults before any flag is applied.
func Default() Options {
	return Options{
		Lint:        lint.Empty(),
		MaxErrors:   100,
		PatchModule: map[string]string{},
		XD:          map[string]string{},
	}
}

// ParseError reports a malformed option string.
type ParseError struct {
	Arg    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid option %q: %s", e.Arg, e.Reason)
}

// Parse consumes a driver argument vector, applying recognized options in
// order (later flags override earlier ones for scalar settings; list
// settings like AddExports accumulate). Unrecognized arguments are
// returned as leftover positional arguments (source file paths), since
// file discovery is an external collaborator per spec §1.
func Parse(args []string) (Options, []string, error) {
	o := Default()
	var rest []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-nowarn":
			o.NoWarn = true
		case arg == "-deprecation":
			o.Deprecation = true
		case arg == "-Werror":
			o.Werror = true
		case strings.HasPrefix(arg, "-Xlint"):
			if err := applyXlint(&o, arg); err != nil {
				return o, nil, err
			}
		case strings.HasPrefix(arg, "-Xdoclint"):
			o.DoclintSubopts = append(o.DoclintSubopts, xdoclintSubopts(arg)...)
		case strings.HasPrefix(arg, "-Xmaxerrs"):
			v, err := intArgOrInline(arg, "-Xmaxerrs", args, &i)
			if err != nil {
				return o, nil, err
			}
			o.MaxErrors = v
		case strings.HasPrefix(arg, "-Xmaxwarns"):
			v, err := intArgOrInline(arg, "-Xmaxwarns", args, &i)
			if err != nil {
				return o, nil, err
			}
			o.MaxWarnings = v
		case strings.HasPrefix(arg, "--add-exports"):
			v, err := stringArgOrInline(arg, "--add-exports", args, &i)
			if err != nil {
				return o, nil, err
			}
			ae, err := parseAddExports(v)
			if err != nil {
				return o, nil, err
			}
			o.AddExports = append(o.AddExports, ae)
		case strings.HasPrefix(arg, "--add-reads"):
			v, err := stringArgOrInline(arg, "--add-reads", args, &i)
			if err != nil {
				return o, nil, err
			}
			ar, err := parseAddReads(v)
			if err != nil {
				return o, nil, err
			}
			o.AddReads = append(o.AddReads, ar)
		case strings.HasPrefix(arg, "--add-modules"):
			v, err := stringArgOrInline(arg, "--add-modules", args, &i)
			if err != nil {
				return o, nil, err
			}
			o.AddModules = append(o.AddModules, strings.Split(v, ",")...)
		case strings.HasPrefix(arg, "--limit-modules"):
			v, err := stringArgOrInline(arg, "--limit-modules", args, &i)
			if err != nil {
				return o, nil, err
			}
			o.LimitModules = append(o.LimitModules, strings.Split(v, ",")...)
		case strings.HasPrefix(arg, "--patch-module"):
			v, err := stringArgOrInline(arg, "--patch-module", args, &i)
			if err != nil {
				return o, nil, err
			}
			mod, path, ok := strings.Cut(v, "=")
			if !ok {
				return o, nil, &ParseError{Arg: arg, Reason: "expected module=path"}
			}
			o.PatchModule[mod] = path
		case strings.HasPrefix(arg, "--module-version"):
			v, err := stringArgOrInline(arg, "--module-version", args, &i)
			if err != nil {
				return o, nil, err
			}
			o.ModuleVersion = v
		case strings.HasPrefix(arg, "-XD"):
			k, v, _ := strings.Cut(strings.TrimPrefix(arg, "-XD"), "=")
			o.XD[k] = v
		default:
			rest = append(rest, arg)
		}
	}
	return o, rest, nil
}

func applyXlint(o *Options, arg string) error {
	rest := strings.TrimPrefix(arg, "-Xlint")
	if rest == "" {
		o.Lint = lint.AllEnabled()
		return nil
	}
	if !strings.HasPrefix(rest, ":") {
		return &ParseError{Arg: arg, Reason: "expected -Xlint or -Xlint:categories"}
	}
	for _, tok := range strings.Split(rest[1:], ",") {
		if tok == "all" {
			o.Lint = lint.AllEnabled()
			continue
		}
		if tok == "none" {
			o.Lint = lint.Empty()
			continue
		}
		minus := strings.HasPrefix(tok, "-")
		name := strings.TrimPrefix(tok, "-")
		cat, ok := lint.CategoryByName(name)
		if !ok {
			return &ParseError{Arg: arg, Reason: fmt.Sprintf("unknown lint category %q", name)}
		}
		if minus {
			o.Lint = o.Lint.Minus(cat)
		} else {
			o.Lint = o.Lint.Plus(cat)
		}
	}
	return nil
}

func xdoclintSubopts(arg string) []string {
	rest := strings.TrimPrefix(arg, "-Xdoclint")
	rest = strings.TrimPrefix(rest, ":")
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}

func intArgOrInline(arg, flag string, args []string, i *int) (int, error) {
	s, err := stringArgOrInline(arg, flag, args, i)
	if err != nil {
		return 0, err
	}
	v, convErr := strconv.Atoi(s)
	if convErr != nil {
		return 0, &ParseError{Arg: arg, Reason: "expected an integer"}
	}
	return v, nil
}

func stringArgOrInline(arg, flag string, args []string, i *int) (string, error) {
	if rest := strings.TrimPrefix(arg, flag); strings.HasPrefix(rest, "=") {
		return rest[1:], nil
	}
	if *i+1 >= len(args) {
		return "", &ParseError{Arg: arg, Reason: "missing value"}
	}
	*i++
	return args[*i], nil
}

func parseAddExports(v string) (AddExports, error) {
	modPkg, targets, ok := strings.Cut(v, "=")
	if !ok {
		return AddExports{}, &ParseError{Arg: v, Reason: "expected module/package=target(,target)*"}
	}
	mod, pkg, ok := strings.Cut(modPkg, "/")
	if !ok {
		return AddExports{}, &ParseError{Arg: v, Reason: "expected module/package"}
	}
	return AddExports{Module: mod, Package: pkg, Targets: strings.Split(targets, ",")}, nil
}

// ApplyTo configures log from o: -nowarn/-Werror/-Xmaxerrs/-Xmaxwarns map
// directly onto Log's matching fields, and CurrentLint seeds the
// outermost lint scope that per-declaration @SuppressWarnings augments
// (per spec §4.1 and internal/lint's Augment).
func (o Options) ApplyTo(log *diag.Log) {
	log.NoWarn = o.NoWarn
	log.WError = o.Werror
	log.MaxErrors = o.MaxErrors
	log.MaxWarnings = o.MaxWarnings
	log.CurrentLint = o.Lint
}

func parseAddReads(v string) (AddReads, error) {
	mod, targets, ok := strings.Cut(v, "=")
	if !ok {
		return AddReads{}, &ParseError{Arg: v, Reason: "expected module=target(,target)*"}
	}
	return AddReads{Module: mod, Targets: strings.Split(targets, ",")}, nil
}
