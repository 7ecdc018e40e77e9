// Package meow is the front end and evaluator for the meow scripting
// language: source text is scanned into cat-themed tokens, parsed into an
// AST by recursive descent, and executed by a tree-walking interpreter with
// lexical scoping.
package meow

import (
	"io"
	"strings"

	"github.com/meow-lang/meow-lang/internal/diag"
	"github.com/meow-lang/meow-lang/internal/interp"
	"github.com/meow-lang/meow-lang/internal/parser"
)

// Option configures a Run call.
type Option func(*options)

type options struct {
	filename string
	output   io.Writer
	session  *Session
}

// WithFilename attributes diagnostics to the given source filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithOutput streams printed lines to out as they are produced, in addition
// to collecting them on the Result.
func WithOutput(out io.Writer) Option {
	return func(o *options) {
		o.output = out
	}
}

// Result is the outcome of running a piece of source text.
type Result struct {
	// Output holds the printed lines in order. Output produced before a
	// failure is kept.
	Output []string

	// Value is the value of the last expression statement, if any. The REPL
	// uses it to echo results.
	Value interp.Value

	// Diagnostic is nil on success. A failing run carries exactly one
	// diagnostic: the first error of the earliest failing stage.
	Diagnostic *diag.Diagnostic
}

// Failed reports whether the run produced a diagnostic.
func (r *Result) Failed() bool {
	return r.Diagnostic != nil
}

// Run lexes, parses and evaluates source. Lexing and parsing complete before
// evaluation begins; a lex or parse error means nothing is evaluated.
func Run(source string, opts ...Option) *Result {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	result := &Result{}
	rec := &lineRecorder{result: result, tee: cfg.output}

	parserOpts := make([]parser.Option, 0, 1)
	if cfg.filename != "" {
		parserOpts = append(parserOpts, parser.WithFilename(cfg.filename))
	}

	p := parser.New(source, parserOpts...)
	program := p.Parse()

	if lexErrs := p.LexErrors(); len(lexErrs) > 0 {
		d := lexErrs[0].ToDiagnostic()
		result.Diagnostic = &d
		return result
	}

	if parseErrs := p.Errors(); len(parseErrs) > 0 {
		d := parseErrs[0].ToDiagnostic()
		result.Diagnostic = &d
		return result
	}

	in := cfg.session.interpreter()
	in.SetOutput(rec)
	if err := in.Run(program); err != nil {
		d := err.ToDiagnostic()
		result.Diagnostic = &d
	}
	result.Value = in.LastValue()

	return result
}

// Session keeps a global environment alive across Run calls, which is what a
// REPL needs: a binding made on one line must resolve on the next.
type Session struct {
	in *interp.Interpreter
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		in: interp.New(io.Discard),
	}
}

// Run evaluates source against the session's environment.
func (s *Session) Run(source string, opts ...Option) *Result {
	return Run(source, append(opts, withSession(s))...)
}

func withSession(s *Session) Option {
	return func(o *options) {
		o.session = s
	}
}

// interpreter returns the interpreter to use for a run: the session's
// long-lived one, or a fresh one for a standalone Run call.
func (s *Session) interpreter() *interp.Interpreter {
	if s == nil {
		return interp.New(io.Discard)
	}
	return s.in
}

// lineRecorder collects printed lines on the Result and optionally tees them
// to a writer.
type lineRecorder struct {
	result  *Result
	tee     io.Writer
	partial strings.Builder
}

func (r *lineRecorder) Write(p []byte) (int, error) {
	if r.tee != nil {
		if n, err := r.tee.Write(p); err != nil {
			return n, err
		}
	}

	for _, b := range p {
		if b == '\n' {
			if r.result != nil {
				r.result.Output = append(r.result.Output, r.partial.String())
			}
			r.partial.Reset()
			continue
		}
		r.partial.WriteByte(b)
	}
	return len(p), nil
}
