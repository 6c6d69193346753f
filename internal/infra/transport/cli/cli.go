package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/ormanli/simple-interest/internal/app/interest"
)

// Calculator defines the interface for computing interest.
type Calculator interface {
	Calculate(req interest.Request) (interest.Result, error)
}

// Transport reads calculation inputs from flags or interactive prompts and writes the report.
type Transport struct {
	calculator Calculator
	reader     *bufio.Reader
	out        io.Writer
	errOut     io.Writer
}

// NewTransport creates a new Transport instance.
func NewTransport(calculator Calculator, in io.Reader, out, errOut io.Writer) *Transport {
	return &Transport{
		calculator: calculator,
		reader:     bufio.NewReader(in),
		out:        out,
		errOut:     errOut,
	}
}

// Run handles one invocation with the given command line arguments.
// Invalid numbers and rejected inputs are reported on out and are not errors;
// only usage errors, read failures and self-test failures are returned.
func (t *Transport) Run(args []string) error {
	opts, err := t.parseArgs(args)
	if err != nil {
		return err
	}

	if opts.selfTest {
		return t.runSelfTest()
	}

	req, err := t.acquireRequest(opts)
	if errors.Is(err, interest.ErrInvalidNumber) {
		slog.Debug("Rejected input", "error", err)
		t.writeLine(invalidNumberMessage)
		return nil
	}
	if err != nil {
		return err
	}

	t.writeLine(t.handleRequest(req).String())

	return nil
}

// parseArgs binds short and long flag names to the same values.
func (t *Transport) parseArgs(args []string) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("interest", flag.ContinueOnError)
	fs.SetOutput(t.errOut)
	fs.Var(&opts.principal, "p", "Principal amount")
	fs.Var(&opts.principal, "principal", "Principal amount")
	fs.Var(&opts.rate, "r", "Annual interest rate (percent)")
	fs.Var(&opts.rate, "rate", "Annual interest rate (percent)")
	fs.Var(&opts.time, "t", "Time in years")
	fs.Var(&opts.time, "time", "Time in years")
	fs.BoolVar(&opts.selfTest, "test", false, "Run simple self-test")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", interest.ErrUsage, err)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(t.errOut, "unrecognized arguments: %v\n", fs.Args())
		fs.Usage()
		return nil, fmt.Errorf("%w: unrecognized arguments %v", interest.ErrUsage, fs.Args())
	}

	return opts, nil
}

// acquireRequest fills the request from flags, prompting for each value that was not given.
func (t *Transport) acquireRequest(opts *options) (interest.Request, error) {
	var (
		req interest.Request
		err error
	)

	if req.Principal, err = t.value(opts.principal, "Principal: "); err != nil {
		return interest.Request{}, err
	}
	if req.Rate, err = t.value(opts.rate, "Annual rate (percent): "); err != nil {
		return interest.Request{}, err
	}
	if req.Time, err = t.value(opts.time, "Time (years): "); err != nil {
		return interest.Request{}, err
	}

	return req, nil
}

func (t *Transport) value(f numberFlag, prompt string) (float64, error) {
	if f.set {
		return f.value, nil
	}

	return t.prompt(prompt)
}

// prompt writes the label and parses the next input line. Lines have no length limit.
// End of input before any text counts as an invalid number.
func (t *Transport) prompt(label string) (float64, error) {
	if _, err := io.WriteString(t.out, label); err != nil {
		return 0, fmt.Errorf("writing prompt: %w", err)
	}

	line, err := t.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return 0, interest.ErrInvalidNumber
		}
	}

	return parseNumber(line)
}

// handleRequest runs the calculation and returns a corresponding report.
func (t *Transport) handleRequest(req interest.Request) report {
	result, err := t.calculator.Calculate(req)
	if err != nil {
		slog.Debug("Calculation rejected", "request", req, "error", err)
		return report{err: err}
	}

	slog.Debug("Calculation finished", "request", req, "result", result)

	return report{result: result}
}

func (t *Transport) runSelfTest() error {
	if err := interest.SelfTest(t.calculator); err != nil {
		return err
	}

	t.writeLine(selfTestPassed)

	return nil
}

// writeLine writes s followed by a newline. Write failures are only logged.
func (t *Transport) writeLine(s string) {
	if _, err := fmt.Fprintln(t.out, s); err != nil {
		slog.Error("Failed to write output", "error", err, "output", s)
	}
}
