// Command seqtool reads a JSON array of integers and applies one sequence
// operation to it, printing the result as JSON.
//
//	echo '[3,1,2]' | seqtool reverse        # [2,1,3]
//	echo '[1,2,3]' | seqtool scan --base 0  # [0,1,3] then 6
//	seqtool -i a.json merge b.json
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hasbyte1/go-sequence/sequence"
)

var errUsage = errors.New("seqtool: invalid input")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type ints = sequence.ArraySequence[int64]

func sum(a, b int64) int64 { return a + b }

// run executes one command and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := DefaultConfig()

	app := kingpin.New("seqtool", "Apply sequence operations to a JSON array of integers.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.Terminate(func(status int) { panic(usageExit{status}) })
	app.Flag("input", "JSON array to read, - for stdin").Short('i').Default(cfg.Input).StringVar(&cfg.Input)
	app.Flag("log-level", "log level").Default(cfg.LogLevel).StringVar(&cfg.LogLevel)

	sortedCmd := app.Command("sorted", "report whether the array is sorted ascending")
	reverseCmd := app.Command("reverse", "reverse the array")
	digestCmd := app.Command("digest", "print the BLAKE2b-256 digest of the array")

	scanCmd := app.Command("scan", "additive prefix scan")
	scanBase := scanCmd.Flag("base", "scan seed").Default("0").Int64()
	scanIncl := scanCmd.Flag("inclusive", "include each element in its own prefix").Bool()

	reduceCmd := app.Command("reduce", "additive reduce")
	reduceBase := reduceCmd.Flag("base", "result for an empty array").Default("0").Int64()

	mergeCmd := app.Command("merge", "merge a second sorted array into the input")
	mergeOther := mergeCmd.Arg("other", "path of the second JSON array").Required().String()

	splitCmd := app.Command("split", "split the array in two")
	splitAt := splitCmd.Flag("at", "index of the first element of the second half").Required().Int()

	command, exit, err := parse(app, args)
	if exit != nil {
		return exit.status
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log := cfg.Logger(stderr).With().Str("command", command).Logger()

	s, err := load(cfg.Input, stdin)
	if err != nil {
		log.Error().Err(err).Str("input", cfg.Input).Msg("cannot read input")
		return 1
	}
	log.Debug().Int("length", s.Length()).Msg("loaded")

	switch command {
	case sortedCmd.FullCommand():
		fmt.Fprintln(stdout, s.IsSorted())
	case reverseCmd.FullCommand():
		s.Reverse()
		err = emit(stdout, s)
	case digestCmd.FullCommand():
		var digest [32]byte
		if digest, err = s.Digest(); err == nil {
			fmt.Fprintln(stdout, hex.EncodeToString(digest[:]))
		}
	case scanCmd.FullCommand():
		if *scanIncl {
			s.ScanIncl(*scanBase, sum)
			err = emit(stdout, s)
		} else {
			total := s.Scan(*scanBase, sum)
			if err = emit(stdout, s); err == nil {
				fmt.Fprintln(stdout, total)
			}
		}
	case reduceCmd.FullCommand():
		fmt.Fprintln(stdout, s.Reduce(*reduceBase, sum))
	case mergeCmd.FullCommand():
		err = merge(log, s, *mergeOther, stdout)
	case splitCmd.FullCommand():
		err = split(s, *splitAt, stdout)
	}
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}

// usageExit is raised by the kingpin terminate hook once usage has been
// printed, so that parsing stops there instead of exiting the process.
type usageExit struct{ status int }

// parse runs app.Parse. A non-nil exit means kingpin asked to terminate
// (help, or no command given) and the caller should return exit.status.
func parse(app *kingpin.Application, args []string) (command string, exit *usageExit, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(usageExit)
			if !ok {
				panic(r)
			}
			exit = &e
		}
	}()
	command, err = app.Parse(args)
	return command, nil, err
}

func load(path string, stdin io.Reader) (*ints, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return sequence.FromJSON[int64](data)
}

func emit(w io.Writer, s *ints) error {
	b, err := s.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func merge(log zerolog.Logger, s *ints, otherPath string, w io.Writer) error {
	if otherPath == "-" {
		return fmt.Errorf("%w: the second array must be a file", errUsage)
	}
	other, err := load(otherPath, nil)
	if err != nil {
		return err
	}
	if !s.IsSorted() {
		return fmt.Errorf("%w: input is not sorted", errUsage)
	}
	if !other.IsSorted() {
		return fmt.Errorf("%w: %s is not sorted", errUsage, otherPath)
	}
	log.Debug().Int("left", s.Length()).Int("right", other.Length()).Msg("merging")
	s.Merge(other)
	return emit(w, s)
}

func split(s *ints, at int, w io.Writer) error {
	if at < 0 || at > s.Length() {
		return fmt.Errorf("%w: split index %d outside [0, %d]", errUsage, at, s.Length())
	}
	left, right := s.SplitAt(at)
	if err := emit(w, left); err != nil {
		return err
	}
	return emit(w, right)
}
