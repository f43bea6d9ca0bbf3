package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/skypoint-project/skypoint-go/pkg/mount"
)

// RateLister exposes the slew rates the bound device advertises. The
// driver implements it; help output shows the labels.
type RateLister interface {
	SlewRates() []string
}

// Session reads commands from the terminal and feeds them to the
// mount controller over a channel.
type Session struct {
	rl       *readline.Instance
	commands chan<- mount.Command
	rates    RateLister
}

// New creates an interactive session writing into the given command
// channel. rates may be nil.
func New(commands chan<- mount.Command, rates RateLister) (*Session, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "mount> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Session{
		rl:       rl,
		commands: commands,
		rates:    rates,
	}, nil
}

// Stdout returns a writer that coordinates with the readline prompt.
// Use this for warning and log output.
func (s *Session) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Close releases the terminal. Pending Readline calls return EOF.
func (s *Session) Close() error {
	return s.rl.Close()
}

// Run reads lines until exit, EOF, or context cancellation. An exit
// command (or EOF) is forwarded to the controller before returning so
// the controller can run its shutdown sequence.
func (s *Session) Run(ctx context.Context) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			// EOF: treat like an explicit exit.
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			s.send(ctx, mount.Exit{})
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if input == "help" || input == "?" {
			s.printHelp()
			continue
		}

		cmd, err := Parse(input)
		if err != nil {
			fmt.Fprintf(s.rl.Stdout(), "%v (type 'help' for commands)\n", err)
			continue
		}

		if !s.send(ctx, cmd) {
			return
		}
		if _, ok := cmd.(mount.Exit); ok {
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}
	}
}

// send delivers one command unless the controller is already gone.
func (s *Session) send(ctx context.Context, cmd mount.Command) bool {
	select {
	case s.commands <- cmd:
		return true
	case <-ctx.Done():
		return false
	}
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
SkyPoint Mount Commands:
  Pointing:
    sync <ra_deg> <dec_deg>   - Tell the mount where it is pointing
    goto <ra_deg> <dec_deg>   - Slew to target coordinates and track
    stop                      - Abort all mount motion

  Manual Movement:
    move <dir> <rate> <secs>  - Nudge north/south/east/west at a slew rate
    step <degrees>            - Set the nudge step size (1 arcsec to 10 deg)
    step +                    - Double the step size
    step -                    - Halve the step size

  General:
    spiral                    - Spiral search around current position
    help                      - Show this help
    exit                      - Disconnect and quit`)

	if s.rates != nil {
		if rates := s.rates.SlewRates(); len(rates) > 0 {
			fmt.Fprintf(s.rl.Stdout(), "\n  Available slew rates: %v\n", rates)
		}
	}
	fmt.Fprintln(s.rl.Stdout())
}
