package mount

import (
	"context"
	"errors"
	"time"

	"github.com/skypoint-project/skypoint-go/pkg/log"
)

// Step size bounds in degrees.
const (
	// MinStepSize is one arcsecond.
	MinStepSize = 1.0 / 3600.0

	// MaxStepSize is ten degrees.
	MaxStepSize = 10.0

	// DefaultStepSize is the initial nudge step size.
	DefaultStepSize = 0.5
)

// ErrNoAdapter indicates the controller was constructed without a
// device adapter.
var ErrNoAdapter = errors.New("no adapter configured")

// Config configures a Controller.
type Config struct {
	// Adapter is the bound device adapter. Required.
	Adapter Adapter

	// Commands delivers one command at a time. Required.
	Commands <-chan Command

	// Console receives user-visible warnings. Nil discards them.
	Console Console

	// Policy is the retry policy applied uniformly to device
	// operations. Zero value means DefaultRetryPolicy.
	Policy RetryPolicy

	// StepSize is the initial nudge step size in degrees. Zero means
	// DefaultStepSize; out-of-range values are clamped.
	StepSize float64

	// Logger receives command execution traces. Nil disables them.
	Logger log.Logger
}

// Controller serializes mount command execution. It owns the mount
// phase and step size; both are touched only by the Run goroutine, so
// no locking is involved. Exactly one controller exists per device
// connection.
type Controller struct {
	adapter  Adapter
	commands <-chan Command
	console  Console
	policy   RetryPolicy
	logger   log.Logger

	phase    Phase
	stepSize float64
}

// NewController creates a controller with the given configuration.
func NewController(cfg Config) (*Controller, error) {
	if cfg.Adapter == nil {
		return nil, ErrNoAdapter
	}
	if cfg.Console == nil {
		cfg.Console = NopConsole{}
	}
	if cfg.Policy.Count == 0 {
		cfg.Policy = DefaultRetryPolicy()
	}
	if cfg.StepSize == 0 {
		cfg.StepSize = DefaultStepSize
	}

	return &Controller{
		adapter:  cfg.Adapter,
		commands: cfg.Commands,
		console:  cfg.Console,
		policy:   cfg.Policy,
		logger:   log.OrNoop(cfg.Logger),
		phase:    PhaseStopped,
		stepSize: clampStep(cfg.StepSize),
	}, nil
}

// Phase returns the current mount phase. Only meaningful from the Run
// goroutine, or before Run starts / after it returns.
func (c *Controller) Phase() Phase {
	return c.phase
}

// StepSize returns the current nudge step size in degrees.
func (c *Controller) StepSize() float64 {
	return c.stepSize
}

// Run executes commands in arrival order until an Exit command, the
// command channel closes, or the context is cancelled. Each command
// resolves fully, including retries and any fallback stop, before the
// next is dequeued. A SpiralSearch command aborts the loop with
// ErrSpiralSearchNotImplemented.
func (c *Controller) Run(ctx context.Context) error {
	for {
		select {
		case cmd, ok := <-c.commands:
			if !ok {
				return nil
			}
			done, err := c.process(ctx, cmd)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// process resolves one command. It returns done=true when the loop
// should terminate normally, or an error for fatal conditions.
func (c *Controller) process(ctx context.Context, cmd Command) (done bool, err error) {
	switch cmd := cmd.(type) {
	case Exit:
		if c.phase == PhaseTracking {
			// Safety stop before terminating; failure is not
			// user-visible since the process is going away.
			_ = c.withRetry(ctx, cmd.CommandName(), c.adapter.Stop)
		}
		return true, nil

	case StopMovement:
		if err := c.withRetry(ctx, cmd.CommandName(), c.adapter.Stop); err != nil {
			c.phase = PhaseInitTelescope
			c.warn(cmd, "Cannot stop the mount")
		} else {
			c.phase = PhaseStopped
		}

	case Sync:
		action := func(ctx context.Context) error {
			return c.adapter.Sync(ctx, cmd.RA, cmd.Dec)
		}
		if err := c.withRetry(ctx, cmd.CommandName(), action); err != nil {
			c.warn(cmd, "Cannot sync the mount")
		}

	case GotoTarget:
		action := func(ctx context.Context) error {
			return c.adapter.Goto(ctx, cmd.RA, cmd.Dec)
		}
		if err := c.withRetry(ctx, cmd.CommandName(), action); err != nil {
			// Best-effort stop so a half-started slew does not keep
			// running; the phase stays what it was before the command.
			if c.phase != PhaseStopped {
				_ = c.withRetry(ctx, cmd.CommandName(), c.adapter.Stop)
			}
			c.warn(cmd, "Cannot goto the target")
		} else {
			c.phase = PhaseTargetAcquisitionMove
		}

	case ManualMovement:
		action := func(ctx context.Context) error {
			return c.adapter.ManualMove(ctx, cmd.Direction, cmd.Rate, cmd.Duration)
		}
		if err := c.withRetry(ctx, cmd.CommandName(), action); err != nil {
			c.warn(cmd, "Cannot move the mount")
		}

	case ReduceStepSize:
		c.stepSize = clampStep(c.stepSize / 2)

	case IncreaseStepSize:
		c.stepSize = clampStep(c.stepSize * 2)

	case SetStepSize:
		if cmd.Value < MinStepSize || cmd.Value > MaxStepSize {
			c.warn(cmd, "Step size must be between 1 arcsec and 10 degrees")
			break
		}
		if err := c.adapter.SetStepSize(cmd.Value); err != nil {
			c.warn(cmd, "Cannot set step size")
			break
		}
		c.stepSize = cmd.Value

	case SpiralSearch:
		return false, ErrSpiralSearchNotImplemented

	case Unknown:
		// Forward-compatible default: no adapter calls, no console
		// output, no state change.
	}

	return false, nil
}

// withRetry runs a device action under the controller's retry policy,
// emitting a command trace per attempt.
func (c *Controller) withRetry(ctx context.Context, name string, action func(context.Context) error) error {
	policy := c.policy.normalized()

	return retry(ctx, policy, action, func(attempt int, err error) {
		outcome := "ok"
		if err != nil {
			outcome = "retry"
			if attempt == policy.Count {
				outcome = "exhausted"
			}
		}
		c.logCommand(name, attempt, outcome)
	})
}

// warn emits one console warning and a trace event.
func (c *Controller) warn(cmd Command, text string) {
	c.console.Warn(text)
	c.logCommand(cmd.CommandName(), 0, "warning: "+text)
}

func (c *Controller) logCommand(name string, attempt int, outcome string) {
	c.logger.Log(log.Event{
		Timestamp: time.Now(),
		Layer:     log.LayerController,
		Category:  log.CategoryCommand,
		Command: &log.CommandEvent{
			Name:    name,
			Attempt: attempt,
			Outcome: outcome,
			Phase:   c.phase.String(),
		},
	})
}

// clampStep clamps a step size into [MinStepSize, MaxStepSize].
func clampStep(v float64) float64 {
	if v < MinStepSize {
		return MinStepSize
	}
	if v > MaxStepSize {
		return MaxStepSize
	}
	return v
}
