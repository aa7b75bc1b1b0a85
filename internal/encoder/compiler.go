// Package encoder implements the frame encoders and the bebop compiler boundary.
package encoder

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/jittakal/orchframes/pkg/event"
)

// Compiler abstracts the external schema-compiling encoder process so the
// encoding strategy can be tested without spawning real processes.
type Compiler interface {
	// Available reports whether the compiler can be invoked on this system.
	Available() bool

	// Compile encodes the JSON payload file into a binary frame for the
	// given schema type. A non-zero exit or timeout is an error.
	Compile(ctx context.Context, schemaPath string, typ event.SchemaType, jsonPath string) ([]byte, error)
}

// ExecCompiler invokes the bebopc binary found on the system path.
type ExecCompiler struct {
	binary  string
	timeout time.Duration

	probeOnce sync.Once
	path      string
	probeErr  error
}

// NewExecCompiler creates a compiler for the named binary. Each invocation
// is bounded by timeout; expiry is reported as a compile failure.
func NewExecCompiler(binary string, timeout time.Duration) *ExecCompiler {
	return &ExecCompiler{binary: binary, timeout: timeout}
}

// Available probes the system path for the compiler binary. The probe
// result is cached for the life of the compiler, which is one run.
func (c *ExecCompiler) Available() bool {
	c.probeOnce.Do(func() {
		c.path, c.probeErr = exec.LookPath(c.binary)
	})
	return c.probeErr == nil
}

// Compile runs `bebopc encode --schema <schema> --type <type> --json <path>`
// and returns its standard output as the binary frame.
func (c *ExecCompiler) Compile(ctx context.Context, schemaPath string, typ event.SchemaType, jsonPath string) ([]byte, error) {
	if !c.Available() {
		return nil, fmt.Errorf("compiler %q not found: %w", c.binary, c.probeErr)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.path,
		"encode",
		"--schema", schemaPath,
		"--type", string(typ),
		"--json", jsonPath,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s encode timed out after %s: %w", c.binary, c.timeout, ctx.Err())
		}
		return nil, fmt.Errorf("%s encode exited: %w: %s", c.binary, err, stderr.String())
	}
	return stdout.Bytes(), nil
}
