package process

import (
	"context"
	"strings"

	"github.com/arthur-debert/surfreset/pkg/errors"
	"github.com/arthur-debert/surfreset/pkg/logging"
	"github.com/rs/zerolog"
)

// Controller queries and signals processes with a given image name
type Controller struct {
	runner Runner
	goos   string
	image  string
	logger zerolog.Logger
}

// NewController creates a Controller for image on goos
func NewController(runner Runner, goos, image string) *Controller {
	return &Controller{
		runner: runner,
		goos:   goos,
		image:  image,
		logger: logging.GetLogger("process"),
	}
}

// Image is the name processes are matched on
func (c *Controller) Image() string {
	return c.image
}

// IsRunning reports whether any process with the image name exists. A
// failed query is returned as an error alongside false; callers treat
// that as not running.
func (c *Controller) IsRunning(ctx context.Context) (bool, error) {
	name, args := c.queryCommand()
	out, err := c.runner.Run(ctx, name, args...)
	if err != nil {
		if c.goos != "windows" {
			// pgrep exits 1 when nothing matches
			c.logger.Trace().Err(err).Str("image", c.image).Msg("No matching process")
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrProcess, "failed to query process table for %s", c.image)
	}

	if c.goos == "windows" {
		return strings.Contains(strings.ToLower(string(out)), strings.ToLower(c.image)), nil
	}
	return strings.TrimSpace(string(out)) != "", nil
}

// Stop asks matching processes to exit
func (c *Controller) Stop(ctx context.Context) error {
	return c.signal(ctx, false)
}

// Kill forcibly terminates matching processes
func (c *Controller) Kill(ctx context.Context) error {
	return c.signal(ctx, true)
}

func (c *Controller) signal(ctx context.Context, force bool) error {
	name, args := c.killCommand(force)
	if out, err := c.runner.Run(ctx, name, args...); err != nil {
		return errors.Wrapf(err, errors.ErrProcess, "%s failed", name).
			WithDetail("output", strings.TrimSpace(string(out))).
			WithDetail("force", force)
	}
	return nil
}

func (c *Controller) queryCommand() (string, []string) {
	if c.goos == "windows" {
		return "tasklist", []string{"/FI", "IMAGENAME eq " + c.image, "/NH"}
	}
	return "pgrep", []string{"-i", "-x", c.processName()}
}

func (c *Controller) killCommand(force bool) (string, []string) {
	if c.goos == "windows" {
		if force {
			return "taskkill", []string{"/F", "/IM", c.image}
		}
		return "taskkill", []string{"/IM", c.image}
	}
	sig := "-TERM"
	if force {
		sig = "-KILL"
	}
	return "pkill", []string{sig, "-i", "-x", c.processName()}
}

// processName drops the Windows extension for pgrep and pkill
func (c *Controller) processName() string {
	return strings.TrimSuffix(c.image, ".exe")
}
