package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"

	"landmarks-probe/lookup"
)

// environment defaults, LANDMARKS_URL, LANDMARKS_LAT, ...
type envConfig struct {
	URL     string        `default:"http://localhost:3000/landmarks"`
	Lat     float64       `default:"48.8584"`
	Lng     float64       `default:"2.2945"`
	Radius  float64       `default:"0"`
	Timeout time.Duration `default:"0s"`
	Trace   bool          `default:"false"`
}

type inputError struct {
	err error
}

func (e *inputError) Error() string {
	return "invalid input - error: " + e.err.Error()
}

func (e *inputError) Unwrap() error {
	return e.err
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// run returns nil for a success and for an HTTP status error; anything else
// means no response was obtained or the input was rejected.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// input
	cfg, err := loadConfig(args, stderr)

	if err != nil {
		return &inputError{err: err}
	}

	// run
	res, runErr := lookup.NewRunner(cfg).Run(ctx)

	renderResult(stdout, res, runErr)

	if runErr != nil {
		return fmt.Errorf("lookup failed: %w", runErr)
	}

	if res.Stat != nil {
		renderTrace(stderr, res.Stat)
	}

	return nil
}

// loadConfig reads the environment first, flags override it
func loadConfig(args []string, output io.Writer) (lookup.LookupConfig, error) {
	var env envConfig

	if err := envconfig.Process("landmarks", &env); err != nil {
		return lookup.LookupConfig{}, fmt.Errorf("environment - %w", err)
	}

	fs := flag.NewFlagSet("landmarks-probe", flag.ContinueOnError)
	fs.SetOutput(output)

	baseURL := fs.String("url", env.URL, "landmarks endpoint")
	lat := fs.Float64("lat", env.Lat, "latitude in decimal degrees")
	lng := fs.Float64("lng", env.Lng, "longitude in decimal degrees")
	radius := fs.Float64("radius", env.Radius, "search radius in meters, 0 to omit")
	timeout := fs.Duration("timeout", env.Timeout, "request timeout, 0 for none")
	trace := fs.Bool("trace", env.Trace, "print connection timings to stderr")

	if err := fs.Parse(args); err != nil {
		return lookup.LookupConfig{}, err
	}

	if fs.NArg() > 0 {
		return lookup.LookupConfig{}, fmt.Errorf("unexpected arguments %v", fs.Args())
	}

	cfg := lookup.LookupConfig{
		BaseURL: *baseURL,
		Lat:     *lat,
		Lng:     *lng,
		Radius:  *radius,
		Client:  &http.Client{Timeout: *timeout},
		Trace:   *trace,
	}

	if err := cfg.Validate(); err != nil {
		return lookup.LookupConfig{}, err
	}

	return cfg, nil
}
