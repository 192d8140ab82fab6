package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/tcnksm/go-httpstat"
)

type Runner interface {
	Run(context.Context) (Result, error)
}

type runner struct {
	config LookupConfig
}

func NewRunner(cfg LookupConfig) Runner {
	if cfg.Client == nil {
		cfg.Client = &http.Client{}
	}

	return &runner{config: cfg}
}

// Run performs exactly one GET. A non-nil error means no response was
// obtained; Elapsed is filled in either way.
func (r *runner) Run(ctx context.Context) (Result, error) {
	var res Result

	start := time.Now()

	target, err := r.config.URL()

	if err != nil {
		res.Elapsed = time.Since(start)
		return res, fmt.Errorf("building url: %w", err)
	}

	if r.config.Trace {
		res.Stat = &httpstat.Result{}
		ctx = httpstat.WithHTTPStat(ctx, res.Stat)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)

	if err != nil {
		res.Elapsed = time.Since(start)
		return res, fmt.Errorf("creating request: %w", err)
	}

	resp, err := r.config.Client.Do(req)

	if err != nil {
		res.Elapsed = time.Since(start)
		return res, fmt.Errorf("requesting %s: %w", target, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if res.Stat != nil {
		res.Stat.End(time.Now())
	}

	if err != nil {
		res.Elapsed = time.Since(start)
		return res, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		res.Err = newStatusError(resp)
		res.Elapsed = time.Since(start)

		return res, nil
	}

	if !utf8.Valid(body) {
		res.Elapsed = time.Since(start)
		return res, errors.New("decoding response: invalid UTF-8")
	}

	res.Body = string(body)
	res.Elapsed = time.Since(start)

	return res, nil
}
