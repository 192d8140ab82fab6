package main

import (
	"fmt"
	"io"
	"time"

	"github.com/tcnksm/go-httpstat"

	"landmarks-probe/lookup"
)

// renderResult writes the result line, then the timing line. The result
// line is skipped when no response was obtained; the timing line never is.
func renderResult(w io.Writer, res lookup.Result, runErr error) {
	switch {
	case runErr != nil:
	case res.Err != nil:
		fmt.Fprintf(w, "Error: %d %s\n", res.Err.Code, res.Err.Reason)
	default:
		fmt.Fprintln(w, res.Body)
	}

	fmt.Fprintf(w, "Time: %.4fs\n", res.Elapsed.Seconds())
}

// renderTrace expects stat.End to have been called.
func renderTrace(w io.Writer, stat *httpstat.Result) {
	fmt.Fprintf(w, "DNS lookup:        %4d ms\n", stat.DNSLookup.Milliseconds())
	fmt.Fprintf(w, "TCP connection:    %4d ms\n", stat.TCPConnection.Milliseconds())
	fmt.Fprintf(w, "TLS handshake:     %4d ms\n", stat.TLSHandshake.Milliseconds())
	fmt.Fprintf(w, "Server processing: %4d ms\n", stat.ServerProcessing.Milliseconds())
	fmt.Fprintf(w, "Content transfer:  %4d ms\n", stat.ContentTransfer(time.Now()).Milliseconds())
}
