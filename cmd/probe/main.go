// Probe fetches the metrics snapshot from a running server and writes
// it to stdout. Useful for cron jobs and quick inspection without curl.
package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/mkarpov/metricserve/internal/pkg/buildinfo"
)

var buildVersion string
var buildDate string
var buildCommit string

func snapshotURL(address, class string, pretty, fullSamples bool) string {
	query := url.Values{}
	if class != "" {
		query.Set("class", class)
	}
	if pretty {
		query.Set("pretty", "true")
	}
	if fullSamples {
		query.Set("full-samples", "true")
	}

	u := url.URL{Scheme: "http", Host: address, Path: "/metrics", RawQuery: query.Encode()}
	return u.String()
}

func main() {
	buildinfo.Print(buildVersion, buildDate, buildCommit)

	address := flag.String("a", "localhost:8080", "Metrics server address")
	class := flag.String("c", "", "Metric name prefix filter")
	pretty := flag.Bool("pretty", true, "Pretty-print the snapshot")
	fullSamples := flag.Bool("full", false, "Include raw reservoir samples")
	flag.Parse()

	client := &fasthttp.Client{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(snapshotURL(*address, *class, *pretty, *fullSamples))
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := client.Do(req, resp); err != nil {
		fmt.Fprintf(os.Stderr, "failed to fetch snapshot: %v\n", err)
		os.Exit(1)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		fmt.Fprintf(os.Stderr, "unexpected status: %d\n", resp.StatusCode())
		os.Exit(1)
	}

	body := resp.Body()
	_, _ = os.Stdout.Write(body)
	if len(body) == 0 || body[len(body)-1] != '\n' {
		fmt.Println()
	}
}
