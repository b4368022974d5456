// Command redirect-trace prints the redirect chain of a URL.
package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"

	redirect "github.com/redirectkit/redirect-go"
)

var cli struct {
	URL      string `arg:"" help:"URL to trace."`
	Method   string `default:"GET" help:"Request method."`
	Max      int    `default:"10" help:"Maximum number of redirects to follow."`
	Step     bool   `help:"Resolve the chain one hop at a time instead of automatically."`
	HTTP3    bool   `name:"http3" help:"Send requests over HTTP/3 instead of HTTP/1.1 and HTTP/2."`
	Insecure bool   `help:"Skip TLS certificate verification."`
	Verbose  bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("redirect-trace"),
		kong.Description("Trace the redirect chain of a URL."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	kctx.FatalIfErrorf(run(logger))
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tlsConf := &tls.Config{InsecureSkipVerify: cli.Insecure}
	var transport redirect.Transport
	if cli.HTTP3 {
		transport = redirect.NewHTTP3Transport(tlsConf, nil)
	} else {
		transport = redirect.NewRoundTripTransport(&http.Transport{TLSClientConfig: tlsConf})
	}

	f, err := redirect.NewFollower(transport, redirect.Config{
		MaxRedirects:  cli.Max,
		DisableFollow: cli.Step,
	})
	if err != nil {
		return err
	}
	defer f.Close()

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(cli.Method), cli.URL, nil)
	if err != nil {
		return err
	}

	logger.Debug("sending initial request", "method", req.Method, "url", req.URL)

	resp, err := f.Do(req)
	if err != nil {
		return err
	}

	if cli.Step {
		for resp.Next != nil {
			printHop(resp)
			next := resp.Next.Request()
			logger.Debug("resuming", "method", next.Method, "url", next.URL)
			cont := resp.Next
			resp.Body.Close()
			resp, err = cont.Resume()
			if err != nil {
				return err
			}
		}
	} else {
		for _, hop := range resp.History {
			printHop(hop)
		}
	}
	printHop(resp)
	return resp.Body.Close()
}

func printHop(r *redirect.Response) {
	u := "?"
	if r.Request != nil && r.Request.URL != nil {
		u = r.Request.URL.String()
	}
	if loc := r.Header.Get("Location"); loc != "" {
		fmt.Printf("%3d  %s -> %s\n", r.StatusCode, u, loc)
		return
	}
	fmt.Printf("%3d  %s\n", r.StatusCode, u)
}
