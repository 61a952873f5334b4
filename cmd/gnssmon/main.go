// Command gnssmon is a minimal demonstration of internal/receiver: it opens
// a transport, autobauds, and prints whatever events the driver produces
// until interrupted. It takes its transport spec as a single positional
// argument, with an optional NTRIP caster URL as a second, rather than
// parsing flags — argument parsing for a real toolkit CLI is left to a
// future collaborator built on top of this module.
package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/bramburn/gnss-toolkit/internal/ntrip"
	"github.com/bramburn/gnss-toolkit/internal/receiver"
	"github.com/bramburn/gnss-toolkit/internal/transport"
)

// Exit codes match spec.md §6's scheme for toolkit subcommands consuming
// the core.
const (
	exitOK             = 0
	exitBadArgs        = 1
	exitReceiverFailed = 2
	exitNoData         = 3
	exitOther          = 99
)

func main() {
	os.Exit(run())
}

func run() int {
	spec := "ser:///dev/ttyACM0@115200"
	if len(os.Args) > 1 {
		spec = os.Args[1]
	}

	tr, err := transport.Open(spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gnssmon: %v\n", err)
		return exitBadArgs
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		cancel()
	}()

	d := receiver.New(tr)
	if err := d.Start(ctx, receiver.StartOptions{Autobaud: true}); err != nil {
		fmt.Fprintf(os.Stderr, "gnssmon: start: %v\n", err)
		return exitReceiverFailed
	}
	defer d.Stop()

	fmt.Printf("gnssmon: connected at %d baud, state %s\n", d.Baud(), d.State())

	if len(os.Args) > 2 {
		if err := startCorrectionStream(ctx, os.Args[2], d); err != nil {
			fmt.Fprintf(os.Stderr, "gnssmon: ntrip: %v\n", err)
		}
	}

	sawAny := false
	for {
		ev, ok := d.NextEvent(ctx)
		if !ok {
			break
		}
		sawAny = true
		printEvent(ev)
	}

	if !sawAny {
		return exitNoData
	}
	return exitOK
}

// startCorrectionStream parses raw (a "ntrip://[user:pass@]host[:port]/mount"
// URL), builds an ntrip.Client from it, and feeds its correction stream into
// d.Send in the background for the lifetime of ctx, so a caster's
// RTCM3/SPARTN bytes reach the receiver's framer the same way any other
// inbound bytes would.
func startCorrectionStream(ctx context.Context, raw string, d *receiver.Driver) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("bad ntrip url: %w", err)
	}

	var user, pass string
	if u.User != nil {
		user = u.User.Username()
		pass, _ = u.User.Password()
	}
	base := *u
	base.User = nil
	base.Path = ""
	if base.Scheme == "ntrip" {
		base.Scheme = "http"
	}

	mount := u.Path
	for len(mount) > 0 && mount[0] == '/' {
		mount = mount[1:]
	}

	client := ntrip.NewClient(base.String(), user, pass, mount)
	fmt.Printf("gnssmon: streaming corrections from %s (mountpoint %q)\n", base.String(), mount)

	go func() {
		if err := client.StreamCorrections(ctx, d.Send); err != nil && ctx.Err() == nil {
			fmt.Fprintf(os.Stderr, "gnssmon: correction stream: %v\n", err)
		}
	}()
	return nil
}

func printEvent(ev receiver.Event) {
	switch ev.Kind {
	case receiver.EvMessage:
		fmt.Printf("message  %s (%d bytes)\n", ev.Message.Name, len(ev.Message.Data))
	case receiver.EvEpoch:
		fmt.Printf("epoch    seq=%d fix=%s rtk=%s\n", ev.Epoch.Seq, ev.Epoch.Fix, ev.Epoch.RTK)
	case receiver.EvNotice:
		fmt.Printf("notice   %s\n", ev.Text)
	case receiver.EvWarning:
		fmt.Printf("warning  %s\n", ev.Text)
	case receiver.EvError:
		fmt.Printf("error    %s\n", ev.Text)
	case receiver.EvGetConfigDone:
		fmt.Printf("config   %d pairs returned (corr=%d)\n", len(ev.Pairs), ev.CorrelationID)
	case receiver.EvSetConfigDone:
		fmt.Printf("config   applied=%v (corr=%d)\n", ev.Ack, ev.CorrelationID)
	}
}
