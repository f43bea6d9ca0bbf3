package commands

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/skypoint-project/skypoint-go/pkg/client"
	"github.com/skypoint-project/skypoint-go/pkg/discovery"
	"github.com/skypoint-project/skypoint-go/pkg/log"
)

// writerLogger formats matching protocol events to a writer as they
// arrive. Log is called from the client's read loop, so it serializes
// output under a mutex.
type writerLogger struct {
	mu     sync.Mutex
	w      io.Writer
	filter log.Filter
}

func (l *writerLogger) Log(event log.Event) {
	if !l.filter.Matches(event) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	formatEvent(l.w, event)
}

// RunWatch connects to a property server and prints matching protocol
// events live until the context is cancelled. address may be "auto"
// for mDNS discovery.
func RunWatch(ctx context.Context, address string, filter log.Filter, w io.Writer) error {
	if address == "" || address == "auto" {
		svc, err := discovery.NewBrowser(discovery.BrowserConfig{}).FindFirst(ctx, discovery.DefaultBrowseTimeout)
		if err != nil {
			return fmt.Errorf("discover property server: %w", err)
		}
		address = svc.Addr()
		fmt.Fprintf(w, "Discovered %s at %s\n\n", svc.InstanceName, address)
	}

	c := client.NewClient(client.Config{
		Address: address,
		Logger:  &writerLogger{w: w, filter: filter},
	})
	if err := c.Connect(ctx); err != nil {
		return fmt.Errorf("connect to %s: %w", address, err)
	}
	defer c.Close()

	fmt.Fprintf(w, "Watching %s (Ctrl-C to stop)\n\n", address)
	<-ctx.Done()
	return nil
}
