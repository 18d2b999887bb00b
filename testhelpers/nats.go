package testhelpers

import (
	"testing"

	natsserver "github.com/nats-io/nats-server/v2/test"
)

// RunNATS starts an in-process NATS server on a random port for the
// duration of the test and returns its client URL.
func RunNATS(t testing.TB) string {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	s := natsserver.RunServer(&opts)
	t.Cleanup(s.Shutdown)
	return s.ClientURL()
}
