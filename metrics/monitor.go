package metrics

import (
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
)

// Client is the subset of the statsd client the monitor needs.
type Client interface {
	Timing(name string, value time.Duration, tags []string, rate float64) error
	Incr(name string, tags []string, rate float64) error
}

// Monitor pushes request-level measurements to statsd.
type Monitor struct {
	client Client
}

func NewMonitor(client Client) *Monitor {
	return &Monitor{client: client}
}

func NewStatsdClient(address, prefix string) (*statsd.Client, error) {
	return statsd.New(address, statsd.WithNamespace(prefix))
}

func (mm *Monitor) ResponseTime(requestMethod, requestURL string, responseTime time.Duration) {
	_ = mm.client.Timing("responseTime", responseTime, Tags{requestMethod, requestURL}.List(), 1)
}

func (mm *Monitor) ResponseStatus(requestMethod, requestURL string, responseCode int) {
	tags := append(Tags{requestMethod, requestURL}.List(), statusTag(responseCode))
	_ = mm.client.Incr("responseStatusCode", tags, 1)
}
