// Package stats collects per-destination forwarding metrics.
//
// The collector keeps running counters for each destination URL the proxy
// has forwarded to, bounded by an LRU policy so an unbounded set of
// destinations cannot grow memory without limit. Recording is best-effort
// telemetry: it never fails and never influences the outcome of the
// request it instruments.
package stats

import (
	"math"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

const (
	// DefaultMaxEndpoints bounds the number of distinct destinations
	// tracked at once.
	DefaultMaxEndpoints = 1000

	// DestinationUnmatched is the reserved destination under which
	// records that matched no routing rule are counted.
	DestinationUnmatched = "__unmatched__"
)

// endpointStats accumulates raw counters for a single destination.
type endpointStats struct {
	requestCount        uint64
	errorCount          uint64
	incomingBytes       uint64
	outgoingBytes       uint64
	totalResponseTimeMs float64
}

// EndpointMetrics is the read-side view of one destination's counters
// with the derived rates computed.
type EndpointMetrics struct {
	RequestCount      uint64  `json:"request_count"`
	ErrorCount        uint64  `json:"error_count"`
	ErrorRatePercent  float64 `json:"error_rate_percent"`
	IncomingBytes     uint64  `json:"incoming_bytes"`
	OutgoingBytes     uint64  `json:"outgoing_bytes"`
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
}

// Collector aggregates metrics for every destination the proxy forwards
// to. It holds at most a fixed number of distinct destinations; inserting
// a new destination beyond that evicts the one least recently written.
// Reads never refresh recency, so scraping stats cannot change which
// destination is evicted next.
//
// All methods are safe for concurrent use.
type Collector struct {
	mu  sync.Mutex
	lru *simplelru.LRU[string, *endpointStats]
}

// NewCollector creates a collector tracking at most maxEndpoints
// destinations. Non-positive values fall back to DefaultMaxEndpoints.
func NewCollector(maxEndpoints int) *Collector {
	if maxEndpoints <= 0 {
		maxEndpoints = DefaultMaxEndpoints
	}
	lru, _ := simplelru.NewLRU[string, *endpointStats](maxEndpoints, nil)
	return &Collector{lru: lru}
}

// Record folds one completed request into the destination's counters,
// creating the entry on first use. An evicted destination that shows up
// again starts over from zero. The elapsed time is in milliseconds.
func (c *Collector) Record(destination string, success bool, incomingBytes, outgoingBytes int, elapsedMs float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.lru.Get(destination)
	if !ok {
		entry = &endpointStats{}
		c.lru.Add(destination, entry)
	}

	entry.requestCount++
	entry.incomingBytes += uint64(incomingBytes)
	entry.outgoingBytes += uint64(outgoingBytes)
	entry.totalResponseTimeMs += elapsedMs
	if !success {
		entry.errorCount++
	}
}

// Snapshot returns a point-in-time copy of all tracked destinations.
// The returned map is owned by the caller; later Record calls do not
// show through.
func (c *Collector) Snapshot() map[string]EndpointMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]EndpointMetrics, c.lru.Len())
	for _, destination := range c.lru.Keys() {
		entry, ok := c.lru.Peek(destination)
		if !ok {
			continue
		}
		out[destination] = entry.view()
	}
	return out
}

// Len reports the number of destinations currently tracked.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (s *endpointStats) view() EndpointMetrics {
	m := EndpointMetrics{
		RequestCount:  s.requestCount,
		ErrorCount:    s.errorCount,
		IncomingBytes: s.incomingBytes,
		OutgoingBytes: s.outgoingBytes,
	}
	if s.requestCount > 0 {
		m.ErrorRatePercent = round2(float64(s.errorCount) / float64(s.requestCount) * 100)
		m.AvgResponseTimeMs = round2(s.totalResponseTimeMs / float64(s.requestCount))
	}
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
