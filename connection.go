package arangocorex

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/arangonet/arangocorex/adbhttpx"
	"github.com/arangonet/arangocorex/zaputils"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// RequestCallback delivers the outcome of a submitted request.  It is
// invoked exactly once, with either a response or an error.
type RequestCallback func(resp *adbhttpx.Response, err error)

type connectionTask struct {
	prepared *adbhttpx.PreparedRequest
	uniqueID string
	cb       RequestCallback
}

// Connection is the transport core of the driver.  It prepares wire
// requests, holds them in a FIFO queue under an admission limit
// derived from the socket pool capacity, executes them against the
// configured endpoints and classifies the responses.
type Connection struct {
	logger      *zap.Logger
	builder     adbhttpx.RequestBuilder
	clients     []adbhttpx.Client
	endpoints   []string
	arangoMajor int

	transport   http.RoundTripper
	maxInFlight uint32
	nextHost    atomic.Uint64

	lock     sync.Mutex
	pending  *queue[*connectionTask]
	inFlight uint32
	closed   bool
}

func NewConnection(opts *ConnectionOptions) (*Connection, error) {
	if opts == nil {
		opts = &ConnectionOptions{}
	}
	merged := mergeConnectionOptions(DefaultConnectionOptions, *opts)

	endpoints, err := normalizeEndpoints(merged)
	if err != nil {
		return nil, err
	}

	logger := merged.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var databasePrefix string
	if !merged.DisableDatabaseScoping {
		databasePrefix = "/_db/" + merged.DatabaseName
	}

	driverName := "arangocorex"
	if buildVersion != "" {
		driverName = "arangocorex/" + buildVersion
	}
	defaultHeaders := make(map[string]string, len(merged.Headers)+1)
	defaultHeaders["X-Arango-Driver"] = driverName
	for key, val := range merged.Headers {
		defaultHeaders[http.CanonicalHeaderKey(key)] = val
	}

	transport := merged.Transport
	if transport == nil {
		transport = newHTTPTransport(merged)
	}

	clients := make([]adbhttpx.Client, len(endpoints))
	for i, endpoint := range endpoints {
		clients[i] = adbhttpx.Client{
			Endpoint:  endpoint,
			Transport: transport,
		}
	}

	// Persistent connections free sockets faster than fresh TCP setup
	// would, so they tolerate a higher admission burst.
	maxInFlight := uint32(merged.MaxSockets)
	if !merged.DisableKeepAlives {
		maxInFlight *= 2
	}

	logger.Debug("created new connection",
		zaputils.DatabaseName("database", merged.DatabaseName),
		zap.Strings("endpoints", endpoints),
		zap.Uint32("max-in-flight", maxInFlight))

	return &Connection{
		logger: logger,
		builder: adbhttpx.RequestBuilder{
			DatabasePrefix: databasePrefix,
			ArangoVersion:  merged.ArangoVersion,
			DefaultHeaders: defaultHeaders,
		},
		clients:     clients,
		endpoints:   endpoints,
		arangoMajor: merged.ArangoVersion / 10000,
		transport:   transport,
		maxInFlight: maxInFlight,
		pending:     newQueue[*connectionTask](),
	}, nil
}

func newHTTPTransport(opts ConnectionOptions) *http.Transport {
	httpDialer := &net.Dialer{
		Timeout:   opts.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}

	// We set ForceAttemptHTTP2, which will update the base-config to support HTTP2
	// automatically, so that all configs from it will look for that.
	return &http.Transport{
		ForceAttemptHTTP2: true,

		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return httpDialer.DialContext(ctx, network, addr)
		},
		TLSClientConfig:     opts.TLSConfig,
		MaxConnsPerHost:     opts.MaxSockets,
		MaxIdleConnsPerHost: opts.MaxSockets,
		DisableKeepAlives:   opts.DisableKeepAlives,
		IdleConnTimeout:     opts.IdleTimeout,
	}
}

// SendRequest prepares a request and submits it to the dispatcher.
// The callback runs once the exchange completes; a returned error
// means the request was never admitted.
func (c *Connection) SendRequest(req *adbhttpx.Request, cb RequestCallback) error {
	prepared, err := c.builder.Prepare(req)
	if err != nil {
		return err
	}

	task := &connectionTask{
		prepared: prepared,
		uniqueID: uuid.NewString(),
		cb:       cb,
	}

	c.lock.Lock()
	if c.closed {
		c.lock.Unlock()
		return ErrConnectionClosed
	}
	if err := c.pending.Push(task); err != nil {
		c.lock.Unlock()
		return err
	}
	requestsEnqueued.Add(context.Background(), 1)
	c.dispatchLocked()
	c.lock.Unlock()

	c.logger.Debug("enqueued request",
		zaputils.RequestID("request-id", task.uniqueID),
		zap.String("method", prepared.Method),
		zap.String("path", prepared.PathAndQuery))

	return nil
}

// dispatchLocked releases queued tasks while capacity remains.  It is
// the only place the in-flight count grows, and it always runs under
// the connection lock, whether reached from a submission or from a
// completion.
func (c *Connection) dispatchLocked() {
	for c.inFlight < c.maxInFlight {
		task, ok := c.pending.TryNext()
		if !ok {
			return
		}

		c.inFlight++
		requestsDispatched.Add(context.Background(), 1)
		go c.executeTask(task)
	}
}

func (c *Connection) executeTask(task *connectionTask) {
	client := c.selectClient(task.prepared.HostIndex)

	ctx, span := tracer.Start(context.Background(), "arangocorex.request",
		trace.WithAttributes(
			attribute.String("http.request.method", task.prepared.Method),
			attribute.String("server.address", client.Endpoint),
		))

	hresp, err := client.Do(ctx, task.prepared)

	var resp *adbhttpx.Response
	if err == nil {
		resp, err = adbhttpx.ReadResponse(hresp, client.Endpoint, task.prepared.ExpectBinary)
	}

	if err != nil {
		span.RecordError(err)
	}
	span.End()
	requestsCompleted.Add(context.Background(), 1)

	c.lock.Lock()
	c.inFlight--
	c.lock.Unlock()

	c.logger.Debug("completed request",
		zaputils.RequestID("request-id", task.uniqueID),
		zaputils.Endpoint("endpoint", client.Endpoint),
		zap.Error(err))

	task.cb(resp, err)

	c.lock.Lock()
	c.dispatchLocked()
	c.lock.Unlock()
}

// selectClient honors a valid host affinity hint and otherwise rotates
// across the configured endpoints.
func (c *Connection) selectClient(hostIdx *int) adbhttpx.Client {
	if hostIdx != nil && *hostIdx >= 0 && *hostIdx < len(c.clients) {
		return c.clients[*hostIdx]
	}

	next := c.nextHost.Inc() - 1
	return c.clients[next%uint64(len(c.clients))]
}

type requestResult struct {
	Resp *adbhttpx.Response
	Err  error
}

// Do submits a request and blocks until its exchange completes.  An
// abandoned context stops the wait but not the task itself; the
// dispatcher does not observe abandonment.
func (c *Connection) Do(ctx context.Context, req *adbhttpx.Request) (*adbhttpx.Response, error) {
	resCh := make(chan requestResult, 1)
	err := c.SendRequest(req, func(resp *adbhttpx.Response, err error) {
		resCh <- requestResult{Resp: resp, Err: err}
	})
	if err != nil {
		return nil, err
	}

	select {
	case res := <-resCh:
		return res.Resp, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close rejects every queued-but-undispatched task and refuses new
// submissions.  Tasks already dispatched run to completion.
func (c *Connection) Close() error {
	c.lock.Lock()
	if c.closed {
		c.lock.Unlock()
		return nil
	}
	c.closed = true
	remaining := c.pending.Close()
	c.lock.Unlock()

	for _, task := range remaining {
		task.cb(nil, ErrConnectionClosed)
	}

	if transport, ok := c.transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}

	c.logger.Debug("closed connection")

	return nil
}

// ArangoMajor reports the major server version derived from the
// configured protocol version.
func (c *Connection) ArangoMajor() int {
	return c.arangoMajor
}

func (c *Connection) Endpoints() []string {
	endpoints := make([]string, len(c.endpoints))
	copy(endpoints, c.endpoints)

	return endpoints
}

type ConnectionStats struct {
	QueuedRequests   int
	InFlightRequests int
}

func (c *Connection) Stats() ConnectionStats {
	c.lock.Lock()
	stats := ConnectionStats{
		QueuedRequests:   c.pending.Len(),
		InFlightRequests: int(c.inFlight),
	}
	c.lock.Unlock()

	return stats
}
