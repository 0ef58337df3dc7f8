package http

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// TransportFunc wraps a RoundTripper with additional behaviour.
type TransportFunc func(http.RoundTripper) http.RoundTripper

type clientConfig struct {
	dialTimeout           time.Duration
	requestTimeout        time.Duration
	keepAlive             time.Duration
	tlsHandshakeTimeout   time.Duration
	responseHeaderTimeout time.Duration
	idleConnTimeout       time.Duration
	maxIdleConns          int
	maxIdleConnsPerHost   int
	transports            []TransportFunc
	insecureSkipVerify    bool
}

func defaultClientConfig() *clientConfig {
	return &clientConfig{
		dialTimeout:           30 * time.Second,
		requestTimeout:        30 * time.Second,
		keepAlive:             90 * time.Second,
		tlsHandshakeTimeout:   10 * time.Second,
		responseHeaderTimeout: 10 * time.Second,
		idleConnTimeout:       90 * time.Second,
		maxIdleConns:          100,
		maxIdleConnsPerHost:   10,
	}
}

func newClient(opts ...ClientOpt) *http.Client {
	cfg := defaultClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	dialer := net.Dialer{
		Timeout:   cfg.dialTimeout,
		KeepAlive: cfg.keepAlive,
	}

	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		MaxIdleConns:          cfg.maxIdleConns,
		MaxIdleConnsPerHost:   cfg.maxIdleConnsPerHost,
		TLSHandshakeTimeout:   cfg.tlsHandshakeTimeout,
		ResponseHeaderTimeout: cfg.responseHeaderTimeout,
		IdleConnTimeout:       cfg.idleConnTimeout,
	}

	if cfg.insecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	var rt http.RoundTripper = transport
	for _, wrap := range cfg.transports {
		rt = wrap(rt)
	}

	return &http.Client{
		Timeout:   cfg.requestTimeout,
		Transport: rt,
	}
}
