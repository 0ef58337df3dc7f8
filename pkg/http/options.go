package http

import "time"

type ClientOpt func(*clientConfig)

func WithDialTimeout(timeout time.Duration) ClientOpt {
	return func(c *clientConfig) {
		c.dialTimeout = timeout
	}
}

func WithRequestTimeout(timeout time.Duration) ClientOpt {
	return func(c *clientConfig) {
		c.requestTimeout = timeout
	}
}

func WithKeepAlive(keepAlive time.Duration) ClientOpt {
	return func(c *clientConfig) {
		c.keepAlive = keepAlive
	}
}

func WithTLSHandshakeTimeout(timeout time.Duration) ClientOpt {
	return func(c *clientConfig) {
		c.tlsHandshakeTimeout = timeout
	}
}

func WithResponseHeaderTimeout(timeout time.Duration) ClientOpt {
	return func(c *clientConfig) {
		c.responseHeaderTimeout = timeout
	}
}

func WithIdleConnTimeout(timeout time.Duration) ClientOpt {
	return func(c *clientConfig) {
		c.idleConnTimeout = timeout
	}
}

func WithMaxIdleConns(maxConns int) ClientOpt {
	return func(c *clientConfig) {
		c.maxIdleConns = maxConns
	}
}

func WithMaxIdleConnsPerHost(maxConns int) ClientOpt {
	return func(c *clientConfig) {
		c.maxIdleConnsPerHost = maxConns
	}
}

func WithTransport(transport TransportFunc) ClientOpt {
	return func(c *clientConfig) {
		c.transports = append(c.transports, transport)
	}
}

func WithInsecureSkipVerify(skip bool) ClientOpt {
	return func(c *clientConfig) {
		c.insecureSkipVerify = skip
	}
}
