package services

import "io"

type countingReadCloser struct {
	rc    io.ReadCloser
	bytes int64
}

func newCountingReadCloser(rc io.ReadCloser) *countingReadCloser {
	return &countingReadCloser{rc: rc}
}

func (c *countingReadCloser) Read(p []byte) (int, error) {
	n, err := c.rc.Read(p)
	c.bytes += int64(n)
	return n, err
}

func (c *countingReadCloser) Close() error { return c.rc.Close() }

func (c *countingReadCloser) Bytes() int64 { return c.bytes }
