package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/unipoint-lab/appcore/pkg/xcontext"
)

type Client interface {
	Header(name, value string) Client
	Query(query Parameter) Client
	Body(body Body) Client
	GET(ctx context.Context, opts ...Opt) (*Response, error)
	POST(ctx context.Context, opts ...Opt) (*Response, error)
	PUT(ctx context.Context, opts ...Opt) (*Response, error)
	PATCH(ctx context.Context, opts ...Opt) (*Response, error)
	DELETE(ctx context.Context, opts ...Opt) (*Response, error)
}

type Generator interface {
	New(path string, args ...any) Client
}

type defaultGenerator struct {
	baseURL string
}

func NewGenerator(baseURL string) *defaultGenerator {
	return &defaultGenerator{baseURL: baseURL}
}

func (g *defaultGenerator) New(path string, args ...any) Client {
	return &defaultClient{
		baseURL: g.baseURL,
		path:    fmt.Sprintf(path, args...),
		headers: make(http.Header),
	}
}

type Body interface {
	ToReader() (io.Reader, string, error)
}

type Opt interface {
	Do(defaultClient, *http.Request)
}

type defaultClient struct {
	baseURL string
	method  string
	path    string
	headers http.Header
	query   Parameter
	body    Body
}

func (c *defaultClient) Header(name, value string) Client {
	c.headers[name] = []string{value}
	return c
}

func (c *defaultClient) Query(query Parameter) Client {
	c.query = query
	return c
}

func (c *defaultClient) Body(body Body) Client {
	c.body = body
	return c
}

func (c *defaultClient) GET(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodGet
	return c.call(ctx, opts...)
}

func (c *defaultClient) POST(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodPost
	return c.call(ctx, opts...)
}

func (c *defaultClient) PUT(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodPut
	return c.call(ctx, opts...)
}

func (c *defaultClient) PATCH(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodPatch
	return c.call(ctx, opts...)
}

func (c *defaultClient) DELETE(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodDelete
	return c.call(ctx, opts...)
}

// call performs exactly one request. There is no retry, no caching, and no
// deduplication of in-flight requests to the same path.
func (c *defaultClient) call(ctx context.Context, opts ...Opt) (*Response, error) {
	var reader io.Reader
	var contentType string
	if c.body != nil {
		var err error
		reader, contentType, err = c.body.ToReader()
		if err != nil {
			return nil, err
		}
	}

	url := c.baseURL + c.path
	if c.query != nil {
		url = url + "?" + c.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, c.method, url, reader)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Add("Content-Type", contentType)
	}

	for h, values := range c.headers {
		for _, v := range values {
			req.Header.Add(h, v)
		}
	}

	for _, opt := range opts {
		opt.Do(*c, req)
	}

	result, err := xcontext.HTTPClient(ctx).Do(req)
	if err != nil {
		xcontext.Logger(ctx).Warnf("An error occured when calling to %s: %v", url, err)
		return nil, err
	}
	defer result.Body.Close()

	response := &Response{
		Code:   result.StatusCode,
		Header: result.Header,
	}

	body, err := io.ReadAll(result.Body)
	if err != nil {
		xcontext.Logger(ctx).Warnf("An error occured when reading body of %s: %v", url, err)
		return nil, err
	}

	response.RawBody = body
	if len(body) == 0 {
		response.Body = JSON{}
	} else if b, err := bytesToJSON(body); err == nil {
		response.Body = b
	} else if b, err := bytesToArray(body); err == nil {
		response.Body = b
	}

	if response.Body == nil {
		xcontext.Logger(ctx).Warnf("An error occured when parsing body of %s", url)
		return nil, fmt.Errorf("unexpected response body of %s", url)
	}

	return response, nil
}
