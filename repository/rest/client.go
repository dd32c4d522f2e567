package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"syscall"
	"time"

	"github.com/muhammadheryan/el-rastro/model"
	"github.com/muhammadheryan/el-rastro/utils/logger"
	validatorx "github.com/muhammadheryan/el-rastro/utils/validator"
	"go.uber.org/zap"
)

// Upstream messages answered with 400 for identifiers that can never exist.
var invalidIDMessages = []string{"Invalid ObjectId format", "Invalid id"}

// Request describes one outbound call. Path is relative to the client's base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	// Body is encoded as JSON when not nil.
	Body any
}

// Client issues requests to one sibling service.
type Client struct {
	service    string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the service reachable at baseURL.
func NewClient(service, baseURL string, timeout time.Duration) *Client {
	return &Client{
		service:    service,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Path joins escaped segments into a request path, e.g. Path("api", "v1", "products", id).
func Path(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/")
}

// Fetch issues a public request.
func (c *Client) Fetch(ctx context.Context, req Request) (*http.Response, error) {
	return c.do(ctx, req, nil)
}

// FetchWithToken issues a request carrying the session's bearer token. Without a token it fails
// with ErrUnauthenticated before touching the network. The Authorization header always wins
// over a caller-supplied one; other caller headers are kept.
func (c *Client) FetchWithToken(ctx context.Context, session *model.Session, req Request) (*http.Response, error) {
	token := session.Token()
	if token == "" {
		return nil, ErrUnauthenticated
	}
	return c.do(ctx, req, http.Header{"Authorization": []string{"Bearer " + token}})
}

// Call issues a public request and decodes the response into out.
func (c *Client) Call(ctx context.Context, req Request, out any) error {
	resp, err := c.Fetch(ctx, req)
	if err != nil {
		return err
	}
	return c.DecodeJSON(resp, out)
}

// CallWithToken issues an authenticated request and decodes the response into out.
func (c *Client) CallWithToken(ctx context.Context, session *model.Session, req Request, out any) error {
	resp, err := c.FetchWithToken(ctx, session, req)
	if err != nil {
		return err
	}
	return c.DecodeJSON(resp, out)
}

func (c *Client) do(ctx context.Context, req Request, override http.Header) (*http.Response, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	if req.Body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for key, values := range override {
		httpReq.Header.Del(key)
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			logger.Error("Error connecting to backend API. Is the backend service working?",
				zap.String("service", c.service), zap.String("url", target))
		} else {
			logger.Error("[rest.Fetch] err httpClient.Do",
				zap.String("service", c.service), zap.String("url", target), zap.String("error", err.Error()))
		}
		return nil, err
	}
	return resp, nil
}

// DecodeJSON checks the status of resp, decodes its body into out and validates the result.
// The body is always closed. A nil out only checks the status.
func (c *Client) DecodeJSON(resp *http.Response, out any) error {
	defer resp.Body.Close()

	var target string
	if resp.Request != nil {
		target = resp.Request.URL.String()
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &DecodeError{URL: target, Err: err}
	}

	if err := c.checkStatus(resp.StatusCode, target, payload); err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return &DecodeError{URL: target, Err: err}
	}
	if err := c.validate(out, target); err != nil {
		return &DecodeError{URL: target, Err: err}
	}
	return nil
}

func (c *Client) checkStatus(status int, target string, payload []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusBadRequest:
		for _, msg := range invalidIDMessages {
			if bytes.Contains(payload, []byte(msg)) {
				return ErrNotFound
			}
		}
	}
	return &StatusError{Service: c.service, URL: target, StatusCode: status, Body: string(payload)}
}

// validate runs struct validation on a decoded record. Invalid items of a decoded list are
// dropped and logged so the rest of the list is still served.
func (c *Client) validate(out any, target string) error {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return nil
	}

	elem := v.Elem()
	switch elem.Kind() {
	case reflect.Struct:
		return validatorx.ValidateStruct(out)
	case reflect.Pointer:
		return c.validate(elem.Interface(), target)
	case reflect.Slice:
		kept := reflect.MakeSlice(elem.Type(), 0, elem.Len())
		for i := 0; i < elem.Len(); i++ {
			item := elem.Index(i)
			if err := validateItem(item); err != nil {
				logger.Warn("[rest.DecodeJSON] dropping invalid item",
					zap.String("service", c.service), zap.String("url", target),
					zap.Int("index", i), zap.String("error", err.Error()))
				continue
			}
			kept = reflect.Append(kept, item)
		}
		elem.Set(kept)
	}
	return nil
}

func validateItem(item reflect.Value) error {
	switch item.Kind() {
	case reflect.Struct:
		return validatorx.ValidateStruct(item.Addr().Interface())
	case reflect.Pointer:
		if item.IsNil() || item.Elem().Kind() != reflect.Struct {
			return nil
		}
		return validatorx.ValidateStruct(item.Interface())
	}
	return nil
}
