package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/dmitrijs2005/tqlclient/internal/common"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// descriptor fully determines one request/response cycle. name is the
// stable identifier used for the tracing span and in error messages.
type descriptor struct {
	name   string
	verb   string
	path   string
	noAuth bool // sign-in is the only call that carries no bearer token
}

// invoke executes one request/response cycle against the server and decodes
// the result into T.
//
// A nil body means no request body at all; any other value is JSON-encoded.
// Unless the descriptor says otherwise, a fresh bearer token is fetched from
// the token cache on every call, so a mid-session refresh is picked up
// transparently.
//
// Failures map onto the error taxonomy: *TransportError for network and
// encode failures, *SyntaxError/*APIError for the server's structured
// rejections, *ProtocolError when the response does not match the contract.
func invoke[T any](ctx context.Context, c *Client, d descriptor, body any) (T, error) {
	var zero T

	ctx, span := c.tracer.Start(ctx, d.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", d.verb),
			attribute.String("url.path", d.path),
		))
	defer span.End()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return zero, spanError(span, &TransportError{Method: d.name, Err: fmt.Errorf("encode request body: %w", err)})
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, d.verb, c.endpoint+d.path, reader)
	if err != nil {
		return zero, spanError(span, &TransportError{Method: d.name, Err: err})
	}
	if body != nil {
		req.Header.Set(common.ContentTypeHeader, common.ContentTypeJSON)
	}
	req.Header.Set(common.RequestIDHeader, uuid.NewString())

	if !d.noAuth {
		bearer, err := c.tokens.Get(ctx, c.creds)
		if err != nil {
			return zero, spanError(span, err)
		}
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, spanError(span, &TransportError{Method: d.name, Err: err})
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, spanError(span, &TransportError{Method: d.name, Err: fmt.Errorf("read response body: %w", err)})
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.log.Debug(ctx, "api call", "method", d.name, "status", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return zero, spanError(span, decodeAPIError(d, resp.StatusCode, raw))
	}

	v, err := decodeResponse[T](d, resp.Header.Get(common.ContentTypeHeader), raw)
	if err != nil {
		return zero, spanError(span, err)
	}
	return v, nil
}

// decodeAPIError turns a non-success response into a business error when the
// body matches the {code,message} shape, discriminated on the code field.
// Anything else means the server returned neither success nor a recognized
// error, which is a contract violation.
func decodeAPIError(d descriptor, status int, raw []byte) error {
	var e APIError
	if err := json.Unmarshal(raw, &e); err != nil || e.Code == "" {
		return &ProtocolError{
			Method: d.name,
			Reason: fmt.Sprintf("status %d with unrecognized error body", status),
			Err:    err,
		}
	}
	if e.Code == SyntaxErrorCode {
		return &SyntaxError{APIError: e}
	}
	return &e
}

// decodeResponse classifies a successful response by its content type.
// No content type at all is a void success and decodes to the zero value of
// the expected shape. Plain text fills a string-shaped T. JSON is parsed
// into T. Any other content type, or a decode mismatch, is a protocol
// violation rather than a silently wrong value.
func decodeResponse[T any](d descriptor, contentType string, raw []byte) (T, error) {
	var v T

	if contentType == "" {
		return v, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return v, &ProtocolError{Method: d.name, Reason: fmt.Sprintf("malformed content type %q", contentType), Err: err}
	}

	switch mediaType {
	case common.ContentTypeJSON:
		if err := json.Unmarshal(raw, &v); err != nil {
			return v, &ProtocolError{Method: d.name, Reason: "response does not match expected shape", Err: err}
		}
		return v, nil

	case common.ContentTypeText:
		s, ok := any(&v).(*string)
		if !ok {
			return v, &ProtocolError{Method: d.name, Reason: "plain-text response for a non-text shape"}
		}
		*s = string(raw)
		return v, nil

	default:
		return v, &ProtocolError{Method: d.name, Reason: fmt.Sprintf("unsupported content type %q", mediaType)}
	}
}

func spanError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
