// Package httpclient builds the resty clients used for third-party APIs.
package httpclient

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/TonAldo48/matematch-sub001/internal/logging"
)

// Options configures a client.
type Options struct {
	Name      string // used in logs and span names
	BaseURL   string
	Timeout   time.Duration
	Retries   int
	UserAgent string
	Logger    *slog.Logger
	Transport http.RoundTripper // defaults to http.DefaultTransport
}

// New returns a resty client with tracing, request logging and optional
// retries on 429/5xx responses.
func New(opts Options) *resty.Client {
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	log := logging.Component(opts.Logger, "httpclient").With(slog.String("upstream", opts.Name))

	c := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTransport(otelhttp.NewTransport(base,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return opts.Name + " " + r.Method + " " + r.URL.Path
			}),
		)).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{log: log})

	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		c.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.Retries > 0 {
		c.SetRetryCount(opts.Retries).
			SetRetryWaitTime(200 * time.Millisecond).
			SetRetryMaxWaitTime(2 * time.Second).
			AddRetryCondition(Retryable)
	}

	c.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		log.Debug("upstream_response",
			slog.String("method", res.Request.Method),
			slog.String("path", requestPath(res.Request)),
			slog.Int("status", res.StatusCode()),
			slog.Int64("latency_ms", res.Time().Milliseconds()),
		)
		return nil
	})
	c.OnError(func(req *resty.Request, err error) {
		attrs := []any{
			slog.String("method", req.Method),
			slog.String("path", requestPath(req)),
			slog.String("error", StripURL(err).Error()),
		}
		var re *resty.ResponseError
		if errors.As(err, &re) && re.Response != nil {
			attrs = append(attrs, slog.Int("status", re.Response.StatusCode()))
		}
		log.Warn("upstream_error", attrs...)
	})
	return c
}

// Retryable reports whether a response should be retried: transport errors,
// 429 and 5xx.
func Retryable(res *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if res == nil {
		return false
	}
	code := res.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// StripURL unwraps a transport *url.Error so the request URL, and any
// credentials in its query string, stays out of error text.
func StripURL(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Err != nil {
		return ue.Err
	}
	return err
}

var secretParam = regexp.MustCompile(`(?i)([?&](?:key|api_?key|token|signature)=)[^&\s"]*`)

func redactQuery(s string) string {
	return secretParam.ReplaceAllString(s, "${1}REDACTED")
}

// restyLogger sends resty's internal retry and error messages to slog.
type restyLogger struct{ log *slog.Logger }

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Warn("resty_error", slog.String("detail", redactQuery(fmt.Sprintf(format, v...))))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn("resty_warn", slog.String("detail", redactQuery(fmt.Sprintf(format, v...))))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug("resty_debug", slog.String("detail", redactQuery(fmt.Sprintf(format, v...))))
}

// requestPath avoids logging query strings, which carry API keys.
func requestPath(req *resty.Request) string {
	if req.RawRequest != nil && req.RawRequest.URL != nil {
		return req.RawRequest.URL.Path
	}
	return req.URL
}
