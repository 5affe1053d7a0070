package http

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/atulub35/outsider-client-go/pkg/log"
)

type (
	Destination string

	ClientOption func(*ClientImpl)

	// TokenProvider returns the current bearer credential.
	// When ok is false the Authorization header is omitted entirely.
	TokenProvider func() (token string, ok bool)

	// UnauthorizedHandler is invoked once for every response with
	// StatusUnauthorized, before the response is returned to the caller.
	UnauthorizedHandler func(ctx context.Context)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
		With(opts ...ClientOption) Client
	}

	ClientImpl struct {
		DestinationName string
		RESTClient      *resty.Client
		opts            []ClientOption
	}
)

func NewClient(opts ...ClientOption) Client {
	client := ClientImpl{
		DestinationName: "",
		RESTClient:      resty.New(),
		opts:            opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c ClientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.RESTClient.NewRequest().SetContext(ctx)
}

func (c ClientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func WithClientDestination(name, url string) ClientOption {
	return func(c *ClientImpl) {
		c.DestinationName = name
		c.RESTClient.SetBaseURL(url)
	}
}

func WithBearerAuth(provider TokenProvider) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			token, ok := provider()
			if !ok {
				return nil
			}

			req.SetAuthScheme("Bearer")
			req.SetAuthToken(token)
			return nil
		})
	}
}

func WithUnauthorizedHandler(handler UnauthorizedHandler) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			if resp.StatusCode() == http.StatusUnauthorized {
				handler(resp.Request.Context())
			}
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	const destinationNameLogField = "destinationName"
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			loggerWithFields := logger.With(log.Fields{
				destinationNameLogField: getDestinationNameForLogging(c),
				"method":                resp.Request.Method,
				"url":                   resp.Request.URL,
				"responseCode":          resp.StatusCode(),
				"duration":              resp.Time().String(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				loggerWithFields.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				loggerWithFields.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			logger.
				With(log.Fields{
					destinationNameLogField: getDestinationNameForLogging(c),
					"method":                req.Method,
					"url":                   req.URL,
				}).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

type ClientFactory struct {
	baseOpts []ClientOption
}

func NewClientFactory(opts ...ClientOption) ClientFactory {
	return ClientFactory{
		baseOpts: opts,
	}
}

func (f *ClientFactory) InitClient(dest Destination, baseURL string, extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(extraOpts)+1)
	opts = append(opts, WithClientDestination(string(dest), baseURL))
	opts = append(opts, extraOpts...)

	return f.httpClient(opts...)
}

func (f *ClientFactory) httpClient(extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(f.baseOpts)+len(extraOpts))
	opts = append(opts, f.baseOpts...)
	opts = append(opts, extraOpts...)

	return NewClient(opts...)
}

func getDestinationNameForLogging(c *ClientImpl) string {
	if c.DestinationName != "" {
		return c.DestinationName
	}
	return "-"
}
