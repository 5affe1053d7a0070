package http

import (
	"fmt"

	"github.com/iancoleman/strcase"

	pkgenv "github.com/atulub35/outsider-client-go/pkg/env"
	pkghttp "github.com/atulub35/outsider-client-go/pkg/http"
	pkglog "github.com/atulub35/outsider-client-go/pkg/log"
)

const (
	// DestinationOutsider is the social platform backend serving
	// auth, posts, users and metrics.
	DestinationOutsider pkghttp.Destination = "outsider"
)

type ClientFactory struct {
	impl pkghttp.ClientFactory
}

func NewClientFactory(logger pkglog.Logger, extraOpts ...pkghttp.ClientOption) *ClientFactory {
	opts := append([]pkghttp.ClientOption{
		pkghttp.WithRequestLogging(logger, pkglog.LevelDebug, pkglog.LevelWarn),
	}, extraOpts...)

	return &ClientFactory{
		impl: pkghttp.NewClientFactory(opts...),
	}
}

// MustInitClient resolves the destination base URL from the
// <DESTINATION>_SERVICE_URL environment variable.
func (f *ClientFactory) MustInitClient(dest pkghttp.Destination, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	hostEnv := fmt.Sprintf("%s_SERVICE_URL", strcase.ToScreamingSnake(string(dest)))
	host := pkgenv.Must(pkgenv.ParseString(hostEnv))

	return f.impl.InitClient(dest, host, extraOpts...)
}

func (f *ClientFactory) InitClient(dest pkghttp.Destination, baseURL string, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	return f.impl.InitClient(dest, baseURL, extraOpts...)
}
