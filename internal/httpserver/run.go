package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and starts listening on the configured port.
// It blocks until the underlying server stops.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	srv.l.Infof(context.Background(), "HTTP server listening on :%d (%s)", srv.port, srv.mode)
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
