// Package server wraps http.Server with graceful shutdown, functional
// options, and environment-driven configuration.
//
// # Basic Usage
//
//	srv := server.New(":8080",
//		server.WithShutdownTimeout(60*time.Second),
//		server.WithLogger(log),
//	)
//	if err := srv.Start(ctx, handler); err != nil {
//		log.Error("server failed", "error", err)
//	}
//
// Canceling the context triggers a graceful drain bounded by the shutdown
// timeout. For coordinated lifecycles, Run returns a function suitable for
// errgroup.Go:
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, handler))
//
// # Configuration
//
// NewFromConfig builds a server from an env-tagged Config. TLS is enabled
// when both SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE are set; the
// loaded config enforces TLS 1.2 minimum.
//
// Defaults: 15s read/write timeouts, 60s idle timeout, 1MB header cap,
// 30s graceful shutdown. The Server type is safe for concurrent use.
package server
