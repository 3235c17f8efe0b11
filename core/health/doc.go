// Package health provides HTTP handlers for liveness and readiness probes.
//
// Liveness reports that the process is up without touching any dependency.
// Readiness runs the supplied dependency checks and answers 503 when any
// of them fail, so load balancers stop routing traffic to the instance.
//
//	r.Get("/live", health.Liveness)
//	r.Get("/ready", health.Readiness(log, pg.Healthcheck(db)))
package health
