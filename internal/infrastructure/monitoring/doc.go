/*
Package monitoring provides Prometheus metrics for the shell.

# Overview

Every dispatched input line is counted by command and outcome (ok, invalid,
failed). Executed commands are timed, and streaming commands report how
many source bytes they read.

# Usage

	metrics := monitoring.NewMetrics()

	timer := monitoring.NewTimer(metrics, "cat")
	// ... run the command ...
	timer.Stop(monitoring.OutcomeOK)

	metrics.AddBytes("cat", n)

# Metrics Endpoint

The endpoint is only served when an address is configured:

	srv, err := monitoring.NewServer("127.0.0.1:9100", metrics, logger)
	go srv.Serve(ctx)
*/
package monitoring
