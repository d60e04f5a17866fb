// Package app wires the CreditLens application together and manages its
// lifecycle. It loads configuration, initializes logging and observability,
// builds the dataset store and services, mounts the HTTP routes, and runs
// the server with graceful shutdown.
//
// # Initialization Flow
//
// The typical initialization sequence:
//
//	1. Load configuration from environment and files
//	2. Initialize structured logging and OpenTelemetry
//	3. Load the credit dataset into the in-memory store
//	4. Create the WebSocket hub and domain services
//	5. Mount HTTP handlers and middleware
//	6. Configure the HTTP server
//
// # Usage
//
// The main entry point is typically:
//
//	application, err := app.NewApplication(frontendFS)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := application.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Run blocks until SIGINT or SIGTERM, then stops the server, closes
// WebSocket connections, and flushes telemetry before returning.
//
// All initialization errors are returned to the caller. The package does
// not call os.Exit() directly, leaving exit control to main.
package app
