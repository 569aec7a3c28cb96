// Package mock provides an in-process dately service double for tests and
// the CLI demo mode. It reproduces the deployment's wire contract, including
// the raw-token Authorization header on both the login response and every
// authenticated request.
package mock
