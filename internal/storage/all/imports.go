// Package all wires all built-in storage backends into the storage factory.
//
// This package exists purely for side effects: importing it (even as a blank
// import) causes the init functions of each concrete storage backend to run,
// which in turn register their factories with the storage package.
//
// In other words, importing this package makes the following storage kinds
// available at runtime:
//
//   - "sqlite"   (rawg2ttl/internal/storage/sqlite)
//   - "postgres" (rawg2ttl/internal/storage/postgres)
//   - "mysql"    (rawg2ttl/internal/storage/mysql)
//
// Typical usage (in cmd/rawg2ttl/main.go or a similar wiring layer):
//
//	import _ "rawg2ttl/internal/storage/all" // enable all built-in backends
//
// This pattern keeps backend-specific wiring in a single, small package and
// allows the rest of the application to depend only on the storage
// abstraction rather than individual backends. A binary that supports only a
// subset of backends can import the required backend packages directly
// instead of this one.
package all

import (
	_ "rawg2ttl/internal/storage/mysql"
	_ "rawg2ttl/internal/storage/postgres"
	_ "rawg2ttl/internal/storage/sqlite"
)
