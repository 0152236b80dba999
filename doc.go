// Package osrmkit provides a Go embedding boundary for an OSRM-style
// multi-service routing engine.
//
// The library exposes six query services (Route, Table, Nearest, Match,
// Trip, Tile) behind explicitly managed handles: a configuration is built
// up, consumed exactly once to construct an engine, and the engine then
// answers any number of concurrent read-only queries. Every fallible
// operation reports failure through a coded error, and serialized query
// results can be moved out of a response with single-owner semantics.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	osrmkit/             Root package with the ABI version surface
//	├── config/          Construction-time settings, finalized once
//	├── engine/          Engine lifecycle and query dispatch
//	├── params/          Per-service request builders
//	├── response/        Per-service result holders and buffer transfer
//	├── errors/          Coded errors carried out of every fallible call
//	└── internal/localgraph/  Bundled in-memory graph backend
//
// # Quick Start
//
// Build a config, construct an engine, run a query:
//
//	cfg, err := config.New("monaco.osrm.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.SetAlgorithm(config.AlgorithmMLD)
//
//	eng, err := engine.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close()
//
//	p := params.NewRoute()
//	p.AddCoordinate(7.4194, 43.7384)
//	p.AddCoordinate(7.4265, 43.7396)
//
//	resp, err := eng.Route(ctx, p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer resp.Close()
//
//	blob, err := resp.TakeBlob()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer blob.Release()
//	data, _ := blob.Data()
//	os.Stdout.Write(data)
//
// # Error Handling
//
// Failures carry a short machine-readable code next to a human-readable
// message. Match on codes with errors.HasCode:
//
//	if errors.HasCode(err, errors.CodeNoRoute) {
//	    // geometrically valid request, but no connecting path
//	}
//
// # Thread Safety
//
// An Engine is safe for unsynchronized concurrent queries once
// constructed. Params and Response objects belong to a single goroutine;
// a fully built Params may be shared across concurrent queries as long as
// no setter runs concurrently. Closing an Engine while queries are in
// flight is the caller's responsibility to avoid.
//
// # ABI Versioning
//
// Callers embedding this library behind a foreign-language boundary must
// check IsABICompatible before any other call; opaque handle layout may
// change between major versions.
package osrmkit
