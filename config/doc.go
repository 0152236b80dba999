// Package config accumulates construction-time engine settings.
//
// A Config is a mutable draft: setters validate their input and mutate it
// in place. Finalize turns the draft into an immutable Snapshot consumed
// by engine construction; after that, every further use of the Config
// fails with AlreadyConsumed. Numeric limits accept -1 (or -1.0) as the
// unlimited sentinel.
package config
