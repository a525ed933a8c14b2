// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-storage storage backend name (bbolt, sqlite, memory)
//	-path storage file path
//	-kdf-iterations PBKDF2 work factor
//	-session-ttl session lifetime (e.g., "15m")
//	-sweep-interval janitor sweep interval (e.g., "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlagsFrom(os.Args[1:])
}

// parseFlagsFrom is the testable core of [ParseFlags]; it parses args with
// a private FlagSet so tests never collide on flag.CommandLine.
func parseFlagsFrom(args []string) *StructuredConfig {
	fs := flag.NewFlagSet("go-vault-keeper", flag.ContinueOnError)

	var backend string
	var path string
	var kdfIterations int
	var sessionTTL time.Duration
	var sweepInterval time.Duration
	var jsonConfigPath string

	fs.StringVar(&backend, "storage", "", "Storage backend: bbolt, sqlite or memory")
	fs.StringVar(&path, "path", "", "Storage file path")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 work factor")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 15m)")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Janitor sweep interval (e.g., 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		Storage: Storage{
			Backend: backend,
			Path:    path,
		},
		Crypto: Crypto{
			KDFIterations: kdfIterations,
		},
		Session: Session{
			TTL:           sessionTTL,
			SweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
