// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/crypto"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/internal/session"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/workers"
	"github.com/MKhiriev/go-vault-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const defaultVaultPath = "vault.db"

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-vault-keeper")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storage, err := openStorage(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening storage")
	}
	defer storage.Close()

	keychain := crypto.NewKeyChainService(cfg.Crypto.KDFIterations)
	vault := service.NewVaultService(storage, keychain, log)
	sessions := session.NewManager(vault, cfg.Session.TTL, log)

	janitor := session.NewJanitor(sessions, cfg.Session.SweepInterval, log)
	workers.NewWorkers(janitor).Run()
	defer janitor.Stop()

	if err := run(context.Background(), vault, sessions); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run(ctx context.Context, vault service.VaultService, sessions *session.Manager) error {
	args := flagRemainder()
	if len(args) == 0 {
		return fmt.Errorf("usage: vault <init|status|add|list|update|delete|export|import|reset>")
	}

	switch command := args[0]; command {
	case "init":
		return vault.Initialize(ctx, readPassphrase())

	case "status":
		state, err := vault.State(ctx)
		if err != nil {
			return err
		}
		fmt.Println(state)
		return nil

	case "add":
		if len(args) < 4 {
			return fmt.Errorf("usage: vault add <website> <username> <secret>")
		}
		token, err := sessions.Open(ctx, readPassphrase())
		if err != nil {
			return err
		}
		defer sessions.Invalidate(token)

		passphrase, err := sessions.Passphrase(token)
		if err != nil {
			return err
		}

		id, err := vault.AddRecord(ctx, models.RecordMeta{WebSite: args[1], Username: args[2]}, args[3], passphrase)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil

	case "list":
		token, err := sessions.Open(ctx, readPassphrase())
		if err != nil {
			return err
		}
		defer sessions.Invalidate(token)

		passphrase, err := sessions.Passphrase(token)
		if err != nil {
			return err
		}

		decrypted, skipped, err := vault.ListDecrypted(ctx, passphrase)
		if err != nil {
			return err
		}
		for _, record := range decrypted {
			fmt.Printf("%s\t%s\t%s\t%s\n", record.ID, record.WebSite, record.Username, record.Password)
		}
		for _, s := range skipped {
			fmt.Fprintf(os.Stderr, "skipped %s: %s\n", s.ID, s.Reason)
		}
		return nil

	case "update":
		if len(args) < 3 {
			return fmt.Errorf("usage: vault update <id> <secret>")
		}
		token, err := sessions.Open(ctx, readPassphrase())
		if err != nil {
			return err
		}
		defer sessions.Invalidate(token)

		passphrase, err := sessions.Passphrase(token)
		if err != nil {
			return err
		}

		return vault.UpdateRecord(ctx, args[1], models.RecordUpdate{Password: &args[2]}, passphrase)

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: vault delete <id>")
		}
		return vault.DeleteRecord(ctx, args[1])

	case "export":
		snapshot, err := vault.ExportAll(ctx)
		if err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(snapshot)

	case "import":
		var snapshot models.Snapshot
		if err := json.NewDecoder(os.Stdin).Decode(&snapshot); err != nil {
			return fmt.Errorf("decode snapshot: %w", err)
		}
		return vault.ImportAll(ctx, snapshot)

	case "reset":
		return vault.Reset(ctx)

	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

func openStorage(cfg *config.StructuredConfig) (store.KeyValueStorage, error) {
	path := cfg.Storage.Path
	if path == "" {
		path = defaultVaultPath
	}

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return store.NewSQLiteStorage(path)
	case config.BackendMemory:
		return store.NewMemoryStorage(), nil
	default:
		return store.NewBoltStorage(path)
	}
}

// readPassphrase takes the passphrase from VAULT_PASSPHRASE or prompts on
// stdin. It is never passed around as an argument or written anywhere.
func readPassphrase() string {
	if passphrase := os.Getenv("VAULT_PASSPHRASE"); passphrase != "" {
		return passphrase
	}

	fmt.Fprint(os.Stderr, "passphrase: ")
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	return scanner.Text()
}

// flagRemainder returns the positional arguments after any -flag pairs
// consumed by the config layer.
func flagRemainder() []string {
	args := os.Args[1:]
	for len(args) > 0 && len(args[0]) > 0 && args[0][0] == '-' {
		// every config flag takes a value, either inline (-flag=value) or
		// as the next argument
		if strings.Contains(args[0], "=") || len(args) == 1 {
			args = args[1:]
		} else {
			args = args[2:]
		}
	}
	return args
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
