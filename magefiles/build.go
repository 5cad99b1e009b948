//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const versionPkg = "github.com/philipparndt/gobound/version"

type Build mg.Namespace

// Builds bin/gobound with version information
func (Build) CLI() error {
	if err := os.MkdirAll("bin", 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", filepath.Join("bin", "gobound"), "./cmd/gobound")
}

// Installs gobound into GOPATH/bin
func (Build) Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/gobound")
}

// Runs go mod tidy
func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

// Runs the unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Runs the unit tests with the race detector
func Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Runs vet and the tests, then builds the CLI
func All() {
	mg.SerialDeps(Vet, Test, Build.CLI)
}

func ldflags() string {
	version := envOr("GOBOUND_VERSION", "dev")
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-X %[1]s.Version=%[2]s -X %[1]s.GitCommit=%[3]s -X %[1]s.BuildDate=%[4]s",
		versionPkg, version, commit, date)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
