// Peano CI/CD
//
// Package main provides reproducible builds and tests locally and in GitHub actions.
// It is the main harness for handling nearly all dev operations.
package main

import (
	"context"

	"dagger/peano/internal/dagger"
)

// Peano is the main module for the Peano CI/CD pipeline
type Peano struct {
	// Project source directory
	//
	// +private
	Source *dagger.Directory
}

// New creates a new Peano CI/CD module instance
func New(
	// Project source directory.
	//
	// +defaultPath="/"
	// +ignore=[".git", ".direnv", ".devenv", "build", "tmp"]
	source *dagger.Directory,
) *Peano {
	return &Peano{
		Source: source,
	}
}

// goContainer returns an Alpine-based Go container with the Go caches
// mounted and the project source mounted at /src.
//
// It is the shared foundation for tests, builds, and linting.
func (p *Peano) goContainer() *dagger.Container {
	return dag.Container().
		From("golang:1.25-alpine").
		WithEnvVariable("CGO_ENABLED", "0").
		WithEnvVariable("PATH", "/go/bin:$PATH", dagger.ContainerWithEnvVariableOpts{Expand: true}).
		WithMountedCache("/go/pkg/mod", dag.CacheVolume("go-mod")).
		WithMountedCache("/root/.cache/go-build", dag.CacheVolume("go-build")).
		WithWorkdir("/src").
		WithDirectory("/src", p.Source)
}

// Test runs the peano unit tests via "go test"
func (p *Peano) Test(ctx context.Context) (string, error) {
	return p.goContainer().
		WithExec([]string{"go", "test", "-v", "./..."}).
		Stdout(ctx)
}
