// Package utils provides internal utility functions used throughout the daylog packages.
//
// This package contains helpers for resolving and preparing the log directory:
// joining the configured relative path onto the process root while refusing
// traversal outside of it, creating the directory tree, and probing whether the
// process can actually write there. These utilities are for internal use only.
package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hyp3rd/ewrap"
)

const probePattern = ".daylog-probe-*"

// ResolveLogDir joins rel onto root and returns the absolute, cleaned directory.
//
// The function performs several checks:
// - Rejecting an empty relative path
// - Normalizing the path using filepath.Clean
// - Preventing directory traversal sequences (..) from escaping root
//
// An empty root resolves against the current working directory.
func ResolveLogDir(root, rel string) (string, error) {
	if strings.TrimSpace(rel) == "" {
		return "", ewrap.New("log path cannot be empty")
	}

	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", ewrap.Wrap(err, "resolving working directory")
		}

		root = wd
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", ewrap.Wrap(err, "resolving root directory").WithMetadata("root", root)
	}

	cleanRel := filepath.Clean(rel)
	if cleanRel == ".." || strings.HasPrefix(cleanRel, ".."+string(filepath.Separator)) {
		return "", ewrap.New("invalid log path contains directory traversal sequence").
			WithMetadata("path", rel)
	}

	full := filepath.Join(absRoot, cleanRel)

	relToRoot, err := filepath.Rel(absRoot, full)
	if err != nil || relToRoot == ".." || strings.HasPrefix(relToRoot, ".."+string(filepath.Separator)) {
		return "", ewrap.New("log path resolves outside of the root directory").
			WithMetadata("root", absRoot).
			WithMetadata("path", rel)
	}

	return full, nil
}

// EnsureDir creates dir and any missing parents with mode when it does not exist.
func EnsureDir(dir string, mode os.FileMode) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return ewrap.New("log path is not a directory").WithMetadata("path", dir)
		}

		return nil
	}

	if !os.IsNotExist(err) {
		return ewrap.Wrap(err, "inspecting log directory").WithMetadata("path", dir)
	}

	err = os.MkdirAll(dir, mode)
	if err != nil {
		return ewrap.Wrap(err, "creating log directory").WithMetadata("path", dir)
	}

	return nil
}

// Writable reports whether the process can create files inside dir.
// It creates and removes a probe file, which is the only portable check.
func Writable(dir string) error {
	probe, err := os.CreateTemp(dir, probePattern)
	if err != nil {
		return ewrap.Wrap(err, "log directory is not writable").WithMetadata("path", dir)
	}

	name := probe.Name()

	err = probe.Close()
	if err != nil {
		return ewrap.Wrap(err, "closing probe file").WithMetadata("path", name)
	}

	err = os.Remove(name)
	if err != nil {
		return ewrap.Wrap(err, "removing probe file").WithMetadata("path", name)
	}

	return nil
}
