// Copyright 2024 The PackMySeal Authors. All rights reserved.

// Package session wraps the registry's check and refresh operations into
// a single "ensure I have a live access token" guard.
package session

import (
	"packmyseal.io/pms/pkg/credentials"
	"packmyseal.io/pms/pkg/errors"
	"packmyseal.io/pms/pkg/registry"
	"packmyseal.io/pms/pkg/reporter"
)

// Manager renews the saved access token on demand.
type Manager struct {
	creds    *credentials.Store
	registry *registry.Client
}

// NewManager returns a session manager over the given credential store
// and registry client.
func NewManager(creds *credentials.Store, registry *registry.Client) *Manager {
	return &Manager{
		creds:    creds,
		registry: registry,
	}
}

// EnsureSession guarantees that the returned credential record carries an
// access token that is valid for immediate use. A live token costs one
// round trip, a dead one costs two (check + refresh). A refresh failure
// is terminal for the invoking command, nothing is retried.
func (m *Manager) EnsureSession() (*credentials.Record, error) {
	record, err := m.creds.Load()
	if err != nil {
		return nil, err
	}

	// Any check failure counts as "not alive", not as a fatal error.
	alive, err := m.registry.CheckAlive(record.Token)
	if err == nil && alive {
		return record, nil
	}

	if record.RefreshToken == "" {
		return nil, errors.SessionExpiredNoRefresh
	}

	token, err := m.registry.Refresh(record.RefreshToken)
	if err != nil {
		return nil, err
	}

	record.Token = token
	if err := m.creds.Save(record); err != nil {
		return nil, reporter.NewErrorEvent(
			reporter.FailedSaveCredential,
			err,
			"failed to save the renewed credentials",
		)
	}

	return record, nil
}
