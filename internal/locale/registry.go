// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package locale

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// NotFoundError reports a lookup of an unregistered locale.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("locale %q is not registered", e.Name)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Locale)
)

// Register adds a locale to the registry, replacing any previous locale of
// the same name. Lookups are case-insensitive.
func Register(loc *Locale) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(loc.Name)] = loc
}

// Get returns the registered locale with the given name.
func Get(name string) (*Locale, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	loc, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return loc, nil
}

// Names returns the registered locale names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	var names []string
	for _, loc := range registry {
		names = append(names, loc.Name)
	}
	sort.Strings(names)
	return names
}
