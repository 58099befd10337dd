// Package store keeps the catalog, wallets and read models in memory.
// A Memory is owned by whoever creates it and handed to the repos by reference.
package store

import (
	"sync"

	"campustix/entity"
)

type Memory struct {
	lock sync.RWMutex

	// events are ordered newest first
	events         []entity.Event
	tiers          map[string][]entity.TicketTier
	resaleListings map[string][]entity.ResaleListing
	reviews        map[string][]entity.Review
	users          map[string]entity.User
}

func NewMemory() *Memory {
	return &Memory{
		tiers:          make(map[string][]entity.TicketTier),
		resaleListings: make(map[string][]entity.ResaleListing),
		reviews:        make(map[string][]entity.Review),
		users:          make(map[string]entity.User),
	}
}

func (m *Memory) eventIndex(eventID string) int {
	for i, e := range m.events {
		if e.ID == eventID {
			return i
		}
	}
	return -1
}
