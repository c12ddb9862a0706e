// Package resources is the read-only roster of operators and machines.
package resources

import (
	"strings"

	"github.com/dyluth/forge/pkg/fab"
)

// Registry serves a fixed list of resources. It is never mutated after construction.
type Registry struct {
	resources []fab.Resource
}

// NewRegistry copies the given resources into a registry.
func NewRegistry(resources []fab.Resource) *Registry {
	r := &Registry{resources: make([]fab.Resource, len(resources))}
	copy(r.resources, resources)
	return r
}

// List returns a copy of the roster in seed order.
func (r *Registry) List() []fab.Resource {
	out := make([]fab.Resource, len(r.resources))
	copy(out, r.resources)
	return out
}

// Get returns the resource with the given ID.
func (r *Registry) Get(id string) (fab.Resource, bool) {
	for _, res := range r.resources {
		if res.ID == id {
			return res, true
		}
	}
	return fab.Resource{}, false
}

// FindByOperator returns the resource with the given operator ID (case-insensitive).
func (r *Registry) FindByOperator(operatorID string) (fab.Resource, bool) {
	for _, res := range r.resources {
		if strings.EqualFold(res.OperatorID, operatorID) {
			return res, true
		}
	}
	return fab.Resource{}, false
}

// Summary aggregates the roster for the resources page header.
type Summary struct {
	Total          int
	ByStatus       map[fab.ResourceStatus]int
	MeanEfficiency int // Mean efficiency of BUSY resources, 0 if none are busy
}

// Summary counts resources per status and averages busy efficiency.
func (r *Registry) Summary() Summary {
	s := Summary{
		Total:    len(r.resources),
		ByStatus: make(map[fab.ResourceStatus]int),
	}

	busy, sum := 0, 0
	for _, res := range r.resources {
		s.ByStatus[res.Status]++
		if res.Status == fab.ResourceBusy {
			busy++
			sum += res.Efficiency
		}
	}
	if busy > 0 {
		s.MeanEfficiency = sum / busy
	}
	return s
}
