package repository

import (
	"fmt"
	"slices"
	"slotbook/internal/domains/catalog/model"
)

// Catalog is a read-only lookup of resources and their priced slots.
// It is built once at startup and needs no locking.
type Catalog interface {
	GetResource(name string) (model.Resource, error)
	Resources() []model.Resource
}

type catalogImpl struct {
	ordered []model.Resource
	byName  map[string]int
}

// New validates the resources and freezes them into a Catalog. Resource and
// slot order is preserved; slot order decides which slot prices a request
// when more than one would match.
func New(resources []model.Resource) (Catalog, error) {
	c := &catalogImpl{
		ordered: make([]model.Resource, 0, len(resources)),
		byName:  make(map[string]int, len(resources)),
	}

	for _, resource := range resources {
		if resource.Name == "" {
			return nil, fmt.Errorf("resource name cannot be empty")
		}

		if _, dup := c.byName[resource.Name]; dup {
			return nil, fmt.Errorf("duplicate resource %q", resource.Name)
		}

		if err := validateSlots(resource); err != nil {
			return nil, err
		}

		c.byName[resource.Name] = len(c.ordered)
		c.ordered = append(c.ordered, cloneResource(resource))
	}

	return c, nil
}

func validateSlots(resource model.Resource) error {
	for i, slot := range resource.Slots {
		if !slot.Range.Valid() {
			return fmt.Errorf("resource %q: slot %s is empty or inverted", resource.Name, slot.Range)
		}

		if slot.PricePerHour < 0 {
			return fmt.Errorf("resource %q: slot %s has negative price", resource.Name, slot.Range)
		}

		for _, prev := range resource.Slots[:i] {
			if prev.Range.Overlaps(slot.Range) {
				return fmt.Errorf("resource %q: slot %s overlaps %s", resource.Name, slot.Range, prev.Range)
			}
		}
	}

	return nil
}

func (c *catalogImpl) GetResource(name string) (model.Resource, error) {
	idx, ok := c.byName[name]
	if !ok {
		return model.Resource{}, fmt.Errorf("%w: %q", model.ErrUnknownResource, name)
	}

	return cloneResource(c.ordered[idx]), nil
}

func (c *catalogImpl) Resources() []model.Resource {
	out := make([]model.Resource, len(c.ordered))
	for i, resource := range c.ordered {
		out[i] = cloneResource(resource)
	}

	return out
}

// cloneResource detaches the slot slice so callers cannot reprice the catalog.
func cloneResource(resource model.Resource) model.Resource {
	return model.Resource{Name: resource.Name, Slots: slices.Clone(resource.Slots)}
}
