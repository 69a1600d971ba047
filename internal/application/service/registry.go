package service

import (
	"sort"

	"alfred/internal/application/port/output"
	"alfred/internal/domain/entity"
)

var _ output.ActionRegistry = (*ActionRegistryImpl)(nil)

type ActionRegistryImpl struct {
	actions map[entity.Intent]output.ActionPort
}

func NewActionRegistry() *ActionRegistryImpl {
	return &ActionRegistryImpl{
		actions: make(map[entity.Intent]output.ActionPort),
	}
}

func (r *ActionRegistryImpl) Register(action output.ActionPort) {
	r.actions[action.Intent()] = action
}

func (r *ActionRegistryImpl) Get(intent entity.Intent) (output.ActionPort, bool) {
	action, ok := r.actions[intent]
	return action, ok
}

// All returns the registered actions ordered by intent name.
func (r *ActionRegistryImpl) All() []output.ActionPort {
	result := make([]output.ActionPort, 0, len(r.actions))
	for _, action := range r.actions {
		result = append(result, action)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Intent() < result[j].Intent()
	})
	return result
}
