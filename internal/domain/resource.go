package domain

// ResourceStatus represents the availability status of a resource
type ResourceStatus string

const (
	ResourceAvailable   ResourceStatus = "available"
	ResourceMaintenance ResourceStatus = "maintenance"
)

// Resource represents a bookable campus resource (study room, lab, etc.)
type Resource struct {
	ID       string
	Type     string // free-form category: study-room, conf-room, lab, ...
	Name     string
	Status   ResourceStatus // empty means no status tracking for this resource
	Capacity int            // 0 means not specified
}

// EffectiveCapacity returns the capacity used for resource-minute accounting
// Resources without an explicit capacity count as a single unit
func (r *Resource) EffectiveCapacity() int {
	if r.Capacity <= 0 {
		return DefaultCapacity
	}
	return r.Capacity
}

// IsAvailable returns true if the resource is bookable
// Resources without a status are treated as available
func (r *Resource) IsAvailable() bool {
	return r.Status == "" || r.Status == ResourceAvailable
}
