package designation

import (
	"attendance/dashboard/internal/entity"
	"attendance/dashboard/internal/store"
)

type Designation interface {
	Designations() []entity.Designation
	GetDesignationByID(id string) (entity.Designation, bool)
	AddDesignation(d entity.Designation) entity.Designation
	UpdateDesignation(id string, p store.DesignationPatch) bool
	DeleteDesignation(id string) bool
}
