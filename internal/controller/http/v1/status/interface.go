package status

import (
	"attendance/dashboard/internal/entity"
	"attendance/dashboard/internal/store"
)

type Status interface {
	Statuses() []entity.Status
	GetStatusByID(id string) (entity.Status, bool)
	AddStatus(st entity.Status) entity.Status
	UpdateStatus(id string, p store.StatusPatch) bool
	DeleteStatus(id string) bool
}
