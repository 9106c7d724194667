package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectView string

const (
	ViewList     ProjectView = "list"
	ViewBoard    ProjectView = "board"
	ViewCalendar ProjectView = "calendar"
	ViewTimeline ProjectView = "timeline"
)

type TaskOrdering string

const (
	OrderManual    TaskOrdering = "manual"
	OrderDueDate   TaskOrdering = "dueDate"
	OrderPriority  TaskOrdering = "priority"
	OrderCreatedAt TaskOrdering = "createdAt"
)

// ProjectSettings is embedded per-project display configuration.
type ProjectSettings struct {
	DefaultView ProjectView  `gorm:"type:varchar(20);default:'list'" json:"defaultView"`
	TaskOrder   TaskOrdering `gorm:"type:varchar(20);default:'manual'" json:"taskOrder"`
}

type Project struct {
	ID          uint64          `gorm:"primarykey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Color       string          `gorm:"type:varchar(20);default:'#000000'" json:"color"`
	Icon        string          `gorm:"type:varchar(100)" json:"icon"`
	CreatedByID uint64          `gorm:"not null;index" json:"createdById"`
	Settings    ProjectSettings `gorm:"embedded;embeddedPrefix:settings_" json:"settings"`
	IsArchived  bool            `gorm:"default:false;index" json:"isArchived"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relations. Tasks is derived from task.project_id; the project never
	// stores task ids itself, so the two sides cannot drift.
	CreatedBy User            `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	Members   []ProjectMember `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
	Labels    []ProjectLabel  `gorm:"foreignKey:ProjectID" json:"labels,omitempty"`
	Tasks     []Task          `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}

// ProjectLabel is a named tag scoped to a project.
type ProjectLabel struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	ProjectID uint64 `gorm:"not null;index" json:"projectId"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
}
