package models

import (
	"time"

	"gorm.io/gorm"
)

type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "local"
	AuthProviderGoogle AuthProvider = "google"
	AuthProviderGithub AuthProvider = "github"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Preferences holds per-user UI and notification settings.
type Preferences struct {
	Theme              Theme `gorm:"type:varchar(20);default:'system'" json:"theme"`
	EmailNotifications bool  `gorm:"default:true" json:"emailNotifications"`
	PushNotifications  bool  `gorm:"default:true" json:"pushNotifications"`
}

// Profile is embedded display data for a user.
type Profile struct {
	FirstName   string      `gorm:"type:varchar(100)" json:"firstName"`
	LastName    string      `gorm:"type:varchar(100)" json:"lastName"`
	Avatar      string      `gorm:"type:varchar(512)" json:"avatar"`
	Bio         string      `gorm:"type:text" json:"bio"`
	Preferences Preferences `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
}

type User struct {
	ID           uint64       `gorm:"primarykey" json:"id"`
	Username     string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string       `gorm:"type:varchar(255);not null" json:"-"`
	Profile      Profile      `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	AuthProvider AuthProvider `gorm:"type:varchar(20);not null;default:'local'" json:"authProvider"`

	IsEmailVerified      bool       `gorm:"default:false" json:"isEmailVerified"`
	ResetPasswordToken   string     `gorm:"type:varchar(512)" json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
	LastLogin            *time.Time `json:"lastLogin"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CreatedProjects []Project       `gorm:"foreignKey:CreatedByID" json:"-"`
	CreatedTasks    []Task          `gorm:"foreignKey:CreatedByID" json:"-"`
	Memberships     []ProjectMember `gorm:"foreignKey:UserID" json:"-"`
}
