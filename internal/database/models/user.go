package models

// User is an account registered under a company.
// Email is deliberately not unique: one address may hold accounts in several
// companies, and repeated signups under the same company are accepted too.
type User struct {
	BaseModel
	CompanyID string     `json:"company_id" gorm:"not null;size:100;index:idx_users_company_status,priority:1" validate:"required,max=100"`
	Email     string     `json:"email" gorm:"not null;size:255" validate:"required,max=255"`
	Password  string     `json:"-" gorm:"not null;size:255"`
	Role      UserRole   `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	Status    UserStatus `json:"status" gorm:"type:varchar(20);not null;index:idx_users_company_status,priority:2" validate:"required"`

	// Relationships
	Company *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID;references:CompanyID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

