package model

// Recruiter represents a hiring-side account, keyed by email. The numeric ID
// exists in the table but is not the primary key.
type Recruiter struct {
	Email       string `json:"email" gorm:"primaryKey;size:255"`
	FullName    string `json:"fullName" gorm:"column:full_name;size:255"`
	Password    string `json:"-" gorm:"size:255"` // Never expose in JSON
	UserName    string `json:"userName" gorm:"column:user_name;uniqueIndex;size:255"`
	CompanyName string `json:"companyName" gorm:"column:company_name;size:255"`
	ImageURL    string `json:"imageUrl" gorm:"column:image_url;size:512"`
	Mobile      string `json:"mobile" gorm:"size:15"`
	Role        string `json:"role" gorm:"size:255"`
	ID          int64  `json:"id" gorm:"autoIncrement;unique"`
	Verified    bool   `json:"verified" gorm:"not null;default:false"`
}

// TableName overrides the default pluralized table name.
func (Recruiter) TableName() string { return "recruiter" }

func (r *Recruiter) Identity() string     { return r.Email }
func (r *Recruiter) ContactEmail() string { return r.Email }
func (r *Recruiter) PasswordHash() string { return r.Password }
func (r *Recruiter) IsVerified() bool     { return r.Verified }
