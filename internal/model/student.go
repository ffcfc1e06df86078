package model

// Student represents a campus candidate account. The roll number is the
// natural key; email and username are separately unique and usable
// interchangeably for login.
type Student struct {
	RollNumber      string  `json:"rollNumber" gorm:"column:roll_number;primaryKey;size:64"`
	FullName        string  `json:"fullName" gorm:"column:full_name;size:255"`
	Email           string  `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password        string  `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	UserName        string  `json:"userName" gorm:"column:user_name;uniqueIndex;size:255"`
	Dept            string  `json:"dept" gorm:"size:255"`
	Branch          string  `json:"branch" gorm:"size:255"`
	MobileNumber    string  `json:"mobileNumber" gorm:"column:mobile_number;size:15"`
	Semester        int     `json:"semester"`
	Year            int     `json:"year"`
	GPASem1         float64 `json:"gpaSem1" gorm:"column:gpa_sem1"`
	GPASem2         float64 `json:"gpaSem2" gorm:"column:gpa_sem2"`
	GPASem3         float64 `json:"gpaSem3" gorm:"column:gpa_sem3"`
	GPASem4         float64 `json:"gpaSem4" gorm:"column:gpa_sem4"`
	GPASem5         float64 `json:"gpaSem5" gorm:"column:gpa_sem5"`
	GPASem6         float64 `json:"gpaSem6" gorm:"column:gpa_sem6"`
	GPASem7         float64 `json:"gpaSem7" gorm:"column:gpa_sem7"`
	GPASem8         float64 `json:"gpaSem8" gorm:"column:gpa_sem8"`
	ProfileImageURL string  `json:"profileImageUrl" gorm:"column:profile_image_url;size:512"`
	ResumeURL       string  `json:"resumeUrl" gorm:"column:resume_url;size:512"`
	LeetcodeURL     string  `json:"leetcodeUrl" gorm:"column:leetcodeurl;size:512"`
	GithubURL       string  `json:"githubUrl" gorm:"column:github_url;size:512"`
	Verified        bool    `json:"verified" gorm:"default:false"`
}

// TableName overrides the default pluralized table name.
func (Student) TableName() string { return "student" }

func (s *Student) Identity() string     { return s.RollNumber }
func (s *Student) ContactEmail() string { return s.Email }
func (s *Student) PasswordHash() string { return s.Password }
func (s *Student) IsVerified() bool     { return s.Verified }
