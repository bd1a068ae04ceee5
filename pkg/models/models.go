package models

// Domain models matching the database schema in db/migrations/0001_init.sql.
// Timestamps are unix seconds assigned by the store (column defaults and
// update triggers), never by application code.

type User struct {
	ID        int64  `json:"id" db:"id"`
	Username  string `json:"username" db:"username"`
	Password  string `json:"-" db:"password"`
	Email     string `json:"email" db:"email"`
	Name      string `json:"name,omitempty" db:"name"`
	Bio       string `json:"bio,omitempty" db:"bio"`
	Location  string `json:"location,omitempty" db:"location"`
	Phone     string `json:"phone,omitempty" db:"phone"`
	Github    string `json:"github,omitempty" db:"github"`
	Linkedin  string `json:"linkedin,omitempty" db:"linkedin"`
	Website   string `json:"website,omitempty" db:"website"`
	CreatedAt int64  `json:"createdAt" db:"created_at"`
	UpdatedAt int64  `json:"updatedAt" db:"updated_at"`
}

type Portfolio struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"userId" db:"user_id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description,omitempty" db:"description"`
	IsPublic    bool   `json:"isPublic" db:"is_public"`
	CreatedAt   int64  `json:"createdAt" db:"created_at"`
	UpdatedAt   int64  `json:"updatedAt" db:"updated_at"`
}

// PortfolioSection is one ordered layout unit inside a portfolio. Settings is
// an opaque structured blob interpreted by the section renderer.
type PortfolioSection struct {
	ID          int64          `json:"id" db:"id"`
	PortfolioID int64          `json:"portfolioId" db:"portfolio_id"`
	SectionType string         `json:"sectionType" db:"section_type"`
	Title       string         `json:"title" db:"title"`
	OrderIndex  int64          `json:"orderIndex" db:"order_index"`
	IsVisible   bool           `json:"isVisible" db:"is_visible"`
	Settings    map[string]any `json:"settings" db:"settings"`
	CreatedAt   int64          `json:"createdAt" db:"created_at"`
	UpdatedAt   int64          `json:"updatedAt" db:"updated_at"`
}

type Skill struct {
	ID        int64  `json:"id" db:"id"`
	UserID    int64  `json:"userId" db:"user_id"`
	Name      string `json:"name" db:"name"`
	Category  string `json:"category" db:"category"`
	Level     int64  `json:"level" db:"level"`
	CreatedAt int64  `json:"createdAt" db:"created_at"`
	UpdatedAt int64  `json:"updatedAt" db:"updated_at"`
}

type Project struct {
	ID           int64    `json:"id" db:"id"`
	UserID       int64    `json:"userId" db:"user_id"`
	Name         string   `json:"name" db:"name"`
	Description  string   `json:"description" db:"description"`
	Technologies []string `json:"technologies" db:"technologies"`
	GithubURL    string   `json:"githubUrl,omitempty" db:"github_url"`
	DemoURL      string   `json:"demoUrl,omitempty" db:"demo_url"`
	Image        string   `json:"image,omitempty" db:"image"`
	IsFeatured   bool     `json:"isFeatured" db:"is_featured"`
	CreatedAt    int64    `json:"createdAt" db:"created_at"`
	UpdatedAt    int64    `json:"updatedAt" db:"updated_at"`
}

type Experience struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"userId" db:"user_id"`
	Company     string `json:"company" db:"company"`
	Role        string `json:"role" db:"role"`
	StartDate   string `json:"startDate" db:"start_date"`
	EndDate     string `json:"endDate,omitempty" db:"end_date"`
	IsCurrent   bool   `json:"isCurrent" db:"is_current"`
	Description string `json:"description" db:"description"`
	CreatedAt   int64  `json:"createdAt" db:"created_at"`
	UpdatedAt   int64  `json:"updatedAt" db:"updated_at"`
}

type Education struct {
	ID           int64  `json:"id" db:"id"`
	UserID       int64  `json:"userId" db:"user_id"`
	Institution  string `json:"institution" db:"institution"`
	Degree       string `json:"degree" db:"degree"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty" db:"field_of_study"`
	StartDate    string `json:"startDate" db:"start_date"`
	EndDate      string `json:"endDate,omitempty" db:"end_date"`
	IsCurrent    bool   `json:"isCurrent" db:"is_current"`
	Description  string `json:"description,omitempty" db:"description"`
	CreatedAt    int64  `json:"createdAt" db:"created_at"`
	UpdatedAt    int64  `json:"updatedAt" db:"updated_at"`
}

type Certification struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"userId" db:"user_id"`
	Name        string `json:"name" db:"name"`
	Issuer      string `json:"issuer" db:"issuer"`
	IssueDate   string `json:"issueDate,omitempty" db:"issue_date"`
	Category    string `json:"category,omitempty" db:"category"`
	Description string `json:"description,omitempty" db:"description"`
	CreatedAt   int64  `json:"createdAt" db:"created_at"`
	UpdatedAt   int64  `json:"updatedAt" db:"updated_at"`
}
