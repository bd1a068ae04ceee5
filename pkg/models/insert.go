package models

// Insert shapes: the subset of fields a client may supply at creation time.
// Server-generated fields (id, createdAt, updatedAt) are deliberately absent;
// the validation gateway rejects them as unknown properties.

type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Website  string `json:"website"`
}

type InsertPortfolio struct {
	UserID      int64  `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"isPublic"`
}

type InsertPortfolioSection struct {
	PortfolioID int64          `json:"portfolioId"`
	SectionType string         `json:"sectionType"`
	Title       string         `json:"title"`
	OrderIndex  int64          `json:"orderIndex"`
	IsVisible   *bool          `json:"isVisible"`
	Settings    map[string]any `json:"settings"`
}

type InsertSkill struct {
	UserID   int64  `json:"userId"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int64  `json:"level"`
}

type InsertProject struct {
	UserID       int64    `json:"userId"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl"`
	DemoURL      string   `json:"demoUrl"`
	Image        string   `json:"image"`
	IsFeatured   bool     `json:"isFeatured"`
}

type InsertExperience struct {
	UserID      int64  `json:"userId"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsCurrent   bool   `json:"isCurrent"`
	Description string `json:"description"`
}

type InsertEducation struct {
	UserID       int64  `json:"userId"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	IsCurrent    bool   `json:"isCurrent"`
	Description  string `json:"description"`
}

type InsertCertification struct {
	UserID      int64  `json:"userId"`
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	IssueDate   string `json:"issueDate"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
