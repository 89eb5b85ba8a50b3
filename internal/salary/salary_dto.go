package salary

type CreateSalaryRequest struct {
	Name          string   `json:"name" binding:"required"`
	Salary        *float64 `json:"salary" binding:"required,gte=0"`
	Currency      string   `json:"currency" binding:"required"`
	OnContract    bool     `json:"on_contract"`
	Department    string   `json:"department" binding:"required"`
	SubDepartment string   `json:"sub_department" binding:"required"`
}

type SalaryResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Salary        float64 `json:"salary"`
	Currency      string  `json:"currency"`
	OnContract    bool    `json:"on_contract"`
	Department    string  `json:"department"`
	SubDepartment string  `json:"sub_department"`
}

type DeleteSalaryResponse struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

type StatsQuery struct {
	Currency   string `form:"currency"`
	OnContract *bool  `form:"on_contract"`
}

// Stats aggregates over an empty record set yield SQL NULLs, which marshal
// as JSON nulls here.
type Stats struct {
	Avg *float64 `json:"avg"`
	Max *float64 `json:"max"`
	Min *float64 `json:"min"`
}

type DepartmentStats struct {
	Department string  `json:"department"`
	Avg        float64 `json:"avg"`
	Max        float64 `json:"max"`
	Min        float64 `json:"min"`
}

type SubDepartmentStats struct {
	Department    string  `json:"department"`
	SubDepartment string  `gorm:"column:sub_department" json:"sub_department"`
	Avg           float64 `json:"avg"`
	Max           float64 `json:"max"`
	Min           float64 `json:"min"`
}
