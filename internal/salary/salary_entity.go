package salary

// Salary is a row in the salaries table. on_contract is persisted as 0/1 and
// exposed as a boolean at the service layer.
type Salary struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	Name          string
	Salary        float64
	Currency      string
	OnContract    int `gorm:"column:on_contract"`
	Department    string
	SubDepartment string `gorm:"column:sub_department"`
}

func (Salary) TableName() string {
	return "salaries"
}

// Filter narrows aggregate queries. Zero-valued fields apply no constraint;
// when both are set, both must hold. Currency is expected uppercased by the
// caller.
type Filter struct {
	Currency   string
	OnContract *bool
}
