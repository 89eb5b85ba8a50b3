package salary

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, record *Salary) error
	Delete(ctx context.Context, id int64) (int64, error)
	FindAll(ctx context.Context) ([]Salary, error)
	Stats(ctx context.Context, filter Filter) (Stats, error)
	StatsByDepartment(ctx context.Context, filter Filter) ([]DepartmentStats, error)
	StatsByDepartmentAndSubDepartment(ctx context.Context, filter Filter) ([]SubDepartmentStats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, record *Salary) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Delete returns the number of rows removed; deleting a nonexistent id is
// not an error, it simply matches zero rows.
func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&Salary{}, id)
	return tx.RowsAffected, tx.Error
}

func (r *repository) FindAll(ctx context.Context) ([]Salary, error) {
	var records []Salary
	err := r.db.WithContext(ctx).Find(&records).Error
	return records, err
}

func (r *repository) Stats(ctx context.Context, filter Filter) (Stats, error) {
	var stats Stats
	err := r.filtered(ctx, filter).
		Select("AVG(salary) AS avg, MAX(salary) AS max, MIN(salary) AS min").
		Scan(&stats).Error
	return stats, err
}

func (r *repository) StatsByDepartment(ctx context.Context, filter Filter) ([]DepartmentStats, error) {
	var rows []DepartmentStats
	err := r.filtered(ctx, filter).
		Select("department, AVG(salary) AS avg, MAX(salary) AS max, MIN(salary) AS min").
		Group("department").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) StatsByDepartmentAndSubDepartment(ctx context.Context, filter Filter) ([]SubDepartmentStats, error) {
	var rows []SubDepartmentStats
	err := r.filtered(ctx, filter).
		Select("department, sub_department, AVG(salary) AS avg, MAX(salary) AS max, MIN(salary) AS min").
		Group("department").
		Group("sub_department").
		Scan(&rows).Error
	return rows, err
}

// filtered applies the optional equality constraints as a conjunction. An
// empty filter leaves the query unconstrained.
func (r *repository) filtered(ctx context.Context, filter Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&Salary{})
	if filter.Currency != "" {
		query = query.Where("currency = ?", filter.Currency)
	}
	if filter.OnContract != nil {
		onContract := 0
		if *filter.OnContract {
			onContract = 1
		}
		query = query.Where("on_contract = ?", onContract)
	}
	return query
}
