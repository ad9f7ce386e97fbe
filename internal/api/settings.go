package api

import (
	"context"

	"github.com/leadline-crm/leadline/internal/model"
)

// Branches lists the configured branches.
func (c *Client) Branches(ctx context.Context) ([]model.Branch, error) {
	var branches []model.Branch
	if err := c.Get(ctx, "/settings/branches", nil, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

// CreateBranch adds a branch.
func (c *Client) CreateBranch(ctx context.Context, b model.Branch) (model.Branch, error) {
	var created model.Branch
	if err := c.Post(ctx, "/settings/branches", b, &created); err != nil {
		return model.Branch{}, err
	}
	return created, nil
}

// UpdateBranch renames a branch.
func (c *Client) UpdateBranch(ctx context.Context, b model.Branch) (model.Branch, error) {
	var updated model.Branch
	if err := c.Put(ctx, "/settings/branches/"+b.ID, b, &updated); err != nil {
		return model.Branch{}, err
	}
	return updated, nil
}

// DeleteBranch removes a branch.
func (c *Client) DeleteBranch(ctx context.Context, id string) error {
	return c.Delete(ctx, "/settings/branches/"+id)
}

// Courses lists the configured courses with their specializations.
func (c *Client) Courses(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := c.Get(ctx, "/settings/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CreateCourse adds a course.
func (c *Client) CreateCourse(ctx context.Context, course model.Course) (model.Course, error) {
	var created model.Course
	if err := c.Post(ctx, "/settings/courses", course, &created); err != nil {
		return model.Course{}, err
	}
	return created, nil
}

// UpdateCourse replaces a course definition.
func (c *Client) UpdateCourse(ctx context.Context, course model.Course) (model.Course, error) {
	var updated model.Course
	if err := c.Put(ctx, "/settings/courses/"+course.ID, course, &updated); err != nil {
		return model.Course{}, err
	}
	return updated, nil
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.Delete(ctx, "/settings/courses/"+id)
}

// Employees lists the configured employees.
func (c *Client) Employees(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := c.Get(ctx, "/settings/employees", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// CreateEmployee adds an employee.
func (c *Client) CreateEmployee(ctx context.Context, e model.Employee) (model.Employee, error) {
	var created model.Employee
	if err := c.Post(ctx, "/settings/employees", e, &created); err != nil {
		return model.Employee{}, err
	}
	return created, nil
}

// UpdateEmployee replaces an employee record.
func (c *Client) UpdateEmployee(ctx context.Context, e model.Employee) (model.Employee, error) {
	var updated model.Employee
	if err := c.Put(ctx, "/settings/employees/"+e.ID, e, &updated); err != nil {
		return model.Employee{}, err
	}
	return updated, nil
}

// DeleteEmployee removes an employee.
func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.Delete(ctx, "/settings/employees/"+id)
}

// Sources lists the configured lead sources.
func (c *Client) Sources(ctx context.Context) ([]model.LeadSource, error) {
	var sources []model.LeadSource
	if err := c.Get(ctx, "/settings/lead-sources", nil, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

// CreateSource adds a lead source.
func (c *Client) CreateSource(ctx context.Context, s model.LeadSource) (model.LeadSource, error) {
	var created model.LeadSource
	if err := c.Post(ctx, "/settings/lead-sources", s, &created); err != nil {
		return model.LeadSource{}, err
	}
	return created, nil
}

// UpdateSource renames a lead source.
func (c *Client) UpdateSource(ctx context.Context, s model.LeadSource) (model.LeadSource, error) {
	var updated model.LeadSource
	if err := c.Put(ctx, "/settings/lead-sources/"+s.ID, s, &updated); err != nil {
		return model.LeadSource{}, err
	}
	return updated, nil
}

// DeleteSource removes a lead source.
func (c *Client) DeleteSource(ctx context.Context, id string) error {
	return c.Delete(ctx, "/settings/lead-sources/"+id)
}
