/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

// Package seed installs the baseline dataset into both stores. The dataset
// is embedded at build time so a reset never depends on external files.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"gopkg.in/yaml.v3"

	"github.com/campushub/dualstore/storagemodels"
)

//go:embed seed.yaml
var raw []byte

// Date is a strfmt full-date that knows how to decode itself from YAML.
type Date struct {
	strfmt.Date
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	t, err := time.Parse(strfmt.RFC3339FullDate, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Date = strfmt.Date(t)
	return nil
}

// Time returns the date as a time.Time for SQL parameter binding.
func (d Date) Time() time.Time {
	return time.Time(d.Date)
}

// Tabular rows carry no identities. They are inserted in declaration order
// into freshly reset tables, so serial assignment starts at 1 and the
// foreign keys in the dataset line up.
type (
	Teacher struct {
		FirstName   string `yaml:"first_name"`
		LastName    string `yaml:"last_name"`
		Email       string `yaml:"email"`
		PhoneNumber string `yaml:"phone_number"`
		HireDate    Date   `yaml:"hire_date"`
	}

	Class struct {
		ClassName  string `yaml:"class_name"`
		TeacherID  int64  `yaml:"teacher_id"`
		RoomNumber string `yaml:"room_number"`
	}

	Subject struct {
		SubjectName string `yaml:"subject_name"`
		Credits     int    `yaml:"credits"`
		TeacherID   int64  `yaml:"teacher_id"`
	}

	Student struct {
		FirstName   string `yaml:"first_name"`
		LastName    string `yaml:"last_name"`
		DateOfBirth Date   `yaml:"date_of_birth"`
		Gender      string `yaml:"gender"`
		Email       string `yaml:"email"`
		PhoneNumber string `yaml:"phone_number"`
		ClassID     int64  `yaml:"class_id"`
	}

	Enrollment struct {
		StudentID      int64  `yaml:"student_id"`
		SubjectID      int64  `yaml:"subject_id"`
		EnrollmentDate Date   `yaml:"enrollment_date"`
		Grade          string `yaml:"grade"`
	}
)

// Tabular is the relational half of the dataset.
type Tabular struct {
	Teachers    []Teacher    `yaml:"teachers"`
	Classes     []Class      `yaml:"classes"`
	Subjects    []Subject    `yaml:"subjects"`
	Students    []Student    `yaml:"students"`
	Enrollments []Enrollment `yaml:"enrollments"`
}

// Data is the full embedded dataset. Document collections stay schemaless:
// their records go to the store as-is, identities included.
type Data struct {
	Tabular  Tabular                           `yaml:"tabular"`
	Document map[string][]storagemodels.Record `yaml:"document"`
}

// Load parses the embedded dataset.
func Load() (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse embedded seed data: %w", err)
	}
	return &d, nil
}
