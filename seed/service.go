/*
 * Copyright © 2025 Campushub Software Inc., All rights reserved.
 */

package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/campushub/dualstore/datastore/mongodoc"
)

// documentCollections fixes the bulk-reset order for the document store.
var documentCollections = []string{"teachers", "classes", "students", "library_books", "events"}

// Service restores either store to the embedded baseline dataset. Restores
// are destructive: existing rows and documents are discarded first.
type Service struct {
	db        *sql.DB
	documents *mongodoc.Store
	data      *Data
	log       *slog.Logger
}

func NewService(db *sql.DB, documents *mongodoc.Store, log *slog.Logger) (*Service, error) {
	if log == nil {
		log = slog.Default()
	}
	data, err := Load()
	if err != nil {
		return nil, err
	}
	return &Service{db: db, documents: documents, data: data, log: log}, nil
}

// RestoreTabular truncates every table and reinserts the baseline rows in one
// transaction. Identity sequences restart at 1, so the dataset's foreign keys
// hold after the reset.
func (s *Service) RestoreTabular(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin restore transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`TRUNCATE TABLE enrollments, students, subjects, classes, teachers RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}

	for _, t := range s.data.Tabular.Teachers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO teachers (first_name, last_name, email, phone_number, hire_date)
			 VALUES ($1, $2, $3, $4, $5)`,
			t.FirstName, t.LastName, t.Email, t.PhoneNumber, t.HireDate.Time()); err != nil {
			return fmt.Errorf("seed teachers: %w", err)
		}
	}
	for _, c := range s.data.Tabular.Classes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO classes (class_name, teacher_id, room_number) VALUES ($1, $2, $3)`,
			c.ClassName, c.TeacherID, c.RoomNumber); err != nil {
			return fmt.Errorf("seed classes: %w", err)
		}
	}
	for _, sub := range s.data.Tabular.Subjects {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO subjects (subject_name, credits, teacher_id) VALUES ($1, $2, $3)`,
			sub.SubjectName, sub.Credits, sub.TeacherID); err != nil {
			return fmt.Errorf("seed subjects: %w", err)
		}
	}
	for _, st := range s.data.Tabular.Students {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO students (first_name, last_name, date_of_birth, gender, email, phone_number, class_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			st.FirstName, st.LastName, st.DateOfBirth.Time(), st.Gender, st.Email, st.PhoneNumber, st.ClassID); err != nil {
			return fmt.Errorf("seed students: %w", err)
		}
	}
	for _, e := range s.data.Tabular.Enrollments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO enrollments (student_id, subject_id, enrollment_date, grade)
			 VALUES ($1, $2, $3, $4)`,
			e.StudentID, e.SubjectID, e.EnrollmentDate.Time(), e.Grade); err != nil {
			return fmt.Errorf("seed enrollments: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit restore transaction: %w", err)
	}
	s.log.Info("tabular store restored to baseline dataset")
	return nil
}

// RestoreDocument replaces every collection's contents with the baseline
// documents. Collections are replaced one at a time; the document store has
// no cross-collection transaction to offer.
func (s *Service) RestoreDocument(ctx context.Context) error {
	for _, name := range documentCollections {
		if err := s.documents.Replace(ctx, name, s.data.Document[name]); err != nil {
			return fmt.Errorf("restore collection %s: %w", name, err)
		}
	}
	s.log.Info("document store restored to baseline dataset")
	return nil
}

// RestoreAll restores both stores, tabular first.
func (s *Service) RestoreAll(ctx context.Context) error {
	if err := s.RestoreTabular(ctx); err != nil {
		return err
	}
	return s.RestoreDocument(ctx)
}
