// Package inmem provides mutex-guarded in-memory repositories. It backs the
// API in environments where no external storage is wired and the test suites.
package inmem

import (
	"sync"

	"github.com/vianuedu/backend/core/student"
	"github.com/vianuedu/backend/core/testlib"
)

type (
	DB struct {
		student *studentTable
		test    *testTable
	}

	studentTable struct {
		sync.RWMutex
		seq   int
		table map[int]*student.Student
	}

	testTable struct {
		sync.RWMutex
		table map[string]*testlib.Test
	}
)

func Open() (*DB, error) {
	db := &DB{
		student: &studentTable{table: make(map[int]*student.Student)},
		test:    &testTable{table: make(map[string]*testlib.Test)},
	}
	return db, nil
}
