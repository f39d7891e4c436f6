package entity

// Department names form a fixed reference list. Employees and designations
// point at a department by name.
type Department = string
