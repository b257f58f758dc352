// Package repository contains data access layer abstractions.
// Implementations live in subpackages (sqldb) and return raw driver errors;
// a missing row is always reported as sql.ErrNoRows.
package repository
