// Package database owns the sqlite connection, schema migration and seed
// data. Entity-specific queries live in the subpackages (users, listening,
// surahs, audit, settings), one repository per entity.
package database
