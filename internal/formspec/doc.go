// Package formspec loads forms described in YAML files and builds them into
// former sections made of rows from package rows.
package formspec
