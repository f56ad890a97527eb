// Package testsupport builds temporary configs and catalogs for tests.
package testsupport
