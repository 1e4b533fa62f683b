// Package installation implements the InstallationActivity aggregate: the work
// record created when an order becomes eligible for installation. Activation is
// idempotent - exactly zero or one activity exists per order - and the record
// is then driven by field technicians through Pending, InProgress and
// Completed.
package installation
