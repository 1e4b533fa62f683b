// Package services contains stateless domain services that implement business
// policies spanning several aggregates. The InstallationActivator gates
// installation activation on the combined state of an order, its site survey
// and the survey's additional billing.
package services
