// Package billing implements the AdditionalBilling aggregate of the
// fulfillment domain. An additional billing is a tax-inclusive proposal for
// extra equipment discovered during a site survey; the customer must approve
// and pay it before the installation may be dispatched.
//
// The package provides the AdditionalBilling aggregate root with its Status
// state machine, the tax computation applied to cost subtotals, and the
// billing reference generator (ADD + YYMMDD + random suffix).
package billing
