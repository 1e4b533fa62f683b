// Package survey implements the SiteSurvey aggregate of the fulfillment domain.
// A site survey is the technical on-site assessment tied 1:1 to a paid order;
// its outcome decides whether an installation can be dispatched directly or
// whether additional billable equipment must be approved and paid first.
//
// The package provides:
//   - SiteSurvey: the aggregate root with its Status state machine
//   - AdditionalCost: cost line items for extra equipment found on site
//   - CostType: the closed classification of cost line items
//   - Subtotal: the cost aggregation a billing proposal derives its amounts from
package survey
