package cmd

// Config carries the runtime configuration loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// VATRate is the company VAT rate as a fraction, e.g. "0.18".
	// Empty falls back to the default 18%.
	VATRate string

	// TaxExemptCustomerIDs is a comma-separated list of customer UUIDs
	// exempt from tax.
	TaxExemptCustomerIDs string

	// ProposalValidityHours bounds how long billing proposals stay
	// approvable. Empty falls back to the default 7 days.
	ProposalValidityHours string

	// ExpirationSweepSchedule is the cron expression (with seconds) for the
	// billing expiration sweep. Empty falls back to once a minute.
	ExpirationSweepSchedule string
}
