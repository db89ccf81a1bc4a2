package model

import "github.com/shopspring/decimal"

// Provider is one row of the providers table together with its related collections.
type Provider struct {
	NPI                 string  `json:"npi"`
	ProviderName        string  `json:"provider_name"`
	FirstName           *string `json:"first_name,omitempty"`
	LastName            *string `json:"last_name,omitempty"`
	OrganizationName    *string `json:"organization_name,omitempty"`
	PrimaryTaxonomy     *string `json:"primary_taxonomy,omitempty"`
	PrimaryTaxonomyDesc *string `json:"primary_taxonomy_desc,omitempty"`
	Address1            *string `json:"address_1,omitempty"`
	Address2            *string `json:"address_2,omitempty"`
	City                *string `json:"city,omitempty"`
	State               *string `json:"state,omitempty"`
	PostalCode          *string `json:"postal_code,omitempty"`
	CountryCode         *string `json:"country_code,omitempty"`
	Phone               *string `json:"phone,omitempty"`
	Email               *string `json:"email,omitempty"`
	DirectAddress       *string `json:"direct_address,omitempty"`
	FHIREndpoint        *string `json:"fhir_endpoint,omitempty"`
	EnumerationDate     Date    `json:"enumeration_date"`
	LastUpdated         Date    `json:"last_updated"`
	Status              *string `json:"status,omitempty"`

	Taxonomies       []ProviderTaxonomy `json:"taxonomies"`
	MedicareServices []MedicareService  `json:"medicareServices"`
}

// ProviderTaxonomy belongs to exactly one provider through NPI.
type ProviderTaxonomy struct {
	ID           int64   `json:"id"`
	NPI          string  `json:"npi"`
	TaxonomyCode string  `json:"taxonomy_code"`
	TaxonomyDesc *string `json:"taxonomy_desc,omitempty"`
	Primary      bool    `json:"primary_taxonomy"`
	License      *string `json:"license,omitempty"`
}

// MedicareService is one billed HCPCS line for a provider and service year.
// Amounts keep decimal precision end to end and serialize as JSON strings.
type MedicareService struct {
	ID               int64           `json:"id"`
	NPI              string          `json:"npi"`
	HCPCSCode        string          `json:"hcpcs_code"`
	HCPCSDescription *string         `json:"hcpcs_description,omitempty"`
	ServiceCount     int64           `json:"service_count"`
	BeneficiaryCount int64           `json:"beneficiary_count"`
	SubmittedCharge  decimal.Decimal `json:"submitted_charge"`
	AllowedAmount    decimal.Decimal `json:"allowed_amount"`
	PaymentAmount    decimal.Decimal `json:"payment_amount"`
	ServiceYear      int             `json:"service_year"`
	PlaceOfService   *string         `json:"place_of_service,omitempty"`
}

// SearchParams is the already parsed input of a provider search.
// Empty strings mean "no filter"; zero Page/Limit mean "use defaults".
type SearchParams struct {
	Query     string
	State     string
	Specialty string
	Page      int
	Limit     int
}

type SearchResult struct {
	Providers []Provider `json:"providers"`
	Total     int64      `json:"total"`
	Page      int        `json:"page"`
	Limit     int        `json:"limit"`
}

type FilterOptions struct {
	States      []string `json:"states"`
	Specialties []string `json:"specialties"`
}
