package model

const (
	TableProviders        = "providers"
	TableTaxonomies       = "provider_taxonomies"
	TableMedicareServices = "medicare_services"
)

// FilterColumn is a providers column whose distinct values are exposed as filter options.
type FilterColumn string

const (
	FilterState     FilterColumn = "state"
	FilterSpecialty FilterColumn = "primary_taxonomy"
)

func (c FilterColumn) Valid() bool {
	return c == FilterState || c == FilterSpecialty
}

// ProviderColumns is the select list for providers; ProviderScanTargets
// must stay in the same order.
var ProviderColumns = []string{
	"npi",
	"provider_name",
	"first_name",
	"last_name",
	"organization_name",
	"primary_taxonomy",
	"primary_taxonomy_desc",
	"address_1",
	"address_2",
	"city",
	"state",
	"postal_code",
	"country_code",
	"phone",
	"email",
	"direct_address",
	"fhir_endpoint",
	"enumeration_date",
	"last_updated",
	"status",
}

func ProviderScanTargets(p *Provider) []any {
	return []any{
		&p.NPI,
		&p.ProviderName,
		&p.FirstName,
		&p.LastName,
		&p.OrganizationName,
		&p.PrimaryTaxonomy,
		&p.PrimaryTaxonomyDesc,
		&p.Address1,
		&p.Address2,
		&p.City,
		&p.State,
		&p.PostalCode,
		&p.CountryCode,
		&p.Phone,
		&p.Email,
		&p.DirectAddress,
		&p.FHIREndpoint,
		&p.EnumerationDate,
		&p.LastUpdated,
		&p.Status,
	}
}

var TaxonomyColumns = []string{
	"id",
	"npi",
	"taxonomy_code",
	"taxonomy_desc",
	"primary_taxonomy",
	"license",
}

func TaxonomyScanTargets(t *ProviderTaxonomy) []any {
	return []any{
		&t.ID,
		&t.NPI,
		&t.TaxonomyCode,
		&t.TaxonomyDesc,
		&t.Primary,
		&t.License,
	}
}

var MedicareServiceColumns = []string{
	"id",
	"npi",
	"hcpcs_code",
	"hcpcs_description",
	"service_count",
	"beneficiary_count",
	"submitted_charge",
	"allowed_amount",
	"payment_amount",
	"service_year",
	"place_of_service",
}

func MedicareServiceScanTargets(s *MedicareService) []any {
	return []any{
		&s.ID,
		&s.NPI,
		&s.HCPCSCode,
		&s.HCPCSDescription,
		&s.ServiceCount,
		&s.BeneficiaryCount,
		&s.SubmittedCharge,
		&s.AllowedAmount,
		&s.PaymentAmount,
		&s.ServiceYear,
		&s.PlaceOfService,
	}
}
