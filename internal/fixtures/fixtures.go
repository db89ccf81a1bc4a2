// Package fixtures loads the sample provider directory used by storage-backed tests.
package fixtures

import (
	"context"
	_ "embed"
	"fmt"

	"ProviderAPI/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed providers.yml
var providersYAML []byte

type Dataset struct {
	Providers []Provider `yaml:"providers"`
}

type Provider struct {
	NPI                 string            `yaml:"npi"`
	ProviderName        string            `yaml:"provider_name"`
	FirstName           *string           `yaml:"first_name"`
	LastName            *string           `yaml:"last_name"`
	OrganizationName    *string           `yaml:"organization_name"`
	PrimaryTaxonomy     *string           `yaml:"primary_taxonomy"`
	PrimaryTaxonomyDesc *string           `yaml:"primary_taxonomy_desc"`
	Address1            *string           `yaml:"address_1"`
	Address2            *string           `yaml:"address_2"`
	City                *string           `yaml:"city"`
	State               *string           `yaml:"state"`
	PostalCode          *string           `yaml:"postal_code"`
	CountryCode         *string           `yaml:"country_code"`
	Phone               *string           `yaml:"phone"`
	Email               *string           `yaml:"email"`
	DirectAddress       *string           `yaml:"direct_address"`
	FHIREndpoint        *string           `yaml:"fhir_endpoint"`
	EnumerationDate     *string           `yaml:"enumeration_date"`
	LastUpdated         *string           `yaml:"last_updated"`
	Status              *string           `yaml:"status"`
	Taxonomies          []Taxonomy        `yaml:"taxonomies"`
	MedicareServices    []MedicareService `yaml:"medicare_services"`
}

type Taxonomy struct {
	ID           int64   `yaml:"id"`
	TaxonomyCode string  `yaml:"taxonomy_code"`
	TaxonomyDesc *string `yaml:"taxonomy_desc"`
	Primary      bool    `yaml:"primary"`
	License      *string `yaml:"license"`
}

type MedicareService struct {
	ID               int64   `yaml:"id"`
	HCPCSCode        string  `yaml:"hcpcs_code"`
	HCPCSDescription *string `yaml:"hcpcs_description"`
	ServiceCount     int64   `yaml:"service_count"`
	BeneficiaryCount int64   `yaml:"beneficiary_count"`
	SubmittedCharge  string  `yaml:"submitted_charge"`
	AllowedAmount    string  `yaml:"allowed_amount"`
	PaymentAmount    string  `yaml:"payment_amount"`
	ServiceYear      int     `yaml:"service_year"`
	PlaceOfService   *string `yaml:"place_of_service"`
}

// Load parses the embedded sample directory.
func Load() (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(providersYAML, &ds); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &ds, nil
}

// ExecFunc executes one write statement; callers adapt their driver to it.
type ExecFunc func(ctx context.Context, sql string, args ...any) error

// Insert writes every provider of ds with its related rows.
func Insert(ctx context.Context, d model.Dialect, exec ExecFunc, ds *Dataset) error {
	b := d.Builder()
	for _, p := range ds.Providers {
		enumerated, err := parseDate(p.EnumerationDate)
		if err != nil {
			return fmt.Errorf("provider %s: %w", p.NPI, err)
		}
		updated, err := parseDate(p.LastUpdated)
		if err != nil {
			return fmt.Errorf("provider %s: %w", p.NPI, err)
		}

		q := b.Insert(model.TableProviders).
			Columns(model.ProviderColumns...).
			Values(
				p.NPI, p.ProviderName, p.FirstName, p.LastName, p.OrganizationName,
				p.PrimaryTaxonomy, p.PrimaryTaxonomyDesc, p.Address1, p.Address2, p.City,
				p.State, p.PostalCode, p.CountryCode, p.Phone, p.Email,
				p.DirectAddress, p.FHIREndpoint, dateArg(enumerated), dateArg(updated), p.Status,
			)
		if err := run(ctx, exec, q); err != nil {
			return fmt.Errorf("insert provider %s: %w", p.NPI, err)
		}

		for _, t := range p.Taxonomies {
			q := b.Insert(model.TableTaxonomies).
				Columns(model.TaxonomyColumns...).
				Values(t.ID, p.NPI, t.TaxonomyCode, t.TaxonomyDesc, t.Primary, t.License)
			if err := run(ctx, exec, q); err != nil {
				return fmt.Errorf("insert taxonomy %d: %w", t.ID, err)
			}
		}

		for _, s := range p.MedicareServices {
			amounts, err := parseAmounts(s.SubmittedCharge, s.AllowedAmount, s.PaymentAmount)
			if err != nil {
				return fmt.Errorf("medicare service %d: %w", s.ID, err)
			}
			q := b.Insert(model.TableMedicareServices).
				Columns(model.MedicareServiceColumns...).
				Values(
					s.ID, p.NPI, s.HCPCSCode, s.HCPCSDescription, s.ServiceCount,
					s.BeneficiaryCount, amounts[0].StringFixed(2), amounts[1].StringFixed(2), amounts[2].StringFixed(2), s.ServiceYear,
					s.PlaceOfService,
				)
			if err := run(ctx, exec, q); err != nil {
				return fmt.Errorf("insert medicare service %d: %w", s.ID, err)
			}
		}
	}
	return nil
}

func run(ctx context.Context, exec ExecFunc, q squirrel.InsertBuilder) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return err
	}
	return exec(ctx, sql, args...)
}

func parseDate(s *string) (model.Date, error) {
	var d model.Date
	if s == nil {
		return d, nil
	}
	err := d.Scan(*s)
	return d, err
}

// dateArg passes dates as their driver value (YYYY-MM-DD text or NULL)
// so both drivers encode them the same way.
func dateArg(d model.Date) any {
	v, _ := d.Value()
	return v
}

func parseAmounts(values ...string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		if v == "" {
			out[i] = decimal.Zero
			continue
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// Ptr is a convenience for building datasets in tests.
func Ptr(s string) *string { return &s }
