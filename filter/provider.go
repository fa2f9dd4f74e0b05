package filter

import (
	"context"
	"fmt"

	"rangefilter/filter/options"
)

const (
	ProviderID   = "data_range_filter"
	ProviderName = "Data Range Filter"
)

// Provider creates one field set per dataset for a host registry
type Provider struct {
	// Settings is used for resources that do not carry their own store
	Settings Settings
	Options  *options.SetOptions
}

func NewProvider(settings Settings, opts *options.SetOptions) *Provider {
	return &Provider{Settings: settings, Options: opts}
}

func (p *Provider) ID() string { return ProviderID }

func (p *Provider) Name() string { return ProviderName }

// Supports reports whether resource can be filtered by a field set
func (p *Provider) Supports(resource any) bool {
	_, ok := resource.(DataSource)
	return ok
}

// Create opens a field set over resource.
// A resource that also implements Settings persists its own field order.
func (p *Provider) Create(ctx context.Context, resource any) (*Set, error) {
	source, ok := resource.(DataSource)
	if !ok {
		return nil, fmt.Errorf("%s: unsupported resource %T", ProviderID, resource)
	}

	settings := p.Settings
	if own, ok := resource.(Settings); ok {
		settings = own
	}

	return Open(ctx, source, settings, p.Options)
}
