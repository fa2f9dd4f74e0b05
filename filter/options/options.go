package options

import "go.uber.org/zap"

// DefaultResolution is the number of discrete steps a slider offers
const DefaultResolution = 100

// SetOptions represent options that can be used to configure a field set
type SetOptions struct {
	// number of ticks on every slider of the set
	Resolution int
	// receives field creation, dirty and skip messages
	Logger *zap.Logger
}

func NewSetOptions() *SetOptions {
	return &SetOptions{}
}

func (this *SetOptions) SetResolution(v int) *SetOptions {
	this.Resolution = v
	return this
}

func (this *SetOptions) SetLogger(v *zap.Logger) *SetOptions {
	this.Logger = v
	return this
}

// Merge combines opts left to right; later non-zero values win.
// Unset values fall back to the defaults.
func Merge(opts ...*SetOptions) *SetOptions {
	merged := &SetOptions{
		Resolution: DefaultResolution,
		Logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.Resolution > 0 {
			merged.Resolution = opt.Resolution
		}
		if opt.Logger != nil {
			merged.Logger = opt.Logger
		}
	}
	return merged
}
