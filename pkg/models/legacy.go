package models

// PortfolioData is the old nested portfolio shape accepted by the legacy
// endpoints. It is kept as an opaque decoded JSON object on purpose: the
// legacy contract stores whatever the client sent and returns it unchanged,
// with no reconciliation against the normalized schema.
type PortfolioData map[string]any

// ID extracts the numeric id from a legacy blob, if one is present.
func (p PortfolioData) ID() (int64, bool) {
	switch v := p["id"].(type) {
	case float64:
		if v > 0 {
			return int64(v), true
		}
	case int64:
		if v > 0 {
			return v, true
		}
	case int:
		if v > 0 {
			return int64(v), true
		}
	}
	return 0, false
}
