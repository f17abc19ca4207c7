package domain

// Setting is a key/value configuration row. Value is a string and is
// interpreted contextually by the reservation engine (number or text).
// Settings are read fresh on every create request, never cached.
type Setting struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Well-known setting keys read by the reservation engine.
const (
	SettingMinHoursAdvance     = "min_hours_advance"
	SettingAvailableCarts      = "available_carts"
	SettingCartPrice           = "cart_price"
	SettingTractorPricePerHour = "tractor_price_per_hour"
)
